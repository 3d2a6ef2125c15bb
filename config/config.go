// Copyright 2020 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorse-io/sarah/base"
	"github.com/gorse-io/sarah/dataset"
	"github.com/juju/errors"
	"github.com/spf13/viper"
)

// Config is the configuration for dataset loading.
type Config struct {
	Dataset DatasetConfig `mapstructure:"dataset"`
	Split   SplitConfig   `mapstructure:"split"`
}

type DatasetConfig struct {
	// Dir is where archives are extracted. Empty means the working directory.
	Dir            string `mapstructure:"dir"`
	OpportunityURL string `mapstructure:"opportunity_url" validate:"required,url"`
	UCIHARURL      string `mapstructure:"ucihar_url" validate:"required,url"`
	ShowProgress   bool   `mapstructure:"show_progress"`
}

type SplitConfig struct {
	TrainSize float64 `mapstructure:"train_size" validate:"gt=0,lt=1"`
	// Seed fixes the shuffle. A time based seed is used if nil.
	Seed *int64 `mapstructure:"seed"`
}

func GetDefaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			OpportunityURL: dataset.OpportunityURL,
			UCIHARURL:      dataset.UCIHARURL,
			ShowProgress:   true,
		},
		Split: SplitConfig{
			TrainSize: dataset.DefaultTrainSize,
		},
	}
}

func setDefault(v *viper.Viper) {
	defaultConfig := GetDefaultConfig()
	// [dataset]
	v.SetDefault("dataset.dir", defaultConfig.Dataset.Dir)
	v.SetDefault("dataset.opportunity_url", defaultConfig.Dataset.OpportunityURL)
	v.SetDefault("dataset.ucihar_url", defaultConfig.Dataset.UCIHARURL)
	v.SetDefault("dataset.show_progress", defaultConfig.Dataset.ShowProgress)
	// [split]
	v.SetDefault("split.train_size", defaultConfig.Split.TrainSize)
}

// LoadConfig loads configuration from a TOML file, or only from defaults if
// the path is empty. Environment variables prefixed with SARAH_ override
// values, e.g. SARAH_SPLIT_TRAIN_SIZE.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefault(v)
	v.SetEnvPrefix("sarah")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("split.seed"); err != nil {
		return nil, errors.Trace(err)
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Trace(err)
		}
	}
	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, errors.Trace(err)
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &conf, nil
}

func (config *Config) Validate() error {
	validate := validator.New()
	return validate.Struct(config)
}

// NewLoader creates a dataset loader from the configuration.
func (config *Config) NewLoader() *dataset.Loader {
	loader := dataset.NewLoader(config.Dataset.Dir)
	loader.Fetcher.ShowProgress = config.Dataset.ShowProgress
	loader.OpportunityURL = config.Dataset.OpportunityURL
	loader.UCIHARURL = config.Dataset.UCIHARURL
	loader.TrainSize = config.Split.TrainSize
	if config.Split.Seed != nil {
		loader.Rng = base.NewRandomGenerator(*config.Split.Seed)
	}
	return loader
}
