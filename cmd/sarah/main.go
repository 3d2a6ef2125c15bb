// Copyright 2025 gorse Project Authors
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

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/gorse-io/sarah/base/log"
	"github.com/gorse-io/sarah/cmd/version"
	"github.com/gorse-io/sarah/config"
	"github.com/gorse-io/sarah/dataset"
	"github.com/juju/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "sarah",
	Short: "Human activity recognition datasets",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		log.SetLogger(cmd.Flags(), debug)
	},
}

var opportunityCmd = &cobra.Command{
	Use:   "opportunity",
	Short: "Load the Opportunity dataset and split it into train and test sets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loader, err := newLoader(cmd)
		if err != nil {
			return errors.Trace(err)
		}
		train, test, err := loader.LoadOpportunity()
		if err != nil {
			return errors.Trace(err)
		}
		return renderSummary(cmd.OutOrStdout(), [][]string{
			matrixRow("train", train),
			matrixRow("test", test),
		})
	},
}

var uciharCmd = &cobra.Command{
	Use:   "ucihar",
	Short: "Load the UCI HAR dataset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loader, err := newLoader(cmd)
		if err != nil {
			return errors.Trace(err)
		}
		train, test, err := loader.LoadUCIHAR()
		if err != nil {
			return errors.Trace(err)
		}
		return renderSummary(cmd.OutOrStdout(), [][]string{
			tensorRow("train", train),
			tensorRow("test", test),
		})
	},
}

var fetchCmd = &cobra.Command{
	Use:       "fetch [opportunity|ucihar]",
	Short:     "Download and extract a dataset archive",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"opportunity", "ucihar"},
	RunE: func(cmd *cobra.Command, args []string) error {
		loader, err := newLoader(cmd)
		if err != nil {
			return errors.Trace(err)
		}
		var path string
		switch args[0] {
		case "opportunity":
			path, err = loader.Fetcher.DownloadAndUnzip(loader.OpportunityURL, dataset.OpportunityRoot)
		case "ucihar":
			path, err = loader.Fetcher.DownloadAndUnzip(loader.UCIHARURL, dataset.UCIHARRoot)
		}
		if err != nil {
			return errors.Trace(err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version of sarah",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), version.BuildInfo())
	},
}

func init() {
	log.AddFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().Bool("debug", false, "use debug log mode")
	rootCmd.PersistentFlags().StringP("config", "c", "", "configuration file path")
	rootCmd.PersistentFlags().String("dir", "", "directory to extract datasets (default: working directory)")
	rootCmd.PersistentFlags().Bool("no-progress", false, "hide download progress bar")
	opportunityCmd.Flags().Float64("train-size", dataset.DefaultTrainSize, "proportion of samples in the train set")
	opportunityCmd.Flags().Int64("seed", 0, "random seed of the train/test split")
	rootCmd.AddCommand(opportunityCmd, uciharCmd, fetchCmd, versionCmd)
}

// newLoader creates a loader from the configuration file overridden by flags.
func newLoader(cmd *cobra.Command) (*dataset.Loader, error) {
	configPath, _ := cmd.Flags().GetString("config")
	conf, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, errors.Annotatef(err, "load config %q", configPath)
	}
	if cmd.Flags().Changed("dir") {
		conf.Dataset.Dir, _ = cmd.Flags().GetString("dir")
	}
	if noProgress, _ := cmd.Flags().GetBool("no-progress"); noProgress {
		conf.Dataset.ShowProgress = false
	}
	if cmd.Flags().Changed("train-size") {
		conf.Split.TrainSize, _ = cmd.Flags().GetFloat64("train-size")
	}
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		conf.Split.Seed = &seed
	}
	if err = conf.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	log.Logger().Debug("create loader",
		zap.String("dir", conf.Dataset.Dir),
		zap.Float64("train_size", conf.Split.TrainSize))
	return conf.NewLoader(), nil
}

func matrixRow(name string, pair dataset.Pair[dataset.Matrix, dataset.Matrix]) []string {
	_, features := pair.X.Dims()
	_, labels := pair.Y.Dims()
	return []string{name, strconv.Itoa(pair.X.Count()),
		fmt.Sprintf("(%d, %d)", pair.X.Count(), features),
		fmt.Sprintf("(%d, %d)", pair.Y.Count(), labels)}
}

func tensorRow(name string, pair dataset.Pair[*dataset.Tensor, dataset.Matrix]) []string {
	samples, timesteps, channels := pair.X.Shape()
	_, labels := pair.Y.Dims()
	return []string{name, strconv.Itoa(samples),
		fmt.Sprintf("(%d, %d, %d)", samples, timesteps, channels),
		fmt.Sprintf("(%d, %d)", pair.Y.Count(), labels)}
}

func renderSummary(w io.Writer, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header("Split", "Samples", "Features", "Labels")
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return errors.Trace(err)
		}
	}
	return table.Render()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Logger().Error("failed to execute", zap.Error(err))
		os.Exit(1)
	}
}
