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

package dataset

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gorse-io/sarah/base/log"
	"github.com/gorse-io/sarah/common/datautil"
	"github.com/juju/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// Opportunity activity recognition dataset.
//
//	Daniel Roggen et al. "Collecting complex activity data sets in highly rich
//	networked sensor environments", INSS 2010.
const (
	OpportunityURL  = "https://archive.ics.uci.edu/ml/machine-learning-databases/00226/OpportunityUCIDataset.zip"
	OpportunityRoot = "OpportunityUCIDataset"

	OpportunityExt            = ".dat"
	OpportunityColumns        = 250
	OpportunityFeatureColumns = 243
	OpportunityLabelColumns   = OpportunityColumns - OpportunityFeatureColumns
)

// LoadOpportunity downloads the Opportunity dataset if needed, parses every
// recording and splits the samples randomly into train and test sets.
func (l *Loader) LoadOpportunity() (train, test Pair[Matrix, Matrix], err error) {
	root, err := l.Fetcher.DownloadAndUnzip(l.OpportunityURL, OpportunityRoot)
	if err != nil {
		return train, test, errors.Trace(err)
	}
	x, y, err := ParseOpportunity(root)
	if err != nil {
		return train, test, errors.Trace(err)
	}
	train, test, err = TrainTestSplit(x, y, l.TrainSize, l.Rng)
	if err != nil {
		return train, test, errors.Trace(err)
	}
	log.Logger().Info("split opportunity dataset",
		zap.Int("n_train", train.X.Count()),
		zap.Int("n_test", test.X.Count()))
	return train, test, nil
}

// ParseOpportunity loads every .dat file under root and returns the sensor
// readings and the labels. Files are concatenated in lexicographic path order;
// rows are labeled independently, so this order carries no meaning.
func ParseOpportunity(root string) (x, y Matrix, err error) {
	files, err := findFiles(root, OpportunityExt)
	if err != nil {
		return x, y, errors.Trace(err)
	}
	if len(files) == 0 {
		return x, y, errors.NotFoundf("%s files in %s", OpportunityExt, root)
	}
	log.Logger().Info("load opportunity dataset", zap.String("root", root), zap.Int("files", len(files)))
	recordings := make([]*mat.Dense, 0, len(files))
	for _, file := range files {
		m, err := datautil.LoadTxt(file)
		if err != nil {
			return x, y, errors.Trace(err)
		}
		if _, cols := m.Dims(); cols != OpportunityColumns {
			return x, y, errors.Annotatef(ErrShape, "%s has %d columns, expected %d",
				file, cols, OpportunityColumns)
		}
		recordings = append(recordings, m)
	}
	samples := lo.SumBy(recordings, func(m *mat.Dense) int {
		rows, _ := m.Dims()
		return rows
	})
	log.Logger().Info("load opportunity dataset finished", zap.Int("samples", samples))
	data := NewMatrix(vstack(recordings))
	return data.Columns(0, OpportunityFeatureColumns), data.Columns(OpportunityFeatureColumns, OpportunityColumns), nil
}

// findFiles walks root recursively and returns the sorted paths of regular
// files with the extension.
func findFiles(root, ext string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && strings.HasSuffix(d.Name(), ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
