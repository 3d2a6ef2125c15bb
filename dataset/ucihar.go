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
	"path/filepath"

	"github.com/gorse-io/sarah/base/log"
	"github.com/gorse-io/sarah/common/datautil"
	"github.com/juju/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// Human Activity Recognition Using Smartphones dataset.
//
//	Davide Anguita, Alessandro Ghio, Luca Oneto, Xavier Parra and Jorge L. Reyes-Ortiz.
//	A Public Domain Dataset for Human Activity Recognition Using Smartphones.
//	ESANN 2013.
const (
	UCIHARURL  = "https://archive.ics.uci.edu/ml/machine-learning-databases/00240/UCI%20HAR%20Dataset.zip"
	UCIHARRoot = "UCI HAR Dataset"

	GroupTrain = "train"
	GroupTest  = "test"
)

// UCIHARChannels are the inertial signals in tensor channel order.
var UCIHARChannels = []string{
	"total_acc_x", "total_acc_y", "total_acc_z",
	"body_acc_x", "body_acc_y", "body_acc_z",
	"body_gyro_x", "body_gyro_y", "body_gyro_z",
}

// SignalFiles returns the inertial signal files of a group relative to the
// dataset root, in channel order.
func SignalFiles(group string) []string {
	return lo.Map(UCIHARChannels, func(channel string, _ int) string {
		return filepath.Join(group, "Inertial Signals", channel+"_"+group+".txt")
	})
}

// LabelFile returns the activity label file of a group relative to the
// dataset root.
func LabelFile(group string) string {
	return filepath.Join(group, "y_"+group+".txt")
}

// LoadUCIHAR downloads the UCI HAR dataset if needed and loads the train and
// test groups assigned by the publisher.
func (l *Loader) LoadUCIHAR() (train, test Pair[*Tensor, Matrix], err error) {
	root, err := l.Fetcher.DownloadAndUnzip(l.UCIHARURL, UCIHARRoot)
	if err != nil {
		return train, test, errors.Trace(err)
	}
	log.Logger().Info("load ucihar dataset", zap.String("root", root))
	if train, err = LoadUCIHARGroup(root, GroupTrain); err != nil {
		return train, test, errors.Trace(err)
	}
	if test, err = LoadUCIHARGroup(root, GroupTest); err != nil {
		return train, test, errors.Trace(err)
	}
	log.Logger().Info("load ucihar dataset finished",
		zap.Int("n_train", train.X.Count()),
		zap.Int("n_test", test.X.Count()))
	return train, test, nil
}

// LoadUCIHARGroup loads the (samples, timesteps, channels) signal tensor and
// the activity labels of a group.
func LoadUCIHARGroup(root, group string) (Pair[*Tensor, Matrix], error) {
	var pair Pair[*Tensor, Matrix]
	signals := make([]*mat.Dense, 0, len(UCIHARChannels))
	for _, name := range SignalFiles(group) {
		m, err := datautil.LoadTxt(filepath.Join(root, name))
		if err != nil {
			return pair, errors.Trace(err)
		}
		signals = append(signals, m)
	}
	x, err := DStack(signals...)
	if err != nil {
		return pair, errors.Annotatef(err, "group %s", group)
	}
	labels, err := datautil.LoadTxt(filepath.Join(root, LabelFile(group)))
	if err != nil {
		return pair, errors.Trace(err)
	}
	y := NewMatrix(labels)
	if _, cols := labels.Dims(); cols != 1 {
		return pair, errors.Annotatef(ErrShape, "%s has %d columns, expected 1", LabelFile(group), cols)
	}
	if x.Count() != y.Count() {
		return pair, errors.Annotatef(ErrMismatchedSamples, "group %s has %d signals and %d labels",
			group, x.Count(), y.Count())
	}
	pair.X, pair.Y = x, y
	return pair, nil
}
