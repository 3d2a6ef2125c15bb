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

package dataset

import (
	"math"

	"github.com/gorse-io/sarah/base"
	"github.com/juju/errors"
)

const DefaultTrainSize = 0.8

var (
	ErrInvalidTrainSize  = errors.NotValidf("train size")
	ErrMismatchedSamples = errors.NotValidf("number of samples")
)

// TrainTestSplit shuffles the samples of x and y with rng and splits them into
// a train set of floor(trainSize*N) samples and a test set of the rest. The
// train size must be in (0, 1) and x and y must have the same number of
// samples. A zero RandomGenerator is replaced by a time seeded one.
func TrainTestSplit[X Samples[X], Y Samples[Y]](x X, y Y, trainSize float64, rng base.RandomGenerator) (train, test Pair[X, Y], err error) {
	if !(trainSize > 0 && trainSize < 1) {
		err = errors.Annotatef(ErrInvalidTrainSize, "%v is not in (0, 1)", trainSize)
		return
	}
	if x.Count() != y.Count() {
		err = errors.Annotatef(ErrMismatchedSamples, "%d features and %d labels", x.Count(), y.Count())
		return
	}
	if rng.Rand == nil {
		rng = base.NewTimeRandomGenerator()
	}
	perm := rng.Permutation(x.Count())
	numTrain := int(math.Floor(trainSize * float64(len(perm))))
	trainIndex, testIndex := perm[:numTrain], perm[numTrain:]
	train = Pair[X, Y]{X: x.SubSet(trainIndex), Y: y.SubSet(trainIndex)}
	test = Pair[X, Y]{X: x.SubSet(testIndex), Y: y.SubSet(testIndex)}
	return
}
