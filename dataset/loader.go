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
	"github.com/gorse-io/sarah/base"
	"github.com/gorse-io/sarah/common/datautil"
)

// Loader downloads, extracts and parses datasets. Archives are fetched only
// if their root directory is missing from the fetcher's directory.
type Loader struct {
	Fetcher        *datautil.Fetcher
	OpportunityURL string
	UCIHARURL      string
	// TrainSize is the train proportion used by LoadOpportunity.
	TrainSize float64
	// Rng shuffles samples before splitting.
	Rng base.RandomGenerator
}

// NewLoader creates a loader extracting archives under dir, or the working
// directory if dir is empty.
func NewLoader(dir string) *Loader {
	return &Loader{
		Fetcher:        datautil.NewFetcher(dir),
		OpportunityURL: OpportunityURL,
		UCIHARURL:      UCIHARURL,
		TrainSize:      DefaultTrainSize,
		Rng:            base.NewTimeRandomGenerator(),
	}
}

// LoadOpportunity loads the Opportunity dataset into the working directory
// and splits it randomly with the default train size.
func LoadOpportunity() (train, test Pair[Matrix, Matrix], err error) {
	return NewLoader("").LoadOpportunity()
}

// LoadUCIHAR loads the UCI HAR dataset into the working directory.
func LoadUCIHAR() (train, test Pair[*Tensor, Matrix], err error) {
	return NewLoader("").LoadUCIHAR()
}
