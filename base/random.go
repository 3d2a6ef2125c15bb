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

package base

import (
	"math/rand"
	"time"
)

// RandomGenerator is the random source used for shuffling samples.
type RandomGenerator struct {
	*rand.Rand
}

// NewRandomGenerator creates a RandomGenerator.
func NewRandomGenerator(seed int64) RandomGenerator {
	return RandomGenerator{rand.New(rand.NewSource(seed))}
}

// NewTimeRandomGenerator creates a RandomGenerator seeded by the current time.
// Splits made with it are not reproducible.
func NewTimeRandomGenerator() RandomGenerator {
	return NewRandomGenerator(time.Now().UnixNano())
}

// Permutation returns a random permutation of [0, n). An empty slice is
// returned for n <= 0.
func (rng RandomGenerator) Permutation(n int) []int {
	if n <= 0 {
		return []int{}
	}
	return rng.Perm(n)
}
