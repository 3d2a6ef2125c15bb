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
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomGenerator_Permutation(t *testing.T) {
	rng := NewRandomGenerator(0)
	perm := rng.Permutation(100)
	assert.Len(t, perm, 100)
	sorted := append([]int(nil), perm...)
	sort.Ints(sorted)
	for i := range sorted {
		assert.Equal(t, i, sorted[i])
	}
	assert.Empty(t, rng.Permutation(0))
	assert.Empty(t, rng.Permutation(-1))
}

func TestRandomGenerator_Seed(t *testing.T) {
	a := NewRandomGenerator(42).Permutation(50)
	b := NewRandomGenerator(42).Permutation(50)
	c := NewRandomGenerator(43).Permutation(50)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
