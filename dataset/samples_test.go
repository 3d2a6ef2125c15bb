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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestMatrix_SubSet(t *testing.T) {
	m := NewMatrix(mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6}))
	assert.Equal(t, 3, m.Count())
	sub := m.SubSet([]int{2, 0})
	assert.Equal(t, 2, sub.Count())
	assert.Equal(t, []float64{5, 6}, sub.RawRowView(0))
	assert.Equal(t, []float64{1, 2}, sub.RawRowView(1))
	// subsets do not share memory
	sub.Set(0, 0, 100)
	assert.Equal(t, 5.0, m.At(2, 0))

	empty := m.SubSet(nil)
	assert.Zero(t, empty.Count())
	assert.Zero(t, Matrix{}.Count())
}

func TestMatrix_Columns(t *testing.T) {
	m := NewMatrix(mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6}))
	left, right := m.Columns(0, 2), m.Columns(2, 3)
	assert.Equal(t, []float64{1, 2, 4, 5}, left.RawMatrix().Data)
	assert.Equal(t, []float64{3, 6}, right.RawMatrix().Data)
}

func TestVStack(t *testing.T) {
	m := vstack([]*mat.Dense{
		mat.NewDense(1, 2, []float64{1, 2}),
		mat.NewDense(2, 2, []float64{3, 4, 5, 6}),
	})
	rows, cols := m.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, []float64{5, 6}, m.RawRowView(2))
}

func TestDStack(t *testing.T) {
	a := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := mat.NewDense(2, 3, []float64{10, 20, 30, 40, 50, 60})
	tensor, err := DStack(a, b)
	require.NoError(t, err)
	samples, timesteps, channels := tensor.Shape()
	assert.Equal(t, 2, samples)
	assert.Equal(t, 3, timesteps)
	assert.Equal(t, 2, channels)
	assert.Equal(t, 6.0, tensor.At(1, 2, 0))
	assert.Equal(t, 60.0, tensor.At(1, 2, 1))
	assert.True(t, mat.Equal(a, tensor.Channel(0)))
	assert.True(t, mat.Equal(b, tensor.Channel(1)))

	_, err = DStack(a, mat.NewDense(3, 2, nil))
	assert.ErrorIs(t, err, ErrShape)
	assert.Contains(t, err.Error(), "channel 1")
	_, err = DStack()
	assert.ErrorIs(t, err, ErrShape)
}

func TestTensor_SubSet(t *testing.T) {
	tensor, err := DStack(
		mat.NewDense(3, 1, []float64{1, 2, 3}),
		mat.NewDense(3, 1, []float64{4, 5, 6}))
	require.NoError(t, err)
	sub := tensor.SubSet([]int{2, 1})
	assert.Equal(t, 2, sub.Count())
	assert.Equal(t, []float64{3, 6, 2, 5}, sub.Data)
	assert.Zero(t, tensor.SubSet(nil).Count())
	assert.Zero(t, (*Tensor)(nil).Count())
}
