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
	"github.com/juju/errors"
	"gonum.org/v1/gonum/mat"
)

var ErrShape = errors.NotValidf("shape")

// Samples is a collection of rows indexed along the leading dimension.
type Samples[T any] interface {
	// Count returns the number of samples.
	Count() int
	// SubSet returns a new collection holding the samples at indices, in order.
	SubSet(indices []int) T
}

// Pair is a feature collection with its row aligned labels.
type Pair[X, Y any] struct {
	X X
	Y Y
}

// Matrix is a dense sample matrix, one sample per row. An empty matrix is
// represented by the zero value of mat.Dense.
type Matrix struct {
	*mat.Dense
}

func NewMatrix(m *mat.Dense) Matrix {
	return Matrix{Dense: m}
}

func (m Matrix) Count() int {
	if m.Dense == nil || m.IsEmpty() {
		return 0
	}
	rows, _ := m.Dims()
	return rows
}

func (m Matrix) SubSet(indices []int) Matrix {
	if len(indices) == 0 {
		return Matrix{Dense: &mat.Dense{}}
	}
	_, cols := m.Dims()
	sub := mat.NewDense(len(indices), cols, nil)
	for i, index := range indices {
		sub.SetRow(i, m.RawRowView(index))
	}
	return Matrix{Dense: sub}
}

// Columns returns a copy of columns [begin, end).
func (m Matrix) Columns(begin, end int) Matrix {
	rows, _ := m.Dims()
	return Matrix{Dense: mat.DenseCopyOf(m.Slice(0, rows, begin, end))}
}

// vstack concatenates matrices with the same number of columns vertically.
func vstack(matrices []*mat.Dense) *mat.Dense {
	var rows, cols int
	for _, m := range matrices {
		r, c := m.Dims()
		rows += r
		cols = c
	}
	data := make([]float64, 0, rows*cols)
	for _, m := range matrices {
		r, _ := m.Dims()
		for i := 0; i < r; i++ {
			data = append(data, m.RawRowView(i)...)
		}
	}
	return mat.NewDense(rows, cols, data)
}

// Tensor is a dense (samples, timesteps, channels) array stored in row-major
// order.
type Tensor struct {
	Samples   int
	Timesteps int
	Channels  int
	Data      []float64
}

func NewTensor(samples, timesteps, channels int) *Tensor {
	return &Tensor{
		Samples:   samples,
		Timesteps: timesteps,
		Channels:  channels,
		Data:      make([]float64, samples*timesteps*channels),
	}
}

// DStack stacks equally shaped matrices along a new trailing axis. The k-th
// matrix becomes channel k.
func DStack(matrices ...*mat.Dense) (*Tensor, error) {
	if len(matrices) == 0 {
		return nil, errors.Annotate(ErrShape, "no matrix to stack")
	}
	samples, timesteps := matrices[0].Dims()
	for k, m := range matrices[1:] {
		if r, c := m.Dims(); r != samples || c != timesteps {
			return nil, errors.Annotatef(ErrShape, "channel %d is %dx%d, expected %dx%d",
				k+1, r, c, samples, timesteps)
		}
	}
	t := NewTensor(samples, timesteps, len(matrices))
	for k, m := range matrices {
		for i := 0; i < samples; i++ {
			for j, v := range m.RawRowView(i) {
				t.Set(i, j, k, v)
			}
		}
	}
	return t, nil
}

func (t *Tensor) Shape() (samples, timesteps, channels int) {
	return t.Samples, t.Timesteps, t.Channels
}

func (t *Tensor) index(i, j, k int) int {
	return (i*t.Timesteps+j)*t.Channels + k
}

func (t *Tensor) At(i, j, k int) float64 {
	return t.Data[t.index(i, j, k)]
}

func (t *Tensor) Set(i, j, k int, v float64) {
	t.Data[t.index(i, j, k)] = v
}

func (t *Tensor) Count() int {
	if t == nil {
		return 0
	}
	return t.Samples
}

func (t *Tensor) SubSet(indices []int) *Tensor {
	sub := NewTensor(len(indices), t.Timesteps, t.Channels)
	size := t.Timesteps * t.Channels
	for i, index := range indices {
		copy(sub.Data[i*size:(i+1)*size], t.Data[index*size:(index+1)*size])
	}
	return sub
}

// Channel returns the (samples, timesteps) matrix of channel k.
func (t *Tensor) Channel(k int) *mat.Dense {
	m := mat.NewDense(t.Samples, t.Timesteps, nil)
	for i := 0; i < t.Samples; i++ {
		for j := 0; j < t.Timesteps; j++ {
			m.Set(i, j, t.At(i, j, k))
		}
	}
	return m
}
