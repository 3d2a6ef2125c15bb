// Copyright 2024 gorse Project Authors
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

package datautil

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/gorse-io/sarah/common/util"
	"github.com/juju/errors"
	"gonum.org/v1/gonum/mat"
)

const maxLineSize = 1 << 20

var (
	ErrEmpty  = errors.NotFoundf("numeric rows")
	ErrFormat = errors.NotValidf("numeric text")
)

// LoadTxt loads a whitespace delimited text file of floats into a matrix.
func LoadTxt(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer f.Close()
	return ParseTxt(f, path)
}

// ParseTxt reads whitespace delimited floats from r, one row per line. Blank
// lines are skipped and every row must have as many values as the first one.
// The name is only used in error messages.
func ParseTxt(r io.Reader, name string) (*mat.Dense, error) {
	var (
		data    []float64
		rows    int
		columns int
		lineNum int
	)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if rows == 0 {
			columns = len(fields)
		} else if len(fields) != columns {
			return nil, errors.Annotatef(ErrFormat, "%s:%d: expected %d columns, got %d",
				name, lineNum, columns, len(fields))
		}
		for _, field := range fields {
			v, err := util.ParseFloat[float64](field)
			if err != nil {
				return nil, errors.Annotatef(ErrFormat, "%s:%d: invalid value %q", name, lineNum, field)
			}
			data = append(data, v)
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Annotatef(err, "read %s", name)
	}
	if rows == 0 {
		return nil, errors.Annotatef(ErrEmpty, "%s", name)
	}
	return mat.NewDense(rows, columns, data), nil
}
