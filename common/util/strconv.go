package util

import (
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// ParseFloat parses s with the precision of T.
func ParseFloat[T constraints.Float](s string) (T, error) {
	var zero T
	v, err := strconv.ParseFloat(s, int(unsafe.Sizeof(zero))*8)
	return T(v), err
}
