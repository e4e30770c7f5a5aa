package farr

import (
	"github.com/teranos/farr/errors"
	"github.com/teranos/farr/nd"
)

// UnravelIndex converts a one-based flat position into a one-based
// coordinate for the given shape, in column-major order: the first axis
// varies fastest.
func UnravelIndex(i int, shape []int) ([]int, error) {
	size := 1
	for _, d := range shape {
		if d <= 0 {
			return nil, errors.NewShapef("dimension sizes must be positive, got %v", shape)
		}
		size *= d
	}
	if i == 0 {
		return nil, errors.NewInvalidIndexf("index 0 not permitted, arrays are one-based")
	}
	if i < 0 || i > size {
		return nil, errors.NewInvalidIndexf("flat index %d out of range for shape %v", i, shape)
	}
	rest := i - 1
	coord := make([]int, len(shape))
	for d, n := range shape {
		coord[d] = rest%n + 1
		rest /= n
	}
	return coord, nil
}

// TileVec repeats a 3-vector n times as the columns of a 3 by n array.
func TileVec(vec []float64, n int) (*FArray, error) {
	if len(vec) != 3 {
		return nil, errors.NewShapef("tilevec requires a 3-vector, got length %d", len(vec))
	}
	if n <= 0 {
		return nil, errors.NewShapef("tilevec repeat count must be positive, got %d", n)
	}
	a, err := nd.Zeros(nd.Float64, 3, n)
	if err != nil {
		return nil, err
	}
	for j := 0; j < n; j++ {
		for i, v := range vec {
			if err := a.SetFloat(v, i, j); err != nil {
				return nil, err
			}
		}
	}
	return Wrap(a), nil
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Vars allocates one rank-0 Float64 array per name, registers each in ns
// and returns them in order, a convenience for unpacking scalar outputs.
func Vars(ns map[string]*FArray, names ...string) []*FArray {
	out := make([]*FArray, len(names))
	for k, name := range names {
		v := ScalarOf(0)
		ns[name] = v
		out[k] = v
	}
	return out
}
