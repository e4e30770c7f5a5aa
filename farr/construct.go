package farr

import (
	"github.com/teranos/farr/errors"
	"github.com/teranos/farr/nd"
)

// Zeros returns a zero-filled Float64 array of the given shape.
func Zeros(shape ...int) (*FArray, error) {
	a, err := nd.Zeros(nd.Float64, shape...)
	if err != nil {
		return nil, err
	}
	return Wrap(a), nil
}

// ZerosKind returns a zero-filled array of an explicit element kind.
func ZerosKind(kind nd.Kind, shape ...int) (*FArray, error) {
	a, err := nd.Zeros(kind, shape...)
	if err != nil {
		return nil, err
	}
	return Wrap(a), nil
}

// Of returns a rank-1 Float64 array holding values.
func Of(values ...float64) (*FArray, error) {
	a, err := nd.FromFloats(values, len(values))
	if err != nil {
		return nil, err
	}
	return Wrap(a), nil
}

// OfInts returns a rank-1 Int64 array holding values.
func OfInts(values ...int64) (*FArray, error) {
	a, err := nd.FromInts(values, len(values))
	if err != nil {
		return nil, err
	}
	return Wrap(a), nil
}

// OfBools returns a rank-1 Bool array holding values.
func OfBools(values ...bool) (*FArray, error) {
	a, err := nd.FromBools(values, len(values))
	if err != nil {
		return nil, err
	}
	return Wrap(a), nil
}

// FromFloats copies column-major data into a new Float64 array of the
// given shape.
func FromFloats(data []float64, shape ...int) (*FArray, error) {
	a, err := nd.FromFloats(data, shape...)
	if err != nil {
		return nil, err
	}
	return Wrap(a), nil
}

// FromInts copies column-major data into a new Int64 array of the given
// shape.
func FromInts(data []int64, shape ...int) (*FArray, error) {
	a, err := nd.FromInts(data, shape...)
	if err != nil {
		return nil, err
	}
	return Wrap(a), nil
}

// From2D builds a rank-2 Float64 array from row slices. All rows must have
// the same length. rows[i][j] lands at one-based position (i+1, j+1).
func From2D(rows [][]float64) (*FArray, error) {
	if len(rows) == 0 {
		return nil, errors.NewShapef("no rows")
	}
	m, n := len(rows), len(rows[0])
	a, err := nd.Zeros(nd.Float64, m, n)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, errors.NewShapef("row %d has %d elements, want %d", i+1, len(row), n)
		}
		for j, v := range row {
			if err := a.SetFloat(v, i, j); err != nil {
				return nil, err
			}
		}
	}
	return Wrap(a), nil
}

// ScalarOf returns a rank-0 Float64 array holding v.
func ScalarOf(v float64) *FArray {
	return Wrap(nd.Scalar(v))
}

// Identity returns the n by n identity matrix.
func Identity(n int) (*FArray, error) {
	a, err := nd.Identity(n)
	if err != nil {
		return nil, err
	}
	return Wrap(a), nil
}
