package farr

import "github.com/teranos/farr/nd"

// Rows returns one view per position along the first axis. Each row aliases
// this array's storage and goes stale with it. A rank-0 array yields
// itself.
func (f *FArray) Rows() ([]*FArray, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	if f.Rank() == 0 {
		return []*FArray{f}, nil
	}
	n := f.arr.Dim(0)
	out := make([]*FArray, 0, n)
	for k := 0; k < n; k++ {
		row, err := f.arr.Select(nd.At(k))
		if err != nil {
			return nil, err
		}
		out = append(out, f.wrap(row))
	}
	return out, nil
}

// Cols returns one view per position along the last axis. For a rank-2
// array these are its columns. A rank-0 array yields itself.
func (f *FArray) Cols() ([]*FArray, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	rank := f.Rank()
	if rank == 0 {
		return []*FArray{f}, nil
	}
	n := f.arr.Dim(rank - 1)
	out := make([]*FArray, 0, n)
	for k := 0; k < n; k++ {
		sels := make([]nd.Sel, rank)
		for d := 0; d < rank-1; d++ {
			sels[d] = nd.All()
		}
		sels[rank-1] = nd.At(k)
		col, err := f.arr.Select(sels...)
		if err != nil {
			return nil, err
		}
		out = append(out, f.wrap(col))
	}
	return out, nil
}

// EachRow calls fn for every first-axis view with its one-based position.
// Iteration stops at the first error.
func (f *FArray) EachRow(fn func(i int, row *FArray) error) error {
	rows, err := f.Rows()
	if err != nil {
		return err
	}
	for k, row := range rows {
		if err := fn(k+1, row); err != nil {
			return err
		}
	}
	return nil
}

// EachCol calls fn for every last-axis view with its one-based position.
func (f *FArray) EachCol(fn func(j int, col *FArray) error) error {
	cols, err := f.Cols()
	if err != nil {
		return err
	}
	for k, col := range cols {
		if err := fn(k+1, col); err != nil {
			return err
		}
	}
	return nil
}

// FRange returns one-based integer sequences with inclusive bounds:
// FRange(n) counts 1..n, FRange(lo, hi) counts lo..hi, and a third
// argument sets the step. It panics on any other argument count.
func FRange(bounds ...int) []int {
	lo, hi, step := 1, 0, 1
	switch len(bounds) {
	case 1:
		hi = bounds[0]
	case 2:
		lo, hi = bounds[0], bounds[1]
	case 3:
		lo, hi, step = bounds[0], bounds[1], bounds[2]
	default:
		panic("farr.FRange takes 1 to 3 arguments")
	}
	if step == 0 {
		panic("farr.FRange step must not be zero")
	}
	var out []int
	if step > 0 {
		for v := lo; v <= hi; v += step {
			out = append(out, v)
		}
	} else {
		for v := lo; v >= hi; v += step {
			out = append(out, v)
		}
	}
	return out
}
