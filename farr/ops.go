package farr

import (
	"github.com/teranos/farr/errors"
	"github.com/teranos/farr/nd"
)

// mapAxis applies the axis convention inherited from the Fortran bindings:
// positive axes shift down by one, so axis 1 is the first axis. Axis 0 also
// means the first axis. NoAxis passes through.
func mapAxis(axis int) int {
	if axis > 0 {
		return axis - 1
	}
	return axis
}

// oneUp shifts every element of an integer result up by one, turning
// engine positions into one-based positions.
func oneUp(a *nd.Array) (*nd.Array, error) {
	vals, err := a.Ints()
	if err != nil {
		return nil, err
	}
	for k := range vals {
		vals[k]++
	}
	shape := a.Shape()
	if len(shape) == 0 {
		return nd.ScalarInt(vals[0]), nil
	}
	return nd.FromInts(vals, shape...)
}

// NonZero returns one integer array per axis holding the one-based
// coordinates of the non-zero elements, in column-major order.
func (f *FArray) NonZero() ([]*FArray, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	coords, err := f.arr.NonZero()
	if err != nil {
		return nil, err
	}
	out := make([]*FArray, len(coords))
	for d, c := range coords {
		up, err := oneUp(c)
		if err != nil {
			return nil, err
		}
		out[d] = &FArray{arr: up}
	}
	return out, nil
}

// ArgMin returns the one-based position of the smallest element, either
// over the flattened array (NoAxis) or along one axis.
func (f *FArray) ArgMin(axis int) (*FArray, error) {
	return f.argOp(axis, (*nd.Array).ArgMin)
}

// ArgMax returns the one-based position of the largest element, either
// over the flattened array (NoAxis) or along one axis.
func (f *FArray) ArgMax(axis int) (*FArray, error) {
	return f.argOp(axis, (*nd.Array).ArgMax)
}

// ArgSort returns the one-based positions that would sort the array,
// flattened (NoAxis) or lane by lane along one axis. The sort is stable.
func (f *FArray) ArgSort(axis int) (*FArray, error) {
	return f.argOp(axis, (*nd.Array).ArgSort)
}

func (f *FArray) argOp(axis int, op func(*nd.Array, int) (*nd.Array, error)) (*FArray, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	res, err := op(f.arr, mapAxis(axis))
	if err != nil {
		return nil, err
	}
	up, err := oneUp(res)
	if err != nil {
		return nil, err
	}
	return &FArray{arr: up}, nil
}

// indexList flattens a scalar, sequence or integer array index into
// engine positions.
func indexList(idx Index) ([]int, error) {
	switch e := idx.(type) {
	case Ix:
		m, err := mapScalar(int(e))
		if err != nil {
			return nil, err
		}
		return []int{m}, nil
	case Seq:
		list, err := mapSeq(e)
		if err != nil {
			return nil, err
		}
		return []int(list), nil
	case *FArray:
		sel, err := mapArray(e)
		if err != nil {
			return nil, err
		}
		list, ok := sel.(nd.List)
		if !ok {
			return nil, errors.NewKindf("index array must be integer")
		}
		return []int(list), nil
	default:
		return nil, errors.NewInvalidIndexf("cannot build a position list from %T", idx)
	}
}

// Take copies the elements at the given one-based positions into an owned
// array, flat over the whole array (NoAxis) or along one axis.
func (f *FArray) Take(indices Index, axis int) (*FArray, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	list, err := indexList(indices)
	if err != nil {
		return nil, err
	}
	res, err := f.arr.Take(list, mapAxis(axis))
	if err != nil {
		return nil, err
	}
	return &FArray{arr: res}, nil
}

// Put writes values at the given one-based flat positions, in column-major
// order. A single value broadcasts over all positions.
func (f *FArray) Put(indices Index, values *FArray) error {
	if err := f.check(); err != nil {
		return err
	}
	if err := values.check(); err != nil {
		return err
	}
	list, err := indexList(indices)
	if err != nil {
		return err
	}
	return f.arr.Put(list, values.arr)
}
