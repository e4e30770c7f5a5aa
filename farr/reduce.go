package farr

import (
	"math"

	"github.com/teranos/farr/errors"
	"github.com/teranos/farr/nd"
)

// Sum reduces by addition, over the whole array (NoAxis) or along one
// axis. The axis follows the one-based convention of mapAxis.
func (f *FArray) Sum(axis int) (*FArray, error) {
	return f.reduceOp(axis, (*nd.Array).Sum)
}

// Mean reduces to the arithmetic mean; the result kind is always Float64.
func (f *FArray) Mean(axis int) (*FArray, error) {
	return f.reduceOp(axis, (*nd.Array).Mean)
}

// All reduces by conjunction of element truthiness.
func (f *FArray) All(axis int) (*FArray, error) {
	return f.reduceOp(axis, (*nd.Array).All)
}

// Any reduces by disjunction of element truthiness.
func (f *FArray) Any(axis int) (*FArray, error) {
	return f.reduceOp(axis, (*nd.Array).Any)
}

func (f *FArray) reduceOp(axis int, op func(*nd.Array, int) (*nd.Array, error)) (*FArray, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	res, err := op(f.arr, mapAxis(axis))
	if err != nil {
		return nil, err
	}
	return &FArray{arr: res}, nil
}

// Norm2 returns the squared Euclidean norm. A rank-0 array passes through
// as an owned copy. A rank-1 array reduces to a rank-0 scalar. A rank-2
// array must have a first dimension of size 3 and reduces column-wise to a
// rank-1 array of per-column squared norms. Other ranks fail with ErrShape.
func (f *FArray) Norm2() (*FArray, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	switch f.Rank() {
	case 0:
		return f.Copy()
	case 1:
		v, err := f.arr.Dot(f.arr)
		if err != nil {
			return nil, err
		}
		return &FArray{arr: nd.Scalar(v)}, nil
	case 2:
		shape := f.arr.Shape()
		if shape[0] != 3 {
			return nil, errors.NewShapef("first array dimension should be of size 3, got %d", shape[0])
		}
		out, err := nd.Zeros(nd.Float64, shape[1])
		if err != nil {
			return nil, err
		}
		for j := 0; j < shape[1]; j++ {
			col, err := f.arr.Select(nd.All(), nd.At(j))
			if err != nil {
				return nil, err
			}
			v, err := col.Dot(col)
			if err != nil {
				return nil, err
			}
			if err := out.SetFloat(v, j); err != nil {
				return nil, err
			}
		}
		return &FArray{arr: out}, nil
	default:
		return nil, errors.NewShapef("norm2 only defined up to rank 2, got rank %d", f.Rank())
	}
}

// Norm returns the Euclidean norm: the square root of Norm2 at every rank,
// elementwise for the rank-2 case.
func (f *FArray) Norm() (*FArray, error) {
	n2, err := f.Norm2()
	if err != nil {
		return nil, err
	}
	res, err := n2.arr.Sqrt()
	if err != nil {
		return nil, err
	}
	return &FArray{arr: res}, nil
}

// Normalised returns an owned copy scaled to unit Euclidean norm: the
// single value for rank 0, the whole vector for rank 1, each column
// independently for rank 2.
func (f *FArray) Normalised() (*FArray, error) {
	n, err := f.Norm()
	if err != nil {
		return nil, err
	}
	c, err := f.arr.Copy()
	if err != nil {
		return nil, err
	}
	switch f.Rank() {
	case 0:
		scale, err := n.Item()
		if err != nil {
			return nil, err
		}
		v, err := c.Float()
		if err != nil {
			return nil, err
		}
		if err := c.SetFloat(v / scale); err != nil {
			return nil, err
		}
		return &FArray{arr: c}, nil
	case 1:
		scale, err := n.Item()
		if err != nil {
			return nil, err
		}
		vals, err := c.Floats()
		if err != nil {
			return nil, err
		}
		for k := range vals {
			vals[k] /= scale
		}
		res, err := nd.FromFloats(vals, len(vals))
		if err != nil {
			return nil, err
		}
		return &FArray{arr: res}, nil
	case 2:
		norms, err := n.Floats()
		if err != nil {
			return nil, err
		}
		shape := c.Shape()
		for j := 0; j < shape[1]; j++ {
			for i := 0; i < shape[0]; i++ {
				v, err := c.Float(i, j)
				if err != nil {
					return nil, err
				}
				if err := c.SetFloat(v/norms[j], i, j); err != nil {
					return nil, err
				}
			}
		}
		return &FArray{arr: c}, nil
	default:
		return nil, errors.NewShapef("normalised only defined up to rank 2, got rank %d", f.Rank())
	}
}

// Dot returns the inner product of two rank-1 numeric arrays.
func (f *FArray) Dot(o *FArray) (float64, error) {
	if err := f.check(); err != nil {
		return 0, err
	}
	if err := o.check(); err != nil {
		return 0, err
	}
	return f.arr.Dot(o.arr)
}

// IsNaN reports whether any element of a Float64 array is NaN.
func (f *FArray) IsNaN() (bool, error) {
	vals, err := f.Floats()
	if err != nil {
		return false, err
	}
	for _, v := range vals {
		if math.IsNaN(v) {
			return true, nil
		}
	}
	return false, nil
}
