package nd

import (
	"math"

	"github.com/teranos/farr/errors"
)

// Sum adds elements over the whole array (NoAxis, rank-0 result) or along
// one axis (result drops that axis). Defined for numeric kinds; the result
// keeps the input kind.
func (a *Array) Sum(axis int) (*Array, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}
	if a.kind != Float64 && a.kind != Int64 {
		return nil, errors.NewKindf("sum on %s array", a.kind)
	}

	if axis == NoAxis {
		total := 0.0
		a.each(func(pos int) error {
			total += a.num(pos)
			return nil
		})
		out, err := allocAny(a.kind, nil)
		if err != nil {
			return nil, err
		}
		out.setNum(0, total)
		return out, nil
	}

	if err := a.checkAxis(axis); err != nil {
		return nil, err
	}
	rshape := dropAxis(a.shape, axis)
	out, err := allocAny(a.kind, rshape)
	if err != nil {
		return nil, err
	}
	rstrides := colMajorStrides(rshape)
	totals := make([]float64, out.Size())
	a.eachCoord(func(ix []int, pos int) error {
		totals[reducedFlat(ix, axis, rstrides)] += a.num(pos)
		return nil
	})
	for k, v := range totals {
		out.setNum(k, v)
	}
	return out, nil
}

// Mean averages elements over the whole array or along one axis. The result
// is always Float64.
func (a *Array) Mean(axis int) (*Array, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}
	if a.kind != Float64 && a.kind != Int64 {
		return nil, errors.NewKindf("mean on %s array", a.kind)
	}
	if a.Size() == 0 {
		return nil, errors.NewShapef("mean of empty array")
	}

	if axis == NoAxis {
		total := 0.0
		a.each(func(pos int) error {
			total += a.num(pos)
			return nil
		})
		out, err := allocAny(Float64, nil)
		if err != nil {
			return nil, err
		}
		out.f[0] = total / float64(a.Size())
		return out, nil
	}

	if err := a.checkAxis(axis); err != nil {
		return nil, err
	}
	sums, err := a.Sum(axis)
	if err != nil {
		return nil, err
	}
	out, err := allocAny(Float64, sums.shape)
	if err != nil {
		return nil, err
	}
	n := float64(a.shape[axis])
	for k := range out.f {
		out.f[k] = sums.num(k) / n
	}
	return out, nil
}

func (a *Array) truthReduce(axis int, identity bool, combine func(acc, v bool) bool) (*Array, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}

	if axis == NoAxis {
		acc := identity
		a.each(func(pos int) error {
			acc = combine(acc, a.truthy(pos))
			return nil
		})
		out, err := allocAny(Bool, nil)
		if err != nil {
			return nil, err
		}
		out.b[0] = acc
		return out, nil
	}

	if err := a.checkAxis(axis); err != nil {
		return nil, err
	}
	rshape := dropAxis(a.shape, axis)
	out, err := allocAny(Bool, rshape)
	if err != nil {
		return nil, err
	}
	for k := range out.b {
		out.b[k] = identity
	}
	rstrides := colMajorStrides(rshape)
	a.eachCoord(func(ix []int, pos int) error {
		k := reducedFlat(ix, axis, rstrides)
		out.b[k] = combine(out.b[k], a.truthy(pos))
		return nil
	})
	return out, nil
}

// All reports whether every element is non-zero, over the whole array or
// along one axis. Result kind is Bool.
func (a *Array) All(axis int) (*Array, error) {
	return a.truthReduce(axis, true, func(acc, v bool) bool { return acc && v })
}

// Any reports whether any element is non-zero, over the whole array or
// along one axis. Result kind is Bool.
func (a *Array) Any(axis int) (*Array, error) {
	return a.truthReduce(axis, false, func(acc, v bool) bool { return acc || v })
}

// Dot returns the inner product of two rank-1 numeric arrays.
func (a *Array) Dot(o *Array) (float64, error) {
	if err := a.guard(); err != nil {
		return 0, err
	}
	if err := o.guard(); err != nil {
		return 0, err
	}
	if a.kind != Float64 && a.kind != Int64 {
		return 0, errors.NewKindf("dot on %s array", a.kind)
	}
	if o.kind != Float64 && o.kind != Int64 {
		return 0, errors.NewKindf("dot on %s array", o.kind)
	}
	if len(a.shape) != 1 || len(o.shape) != 1 {
		return 0, errors.NewShapef("dot requires rank-1 arrays, got rank %d and %d", len(a.shape), len(o.shape))
	}
	if a.shape[0] != o.shape[0] {
		return 0, errors.NewShapef("dot length mismatch: %d vs %d", a.shape[0], o.shape[0])
	}
	apos, err := a.positions()
	if err != nil {
		return 0, err
	}
	opos, err := o.positions()
	if err != nil {
		return 0, err
	}
	total := 0.0
	for k := range apos {
		total += a.num(apos[k]) * o.num(opos[k])
	}
	return total, nil
}

// Sqrt returns an owned elementwise square root of a Float64 array.
func (a *Array) Sqrt() (*Array, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}
	if a.kind != Float64 {
		return nil, errors.NewKindf("sqrt on %s array", a.kind)
	}
	out, err := allocAny(Float64, a.shape)
	if err != nil {
		return nil, err
	}
	k := 0
	a.each(func(pos int) error {
		out.f[k] = math.Sqrt(a.f[pos])
		k++
		return nil
	})
	return out, nil
}
