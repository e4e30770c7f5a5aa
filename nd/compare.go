package nd

import (
	"github.com/teranos/farr/errors"
)

func kindComparable(k Kind, ordered bool) bool {
	switch k {
	case Float64, Int64, Char:
		return true
	case Bool:
		return !ordered
	}
	return false
}

func (a *Array) compareArr(o *Array, ordered bool, op func(x, y float64) bool) (*Array, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}
	if err := o.guard(); err != nil {
		return nil, err
	}
	if !kindComparable(a.kind, ordered) || !kindComparable(o.kind, ordered) {
		return nil, errors.NewKindf("comparison between %s and %s", a.kind, o.kind)
	}
	if len(a.shape) != len(o.shape) {
		return nil, errors.NewShapef("comparison rank mismatch: %d vs %d", len(a.shape), len(o.shape))
	}
	for d := range a.shape {
		if a.shape[d] != o.shape[d] {
			return nil, errors.NewShapef("comparison shape mismatch: %v vs %v", a.shape, o.shape)
		}
	}
	out, err := allocAny(Bool, a.shape)
	if err != nil {
		return nil, err
	}
	apos, err := a.positions()
	if err != nil {
		return nil, err
	}
	opos, err := o.positions()
	if err != nil {
		return nil, err
	}
	for k := range apos {
		out.b[k] = op(a.num(apos[k]), o.num(opos[k]))
	}
	return out, nil
}

func (a *Array) compareScalar(v float64, ordered bool, op func(x, y float64) bool) (*Array, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}
	if !kindComparable(a.kind, ordered) {
		return nil, errors.NewKindf("comparison on %s array", a.kind)
	}
	out, err := allocAny(Bool, a.shape)
	if err != nil {
		return nil, err
	}
	k := 0
	a.each(func(pos int) error {
		out.b[k] = op(a.num(pos), v)
		k++
		return nil
	})
	return out, nil
}

// Eq compares elementwise for equality. Result kind is Bool, same shape.
func (a *Array) Eq(o *Array) (*Array, error) {
	return a.compareArr(o, false, func(x, y float64) bool { return x == y })
}

// Ne compares elementwise for inequality.
func (a *Array) Ne(o *Array) (*Array, error) {
	return a.compareArr(o, false, func(x, y float64) bool { return x != y })
}

// Lt compares elementwise with <.
func (a *Array) Lt(o *Array) (*Array, error) {
	return a.compareArr(o, true, func(x, y float64) bool { return x < y })
}

// Le compares elementwise with <=.
func (a *Array) Le(o *Array) (*Array, error) {
	return a.compareArr(o, true, func(x, y float64) bool { return x <= y })
}

// Gt compares elementwise with >.
func (a *Array) Gt(o *Array) (*Array, error) {
	return a.compareArr(o, true, func(x, y float64) bool { return x > y })
}

// Ge compares elementwise with >=.
func (a *Array) Ge(o *Array) (*Array, error) {
	return a.compareArr(o, true, func(x, y float64) bool { return x >= y })
}

// EqScalar compares every element against v for equality.
func (a *Array) EqScalar(v float64) (*Array, error) {
	return a.compareScalar(v, false, func(x, y float64) bool { return x == y })
}

// NeScalar compares every element against v for inequality.
func (a *Array) NeScalar(v float64) (*Array, error) {
	return a.compareScalar(v, false, func(x, y float64) bool { return x != y })
}

// LtScalar compares every element against v with <.
func (a *Array) LtScalar(v float64) (*Array, error) {
	return a.compareScalar(v, true, func(x, y float64) bool { return x < y })
}

// LeScalar compares every element against v with <=.
func (a *Array) LeScalar(v float64) (*Array, error) {
	return a.compareScalar(v, true, func(x, y float64) bool { return x <= y })
}

// GtScalar compares every element against v with >.
func (a *Array) GtScalar(v float64) (*Array, error) {
	return a.compareScalar(v, true, func(x, y float64) bool { return x > y })
}

// GeScalar compares every element against v with >=.
func (a *Array) GeScalar(v float64) (*Array, error) {
	return a.compareScalar(v, true, func(x, y float64) bool { return x >= y })
}
