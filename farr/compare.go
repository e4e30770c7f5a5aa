package farr

import "github.com/teranos/farr/nd"

// Comparisons apply elementwise and return an owned Bool array of the same
// shape, which can index the source array as a mask.

func (f *FArray) cmpArr(o *FArray, op func(*nd.Array, *nd.Array) (*nd.Array, error)) (*FArray, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	if err := o.check(); err != nil {
		return nil, err
	}
	res, err := op(f.arr, o.arr)
	if err != nil {
		return nil, err
	}
	return &FArray{arr: res}, nil
}

func (f *FArray) cmpScalar(v float64, op func(*nd.Array, float64) (*nd.Array, error)) (*FArray, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	res, err := op(f.arr, v)
	if err != nil {
		return nil, err
	}
	return &FArray{arr: res}, nil
}

// Eq compares elementwise for equality. Shapes must match.
func (f *FArray) Eq(o *FArray) (*FArray, error) { return f.cmpArr(o, (*nd.Array).Eq) }

// Ne compares elementwise for inequality.
func (f *FArray) Ne(o *FArray) (*FArray, error) { return f.cmpArr(o, (*nd.Array).Ne) }

// Lt compares elementwise with <. Bool arrays are not ordered.
func (f *FArray) Lt(o *FArray) (*FArray, error) { return f.cmpArr(o, (*nd.Array).Lt) }

// Le compares elementwise with <=.
func (f *FArray) Le(o *FArray) (*FArray, error) { return f.cmpArr(o, (*nd.Array).Le) }

// Gt compares elementwise with >.
func (f *FArray) Gt(o *FArray) (*FArray, error) { return f.cmpArr(o, (*nd.Array).Gt) }

// Ge compares elementwise with >=.
func (f *FArray) Ge(o *FArray) (*FArray, error) { return f.cmpArr(o, (*nd.Array).Ge) }

// EqScalar compares every element against v for equality.
func (f *FArray) EqScalar(v float64) (*FArray, error) { return f.cmpScalar(v, (*nd.Array).EqScalar) }

// NeScalar compares every element against v for inequality.
func (f *FArray) NeScalar(v float64) (*FArray, error) { return f.cmpScalar(v, (*nd.Array).NeScalar) }

// LtScalar compares every element against v with <.
func (f *FArray) LtScalar(v float64) (*FArray, error) { return f.cmpScalar(v, (*nd.Array).LtScalar) }

// LeScalar compares every element against v with <=.
func (f *FArray) LeScalar(v float64) (*FArray, error) { return f.cmpScalar(v, (*nd.Array).LeScalar) }

// GtScalar compares every element against v with >.
func (f *FArray) GtScalar(v float64) (*FArray, error) { return f.cmpScalar(v, (*nd.Array).GtScalar) }

// GeScalar compares every element against v with >=.
func (f *FArray) GeScalar(v float64) (*FArray, error) { return f.cmpScalar(v, (*nd.Array).GeScalar) }
