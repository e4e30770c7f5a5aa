package farr

import (
	"github.com/teranos/farr/errors"
	"github.com/teranos/farr/nd"
)

// FArray is a one-based window over an engine array. An FArray produced by
// indexing another keeps a link to it; once the parent's storage is
// released the view is stale and every operation fails with
// errors.ErrStaleView. Owned results (advanced selections, reductions,
// copies) carry no link and outlive their source.
type FArray struct {
	arr    *nd.Array
	parent *FArray
}

// Wrap adopts an engine array without copying it.
func Wrap(a *nd.Array) *FArray {
	return &FArray{arr: a}
}

// ND exposes the underlying engine array.
func (f *FArray) ND() *nd.Array { return f.arr }

// Kind returns the element kind.
func (f *FArray) Kind() nd.Kind { return f.arr.Kind() }

// Rank returns the number of axes.
func (f *FArray) Rank() int { return f.arr.Rank() }

// Shape returns a copy of the dimension sizes.
func (f *FArray) Shape() []int { return f.arr.Shape() }

// Size returns the total element count.
func (f *FArray) Size() int { return f.arr.Size() }

// Owns reports whether this array owns its storage.
func (f *FArray) Owns() bool { return f.arr.Owns() }

// Alive reports whether the backing storage is still usable.
func (f *FArray) Alive() bool { return f.arr.Alive() }

// Release frees the backing storage. Views over it become stale for good.
func (f *FArray) Release() {
	f.arr.Release()
}

// check is the per-operation liveness gate. The parent link is consulted
// first so a stale view names its cause.
func (f *FArray) check() error {
	if f.parent != nil && !f.parent.Alive() {
		return errors.Wrap(errors.ErrStaleView, "parent array storage released")
	}
	if !f.arr.Alive() {
		return errors.ErrStaleView
	}
	return nil
}

// wrap packages an engine result. Views keep f as parent; owned results
// stand alone.
func (f *FArray) wrap(res *nd.Array) *FArray {
	if res.Owns() {
		return &FArray{arr: res}
	}
	return &FArray{arr: res, parent: f}
}

// sels rewrites an index expression into engine selectors. A lone boolean
// array covering every element selects flat over the whole array and must
// reach the engine on its own, without the implicit leading ellipsis.
func (f *FArray) sels(ix []Index) ([]nd.Sel, error) {
	if len(ix) == 1 {
		if m, ok := ix[0].(*FArray); ok && m.arr.Kind() == nd.Bool && m.Size() == f.Size() && f.Rank() != 1 {
			sel, err := mapArray(m)
			if err != nil {
				return nil, err
			}
			return []nd.Sel{sel}, nil
		}
	}
	return translate(f.Rank(), ix)
}

// Get applies a one-based index expression. Scalar and range indices yield
// a live view sharing this array's storage; a Seq or index array anywhere
// in the expression yields an owned copy with outer-product semantics.
func (f *FArray) Get(ix ...Index) (*FArray, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	sels, err := f.sels(ix)
	if err != nil {
		return nil, err
	}
	res, err := f.arr.Select(sels...)
	if err != nil {
		return nil, err
	}
	return f.wrap(res), nil
}

// At reads one Float64 element at a full one-based coordinate.
func (f *FArray) At(ix ...int) (float64, error) {
	zb, err := f.coord(ix)
	if err != nil {
		return 0, err
	}
	return f.arr.Float(zb...)
}

// IntAt reads one Int64 element at a full one-based coordinate.
func (f *FArray) IntAt(ix ...int) (int64, error) {
	zb, err := f.coord(ix)
	if err != nil {
		return 0, err
	}
	return f.arr.Int(zb...)
}

// BoolAt reads one Bool element at a full one-based coordinate.
func (f *FArray) BoolAt(ix ...int) (bool, error) {
	zb, err := f.coord(ix)
	if err != nil {
		return false, err
	}
	return f.arr.Bool(zb...)
}

// ByteAt reads one Char element at a full one-based coordinate.
func (f *FArray) ByteAt(ix ...int) (byte, error) {
	zb, err := f.coord(ix)
	if err != nil {
		return 0, err
	}
	return f.arr.Byte(zb...)
}

// SetAt writes one Float64 element at a full one-based coordinate.
func (f *FArray) SetAt(v float64, ix ...int) error {
	zb, err := f.coord(ix)
	if err != nil {
		return err
	}
	return f.arr.SetFloat(v, zb...)
}

// SetIntAt writes one Int64 element at a full one-based coordinate.
func (f *FArray) SetIntAt(v int64, ix ...int) error {
	zb, err := f.coord(ix)
	if err != nil {
		return err
	}
	return f.arr.SetInt(v, zb...)
}

// SetBoolAt writes one Bool element at a full one-based coordinate.
func (f *FArray) SetBoolAt(v bool, ix ...int) error {
	zb, err := f.coord(ix)
	if err != nil {
		return err
	}
	return f.arr.SetBool(v, zb...)
}

// SetByteAt writes one Char element at a full one-based coordinate.
func (f *FArray) SetByteAt(v byte, ix ...int) error {
	zb, err := f.coord(ix)
	if err != nil {
		return err
	}
	return f.arr.SetByte(v, zb...)
}

func (f *FArray) coord(ix []int) ([]int, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	zb := make([]int, len(ix))
	for d, i := range ix {
		m, err := mapScalar(i)
		if err != nil {
			return nil, errors.Wrapf(err, "axis %d", d+1)
		}
		zb[d] = m
	}
	return zb, nil
}

// Set assigns a scalar through a one-based index expression; a size-one
// source broadcasts over the selection. An expression of only ranges and
// ellipses bypasses translation, see rangesOnly.
func (f *FArray) Set(v float64, ix ...Index) error {
	return f.SetArr(Wrap(nd.Scalar(v)), ix...)
}

// SetInt assigns an integer scalar through a one-based index expression.
func (f *FArray) SetInt(v int64, ix ...Index) error {
	return f.SetArr(Wrap(nd.ScalarInt(v)), ix...)
}

// SetArr assigns the elements of src through a one-based index expression.
// The source is consumed in column-major order and must match the selection
// size unless it holds a single element, which broadcasts.
func (f *FArray) SetArr(src *FArray, ix ...Index) error {
	if err := f.check(); err != nil {
		return err
	}
	if err := src.check(); err != nil {
		return err
	}
	var sels []nd.Sel
	var err error
	if rangesOnly(ix) {
		sels, err = passthrough(f.Rank(), ix)
	} else {
		sels, err = f.sels(ix)
	}
	if err != nil {
		return err
	}
	return f.arr.Assign(src.arr, sels...)
}

// Fill sets every element of a numeric array to v.
func (f *FArray) Fill(v float64) error {
	if err := f.check(); err != nil {
		return err
	}
	return f.arr.Fill(v)
}

// Copy returns an owned, contiguous deep copy with no parent link.
func (f *FArray) Copy() (*FArray, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	c, err := f.arr.Copy()
	if err != nil {
		return nil, err
	}
	return &FArray{arr: c}, nil
}

// Item returns the value of a rank-0 Float64 array.
func (f *FArray) Item() (float64, error) {
	if err := f.check(); err != nil {
		return 0, err
	}
	return f.arr.Float()
}

// IntItem returns the value of a rank-0 Int64 array.
func (f *FArray) IntItem() (int64, error) {
	if err := f.check(); err != nil {
		return 0, err
	}
	return f.arr.Int()
}

// BoolItem returns the value of a rank-0 Bool array.
func (f *FArray) BoolItem() (bool, error) {
	if err := f.check(); err != nil {
		return false, err
	}
	return f.arr.Bool()
}

// Floats returns a flat column-major copy of a Float64 array's elements.
func (f *FArray) Floats() ([]float64, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	return f.arr.Floats()
}

// Ints returns a flat column-major copy of an Int64 array's elements.
func (f *FArray) Ints() ([]int64, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	return f.arr.Ints()
}

// Bools returns a flat column-major copy of a Bool array's elements.
func (f *FArray) Bools() ([]bool, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	return f.arr.Bools()
}

// Render formats the array, failing with ErrStaleView once the storage is
// gone so formatting never reads a dead buffer.
func (f *FArray) Render() (string, error) {
	if err := f.check(); err != nil {
		return "", err
	}
	s, err := f.arr.Render()
	if err != nil {
		return "", err
	}
	return "FArray " + s, nil
}

// String implements fmt.Stringer; a stale array renders a marker since
// Stringer cannot fail. Strict callers use Render.
func (f *FArray) String() string {
	s, err := f.Render()
	if err != nil {
		return "FArray[<stale>]"
	}
	return s
}
