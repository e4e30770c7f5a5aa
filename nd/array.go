// Package nd implements a small zero-based, column-major numeric array
// engine: contiguous storage, strided views, selection, reductions and
// comparisons. It is the substrate the one-based farr layer translates into;
// it is not a general tensor library.
//
// Arrays are column-major (Fortran order): the first axis varies fastest in
// the flat buffer. Views share their parent's backing storage; releasing the
// storage makes every array over it fail with errors.ErrStaleView.
package nd

import (
	"github.com/teranos/farr/errors"
)

// Kind identifies the element type of an Array.
type Kind uint8

const (
	Float64 Kind = iota
	Int64
	Bool
	Char
)

func (k Kind) String() string {
	switch k {
	case Float64:
		return "Float64"
	case Int64:
		return "Int64"
	case Bool:
		return "Bool"
	case Char:
		return "Char"
	}
	return "Unknown"
}

// NoAxis is the axis sentinel meaning "over the whole array".
const NoAxis = -1

// storage is the shared liveness token for a buffer and every view over it.
// A released flag checked on each access stands in for a weak-reference
// upgrade: a relation plus a liveness check, never ownership.
type storage struct {
	released bool
}

// Array is an N-dimensional strided window over a flat column-major buffer.
// Exactly one of the backing slices is non-nil, matching kind.
type Array struct {
	kind    Kind
	shape   []int
	strides []int
	offset  int

	f []float64
	i []int64
	b []bool
	c []byte

	owns  bool
	store *storage
}

// colMajorStrides computes Fortran-order strides for shape.
func colMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for d := 0; d < len(shape); d++ {
		strides[d] = acc
		acc *= shape[d]
	}
	return strides
}

func sizeOf(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

func checkShape(shape []int) error {
	for _, d := range shape {
		if d <= 0 {
			return errors.NewShapef("dimension sizes must be positive, got %v", shape)
		}
	}
	return nil
}

func newOwned(kind Kind, shape []int) (*Array, error) {
	if err := checkShape(shape); err != nil {
		return nil, err
	}
	shp := append([]int(nil), shape...)
	a := &Array{
		kind:    kind,
		shape:   shp,
		strides: colMajorStrides(shp),
		owns:    true,
		store:   &storage{},
	}
	n := sizeOf(shp)
	switch kind {
	case Float64:
		a.f = make([]float64, n)
	case Int64:
		a.i = make([]int64, n)
	case Bool:
		a.b = make([]bool, n)
	case Char:
		a.c = make([]byte, n)
	}
	return a, nil
}

// Zeros returns a freshly allocated zero-filled array.
func Zeros(kind Kind, shape ...int) (*Array, error) {
	return newOwned(kind, shape)
}

// FromFloats copies data into a new Float64 array of the given shape.
// Data is interpreted in column-major order.
func FromFloats(data []float64, shape ...int) (*Array, error) {
	a, err := newOwned(Float64, shape)
	if err != nil {
		return nil, err
	}
	if len(data) != len(a.f) {
		return nil, errors.NewShapef("%d elements do not fill shape %v", len(data), shape)
	}
	copy(a.f, data)
	return a, nil
}

// FromInts copies data into a new Int64 array of the given shape.
func FromInts(data []int64, shape ...int) (*Array, error) {
	a, err := newOwned(Int64, shape)
	if err != nil {
		return nil, err
	}
	if len(data) != len(a.i) {
		return nil, errors.NewShapef("%d elements do not fill shape %v", len(data), shape)
	}
	copy(a.i, data)
	return a, nil
}

// FromBools copies data into a new Bool array of the given shape.
func FromBools(data []bool, shape ...int) (*Array, error) {
	a, err := newOwned(Bool, shape)
	if err != nil {
		return nil, err
	}
	if len(data) != len(a.b) {
		return nil, errors.NewShapef("%d elements do not fill shape %v", len(data), shape)
	}
	copy(a.b, data)
	return a, nil
}

// FromBytes copies data into a new Char array of the given shape.
func FromBytes(data []byte, shape ...int) (*Array, error) {
	a, err := newOwned(Char, shape)
	if err != nil {
		return nil, err
	}
	if len(data) != len(a.c) {
		return nil, errors.NewShapef("%d elements do not fill shape %v", len(data), shape)
	}
	copy(a.c, data)
	return a, nil
}

// Scalar returns a rank-0 Float64 array holding v.
func Scalar(v float64) *Array {
	a, _ := newOwned(Float64, nil)
	a.f[0] = v
	return a
}

// ScalarInt returns a rank-0 Int64 array holding v.
func ScalarInt(v int64) *Array {
	a, _ := newOwned(Int64, nil)
	a.i[0] = v
	return a
}

// Identity returns the n by n identity matrix.
func Identity(n int) (*Array, error) {
	a, err := newOwned(Float64, []int{n, n})
	if err != nil {
		return nil, err
	}
	for k := 0; k < n; k++ {
		a.f[k*n+k] = 1
	}
	return a, nil
}

// Kind returns the element kind.
func (a *Array) Kind() Kind { return a.kind }

// Rank returns the number of axes.
func (a *Array) Rank() int { return len(a.shape) }

// Shape returns a copy of the dimension sizes.
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// Dim returns the size of one axis.
func (a *Array) Dim(axis int) int { return a.shape[axis] }

// Size returns the total element count.
func (a *Array) Size() int { return sizeOf(a.shape) }

// Owns reports whether this array owns its storage (true) or aliases
// another array's storage (false).
func (a *Array) Owns() bool { return a.owns }

// Alive reports whether the backing storage is still usable.
func (a *Array) Alive() bool { return !a.store.released }

// Release marks the backing storage dead. Every array sharing it, owner and
// views alike, fails all subsequent access. There is no way back.
func (a *Array) Release() {
	a.store.released = true
}

// guard is the per-access liveness check.
func (a *Array) guard() error {
	if a.store.released {
		return errors.ErrStaleView
	}
	return nil
}

// flat resolves a full zero-based coordinate to a buffer position.
// Negative coordinates count from the end of their axis.
func (a *Array) flat(ix []int) (int, error) {
	if len(ix) != len(a.shape) {
		return 0, errors.NewInvalidIndexf("got %d coordinates for rank-%d array", len(ix), len(a.shape))
	}
	pos := a.offset
	for d, k := range ix {
		dim := a.shape[d]
		if k < 0 {
			k += dim
		}
		if k < 0 || k >= dim {
			return 0, errors.NewInvalidIndexf("index %d out of range for axis %d (size %d)", ix[d], d, dim)
		}
		pos += k * a.strides[d]
	}
	return pos, nil
}

// Float reads a Float64 element at a zero-based coordinate.
func (a *Array) Float(ix ...int) (float64, error) {
	if err := a.guard(); err != nil {
		return 0, err
	}
	if a.kind != Float64 {
		return 0, errors.NewKindf("Float on %s array", a.kind)
	}
	pos, err := a.flat(ix)
	if err != nil {
		return 0, err
	}
	return a.f[pos], nil
}

// Int reads an Int64 element at a zero-based coordinate.
func (a *Array) Int(ix ...int) (int64, error) {
	if err := a.guard(); err != nil {
		return 0, err
	}
	if a.kind != Int64 {
		return 0, errors.NewKindf("Int on %s array", a.kind)
	}
	pos, err := a.flat(ix)
	if err != nil {
		return 0, err
	}
	return a.i[pos], nil
}

// Bool reads a Bool element at a zero-based coordinate.
func (a *Array) Bool(ix ...int) (bool, error) {
	if err := a.guard(); err != nil {
		return false, err
	}
	if a.kind != Bool {
		return false, errors.NewKindf("Bool on %s array", a.kind)
	}
	pos, err := a.flat(ix)
	if err != nil {
		return false, err
	}
	return a.b[pos], nil
}

// Byte reads a Char element at a zero-based coordinate.
func (a *Array) Byte(ix ...int) (byte, error) {
	if err := a.guard(); err != nil {
		return 0, err
	}
	if a.kind != Char {
		return 0, errors.NewKindf("Byte on %s array", a.kind)
	}
	pos, err := a.flat(ix)
	if err != nil {
		return 0, err
	}
	return a.c[pos], nil
}

// SetFloat writes a Float64 element at a zero-based coordinate.
func (a *Array) SetFloat(v float64, ix ...int) error {
	if err := a.guard(); err != nil {
		return err
	}
	if a.kind != Float64 {
		return errors.NewKindf("SetFloat on %s array", a.kind)
	}
	pos, err := a.flat(ix)
	if err != nil {
		return err
	}
	a.f[pos] = v
	return nil
}

// SetInt writes an Int64 element at a zero-based coordinate.
func (a *Array) SetInt(v int64, ix ...int) error {
	if err := a.guard(); err != nil {
		return err
	}
	if a.kind != Int64 {
		return errors.NewKindf("SetInt on %s array", a.kind)
	}
	pos, err := a.flat(ix)
	if err != nil {
		return err
	}
	a.i[pos] = v
	return nil
}

// SetBool writes a Bool element at a zero-based coordinate.
func (a *Array) SetBool(v bool, ix ...int) error {
	if err := a.guard(); err != nil {
		return err
	}
	if a.kind != Bool {
		return errors.NewKindf("SetBool on %s array", a.kind)
	}
	pos, err := a.flat(ix)
	if err != nil {
		return err
	}
	a.b[pos] = v
	return nil
}

// SetByte writes a Char element at a zero-based coordinate.
func (a *Array) SetByte(v byte, ix ...int) error {
	if err := a.guard(); err != nil {
		return err
	}
	if a.kind != Char {
		return errors.NewKindf("SetByte on %s array", a.kind)
	}
	pos, err := a.flat(ix)
	if err != nil {
		return err
	}
	a.c[pos] = v
	return nil
}

// Fill sets every element of a numeric array to v.
func (a *Array) Fill(v float64) error {
	if err := a.guard(); err != nil {
		return err
	}
	if a.kind != Float64 && a.kind != Int64 {
		return errors.NewKindf("Fill on %s array", a.kind)
	}
	return a.each(func(pos int) error {
		a.setNum(pos, v)
		return nil
	})
}

// FillByte sets every element of a Char array to v.
func (a *Array) FillByte(v byte) error {
	if err := a.guard(); err != nil {
		return err
	}
	if a.kind != Char {
		return errors.NewKindf("FillByte on %s array", a.kind)
	}
	return a.each(func(pos int) error {
		a.c[pos] = v
		return nil
	})
}

// Copy returns an owned, contiguous deep copy.
func (a *Array) Copy() (*Array, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}
	out, err := newOwned(a.kind, a.shape)
	if err != nil {
		return nil, err
	}
	k := 0
	err = a.each(func(pos int) error {
		out.copyFrom(k, a, pos)
		k++
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Floats returns a flat column-major copy of a Float64 array's elements.
func (a *Array) Floats() ([]float64, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}
	if a.kind != Float64 {
		return nil, errors.NewKindf("Floats on %s array", a.kind)
	}
	out := make([]float64, 0, a.Size())
	a.each(func(pos int) error {
		out = append(out, a.f[pos])
		return nil
	})
	return out, nil
}

// Ints returns a flat column-major copy of an Int64 array's elements.
func (a *Array) Ints() ([]int64, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}
	if a.kind != Int64 {
		return nil, errors.NewKindf("Ints on %s array", a.kind)
	}
	out := make([]int64, 0, a.Size())
	a.each(func(pos int) error {
		out = append(out, a.i[pos])
		return nil
	})
	return out, nil
}

// Bools returns a flat column-major copy of a Bool array's elements.
func (a *Array) Bools() ([]bool, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}
	if a.kind != Bool {
		return nil, errors.NewKindf("Bools on %s array", a.kind)
	}
	out := make([]bool, 0, a.Size())
	a.each(func(pos int) error {
		out = append(out, a.b[pos])
		return nil
	})
	return out, nil
}

// Bytes returns a flat column-major copy of a Char array's elements.
func (a *Array) Bytes() ([]byte, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}
	if a.kind != Char {
		return nil, errors.NewKindf("Bytes on %s array", a.kind)
	}
	out := make([]byte, 0, a.Size())
	a.each(func(pos int) error {
		out = append(out, a.c[pos])
		return nil
	})
	return out, nil
}

// inc advances a coordinate in column-major order, first axis fastest.
// Returns false after the last coordinate.
func inc(ix, shape []int) bool {
	for d := 0; d < len(shape); d++ {
		ix[d]++
		if ix[d] < shape[d] {
			return true
		}
		ix[d] = 0
	}
	return false
}

// each visits every element's buffer position in column-major order.
func (a *Array) each(fn func(pos int) error) error {
	if len(a.shape) == 0 {
		return fn(a.offset)
	}
	if a.Size() == 0 {
		return nil
	}
	ix := make([]int, len(a.shape))
	for {
		pos := a.offset
		for d := range ix {
			pos += ix[d] * a.strides[d]
		}
		if err := fn(pos); err != nil {
			return err
		}
		if !inc(ix, a.shape) {
			return nil
		}
	}
}

// num reads a numeric element as float64 regardless of numeric kind.
func (a *Array) num(pos int) float64 {
	switch a.kind {
	case Float64:
		return a.f[pos]
	case Int64:
		return float64(a.i[pos])
	case Bool:
		if a.b[pos] {
			return 1
		}
		return 0
	case Char:
		return float64(a.c[pos])
	}
	return 0
}

// setNum writes a float64 into a numeric element.
func (a *Array) setNum(pos int, v float64) {
	switch a.kind {
	case Float64:
		a.f[pos] = v
	case Int64:
		a.i[pos] = int64(v)
	}
}

// truthy reports whether an element counts as non-zero.
func (a *Array) truthy(pos int) bool {
	switch a.kind {
	case Float64:
		return a.f[pos] != 0
	case Int64:
		return a.i[pos] != 0
	case Bool:
		return a.b[pos]
	case Char:
		return a.c[pos] != 0
	}
	return false
}

// copyFrom copies one element from src into a. Kinds must match.
func (a *Array) copyFrom(pos int, src *Array, srcPos int) {
	switch a.kind {
	case Float64:
		a.f[pos] = src.f[srcPos]
	case Int64:
		a.i[pos] = src.i[srcPos]
	case Bool:
		a.b[pos] = src.b[srcPos]
	case Char:
		a.c[pos] = src.c[srcPos]
	}
}
