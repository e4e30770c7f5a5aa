package nd

import (
	"math"

	"github.com/teranos/farr/errors"
)

// Unset marks an absent Span bound.
const Unset = math.MinInt

// Sel is one axis of a zero-based selection. Variants: At (scalar position,
// drops the axis), Span (start/stop/step range), List (explicit positions),
// Mask (boolean flags). At and Span produce views; List and Mask upgrade the
// whole selection to advanced mode, which copies.
type Sel interface {
	ndSel()
}

// At selects a single zero-based position and drops the axis.
type At int

// Span selects a stop-exclusive range. Unset bounds take the axis defaults;
// negative bounds count from the end; Step defaults to 1 and may be negative.
type Span struct {
	Start, Stop, Step int
}

// List selects explicit zero-based positions along an axis.
type List []int

// Mask selects positions flagged true. Its length must match the axis size,
// or, as the sole selector, the array's total size for a flat selection.
type Mask []bool

func (At) ndSel()   {}
func (Span) ndSel() {}
func (List) ndSel() {}
func (Mask) ndSel() {}

// All returns a Span covering a whole axis.
func All() Span {
	return Span{Start: Unset, Stop: Unset, Step: Unset}
}

// S returns a stop-exclusive Span with unit step.
func S(start, stop int) Span {
	return Span{Start: start, Stop: stop, Step: Unset}
}

// resolveAt checks a scalar position against an axis size.
func resolveAt(k, dim int) (int, error) {
	if k < 0 {
		k += dim
	}
	if k < 0 || k >= dim {
		return 0, errors.NewInvalidIndexf("position %d out of range for axis of size %d", k, dim)
	}
	return k, nil
}

// normalizeSpan resolves Span bounds against an axis size, returning the
// first position, the step, and the selection length.
func normalizeSpan(s Span, dim int) (start, step, n int, err error) {
	step = s.Step
	if step == Unset {
		step = 1
	}
	if step == 0 {
		return 0, 0, 0, errors.NewInvalidIndexf("span step must not be zero")
	}

	start = s.Start
	stop := s.Stop
	if step > 0 {
		if start == Unset {
			start = 0
		} else if start < 0 {
			start += dim
		}
		if start < 0 {
			start = 0
		}
		if start > dim {
			start = dim
		}
		if stop == Unset {
			stop = dim
		} else if stop < 0 {
			stop += dim
		}
		if stop < 0 {
			stop = 0
		}
		if stop > dim {
			stop = dim
		}
		if stop > start {
			n = (stop - start + step - 1) / step
		}
		return start, step, n, nil
	}

	if start == Unset {
		start = dim - 1
	} else if start < 0 {
		start += dim
	}
	if start >= dim {
		start = dim - 1
	}
	if stop == Unset {
		stop = -1
	} else if stop < 0 {
		stop += dim
	}
	if stop < -1 {
		stop = -1
	}
	if start >= 0 && start > stop {
		n = (start - stop - step - 1) / -step
	}
	return start, step, n, nil
}

// isAdvanced reports whether any selector forces advanced (copying) mode.
func isAdvanced(sels []Sel) bool {
	for _, s := range sels {
		switch s.(type) {
		case List, Mask:
			return true
		}
	}
	return false
}

// padSels extends a selection with full spans up to rank.
func (a *Array) padSels(sels []Sel) ([]Sel, error) {
	rank := len(a.shape)
	if len(sels) > rank {
		return nil, errors.NewInvalidIndexf("%d selectors for rank-%d array", len(sels), rank)
	}
	if len(sels) == rank {
		return sels, nil
	}
	padded := make([]Sel, rank)
	copy(padded, sels)
	for d := len(sels); d < rank; d++ {
		padded[d] = All()
	}
	return padded, nil
}

// Select applies one selector per axis, padding missing trailing axes with
// full spans. At/Span-only selections return a view sharing this array's
// storage; selections containing a List or Mask return an owned copy with
// outer-product (vector subscript) semantics. A single Mask whose length
// equals the total size selects flat, in column-major order.
func (a *Array) Select(sels ...Sel) (*Array, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}

	if len(sels) == 1 {
		if m, ok := sels[0].(Mask); ok && len(m) == a.Size() && len(a.shape) != 1 {
			return a.selectFlat(m)
		}
	}

	padded, err := a.padSels(sels)
	if err != nil {
		return nil, err
	}

	if !isAdvanced(padded) {
		return a.view(padded)
	}

	axes, keep, err := a.selection(padded)
	if err != nil {
		return nil, err
	}
	return a.gather(axes, keep)
}

// view builds a strided alias for an At/Span-only selection.
func (a *Array) view(sels []Sel) (*Array, error) {
	out := &Array{
		kind:   a.kind,
		offset: a.offset,
		f:      a.f,
		i:      a.i,
		b:      a.b,
		c:      a.c,
		owns:   false,
		store:  a.store,
	}
	for d, sel := range sels {
		dim := a.shape[d]
		switch s := sel.(type) {
		case At:
			k, err := resolveAt(int(s), dim)
			if err != nil {
				return nil, err
			}
			out.offset += k * a.strides[d]
		case Span:
			start, step, n, err := normalizeSpan(s, dim)
			if err != nil {
				return nil, err
			}
			out.offset += start * a.strides[d]
			out.shape = append(out.shape, n)
			out.strides = append(out.strides, a.strides[d]*step)
		default:
			return nil, errors.AssertionFailedf("non-basic selector %T on view path", sel)
		}
	}
	return out, nil
}

// selection expands every selector into explicit per-axis positions.
// keep[d] is false for At selectors, whose axis is dropped from the result.
func (a *Array) selection(sels []Sel) (axes [][]int, keep []bool, err error) {
	axes = make([][]int, len(sels))
	keep = make([]bool, len(sels))
	for d, sel := range sels {
		dim := a.shape[d]
		switch s := sel.(type) {
		case At:
			k, err := resolveAt(int(s), dim)
			if err != nil {
				return nil, nil, err
			}
			axes[d] = []int{k}
		case Span:
			start, step, n, err := normalizeSpan(s, dim)
			if err != nil {
				return nil, nil, err
			}
			positions := make([]int, n)
			for j := 0; j < n; j++ {
				positions[j] = start + j*step
			}
			axes[d] = positions
			keep[d] = true
		case List:
			positions := make([]int, len(s))
			for j, k := range s {
				r, err := resolveAt(k, dim)
				if err != nil {
					return nil, nil, err
				}
				positions[j] = r
			}
			axes[d] = positions
			keep[d] = true
		case Mask:
			if len(s) != dim {
				return nil, nil, errors.NewShapef("mask length %d does not match axis size %d", len(s), dim)
			}
			var positions []int
			for j, set := range s {
				if set {
					positions = append(positions, j)
				}
			}
			axes[d] = positions
			keep[d] = true
		default:
			return nil, nil, errors.NewInvalidIndexf("unknown selector %T", sel)
		}
	}
	return axes, keep, nil
}

// gather copies the cartesian product of per-axis positions into a fresh
// owned array. Output order is column-major over the kept axes.
func (a *Array) gather(axes [][]int, keep []bool) (*Array, error) {
	var outShape []int
	for d := range axes {
		if keep[d] {
			outShape = append(outShape, len(axes[d]))
		}
	}
	out, err := allocAny(a.kind, outShape)
	if err != nil {
		return nil, err
	}
	if out.Size() == 0 {
		return out, nil
	}

	lens := make([]int, len(axes))
	for d := range axes {
		lens[d] = len(axes[d])
	}
	ctr := make([]int, len(axes))
	k := 0
	for {
		pos := a.offset
		for d := range axes {
			pos += axes[d][ctr[d]] * a.strides[d]
		}
		out.copyFrom(k, a, pos)
		k++
		if !inc(ctr, lens) {
			return out, nil
		}
	}
}

// selectFlat selects elements of the whole array where mask is true,
// walking the array in column-major order. Result is rank-1 and owned.
func (a *Array) selectFlat(mask Mask) (*Array, error) {
	n := 0
	for _, set := range mask {
		if set {
			n++
		}
	}
	out, err := allocAny(a.kind, []int{n})
	if err != nil {
		return nil, err
	}
	j := 0
	k := 0
	err = a.each(func(pos int) error {
		if mask[j] {
			out.copyFrom(k, a, pos)
			k++
		}
		j++
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Assign writes src through a selection. A rank-0 or single-element source
// broadcasts; otherwise the source size must equal the selection size and
// elements are consumed in column-major order. Float64 and Int64 convert
// into each other; other kinds must match exactly.
func (a *Array) Assign(src *Array, sels ...Sel) error {
	if err := a.guard(); err != nil {
		return err
	}
	if err := src.guard(); err != nil {
		return err
	}
	if !kindsAssignable(a.kind, src.kind) {
		return errors.NewKindf("cannot assign %s into %s", src.kind, a.kind)
	}

	if len(sels) == 1 {
		if m, ok := sels[0].(Mask); ok && len(m) == a.Size() && len(a.shape) != 1 {
			return a.assignFlat(src, m)
		}
	}

	padded, err := a.padSels(sels)
	if err != nil {
		return err
	}
	axes, _, err := a.selection(padded)
	if err != nil {
		return err
	}

	count := 1
	lens := make([]int, len(axes))
	for d := range axes {
		lens[d] = len(axes[d])
		count *= lens[d]
	}
	if count == 0 {
		return nil
	}

	srcPos, err := src.positions()
	if err != nil {
		return err
	}
	broadcast := len(srcPos) == 1
	if !broadcast && len(srcPos) != count {
		return errors.NewShapef("cannot assign %d elements into selection of size %d", len(srcPos), count)
	}

	ctr := make([]int, len(axes))
	k := 0
	for {
		pos := a.offset
		for d := range axes {
			pos += axes[d][ctr[d]] * a.strides[d]
		}
		sp := srcPos[0]
		if !broadcast {
			sp = srcPos[k]
		}
		a.assignElem(pos, src, sp)
		k++
		if !inc(ctr, lens) {
			return nil
		}
	}
}

// assignFlat writes src through a whole-array mask in column-major order.
func (a *Array) assignFlat(src *Array, mask Mask) error {
	count := 0
	for _, set := range mask {
		if set {
			count++
		}
	}
	if count == 0 {
		return nil
	}
	srcPos, err := src.positions()
	if err != nil {
		return err
	}
	broadcast := len(srcPos) == 1
	if !broadcast && len(srcPos) != count {
		return errors.NewShapef("cannot assign %d elements into mask selecting %d", len(srcPos), count)
	}
	j := 0
	k := 0
	return a.each(func(pos int) error {
		if mask[j] {
			sp := srcPos[0]
			if !broadcast {
				sp = srcPos[k]
			}
			a.assignElem(pos, src, sp)
			k++
		}
		j++
		return nil
	})
}

// positions collects an array's element buffer positions in column-major order.
func (a *Array) positions() ([]int, error) {
	out := make([]int, 0, a.Size())
	err := a.each(func(pos int) error {
		out = append(out, pos)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// assignElem writes one element from src, converting between numeric kinds.
func (a *Array) assignElem(pos int, src *Array, srcPos int) {
	if a.kind == src.kind {
		a.copyFrom(pos, src, srcPos)
		return
	}
	a.setNum(pos, src.num(srcPos))
}

func kindsAssignable(dst, src Kind) bool {
	if dst == src {
		return true
	}
	numeric := func(k Kind) bool { return k == Float64 || k == Int64 }
	return numeric(dst) && numeric(src)
}

// allocAny allocates an owned array, permitting zero-sized axes that can
// arise from empty spans or masks.
func allocAny(kind Kind, shape []int) (*Array, error) {
	for _, d := range shape {
		if d < 0 {
			return nil, errors.NewShapef("negative dimension in %v", shape)
		}
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
