package nd

import (
	"sort"

	"github.com/teranos/farr/errors"
)

// eachCoord visits every element with its full coordinate, column-major.
// The coordinate slice is reused between calls.
func (a *Array) eachCoord(fn func(ix []int, pos int) error) error {
	if len(a.shape) == 0 {
		return fn(nil, a.offset)
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
		if err := fn(ix, pos); err != nil {
			return err
		}
		if !inc(ix, a.shape) {
			return nil
		}
	}
}

func dropAxis(shape []int, axis int) []int {
	out := make([]int, 0, len(shape)-1)
	for d, n := range shape {
		if d != axis {
			out = append(out, n)
		}
	}
	return out
}

// reducedFlat maps a full coordinate onto the flat index of the shape with
// axis removed, using the reduced shape's column-major strides.
func reducedFlat(ix []int, axis int, rstrides []int) int {
	k, j := 0, 0
	for d := range ix {
		if d == axis {
			continue
		}
		k += ix[d] * rstrides[j]
		j++
	}
	return k
}

func (a *Array) checkAxis(axis int) error {
	if axis < 0 || axis >= len(a.shape) {
		return errors.NewShapef("axis %d out of range for rank-%d array", axis, len(a.shape))
	}
	return nil
}

// NonZero returns one Int64 coordinate array per axis, listing the positions
// of elements that are non-zero (or true), in column-major order.
func (a *Array) NonZero() ([]*Array, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}
	if len(a.shape) == 0 {
		return nil, errors.NewShapef("nonzero is undefined for rank-0 arrays")
	}
	coords := make([][]int64, len(a.shape))
	a.eachCoord(func(ix []int, pos int) error {
		if a.truthy(pos) {
			for d := range ix {
				coords[d] = append(coords[d], int64(ix[d]))
			}
		}
		return nil
	})
	out := make([]*Array, len(a.shape))
	for d := range coords {
		arr, err := allocAny(Int64, []int{len(coords[d])})
		if err != nil {
			return nil, err
		}
		copy(arr.i, coords[d])
		out[d] = arr
	}
	return out, nil
}

func (a *Array) argExtreme(axis int, better func(cand, best float64) bool) (*Array, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}
	if a.kind != Float64 && a.kind != Int64 {
		return nil, errors.NewKindf("arg extreme on %s array", a.kind)
	}
	if a.Size() == 0 {
		return nil, errors.NewShapef("arg extreme on empty array")
	}

	if axis == NoAxis {
		out, err := allocAny(Int64, nil)
		if err != nil {
			return nil, err
		}
		bestK := 0
		bestV := 0.0
		k := 0
		a.each(func(pos int) error {
			v := a.num(pos)
			if k == 0 || better(v, bestV) {
				bestK, bestV = k, v
			}
			k++
			return nil
		})
		out.i[0] = int64(bestK)
		return out, nil
	}

	if err := a.checkAxis(axis); err != nil {
		return nil, err
	}
	rshape := dropAxis(a.shape, axis)
	out, err := allocAny(Int64, rshape)
	if err != nil {
		return nil, err
	}
	rstrides := colMajorStrides(rshape)
	best := make([]float64, out.Size())
	seen := make([]bool, out.Size())
	a.eachCoord(func(ix []int, pos int) error {
		k := reducedFlat(ix, axis, rstrides)
		v := a.num(pos)
		if !seen[k] || better(v, best[k]) {
			seen[k] = true
			best[k] = v
			out.i[k] = int64(ix[axis])
		}
		return nil
	})
	return out, nil
}

// ArgMin returns the zero-based position(s) of the minimum value. With
// NoAxis the result is rank-0 and indexes the column-major flat order;
// otherwise the result drops the given axis.
func (a *Array) ArgMin(axis int) (*Array, error) {
	return a.argExtreme(axis, func(cand, best float64) bool { return cand < best })
}

// ArgMax returns the zero-based position(s) of the maximum value.
func (a *Array) ArgMax(axis int) (*Array, error) {
	return a.argExtreme(axis, func(cand, best float64) bool { return cand > best })
}

// ArgSort returns the zero-based positions that would sort the array.
// With NoAxis the array is flattened column-major and the result is rank-1;
// otherwise sorting runs independently along the given axis and the result
// has the same shape.
func (a *Array) ArgSort(axis int) (*Array, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}
	if a.kind != Float64 && a.kind != Int64 {
		return nil, errors.NewKindf("argsort on %s array", a.kind)
	}

	if axis == NoAxis {
		n := a.Size()
		vals := make([]float64, 0, n)
		a.each(func(pos int) error {
			vals = append(vals, a.num(pos))
			return nil
		})
		order := make([]int, n)
		for k := range order {
			order[k] = k
		}
		sort.SliceStable(order, func(x, y int) bool { return vals[order[x]] < vals[order[y]] })
		out, err := allocAny(Int64, []int{n})
		if err != nil {
			return nil, err
		}
		for k, p := range order {
			out.i[k] = int64(p)
		}
		return out, nil
	}

	if err := a.checkAxis(axis); err != nil {
		return nil, err
	}
	out, err := allocAny(Int64, a.shape)
	if err != nil {
		return nil, err
	}
	dim := a.shape[axis]
	rshape := dropAxis(a.shape, axis)
	rstrides := colMajorStrides(rshape)

	// Gather every lane, sort it, scatter the order back.
	lanes := sizeOf(rshape)
	vals := make([][]float64, lanes)
	a.eachCoord(func(ix []int, pos int) error {
		k := reducedFlat(ix, axis, rstrides)
		if vals[k] == nil {
			vals[k] = make([]float64, 0, dim)
		}
		vals[k] = append(vals[k], a.num(pos))
		return nil
	})
	orders := make([][]int, lanes)
	for k := range vals {
		order := make([]int, dim)
		for j := range order {
			order[j] = j
		}
		lane := vals[k]
		sort.SliceStable(order, func(x, y int) bool { return lane[order[x]] < lane[order[y]] })
		orders[k] = order
	}
	ix := make([]int, len(a.shape))
	for {
		k := reducedFlat(ix, axis, rstrides)
		pos := 0
		for d := range ix {
			pos += ix[d] * out.strides[d]
		}
		out.i[pos] = int64(orders[k][ix[axis]])
		if !inc(ix, a.shape) {
			break
		}
	}
	return out, nil
}

// Take gathers elements at the given zero-based indices. With NoAxis the
// indices address the column-major flat order and the result is rank-1;
// otherwise they address positions along the given axis.
func (a *Array) Take(indices []int, axis int) (*Array, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}

	if axis == NoAxis {
		n := a.Size()
		positions, err := a.positions()
		if err != nil {
			return nil, err
		}
		out, err := allocAny(a.kind, []int{len(indices)})
		if err != nil {
			return nil, err
		}
		for k, idx := range indices {
			r, err := resolveAt(idx, n)
			if err != nil {
				return nil, err
			}
			out.copyFrom(k, a, positions[r])
		}
		return out, nil
	}

	if err := a.checkAxis(axis); err != nil {
		return nil, err
	}
	axes := make([][]int, len(a.shape))
	keep := make([]bool, len(a.shape))
	for d := range a.shape {
		keep[d] = true
		if d == axis {
			positions := make([]int, len(indices))
			for j, idx := range indices {
				r, err := resolveAt(idx, a.shape[d])
				if err != nil {
					return nil, err
				}
				positions[j] = r
			}
			axes[d] = positions
			continue
		}
		full := make([]int, a.shape[d])
		for j := range full {
			full[j] = j
		}
		axes[d] = full
	}
	return a.gather(axes, keep)
}

// Put scatters values at the given zero-based flat indices (column-major
// order). A single-element values array broadcasts.
func (a *Array) Put(indices []int, values *Array) error {
	if err := a.guard(); err != nil {
		return err
	}
	if err := values.guard(); err != nil {
		return err
	}
	if !kindsAssignable(a.kind, values.kind) {
		return errors.NewKindf("cannot put %s values into %s array", values.kind, a.kind)
	}
	valPos, err := values.positions()
	if err != nil {
		return err
	}
	broadcast := len(valPos) == 1
	if !broadcast && len(valPos) != len(indices) {
		return errors.NewShapef("put got %d values for %d indices", len(valPos), len(indices))
	}
	positions, err := a.positions()
	if err != nil {
		return err
	}
	n := a.Size()
	for k, idx := range indices {
		r, err := resolveAt(idx, n)
		if err != nil {
			return err
		}
		vp := valPos[0]
		if !broadcast {
			vp = valPos[k]
		}
		a.assignElem(positions[r], values, vp)
	}
	return nil
}
