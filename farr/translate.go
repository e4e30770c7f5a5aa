package farr

import (
	"github.com/teranos/farr/errors"
	"github.com/teranos/farr/nd"
)

// mapScalar converts a one-based scalar index to zero-based. Zero is
// rejected, positive indices shift down by one, negative indices pass
// through unchanged (both conventions count them from the end).
func mapScalar(i int) (int, error) {
	if i == 0 {
		return 0, errors.NewInvalidIndexf("index 0 not permitted, arrays are one-based")
	}
	if i > 0 {
		return i - 1, nil
	}
	return i, nil
}

// mapRng converts a one-based inclusive range to a zero-based exclusive
// span. The start shifts down by one; the stop passes through unchanged,
// because a one-based inclusive stop and a zero-based exclusive stop are
// the same number. The step is convention-free and passes through.
func mapRng(r Rng) (nd.Span, error) {
	span := nd.Span{Start: nd.Unset, Stop: nd.Unset, Step: nd.Unset}
	if r.Start != 0 {
		s, err := mapScalar(r.Start)
		if err != nil {
			return nd.Span{}, err
		}
		span.Start = s
	}
	if r.Stop != 0 {
		span.Stop = r.Stop
	}
	if r.Step != 0 {
		span.Step = r.Step
	}
	return span, nil
}

// mapSeq converts a sequence of one-based positions.
func mapSeq(s Seq) (nd.List, error) {
	list := make(nd.List, len(s))
	for j, i := range s {
		m, err := mapScalar(i)
		if err != nil {
			return nil, errors.Wrapf(err, "element %d of index list", j)
		}
		list[j] = m
	}
	return list, nil
}

// mapArray converts an index array. Boolean arrays become masks unchanged;
// integer arrays have every element translated like a scalar. Anything else
// cannot index.
func mapArray(f *FArray) (nd.Sel, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	switch f.arr.Kind() {
	case nd.Bool:
		flags, err := f.arr.Bools()
		if err != nil {
			return nil, err
		}
		return nd.Mask(flags), nil
	case nd.Int64:
		vals, err := f.arr.Ints()
		if err != nil {
			return nil, err
		}
		list := make(nd.List, len(vals))
		for j, v := range vals {
			m, err := mapScalar(int(v))
			if err != nil {
				return nil, errors.Wrapf(err, "element %d of index array", j)
			}
			list[j] = m
		}
		return list, nil
	default:
		return nil, errors.NewKindf("index array must be integer or boolean, got %s", f.arr.Kind())
	}
}

// translate rewrites a one-based index expression into zero-based engine
// selectors for an array of the given rank. At most one Ell may appear; a
// short expression without one gets an implicit leading Ell, so partial
// indices address the trailing axes.
func translate(rank int, ix []Index) ([]nd.Sel, error) {
	ells := 0
	for _, el := range ix {
		if _, ok := el.(Ell); ok {
			ells++
		}
	}
	if ells > 1 {
		return nil, errors.NewInvalidIndexf("at most one ellipsis per index expression")
	}
	explicit := len(ix) - ells
	if explicit > rank {
		return nil, errors.NewInvalidIndexf("%d indices for rank-%d array", explicit, rank)
	}
	if ells == 0 && len(ix) < rank {
		ix = append([]Index{Ell{}}, ix...)
	}

	sels := make([]nd.Sel, 0, rank)
	for _, el := range ix {
		switch e := el.(type) {
		case Ell:
			for k := 0; k < rank-explicit; k++ {
				sels = append(sels, nd.All())
			}
		case Ix:
			m, err := mapScalar(int(e))
			if err != nil {
				return nil, err
			}
			sels = append(sels, nd.At(m))
		case Rng:
			span, err := mapRng(e)
			if err != nil {
				return nil, err
			}
			sels = append(sels, span)
		case Seq:
			list, err := mapSeq(e)
			if err != nil {
				return nil, err
			}
			sels = append(sels, list)
		case *FArray:
			sel, err := mapArray(e)
			if err != nil {
				return nil, err
			}
			sels = append(sels, sel)
		default:
			return nil, errors.NewInvalidIndexf("unsupported index element %T", el)
		}
	}
	return sels, nil
}

// rangesOnly reports whether an expression holds nothing but ranges and
// ellipses. Assignment leaves such expressions untranslated: range bounds
// written for assignment targets are already in engine terms, a quirk kept
// for compatibility with the Fortran bindings this package mirrors.
func rangesOnly(ix []Index) bool {
	for _, el := range ix {
		switch el.(type) {
		case Rng, Ell:
		default:
			return false
		}
	}
	return true
}

// passthrough builds engine selectors from an expression of ranges and
// ellipses without any one-based mapping. Zero fields are unset.
func passthrough(rank int, ix []Index) ([]nd.Sel, error) {
	ells := 0
	for _, el := range ix {
		if _, ok := el.(Ell); ok {
			ells++
		}
	}
	if ells > 1 {
		return nil, errors.NewInvalidIndexf("at most one ellipsis per index expression")
	}
	explicit := len(ix) - ells
	if explicit > rank {
		return nil, errors.NewInvalidIndexf("%d indices for rank-%d array", explicit, rank)
	}

	sels := make([]nd.Sel, 0, rank)
	for _, el := range ix {
		switch e := el.(type) {
		case Ell:
			for k := 0; k < rank-explicit; k++ {
				sels = append(sels, nd.All())
			}
		case Rng:
			span := nd.Span{Start: nd.Unset, Stop: nd.Unset, Step: nd.Unset}
			if e.Start != 0 {
				span.Start = e.Start
			}
			if e.Stop != 0 {
				span.Stop = e.Stop
			}
			if e.Step != 0 {
				span.Step = e.Step
			}
			sels = append(sels, span)
		default:
			return nil, errors.AssertionFailedf("non-range element %T on passthrough path", el)
		}
	}
	return sels, nil
}
