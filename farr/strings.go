package farr

import (
	"strings"

	"github.com/teranos/farr/errors"
	"github.com/teranos/farr/nd"
)

// S2A packs strings into a rank-2 Char array, one string per column,
// padded with spaces to pad rows. A non-positive pad uses the longest
// string. Longer strings are truncated to pad.
func S2A(strs []string, pad int) (*FArray, error) {
	if len(strs) == 0 {
		return nil, errors.NewShapef("no strings to pack")
	}
	if pad <= 0 {
		for _, s := range strs {
			if len(s) > pad {
				pad = len(s)
			}
		}
	}
	if pad == 0 {
		pad = 1
	}
	a, err := nd.Zeros(nd.Char, pad, len(strs))
	if err != nil {
		return nil, err
	}
	if err := a.FillByte(' '); err != nil {
		return nil, err
	}
	for j, s := range strs {
		n := len(s)
		if n > pad {
			n = pad
		}
		for i := 0; i < n; i++ {
			if err := a.SetByte(s[i], i, j); err != nil {
				return nil, err
			}
		}
	}
	return Wrap(a), nil
}

// A2S unpacks a rank-2 Char array back into strings, one per column, with
// trailing padding removed.
func A2S(f *FArray) ([]string, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	if f.Kind() != nd.Char {
		return nil, errors.NewKindf("a2s requires a character array, got %s", f.Kind())
	}
	if f.Rank() != 2 {
		return nil, errors.NewShapef("a2s requires a rank-2 array, got rank %d", f.Rank())
	}
	cols, err := f.Cols()
	if err != nil {
		return nil, err
	}
	out := make([]string, len(cols))
	for j, col := range cols {
		bs, err := col.arr.Bytes()
		if err != nil {
			return nil, err
		}
		out[j] = strings.TrimRight(string(bs), " \x00")
	}
	return out, nil
}

// StripStrings converts a Char array into whitespace-stripped strings: a
// rank-0 or rank-1 array yields one string, a rank-2 array one string per
// column.
func (f *FArray) StripStrings() ([]string, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	if f.Kind() != nd.Char {
		return nil, errors.NewKindf("stripstrings requires a character array, got %s", f.Kind())
	}
	switch f.Rank() {
	case 0, 1:
		bs, err := f.arr.Bytes()
		if err != nil {
			return nil, err
		}
		return []string{strings.TrimSpace(string(bs))}, nil
	case 2:
		cols, err := f.Cols()
		if err != nil {
			return nil, err
		}
		out := make([]string, len(cols))
		for j, col := range cols {
			bs, err := col.arr.Bytes()
			if err != nil {
				return nil, err
			}
			out[j] = strings.TrimSpace(string(bs))
		}
		return out, nil
	default:
		return nil, errors.NewShapef("stripstrings only defined up to rank 2, got rank %d", f.Rank())
	}
}
