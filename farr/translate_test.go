package farr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/farr/errors"
	"github.com/teranos/farr/nd"
)

func TestMapScalar(t *testing.T) {
	tests := []struct {
		name    string
		in      int
		want    int
		wantErr bool
	}{
		{"first", 1, 0, false},
		{"tenth", 10, 9, false},
		{"last", -1, -1, false},
		{"from end", -3, -3, false},
		{"zero forbidden", 0, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := mapScalar(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsInvalidIndex(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMapRngStopPassesThrough(t *testing.T) {
	// A one-based inclusive stop equals a zero-based exclusive stop, so
	// only the start moves.
	span, err := mapRng(Rng{Start: 2, Stop: 4})
	require.NoError(t, err)
	assert.Equal(t, 1, span.Start)
	assert.Equal(t, 4, span.Stop)
	assert.Equal(t, nd.Unset, span.Step)
}

func TestMapRngUnsetFields(t *testing.T) {
	span, err := mapRng(Rng{})
	require.NoError(t, err)
	assert.Equal(t, nd.Span{Start: nd.Unset, Stop: nd.Unset, Step: nd.Unset}, span)

	span, err = mapRng(Rng{Step: -1})
	require.NoError(t, err)
	assert.Equal(t, -1, span.Step)
}

func TestMapRngNegativeBounds(t *testing.T) {
	span, err := mapRng(Rng{Start: -2, Stop: -1})
	require.NoError(t, err)
	assert.Equal(t, -2, span.Start)
	assert.Equal(t, -1, span.Stop)
}

func TestMapRngZeroStartRejected(t *testing.T) {
	// Rng{Start: 0} is the unset start, but an explicit zero can still
	// arrive through arithmetic on Seq or Ix.
	_, err := mapSeq(Seq{1, 0})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidIndex(err))
}

func TestTranslateImplicitLeadingEllipsis(t *testing.T) {
	sels, err := translate(3, []Index{Ix(2)})
	require.NoError(t, err)
	require.Len(t, sels, 3)
	assert.Equal(t, nd.All(), sels[0])
	assert.Equal(t, nd.All(), sels[1])
	assert.Equal(t, nd.At(1), sels[2])
}

func TestTranslateExplicitEllipsis(t *testing.T) {
	sels, err := translate(3, []Index{Ix(1), Ell{}})
	require.NoError(t, err)
	require.Len(t, sels, 3)
	assert.Equal(t, nd.At(0), sels[0])
	assert.Equal(t, nd.All(), sels[1])
	assert.Equal(t, nd.All(), sels[2])
}

func TestTranslateDoubleEllipsisRejected(t *testing.T) {
	_, err := translate(3, []Index{Ell{}, Ix(1), Ell{}})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidIndex(err))
}

func TestTranslateTooManyIndices(t *testing.T) {
	_, err := translate(1, []Index{Ix(1), Ix(1)})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidIndex(err))
}

func TestTranslateSeq(t *testing.T) {
	sels, err := translate(1, []Index{Seq{1, 3, -1}})
	require.NoError(t, err)
	assert.Equal(t, []nd.Sel{nd.List{0, 2, -1}}, sels)
}

func TestTranslateIndexArrayKinds(t *testing.T) {
	idx, _ := OfInts(2, 1)
	sels, err := translate(1, []Index{idx})
	require.NoError(t, err)
	assert.Equal(t, []nd.Sel{nd.List{1, 0}}, sels)

	mask, _ := OfBools(true, false, true)
	sels, err = translate(1, []Index{mask})
	require.NoError(t, err)
	assert.Equal(t, []nd.Sel{nd.Mask{true, false, true}}, sels)

	bad, _ := Of(1.5)
	_, err = translate(1, []Index{bad})
	require.Error(t, err)
	assert.True(t, errors.IsKind(err))
}

func TestTranslateIndexArrayZeroElement(t *testing.T) {
	idx, _ := OfInts(1, 0)
	_, err := translate(1, []Index{idx})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidIndex(err))
}

func TestRangesOnly(t *testing.T) {
	assert.True(t, rangesOnly(nil))
	assert.True(t, rangesOnly([]Index{Rng{Start: 1}}))
	assert.True(t, rangesOnly([]Index{Ell{}, Rng{}}))
	assert.False(t, rangesOnly([]Index{Ix(1)}))
	assert.False(t, rangesOnly([]Index{Rng{}, Seq{1}}))
}

func TestPassthroughKeepsEngineBounds(t *testing.T) {
	sels, err := passthrough(2, []Index{Rng{Start: 1, Stop: 3}, Rng{}})
	require.NoError(t, err)
	require.Len(t, sels, 2)
	assert.Equal(t, nd.Span{Start: 1, Stop: 3, Step: nd.Unset}, sels[0])
	assert.Equal(t, nd.All(), sels[1])
}
