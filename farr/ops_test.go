package farr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/farr/errors"
)

func TestNonZeroOneBased(t *testing.T) {
	// Columns: [0 1], [0 2], [0 3]: every non-zero sits in row 2.
	a, _ := FromFloats([]float64{0, 1, 0, 2, 0, 3}, 2, 3)
	coords, err := a.NonZero()
	require.NoError(t, err)
	require.Len(t, coords, 2)

	rows, _ := coords[0].Ints()
	cols, _ := coords[1].Ints()
	assert.Equal(t, []int64{2, 2, 2}, rows)
	assert.Equal(t, []int64{1, 2, 3}, cols)
}

func TestArgMinMaxOneBased(t *testing.T) {
	a, _ := Of(3, 1, 2)

	mn, err := a.ArgMin(NoAxis)
	require.NoError(t, err)
	assert.Equal(t, 0, mn.Rank())
	v, _ := mn.IntItem()
	assert.Equal(t, int64(2), v)

	mx, err := a.ArgMax(NoAxis)
	require.NoError(t, err)
	v, _ = mx.IntItem()
	assert.Equal(t, int64(1), v)
}

func TestArgMaxAxisConvention(t *testing.T) {
	// Columns: [1 4], [6 2], [3 5].
	a, _ := FromFloats([]float64{1, 4, 6, 2, 3, 5}, 2, 3)

	// Axis 1 is the first axis; axis 0 means the same thing.
	for _, axis := range []int{0, 1} {
		mx, err := a.ArgMax(axis)
		require.NoError(t, err)
		got, _ := mx.Ints()
		assert.Equal(t, []int64{2, 1, 2}, got, "axis %d", axis)
	}

	mx, err := a.ArgMax(2)
	require.NoError(t, err)
	got, _ := mx.Ints()
	assert.Equal(t, []int64{2, 3}, got)
}

func TestArgSortOneBased(t *testing.T) {
	a, _ := Of(3, 1, 2)
	order, err := a.ArgSort(NoAxis)
	require.NoError(t, err)
	got, _ := order.Ints()
	assert.Equal(t, []int64{2, 3, 1}, got)
}

func TestTakeFlatOneBased(t *testing.T) {
	a, _ := Of(10, 20, 30, 40)
	c, err := a.Take(Seq{4, 1, -1}, NoAxis)
	require.NoError(t, err)
	got, _ := c.Floats()
	assert.Equal(t, []float64{40, 10, 40}, got)

	_, err = a.Take(Seq{0}, NoAxis)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidIndex(err))
}

func TestTakeAlongSecondAxis(t *testing.T) {
	// Columns: [1 2], [3 4], [5 6]; axis 2 is the column axis.
	a, _ := FromFloats([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	c, err := a.Take(Seq{1, 3}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, c.Shape())
	got, _ := c.Floats()
	assert.Equal(t, []float64{1, 2, 5, 6}, got)
}

func TestTakeWithIndexArray(t *testing.T) {
	a, _ := Of(10, 20, 30)
	idx, _ := OfInts(3, 1)
	c, err := a.Take(idx, NoAxis)
	require.NoError(t, err)
	got, _ := c.Floats()
	assert.Equal(t, []float64{30, 10}, got)
}

func TestPutOneBased(t *testing.T) {
	a, _ := Zeros(4)
	vals, _ := Of(9, 8)
	require.NoError(t, a.Put(Seq{1, 3}, vals))
	got, _ := a.Floats()
	assert.Equal(t, []float64{9, 0, 8, 0}, got)

	// A single value broadcasts.
	require.NoError(t, a.Put(Seq{2, 4}, ScalarOf(7)))
	got, _ = a.Floats()
	assert.Equal(t, []float64{9, 7, 8, 7}, got)
}

func TestSumAxisConvention(t *testing.T) {
	a, _ := FromFloats([]float64{1, 2, 3, 4, 5, 6}, 2, 3)

	total, err := a.Sum(NoAxis)
	require.NoError(t, err)
	v, _ := total.Item()
	assert.Equal(t, 21.0, v)

	// Axes 0 and 1 both reduce over the first axis.
	for _, axis := range []int{0, 1} {
		byCol, err := a.Sum(axis)
		require.NoError(t, err)
		got, _ := byCol.Floats()
		assert.Equal(t, []float64{3, 7, 11}, got, "axis %d", axis)
	}

	byRow, err := a.Sum(2)
	require.NoError(t, err)
	got, _ := byRow.Floats()
	assert.Equal(t, []float64{9, 12}, got)
}

func TestMeanAllAny(t *testing.T) {
	a, _ := Of(1, 2, 3, 4)
	m, err := a.Mean(NoAxis)
	require.NoError(t, err)
	v, _ := m.Item()
	assert.Equal(t, 2.5, v)

	b, _ := OfBools(true, true, false)
	all, err := b.All(NoAxis)
	require.NoError(t, err)
	bv, _ := all.BoolItem()
	assert.False(t, bv)

	any, err := b.Any(NoAxis)
	require.NoError(t, err)
	bv, _ = any.BoolItem()
	assert.True(t, bv)
}

func TestNorm2Vector(t *testing.T) {
	a, _ := Of(3, 4)
	n2, err := a.Norm2()
	require.NoError(t, err)
	assert.Equal(t, 0, n2.Rank())
	v, _ := n2.Item()
	assert.Equal(t, 25.0, v)

	n, err := a.Norm()
	require.NoError(t, err)
	v, _ = n.Item()
	assert.Equal(t, 5.0, v)
}

func TestNorm2Matrix(t *testing.T) {
	// Two column vectors: (1,2,2) and (2,3,6).
	a, _ := FromFloats([]float64{1, 2, 2, 2, 3, 6}, 3, 2)
	n2, err := a.Norm2()
	require.NoError(t, err)
	got, _ := n2.Floats()
	assert.Equal(t, []float64{9, 49}, got)

	n, err := a.Norm()
	require.NoError(t, err)
	got, _ = n.Floats()
	assert.Equal(t, []float64{3, 7}, got)
}

func TestNorm2RequiresThreeRows(t *testing.T) {
	a, _ := FromFloats([]float64{1, 2, 3, 4}, 2, 2)
	_, err := a.Norm2()
	require.Error(t, err)
	assert.True(t, errors.IsShape(err))
}

func TestNormRankZero(t *testing.T) {
	s := ScalarOf(4)

	// Squaring a scalar norm is the identity: norm2(x) == x.
	n2, err := s.Norm2()
	require.NoError(t, err)
	assert.Equal(t, 0, n2.Rank())
	v, _ := n2.Item()
	assert.Equal(t, 4.0, v)

	// Norm and Normalised still take the square root and divide.
	n, err := s.Norm()
	require.NoError(t, err)
	assert.Equal(t, 0, n.Rank())
	v, _ = n.Item()
	assert.Equal(t, 2.0, v)

	u, err := s.Normalised()
	require.NoError(t, err)
	assert.Equal(t, 0, u.Rank())
	v, _ = u.Item()
	assert.Equal(t, 2.0, v)

	// The source is untouched.
	v, _ = s.Item()
	assert.Equal(t, 4.0, v)
}

func TestNormalisedVector(t *testing.T) {
	a, _ := Of(3, 4)
	u, err := a.Normalised()
	require.NoError(t, err)
	got, _ := u.Floats()
	assert.InDelta(t, 0.6, got[0], 1e-12)
	assert.InDelta(t, 0.8, got[1], 1e-12)

	// The source is untouched.
	orig, _ := a.Floats()
	assert.Equal(t, []float64{3, 4}, orig)
}

func TestNormalisedColumns(t *testing.T) {
	a, _ := FromFloats([]float64{1, 2, 2, 0, 0, 5}, 3, 2)
	u, err := a.Normalised()
	require.NoError(t, err)
	got, _ := u.Floats()
	want := []float64{1.0 / 3, 2.0 / 3, 2.0 / 3, 0, 0, 1}
	for k := range want {
		assert.InDelta(t, want[k], got[k], 1e-12)
	}
}

func TestDotOneBasedLayer(t *testing.T) {
	a, _ := Of(1, 2, 3)
	b, _ := Of(4, 5, 6)
	v, err := a.Dot(b)
	require.NoError(t, err)
	assert.Equal(t, 32.0, v)
}

func TestIsNaN(t *testing.T) {
	a, _ := Of(1, math.NaN(), 3)
	nan, err := a.IsNaN()
	require.NoError(t, err)
	assert.True(t, nan)

	b, _ := Of(1, 2)
	nan, err = b.IsNaN()
	require.NoError(t, err)
	assert.False(t, nan)
}

func TestOpsOnStaleArray(t *testing.T) {
	a, _ := Of(1, 2, 3)
	a.Release()

	_, err := a.NonZero()
	assert.True(t, errors.IsStaleView(err))
	_, err = a.ArgSort(NoAxis)
	assert.True(t, errors.IsStaleView(err))
	_, err = a.Take(Seq{1}, NoAxis)
	assert.True(t, errors.IsStaleView(err))
	_, err = a.Norm()
	assert.True(t, errors.IsStaleView(err))
	_, err = a.Mean(NoAxis)
	assert.True(t, errors.IsStaleView(err))
}
