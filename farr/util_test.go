package farr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/farr/errors"
)

func TestUnravelIndexColumnMajor(t *testing.T) {
	tests := []struct {
		name  string
		i     int
		shape []int
		want  []int
	}{
		{"first", 1, []int{2, 3}, []int{1, 1}},
		{"second runs down the column", 2, []int{2, 3}, []int{2, 1}},
		{"third starts the next column", 3, []int{2, 3}, []int{1, 2}},
		{"middle", 4, []int{2, 3}, []int{2, 2}},
		{"last", 6, []int{2, 3}, []int{2, 3}},
		{"rank 3", 13, []int{2, 3, 4}, []int{1, 1, 3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := UnravelIndex(tc.i, tc.shape)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUnravelIndexBounds(t *testing.T) {
	_, err := UnravelIndex(0, []int{2, 3})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidIndex(err))

	_, err = UnravelIndex(7, []int{2, 3})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidIndex(err))

	_, err = UnravelIndex(1, []int{2, 0})
	require.Error(t, err)
	assert.True(t, errors.IsShape(err))
}

func TestTileVec(t *testing.T) {
	a, err := TileVec([]float64{1, 2, 3}, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, a.Shape())

	for j := 1; j <= 4; j++ {
		for i := 1; i <= 3; i++ {
			v, err := a.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, float64(i), v)
		}
	}

	_, err = TileVec([]float64{1, 2}, 2)
	require.Error(t, err)
	assert.True(t, errors.IsShape(err))
}

func TestGCD(t *testing.T) {
	assert.Equal(t, 6, GCD(12, 18))
	assert.Equal(t, 1, GCD(7, 13))
	assert.Equal(t, 5, GCD(-10, 15))
	assert.Equal(t, 4, GCD(4, 0))
}

func TestVars(t *testing.T) {
	ns := map[string]*FArray{}
	vs := Vars(ns, "x", "y")
	require.Len(t, vs, 2)
	assert.Same(t, ns["x"], vs[0])
	assert.Same(t, ns["y"], vs[1])

	require.NoError(t, ns["x"].ND().SetFloat(3.5))
	v, err := vs[0].Item()
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)
}

func TestFRange(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5}, FRange(5))
	assert.Equal(t, []int{3, 4, 5, 6}, FRange(3, 6))
	assert.Equal(t, []int{1, 3, 5, 7}, FRange(1, 7, 2))
	assert.Equal(t, []int{5, 3, 1}, FRange(5, 1, -2))
	assert.Empty(t, FRange(0))
	assert.Panics(t, func() { FRange() })
	assert.Panics(t, func() { FRange(1, 2, 0) })
}

func TestRowsAndCols(t *testing.T) {
	// Columns: [1 2], [3 4], [5 6].
	a, _ := FromFloats([]float64{1, 2, 3, 4, 5, 6}, 2, 3)

	rows, err := a.Rows()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	got, _ := rows[0].Floats()
	assert.Equal(t, []float64{1, 3, 5}, got)
	got, _ = rows[1].Floats()
	assert.Equal(t, []float64{2, 4, 6}, got)

	cols, err := a.Cols()
	require.NoError(t, err)
	require.Len(t, cols, 3)
	got, _ = cols[2].Floats()
	assert.Equal(t, []float64{5, 6}, got)

	// Rows and columns alias the parent.
	require.NoError(t, rows[0].SetAt(99, 1))
	v, _ := a.At(1, 1)
	assert.Equal(t, 99.0, v)

	a.Release()
	_, err = cols[0].At(1)
	assert.True(t, errors.IsStaleView(err))
}

func TestEachRowOneBasedPositions(t *testing.T) {
	a, _ := FromFloats([]float64{1, 2, 3, 4}, 2, 2)
	var seen []int
	err := a.EachRow(func(i int, row *FArray) error {
		seen = append(seen, i)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, seen)

	stop := errors.New("stop")
	err = a.EachCol(func(j int, col *FArray) error {
		return stop
	})
	assert.ErrorIs(t, err, stop)
}
