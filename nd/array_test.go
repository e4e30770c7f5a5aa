package nd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/farr/errors"
)

func TestZerosAndShape(t *testing.T) {
	a, err := Zeros(Float64, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, a.Rank())
	assert.Equal(t, []int{2, 3}, a.Shape())
	assert.Equal(t, 6, a.Size())
	assert.True(t, a.Owns())
	assert.True(t, a.Alive())

	v, err := a.Float(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestZerosRejectsNonPositiveDims(t *testing.T) {
	_, err := Zeros(Float64, 2, 0)
	require.Error(t, err)
	assert.True(t, errors.IsShape(err))

	_, err = Zeros(Float64, -1)
	require.Error(t, err)
	assert.True(t, errors.IsShape(err))
}

func TestFromFloatsColumnMajor(t *testing.T) {
	// Column-major fill: first axis varies fastest.
	a, err := FromFloats([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	tests := []struct {
		i, j int
		want float64
	}{
		{0, 0, 1}, {1, 0, 2},
		{0, 1, 3}, {1, 1, 4},
		{0, 2, 5}, {1, 2, 6},
	}
	for _, tc := range tests {
		v, err := a.Float(tc.i, tc.j)
		require.NoError(t, err)
		assert.Equal(t, tc.want, v, "element (%d,%d)", tc.i, tc.j)
	}
}

func TestFromFloatsLengthMismatch(t *testing.T) {
	_, err := FromFloats([]float64{1, 2, 3}, 2, 3)
	require.Error(t, err)
	assert.True(t, errors.IsShape(err))
}

func TestNegativeIndexCountsFromEnd(t *testing.T) {
	a, err := FromFloats([]float64{10, 20, 30}, 3)
	require.NoError(t, err)

	v, err := a.Float(-1)
	require.NoError(t, err)
	assert.Equal(t, 30.0, v)

	v, err = a.Float(-3)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)

	_, err = a.Float(-4)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidIndex(err))
}

func TestOutOfRange(t *testing.T) {
	a, _ := FromFloats([]float64{1, 2}, 2)
	_, err := a.Float(2)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidIndex(err))

	_, err = a.Float(0, 0)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidIndex(err))
}

func TestKindChecks(t *testing.T) {
	a, _ := FromInts([]int64{1, 2}, 2)
	_, err := a.Float(0)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err))

	v, err := a.Int(1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)
}

func TestScalarRankZero(t *testing.T) {
	s := Scalar(3.5)
	assert.Equal(t, 0, s.Rank())
	assert.Equal(t, 1, s.Size())
	v, err := s.Float()
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)

	require.NoError(t, s.SetFloat(7.25))
	v, _ = s.Float()
	assert.Equal(t, 7.25, v)
}

func TestIdentity(t *testing.T) {
	a, err := Identity(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := a.Float(i, j)
			require.NoError(t, err)
			if i == j {
				assert.Equal(t, 1.0, v)
			} else {
				assert.Equal(t, 0.0, v)
			}
		}
	}
}

func TestReleaseMakesAccessFail(t *testing.T) {
	a, _ := FromFloats([]float64{1, 2, 3}, 3)
	a.Release()
	assert.False(t, a.Alive())

	_, err := a.Float(0)
	require.Error(t, err)
	assert.True(t, errors.IsStaleView(err))

	err = a.SetFloat(1, 0)
	require.Error(t, err)
	assert.True(t, errors.IsStaleView(err))
}

func TestReleasePropagatesToViews(t *testing.T) {
	a, _ := FromFloats([]float64{1, 2, 3, 4}, 4)
	v, err := a.Select(S(1, 3))
	require.NoError(t, err)
	assert.False(t, v.Owns())

	a.Release()
	_, err = v.Float(0)
	require.Error(t, err)
	assert.True(t, errors.IsStaleView(err))
}

func TestCopyIsIndependent(t *testing.T) {
	a, _ := FromFloats([]float64{1, 2, 3}, 3)
	c, err := a.Copy()
	require.NoError(t, err)
	require.NoError(t, c.SetFloat(99, 0))

	v, _ := a.Float(0)
	assert.Equal(t, 1.0, v)
	assert.True(t, c.Owns())
}

func TestFloatsFlatCopy(t *testing.T) {
	a, _ := FromFloats([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	// Flat copy of a strided view preserves column-major order.
	v, err := a.Select(At(1)) // second row: 2, 4, 6
	require.NoError(t, err)
	got, err := v.Floats()
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6}, got)
}

func TestFill(t *testing.T) {
	a, _ := Zeros(Float64, 2, 2)
	require.NoError(t, a.Fill(5))
	got, _ := a.Floats()
	assert.Equal(t, []float64{5, 5, 5, 5}, got)

	b, _ := Zeros(Bool, 2)
	err := b.Fill(1)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err))
}
