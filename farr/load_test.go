package farr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/farr/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTxt(t *testing.T) {
	path := writeFile(t, "table.dat", `# lattice vectors
1.0 0.0 0.5

0.0 2.0 0.25
`)
	a, err := LoadTxt(path)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, a.Shape())

	v, err := a.At(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.25, v)
}

func TestLoadTxtRaggedRows(t *testing.T) {
	path := writeFile(t, "ragged.dat", "1 2 3\n4 5\n")
	_, err := LoadTxt(path)
	require.Error(t, err)
	assert.True(t, errors.IsShape(err))
}

func TestLoadTxtBadNumber(t *testing.T) {
	path := writeFile(t, "bad.dat", "1 x\n")
	_, err := LoadTxt(path)
	require.Error(t, err)
}

func TestLoadTxtMissingFile(t *testing.T) {
	_, err := LoadTxt(filepath.Join(t.TempDir(), "nope.dat"))
	require.Error(t, err)
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "data.csv", "time, energy\n0.0, -1.5\n1.0, -1.25\n2.0, -1.0\n")
	cols, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, cols, 2)

	ts, ok := cols["time"]
	require.True(t, ok)
	got, _ := ts.Floats()
	assert.Equal(t, []float64{0, 1, 2}, got)

	en := cols["energy"]
	v, err := en.At(2)
	require.NoError(t, err)
	assert.Equal(t, -1.25, v)
}

func TestLoadCSVHeaderOnly(t *testing.T) {
	path := writeFile(t, "empty.csv", "a,b\n")
	_, err := LoadCSV(path)
	require.Error(t, err)
	assert.True(t, errors.IsShape(err))
}

func TestLoadCSVRaggedRow(t *testing.T) {
	path := writeFile(t, "ragged.csv", "a,b\n1\n")
	_, err := LoadCSV(path)
	require.Error(t, err)
}
