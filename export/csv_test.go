// Package export_test verifies CSV serialization: golden contents,
// validation sentinels and file round trips.
package export_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/balseq/export"
	"github.com/katalvlaran/balseq/matrix"
)

// mustDense builds an r×c Dense from vals (row-major) or fails the test.
func mustDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()

	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err := m.Set(i, j, vals[i*c+j]); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

func TestWriteSequences_Golden(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := export.WriteSequences(&buf, [][]int{{0, 1, 2}, {2, 1, 0}})
	require.NoError(t, err)

	assert.Equal(t, "0,1,2\n2,1,0\n", buf.String())
}

func TestWriteSequences_Validation(t *testing.T) {
	t.Parallel()

	err := export.WriteSequences(nil, [][]int{{0, 1}})
	assert.ErrorIs(t, err, export.ErrNilWriter)

	var buf bytes.Buffer
	err = export.WriteSequences(&buf, nil)
	assert.ErrorIs(t, err, export.ErrNoSequences)
	assert.Zero(t, buf.Len())
}

func TestWriteMatrixCSV_Golden(t *testing.T) {
	t.Parallel()

	m := mustDense(t, 2, 2, []float64{0, 1, 0.5, 0.25})

	var buf bytes.Buffer
	require.NoError(t, export.WriteMatrixCSV(&buf, m))

	assert.Equal(t, "0,1\n0.5,0.25\n", buf.String())
}

func TestWriteMatrixCSV_Validation(t *testing.T) {
	t.Parallel()

	m := mustDense(t, 1, 1, []float64{1})

	err := export.WriteMatrixCSV(nil, m)
	assert.ErrorIs(t, err, export.ErrNilWriter)

	var buf bytes.Buffer
	err = export.WriteMatrixCSV(&buf, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSaveSequences_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sequences.csv")
	require.NoError(t, export.SaveSequences(path, [][]int{{3, 0}, {0, 3}}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "3,0\n0,3\n", string(raw))
}

func TestSaveSequences_UnwritablePath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "sequences.csv")
	err := export.SaveSequences(path, [][]int{{0, 1}})
	assert.Error(t, err)
}

func TestSaveMatrixCSV_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "matrix.csv")
	m := mustDense(t, 2, 3, []float64{1, 0, 0.125, 0, 2.5, 1})
	require.NoError(t, export.SaveMatrixCSV(path, m))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1,0,0.125\n0,2.5,1\n", string(raw))
}
