package workload

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedsim/schedsim/sim"
)

func TestLoadCSV_HeaderCommentsAndBlankLines(t *testing.T) {
	in := `id,burst,arrival
# first batch
A, 5, 0

B,3,2
`
	got, err := LoadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []sim.Process{
		{ID: "A", Arrival: 0, Burst: 5},
		{ID: "B", Arrival: 2, Burst: 3},
	}, got)
}

func TestLoadCSV_NoHeader(t *testing.T) {
	got, err := LoadCSV(strings.NewReader("X,1,4\n"))
	require.NoError(t, err)
	assert.Equal(t, []sim.Process{{ID: "X", Arrival: 4, Burst: 1}}, got)
}

func TestLoadCSV_NonNumericField_ValidationError(t *testing.T) {
	_, err := LoadCSV(strings.NewReader("id,burst,arrival\nA,5,0\nB,lots,1\n"))
	require.Error(t, err)
	require.True(t, sim.IsValidationError(err), "got %v", err)
	assert.Contains(t, err.Error(), "invalid process 1: burst is not a number")
}

func TestLoadCSV_WrongFieldCount(t *testing.T) {
	_, err := LoadCSV(strings.NewReader("A,5\n"))
	require.Error(t, err)
	assert.True(t, sim.IsValidationError(err))
	assert.Contains(t, err.Error(), "has 2 fields")
}

func TestLoadCSV_Empty_ReturnsNoProcesses(t *testing.T) {
	// GIVEN a file with only a header
	got, err := LoadCSV(strings.NewReader("id,burst,arrival\n"))

	// THEN loading succeeds and the engine-side validator rejects the empty list
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.True(t, sim.IsValidationError(sim.ValidateProcesses(got)))
}

func TestWriteCSV_ThenLoad(t *testing.T) {
	in := []sim.Process{{ID: "P1", Arrival: 7, Burst: 2}, {ID: "P2", Arrival: 0, Burst: 11}}
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, in))
	assert.Equal(t, "id,burst,arrival\nP1,2,7\nP2,11,0\n", buf.String())

	out, err := LoadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "procs.csv")
	require.NoError(t, os.WriteFile(path, []byte("A,2,1\n"), 0644))

	got, err := LoadCSVFile(path)
	require.NoError(t, err)
	assert.Equal(t, []sim.Process{{ID: "A", Arrival: 1, Burst: 2}}, got)

	_, err = LoadCSVFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
