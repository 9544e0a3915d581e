package workload

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/trace"
)

func TestLoadScenario_ValidYAML_LoadsCorrectly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	doc := `
version: "1"
policy: mlfq
round_robin:
  quantum: 3
mlfq:
  quantums: [1, 2, 0]
  aging: 4
max_iterations: 5000
trace: decisions
processes:
  - {id: A, arrival: 0, burst: 5}
  - {id: B, arrival: 2, burst: 1}
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	s, err := LoadScenario(path)
	require.NoError(t, err)
	require.NoError(t, s.Validate())

	assert.Equal(t, "mlfq", s.Policy)
	assert.Equal(t, ProcessList{{ID: "A", Arrival: 0, Burst: 5}, {ID: "B", Arrival: 2, Burst: 1}}, s.Processes)

	cfg := s.Config()
	assert.Equal(t, int64(3), cfg.RoundRobin.Quantum)
	assert.Equal(t, []int64{1, 2, 0}, cfg.MLFQ.Quantums)
	assert.Equal(t, int64(4), cfg.MLFQ.Aging)
	assert.Equal(t, 5000, cfg.MaxIterations)
	assert.Equal(t, trace.TraceLevelDecisions, cfg.TraceLevel)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading scenario")
}

func TestParseScenario_OmittedSectionsUseDefaults(t *testing.T) {
	s, err := ParseScenario([]byte(`
version: "1"
processes:
  - {id: A, arrival: 0, burst: 1}
`))
	require.NoError(t, err)
	assert.Equal(t, sim.DefaultConfig(), *s.Config())
}

func TestParseScenario_MissingVersion_AssumesCurrent(t *testing.T) {
	s, err := ParseScenario([]byte("processes: [{id: A, arrival: 0, burst: 1}]\n"))
	require.NoError(t, err)
	assert.Equal(t, CurrentScenarioVersion, s.Version)
}

func TestParseScenario_UnsupportedVersion(t *testing.T) {
	_, err := ParseScenario([]byte("version: \"7\"\nprocesses: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported version")
}

func TestParseScenario_UnknownKey_Rejected(t *testing.T) {
	// GIVEN a typo in a top-level key
	_, err := ParseScenario([]byte("version: \"1\"\npolcy: rr\n"))

	// THEN strict parsing rejects it
	assert.Error(t, err)
}

func TestParseScenario_EmptyDocument(t *testing.T) {
	_, err := ParseScenario(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty document")
}

func TestParseScenario_MLFQShapes(t *testing.T) {
	tests := []struct {
		name string
		mlfq string
		want sim.MLFQConfig
	}{
		{"scalar", "mlfq: 3", sim.MLFQConfig{Quantums: []int64{3, 6, 0}, Aging: 10}},
		{"two quantums", "mlfq: [2, 5]", sim.MLFQConfig{Quantums: []int64{2, 5}, Aging: 10}},
		{"three quantums", "mlfq: [1, 2, 3]", sim.MLFQConfig{Quantums: []int64{1, 2, 3}, Aging: 10}},
		{"mapping", "mlfq: {quantums: [4, 8, 0], aging: 2}", sim.MLFQConfig{Quantums: []int64{4, 8, 0}, Aging: 2}},
		{"mapping aging only", "mlfq: {aging: 7}", sim.MLFQConfig{Quantums: []int64{2, 4, 0}, Aging: 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseScenario([]byte("version: \"1\"\n" + tt.mlfq + "\nprocesses: [{id: A, arrival: 0, burst: 1}]\n"))
			require.NoError(t, err)
			require.NoError(t, s.Validate())
			assert.Equal(t, tt.want, s.Config().MLFQ)
		})
	}
}

func TestParseScenario_InvalidMLFQ_ConfigurationError(t *testing.T) {
	tests := []struct {
		name string
		mlfq string
	}{
		{"non-numeric scalar", "mlfq: fast"},
		{"non-numeric quantum", "mlfq: [2, x]"},
		{"unknown mapping key", "mlfq: {quantum: 2}"},
		{"quantums not a sequence", "mlfq: {quantums: 2}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte("version: \"1\"\n" + tt.mlfq + "\n"))
			require.Error(t, err)
			assert.True(t, sim.IsConfigurationError(err), "got %v", err)
		})
	}
}

func TestScenario_Validate_MLFQSemantics(t *testing.T) {
	// GIVEN a well-formed mlfq section with a single quantum
	s, err := ParseScenario([]byte("version: \"1\"\nmlfq: [2]\nprocesses: [{id: A, arrival: 0, burst: 1}]\n"))
	require.NoError(t, err)

	// THEN Validate rejects it as too short
	assert.True(t, sim.IsConfigurationError(s.Validate()))
}

func TestScenario_Validate_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		doc        string
		validation bool
	}{
		{"unknown policy", "policy: lottery\nprocesses: [{id: A, arrival: 0, burst: 1}]", false},
		{"zero rr quantum", "round_robin: {quantum: 0}\nprocesses: [{id: A, arrival: 0, burst: 1}]", false},
		{"negative max iterations", "max_iterations: -1\nprocesses: [{id: A, arrival: 0, burst: 1}]", false},
		{"unknown trace level", "trace: everything\nprocesses: [{id: A, arrival: 0, burst: 1}]", false},
		{"no processes", "policy: fcfs", true},
		{"empty id", "processes: [{id: \"\", arrival: 0, burst: 1}]", true},
		{"zero burst", "processes: [{id: A, arrival: 0, burst: 0}]", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseScenario([]byte("version: \"1\"\n" + tt.doc + "\n"))
			require.NoError(t, err)
			err = s.Validate()
			require.Error(t, err)
			assert.Equal(t, tt.validation, sim.IsValidationError(err), "got %v", err)
		})
	}
}

func TestParseScenario_NonNumericProcessField_ValidationError(t *testing.T) {
	_, err := ParseScenario([]byte(`
version: "1"
processes:
  - {id: A, arrival: 0, burst: 2}
  - {id: B, arrival: soon, burst: 2}
`))
	require.Error(t, err)
	require.True(t, sim.IsValidationError(err), "got %v", err)
	assert.Contains(t, err.Error(), "invalid process 1: arrival is not a number")
}

func TestParseScenario_ProcessesNotASequence(t *testing.T) {
	_, err := ParseScenario([]byte("version: \"1\"\nprocesses: {id: A}\n"))
	assert.True(t, sim.IsValidationError(err), "got %v", err)
}

func TestParseScenario_UnknownProcessField(t *testing.T) {
	_, err := ParseScenario([]byte("version: \"1\"\nprocesses: [{id: A, arival: 0, burst: 1}]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "arival")
}

func TestWriteScenario_RoundTrip(t *testing.T) {
	// GIVEN a scenario written by WriteScenario
	in := &Scenario{
		Version:   CurrentScenarioVersion,
		Policy:    "rr",
		Processes: ProcessList{{ID: "P1", Arrival: 3, Burst: 4}, {ID: "P2", Arrival: 0, Burst: 9}},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteScenario(&buf, in))

	// WHEN it is parsed back
	out, err := ParseScenario(buf.Bytes())
	require.NoError(t, err)

	// THEN the processes and policy survive
	assert.Equal(t, in.Policy, out.Policy)
	assert.Equal(t, in.Processes, out.Processes)
	assert.Nil(t, out.MLFQ)
}
