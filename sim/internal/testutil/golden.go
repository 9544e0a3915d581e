// Package testutil provides shared test infrastructure for the scheduling
// engines: the golden dataset of hand-checked schedules and float assertions.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/schedsim/schedsim/sim"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one workload run through one policy with its expected schedule.
type GoldenTestCase struct {
	Name         string             `json:"name"`
	Policy       sim.Policy         `json:"policy"`
	Quantum      int64              `json:"quantum,omitempty"`       // RR quantum; 0 = default
	MLFQQuantums []int64            `json:"mlfq_quantums,omitempty"` // nil = default
	Aging        int64              `json:"aging,omitempty"`         // 0 = default
	Processes    []sim.Process      `json:"processes"`
	Gantt        []sim.GanttSegment `json:"gantt"`
	Metrics      []sim.Metric       `json:"metrics"`
	Summary      GoldenSummary      `json:"summary"`
	Promotions   int                `json:"promotions,omitempty"` // MLFQ level changes, checked when traced
	Demotions    int                `json:"demotions,omitempty"`
}

// GoldenSummary holds the expected schedule-level statistics.
type GoldenSummary struct {
	AverageWaiting    float64 `json:"average_waiting"`
	AverageTurnaround float64 `json:"average_turnaround"`
	AverageResponse   float64 `json:"average_response"`
	Utilization       float64 `json:"cpu_utilization"`
	ContextSwitches   int     `json:"context_switches"`
}

// Config builds the simulation configuration for the test case.
func (tc GoldenTestCase) Config() *sim.Config {
	cfg := sim.DefaultConfig()
	if tc.Quantum > 0 {
		cfg.RoundRobin.Quantum = tc.Quantum
	}
	if tc.MLFQQuantums != nil {
		cfg.MLFQ.Quantums = append([]int64(nil), tc.MLFQQuantums...)
	}
	if tc.Aging > 0 {
		cfg.MLFQ.Aging = tc.Aging
	}
	return &cfg
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
