// Defines the Process input record and the per-run simulation state table.

package sim

import "fmt"

// IdleOwner is the Gantt owner used for intervals where no process runs.
const IdleOwner = "idle"

// Process is an immutable input record: a unit of CPU work that becomes
// eligible at Arrival and needs Burst ticks of CPU to complete.
// Engines never modify the Process values they are given.
type Process struct {
	ID      string `json:"id" yaml:"id"`
	Arrival int64  `json:"arrival" yaml:"arrival"`
	Burst   int64  `json:"burst" yaml:"burst"`
}

// String renders the process for log messages.
func (p Process) String() string {
	return fmt.Sprintf("Process: (ID: %s, Arrival: %d, Burst: %d)", p.ID, p.Arrival, p.Burst)
}

// procState is the mutable simulation state of one process during one run.
// A run holds one procState per input process, indexed like the input slice.
type procState struct {
	remaining int64 // ticks of CPU still needed
	start     int64 // first dispatch time, -1 until dispatched
	finish    int64 // completion time, -1 until finished
	level     int   // MLFQ level, 0 for single-queue policies
	waitAge   int64 // ticks spent waiting in a non-top MLFQ level since the last reset
}

func (s *procState) done() bool {
	return s.remaining == 0
}

// copyProcesses deep-copies the caller's input so a run never aliases it.
func copyProcesses(procs []Process) []Process {
	out := make([]Process, len(procs))
	copy(out, procs)
	return out
}

// newStateTable creates the per-run state table for procs.
func newStateTable(procs []Process) []procState {
	states := make([]procState, len(procs))
	for i, p := range procs {
		states[i] = procState{
			remaining: p.Burst,
			start:     -1,
			finish:    -1,
		}
	}
	return states
}
