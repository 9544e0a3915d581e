// Package trace provides decision-trace recording for scheduling policy analysis.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// Dispatch reasons recorded by the policy engines.
const (
	ReasonArrivalOrder      = "arrival-order"
	ReasonShortestBurst     = "shortest-burst"
	ReasonShortestRemaining = "shortest-remaining"
	ReasonQueueHead         = "queue-head"
)

// Level change reasons recorded by the MLFQ engine.
const (
	ReasonDemote = "demote"
	ReasonAging  = "aging"
)

// DispatchRecord captures one dispatch decision: which process got the CPU,
// when, and for how long. Level is the MLFQ level the process was taken from
// (0 for single-queue policies).
type DispatchRecord struct {
	ProcessID string
	Clock     int64
	Duration  int64
	Level     int
	Reason    string
}

// LevelChangeRecord captures a process moving between MLFQ levels.
type LevelChangeRecord struct {
	ProcessID string
	Clock     int64
	From      int
	To        int
	Reason    string
}
