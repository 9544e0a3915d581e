// Package sim provides the deterministic CPU scheduling engines.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - process.go: the Process input record and the per-run state table
//   - run.go: the time cursor, dispatch and the iteration ceiling shared by every engine
//   - policy.go: the Engine interface, NewEngine, Run and RunAll
//
// # Architecture
//
// Each policy lives in its own file (fcfs.go, sjf.go, srt.go, round_robin.go,
// mlfq.go) and drives a private run to completion. Engines share:
//   - validate.go: process validation (*ValidationError)
//   - config.go: per-policy configuration and its validation (*ConfigurationError)
//   - queue.go: the FIFO ready queue and the arrival heap
//   - gantt.go: merging of same-owner execution intervals
//   - metrics.go: per-process metrics and schedule summaries
//
// Sub-packages:
//   - sim/trace/: decision trace recording (dispatches, MLFQ level changes)
//   - sim/workload/: YAML scenarios, CSV process files and seeded generation
//
// A run never mutates its input and shares no state with other runs, so
// RunAll simulates every policy concurrently.
package sim
