package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim/trace"
)

// run holds the state of one policy invocation: a private copy of the input,
// the per-process state table, the time cursor and the Gantt builder.
// Nothing in a run is shared with other runs.
type run struct {
	policy        Policy
	procs         []Process
	states        []procState
	clock         int64
	gantt         ganttBuilder
	completed     int
	iterations    int
	maxIterations int
	trace         *trace.SimulationTrace
}

// newRun validates procs and prepares a fresh run over a deep copy of them.
func newRun(policy Policy, procs []Process, cfg Config) (*run, error) {
	if err := ValidateProcesses(procs); err != nil {
		return nil, err
	}
	cp := copyProcesses(procs)
	return &run{
		policy:        policy,
		procs:         cp,
		states:        newStateTable(cp),
		maxIterations: cfg.maxIterations(),
		trace:         trace.NewSimulationTrace(cfg.TraceLevel),
	}, nil
}

// finished reports whether every process has completed.
func (r *run) finished() bool {
	return r.completed == len(r.procs)
}

// step counts one loop iteration and fails once the ceiling is reached.
func (r *run) step() error {
	if r.iterations >= r.maxIterations {
		return fmt.Errorf("%s: %w (%d iterations, tick %d, %d/%d processes finished)",
			r.policy, ErrSimulationBoundExceeded, r.iterations, r.clock, r.completed, len(r.procs))
	}
	r.iterations++
	return nil
}

// idleUntil advances the cursor to t, attributing the gap to IdleOwner.
func (r *run) idleUntil(t int64) {
	if t <= r.clock {
		return
	}
	logrus.Debugf("[tick %07d] %s: idle until %d", r.clock, r.policy, t)
	r.gantt.Add(IdleOwner, r.clock, t)
	r.clock = t
}

// execute runs process idx for d ticks starting at the cursor.
func (r *run) execute(idx int, d int64) {
	st := &r.states[idx]
	if d <= 0 || d > st.remaining {
		panic(fmt.Sprintf("execute: invalid slice %d for process %s with %d remaining", d, r.procs[idx].ID, st.remaining))
	}
	if st.start < 0 {
		st.start = r.clock
	}
	r.gantt.Add(r.procs[idx].ID, r.clock, r.clock+d)
	st.remaining -= d
	r.clock += d
	if st.done() {
		st.finish = r.clock
		r.completed++
		logrus.Debugf("[tick %07d] %s: %s finished", r.clock, r.policy, r.procs[idx].ID)
	}
}

// dispatch records a dispatch decision and executes it.
func (r *run) dispatch(idx int, d int64, level int, reason string) {
	logrus.Debugf("[tick %07d] %s: dispatch %s for %d ticks (level %d, %s)",
		r.clock, r.policy, r.procs[idx].ID, d, level, reason)
	r.trace.RecordDispatch(trace.DispatchRecord{
		ProcessID: r.procs[idx].ID,
		Clock:     r.clock,
		Duration:  d,
		Level:     level,
		Reason:    reason,
	})
	r.execute(idx, d)
}

// continueOrDispatch is dispatch for SRT: a slice that continues the process
// that ran the previous slice, with no other decision in between, extends its
// dispatch record instead of opening a new one.
func (r *run) continueOrDispatch(idx int, d int64, reason string) {
	if r.trace != nil {
		if n := len(r.trace.Dispatches); n > 0 {
			last := &r.trace.Dispatches[n-1]
			if last.ProcessID == r.procs[idx].ID && last.Clock+last.Duration == r.clock {
				last.Duration += d
				r.execute(idx, d)
				return
			}
		}
	}
	r.dispatch(idx, d, 0, reason)
}

// nextArrivalAfter returns the earliest arrival strictly after t among
// unfinished processes. ok is false when no such arrival exists.
func (r *run) nextArrivalAfter(t int64) (next int64, ok bool) {
	for i, p := range r.procs {
		if r.states[i].done() || p.Arrival <= t {
			continue
		}
		if !ok || p.Arrival < next {
			next, ok = p.Arrival, true
		}
	}
	return next, ok
}

// nextUnfinishedArrival returns the earliest arrival among unfinished processes.
func (r *run) nextUnfinishedArrival() int64 {
	next := int64(-1)
	for i, p := range r.procs {
		if r.states[i].done() {
			continue
		}
		if next < 0 || p.Arrival < next {
			next = p.Arrival
		}
	}
	if next < 0 {
		panic(fmt.Sprintf("%s: no unfinished process at tick %d", r.policy, r.clock))
	}
	return next
}

// admit moves every pending process that has arrived by the cursor into q.
func (r *run) admit(pending *arrivalQueue, q *ReadyQueue) []int {
	admitted := pending.popUntil(r.clock)
	for _, idx := range admitted {
		q.Enqueue(idx)
		logrus.Debugf("[tick %07d] %s: %s arrived", r.clock, r.policy, r.procs[idx].ID)
	}
	return admitted
}

// result assembles the Result once the loop has completed.
func (r *run) result() *Result {
	if !r.finished() {
		panic(fmt.Sprintf("%s: result requested with %d/%d processes finished", r.policy, r.completed, len(r.procs)))
	}
	return &Result{
		Policy:  r.policy,
		Gantt:   r.gantt.Segments(),
		Metrics: deriveMetrics(r.procs, r.states),
		Trace:   r.trace,
	}
}
