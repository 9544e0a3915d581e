package sim

import "github.com/schedsim/schedsim/sim/trace"

// sjfEngine is non-preemptive Shortest-Job-First: at each decision point the
// arrived, unfinished process with the smallest burst runs to completion.
// Ties go to the lowest input index.
type sjfEngine struct {
	cfg Config
}

func (e *sjfEngine) Policy() Policy { return SJF }

func (e *sjfEngine) Simulate(procs []Process) (*Result, error) {
	r, err := newRun(SJF, procs, e.cfg)
	if err != nil {
		return nil, err
	}

	for !r.finished() {
		if err := r.step(); err != nil {
			return nil, err
		}
		idx := -1
		for i, p := range r.procs {
			if r.states[i].done() || p.Arrival > r.clock {
				continue
			}
			if idx < 0 || p.Burst < r.procs[idx].Burst {
				idx = i
			}
		}
		if idx < 0 {
			// Nothing has arrived: jump straight to the next arrival.
			r.idleUntil(r.nextUnfinishedArrival())
			continue
		}
		r.dispatch(idx, r.states[idx].remaining, 0, trace.ReasonShortestBurst)
	}
	return r.result(), nil
}
