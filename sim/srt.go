package sim

import "github.com/schedsim/schedsim/sim/trace"

// srtEngine is preemptive Shortest-Remaining-Time: the arrived process with
// the strictly smallest remaining time holds the CPU, and a shorter arrival
// displaces it at the instant it appears. Ties go to the lowest input index.
//
// Only an arrival can change the choice, so the holder runs until it finishes
// or the next arrival, whichever comes first, in a single iteration. When
// nothing is eligible the cursor jumps to the next arrival.
type srtEngine struct {
	cfg Config
}

func (e *srtEngine) Policy() Policy { return SRT }

func (e *srtEngine) Simulate(procs []Process) (*Result, error) {
	r, err := newRun(SRT, procs, e.cfg)
	if err != nil {
		return nil, err
	}

	for !r.finished() {
		if err := r.step(); err != nil {
			return nil, err
		}
		idx := -1
		for i, p := range r.procs {
			st := &r.states[i]
			if st.done() || p.Arrival > r.clock {
				continue
			}
			if idx < 0 || st.remaining < r.states[idx].remaining {
				idx = i
			}
		}
		if idx < 0 {
			r.idleUntil(r.nextUnfinishedArrival())
			continue
		}
		slice := r.states[idx].remaining
		if next, ok := r.nextArrivalAfter(r.clock); ok {
			slice = min(slice, next-r.clock)
		}
		r.continueOrDispatch(idx, slice, trace.ReasonShortestRemaining)
	}
	return r.result(), nil
}
