package sim

import (
	"sort"

	"github.com/schedsim/schedsim/sim/trace"
)

// fcfsEngine runs processes to completion in arrival order.
// Equal arrivals keep input order (stable sort), so runs are deterministic.
type fcfsEngine struct {
	cfg Config
}

func (e *fcfsEngine) Policy() Policy { return FCFS }

func (e *fcfsEngine) Simulate(procs []Process) (*Result, error) {
	r, err := newRun(FCFS, procs, e.cfg)
	if err != nil {
		return nil, err
	}

	order := make([]int, len(r.procs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return r.procs[order[a]].Arrival < r.procs[order[b]].Arrival
	})

	for _, idx := range order {
		if err := r.step(); err != nil {
			return nil, err
		}
		p := r.procs[idx]
		r.idleUntil(p.Arrival)
		r.dispatch(idx, p.Burst, 0, trace.ReasonArrivalOrder)
	}
	return r.result(), nil
}
