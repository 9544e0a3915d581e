package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim/trace"
)

// roundRobinEngine time-slices a single FIFO ready queue with a fixed quantum.
//
// Arrivals are admitted twice per iteration: before the head is dequeued, and
// again right after its slice. A process that arrives during another's slice is
// therefore queued ahead of the process being preempted at the end of that slice.
type roundRobinEngine struct {
	cfg     Config
	quantum int64
}

func (e *roundRobinEngine) Policy() Policy { return RR }

func (e *roundRobinEngine) Simulate(procs []Process) (*Result, error) {
	r, err := newRun(RR, procs, e.cfg)
	if err != nil {
		return nil, err
	}
	pending := newArrivalQueue(r.procs)
	ready := &ReadyQueue{}

	for !r.finished() {
		if err := r.step(); err != nil {
			return nil, err
		}
		r.admit(pending, ready)
		if ready.Len() == 0 {
			next, ok := pending.next()
			if !ok {
				panic(fmt.Sprintf("RR: empty ready queue and no pending arrival at tick %d", r.clock))
			}
			r.idleUntil(next)
			continue
		}

		logrus.Debugf("[tick %07d] RR: ready queue %s", r.clock, ready)
		idx := ready.Dequeue()
		slice := min(e.quantum, r.states[idx].remaining)
		r.dispatch(idx, slice, 0, trace.ReasonQueueHead)

		r.admit(pending, ready)
		if !r.states[idx].done() {
			ready.Enqueue(idx)
		}
	}
	return r.result(), nil
}
