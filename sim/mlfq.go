package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim/trace"
)

// mlfqEngine is a three-level multilevel feedback queue with aging.
//
// Level 0 is the highest priority. New arrivals enter level 0. A process that
// uses its level's full quantum without finishing drops one level; one cut
// short by an arrival boundary stays where it is. Processes waiting in levels
// 1 and 2 accumulate age for every tick that elapses, and move up one level
// once their age reaches the aging threshold.
type mlfqEngine struct {
	cfg      Config
	quantums [MLFQLevels]int64 // 0 = run to completion once dispatched
	aging    int64
}

func (e *mlfqEngine) Policy() Policy { return MLFQ }

// mlfqRun is the per-run queue state of the MLFQ engine.
type mlfqRun struct {
	*run
	levels [MLFQLevels]ReadyQueue
	aging  int64
}

func (e *mlfqEngine) Simulate(procs []Process) (*Result, error) {
	base, err := newRun(MLFQ, procs, e.cfg)
	if err != nil {
		return nil, err
	}
	r := &mlfqRun{run: base, aging: e.aging}
	pending := newArrivalQueue(r.procs)

	for !r.finished() {
		if err := r.step(); err != nil {
			return nil, err
		}
		r.admitTop(pending)

		lvl := r.highestReady()
		if lvl < 0 {
			next, ok := pending.next()
			if !ok {
				panic(fmt.Sprintf("MLFQ: empty queues and no pending arrival at tick %d", r.clock))
			}
			r.idleUntil(next)
			continue
		}

		logrus.Debugf("[tick %07d] MLFQ: level %d queue %s", r.clock, lvl, &r.levels[lvl])
		idx := r.levels[lvl].Dequeue()
		slice := r.states[idx].remaining
		if q := e.quantums[lvl]; q > 0 && q < slice {
			slice = q
		}
		// An arrival enters level 0 and outranks lower levels, so a lower-level
		// slice ends exactly when it happens.
		if lvl > 0 {
			if next, ok := pending.next(); ok && next > r.clock && next < r.clock+slice {
				slice = next - r.clock
			}
		}

		r.dispatch(idx, slice, lvl, trace.ReasonQueueHead)
		r.age(slice)
		r.admitTop(pending)

		if r.states[idx].done() {
			continue
		}
		if lvl < MLFQLevels-1 && slice == e.quantums[lvl] {
			r.changeLevel(idx, lvl, lvl+1, trace.ReasonDemote)
			r.enqueue(idx, lvl+1)
		} else {
			r.enqueue(idx, lvl)
		}
	}
	return r.result(), nil
}

// enqueue places idx at the tail of level lvl with a fresh aging counter.
func (r *mlfqRun) enqueue(idx, lvl int) {
	r.states[idx].level = lvl
	r.states[idx].waitAge = 0
	r.levels[lvl].Enqueue(idx)
}

// admitTop admits every arrived pending process into level 0.
func (r *mlfqRun) admitTop(pending *arrivalQueue) {
	for _, idx := range r.admit(pending, &r.levels[0]) {
		r.states[idx].level = 0
		r.states[idx].waitAge = 0
	}
}

// highestReady returns the highest-priority non-empty level, or -1.
func (r *mlfqRun) highestReady() int {
	for lvl := range r.levels {
		if r.levels[lvl].Len() > 0 {
			return lvl
		}
	}
	return -1
}

// age charges delta ticks of waiting to every process queued below level 0,
// then promotes those that reached the threshold. Levels are scanned from the
// lowest up; a process promoted out of level 2 starts level 1 with age 0.
func (r *mlfqRun) age(delta int64) {
	if delta <= 0 {
		return
	}
	for lvl := 1; lvl < MLFQLevels; lvl++ {
		for _, idx := range r.levels[lvl].Items() {
			r.states[idx].waitAge += delta
		}
	}
	for lvl := MLFQLevels - 1; lvl > 0; lvl-- {
		promoted := r.levels[lvl].Filter(func(idx int) bool {
			return r.states[idx].waitAge < r.aging
		})
		for _, idx := range promoted {
			r.changeLevel(idx, lvl, lvl-1, trace.ReasonAging)
			r.enqueue(idx, lvl-1)
		}
	}
}

func (r *mlfqRun) changeLevel(idx, from, to int, reason string) {
	logrus.Debugf("[tick %07d] MLFQ: %s level %d -> %d (%s)", r.clock, r.procs[idx].ID, from, to, reason)
	r.trace.RecordLevelChange(trace.LevelChangeRecord{
		ProcessID: r.procs[idx].ID,
		Clock:     r.clock,
		From:      from,
		To:        to,
		Reason:    reason,
	})
}
