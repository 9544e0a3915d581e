// Implements the ready queues used by the preemptive engines and the heap of
// processes that have not arrived yet.

package sim

import (
	"container/heap"
	"fmt"
	"strings"
)

// ReadyQueue is a FIFO queue of process indices waiting for the CPU.
// Indices refer to positions in the run's process slice.
type ReadyQueue struct {
	queue []int
}

// Enqueue adds a process index to the back of the queue.
func (rq *ReadyQueue) Enqueue(idx int) {
	if idx < 0 {
		panic(fmt.Sprintf("Enqueue: negative process index %d", idx))
	}
	rq.queue = append(rq.queue, idx)
}

// Dequeue removes and returns the index at the front of the queue.
// Returns -1 if the queue is empty.
func (rq *ReadyQueue) Dequeue() int {
	if len(rq.queue) == 0 {
		return -1
	}
	idx := rq.queue[0]
	rq.queue = rq.queue[1:]
	return idx
}

// Len returns the number of processes in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage; callers MUST NOT
// append to or reslice it. Use Filter to remove elements.
func (rq *ReadyQueue) Items() []int {
	return rq.queue
}

// Filter keeps the indices for which keep returns true, preserving order,
// and returns the removed ones in their original order.
func (rq *ReadyQueue) Filter(keep func(idx int) bool) (removed []int) {
	kept := make([]int, 0, len(rq.queue))
	for _, idx := range rq.queue {
		if keep(idx) {
			kept = append(kept, idx)
		} else {
			removed = append(removed, idx)
		}
	}
	rq.queue = kept
	return removed
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range rq.queue {
		sb.WriteString(fmt.Sprint(val))
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// pendingArrival is a process that has not been admitted yet.
type pendingArrival struct {
	arrival int64
	idx     int
}

// arrivalQueue implements heap.Interface and orders pending processes by
// arrival time, then by input index so equal arrivals keep input order.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type arrivalQueue []pendingArrival

func (aq arrivalQueue) Len() int { return len(aq) }
func (aq arrivalQueue) Less(i, j int) bool {
	if aq[i].arrival != aq[j].arrival {
		return aq[i].arrival < aq[j].arrival
	}
	return aq[i].idx < aq[j].idx
}
func (aq arrivalQueue) Swap(i, j int) { aq[i], aq[j] = aq[j], aq[i] }

func (aq *arrivalQueue) Push(x any) {
	*aq = append(*aq, x.(pendingArrival))
}

func (aq *arrivalQueue) Pop() any {
	old := *aq
	n := len(old)
	item := old[n-1]
	*aq = old[0 : n-1]
	return item
}

// newArrivalQueue builds the pending-arrival heap for procs.
func newArrivalQueue(procs []Process) *arrivalQueue {
	aq := make(arrivalQueue, 0, len(procs))
	for i, p := range procs {
		aq = append(aq, pendingArrival{arrival: p.Arrival, idx: i})
	}
	heap.Init(&aq)
	return &aq
}

// next returns the earliest pending arrival time. ok is false when nothing is pending.
func (aq *arrivalQueue) next() (arrival int64, ok bool) {
	if aq.Len() == 0 {
		return 0, false
	}
	return (*aq)[0].arrival, true
}

// popUntil removes and returns, in arrival order, every pending process
// that has arrived by clock.
func (aq *arrivalQueue) popUntil(clock int64) []int {
	var out []int
	for aq.Len() > 0 && (*aq)[0].arrival <= clock {
		out = append(out, heap.Pop(aq).(pendingArrival).idx)
	}
	return out
}
