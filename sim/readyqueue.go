// sim/readyqueue.go
package sim

import (
	"container/heap"
	"sort"
)

// readyEntry is one element of the ready queue. remaining is captured at
// insertion time; it cannot go stale because only the CPU occupant's
// remaining time is ever decremented, and the occupant is never in the queue.
type readyEntry struct {
	remaining int64
	seq       uint64
	process   *Process
}

// readyHeap implements heap.Interface ordered by (remaining ascending,
// seq ascending). The sequence number makes equal remaining times leave in
// insertion order, independent of heap internals.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type readyHeap []readyEntry

func (rh readyHeap) Len() int { return len(rh) }
func (rh readyHeap) Less(i, j int) bool {
	if rh[i].remaining != rh[j].remaining {
		return rh[i].remaining < rh[j].remaining
	}
	return rh[i].seq < rh[j].seq
}
func (rh readyHeap) Swap(i, j int) { rh[i], rh[j] = rh[j], rh[i] }

func (rh *readyHeap) Push(x any) {
	*rh = append(*rh, x.(readyEntry))
}

func (rh *readyHeap) Pop() any {
	old := *rh
	n := len(old)
	item := old[n-1]
	*rh = old[0 : n-1]
	return item
}

// ReadyQueue is a min-priority queue of ready processes keyed by remaining
// CPU time, with a monotonic sequence counter as deterministic tie-break.
type ReadyQueue struct {
	entries readyHeap
	seq     uint64
}

// Push enqueues a process with its current remaining time. Each push burns a
// fresh sequence number; numbers are never reused.
func (rq *ReadyQueue) Push(p *Process) {
	rq.seq++
	heap.Push(&rq.entries, readyEntry{
		remaining: p.RemainingTime,
		seq:       rq.seq,
		process:   p,
	})
}

// Pop removes and returns the process with the lowest (remaining, seq) key.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Pop() *Process {
	if len(rq.entries) == 0 {
		return nil
	}
	entry := heap.Pop(&rq.entries).(readyEntry)
	return entry.process
}

// Len returns the number of ready processes.
func (rq *ReadyQueue) Len() int {
	return len(rq.entries)
}

// Snapshot returns (id, remaining) pairs in dequeue order without draining
// the queue.
func (rq *ReadyQueue) Snapshot() []ReadyEntry {
	sorted := make([]readyEntry, len(rq.entries))
	copy(sorted, rq.entries)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].remaining != sorted[j].remaining {
			return sorted[i].remaining < sorted[j].remaining
		}
		return sorted[i].seq < sorted[j].seq
	})
	out := make([]ReadyEntry, len(sorted))
	for i, e := range sorted {
		out[i] = ReadyEntry{ID: e.process.ID, Remaining: e.process.RemainingTime}
	}
	return out
}
