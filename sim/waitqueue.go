// Implements the WaitQueue, which holds all processes waiting for memory.
// Processes are enqueued when admission is rejected and reconsidered, in
// FIFO order, every time a partition is released.

package sim

import (
	"fmt"
	"strings"
)

// WaitQueue represents a FIFO queue of processes waiting for a partition.
// Order is insertion order and is never rearranged; the only mutation besides
// Enqueue is removal during the release-retry scan.
type WaitQueue struct {
	queue []*Process
}

// Enqueue adds a process to the back of the wait queue.
func (wq *WaitQueue) Enqueue(p *Process) {
	if p == nil {
		panic("Enqueue: process must not be nil")
	}
	wq.queue = append(wq.queue, p)
}

// Dequeue removes and returns the process at the front of the queue.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Dequeue() *Process {
	if len(wq.queue) == 0 {
		return nil
	}
	front := wq.queue[0]
	wq.queue = wq.queue[1:]
	return front
}

// Peek returns the process at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Peek() *Process {
	if len(wq.queue) == 0 {
		return nil
	}
	return wq.queue[0]
}

// Len returns the number of processes in the queue.
func (wq *WaitQueue) Len() int {
	return len(wq.queue)
}

// IDs returns the queued process IDs in FIFO order.
// Used by snapshots; the returned slice is a copy.
func (wq *WaitQueue) IDs() []string {
	ids := make([]string, len(wq.queue))
	for i, p := range wq.queue {
		ids[i] = p.ID
	}
	return ids
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range wq.queue {
		sb.WriteString(fmt.Sprint(p))
		if i < len(wq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
