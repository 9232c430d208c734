package sim

import (
	"fmt"
)

// Scheduler owns the "current occupant of the CPU" state and the ready
// queue. The driver is its only caller: it feeds admitted processes in,
// advances time, and pops completed occupants out. No other component may
// mutate the occupant's remaining time.
//
// Disciplines are interchangeable behind this interface; the driver never
// depends on a concrete one.
type Scheduler interface {
	// Admit hands a memory-resident process to the discipline. The process
	// either becomes the occupant (possibly preempting the current one) or
	// enters the ready queue.
	Admit(p *Process, now int64)
	// Advance moves CPU time forward, decrementing the occupant's remaining
	// time floored at 0. No-op when idle. Panics on negative delta.
	Advance(delta int64)
	// CompleteCurrent removes and returns the occupant, whose remaining time
	// must already be 0, then promotes the next ready process if any.
	// Returns nil when idle.
	CompleteCurrent(now int64) *Process
	// Occupant returns the process currently on the CPU, or nil.
	Occupant() *Process
	// HasReady reports whether any process waits in the ready queue.
	HasReady() bool
	// ReadySnapshot returns (id, remaining) pairs in dequeue order.
	ReadySnapshot() []ReadyEntry
}

// IsValidScheduler returns true if name selects a known discipline.
func IsValidScheduler(name string) bool {
	switch name {
	case "", "srtf", "fcfs":
		return true
	}
	return false
}

// NewScheduler creates a Scheduler by name.
// Valid names: "srtf" (default) and "fcfs".
// Empty string defaults to SRTF (for CLI flag default compatibility).
// Panics on unrecognized names.
func NewScheduler(name string) Scheduler {
	switch name {
	case "", "srtf":
		return NewSRTFScheduler()
	case "fcfs":
		return &FCFSScheduler{}
	default:
		panic(fmt.Sprintf("unknown scheduler %q", name))
	}
}

// FCFSScheduler runs processes to completion in admission order, without
// preemption. Kept as the simplest second discipline behind the Scheduler
// interface.
type FCFSScheduler struct {
	occupant *Process
	queue    []*Process
}

func (f *FCFSScheduler) Admit(p *Process, now int64) {
	if f.occupant == nil {
		f.install(p, now)
		return
	}
	p.State = StateReady
	f.queue = append(f.queue, p)
}

func (f *FCFSScheduler) Advance(delta int64) {
	if delta < 0 {
		panic(fmt.Sprintf("Advance: negative delta %d", delta))
	}
	if f.occupant == nil {
		return
	}
	f.occupant.RemainingTime -= delta
	if f.occupant.RemainingTime < 0 {
		f.occupant.RemainingTime = 0
	}
}

func (f *FCFSScheduler) CompleteCurrent(now int64) *Process {
	done := f.occupant
	if done == nil {
		return nil
	}
	if done.RemainingTime != 0 {
		panic(fmt.Sprintf("CompleteCurrent: process %s still owes %d", done.ID, done.RemainingTime))
	}
	f.occupant = nil
	if len(f.queue) > 0 {
		next := f.queue[0]
		f.queue = f.queue[1:]
		f.install(next, now)
	}
	return done
}

func (f *FCFSScheduler) install(p *Process, now int64) {
	f.occupant = p
	p.State = StateRunning
	if !p.Started {
		p.Started = true
		p.StartTime = now
	}
}

func (f *FCFSScheduler) Occupant() *Process { return f.occupant }

func (f *FCFSScheduler) HasReady() bool { return len(f.queue) > 0 }

func (f *FCFSScheduler) ReadySnapshot() []ReadyEntry {
	out := make([]ReadyEntry, len(f.queue))
	for i, p := range f.queue {
		out[i] = ReadyEntry{ID: p.ID, Remaining: p.RemainingTime}
	}
	return out
}
