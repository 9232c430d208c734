// Preemptive Shortest-Remaining-Time-First scheduling.
//
// A newly admitted process preempts the occupant only when its remaining
// time is strictly smaller; equal remaining times queue behind the occupant.
// The preempted process re-enters the ready queue with its exact remaining
// time at the preemption instant and a fresh sequence number.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/santiagoacosta2/Simulador-Sistemas-Operativos/sim/trace"
)

// SRTFScheduler implements the Scheduler interface with preemption by
// shortest remaining CPU time.
type SRTFScheduler struct {
	occupant *Process
	ready    *ReadyQueue

	trace *trace.SimulationTrace
}

// NewSRTFScheduler returns an idle SRTF scheduler.
func NewSRTFScheduler() *SRTFScheduler {
	return &SRTFScheduler{ready: &ReadyQueue{}}
}

// SetTrace attaches a decision trace. Passing nil disables recording.
func (s *SRTFScheduler) SetTrace(st *trace.SimulationTrace) {
	s.trace = st
}

// Admit brings a process under SRTF control. If the CPU is idle the process
// runs immediately; otherwise it preempts the occupant iff its remaining
// time is strictly smaller.
func (s *SRTFScheduler) Admit(p *Process, now int64) {
	if s.occupant == nil {
		s.install(p, now)
		return
	}

	if p.RemainingTime < s.occupant.RemainingTime {
		evicted := s.occupant
		evicted.State = StateReady
		s.ready.Push(evicted)
		s.record(now, trace.SchedPreempted, evicted.ID)
		logrus.Infof("[t=%d] Process %s preempted by %s (remaining %d vs %d)",
			now, evicted.ID, p.ID, evicted.RemainingTime, p.RemainingTime)
		s.install(p, now)
		return
	}

	p.State = StateReady
	s.ready.Push(p)
	s.record(now, trace.SchedEnqueued, p.ID)
}

// Advance decrements the occupant's remaining time by delta, floored at 0.
// No-op when idle. Time never rewinds; a negative delta means the driver is
// corrupted.
func (s *SRTFScheduler) Advance(delta int64) {
	if delta < 0 {
		panic(fmt.Sprintf("Advance: negative delta %d", delta))
	}
	if s.occupant == nil {
		return
	}
	s.occupant.RemainingTime -= delta
	if s.occupant.RemainingTime < 0 {
		s.occupant.RemainingTime = 0
	}
}

// CompleteCurrent removes and returns the occupant and promotes the ready
// process with the lowest (remaining, seq) key, if any. The caller must have
// advanced the clock to the exact completion instant first.
func (s *SRTFScheduler) CompleteCurrent(now int64) *Process {
	done := s.occupant
	if done == nil {
		return nil
	}
	if done.RemainingTime != 0 {
		panic(fmt.Sprintf("CompleteCurrent: process %s still owes %d", done.ID, done.RemainingTime))
	}
	s.record(now, trace.SchedExitCPU, done.ID)
	s.occupant = nil

	if next := s.ready.Pop(); next != nil {
		s.install(next, now)
	}
	return done
}

// install makes p the occupant, stamping its start time on first CPU contact
// only. A later preemption and resumption never restamps it.
func (s *SRTFScheduler) install(p *Process, now int64) {
	s.occupant = p
	p.State = StateRunning
	if !p.Started {
		p.Started = true
		p.StartTime = now
	}
	s.record(now, trace.SchedEnterCPU, p.ID)
}

// Occupant returns the process currently on the CPU, or nil when idle.
func (s *SRTFScheduler) Occupant() *Process {
	return s.occupant
}

// HasReady reports whether the ready queue is non-empty.
func (s *SRTFScheduler) HasReady() bool {
	return s.ready.Len() > 0
}

// ReadySnapshot returns the ready queue contents in dequeue order.
func (s *SRTFScheduler) ReadySnapshot() []ReadyEntry {
	return s.ready.Snapshot()
}

func (s *SRTFScheduler) record(now int64, event trace.SchedEvent, id string) {
	if s.trace == nil {
		return
	}
	s.trace.RecordScheduling(trace.SchedulingRecord{
		ProcessID: id,
		Clock:     now,
		Event:     event,
	})
}
