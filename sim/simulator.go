// sim/simulator.go
package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/santiagoacosta2/Simulador-Sistemas-Operativos/sim/trace"
)

// EventKind identifies the two event streams the driver merges.
type EventKind string

const (
	// EventArrival: a process enters the system and asks for memory.
	EventArrival EventKind = "arrival"
	// EventCompletion: the CPU occupant's remaining time reaches 0.
	EventCompletion EventKind = "completion"
)

// SnapshotFunc receives a read-only snapshot after each settled event step.
// Used by presentation layers; nil disables snapshotting.
type SnapshotFunc func(Snapshot)

// Simulator is the core object that holds simulation time, system state, and
// the event loop. It merges two event streams -- future arrivals and the
// occupant's projected completion -- in time order, with completion winning
// same-instant ties: a partition freed at t must be available to an arrival
// at the same t.
//
// The Simulator is the sole orchestrator: the memory manager reports who got
// admitted, the scheduler reports who completed, and all mutation happens
// inside sequential event steps.
type Simulator struct {
	Clock int64

	processes   []*Process // sorted by arrival time, input order preserved on ties
	nextArrival int        // index of the next not-yet-arrived process

	memory    *MemoryManager
	scheduler Scheduler

	Metrics *Metrics
	Trace   *trace.SimulationTrace

	OnSnapshot SnapshotFunc
}

// NewSimulator wires a process set, a memory manager and a scheduling
// discipline together. The process set must be non-empty.
func NewSimulator(processes []*Process, memory *MemoryManager, scheduler Scheduler, traceConfig trace.Config) (*Simulator, error) {
	if len(processes) == 0 {
		return nil, fmt.Errorf("simulator: empty process set")
	}
	if memory == nil {
		return nil, fmt.Errorf("simulator: nil memory manager")
	}
	if scheduler == nil {
		scheduler = NewSRTFScheduler()
	}

	sorted := make([]*Process, len(processes))
	copy(sorted, processes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ArrivalTime < sorted[j].ArrivalTime
	})

	s := &Simulator{
		processes: sorted,
		memory:    memory,
		scheduler: scheduler,
		Metrics:   NewMetrics(),
	}

	if traceConfig.Level == trace.LevelDecisions {
		s.Trace = trace.NewSimulationTrace(traceConfig)
		memory.SetTrace(s.Trace)
		if srtf, ok := scheduler.(*SRTFScheduler); ok {
			srtf.SetTrace(s.Trace)
		}
	}
	return s, nil
}

// Run drives the simulation to quiescence: no pending arrivals, no occupant,
// nothing ready. Per-process metrics are derived on termination.
func (s *Simulator) Run() {
	for s.pendingWork() {
		kind, instant := s.nextEvent()
		s.advanceTo(instant)

		logrus.Infof("[t=%07d] Executing %s", s.Clock, kind)
		switch kind {
		case EventArrival:
			s.processArrivals(instant)
		case EventCompletion:
			s.processCompletion()
		}

		if s.OnSnapshot != nil {
			s.OnSnapshot(s.Snapshot(kind))
		}
	}

	s.Metrics.Finalize(s.processes)
	logrus.Infof("[t=%07d] Simulation ended", s.Clock)
}

// pendingWork reports whether any event can still occur.
func (s *Simulator) pendingWork() bool {
	return s.nextArrival < len(s.processes) ||
		s.scheduler.Occupant() != nil ||
		s.scheduler.HasReady()
}

// nextEvent resolves the next event type and instant. Completion is
// processed before an arrival landing on the same instant.
func (s *Simulator) nextEvent() (EventKind, int64) {
	var arrivalAt, completionAt int64
	haveArrival := s.nextArrival < len(s.processes)
	if haveArrival {
		arrivalAt = s.processes[s.nextArrival].ArrivalTime
	}
	occupant := s.scheduler.Occupant()
	haveCompletion := occupant != nil
	if haveCompletion {
		completionAt = s.Clock + occupant.RemainingTime
	}

	switch {
	case haveArrival && !haveCompletion:
		return EventArrival, arrivalAt
	case !haveArrival && haveCompletion:
		return EventCompletion, completionAt
	case !haveArrival && !haveCompletion:
		// pendingWork said there is work, yet neither stream has an event:
		// ready processes exist with no occupant, which CompleteCurrent
		// can never produce.
		panic("nextEvent: no events but simulation still active")
	}

	if arrivalAt < completionAt {
		return EventArrival, arrivalAt
	}
	return EventCompletion, completionAt
}

// advanceTo moves the clock forward to instant, charging the elapsed delta
// to the CPU occupant. Time never rewinds.
func (s *Simulator) advanceTo(instant int64) {
	if instant < s.Clock {
		panic(fmt.Sprintf("advanceTo: time rewind from %d to %d", s.Clock, instant))
	}
	if delta := instant - s.Clock; delta > 0 {
		s.scheduler.Advance(delta)
	}
	s.Clock = instant
}

// processArrivals admits every process arriving at exactly this instant, in
// input order. Admitted processes go straight to the scheduler; a too-large
// process is discarded from metrics on the spot.
func (s *Simulator) processArrivals(instant int64) {
	for s.nextArrival < len(s.processes) && s.processes[s.nextArrival].ArrivalTime == instant {
		p := s.processes[s.nextArrival]
		s.nextArrival++

		logrus.Infof("<< Arrival: %s at t=%d", p.ID, instant)
		outcome := s.memory.TryAdmit(p, s.Clock)
		switch outcome {
		case Admitted:
			s.scheduler.Admit(p, s.Clock)
		case RejectedTooLarge:
			p.Discarded = true
		}
	}
}

// processCompletion retires the occupant, releases its partition and feeds
// any waiters admitted by the release back into the scheduler, in admission
// order.
func (s *Simulator) processCompletion() {
	done := s.scheduler.CompleteCurrent(s.Clock)
	if done == nil {
		panic("processCompletion: completion event with idle CPU")
	}
	done.State = StateTerminated
	done.FinishTime = s.Clock
	logrus.Infof(">> Completion: %s at t=%d", done.ID, s.Clock)

	for _, admitted := range s.memory.Release(done, s.Clock) {
		s.scheduler.Admit(admitted, s.Clock)
	}
}
