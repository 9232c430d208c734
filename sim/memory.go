// Memory manager: fixed partitions, Best-Fit allocation, bounded
// multiprogramming degree and a FIFO waiting queue with release-triggered
// re-admission.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/santiagoacosta2/Simulador-Sistemas-Operativos/sim/trace"
)

// AdmitOutcome is the result of a memory admission attempt. Rejections are
// ordinary control-flow outcomes, not errors: the process is parked in the
// waiting queue and the caller decides what the outcome means.
type AdmitOutcome string

const (
	// Admitted: process bound to a partition and now resident.
	Admitted AdmitOutcome = "admitted"
	// RejectedTooLarge: demand exceeds every user partition; the process can
	// never become resident under this layout.
	RejectedTooLarge AdmitOutcome = "rejected-too-large"
	// RejectedDegreeLimit: multiprogramming degree cap reached.
	RejectedDegreeLimit AdmitOutcome = "rejected-degree-limit"
	// RejectedNoFreeFit: fits in principle, but no free partition is large
	// enough right now.
	RejectedNoFreeFit AdmitOutcome = "rejected-no-free-fit"
)

// DefaultDegreeMax is the default multiprogramming degree cap.
const DefaultDegreeMax = 5

// MemoryManager owns the partition table and the waiting queue. The table is
// fixed at construction; the only mutable state is partition occupancy, the
// cached resident count and the queue itself. inMemory counts non-reserved
// occupied partitions only and must equal that count at all times.
type MemoryManager struct {
	partitions []*Partition
	degreeMax  int
	inMemory   int
	waiting    *WaitQueue

	trace *trace.SimulationTrace
}

// NewMemoryManager builds a manager from a partition layout. degreeMax <= 0
// selects DefaultDegreeMax. The layout must contain at least one
// non-reserved partition.
func NewMemoryManager(specs []PartitionSpec, degreeMax int) (*MemoryManager, error) {
	if degreeMax <= 0 {
		degreeMax = DefaultDegreeMax
	}
	partitions := make([]*Partition, 0, len(specs))
	users := 0
	seen := make(map[string]bool, len(specs))
	for _, spec := range specs {
		if spec.ID == "" {
			return nil, fmt.Errorf("partition layout: empty partition ID")
		}
		if seen[spec.ID] {
			return nil, fmt.Errorf("partition layout: duplicate partition ID %q", spec.ID)
		}
		seen[spec.ID] = true
		if spec.Size <= 0 {
			return nil, fmt.Errorf("partition layout: partition %q has non-positive size %d", spec.ID, spec.Size)
		}
		if !spec.Reserved {
			users++
		}
		partitions = append(partitions, &Partition{
			ID:       spec.ID,
			Base:     spec.Base,
			Size:     spec.Size,
			Reserved: spec.Reserved,
		})
	}
	if users == 0 {
		return nil, fmt.Errorf("partition layout: no user partitions declared")
	}
	return &MemoryManager{
		partitions: partitions,
		degreeMax:  degreeMax,
		waiting:    &WaitQueue{},
	}, nil
}

// SetTrace attaches a decision trace. Passing nil disables recording.
func (m *MemoryManager) SetTrace(st *trace.SimulationTrace) {
	m.trace = st
}

// Partitions returns the partition table in declaration order.
// Callers must treat the partitions as read-only.
func (m *MemoryManager) Partitions() []*Partition {
	return m.partitions
}

// Waiting returns the waiting-queue process IDs in FIFO order.
func (m *MemoryManager) Waiting() []string {
	return m.waiting.IDs()
}

// InMemory returns the current multiprogramming degree.
func (m *MemoryManager) InMemory() int {
	return m.inMemory
}

// DegreeMax returns the configured multiprogramming degree cap.
func (m *MemoryManager) DegreeMax() int {
	return m.degreeMax
}

// TryAdmit attempts to bring a process into memory using Best-Fit.
// Every rejection appends the process to the waiting queue; a
// RejectedTooLarge process will be dropped from the queue, permanently, by
// the first release scan that reaches it.
func (m *MemoryManager) TryAdmit(p *Process, now int64) AdmitOutcome {
	outcome := m.admit(p, now)
	if outcome != Admitted {
		p.State = StateReadySuspended
		m.waiting.Enqueue(p)
		logrus.Infof("[t=%d] Process %s not admitted: %s", now, p.ID, outcome)
	}
	m.recordAdmission(p.ID, now, outcome)
	return outcome
}

func (m *MemoryManager) admit(p *Process, now int64) AdmitOutcome {
	if p.MemoryDemand > m.largestUserPartition() {
		return RejectedTooLarge
	}
	if m.inMemory >= m.degreeMax {
		return RejectedDegreeLimit
	}
	best := m.bestFit(p.MemoryDemand)
	if best == nil {
		return RejectedNoFreeFit
	}
	m.assign(best, p)
	logrus.Infof("[t=%d] Process %s assigned to partition %s (size=%dK, demand=%dK)",
		now, p.ID, best.ID, best.Size, p.MemoryDemand)
	return Admitted
}

// Release frees the partition held by a terminated process, then rescans the
// waiting queue head to tail in its original relative order: admitted
// waiters are removed, too-large waiters are dropped permanently, everything
// else is pushed back without reordering. Returns the newly admitted
// processes in admission order, for the caller to hand to the scheduler.
//
// Releasing a process that holds no partition is a logged no-op, so a
// duplicate release cannot corrupt the resident count.
func (m *MemoryManager) Release(p *Process, now int64) []*Process {
	if !m.free(p, now) {
		return nil
	}

	var admitted []*Process
	pending := m.waiting.Len()
	for i := 0; i < pending; i++ {
		waiter := m.waiting.Dequeue()

		if waiter.MemoryDemand > m.largestUserPartition() {
			logrus.Infof("[t=%d] Process %s dropped from waiting queue: fits in no partition", now, waiter.ID)
			continue
		}
		if m.inMemory >= m.degreeMax {
			m.waiting.Enqueue(waiter)
			continue
		}
		best := m.bestFit(waiter.MemoryDemand)
		if best == nil {
			m.waiting.Enqueue(waiter)
			continue
		}

		m.assign(best, waiter)
		admitted = append(admitted, waiter)
		m.recordAdmission(waiter.ID, now, Admitted)
		logrus.Infof("[t=%d] Process %s admitted from waiting queue to partition %s (size=%dK)",
			now, waiter.ID, best.ID, best.Size)
	}
	return admitted
}

// largestUserPartition returns the size of the largest non-reserved
// partition, occupied or not.
func (m *MemoryManager) largestUserPartition() int64 {
	var largest int64
	for _, pt := range m.partitions {
		if !pt.Reserved && pt.Size > largest {
			largest = pt.Size
		}
	}
	return largest
}

// bestFit returns the free user partition minimizing size - demand, ties
// broken by declaration order. Returns nil when nothing fits.
func (m *MemoryManager) bestFit(demand int64) *Partition {
	var best *Partition
	for _, pt := range m.partitions {
		if !pt.Free() || pt.Size < demand {
			continue
		}
		if best == nil || pt.Size-demand < best.Size-demand {
			best = pt
		}
	}
	return best
}

// assign binds a process to a partition as one atomic transition.
func (m *MemoryManager) assign(pt *Partition, p *Process) {
	if !pt.Free() {
		panic(fmt.Sprintf("assign: partition %s is not free", pt.ID))
	}
	if p.Partition != nil {
		panic(fmt.Sprintf("assign: process %s already holds partition %s", p.ID, p.Partition.ID))
	}
	pt.Occupant = p
	p.Partition = pt
	p.State = StateReady
	m.inMemory++
}

// free clears the binding between a process and its partition. Returns false
// when the process holds no partition.
func (m *MemoryManager) free(p *Process, now int64) bool {
	pt := p.Partition
	if pt == nil {
		logrus.Warnf("[t=%d] Release of %s ignored: no partition assigned", now, p.ID)
		return false
	}
	if pt.Occupant != p {
		panic(fmt.Sprintf("free: partition %s occupant is not %s", pt.ID, p.ID))
	}
	logrus.Infof("[t=%d] Process %s releases partition %s (size=%dK)", now, p.ID, pt.ID, pt.Size)
	pt.Occupant = nil
	p.Partition = nil
	m.inMemory--
	if m.inMemory < 0 {
		m.inMemory = 0
	}
	return true
}

func (m *MemoryManager) recordAdmission(id string, now int64, outcome AdmitOutcome) {
	if m.trace == nil {
		return
	}
	m.trace.RecordAdmission(trace.AdmissionRecord{
		ProcessID: id,
		Clock:     now,
		Admitted:  outcome == Admitted,
		Reason:    string(outcome),
	})
}
