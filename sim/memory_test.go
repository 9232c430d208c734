package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestManager(t *testing.T, degreeMax int) *MemoryManager {
	t.Helper()
	m, err := NewMemoryManager(DefaultPartitionSpecs(), degreeMax)
	if err != nil {
		t.Fatalf("NewMemoryManager: %v", err)
	}
	return m
}

func TestNewMemoryManager_RejectsBadLayouts(t *testing.T) {
	_, err := NewMemoryManager(nil, 5)
	assert.Error(t, err, "empty layout")

	_, err = NewMemoryManager([]PartitionSpec{{ID: "SO", Size: 100, Reserved: true}}, 5)
	assert.Error(t, err, "no user partitions")

	_, err = NewMemoryManager([]PartitionSpec{{ID: "U1", Size: 100}, {ID: "U1", Size: 50}}, 5)
	assert.Error(t, err, "duplicate IDs")

	_, err = NewMemoryManager([]PartitionSpec{{ID: "U1", Size: 0}}, 5)
	assert.Error(t, err, "non-positive size")
}

func TestNewMemoryManager_ZeroDegreeUsesDefault(t *testing.T) {
	m := newTestManager(t, 0)
	assert.Equal(t, DefaultDegreeMax, m.DegreeMax())
}

func TestTryAdmit_BestFitChoosesSmallestSufficientPartition(t *testing.T) {
	// Partitions 250/150/50 all free, demand 80 → the 150K partition wins.
	m := newTestManager(t, 5)
	p := NewProcess("P1", 0, 5, 80)

	outcome := m.TryAdmit(p, 0)

	assert.Equal(t, Admitted, outcome)
	assert.Equal(t, "U2", p.Partition.ID)
	assert.Equal(t, int64(70), p.Partition.InternalFragmentation())
	assert.Equal(t, StateReady, p.State)
	assert.Equal(t, 1, m.InMemory())
}

func TestTryAdmit_BestFitTieBreaksByDeclarationOrder(t *testing.T) {
	specs := []PartitionSpec{
		{ID: "A", Base: 0, Size: 100},
		{ID: "B", Base: 100, Size: 100},
	}
	m, err := NewMemoryManager(specs, 5)
	assert.NoError(t, err)

	p := NewProcess("P1", 0, 5, 80)
	assert.Equal(t, Admitted, m.TryAdmit(p, 0))
	assert.Equal(t, "A", p.Partition.ID)
}

func TestTryAdmit_TooLargeIsQueuedAndReported(t *testing.T) {
	// Demand above the largest user partition (250K).
	m := newTestManager(t, 5)
	p := NewProcess("P1", 0, 5, 300)

	outcome := m.TryAdmit(p, 0)

	assert.Equal(t, RejectedTooLarge, outcome)
	assert.Nil(t, p.Partition)
	assert.Equal(t, StateReadySuspended, p.State)
	assert.Equal(t, []string{"P1"}, m.Waiting())
	assert.Equal(t, 0, m.InMemory())
}

func TestTryAdmit_DegreeLimitEnforced(t *testing.T) {
	// Degree cap 2 with three admissible processes: the third waits even
	// though a partition is free.
	m := newTestManager(t, 2)
	assert.Equal(t, Admitted, m.TryAdmit(NewProcess("P1", 0, 5, 200), 0))
	assert.Equal(t, Admitted, m.TryAdmit(NewProcess("P2", 0, 5, 100), 0))

	p3 := NewProcess("P3", 0, 5, 40)
	assert.Equal(t, RejectedDegreeLimit, m.TryAdmit(p3, 0))
	assert.Equal(t, []string{"P3"}, m.Waiting())
	assert.Equal(t, 2, m.InMemory())
}

func TestTryAdmit_NoFreeFitQueues(t *testing.T) {
	m := newTestManager(t, 5)
	assert.Equal(t, Admitted, m.TryAdmit(NewProcess("P1", 0, 5, 200), 0)) // takes U1
	assert.Equal(t, Admitted, m.TryAdmit(NewProcess("P2", 0, 5, 120), 0)) // takes U2

	// 80K fits only U1/U2, both occupied; U3 (50K) is too small.
	p3 := NewProcess("P3", 0, 5, 80)
	assert.Equal(t, RejectedNoFreeFit, m.TryAdmit(p3, 0))
	assert.Equal(t, []string{"P3"}, m.Waiting())
}

func TestRelease_ReadmitsWaitersInFIFOOrder(t *testing.T) {
	m := newTestManager(t, 5)
	p1 := NewProcess("P1", 0, 5, 200)
	assert.Equal(t, Admitted, m.TryAdmit(p1, 0))
	assert.Equal(t, Admitted, m.TryAdmit(NewProcess("P2", 0, 5, 120), 0))

	p3 := NewProcess("P3", 0, 5, 180)
	p4 := NewProcess("P4", 0, 5, 160)
	assert.Equal(t, RejectedNoFreeFit, m.TryAdmit(p3, 0))
	assert.Equal(t, RejectedNoFreeFit, m.TryAdmit(p4, 0))

	// WHEN P1 releases its 250K partition, only the first waiter fits.
	admitted := m.Release(p1, 5)

	assert.Len(t, admitted, 1)
	assert.Equal(t, "P3", admitted[0].ID)
	assert.Equal(t, "U1", admitted[0].Partition.ID)
	assert.Equal(t, []string{"P4"}, m.Waiting())
}

func TestRelease_SkipsBlockedWaiterWithoutLosingIt(t *testing.T) {
	// Waiters [A (never fits), B (fits the freed 50K partition)]: B is
	// admitted out of order, A stays classified too-large and is dropped.
	m := newTestManager(t, 5)
	p1 := NewProcess("P1", 0, 5, 200)
	p2 := NewProcess("P2", 0, 5, 120)
	p3 := NewProcess("P3", 0, 5, 50)
	assert.Equal(t, Admitted, m.TryAdmit(p1, 0))
	assert.Equal(t, Admitted, m.TryAdmit(p2, 0))
	assert.Equal(t, Admitted, m.TryAdmit(p3, 0))

	tooLarge := NewProcess("A", 0, 5, 300)
	small := NewProcess("B", 0, 5, 50)
	assert.Equal(t, RejectedTooLarge, m.TryAdmit(tooLarge, 1))
	assert.Equal(t, RejectedNoFreeFit, m.TryAdmit(small, 2))

	admitted := m.Release(p3, 5) // frees the 50K partition

	assert.Len(t, admitted, 1)
	assert.Equal(t, "B", admitted[0].ID)
	// A was dropped permanently, not requeued.
	assert.Empty(t, m.Waiting())
}

func TestRelease_RespectsDegreeCapDuringScan(t *testing.T) {
	m := newTestManager(t, 1)
	p1 := NewProcess("P1", 0, 5, 200)
	assert.Equal(t, Admitted, m.TryAdmit(p1, 0))

	p2 := NewProcess("P2", 0, 5, 40)
	p3 := NewProcess("P3", 0, 5, 40)
	assert.Equal(t, RejectedDegreeLimit, m.TryAdmit(p2, 0))
	assert.Equal(t, RejectedDegreeLimit, m.TryAdmit(p3, 0))

	admitted := m.Release(p1, 5)

	// Only one slot opened; P2 goes in, P3 keeps waiting in order.
	assert.Len(t, admitted, 1)
	assert.Equal(t, "P2", admitted[0].ID)
	assert.Equal(t, []string{"P3"}, m.Waiting())
	assert.Equal(t, 1, m.InMemory())
}

func TestRelease_Idempotent(t *testing.T) {
	// A duplicate release must neither crash nor corrupt the resident count.
	m := newTestManager(t, 5)
	p1 := NewProcess("P1", 0, 5, 90)
	assert.Equal(t, Admitted, m.TryAdmit(p1, 0))
	assert.Equal(t, 1, m.InMemory())

	m.Release(p1, 5)
	assert.Equal(t, 0, m.InMemory())

	assert.NotPanics(t, func() { m.Release(p1, 6) })
	assert.Equal(t, 0, m.InMemory())
}

func TestPartitionBinding_MutuallyConsistent(t *testing.T) {
	m := newTestManager(t, 5)
	p1 := NewProcess("P1", 0, 5, 90)
	p2 := NewProcess("P2", 0, 5, 200)
	assert.Equal(t, Admitted, m.TryAdmit(p1, 0))
	assert.Equal(t, Admitted, m.TryAdmit(p2, 0))

	for _, pt := range m.Partitions() {
		if pt.Occupant != nil {
			assert.Same(t, pt, pt.Occupant.Partition,
				"partition %s occupant back-reference", pt.ID)
		}
	}
	assert.Same(t, p1, p1.Partition.Occupant)
	assert.Same(t, p2, p2.Partition.Occupant)
}

func TestReservedPartition_NeverAssignable(t *testing.T) {
	// A 90K demand fits the 100K system partition by size, but reserved
	// partitions are never candidates; U2 (150K) is the best fit.
	m := newTestManager(t, 5)
	p := NewProcess("P1", 0, 5, 90)
	assert.Equal(t, Admitted, m.TryAdmit(p, 0))
	assert.Equal(t, "U2", p.Partition.ID)
}
