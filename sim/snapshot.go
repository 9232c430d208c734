// Read-only state export for presentation layers. The engine performs no
// formatting itself; callers render these snapshots however they like.

package sim

// ReadyEntry is one ready-queue element as seen from outside the scheduler.
type ReadyEntry struct {
	ID        string
	Remaining int64
}

// PartitionSnapshot is the externally visible state of one partition.
type PartitionSnapshot struct {
	ID            string
	Base          int64
	Size          int64
	OccupantID    string // empty when free
	Occupied      int64  // memory used by the occupant, in KB
	Fragmentation int64  // internal fragmentation, in KB
	Reserved      bool
}

// Snapshot is a point-in-time view of the whole simulation, taken after an
// event step has fully settled.
type Snapshot struct {
	Clock int64
	Event EventKind // event that produced this snapshot

	// CPU + ready queue
	OccupantID        string // empty when the CPU is idle
	OccupantRemaining int64
	Ready             []ReadyEntry

	// Memory
	Partitions []PartitionSnapshot
	Waiting    []string // waiting-queue process IDs in FIFO order
	InMemory   int
	DegreeMax  int
}

// Snapshot captures the current simulation state.
func (s *Simulator) Snapshot(event EventKind) Snapshot {
	snap := Snapshot{
		Clock:     s.Clock,
		Event:     event,
		Ready:     s.scheduler.ReadySnapshot(),
		Waiting:   s.memory.Waiting(),
		InMemory:  s.memory.InMemory(),
		DegreeMax: s.memory.DegreeMax(),
	}
	if occ := s.scheduler.Occupant(); occ != nil {
		snap.OccupantID = occ.ID
		snap.OccupantRemaining = occ.RemainingTime
	}
	for _, pt := range s.memory.Partitions() {
		ps := PartitionSnapshot{
			ID:            pt.ID,
			Base:          pt.Base,
			Size:          pt.Size,
			Occupied:      pt.OccupiedMemory(),
			Fragmentation: pt.InternalFragmentation(),
			Reserved:      pt.Reserved,
		}
		if pt.Occupant != nil {
			ps.OccupantID = pt.Occupant.ID
		}
		snap.Partitions = append(snap.Partitions, ps)
	}
	return snap
}
