// Fixed memory partitions. The partition table is static for the lifetime of
// a simulation: partitions are declared once and only their occupant changes.

package sim

import "fmt"

// Partition represents one fixed region of main memory.
// A reserved partition belongs to the operating system: it is always counted
// occupied and never assignable to a process.
type Partition struct {
	ID       string
	Base     int64 // base address, in KB
	Size     int64 // region size, in KB
	Reserved bool  // true only for the system partition

	Occupant *Process // exclusive owner, nil when free
}

// Free reports whether the partition can accept a process.
// Reserved partitions are never free.
func (pt *Partition) Free() bool {
	return !pt.Reserved && pt.Occupant == nil
}

// OccupiedMemory returns the memory actually used by the occupant.
func (pt *Partition) OccupiedMemory() int64 {
	if pt.Occupant == nil {
		return 0
	}
	return pt.Occupant.MemoryDemand
}

// InternalFragmentation returns the unused space inside the partition while
// occupied, 0 when free.
func (pt *Partition) InternalFragmentation() int64 {
	if pt.Occupant == nil {
		return 0
	}
	return pt.Size - pt.Occupant.MemoryDemand
}

func (pt Partition) String() string {
	occ := "-"
	if pt.Occupant != nil {
		occ = pt.Occupant.ID
	}
	return fmt.Sprintf("Partition: (ID: %s, Base: %d, Size: %dK, Occupant: %s)", pt.ID, pt.Base, pt.Size, occ)
}

// PartitionSpec describes one partition of the memory layout passed to
// NewMemoryManager. Specs are declared in address order; Best-Fit ties are
// broken by declaration order.
type PartitionSpec struct {
	ID       string
	Base     int64
	Size     int64
	Reserved bool
}

// DefaultPartitionSpecs returns the classic layout this simulator ships with:
// a 100K reserved system partition followed by 250K, 150K and 50K user
// partitions.
func DefaultPartitionSpecs() []PartitionSpec {
	return []PartitionSpec{
		{ID: "SO", Base: 0, Size: 100, Reserved: true},
		{ID: "U1", Base: 100, Size: 250},
		{ID: "U2", Base: 350, Size: 150},
		{ID: "U3", Base: 500, Size: 50},
	}
}
