// Defines the Process struct that models a single process in the simulation.
// Tracks its immutable descriptor (arrival, CPU burst, memory demand) and the
// mutable lifecycle state the engine updates as the simulation advances.

package sim

import (
	"fmt"
)

// ProcessState represents the lifecycle state of a process.
type ProcessState string

const (
	// StateNew: created from input data, not yet presented for admission.
	StateNew ProcessState = "new"
	// StateReadySuspended: admission rejected, parked in the memory waiting queue.
	StateReadySuspended ProcessState = "ready-suspended"
	// StateReady: resident in memory, waiting for the CPU.
	StateReady ProcessState = "ready"
	// StateRunning: current occupant of the CPU.
	StateRunning ProcessState = "running"
	// StateTerminated: burst fully consumed.
	StateTerminated ProcessState = "terminated"
)

// Process models a single process's lifecycle in the simulation.
// ID, ArrivalTime, BurstLength and MemoryDemand come from the process source
// and never change. Everything else is simulation state owned by the engine:
// RemainingTime only ever decreases (floored at 0), Partition mirrors the
// occupant slot of exactly one partition while resident, and the Start/Finish
// timestamps are stamped once each.
type Process struct {
	ID string // Unique identifier for the process

	ArrivalTime  int64 // Instant the process arrives in the system (>= 0)
	BurstLength  int64 // Total CPU time the process needs (> 0)
	MemoryDemand int64 // Memory required, in KB (> 0)

	RemainingTime int64        // CPU time still owed; initialized to BurstLength
	State         ProcessState // lifecycle state
	Partition     *Partition   // partition currently holding this process (nil when not resident)

	Started    bool  // Tracks whether StartTime has been stamped
	StartTime  int64 // First instant the process occupied the CPU
	FinishTime int64 // Instant the process terminated

	// Discarded marks a process whose memory demand exceeds every user
	// partition. It can never run and is excluded from completion metrics.
	Discarded bool
}

// NewProcess builds a Process in the New state with its remaining time
// initialized to the full burst.
func NewProcess(id string, arrival, burst, memory int64) *Process {
	return &Process{
		ID:            id,
		ArrivalTime:   arrival,
		BurstLength:   burst,
		MemoryDemand:  memory,
		RemainingTime: burst,
		State:         StateNew,
	}
}

// This method returns a human-readable string representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("Process: (ID: %s, State: %s, Remaining: %d, Arrival: %d, Memory: %dK)",
		p.ID, p.State, p.RemainingTime, p.ArrivalTime, p.MemoryDemand)
}
