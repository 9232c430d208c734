// Package trace provides decision-trace recording for post-run analysis.
// This package has no dependencies on sim/ -- it stores pure data types.
package trace

// AdmissionRecord captures a single memory admission decision.
type AdmissionRecord struct {
	ProcessID string
	Clock     int64
	Admitted  bool
	Reason    string // admission outcome name
}

// SchedEvent identifies one CPU scheduling transition.
type SchedEvent string

const (
	// SchedEnterCPU: process became the CPU occupant.
	SchedEnterCPU SchedEvent = "enter-cpu"
	// SchedPreempted: occupant evicted by a shorter process.
	SchedPreempted SchedEvent = "preempted"
	// SchedEnqueued: process entered the ready queue without preempting.
	SchedEnqueued SchedEvent = "enqueued"
	// SchedExitCPU: occupant completed and left the CPU.
	SchedExitCPU SchedEvent = "exit-cpu"
)

// SchedulingRecord captures a single scheduler transition.
type SchedulingRecord struct {
	ProcessID string
	Clock     int64
	Event     SchedEvent
}
