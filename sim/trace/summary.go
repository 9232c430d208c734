package trace

// Summary aggregates statistics from a SimulationTrace.
type Summary struct {
	TotalAdmissionDecisions int
	AdmittedCount           int
	RejectedCount           int
	RejectionsByReason      map[string]int // outcome name → count

	Preemptions     int
	ContextSwitches int // enter-cpu transitions
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *Summary {
	summary := &Summary{
		RejectionsByReason: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalAdmissionDecisions = len(st.Admissions)
	for _, a := range st.Admissions {
		if a.Admitted {
			summary.AdmittedCount++
		} else {
			summary.RejectedCount++
			summary.RejectionsByReason[a.Reason]++
		}
	}

	for _, s := range st.Schedulings {
		switch s.Event {
		case SchedPreempted:
			summary.Preemptions++
		case SchedEnterCPU:
			summary.ContextSwitches++
		}
	}

	return summary
}
