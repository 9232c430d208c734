// Table rendering for snapshots and the final report. All formatting lives
// here; the engine only exports read-only state.

package cmd

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	sim "github.com/santiagoacosta2/Simulador-Sistemas-Operativos/sim"
	"github.com/santiagoacosta2/Simulador-Sistemas-Operativos/sim/trace"
)

// renderSnapshot prints the CPU, ready-queue and memory state after one
// event step.
func renderSnapshot(w io.Writer, snap sim.Snapshot) {
	_, _ = fmt.Fprintf(w, "\n===== Snapshot t=%d event=%s =====\n", snap.Clock, snap.Event)

	if snap.OccupantID == "" {
		_, _ = fmt.Fprintln(w, "CPU: idle")
	} else {
		_, _ = fmt.Fprintf(w, "CPU: %s (remaining=%d)\n", snap.OccupantID, snap.OccupantRemaining)
	}

	if len(snap.Ready) == 0 {
		_, _ = fmt.Fprintln(w, "Ready queue: <empty>")
	} else {
		entries := make([]string, len(snap.Ready))
		for i, e := range snap.Ready {
			entries[i] = fmt.Sprintf("%s(rem=%d)", e.ID, e.Remaining)
		}
		_, _ = fmt.Fprintf(w, "Ready queue: %s\n", strings.Join(entries, ", "))
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Partition", "Base", "Size(K)", "Process", "Occupied(K)", "Frag(K)"})
	for _, pt := range snap.Partitions {
		occupant := pt.OccupantID
		if occupant == "" {
			occupant = "-"
		}
		table.Append([]string{
			pt.ID,
			strconv.FormatInt(pt.Base, 10),
			strconv.FormatInt(pt.Size, 10),
			occupant,
			strconv.FormatInt(pt.Occupied, 10),
			strconv.FormatInt(pt.Fragmentation, 10),
		})
	}
	table.Render()

	waiting := "<empty>"
	if len(snap.Waiting) > 0 {
		waiting = strings.Join(snap.Waiting, ", ")
	}
	_, _ = fmt.Fprintf(w, "Degree: %d/%d, waiting: %s\n", snap.InMemory, snap.DegreeMax, waiting)
}

// renderReport prints the per-process metrics table with average and
// throughput footer.
func renderReport(w io.Writer, m *sim.Metrics) {
	_, _ = fmt.Fprintln(w, "\nFinal metrics")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Start", "Finish", "Burst", "Turnaround", "Wait", "Response"})
	for _, pm := range m.PerProcess {
		table.Append([]string{
			pm.ID,
			strconv.FormatInt(pm.Arrival, 10),
			strconv.FormatInt(pm.Start, 10),
			strconv.FormatInt(pm.Finish, 10),
			strconv.FormatInt(pm.Burst, 10),
			strconv.FormatInt(pm.Turnaround, 10),
			strconv.FormatInt(pm.Wait, 10),
			strconv.FormatInt(pm.Response, 10),
		})
	}
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", m.AvgTurnaround),
		fmt.Sprintf("Average\n%.2f", m.AvgWait),
		fmt.Sprintf("Throughput\n%.3f/t", m.Throughput)})
	table.Render()

	if m.Discarded > 0 {
		_, _ = fmt.Fprintf(w, "Discarded (never fit in memory): %d\n", m.Discarded)
	}
}

// renderTraceSummary prints aggregate decision-trace statistics.
func renderTraceSummary(w io.Writer, s *trace.Summary) {
	_, _ = fmt.Fprintln(w, "\nDecision trace summary")
	_, _ = fmt.Fprintf(w, "Admission decisions : %d (admitted %d, rejected %d)\n",
		s.TotalAdmissionDecisions, s.AdmittedCount, s.RejectedCount)
	reasons := make([]string, 0, len(s.RejectionsByReason))
	for reason := range s.RejectionsByReason {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)
	for _, reason := range reasons {
		_, _ = fmt.Fprintf(w, "  %-24s: %d\n", reason, s.RejectionsByReason[reason])
	}
	_, _ = fmt.Fprintf(w, "Context switches    : %d\n", s.ContextSwitches)
	_, _ = fmt.Fprintf(w, "Preemptions         : %d\n", s.Preemptions)
}
