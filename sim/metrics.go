// Tracks per-process timing metrics and simulation-wide aggregates:
// turnaround, wait and response times, plus throughput.

package sim

import "fmt"

// ProcessMetrics holds the derived timing values for one completed process.
//
// Formulas:
//
//	turnaround = finish - arrival
//	wait       = turnaround - burst
//	response   = start - arrival
type ProcessMetrics struct {
	ID         string
	Arrival    int64
	Start      int64
	Finish     int64
	Burst      int64
	Turnaround int64
	Wait       int64
	Response   int64
}

// Metrics aggregates statistics about the simulation for final reporting.
// Discarded processes (memory demand beyond every partition) are excluded
// from every aggregate.
type Metrics struct {
	Completed int // number of processes that ran to termination
	Discarded int // number of processes that could never fit in memory

	PerProcess []ProcessMetrics // one entry per completed process, arrival order

	AvgTurnaround float64
	AvgWait       float64
	AvgResponse   float64
	// Throughput is completed processes per time unit, over the span from
	// t=0 to the last completion.
	Throughput float64
}

// NewMetrics returns an empty Metrics ready for Finalize.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Finalize derives per-process and aggregate metrics once the simulation has
// reached quiescence. A non-discarded process that never terminated means
// the driver stopped early; that is engine corruption, not user input.
func (m *Metrics) Finalize(processes []*Process) {
	var sumTurnaround, sumWait, sumResponse, lastFinish int64

	for _, p := range processes {
		if p.Discarded {
			m.Discarded++
			continue
		}
		if p.State != StateTerminated {
			panic(fmt.Sprintf("Finalize: process %s never terminated (state %s)", p.ID, p.State))
		}

		pm := ProcessMetrics{
			ID:         p.ID,
			Arrival:    p.ArrivalTime,
			Start:      p.StartTime,
			Finish:     p.FinishTime,
			Burst:      p.BurstLength,
			Turnaround: p.FinishTime - p.ArrivalTime,
			Response:   p.StartTime - p.ArrivalTime,
		}
		pm.Wait = pm.Turnaround - p.BurstLength
		m.PerProcess = append(m.PerProcess, pm)

		sumTurnaround += pm.Turnaround
		sumWait += pm.Wait
		sumResponse += pm.Response
		if p.FinishTime > lastFinish {
			lastFinish = p.FinishTime
		}
	}

	m.Completed = len(m.PerProcess)
	if m.Completed == 0 {
		return
	}
	n := float64(m.Completed)
	m.AvgTurnaround = float64(sumTurnaround) / n
	m.AvgWait = float64(sumWait) / n
	m.AvgResponse = float64(sumResponse) / n
	if lastFinish > 0 {
		m.Throughput = n / float64(lastFinish)
	}
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Completed Processes  : %d\n", m.Completed)
	fmt.Printf("Discarded Processes  : %d\n", m.Discarded)
	if m.Completed > 0 {
		fmt.Printf("Average Turnaround   : %.2f\n", m.AvgTurnaround)
		fmt.Printf("Average Wait         : %.2f\n", m.AvgWait)
		fmt.Printf("Average Response     : %.2f\n", m.AvgResponse)
		fmt.Printf("Throughput           : %.3f processes/time unit\n", m.Throughput)
	}
}
