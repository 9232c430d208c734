package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func terminated(id string, arrival, start, finish, burst int64) *Process {
	return &Process{
		ID:          id,
		ArrivalTime: arrival,
		BurstLength: burst,
		State:       StateTerminated,
		Started:     true,
		StartTime:   start,
		FinishTime:  finish,
	}
}

func TestMetrics_Finalize_DerivesPerProcessValues(t *testing.T) {
	m := NewMetrics()
	m.Finalize([]*Process{
		terminated("P1", 0, 0, 10, 6),
		terminated("P2", 2, 4, 8, 3),
	})

	assert.Equal(t, 2, m.Completed)
	assert.Equal(t, ProcessMetrics{
		ID: "P1", Arrival: 0, Start: 0, Finish: 10, Burst: 6,
		Turnaround: 10, Wait: 4, Response: 0,
	}, m.PerProcess[0])
	assert.Equal(t, ProcessMetrics{
		ID: "P2", Arrival: 2, Start: 4, Finish: 8, Burst: 3,
		Turnaround: 6, Wait: 3, Response: 2,
	}, m.PerProcess[1])

	assert.InDelta(t, 8.0, m.AvgTurnaround, 1e-9)
	assert.InDelta(t, 3.5, m.AvgWait, 1e-9)
	assert.InDelta(t, 1.0, m.AvgResponse, 1e-9)
	// Throughput spans to the last completion at t=10.
	assert.InDelta(t, 0.2, m.Throughput, 1e-9)
}

func TestMetrics_Finalize_ExcludesDiscarded(t *testing.T) {
	discarded := &Process{ID: "big", State: StateReadySuspended, Discarded: true}
	m := NewMetrics()
	m.Finalize([]*Process{
		terminated("P1", 0, 0, 5, 5),
		discarded,
	})

	assert.Equal(t, 1, m.Completed)
	assert.Equal(t, 1, m.Discarded)
	assert.Len(t, m.PerProcess, 1)
	assert.InDelta(t, 0.2, m.Throughput, 1e-9)
}

func TestMetrics_Finalize_UnterminatedProcessPanics(t *testing.T) {
	stuck := &Process{ID: "stuck", State: StateReady}
	m := NewMetrics()
	assert.Panics(t, func() { m.Finalize([]*Process{stuck}) })
}

func TestMetrics_Finalize_AllDiscarded(t *testing.T) {
	m := NewMetrics()
	m.Finalize([]*Process{{ID: "big", Discarded: true}})

	assert.Equal(t, 0, m.Completed)
	assert.Equal(t, 1, m.Discarded)
	assert.Zero(t, m.Throughput)
}
