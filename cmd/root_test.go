package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	sim "github.com/santiagoacosta2/Simulador-Sistemas-Operativos/sim"
	"github.com/santiagoacosta2/Simulador-Sistemas-Operativos/sim/trace"
)

func TestRunPipeline_CSVToMetrics(t *testing.T) {
	// GIVEN a process CSV on disk
	csvPath := filepath.Join(t.TempDir(), "procesos.csv")
	content := `ID,Arrival,Burst,Memory
P1,0,8,90
P2,1,5,240
P3,2,4,80
P4,3,7,300
P5,4,3,50
P6,5,6,100
`
	assert.NoError(t, os.WriteFile(csvPath, []byte(content), 0o644))

	// WHEN it is loaded and simulated with the built-in layout
	processes, err := LoadProcessesCSV(csvPath)
	assert.NoError(t, err)

	specs, _, err := LoadPartitionLayout("")
	assert.NoError(t, err)
	memory, err := sim.NewMemoryManager(specs, sim.DefaultDegreeMax)
	assert.NoError(t, err)

	s, err := sim.NewSimulator(processes, memory, sim.NewScheduler("srtf"),
		trace.Config{Level: trace.LevelDecisions})
	assert.NoError(t, err)
	s.Run()

	// THEN the run reaches quiescence with the expected aggregate metrics
	assert.Equal(t, 5, s.Metrics.Completed)
	assert.Equal(t, 1, s.Metrics.Discarded)
	assert.InDelta(t, 12.2, s.Metrics.AvgTurnaround, 1e-9)
	assert.InDelta(t, 7.0, s.Metrics.AvgWait, 1e-9)
}

func TestRunCommand_FlagsRegistered(t *testing.T) {
	for _, flag := range []string{"csv", "partitions", "degree", "scheduler", "log", "verbose", "trace"} {
		assert.NotNil(t, runCmd.Flags().Lookup(flag), "flag --%s", flag)
	}
}
