package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/santiagoacosta2/Simulador-Sistemas-Operativos/sim"
	"github.com/santiagoacosta2/Simulador-Sistemas-Operativos/sim/trace"
)

var (
	// CLI flags for the simulation run
	csvPath        string // Path to the process CSV (ID,Arrival,Burst,Memory)
	partitionsPath string // Optional YAML partition layout; empty selects the built-in layout
	degreeMax      int    // Multiprogramming degree cap
	schedulerName  string // Scheduling discipline (srtf, fcfs)
	logLevel       string // Log verbosity level
	verbose        bool   // Render a state snapshot table after every event
	traceLevel     string // Decision trace level (none, decisions)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "simulador-so",
	Short: "Discrete-event simulator for fixed-partition memory and SRTF scheduling",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the memory + CPU scheduling simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if !sim.IsValidScheduler(schedulerName) {
			logrus.Fatalf("Unknown scheduler: %s", schedulerName)
		}
		if !trace.IsValidLevel(traceLevel) {
			logrus.Fatalf("Unknown trace level: %s", traceLevel)
		}

		processes, err := LoadProcessesCSV(csvPath)
		if err != nil {
			logrus.Fatalf("Unable to load processes: %v", err)
		}

		specs, layoutDegree, err := LoadPartitionLayout(partitionsPath)
		if err != nil {
			logrus.Fatalf("Unable to load partition layout: %v", err)
		}
		if cmd.Flags().Changed("degree") || layoutDegree == 0 {
			layoutDegree = degreeMax
		}

		memory, err := sim.NewMemoryManager(specs, layoutDegree)
		if err != nil {
			logrus.Fatalf("Invalid partition layout: %v", err)
		}

		s, err := sim.NewSimulator(processes, memory, sim.NewScheduler(schedulerName),
			trace.Config{Level: trace.Level(traceLevel)})
		if err != nil {
			logrus.Fatalf("Unable to build simulator: %v", err)
		}
		if verbose {
			s.OnSnapshot = func(snap sim.Snapshot) {
				renderSnapshot(os.Stdout, snap)
			}
		}

		s.Run()
		renderReport(os.Stdout, s.Metrics)
		if s.Trace != nil {
			renderTraceSummary(os.Stdout, trace.Summarize(s.Trace))
		}

		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&csvPath, "csv", "procesos.csv", "Path to process CSV with columns: ID,Arrival,Burst,Memory")
	runCmd.Flags().StringVar(&partitionsPath, "partitions", "", "Path to YAML partition layout (default: built-in 100K SO / 250K / 150K / 50K)")
	runCmd.Flags().IntVar(&degreeMax, "degree", sim.DefaultDegreeMax, "Maximum multiprogramming degree")
	runCmd.Flags().StringVar(&schedulerName, "scheduler", "srtf", "Scheduling discipline (srtf, fcfs)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().BoolVar(&verbose, "verbose", false, "Render memory and scheduler snapshots after every event")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Decision trace level (none, decisions)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
