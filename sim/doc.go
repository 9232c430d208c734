// Package sim provides the core discrete-event simulation engine: a fixed-
// partition memory manager combined with a preemptive CPU scheduler, driven
// by a deterministic event loop.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: Process lifecycle (new → ready-suspended/ready → running → terminated)
//   - memory.go: Best-Fit admission, multiprogramming degree cap, release cascade
//   - simulator.go: The event loop merging arrivals and completions in time order
//
// # Architecture
//
// The Simulator is the sole orchestrator. The MemoryManager returns who got
// admitted, the Scheduler returns who completed, and neither mutates the
// other's state. Scheduling disciplines hide behind the Scheduler interface;
// SRTF (srtf.go) is the default, FCFS (scheduler.go) the substitution proof.
//
// Determinism: the ready queue tie-breaks equal remaining times by a
// monotonic sequence counter, Best-Fit ties resolve by declaration order,
// and a completion always precedes an arrival landing on the same instant.
//
// Decision recording lives in sim/trace/, a pure-data sub-package with no
// dependencies back into sim/.
package sim
