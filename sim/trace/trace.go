package trace

// Level controls the verbosity of decision tracing.
type Level string

const (
	// LevelNone disables tracing (zero overhead).
	LevelNone Level = "none"
	// LevelDecisions captures all admission and scheduling decisions.
	LevelDecisions Level = "decisions"
)

// validLevels maps accepted trace level strings.
var validLevels = map[Level]bool{
	LevelNone:      true,
	LevelDecisions: true,
	"":             true, // empty defaults to none
}

// IsValidLevel returns true if the given level string is a recognized trace level.
func IsValidLevel(level string) bool {
	return validLevels[Level(level)]
}

// Config controls trace collection behavior.
type Config struct {
	Level Level
}

// SimulationTrace collects decision records during a simulation run.
type SimulationTrace struct {
	Config      Config
	Admissions  []AdmissionRecord
	Schedulings []SchedulingRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config Config) *SimulationTrace {
	return &SimulationTrace{
		Config:      config,
		Admissions:  make([]AdmissionRecord, 0),
		Schedulings: make([]SchedulingRecord, 0),
	}
}

// RecordAdmission appends an admission decision record.
func (st *SimulationTrace) RecordAdmission(record AdmissionRecord) {
	st.Admissions = append(st.Admissions, record)
}

// RecordScheduling appends a scheduler transition record.
func (st *SimulationTrace) RecordScheduling(record SchedulingRecord) {
	st.Schedulings = append(st.Schedulings, record)
}
