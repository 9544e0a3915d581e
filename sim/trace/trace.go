package trace

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures every dispatch and every MLFQ level change.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// Enabled reports whether the level records anything.
func (l TraceLevel) Enabled() bool {
	return l == TraceLevelDecisions
}

// SimulationTrace collects decision records during a single policy run.
type SimulationTrace struct {
	Level        TraceLevel
	Dispatches   []DispatchRecord
	LevelChanges []LevelChangeRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
// Returns nil when the level does not record anything; all recording
// methods are safe on a nil receiver.
func NewSimulationTrace(level TraceLevel) *SimulationTrace {
	if !level.Enabled() {
		return nil
	}
	return &SimulationTrace{
		Level:        level,
		Dispatches:   make([]DispatchRecord, 0),
		LevelChanges: make([]LevelChangeRecord, 0),
	}
}

// RecordDispatch appends a dispatch record.
func (st *SimulationTrace) RecordDispatch(record DispatchRecord) {
	if st == nil {
		return
	}
	st.Dispatches = append(st.Dispatches, record)
}

// RecordLevelChange appends a level change record.
func (st *SimulationTrace) RecordLevelChange(record LevelChangeRecord) {
	if st == nil {
		return
	}
	st.LevelChanges = append(st.LevelChanges, record)
}
