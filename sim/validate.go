package sim

// ValidateProcesses checks a candidate process collection before simulation.
// It returns a *ValidationError for the first problem found and never
// modifies procs.
func ValidateProcesses(procs []Process) error {
	if len(procs) == 0 {
		return &ValidationError{Index: -1, Reason: "collection must contain at least one process"}
	}
	for i, p := range procs {
		if p.ID == "" {
			return &ValidationError{Index: i, Field: "id", Reason: "must be a non-empty string"}
		}
		if p.Arrival < 0 {
			return &ValidationError{Index: i, Field: "arrival", Reason: "must be >= 0"}
		}
		if p.Burst <= 0 {
			return &ValidationError{Index: i, Field: "burst", Reason: "must be > 0"}
		}
	}
	return nil
}
