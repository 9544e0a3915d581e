package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDispatches int            `json:"total_dispatches"`
	Promotions      int            `json:"promotions"`
	Demotions       int            `json:"demotions"`
	UniqueProcesses int            `json:"unique_processes"`
	DispatchCounts  map[string]int `json:"dispatch_counts"` // process ID → number of dispatches
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		DispatchCounts: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalDispatches = len(st.Dispatches)
	for _, d := range st.Dispatches {
		summary.DispatchCounts[d.ProcessID]++
	}
	for _, c := range st.LevelChanges {
		switch {
		case c.To < c.From:
			summary.Promotions++
		case c.To > c.From:
			summary.Demotions++
		}
	}
	summary.UniqueProcesses = len(summary.DispatchCounts)

	return summary
}
