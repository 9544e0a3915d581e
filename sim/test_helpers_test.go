package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// procs builds a process list from (id, arrival, burst) triples.
func procs(specs ...any) []Process {
	if len(specs)%3 != 0 {
		panic("procs: need (id, arrival, burst) triples")
	}
	out := make([]Process, 0, len(specs)/3)
	for i := 0; i < len(specs); i += 3 {
		out = append(out, Process{
			ID:      specs[i].(string),
			Arrival: int64(specs[i+1].(int)),
			Burst:   int64(specs[i+2].(int)),
		})
	}
	return out
}

// seg is shorthand for a GanttSegment literal.
func seg(owner string, start, end int64) GanttSegment {
	return GanttSegment{Owner: owner, Start: start, End: end}
}

// metricByID returns the metric for id, failing the test if it is missing.
func metricByID(t *testing.T, res *Result, id string) Metric {
	t.Helper()
	for _, m := range res.Metrics {
		if m.ID == id {
			return m
		}
	}
	require.Failf(t, "missing metric", "no metric for process %q in %v", id, res.Metrics)
	return Metric{}
}

// mustRun runs policy with cfg and fails the test on error.
func mustRun(t *testing.T, policy Policy, in []Process, cfg *Config) *Result {
	t.Helper()
	res, err := Run(policy, in, cfg)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

// dispatchOrder lists the process IDs of every traced dispatch.
func dispatchOrder(res *Result) []string {
	ids := make([]string, 0, len(res.Trace.Dispatches))
	for _, d := range res.Trace.Dispatches {
		ids = append(ids, d.ProcessID)
	}
	return ids
}

// tracedConfig returns DefaultConfig with decision tracing enabled.
func tracedConfig() *Config {
	cfg := DefaultConfig()
	cfg.TraceLevel = "decisions"
	return &cfg
}
