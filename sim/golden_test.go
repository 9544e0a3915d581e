package sim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/internal/testutil"
	"github.com/schedsim/schedsim/sim/trace"
)

func TestGoldenDataset(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)
	require.NotEmpty(t, dataset.Tests)

	for _, tc := range dataset.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			cfg := tc.Config()
			cfg.TraceLevel = trace.TraceLevelDecisions

			res, err := sim.Run(tc.Policy, tc.Processes, cfg)
			require.NoError(t, err)

			assert.Equal(t, tc.Gantt, res.Gantt, "gantt")
			assert.Equal(t, tc.Metrics, res.Metrics, "metrics")

			s := sim.Summarize(res)
			testutil.AssertFloat64Equal(t, "average_waiting", tc.Summary.AverageWaiting, s.AverageWaiting, 1e-9)
			testutil.AssertFloat64Equal(t, "average_turnaround", tc.Summary.AverageTurnaround, s.AverageTurnaround, 1e-9)
			testutil.AssertFloat64Equal(t, "average_response", tc.Summary.AverageResponse, s.AverageResponse, 1e-9)
			testutil.AssertFloat64Equal(t, "cpu_utilization", tc.Summary.Utilization, s.Utilization, 1e-9)
			assert.Equal(t, tc.Summary.ContextSwitches, s.ContextSwitches, "context_switches")

			ts := trace.Summarize(res.Trace)
			assert.Equal(t, tc.Promotions, ts.Promotions, "promotions")
			assert.Equal(t, tc.Demotions, ts.Demotions, "demotions")
		})
	}
}
