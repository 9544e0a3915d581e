package workload

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedsim/schedsim/sim"
)

func TestGenerate_SameSeed_Identical(t *testing.T) {
	cfg := DefaultGenerateConfig()
	a, err := Generate(cfg)
	require.NoError(t, err)
	b, err := Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_DifferentSeeds_Differ(t *testing.T) {
	cfg := DefaultGenerateConfig()
	cfg.Count = 50
	a, err := Generate(cfg)
	require.NoError(t, err)
	cfg.Seed++
	b, err := Generate(cfg)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestGenerate_RespectsRangesAndNaming(t *testing.T) {
	cfg := GenerateConfig{Seed: 7, Count: 200, MaxArrival: 15, MinBurst: 3, MaxBurst: 6}
	got, err := Generate(cfg)
	require.NoError(t, err)
	require.Len(t, got, 200)
	for i, p := range got {
		assert.Equal(t, fmt.Sprintf("P%d", i+1), p.ID)
		assert.GreaterOrEqual(t, p.Arrival, int64(0))
		assert.LessOrEqual(t, p.Arrival, int64(15))
		assert.GreaterOrEqual(t, p.Burst, int64(3))
		assert.LessOrEqual(t, p.Burst, int64(6))
	}
	assert.NoError(t, sim.ValidateProcesses(got))
}

func TestGenerate_BurstRangeDoesNotShiftArrivals(t *testing.T) {
	// GIVEN two configs differing only in burst range
	narrow := GenerateConfig{Seed: 3, Count: 30, MaxArrival: 40, MinBurst: 1, MaxBurst: 2}
	wide := narrow
	wide.MaxBurst = 50

	a, err := Generate(narrow)
	require.NoError(t, err)
	b, err := Generate(wide)
	require.NoError(t, err)

	// THEN arrivals come from an independent source and match
	for i := range a {
		assert.Equal(t, a[i].Arrival, b[i].Arrival)
	}
}

func TestGenerate_FixedRanges(t *testing.T) {
	got, err := Generate(GenerateConfig{Seed: 1, Count: 3, MaxArrival: 0, MinBurst: 4, MaxBurst: 4})
	require.NoError(t, err)
	assert.Equal(t, []sim.Process{
		{ID: "P1", Arrival: 0, Burst: 4},
		{ID: "P2", Arrival: 0, Burst: 4},
		{ID: "P3", Arrival: 0, Burst: 4},
	}, got)
}

func TestGenerateConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  GenerateConfig
	}{
		{"zero count", GenerateConfig{Count: 0, MinBurst: 1, MaxBurst: 1}},
		{"negative max arrival", GenerateConfig{Count: 1, MaxArrival: -1, MinBurst: 1, MaxBurst: 1}},
		{"zero min burst", GenerateConfig{Count: 1, MinBurst: 0, MaxBurst: 1}},
		{"inverted burst range", GenerateConfig{Count: 1, MinBurst: 5, MaxBurst: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.cfg)
			assert.Error(t, err)
		})
	}
}
