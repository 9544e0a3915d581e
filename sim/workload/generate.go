package workload

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim"
)

// GenerateConfig parameterizes a random workload.
// Arrivals are uniform in [0, MaxArrival], bursts uniform in [MinBurst, MaxBurst].
type GenerateConfig struct {
	Seed       int64
	Count      int
	MaxArrival int64
	MinBurst   int64
	MaxBurst   int64
}

// DefaultGenerateConfig returns the parameters used by `schedsim generate`.
func DefaultGenerateConfig() GenerateConfig {
	return GenerateConfig{Seed: 42, Count: 10, MaxArrival: 20, MinBurst: 1, MaxBurst: 10}
}

// Validate checks that the ranges are non-empty.
func (c GenerateConfig) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("count must be >= 1, got %d", c.Count)
	}
	if c.MaxArrival < 0 {
		return fmt.Errorf("max arrival must be >= 0, got %d", c.MaxArrival)
	}
	if c.MinBurst < 1 {
		return fmt.Errorf("min burst must be >= 1, got %d", c.MinBurst)
	}
	if c.MaxBurst < c.MinBurst {
		return fmt.Errorf("max burst (%d) must be >= min burst (%d)", c.MaxBurst, c.MinBurst)
	}
	return nil
}

// Generate builds a reproducible workload of Count processes named P1..Pn.
// The same config always yields the same processes. Processes are returned in
// generation order, not sorted by arrival.
func Generate(cfg GenerateConfig) ([]sim.Process, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := newPartitionedRNG(cfg.Seed)
	arrivals := rng.forSubsystem(subsystemArrival)
	bursts := rng.forSubsystem(subsystemBurst)

	out := make([]sim.Process, cfg.Count)
	for i := range out {
		out[i] = sim.Process{
			ID:      fmt.Sprintf("P%d", i+1),
			Arrival: arrivals.Int63n(cfg.MaxArrival + 1),
			Burst:   cfg.MinBurst + bursts.Int63n(cfg.MaxBurst-cfg.MinBurst+1),
		}
	}
	logrus.Debugf("generated %d processes (seed %d)", len(out), cfg.Seed)
	return out, nil
}
