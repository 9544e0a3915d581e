package sim

import (
	"fmt"

	"github.com/schedsim/schedsim/sim/trace"
)

const (
	// DefaultMaxIterations is the iteration ceiling used when Config.MaxIterations is 0.
	DefaultMaxIterations = 1_000_000
	// DefaultRoundRobinQuantum is the Round-Robin time quantum in ticks.
	DefaultRoundRobinQuantum int64 = 2
	// DefaultAgingThreshold is the MLFQ aging threshold in ticks.
	DefaultAgingThreshold int64 = 10
	// MLFQLevels is the fixed number of MLFQ priority levels.
	MLFQLevels = 3
)

// DefaultMLFQQuantums are the per-level quantums used by DefaultConfig.
// The last level's 0 means "run to completion once dispatched".
var DefaultMLFQQuantums = []int64{2, 4, 0}

// Config groups the configuration of every policy engine.
// Each engine validates only the part it owns.
type Config struct {
	RoundRobin    RoundRobinConfig
	MLFQ          MLFQConfig
	MaxIterations int              // iteration ceiling per run (0 = DefaultMaxIterations)
	TraceLevel    trace.TraceLevel // "" or "none" disables tracing
}

// RoundRobinConfig holds Round-Robin parameters.
type RoundRobinConfig struct {
	Quantum int64 // time quantum in ticks (must be > 0)
}

// MLFQConfig holds multilevel feedback queue parameters.
type MLFQConfig struct {
	Quantums []int64 // 2 or 3 level quantums; a missing third level is 0
	Aging    int64   // ticks a process waits in a lower level before promotion (must be >= 1)
}

// DefaultConfig returns the configuration used when Run is given a nil *Config.
func DefaultConfig() Config {
	return Config{
		RoundRobin: RoundRobinConfig{Quantum: DefaultRoundRobinQuantum},
		MLFQ: MLFQConfig{
			Quantums: append([]int64(nil), DefaultMLFQQuantums...),
			Aging:    DefaultAgingThreshold,
		},
		MaxIterations: DefaultMaxIterations,
		TraceLevel:    trace.TraceLevelNone,
	}
}

// NewMLFQConfig derives level quantums [q, 2q, 0] from a single quantum.
func NewMLFQConfig(quantum int64) MLFQConfig {
	return MLFQConfig{
		Quantums: []int64{quantum, 2 * quantum, 0},
		Aging:    DefaultAgingThreshold,
	}
}

// NewMLFQConfigFromQuantums uses the given level quantums with the default aging threshold.
func NewMLFQConfigFromQuantums(quantums ...int64) MLFQConfig {
	return MLFQConfig{
		Quantums: append([]int64(nil), quantums...),
		Aging:    DefaultAgingThreshold,
	}
}

// Validate checks the Round-Robin configuration.
func (c RoundRobinConfig) Validate() error {
	if c.Quantum <= 0 {
		return &ConfigurationError{Field: "round_robin.quantum", Reason: fmt.Sprintf("must be > 0, got %d", c.Quantum)}
	}
	return nil
}

// Validate checks the MLFQ configuration.
func (c MLFQConfig) Validate() error {
	if len(c.Quantums) < 2 {
		return &ConfigurationError{Field: "mlfq.quantums", Reason: fmt.Sprintf("requires at least two quantums, got %d", len(c.Quantums))}
	}
	if len(c.Quantums) > MLFQLevels {
		return &ConfigurationError{Field: "mlfq.quantums", Reason: fmt.Sprintf("accepts at most %d quantums, got %d", MLFQLevels, len(c.Quantums))}
	}
	for lvl, q := range c.Quantums {
		if lvl < MLFQLevels-1 && q <= 0 {
			return &ConfigurationError{Field: fmt.Sprintf("mlfq.quantums[%d]", lvl), Reason: fmt.Sprintf("must be > 0, got %d", q)}
		}
		if q < 0 {
			return &ConfigurationError{Field: fmt.Sprintf("mlfq.quantums[%d]", lvl), Reason: fmt.Sprintf("must be >= 0, got %d", q)}
		}
	}
	if c.Aging < 1 {
		return &ConfigurationError{Field: "mlfq.aging", Reason: fmt.Sprintf("must be >= 1, got %d", c.Aging)}
	}
	return nil
}

// levelQuantums returns the three level quantums, padding a two-entry
// configuration with a run-to-completion last level. Call after Validate.
func (c MLFQConfig) levelQuantums() [MLFQLevels]int64 {
	var q [MLFQLevels]int64
	copy(q[:], c.Quantums)
	return q
}

// validateRun checks the settings shared by all engines.
func (c Config) validateRun() error {
	if c.MaxIterations < 0 {
		return &ConfigurationError{Field: "max_iterations", Reason: fmt.Sprintf("must be >= 0, got %d", c.MaxIterations)}
	}
	if !trace.IsValidTraceLevel(string(c.TraceLevel)) {
		return &ConfigurationError{Field: "trace_level", Reason: fmt.Sprintf("unknown level %q", c.TraceLevel)}
	}
	return nil
}

func (c Config) maxIterations() int {
	if c.MaxIterations == 0 {
		return DefaultMaxIterations
	}
	return c.MaxIterations
}
