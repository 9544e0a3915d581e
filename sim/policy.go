package sim

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim/trace"
)

// Policy names a scheduling policy.
type Policy string

const (
	FCFS Policy = "FCFS" // First-Come-First-Serve
	SJF  Policy = "SJF"  // Shortest-Job-First, non-preemptive
	SRT  Policy = "SRT"  // Shortest-Remaining-Time, preemptive
	RR   Policy = "RR"   // Round-Robin
	MLFQ Policy = "MLFQ" // three-level Multilevel Feedback Queue with aging
)

// AllPolicies lists every policy in the order RunAll reports them.
var AllPolicies = []Policy{FCFS, SJF, SRT, RR, MLFQ}

// validPolicies is the set of recognized policy names.
// Shared by IsValidPolicy() and NewEngine() to avoid duplication.
var validPolicies = map[Policy]bool{FCFS: true, SJF: true, SRT: true, RR: true, MLFQ: true}

// IsValidPolicy returns true if name is a recognized policy (exact match).
func IsValidPolicy(name string) bool {
	return validPolicies[Policy(name)]
}

// ParsePolicy resolves a policy name case-insensitively.
func ParsePolicy(name string) (Policy, error) {
	p := Policy(strings.ToUpper(strings.TrimSpace(name)))
	if !validPolicies[p] {
		return "", &ConfigurationError{Field: "policy", Reason: fmt.Sprintf("unknown policy %q; valid: FCFS, SJF, SRT, RR, MLFQ", name)}
	}
	return p, nil
}

// Result is the complete output of one policy run.
type Result struct {
	Policy  Policy                 `json:"policy"`
	Gantt   []GanttSegment         `json:"gantt"`
	Metrics []Metric               `json:"metrics"`
	Trace   *trace.SimulationTrace `json:"-"`
}

// Makespan returns the end time of the final Gantt segment.
func (r *Result) Makespan() int64 {
	if len(r.Gantt) == 0 {
		return 0
	}
	return r.Gantt[len(r.Gantt)-1].End
}

// Engine simulates one scheduling policy over a fixed process set.
// Implementations keep no state between Simulate calls.
type Engine interface {
	Policy() Policy
	Simulate(procs []Process) (*Result, error)
}

// NewEngine creates the Engine for policy, validating the configuration
// the engine owns. Returns a *ConfigurationError on invalid input.
func NewEngine(policy Policy, cfg Config) (Engine, error) {
	if !validPolicies[policy] {
		return nil, &ConfigurationError{Field: "policy", Reason: fmt.Sprintf("unknown policy %q", policy)}
	}
	if err := cfg.validateRun(); err != nil {
		return nil, err
	}
	switch policy {
	case FCFS:
		return &fcfsEngine{cfg: cfg}, nil
	case SJF:
		return &sjfEngine{cfg: cfg}, nil
	case SRT:
		return &srtEngine{cfg: cfg}, nil
	case RR:
		if err := cfg.RoundRobin.Validate(); err != nil {
			return nil, err
		}
		return &roundRobinEngine{cfg: cfg, quantum: cfg.RoundRobin.Quantum}, nil
	case MLFQ:
		if err := cfg.MLFQ.Validate(); err != nil {
			return nil, err
		}
		return &mlfqEngine{cfg: cfg, quantums: cfg.MLFQ.levelQuantums(), aging: cfg.MLFQ.Aging}, nil
	default:
		panic(fmt.Sprintf("unhandled policy %q", policy))
	}
}

// Run simulates policy over procs. A nil cfg uses DefaultConfig().
// Errors are *ValidationError, *ConfigurationError, or wrap
// ErrSimulationBoundExceeded; no partial result is returned with an error.
func Run(policy Policy, procs []Process, cfg *Config) (*Result, error) {
	c := DefaultConfig()
	if cfg != nil {
		c = *cfg
	}
	engine, err := NewEngine(policy, c)
	if err != nil {
		return nil, err
	}
	logrus.Infof("Starting %s simulation with %d processes", policy, len(procs))
	res, err := engine.Simulate(procs)
	if err != nil {
		return nil, err
	}
	logrus.Infof("[tick %07d] %s simulation ended", res.Makespan(), policy)
	return res, nil
}

// RunAll simulates every policy in AllPolicies over procs, one goroutine per
// policy, and returns the results in AllPolicies order. Runs share no state.
// The first error in AllPolicies order is returned.
func RunAll(procs []Process, cfg *Config) ([]*Result, error) {
	results := make([]*Result, len(AllPolicies))
	errs := make([]error, len(AllPolicies))

	var wg sync.WaitGroup
	for i, policy := range AllPolicies {
		wg.Add(1)
		go func(i int, policy Policy) {
			defer wg.Done()
			results[i], errs[i] = Run(policy, procs, cfg)
		}(i, policy)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
