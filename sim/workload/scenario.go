package workload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/trace"
)

// CurrentScenarioVersion is the scenario file format written by WriteScenario.
const CurrentScenarioVersion = "1"

// Scenario is a workload plus the policy configuration to run it with.
// Loaded from YAML via LoadScenario(path).
type Scenario struct {
	Version       string          `yaml:"version"`
	Policy        string          `yaml:"policy,omitempty"`
	RoundRobin    *RoundRobinSpec `yaml:"round_robin,omitempty"`
	MLFQ          *MLFQSpec       `yaml:"mlfq,omitempty"`
	MaxIterations int             `yaml:"max_iterations,omitempty"` // 0 = sim.DefaultMaxIterations
	Trace         string          `yaml:"trace,omitempty"`
	Processes     ProcessList     `yaml:"processes"`
}

// RoundRobinSpec is the round_robin section of a scenario.
type RoundRobinSpec struct {
	Quantum int64 `yaml:"quantum"`
}

// MLFQSpec is the mlfq section of a scenario. It accepts three shapes:
//
//	mlfq: 3                               # quantums [3, 6, 0]
//	mlfq: [2, 4]                          # two or three level quantums
//	mlfq: {quantums: [2, 4, 0], aging: 10}
//
// Omitted mapping fields take their defaults.
type MLFQSpec struct {
	Quantums []int64 `yaml:"quantums"`
	Aging    int64   `yaml:"aging"`
}

// ProcessList is the processes section of a scenario. Fields that are not
// integers are reported as *sim.ValidationError naming the offending element.
type ProcessList []sim.Process

// LoadScenario reads and parses a YAML scenario file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses a YAML scenario document.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing scenario: empty document")
		}
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if s.Version == "" {
		logrus.Warnf("scenario has no version; assuming version %q", CurrentScenarioVersion)
		s.Version = CurrentScenarioVersion
	}
	if s.Version != CurrentScenarioVersion {
		return nil, fmt.Errorf("parsing scenario: unsupported version %q; valid: %q", s.Version, CurrentScenarioVersion)
	}
	return &s, nil
}

// WriteScenario encodes s as YAML.
func WriteScenario(w io.Writer, s *Scenario) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("writing scenario: %w", err)
	}
	return enc.Close()
}

// Validate checks the policy name, the configuration sections present in the
// scenario and the process list.
func (s *Scenario) Validate() error {
	if s.Policy != "" {
		if _, err := sim.ParsePolicy(s.Policy); err != nil {
			return err
		}
	}
	cfg := s.Config()
	if s.RoundRobin != nil {
		if err := cfg.RoundRobin.Validate(); err != nil {
			return err
		}
	}
	if s.MLFQ != nil {
		if err := cfg.MLFQ.Validate(); err != nil {
			return err
		}
	}
	if s.MaxIterations < 0 {
		return &sim.ConfigurationError{Field: "max_iterations", Reason: fmt.Sprintf("must be >= 0, got %d", s.MaxIterations)}
	}
	if !trace.IsValidTraceLevel(s.Trace) {
		return &sim.ConfigurationError{Field: "trace", Reason: fmt.Sprintf("unknown level %q", s.Trace)}
	}
	return sim.ValidateProcesses(s.Processes)
}

// Config builds the simulation configuration, starting from sim.DefaultConfig
// and overriding the sections present in the scenario.
func (s *Scenario) Config() *sim.Config {
	cfg := sim.DefaultConfig()
	if s.RoundRobin != nil {
		cfg.RoundRobin.Quantum = s.RoundRobin.Quantum
	}
	if s.MLFQ != nil {
		cfg.MLFQ = sim.MLFQConfig{
			Quantums: append([]int64(nil), s.MLFQ.Quantums...),
			Aging:    s.MLFQ.Aging,
		}
	}
	if s.MaxIterations != 0 {
		cfg.MaxIterations = s.MaxIterations
	}
	if s.Trace != "" {
		cfg.TraceLevel = trace.TraceLevel(s.Trace)
	}
	return &cfg
}

// UnmarshalYAML decodes the scalar, sequence and mapping shapes of the mlfq section.
func (m *MLFQSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		q, err := parseTicks(node)
		if err != nil {
			return &sim.ConfigurationError{Field: "mlfq", Reason: err.Error()}
		}
		*m = MLFQSpec(sim.NewMLFQConfig(q))
		return nil
	case yaml.SequenceNode:
		quantums, err := parseQuantums(node)
		if err != nil {
			return err
		}
		*m = MLFQSpec(sim.NewMLFQConfigFromQuantums(quantums...))
		return nil
	case yaml.MappingNode:
		out := MLFQSpec{
			Quantums: append([]int64(nil), sim.DefaultMLFQQuantums...),
			Aging:    sim.DefaultAgingThreshold,
		}
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i], node.Content[i+1]
			switch key.Value {
			case "quantums":
				quantums, err := parseQuantums(val)
				if err != nil {
					return err
				}
				out.Quantums = quantums
			case "aging":
				aging, err := parseTicks(val)
				if err != nil {
					return &sim.ConfigurationError{Field: "mlfq.aging", Reason: err.Error()}
				}
				out.Aging = aging
			default:
				return &sim.ConfigurationError{Field: "mlfq", Reason: fmt.Sprintf("line %d: unknown field %q", key.Line, key.Value)}
			}
		}
		*m = out
		return nil
	default:
		return &sim.ConfigurationError{Field: "mlfq", Reason: fmt.Sprintf("line %d: must be a quantum, a sequence of quantums, or a mapping", node.Line)}
	}
}

// UnmarshalYAML decodes a sequence of {id, arrival, burst} mappings.
func (pl *ProcessList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return &sim.ValidationError{Index: -1, Reason: fmt.Sprintf("line %d: processes must be a sequence", node.Line)}
	}
	out := make(ProcessList, 0, len(node.Content))
	for idx, item := range node.Content {
		if item.Kind != yaml.MappingNode {
			return &sim.ValidationError{Index: idx, Field: "entry", Reason: fmt.Sprintf("must be a mapping (line %d)", item.Line)}
		}
		var p sim.Process
		for i := 0; i+1 < len(item.Content); i += 2 {
			key, val := item.Content[i], item.Content[i+1]
			switch key.Value {
			case "id":
				if val.Kind != yaml.ScalarNode {
					return &sim.ValidationError{Index: idx, Field: "id", Reason: "must be a string"}
				}
				p.ID = val.Value
			case "arrival", "burst":
				n, err := parseTicks(val)
				if err != nil {
					return &sim.ValidationError{Index: idx, Field: key.Value, Reason: err.Error()}
				}
				if key.Value == "arrival" {
					p.Arrival = n
				} else {
					p.Burst = n
				}
			default:
				return &sim.ValidationError{Index: idx, Field: key.Value, Reason: fmt.Sprintf("is not a known field (line %d)", key.Line)}
			}
		}
		out = append(out, p)
	}
	*pl = out
	return nil
}

func parseQuantums(node *yaml.Node) ([]int64, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, &sim.ConfigurationError{Field: "mlfq.quantums", Reason: fmt.Sprintf("line %d: must be a sequence", node.Line)}
	}
	quantums := make([]int64, 0, len(node.Content))
	for i, item := range node.Content {
		q, err := parseTicks(item)
		if err != nil {
			return nil, &sim.ConfigurationError{Field: fmt.Sprintf("mlfq.quantums[%d]", i), Reason: err.Error()}
		}
		quantums = append(quantums, q)
	}
	return quantums, nil
}

// parseTicks reads an integer tick count from a scalar node.
func parseTicks(node *yaml.Node) (int64, error) {
	if node.Kind != yaml.ScalarNode {
		return 0, fmt.Errorf("is not a number (line %d)", node.Line)
	}
	n, err := strconv.ParseInt(node.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("is not a number: %q (line %d)", node.Value, node.Line)
	}
	return n, nil
}
