package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/trace"
	"github.com/schedsim/schedsim/sim/workload"
)

var logLevel string // Log verbosity level

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "schedsim",
	Short: "Deterministic CPU scheduling simulator",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd simulates one policy over a workload
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one scheduling policy over a workload",
	Long:  "Run one scheduling policy over a workload given as a YAML scenario (--workload) or a CSV file (--csv) and print the Gantt chart and per-process metrics.",
	Run: func(cmd *cobra.Command, args []string) {
		in, err := loadInput(cmd.Flags())
		if err != nil {
			logrus.Fatalf("Loading workload failed: %v", err)
		}
		policy, err := resolvePolicy(cmd.Flags(), in.policy)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		res, err := sim.Run(policy, in.procs, in.cfg)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		if err := writeRun(os.Stdout, outputFormat(cmd.Flags()), in.procs, res); err != nil {
			logrus.Fatalf("Writing results failed: %v", err)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// simInput is a loaded workload with its effective configuration.
type simInput struct {
	procs  []sim.Process
	cfg    *sim.Config
	policy string // policy named by the scenario file, if any
}

// addSimFlags registers the workload and configuration flags shared by run and compare.
func addSimFlags(fs *pflag.FlagSet) {
	fs.String("workload", "", "Path to a YAML scenario file")
	fs.String("csv", "", "Path to a CSV file of id,burst,arrival rows")
	fs.Int64("quantum", sim.DefaultRoundRobinQuantum, "Round-Robin time quantum (ticks)")
	fs.Int64Slice("mlfq-quantums", sim.DefaultMLFQQuantums, "Comma-separated MLFQ level quantums (2 or 3 values; last may be 0)")
	fs.Int64("aging", sim.DefaultAgingThreshold, "MLFQ aging threshold (ticks)")
	fs.Int("max-iterations", 0, "Iteration ceiling per run (0 = default)")
	fs.String("trace", string(trace.TraceLevelNone), "Decision trace level (none, decisions)")
	fs.String("output", "table", "Output format (table, json)")
}

// loadInput reads the workload named by --workload or --csv and applies the
// configuration flags the user set explicitly on top of it.
func loadInput(fs *pflag.FlagSet) (*simInput, error) {
	workloadPath, _ := fs.GetString("workload")
	csvPath, _ := fs.GetString("csv")

	in := &simInput{}
	switch {
	case workloadPath != "" && csvPath != "":
		return nil, fmt.Errorf("--workload and --csv are mutually exclusive")
	case workloadPath != "":
		s, err := workload.LoadScenario(workloadPath)
		if err != nil {
			return nil, err
		}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %s: %w", workloadPath, err)
		}
		in.procs, in.cfg, in.policy = s.Processes, s.Config(), s.Policy
	case csvPath != "":
		procs, err := workload.LoadCSVFile(csvPath)
		if err != nil {
			return nil, err
		}
		cfg := sim.DefaultConfig()
		in.procs, in.cfg = procs, &cfg
	default:
		return nil, fmt.Errorf("one of --workload or --csv is required")
	}

	if err := applyOverrides(fs, in.cfg); err != nil {
		return nil, err
	}
	logrus.Infof("Loaded %d processes", len(in.procs))
	return in, nil
}

// applyOverrides copies explicitly set flags into cfg.
func applyOverrides(fs *pflag.FlagSet, cfg *sim.Config) error {
	if fs.Changed("quantum") {
		q, _ := fs.GetInt64("quantum")
		cfg.RoundRobin.Quantum = q
	}
	if fs.Changed("mlfq-quantums") {
		qs, _ := fs.GetInt64Slice("mlfq-quantums")
		cfg.MLFQ.Quantums = append([]int64(nil), qs...)
	}
	if fs.Changed("aging") {
		a, _ := fs.GetInt64("aging")
		cfg.MLFQ.Aging = a
	}
	if fs.Changed("max-iterations") {
		n, _ := fs.GetInt("max-iterations")
		cfg.MaxIterations = n
	}
	if fs.Changed("trace") {
		level, _ := fs.GetString("trace")
		if !trace.IsValidTraceLevel(level) {
			return fmt.Errorf("unknown trace level %q; valid: none, decisions", level)
		}
		cfg.TraceLevel = trace.TraceLevel(level)
	}
	return nil
}

// resolvePolicy prefers --policy over the scenario's policy.
func resolvePolicy(fs *pflag.FlagSet, fromScenario string) (sim.Policy, error) {
	name := fromScenario
	if fs.Changed("policy") {
		name, _ = fs.GetString("policy")
	}
	if name == "" {
		return "", fmt.Errorf("no policy given; use --policy or set policy in the scenario")
	}
	return sim.ParsePolicy(name)
}

func outputFormat(fs *pflag.FlagSet) string {
	f, _ := fs.GetString("output")
	return f
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().String("policy", "", "Scheduling policy (FCFS, SJF, SRT, RR, MLFQ)")
	addSimFlags(runCmd.Flags())
	addSimFlags(compareCmd.Flags())

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(generateCmd)
}
