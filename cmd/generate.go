package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/workload"
)

var (
	genConfig = workload.DefaultGenerateConfig()
	genFormat string // csv or yaml
	genPolicy string // policy written into a yaml scenario
)

// generateCmd writes a reproducible random workload to stdout
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a seeded random workload",
	Long:  "Generate a reproducible random workload and write it to stdout as CSV or as a YAML scenario for piping into `schedsim run`.",
	Run: func(cmd *cobra.Command, args []string) {
		if err := writeGenerated(os.Stdout, genConfig, genFormat, genPolicy); err != nil {
			logrus.Fatalf("Generating workload failed: %v", err)
		}
	},
}

// writeGenerated generates a workload and encodes it in the given format.
func writeGenerated(w io.Writer, cfg workload.GenerateConfig, format, policy string) error {
	procs, err := workload.Generate(cfg)
	if err != nil {
		return err
	}
	switch format {
	case "csv":
		return workload.WriteCSV(w, procs)
	case "yaml":
		if policy != "" {
			if _, err := sim.ParsePolicy(policy); err != nil {
				return err
			}
		}
		return workload.WriteScenario(w, &workload.Scenario{
			Version:   workload.CurrentScenarioVersion,
			Policy:    policy,
			Processes: procs,
		})
	default:
		return fmt.Errorf("unknown format %q; valid: csv, yaml", format)
	}
}

func init() {
	generateCmd.Flags().Int64Var(&genConfig.Seed, "seed", genConfig.Seed, "Seed for workload generation")
	generateCmd.Flags().IntVar(&genConfig.Count, "count", genConfig.Count, "Number of processes")
	generateCmd.Flags().Int64Var(&genConfig.MaxArrival, "max-arrival", genConfig.MaxArrival, "Latest arrival time (ticks)")
	generateCmd.Flags().Int64Var(&genConfig.MinBurst, "min-burst", genConfig.MinBurst, "Shortest burst (ticks)")
	generateCmd.Flags().Int64Var(&genConfig.MaxBurst, "max-burst", genConfig.MaxBurst, "Longest burst (ticks)")
	generateCmd.Flags().StringVar(&genFormat, "format", "csv", "Output format (csv, yaml)")
	generateCmd.Flags().StringVar(&genPolicy, "policy", "", "Policy to record in a yaml scenario")
}
