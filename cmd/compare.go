package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim"
)

// compareCmd runs every policy over the same workload
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run all five policies over a workload and compare their summaries",
	Run: func(cmd *cobra.Command, args []string) {
		in, err := loadInput(cmd.Flags())
		if err != nil {
			logrus.Fatalf("Loading workload failed: %v", err)
		}
		results, err := sim.RunAll(in.procs, in.cfg)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		if err := writeComparison(os.Stdout, outputFormat(cmd.Flags()), results); err != nil {
			logrus.Fatalf("Writing results failed: %v", err)
		}
	},
}
