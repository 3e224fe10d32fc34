// Package cmd - simulate command
package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"construct-cost/adapters/project"
	"construct-cost/core/output"
	"construct-cost/core/schedule"
	"construct-cost/internal/errors"
	"construct-cost/internal/logging"
)

var (
	simDay  int
	simSite string
)

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate time-phased progress at a given day",
	Long: `Walk the network schedule at a simulated day and report per-task
status, earned value and portfolio percent complete.

Without --site the built-in reference schedule is used.

Examples:
  construct-cost simulate --day 150
  construct-cost simulate --day 150 --site site.hcl --format json`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVarP(&simDay, "day", "d", 0, "simulated day offset from project start")
	simulateCmd.Flags().StringVarP(&simSite, "site", "s", "", "site definition file (HCL)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if simDay < 0 {
		return errors.Input("day must not be negative")
	}

	sim := schedule.NewDefault()
	if simSite != "" {
		site, err := project.Load(simSite)
		if err != nil {
			return err
		}
		if len(site.Tasks) == 0 {
			return errors.Input("site file declares no tasks")
		}
		sim = schedule.New(site.Config, site.Tasks)
	}

	logging.Debug("simulating", zap.Int("day", simDay))
	snapshot := sim.Snapshot(simDay)
	cfg := sim.Config()

	formatter, err := output.New(output.Format(resolveFormat()))
	if err != nil {
		return err
	}
	return formatter.Render(os.Stdout, &output.Report{
		GeneratedAt: time.Now().UTC(),
		Project:     &cfg,
		Simulation:  &snapshot,
	})
}
