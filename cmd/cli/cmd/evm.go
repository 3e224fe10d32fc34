// Package cmd - evm command
package cmd

import (
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"construct-cost/core/evm"
	"construct-cost/core/output"
)

var (
	evmPlanned float64
	evmEarned  float64
	evmActual  float64
)

// evmCmd represents the evm command
var evmCmd = &cobra.Command{
	Use:   "evm",
	Short: "Compute earned-value variances and performance indices",
	Long: `Compute CV, SV, CPI and SPI from planned value, earned value and
actual cost. Indices with a zero denominator report as not started
rather than zero performance.

Example:
  construct-cost evm --pv 100 --ev 50 --ac 25`,
	RunE: runEvm,
}

func init() {
	evmCmd.Flags().Float64Var(&evmPlanned, "pv", 0, "planned value (BCWS)")
	evmCmd.Flags().Float64Var(&evmEarned, "ev", 0, "earned value (BCWP)")
	evmCmd.Flags().Float64Var(&evmActual, "ac", 0, "actual cost (ACWP)")
}

func runEvm(cmd *cobra.Command, args []string) error {
	figures := evm.Figures{
		PV: decimal.NewFromFloat(evmPlanned),
		EV: decimal.NewFromFloat(evmEarned),
		AC: decimal.NewFromFloat(evmActual),
	}
	indices := evm.Compute(figures)

	formatter, err := output.New(output.Format(resolveFormat()))
	if err != nil {
		return err
	}
	return formatter.Render(os.Stdout, &output.Report{
		GeneratedAt: time.Now().UTC(),
		Evm:         &output.EvmSection{Figures: figures, Indices: indices},
	})
}
