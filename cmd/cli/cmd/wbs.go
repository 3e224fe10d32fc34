// Package cmd - wbs command
package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"construct-cost/adapters/project"
	"construct-cost/core/output"
	"construct-cost/core/wbs"
	"construct-cost/internal/config"
	"construct-cost/internal/logging"
)

var (
	wbsSite         string
	wbsCode         string
	wbsProjectType  string
	wbsScale        string
	wbsContractType string
)

// wbsCmd represents the wbs command
var wbsCmd = &cobra.Command{
	Use:   "wbs",
	Short: "Generate an auto-numbered work breakdown structure",
	Long: `Run the four-stage WBS pipeline: template extraction, facet-matrix
expansion from the bill of quantities, PNS code assignment and
schedule/cost rollup.

BoQ and schedule rows come from the site definition file; without one
the bare template is numbered.

Examples:
  construct-cost wbs --site site.hcl
  construct-cost wbs --site site.hcl --code PRJ27 --format yaml`,
	RunE: runWbs,
}

func init() {
	wbsCmd.Flags().StringVarP(&wbsSite, "site", "s", "", "site definition file (HCL)")
	wbsCmd.Flags().StringVar(&wbsCode, "code", "", "project code prefix for PNS numbering")
	wbsCmd.Flags().StringVar(&wbsProjectType, "type", "오피스", "facility use for template selection")
	wbsCmd.Flags().StringVar(&wbsScale, "scale", "중형", "project scale for template selection")
	wbsCmd.Flags().StringVar(&wbsContractType, "contract", "총액계약", "contract form for template selection")
}

func runWbs(cmd *cobra.Command, args []string) error {
	site := &project.Site{}
	if wbsSite != "" {
		loaded, err := project.Load(wbsSite)
		if err != nil {
			return err
		}
		site = loaded
	}

	code := wbsCode
	if code == "" {
		code = config.Get().Project.WbsProjectCode
	}

	pipeline := &wbs.Pipeline{ProjectCode: code}
	profile := wbs.Profile{
		ProjectType:  wbsProjectType,
		Scale:        wbsScale,
		ContractType: wbsContractType,
	}

	logging.Debug("running wbs pipeline",
		zap.String("code", code),
		zap.Int("boq_rows", len(site.BoQ)),
		zap.Int("schedule_rows", len(site.Schedule)))

	nodes := pipeline.RunFullPipeline(profile, site.BoQ, site.Schedule)

	formatter, err := output.New(output.Format(resolveFormat()))
	if err != nil {
		return err
	}
	report := &output.Report{
		GeneratedAt: time.Now().UTC(),
		Wbs:         nodes,
	}
	if wbsSite != "" {
		report.Project = &site.Config
	}
	return formatter.Render(os.Stdout, report)
}
