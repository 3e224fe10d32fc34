// Package output provides output formatting interfaces.
// This package produces human and machine-readable reports.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"construct-cost/core/derivation"
	"construct-cost/core/evm"
	"construct-cost/core/material"
	"construct-cost/core/schedule"
	"construct-cost/core/types"
	"construct-cost/core/wbs"
	"construct-cost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatYAML is machine-readable YAML
	FormatYAML Format = "yaml"
)

// Report is the complete calculation output. Any section may be nil or
// empty; renderers skip absent sections.
type Report struct {
	// GeneratedAt timestamps the report
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	// Project is the project configuration, when a site file was loaded
	Project *types.ProjectConfig `json:"project,omitempty" yaml:"project,omitempty"`

	// Statement contains accepted quantity statement lines
	Statement []derivation.StatementLine `json:"statement,omitempty" yaml:"statement,omitempty"`

	// Material is a material takeoff result
	Material *material.Result `json:"material,omitempty" yaml:"material,omitempty"`

	// Simulation is a time-phased progress snapshot
	Simulation *schedule.Snapshot `json:"simulation,omitempty" yaml:"simulation,omitempty"`

	// Evm is an earned-value analysis result
	Evm *EvmSection `json:"evm,omitempty" yaml:"evm,omitempty"`

	// Wbs is the generated work breakdown structure
	Wbs []wbs.Node `json:"wbs,omitempty" yaml:"wbs,omitempty"`
}

// EvmSection pairs the baseline figures with their derived indices.
type EvmSection struct {
	Figures evm.Figures `json:"figures" yaml:"figures"`
	Indices evm.Indices `json:"indices" yaml:"indices"`
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, r *Report) error
}

// New returns the formatter for a format name.
func New(f Format) (Formatter, error) {
	switch f {
	case FormatCLI:
		return &cliFormatter{}, nil
	case FormatJSON:
		return &jsonFormatter{}, nil
	case FormatYAML:
		return &yamlFormatter{}, nil
	default:
		return nil, errors.Newf(errors.TypeInput, "unknown output format: %s", f)
	}
}

type jsonFormatter struct{}

func (f *jsonFormatter) Format() Format { return FormatJSON }

func (f *jsonFormatter) Render(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

type yamlFormatter struct{}

func (f *yamlFormatter) Format() Format { return FormatYAML }

func (f *yamlFormatter) Render(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(r)
}

type cliFormatter struct{}

func (f *cliFormatter) Format() Format { return FormatCLI }

func (f *cliFormatter) Render(w io.Writer, r *Report) error {
	if r.Project != nil {
		fmt.Fprintf(w, "Project: %s\n", r.Project.ProjectName)
		fmt.Fprintf(w, "  start %s, %d days, contract %s KRW\n\n",
			r.Project.StartDate.Format(types.DateLayout),
			r.Project.TotalDays,
			r.Project.TotalContractAmount.StringFixed(0))
	}

	if len(r.Statement) > 0 {
		f.renderStatement(w, r.Statement)
	}
	if r.Material != nil {
		f.renderMaterial(w, r.Material)
	}
	if r.Simulation != nil {
		f.renderSimulation(w, r.Simulation)
	}
	if r.Evm != nil {
		f.renderEvm(w, r.Evm)
	}
	if len(r.Wbs) > 0 {
		f.renderWbs(w, r.Wbs)
	}
	return nil
}

func (f *cliFormatter) renderStatement(w io.Writer, lines []derivation.StatementLine) {
	fmt.Fprintln(w, "Quantity statement")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSPEC\tUNIT\tQUANTITY\tDERIVATION")
	for _, l := range lines {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.3f\t%s\n", l.Name, l.Spec, l.Unit, l.Quantity, l.Derivation)
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func (f *cliFormatter) renderMaterial(w io.Writer, res *material.Result) {
	fmt.Fprintf(w, "Material takeoff (%s)\n", res.Metadata.ProjectName)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "concrete\tremicon\t%.2f m3\n", res.Concrete.RemiconM3)
	fmt.Fprintf(tw, "\twaterstop\t%.2f m\n", res.Concrete.WaterstopM)
	fmt.Fprintf(tw, "\tcuring agent\t%.2f m2\n", res.Concrete.CuringAgentM2)
	fmt.Fprintf(tw, "rebar\ttonnage\t%.3f ton\n", res.Rebar.RebarTon)
	fmt.Fprintf(tw, "\ttie wire\t%.2f kg\n", res.Rebar.TieWireKg)
	fmt.Fprintf(tw, "\tspacers\t%d ea\n", res.Rebar.SpacersEA)
	fmt.Fprintf(tw, "formwork\tcontact area\t%.2f m2\n", res.Formwork.FormAreaM2)
	fmt.Fprintf(tw, "\tform oil\t%.2f L\n", res.Formwork.FormOilLiter)
	fmt.Fprintf(tw, "\tflat ties\t%d ea\n", res.Formwork.FlatTieEA)
	tw.Flush()
	fmt.Fprintln(w)
}

func (f *cliFormatter) renderSimulation(w io.Writer, snap *schedule.Snapshot) {
	fmt.Fprintf(w, "Simulated day %d (%s)\n", snap.Day, snap.Date.Format(types.DateLayout))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTASK\tSTATUS\tPROGRESS\tEARNED")
	for _, t := range snap.Tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d%%\t%s\n",
			t.Task.ID, t.Task.Name, t.Status, t.ProgressPct, t.Earned.StringFixed(0))
	}
	tw.Flush()
	fmt.Fprintf(w, "cumulative earned: %s KRW, %s%% complete\n\n",
		snap.CumulativeEarned.StringFixed(0), snap.PercentComplete.String())
}

func (f *cliFormatter) renderEvm(w io.Writer, s *EvmSection) {
	fmt.Fprintln(w, "Earned value analysis")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "PV\t%s\tCV\t%s\n", s.Figures.PV, s.Indices.CV)
	fmt.Fprintf(tw, "EV\t%s\tSV\t%s\n", s.Figures.EV, s.Indices.SV)
	cpi := "-"
	if s.Indices.CostIndexDefined {
		cpi = s.Indices.CPI.String()
	}
	spi := "-"
	if s.Indices.ScheduleIndexDefined {
		spi = s.Indices.SPI.String()
	}
	fmt.Fprintf(tw, "AC\t%s\tCPI\t%s\n", s.Figures.AC, cpi)
	fmt.Fprintf(tw, "\t\tSPI\t%s\n", spi)
	tw.Flush()
	fmt.Fprintln(w)
}

func (f *cliFormatter) renderWbs(w io.Writer, nodes []wbs.Node) {
	fmt.Fprintln(w, "Work breakdown structure")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tLEVEL\tNAME\tCOST\tSCHEDULE")
	for _, n := range nodes {
		cost := "-"
		if n.HasCost {
			cost = n.AssignedCost.StringFixed(0)
		}
		sched := "-"
		if n.Schedule != nil {
			sched = fmt.Sprintf("%s ~ %s (%dd)",
				n.Schedule.StartDate.Format(types.DateLayout),
				n.Schedule.EndDate.Format(types.DateLayout),
				n.Schedule.DurationDays)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", n.PnsCode, n.Level, n.Name, cost, sched)
	}
	tw.Flush()
	fmt.Fprintln(w)
}
