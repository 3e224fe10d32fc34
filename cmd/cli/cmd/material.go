// Package cmd - material command
package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"construct-cost/core/material"
	"construct-cost/core/output"
	"construct-cost/internal/errors"
)

var (
	matProject     string
	matLength      float64
	matWidth       float64
	matHeight      float64
	matRebar       string
	matRebarLength float64
)

// materialCmd represents the material command
var materialCmd = &cobra.Command{
	Use:   "material",
	Short: "Compute a structural material takeoff",
	Long: `Convert bulk dimensions and a rebar spec into concrete, rebar and
formwork quantities with standard surcharge rates.

Example:
  construct-cost material --length 10 --width 5 --height 3 --rebar D16 --rebar-length 1000 --project 본관동`,
	RunE: runMaterial,
}

func init() {
	materialCmd.Flags().StringVar(&matProject, "project", "", "project name (required)")
	materialCmd.Flags().Float64VarP(&matLength, "length", "l", 0, "length L in metres")
	materialCmd.Flags().Float64VarP(&matWidth, "width", "w", 0, "width W in metres")
	materialCmd.Flags().Float64VarP(&matHeight, "height", "H", 0, "height H in metres")
	materialCmd.Flags().StringVar(&matRebar, "rebar", "D16", "nominal rebar diameter (D10..D25)")
	materialCmd.Flags().Float64Var(&matRebarLength, "rebar-length", 0, "total rebar length in metres")
}

func runMaterial(cmd *cobra.Command, args []string) error {
	// The calculator itself does not re-validate; the gate sits here.
	if matProject == "" {
		return errors.Validation("project name must not be empty")
	}
	if matLength <= 0 || matWidth <= 0 || matHeight <= 0 {
		return errors.Validation("length, width and height must each be positive")
	}

	result := material.NewCalculator().Calculate(material.Input{
		ProjectName:      matProject,
		Length:           matLength,
		Width:            matWidth,
		Height:           matHeight,
		RebarDiameter:    material.RebarDiameter(matRebar),
		TotalRebarLength: matRebarLength,
	})

	formatter, err := output.New(output.Format(resolveFormat()))
	if err != nil {
		return err
	}
	return formatter.Render(os.Stdout, &output.Report{
		GeneratedAt: time.Now().UTC(),
		Material:    &result,
	})
}
