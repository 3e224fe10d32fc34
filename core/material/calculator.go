// Package material converts bulk structural dimensions and a rebar spec
// into concrete, rebar and formwork quantities with fixed surcharge
// rates. All arithmetic is pure; the caller validates that dimensions
// are positive and the project name is non-empty before calling.
package material

import (
	"math"
	"time"
)

// Input is the structural takeoff for one calculation.
type Input struct {
	// ProjectName labels the calculation
	ProjectName string `json:"project_name" yaml:"project_name"`

	// Length, Width and Height are the bulk dimensions in metres
	Length float64 `json:"length" yaml:"length"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`

	// RebarDiameter is the nominal diameter code
	RebarDiameter RebarDiameter `json:"rebar_diameter" yaml:"rebar_diameter"`

	// TotalRebarLength is the total rebar run in metres
	TotalRebarLength float64 `json:"total_rebar_length" yaml:"total_rebar_length"`
}

// ConcreteResult holds the ready-mix quantities. Fields are rounded to
// 2 decimals.
type ConcreteResult struct {
	RemiconM3     float64 `json:"remicon_m3" yaml:"remicon_m3"`
	WaterstopM    float64 `json:"waterstop_m" yaml:"waterstop_m"`
	CuringAgentM2 float64 `json:"curing_agent_m2" yaml:"curing_agent_m2"`
}

// RebarResult holds the reinforcement quantities. Tonnage is rounded to
// 3 decimals, tie wire to 2.
type RebarResult struct {
	RebarTon  float64 `json:"rebar_ton" yaml:"rebar_ton"`
	TieWireKg float64 `json:"tie_wire_kg" yaml:"tie_wire_kg"`
	SpacersEA int     `json:"spacers_ea" yaml:"spacers_ea"`
}

// FormworkResult holds the formwork quantities. Areas and oil are
// rounded to 2 decimals.
type FormworkResult struct {
	FormAreaM2   float64 `json:"form_area_m2" yaml:"form_area_m2"`
	FormOilLiter float64 `json:"form_oil_liter" yaml:"form_oil_liter"`
	FlatTieEA    int     `json:"flat_tie_ea" yaml:"flat_tie_ea"`
}

// Metadata labels a calculation result.
type Metadata struct {
	ProjectName string    `json:"project_name" yaml:"project_name"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
}

// Result is the complete material takeoff.
type Result struct {
	Concrete ConcreteResult `json:"concrete" yaml:"concrete"`
	Rebar    RebarResult    `json:"rebar" yaml:"rebar"`
	Formwork FormworkResult `json:"formwork" yaml:"formwork"`
	Metadata Metadata       `json:"metadata" yaml:"metadata"`
}

// Calculator computes material quantities against a fixed table set.
type Calculator struct {
	tables Tables
}

// NewCalculator returns a calculator over the standard tables.
func NewCalculator() *Calculator {
	return &Calculator{tables: DefaultTables()}
}

// NewCalculatorWithTables returns a calculator over custom tables, so
// tests can substitute fixtures without shared global state.
func NewCalculatorWithTables(t Tables) *Calculator {
	return &Calculator{tables: t}
}

// Calculate produces the material takeoff for the given dimensions.
// Unknown rebar diameters contribute a zero unit weight rather than
// failing; the rebar family then reports zero.
func (c *Calculator) Calculate(in Input) Result {
	t := c.tables

	// Concrete family. The waterstop and curing coefficients are
	// linear policy constants on length and plan area.
	rawConcreteVol := in.Length * in.Width * in.Height
	remicon := round2(rawConcreteVol * t.ConcreteSurcharge)
	waterstop := round2(in.Length * t.WaterstopPerLength)
	curing := round2(in.Length * in.Width)

	// Rebar family. Unit weight is kg/m, mass is reported in tons.
	unitWeight := t.RebarUnitWeights[in.RebarDiameter]
	rebarTon := round3(in.TotalRebarLength * unitWeight / 1000 * t.RebarSurcharge)
	tieWire := round2(rebarTon * t.TieWirePerTon)
	spacers := int(math.Ceil(rawConcreteVol * t.SpacersPerM3))

	// Formwork family. Contact area covers the four side faces.
	rawFormArea := 2 * (in.Length + in.Width) * in.Height
	formArea := round2(rawFormArea * t.FormworkSurcharge)
	formOil := round2(formArea * t.FormOilPerM2)
	flatTies := int(math.Ceil(formArea * t.FlatTiesPerM2))

	return Result{
		Concrete: ConcreteResult{
			RemiconM3:     remicon,
			WaterstopM:    waterstop,
			CuringAgentM2: curing,
		},
		Rebar: RebarResult{
			RebarTon:  rebarTon,
			TieWireKg: tieWire,
			SpacersEA: spacers,
		},
		Formwork: FormworkResult{
			FormAreaM2:   formArea,
			FormOilLiter: formOil,
			FlatTieEA:    flatTies,
		},
		Metadata: Metadata{
			ProjectName: in.ProjectName,
			GeneratedAt: time.Now().UTC(),
		},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
