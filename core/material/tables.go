// Package material - constant tables
package material

// RebarDiameter is a nominal rebar diameter code.
type RebarDiameter string

const (
	D10 RebarDiameter = "D10"
	D13 RebarDiameter = "D13"
	D16 RebarDiameter = "D16"
	D19 RebarDiameter = "D19"
	D22 RebarDiameter = "D22"
	D25 RebarDiameter = "D25"
)

// Tables holds the policy constants of the calculator: surcharge rates
// and derived-quantity coefficients. These are contractual values, not
// physically derived; downstream consumers assume them exactly.
type Tables struct {
	// RebarUnitWeights is kg/m by nominal diameter
	RebarUnitWeights map[RebarDiameter]float64

	// ConcreteSurcharge is the ready-mix waste factor
	ConcreteSurcharge float64

	// RebarSurcharge is the rebar waste factor
	RebarSurcharge float64

	// FormworkSurcharge is the formwork waste factor
	FormworkSurcharge float64

	// WaterstopPerLength is waterstop metres per metre of length
	WaterstopPerLength float64

	// TieWirePerTon is kg of tie wire per ton of rebar
	TieWirePerTon float64

	// SpacersPerM3 is spacers per cubic metre of concrete
	SpacersPerM3 float64

	// FormOilPerM2 is litres of form-release oil per square metre
	FormOilPerM2 float64

	// FlatTiesPerM2 is flat ties per square metre of form contact area
	FlatTiesPerM2 float64
}

// DefaultTables returns the standard estimating constants.
func DefaultTables() Tables {
	return Tables{
		RebarUnitWeights: map[RebarDiameter]float64{
			D10: 0.560,
			D13: 0.995,
			D16: 1.560,
			D19: 2.250,
			D22: 3.040,
			D25: 3.980,
		},
		ConcreteSurcharge:  1.01,
		RebarSurcharge:     1.03,
		FormworkSurcharge:  1.05,
		WaterstopPerLength: 2.0,
		TieWirePerTon:      4.0,
		SpacersPerM3:       20.0,
		FormOilPerM2:       0.1,
		FlatTiesPerM2:      3.0,
	}
}
