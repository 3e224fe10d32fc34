// Package derivation turns a raw drawing measurement (length or area of
// a CAD layer) into an engineering quantity via the standard item's
// formula. Every operation here is a pure function: identical inputs
// always yield identical derivation strings and quantities.
//
// Arithmetic is deliberately unguarded. A zero per-section length
// divides to +Inf and negative dimensions produce negative volumes;
// user-facing validation of parameter ranges belongs to the caller.
// This policy is applied uniformly across all formula branches.
package derivation

import (
	"math"
	"strconv"
	"strings"

	"construct-cost/core/catalog"
)

// Result is the outcome of deriving a quantity from a base measurement.
type Result struct {
	// Derivation is the human-readable calculation string, embedding
	// every parameter value used
	Derivation string `json:"derivation" yaml:"derivation"`

	// FinalQty is the derived quantity, rounded to 3 decimals
	FinalQty float64 `json:"final_qty" yaml:"final_qty"`
}

// ResolveParams merges the item's declared defaults with a sparse
// override map. Every requirement ID is present in the result; unknown
// override keys are dropped.
func ResolveParams(item catalog.StandardItem, overrides map[string]float64) map[string]float64 {
	resolved := make(map[string]float64, len(item.Requirements))
	for _, r := range item.Requirements {
		if v, ok := overrides[r.ID]; ok {
			resolved[r.ID] = v
		} else {
			resolved[r.ID] = r.Default
		}
	}
	return resolved
}

// Derive computes the quantity for one drawing layer against a standard
// item. Missing parameters fall back to the item defaults before any
// formula runs.
func Derive(item catalog.StandardItem, params map[string]float64, baseQty float64, baseUnit string) Result {
	p := ResolveParams(item, params)

	switch item.Kind {
	case catalog.FormulaEarthwork:
		return deriveEarthwork(item, p, baseQty, baseUnit)
	case catalog.FormulaPipeline:
		return derivePipeline(item, p, baseQty, baseUnit)
	case catalog.FormulaPaving:
		return deriveProduct(item, p, baseQty, baseUnit, "width", "thickness")
	case catalog.FormulaStructure:
		return deriveProduct(item, p, baseQty, baseUnit, "width", "height")
	case catalog.FormulaManual:
		return deriveManual(item, p, baseQty, baseUnit)
	default:
		return deriveGeneric(item, p, baseQty, baseUnit)
	}
}

// deriveEarthwork widens the excavation cross-section only when a slope
// allowance was actually supplied; slope 0 and slope absent both take
// the no-slope branch.
func deriveEarthwork(item catalog.StandardItem, p map[string]float64, baseQty float64, baseUnit string) Result {
	width := p["width"]
	depth := p["depth"]
	slope := p["slope"]

	var qty float64
	var b strings.Builder
	if slope > 0 {
		qty = (width + slope) * depth * baseQty
		b.WriteString("(" + paramLabel(item, "width") + " " + fnum(width))
		b.WriteString(" + " + paramLabel(item, "slope") + " " + fnum(slope) + ")")
	} else {
		qty = width * depth * baseQty
		b.WriteString(paramLabel(item, "width") + " " + fnum(width))
	}
	b.WriteString(" × " + paramLabel(item, "depth") + " " + fnum(depth))
	b.WriteString(" × " + fnum(baseQty) + baseUnit)

	return finish(b.String(), qty, item.OutputUnit)
}

// derivePipeline converts a linear run into a count of pipe sections.
func derivePipeline(item catalog.StandardItem, p map[string]float64, baseQty float64, baseUnit string) Result {
	unitLen := p["unit_len"]
	qty := baseQty / unitLen

	deriv := fnum(baseQty) + baseUnit +
		" ÷ " + paramLabel(item, "unit_len") + " " + fnum(unitLen) + "m"
	return finish(deriv, qty, item.OutputUnit)
}

// deriveProduct handles the two-factor volume formulas (paving and
// structure differ only in which parameters they multiply).
func deriveProduct(item catalog.StandardItem, p map[string]float64, baseQty float64, baseUnit string, firstID, secondID string) Result {
	first := p[firstID]
	second := p[secondID]
	qty := first * second * baseQty

	deriv := paramLabel(item, firstID) + " " + fnum(first) +
		" × " + paramLabel(item, secondID) + " " + fnum(second) +
		" × " + fnum(baseQty) + baseUnit
	return finish(deriv, qty, item.OutputUnit)
}

// deriveManual applies a user-supplied conversion factor. The engine
// only computes; the custom name/unit completeness gate sits at
// statement construction.
func deriveManual(item catalog.StandardItem, p map[string]float64, baseQty float64, baseUnit string) Result {
	factor := p["custom_val"]
	qty := baseQty * factor

	deriv := fnum(baseQty) + baseUnit +
		" × " + paramLabel(item, "custom_val") + " " + fnum(factor)
	return finish(deriv, qty, item.OutputUnit)
}

// deriveGeneric multiplies the base quantity by every declared
// parameter. With zero requirements the base quantity passes through
// and the derivation merely restates it.
func deriveGeneric(item catalog.StandardItem, p map[string]float64, baseQty float64, baseUnit string) Result {
	if len(item.Requirements) == 0 {
		deriv := fnum(baseQty) + baseUnit
		return finish(deriv, baseQty, item.OutputUnit)
	}

	qty := baseQty
	var b strings.Builder
	b.WriteString(fnum(baseQty) + baseUnit)
	for _, r := range item.Requirements {
		v := p[r.ID]
		qty *= v
		b.WriteString(" × " + r.Name + " " + fnum(v))
	}
	return finish(b.String(), qty, item.OutputUnit)
}

// finish rounds the quantity to 3 decimals and appends the result to
// the derivation string.
func finish(expr string, qty float64, outputUnit string) Result {
	rounded := Round3(qty)
	deriv := expr + " = " + strconv.FormatFloat(rounded, 'f', 3, 64)
	if outputUnit != "" {
		deriv += " " + outputUnit
	}
	return Result{Derivation: deriv, FinalQty: rounded}
}

// paramLabel returns the display name of a declared parameter, falling
// back to the raw ID for parameters the item does not declare.
func paramLabel(item catalog.StandardItem, id string) string {
	if r, ok := item.Requirement(id); ok {
		return r.Name
	}
	return id
}

// fnum formats a parameter value without trailing zeros, so derivation
// strings stay byte-identical across calls.
func fnum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Round3 rounds to 3 decimal places. Inf and NaN pass through.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
