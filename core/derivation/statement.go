// Package derivation - quantity statement lines
package derivation

import (
	"github.com/google/uuid"

	"construct-cost/core/catalog"
	"construct-cost/internal/errors"
)

// DefaultSpec is the specification label for rows extracted from a
// drawing rather than typed in by hand.
const DefaultSpec = "도면 추출 규격"

// StatementLine is one accepted row of a quantity statement. It holds a
// snapshot of the derivation inputs, so later edits to the source layer
// or parameters never change an accepted line.
type StatementLine struct {
	// ID is a unique line identifier
	ID string `json:"id" yaml:"id"`

	// Name is the item name (custom name for manual entries)
	Name string `json:"name" yaml:"name"`

	// Spec is the specification label
	Spec string `json:"spec" yaml:"spec"`

	// Unit is the output unit (custom unit for manual entries)
	Unit string `json:"unit" yaml:"unit"`

	// BaseQty is the raw drawing measurement
	BaseQty float64 `json:"base_qty" yaml:"base_qty"`

	// Quantity is the derived quantity
	Quantity float64 `json:"quantity" yaml:"quantity"`

	// Basis is the standard estimating citation
	Basis string `json:"basis" yaml:"basis"`

	// Derivation is the calculation string
	Derivation string `json:"derivation" yaml:"derivation"`

	// Params is the snapshot of resolved parameter values
	Params map[string]float64 `json:"params" yaml:"params"`

	// OriginalLayer is the CAD layer the measurement came from
	OriginalLayer string `json:"original_layer" yaml:"original_layer"`
}

// LineInput carries everything needed to accept a derivation result
// into a statement.
type LineInput struct {
	Item     catalog.StandardItem
	Result   Result
	BaseQty  float64
	BaseUnit string
	Params   map[string]float64
	Layer    string

	// Spec overrides the default specification label
	Spec string

	// CustomName and CustomUnit are required for the manual-input item
	// and ignored for every other item
	CustomName string
	CustomUnit string
}

// NewStatementLine builds an immutable statement line from a derivation
// result. For the manual-input item both the custom name and the custom
// unit must be non-empty; this is the one hard validation gate in the
// calculation path.
func NewStatementLine(in LineInput) (StatementLine, error) {
	name := in.Item.Name
	unit := in.Item.OutputUnit

	if in.Item.ID == catalog.ManualInputID {
		if in.CustomName == "" {
			return StatementLine{}, errors.Validation("manual entry requires a custom item name")
		}
		if in.CustomUnit == "" {
			return StatementLine{}, errors.Validation("manual entry requires a custom unit")
		}
		name = in.CustomName
		unit = in.CustomUnit
	}

	spec := in.Spec
	if spec == "" {
		spec = DefaultSpec
	}

	return StatementLine{
		ID:            uuid.NewString(),
		Name:          name,
		Spec:          spec,
		Unit:          unit,
		BaseQty:       in.BaseQty,
		Quantity:      in.Result.FinalQty,
		Basis:         in.Item.Basis,
		Derivation:    in.Result.Derivation,
		Params:        ResolveParams(in.Item, in.Params),
		OriginalLayer: in.Layer,
	}, nil
}
