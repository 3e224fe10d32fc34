// Package types - bill-of-quantities and schedule rows
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// BoQRow is one line of a cost breakdown (bill of quantities).
// The facet fields are independent classification axes; rows carrying
// both an element and a work-type facet are expanded into WBS leaves.
type BoQRow struct {
	// ID is the row identifier
	ID string `json:"id" yaml:"id"`

	// Name is the item name
	Name string `json:"name" yaml:"name"`

	// Unit is the billing unit
	Unit string `json:"unit" yaml:"unit"`

	// Quantity is the billed quantity
	Quantity float64 `json:"quantity" yaml:"quantity"`

	// UnitPrice is the unit rate
	UnitPrice decimal.Decimal `json:"unit_price" yaml:"unit_price"`

	// TotalCost is the row total (material + labour + expenses)
	TotalCost decimal.Decimal `json:"total_cost" yaml:"total_cost"`

	// FacetSpace is the space facet (e.g. "1층"); optional
	FacetSpace string `json:"facet_space,omitempty" yaml:"facet_space,omitempty"`

	// FacetElement is the building-element facet (e.g. "골조"); optional
	FacetElement string `json:"facet_element,omitempty" yaml:"facet_element,omitempty"`

	// FacetWorkType is the work-type facet (e.g. "철근콘크리트"); optional
	FacetWorkType string `json:"facet_work_type,omitempty" yaml:"facet_work_type,omitempty"`
}

// ScheduleRow is one activity line of an external schedule export.
type ScheduleRow struct {
	// ID is the activity identifier
	ID string `json:"id" yaml:"id"`

	// Name is the activity name
	Name string `json:"name" yaml:"name"`

	// StartDate is the planned start
	StartDate time.Time `json:"start_date" yaml:"start_date"`

	// EndDate is the planned finish
	EndDate time.Time `json:"end_date" yaml:"end_date"`

	// DurationDays is the planned duration
	DurationDays int `json:"duration_days" yaml:"duration_days"`

	// Dependencies lists predecessor activity IDs
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}
