// Package types contains the shared domain records consumed across the
// calculation core: project configuration, the network task catalog, and
// the bill-of-quantities / schedule rows fed into the WBS pipeline.
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used in site definition files.
const DateLayout = "2006-01-02"

// ProjectConfig holds the project-level totals for schedule simulation.
type ProjectConfig struct {
	// ProjectName is the display name of the site
	ProjectName string `json:"project_name" yaml:"project_name"`

	// StartDate is the contractual start of construction
	StartDate time.Time `json:"start_date" yaml:"start_date"`

	// TotalDays is the total contract duration in days
	TotalDays int `json:"total_days" yaml:"total_days"`

	// TotalContractAmount is the contract sum in KRW
	TotalContractAmount decimal.Decimal `json:"total_contract_amount" yaml:"total_contract_amount"`
}

// NetworkTask is one activity in the fixed network schedule.
// Start and Duration are whole-day offsets from the project start;
// the task list is a simplified subset of the full cost breakdown, so
// the summed costs need not equal the contract amount.
type NetworkTask struct {
	// ID is the stable activity identifier (e.g. "A")
	ID string `json:"id" yaml:"id"`

	// Name is the work-package name
	Name string `json:"name" yaml:"name"`

	// Start is the day offset at which the task begins (>= 0)
	Start int `json:"start" yaml:"start"`

	// Duration is the task length in days (> 0)
	Duration int `json:"duration" yaml:"duration"`

	// Cost is the budgeted cost of the task
	Cost decimal.Decimal `json:"cost" yaml:"cost"`
}

// End returns the day offset at which the task completes.
func (t NetworkTask) End() int {
	return t.Start + t.Duration
}
