// Package evm computes earned-value management variances and
// performance indices for a task or rollup.
package evm

import "github.com/shopspring/decimal"

// Figures are the cost-baseline inputs: planned value, earned value and
// actual cost.
type Figures struct {
	PV decimal.Decimal `json:"pv" yaml:"pv"`
	EV decimal.Decimal `json:"ev" yaml:"ev"`
	AC decimal.Decimal `json:"ac" yaml:"ac"`
}

// Indices are the derived EVM figures, rounded to 2 decimals.
//
// A zero denominator yields an index of exactly 0 instead of NaN or
// Inf; code that compares numerically keeps seeing 0. The Defined flags
// distinguish that case from a genuine zero-performance index, so a
// task with no actuals can render as "not started" rather than "badly
// over budget".
type Indices struct {
	// CV is cost variance: EV - AC
	CV decimal.Decimal `json:"cv" yaml:"cv"`

	// SV is schedule variance: EV - PV
	SV decimal.Decimal `json:"sv" yaml:"sv"`

	// CPI is the cost performance index: EV / AC, 0 when AC <= 0
	CPI decimal.Decimal `json:"cpi" yaml:"cpi"`

	// SPI is the schedule performance index: EV / PV, 0 when PV <= 0
	SPI decimal.Decimal `json:"spi" yaml:"spi"`

	// CostIndexDefined is false when AC <= 0 forced CPI to 0
	CostIndexDefined bool `json:"cost_index_defined" yaml:"cost_index_defined"`

	// ScheduleIndexDefined is false when PV <= 0 forced SPI to 0
	ScheduleIndexDefined bool `json:"schedule_index_defined" yaml:"schedule_index_defined"`
}

// Compute derives the EVM indices from the baseline figures.
func Compute(f Figures) Indices {
	out := Indices{
		CV: f.EV.Sub(f.AC).Round(2),
		SV: f.EV.Sub(f.PV).Round(2),
	}

	if f.AC.IsPositive() {
		out.CPI = f.EV.Div(f.AC).Round(2)
		out.CostIndexDefined = true
	} else {
		out.CPI = decimal.Zero
	}

	if f.PV.IsPositive() {
		out.SPI = f.EV.Div(f.PV).Round(2)
		out.ScheduleIndexDefined = true
	} else {
		out.SPI = decimal.Zero
	}

	return out
}
