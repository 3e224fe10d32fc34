// Package wbs implements the four-stage WBS auto-numbering pipeline:
// template extraction, facet-matrix expansion, code assignment and
// schedule/cost rollup. Each stage is a pure transform over a node
// slice; stages never throw on empty input and return it unchanged.
package wbs

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile describes a new project for template selection.
type Profile struct {
	// ProjectType is the facility use (e.g. 아파트, 오피스, 도로)
	ProjectType string `json:"project_type" yaml:"project_type"`

	// Scale is the project scale (대형, 중형, 소형)
	Scale string `json:"scale" yaml:"scale"`

	// ContractType is the contract form (총액계약, 단가계약)
	ContractType string `json:"contract_type" yaml:"contract_type"`
}

// NodeSchedule is the schedule data attached to a node in stage 4.
type NodeSchedule struct {
	// StartDate is the planned start
	StartDate time.Time `json:"start_date" yaml:"start_date"`

	// EndDate is the planned finish
	EndDate time.Time `json:"end_date" yaml:"end_date"`

	// DurationDays is the planned duration
	DurationDays int `json:"duration_days" yaml:"duration_days"`
}

// Node is one entry of the work breakdown structure. It is built
// incrementally: PnsCode is only valid after code assignment and
// Schedule only after the rollup stage.
type Node struct {
	// ID uniquely identifies the node
	ID string `json:"id" yaml:"id"`

	// ParentID references the parent node; empty for the root
	ParentID string `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`

	// Name is the node label
	Name string `json:"name" yaml:"name"`

	// PnsCode is the assigned identifier string
	PnsCode string `json:"pns_code" yaml:"pns_code"`

	// Level is the hierarchy level, root = 1
	Level int `json:"level" yaml:"level"`

	// AssignedCost is the cost carried by a leaf; valid when HasCost
	AssignedCost decimal.Decimal `json:"assigned_cost" yaml:"assigned_cost"`

	// HasCost reports whether AssignedCost was set
	HasCost bool `json:"has_cost" yaml:"has_cost"`

	// Schedule is attached by the rollup stage; nil before it runs
	Schedule *NodeSchedule `json:"schedule,omitempty" yaml:"schedule,omitempty"`
}
