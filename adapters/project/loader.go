// Package project loads a site definition file: the project profile,
// network task list, bill-of-quantities rows and schedule rows consumed
// by the simulation and WBS commands. The file format is HCL with
// project/task/boq/schedule blocks.
package project

import (
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"

	"construct-cost/core/types"
	"construct-cost/internal/errors"
)

// Site is the decoded content of one site definition file.
type Site struct {
	// Config is the project-level configuration
	Config types.ProjectConfig

	// Tasks is the network activity list
	Tasks []types.NetworkTask

	// BoQ is the cost breakdown
	BoQ []types.BoQRow

	// Schedule is the external schedule export
	Schedule []types.ScheduleRow
}

type siteFile struct {
	Project  *projectBlock   `hcl:"project,block"`
	Tasks    []taskBlock     `hcl:"task,block"`
	BoQ      []boqBlock      `hcl:"boq,block"`
	Schedule []scheduleBlock `hcl:"schedule,block"`
}

type projectBlock struct {
	Name           string  `hcl:"name"`
	StartDate      string  `hcl:"start_date"`
	TotalDays      int     `hcl:"total_days"`
	ContractAmount float64 `hcl:"contract_amount"`
}

type taskBlock struct {
	ID       string  `hcl:"id,label"`
	Name     string  `hcl:"name"`
	Start    int     `hcl:"start"`
	Duration int     `hcl:"duration"`
	Cost     float64 `hcl:"cost"`
}

type boqBlock struct {
	ID            string  `hcl:"id,label"`
	Name          string  `hcl:"name"`
	Unit          string  `hcl:"unit"`
	Quantity      float64 `hcl:"quantity"`
	UnitPrice     float64 `hcl:"unit_price,optional"`
	TotalCost     float64 `hcl:"total_cost"`
	FacetSpace    string  `hcl:"facet_space,optional"`
	FacetElement  string  `hcl:"facet_element,optional"`
	FacetWorkType string  `hcl:"facet_work_type,optional"`
}

type scheduleBlock struct {
	ID           string   `hcl:"id,label"`
	Name         string   `hcl:"name"`
	StartDate    string   `hcl:"start_date"`
	EndDate      string   `hcl:"end_date"`
	DurationDays int      `hcl:"duration_days"`
	Dependencies []string `hcl:"dependencies,optional"`
}

// Load reads and decodes a site definition file.
func Load(path string) (*Site, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Parsing("failed to read site file", err).WithContext("path", path)
	}
	return Parse(src, path)
}

// Parse decodes site definition source. The filename is only used in
// diagnostics.
func Parse(src []byte, filename string) (*Site, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("failed to parse site file", diags).WithContext("file", filename)
	}

	var raw siteFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, errors.Parsing("failed to decode site file", diags).WithContext("file", filename)
	}

	if raw.Project == nil {
		return nil, errors.New(errors.TypeParsing, "site file has no project block").WithContext("file", filename)
	}

	startDate, err := parseDate(raw.Project.StartDate)
	if err != nil {
		return nil, err
	}

	site := &Site{
		Config: types.ProjectConfig{
			ProjectName:         raw.Project.Name,
			StartDate:           startDate,
			TotalDays:           raw.Project.TotalDays,
			TotalContractAmount: decimal.NewFromFloat(raw.Project.ContractAmount),
		},
	}

	for _, t := range raw.Tasks {
		site.Tasks = append(site.Tasks, types.NetworkTask{
			ID:       t.ID,
			Name:     t.Name,
			Start:    t.Start,
			Duration: t.Duration,
			Cost:     decimal.NewFromFloat(t.Cost),
		})
	}

	for _, b := range raw.BoQ {
		site.BoQ = append(site.BoQ, types.BoQRow{
			ID:            b.ID,
			Name:          b.Name,
			Unit:          b.Unit,
			Quantity:      b.Quantity,
			UnitPrice:     decimal.NewFromFloat(b.UnitPrice),
			TotalCost:     decimal.NewFromFloat(b.TotalCost),
			FacetSpace:    b.FacetSpace,
			FacetElement:  b.FacetElement,
			FacetWorkType: b.FacetWorkType,
		})
	}

	for _, s := range raw.Schedule {
		start, err := parseDate(s.StartDate)
		if err != nil {
			return nil, err
		}
		end, err := parseDate(s.EndDate)
		if err != nil {
			return nil, err
		}
		site.Schedule = append(site.Schedule, types.ScheduleRow{
			ID:           s.ID,
			Name:         s.Name,
			StartDate:    start,
			EndDate:      end,
			DurationDays: s.DurationDays,
			Dependencies: s.Dependencies,
		})
	}

	return site, nil
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(types.DateLayout, s)
	if err != nil {
		return time.Time{}, errors.Parsing("invalid date", err).WithContext("value", s)
	}
	return d, nil
}
