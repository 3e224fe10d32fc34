// Package schedule holds the fixed network task model and the
// time-phased progress simulator that walks it.
package schedule

import (
	"time"

	"github.com/shopspring/decimal"

	"construct-cost/core/types"
)

// DefaultConfig returns the built-in project profile used when no site
// definition file is supplied.
func DefaultConfig() types.ProjectConfig {
	return types.ProjectConfig{
		ProjectName:         "대광새마을금고 골프연습장 신축공사",
		StartDate:           time.Date(2025, 12, 12, 0, 0, 0, 0, time.UTC),
		TotalDays:           300,
		TotalContractAmount: decimal.NewFromInt(6630033084),
	}
}

// DefaultTasks returns the built-in network activity list. The tasks
// are a simplified subset of the full cost breakdown; their summed cost
// does not need to match the contract amount.
func DefaultTasks() []types.NetworkTask {
	return []types.NetworkTask{
		{ID: "A", Name: "가설 및 토공사", Start: 0, Duration: 40, Cost: decimal.NewFromInt(341275348)},
		{ID: "B", Name: "기초 및 파일공사", Start: 30, Duration: 40, Cost: decimal.NewFromInt(52232520)},
		{ID: "C", Name: "RC 구조물 공사", Start: 60, Duration: 70, Cost: decimal.NewFromInt(764246127)},
		{ID: "D", Name: "철골 구조물 공사", Start: 80, Duration: 60, Cost: decimal.NewFromInt(376856180)},
		{ID: "E", Name: "철탑 및 주요설비", Start: 130, Duration: 80, Cost: decimal.NewFromInt(889267231)},
		{ID: "F", Name: "그물망 및 시스템", Start: 200, Duration: 50, Cost: decimal.NewFromInt(370279992)},
		{ID: "G", Name: "내외장 및 MEP", Start: 160, Duration: 100, Cost: decimal.NewFromInt(2595879480)},
		{ID: "H", Name: "부대토목 및 조경", Start: 250, Duration: 50, Cost: decimal.NewFromInt(1239996206)},
	}
}
