// Package schedule - time-phased progress simulator
package schedule

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"construct-cost/core/types"
)

// TaskStatus is the state of a task at a simulated day.
type TaskStatus string

const (
	// StatusWaiting means the task has not started
	StatusWaiting TaskStatus = "waiting"

	// StatusActive means the task is in progress
	StatusActive TaskStatus = "active"

	// StatusDone means the task has completed
	StatusDone TaskStatus = "done"
)

// TaskProgress is the derived state of one task. It is recomputed in
// full for every simulated day and never stored.
type TaskProgress struct {
	// Task is the underlying network activity
	Task types.NetworkTask `json:"task" yaml:"task"`

	// Status is waiting, active or done
	Status TaskStatus `json:"status" yaml:"status"`

	// Progress is the completion fraction in [0,1]
	Progress float64 `json:"progress" yaml:"progress"`

	// ProgressPct is the display percentage, rounded to a whole number
	ProgressPct int `json:"progress_pct" yaml:"progress_pct"`

	// Earned is cost x progress
	Earned decimal.Decimal `json:"earned" yaml:"earned"`
}

// Snapshot is the full portfolio state at one simulated day.
type Snapshot struct {
	// Day is the simulated day offset
	Day int `json:"day" yaml:"day"`

	// Date is startDate + Day (whole-day arithmetic)
	Date time.Time `json:"date" yaml:"date"`

	// Tasks is the per-task derived state, in catalog order
	Tasks []TaskProgress `json:"tasks" yaml:"tasks"`

	// CumulativeEarned is the summed earned value over all tasks
	CumulativeEarned decimal.Decimal `json:"cumulative_earned" yaml:"cumulative_earned"`

	// PercentComplete is earned/contract x 100, clamped to 100 and
	// rounded to 2 decimals
	PercentComplete decimal.Decimal `json:"percent_complete" yaml:"percent_complete"`
}

// Simulator computes planned/earned value at an arbitrary simulated
// date over a fixed task network. It holds no mutable state; every
// snapshot is a pure function of (day, tasks, config).
type Simulator struct {
	cfg   types.ProjectConfig
	tasks []types.NetworkTask
}

// New returns a simulator over the given project and task list.
func New(cfg types.ProjectConfig, tasks []types.NetworkTask) *Simulator {
	return &Simulator{cfg: cfg, tasks: tasks}
}

// NewDefault returns a simulator over the built-in fixture.
func NewDefault() *Simulator {
	return New(DefaultConfig(), DefaultTasks())
}

// Config returns the project configuration.
func (s *Simulator) Config() types.ProjectConfig {
	return s.cfg
}

// Tasks returns the task list.
func (s *Simulator) Tasks() []types.NetworkTask {
	return s.tasks
}

// Snapshot recomputes the whole portfolio at the given day. The done
// check runs before the active check, so day == start+duration is done
// and day == start is active, never waiting.
func (s *Simulator) Snapshot(day int) Snapshot {
	tasks := make([]TaskProgress, 0, len(s.tasks))
	cumulative := decimal.Zero

	for _, task := range s.tasks {
		progress := 0.0
		status := StatusWaiting

		switch {
		case day >= task.End():
			progress = 1.0
			status = StatusDone
		case day >= task.Start:
			progress = float64(day-task.Start) / float64(task.Duration)
			status = StatusActive
		}

		earned := task.Cost.Mul(decimal.NewFromFloat(progress))
		cumulative = cumulative.Add(earned)

		tasks = append(tasks, TaskProgress{
			Task:        task,
			Status:      status,
			Progress:    progress,
			ProgressPct: int(math.Round(progress * 100)),
			Earned:      earned,
		})
	}

	return Snapshot{
		Day:              day,
		Date:             s.cfg.StartDate.AddDate(0, 0, day),
		Tasks:            tasks,
		CumulativeEarned: cumulative,
		PercentComplete:  percentComplete(cumulative, s.cfg.TotalContractAmount),
	}
}

// percentComplete clamps at 100: the task-cost sum may exceed the
// contract amount, and the portfolio must never report above 100.
func percentComplete(earned, contract decimal.Decimal) decimal.Decimal {
	if !contract.IsPositive() {
		return decimal.Zero
	}
	pct := earned.Div(contract).Mul(decimal.NewFromInt(100))
	hundred := decimal.NewFromInt(100)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct.Round(2)
}
