package schedule

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"construct-cost/core/types"
)

func singleTaskSim(t *testing.T) *Simulator {
	t.Helper()
	cfg := types.ProjectConfig{
		ProjectName:         "시험 현장",
		StartDate:           time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		TotalDays:           100,
		TotalContractAmount: decimal.NewFromInt(2000),
	}
	tasks := []types.NetworkTask{
		{ID: "A", Name: "가설공사", Start: 0, Duration: 40, Cost: decimal.NewFromInt(1000)},
	}
	return New(cfg, tasks)
}

func TestTaskStateMachine(t *testing.T) {
	sim := singleTaskSim(t)

	tests := []struct {
		name         string
		day          int
		wantStatus   TaskStatus
		wantProgress float64
		wantEarned   int64
	}{
		{name: "start boundary is active", day: 0, wantStatus: StatusActive, wantProgress: 0, wantEarned: 0},
		{name: "halfway", day: 20, wantStatus: StatusActive, wantProgress: 0.5, wantEarned: 500},
		{name: "end boundary is done", day: 40, wantStatus: StatusDone, wantProgress: 1.0, wantEarned: 1000},
		{name: "past end stays done", day: 99, wantStatus: StatusDone, wantProgress: 1.0, wantEarned: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := sim.Snapshot(tt.day)
			got := snap.Tasks[0]

			if got.Status != tt.wantStatus {
				t.Errorf("day %d: expected status %s, got %s", tt.day, tt.wantStatus, got.Status)
			}
			if got.Progress != tt.wantProgress {
				t.Errorf("day %d: expected progress %v, got %v", tt.day, tt.wantProgress, got.Progress)
			}
			if !got.Earned.Equal(decimal.NewFromInt(tt.wantEarned)) {
				t.Errorf("day %d: expected earned %d, got %s", tt.day, tt.wantEarned, got.Earned)
			}
		})
	}
}

func TestWaitingBeforeStart(t *testing.T) {
	cfg := types.ProjectConfig{
		StartDate:           time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		TotalDays:           100,
		TotalContractAmount: decimal.NewFromInt(1000),
	}
	tasks := []types.NetworkTask{
		{ID: "B", Name: "기초공사", Start: 30, Duration: 40, Cost: decimal.NewFromInt(500)},
	}

	snap := New(cfg, tasks).Snapshot(10)
	got := snap.Tasks[0]
	if got.Status != StatusWaiting {
		t.Errorf("expected waiting before start, got %s", got.Status)
	}
	if got.Progress != 0 || !got.Earned.IsZero() {
		t.Errorf("expected zero progress and earned, got %v / %s", got.Progress, got.Earned)
	}
}

// TestPercentCompleteClamped constructs tasks whose summed cost exceeds
// the contract amount; past every end date the portfolio must report
// exactly 100, never more.
func TestPercentCompleteClamped(t *testing.T) {
	cfg := types.ProjectConfig{
		StartDate:           time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		TotalDays:           100,
		TotalContractAmount: decimal.NewFromInt(1000),
	}
	tasks := []types.NetworkTask{
		{ID: "A", Start: 0, Duration: 10, Cost: decimal.NewFromInt(800)},
		{ID: "B", Start: 0, Duration: 20, Cost: decimal.NewFromInt(700)},
	}

	snap := New(cfg, tasks).Snapshot(50)

	if !snap.CumulativeEarned.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("expected cumulative 1500, got %s", snap.CumulativeEarned)
	}
	if !snap.PercentComplete.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected percent complete exactly 100, got %s", snap.PercentComplete)
	}
}

func TestPercentCompleteRounded(t *testing.T) {
	sim := singleTaskSim(t)

	// 500 / 2000 = 25%
	snap := sim.Snapshot(20)
	if !snap.PercentComplete.Equal(decimal.NewFromInt(25)) {
		t.Errorf("expected 25, got %s", snap.PercentComplete)
	}
}

func TestSnapshotDateArithmetic(t *testing.T) {
	sim := singleTaskSim(t)

	snap := sim.Snapshot(31)
	want := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	if !snap.Date.Equal(want) {
		t.Errorf("expected %s, got %s", want.Format(types.DateLayout), snap.Date.Format(types.DateLayout))
	}
}

func TestSnapshotIsPureRecomputation(t *testing.T) {
	sim := NewDefault()

	first := sim.Snapshot(150)
	// An intermediate snapshot at another day must not leak state.
	_ = sim.Snapshot(299)
	second := sim.Snapshot(150)

	if !first.CumulativeEarned.Equal(second.CumulativeEarned) {
		t.Errorf("expected identical cumulative earned, got %s vs %s",
			first.CumulativeEarned, second.CumulativeEarned)
	}
	if !first.PercentComplete.Equal(second.PercentComplete) {
		t.Errorf("expected identical percent complete, got %s vs %s",
			first.PercentComplete, second.PercentComplete)
	}
	for i := range first.Tasks {
		if first.Tasks[i].Status != second.Tasks[i].Status {
			t.Errorf("task %s: status drifted between recomputations", first.Tasks[i].Task.ID)
		}
	}
}

func TestDefaultFixture(t *testing.T) {
	cfg := DefaultConfig()
	tasks := DefaultTasks()

	if cfg.TotalDays != 300 {
		t.Errorf("expected 300 day duration, got %d", cfg.TotalDays)
	}
	if !cfg.TotalContractAmount.Equal(decimal.NewFromInt(6630033084)) {
		t.Errorf("unexpected contract amount %s", cfg.TotalContractAmount)
	}
	if len(tasks) != 8 {
		t.Fatalf("expected 8 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != "A" || tasks[7].ID != "H" {
		t.Errorf("unexpected task ordering: %s..%s", tasks[0].ID, tasks[7].ID)
	}
}
