package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/rgoodall/brigade/pkg/db"
)

// ScheduleDay groups one day's shifts
type ScheduleDay struct {
	Date   string
	Shifts []db.Shift
}

// ScheduleView is a run's shifts grouped by date for display
type ScheduleView struct {
	Run  db.ScheduleRun
	Days []ScheduleDay
}

// ViewScheduleStore defines the database operations needed to view a schedule
type ViewScheduleStore interface {
	GetScheduleRuns(ctx context.Context) ([]db.ScheduleRun, error)
	GetShifts(ctx context.Context, runID string) ([]db.Shift, error)
}

// ViewSchedule fetches a schedule run and groups its shifts by date.
// An empty runID selects the most recent run.
func ViewSchedule(ctx context.Context, database ViewScheduleStore, logger *zap.Logger, runID string) (*ScheduleView, error) {
	logger.Debug("Fetching schedule runs")
	runs, err := database.GetScheduleRuns(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule runs: %w", err)
	}

	if len(runs) == 0 {
		return nil, fmt.Errorf("no schedule runs found - run generateSchedule first")
	}

	var run *db.ScheduleRun
	if runID == "" {
		run = findLatestRun(runs)
	} else {
		for i := range runs {
			if runs[i].ID == runID {
				run = &runs[i]
				break
			}
		}
		if run == nil {
			return nil, fmt.Errorf("schedule run %s not found", runID)
		}
	}

	logger.Debug("Fetching shifts", zap.String("run_id", run.ID))
	shifts, err := database.GetShifts(ctx, run.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shifts: %w", err)
	}

	byDate := make(map[string][]db.Shift)
	for _, shift := range shifts {
		byDate[shift.ShiftDate] = append(byDate[shift.ShiftDate], shift)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	view := &ScheduleView{Run: *run}
	for _, date := range dates {
		view.Days = append(view.Days, ScheduleDay{Date: date, Shifts: byDate[date]})
	}

	return view, nil
}
