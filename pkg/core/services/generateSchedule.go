package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rgoodall/brigade/internal/config"
	"github.com/rgoodall/brigade/pkg/core/scheduling"
	"github.com/rgoodall/brigade/pkg/db"
)

// GenerateScheduleResult contains the outcome of a schedule generation
type GenerateScheduleResult struct {
	RunID       string
	PeriodStart time.Time
	PeriodEnd   time.Time
	Outcome     *scheduling.GenerateOutcome
	Saved       bool
}

// GenerateScheduleStore defines the database operations needed to generate
// a schedule
type GenerateScheduleStore interface {
	GetStaff(ctx context.Context) ([]db.Staff, error)
	GetConstraints(ctx context.Context) ([]db.Constraint, error)
	InsertScheduleRun(ctx context.Context, run *db.ScheduleRun, shifts []db.Shift) error
}

// GenerateSchedule runs the allocation engine for a pay period and persists
// the result.
// If dryRun is true, nothing is saved.
// If forceCommit is true, the run is saved even when demand was not fully
// covered.
func GenerateSchedule(
	ctx context.Context,
	database GenerateScheduleStore,
	cfg *config.Config,
	logger *zap.Logger,
	startDate string,
	days int,
	dryRun bool,
	forceCommit bool,
) (*GenerateScheduleResult, error) {
	logger.Debug("Starting generateSchedule",
		zap.String("start_date", startDate),
		zap.Int("days", days),
		zap.Bool("dry_run", dryRun),
		zap.Bool("force_commit", forceCommit))

	if days <= 0 {
		return nil, fmt.Errorf("period length must be positive, got %d days", days)
	}

	periodStart, err := parseDate(startDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse period start: %w", err)
	}
	periodEnd := periodStart.AddDate(0, 0, days-1)

	// Step 1: Fetch the roster snapshot
	logger.Debug("Fetching staff roster")
	staffRecords, err := database.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}
	logger.Debug("Found staff", zap.Int("count", len(staffRecords)))

	staff, err := db.StaffListToModel(staffRecords)
	if err != nil {
		return nil, fmt.Errorf("roster record rejected: %w", err)
	}

	// Step 2: Fetch the resolved constraint snapshot
	logger.Debug("Fetching constraints")
	constraintRecords, err := database.GetConstraints(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch constraints: %w", err)
	}
	logger.Debug("Found constraints", zap.Int("count", len(constraintRecords)))

	constraints := db.ConstraintListToModel(constraintRecords)

	// A fixed seed per period keeps reruns reproducible unless the config
	// pins one explicitly
	seed := cfg.Seed
	if seed == 0 {
		seed = periodStart.Unix()
	}

	// Step 3: Run the allocation engine
	logger.Info("Running allocation",
		zap.Time("period_start", periodStart),
		zap.Time("period_end", periodEnd),
		zap.Int("staff", len(staff)),
		zap.Int64("seed", seed))

	outcome, err := scheduling.Generate(scheduling.GenerateInput{
		Staff:       staff,
		Constraints: constraints,
		Demand:      cfg.DemandCurve(),
		RoleRatios:  cfg.RoleRatios,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Seed:        seed,
		Tables:      cfg.Tables(),
	})
	if err != nil {
		return nil, fmt.Errorf("allocation failed: %w", err)
	}

	logger.Info("Allocation complete",
		zap.Int("shifts", len(outcome.Shifts)),
		zap.Float64("coverage_percent", outcome.Metrics.CoveragePercent),
		zap.Int("violations", outcome.Metrics.ConstraintViolations),
		zap.String("estimated_cost", outcome.Metrics.EstimatedCost.StringFixed(2)))

	result := &GenerateScheduleResult{
		RunID:       uuid.New().String(),
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Outcome:     outcome,
	}

	if dryRun {
		logger.Info("Dry run - schedule not saved")
		return result, nil
	}

	if outcome.Metrics.HasCoverageGaps && !forceCommit {
		logger.Warn("Schedule has coverage gaps - not saved (use force-commit to override)",
			zap.Int("violations", outcome.Metrics.ConstraintViolations))
		return result, nil
	}

	// Step 4: Persist the run and its shifts in one transaction
	run := &db.ScheduleRun{
		ID:                   result.RunID,
		PeriodStart:          periodStart.Format(dateFormat),
		PeriodEnd:            periodEnd.Format(dateFormat),
		Seed:                 seed,
		CoveragePercent:      outcome.Metrics.CoveragePercent,
		EstimatedCost:        outcome.Metrics.EstimatedCost.StringFixed(2),
		AvgCostPerShift:      outcome.Metrics.AvgCostPerShift.StringFixed(2),
		TotalHours:           outcome.Metrics.TotalHours,
		ConstraintViolations: outcome.Metrics.ConstraintViolations,
		HasCoverageGaps:      outcome.Metrics.HasCoverageGaps,
	}

	shiftRecords := make([]db.Shift, 0, len(outcome.Shifts))
	for i := range outcome.Shifts {
		shiftRecords = append(shiftRecords, db.ShiftFromModel(&outcome.Shifts[i], run.ID))
	}

	logger.Debug("Saving schedule run", zap.String("run_id", run.ID), zap.Int("shifts", len(shiftRecords)))
	if err := database.InsertScheduleRun(ctx, run, shiftRecords); err != nil {
		return nil, fmt.Errorf("failed to save schedule run: %w", err)
	}

	result.Saved = true
	logger.Info("Schedule saved", zap.String("run_id", run.ID))

	return result, nil
}
