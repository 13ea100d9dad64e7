package postgres

import (
	"context"
	"fmt"

	"github.com/rgoodall/brigade/pkg/db"
)

// GetScheduleRuns retrieves all schedule run records, newest first
func (d *DB) GetScheduleRuns(ctx context.Context) ([]db.ScheduleRun, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, period_start::text, period_end::text, seed,
		       coverage_percent, estimated_cost::text, avg_cost_per_shift::text,
		       total_hours, constraint_violations, has_coverage_gaps, created_at::text
		FROM schedule_run
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule runs: %w", err)
	}
	defer rows.Close()

	var runs []db.ScheduleRun
	for rows.Next() {
		var r db.ScheduleRun
		if err := rows.Scan(&r.ID, &r.PeriodStart, &r.PeriodEnd, &r.Seed,
			&r.CoveragePercent, &r.EstimatedCost, &r.AvgCostPerShift,
			&r.TotalHours, &r.ConstraintViolations, &r.HasCoverageGaps, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan schedule run: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule runs: %w", err)
	}

	return runs, nil
}

// GetShifts retrieves the shifts for one run in start-time order
func (d *DB) GetShifts(ctx context.Context, runID string) ([]db.Shift, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, run_id, staff_id, shift_date::text,
		       start_time::text, end_time::text, role, template,
		       hourly_rate::text, efficiency
		FROM shift
		WHERE run_id = $1
		ORDER BY start_time, role, staff_id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []db.Shift
	for rows.Next() {
		var s db.Shift
		if err := rows.Scan(&s.ID, &s.RunID, &s.StaffID, &s.ShiftDate,
			&s.StartTime, &s.EndTime, &s.Role, &s.Template,
			&s.HourlyRate, &s.Efficiency); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shifts: %w", err)
	}

	return shifts, nil
}

// InsertScheduleRun inserts a run and its shifts in one transaction
func (d *DB) InsertScheduleRun(ctx context.Context, run *db.ScheduleRun, shifts []db.Shift) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO schedule_run (id, period_start, period_end, seed,
			coverage_percent, estimated_cost, avg_cost_per_shift,
			total_hours, constraint_violations, has_coverage_gaps)
		VALUES ($1, $2::date, $3::date, $4, $5, $6::numeric, $7::numeric, $8, $9, $10)
	`, run.ID, run.PeriodStart, run.PeriodEnd, run.Seed,
		run.CoveragePercent, run.EstimatedCost, run.AvgCostPerShift,
		run.TotalHours, run.ConstraintViolations, run.HasCoverageGaps)
	if err != nil {
		return fmt.Errorf("failed to insert schedule run: %w", err)
	}

	for _, s := range shifts {
		_, err := tx.Exec(ctx, `
			INSERT INTO shift (id, run_id, staff_id, shift_date, start_time, end_time,
				role, template, hourly_rate, efficiency)
			VALUES ($1, $2, $3, $4::date, $5::timestamptz, $6::timestamptz, $7, $8, $9::numeric, $10)
		`, s.ID, s.RunID, s.StaffID, s.ShiftDate, s.StartTime, s.EndTime,
			s.Role, s.Template, s.HourlyRate, s.Efficiency)
		if err != nil {
			return fmt.Errorf("failed to insert shift: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
