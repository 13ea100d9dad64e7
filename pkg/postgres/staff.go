package postgres

import (
	"context"
	"fmt"

	"github.com/rgoodall/brigade/pkg/db"
)

// GetStaff retrieves the full roster
func (d *DB) GetStaff(ctx context.Context) ([]db.Staff, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, position, hourly_rate::text, max_hours_per_week, efficiency
		FROM staff
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer rows.Close()

	var staff []db.Staff
	for rows.Next() {
		var s db.Staff
		var rate *string
		var efficiency *float64
		if err := rows.Scan(&s.ID, &s.Name, &s.Position, &rate, &s.MaxHoursPerWeek, &efficiency); err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		if rate != nil {
			s.HourlyRate = *rate
		}
		if efficiency != nil {
			s.Efficiency = *efficiency
		}
		staff = append(staff, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff: %w", err)
	}

	return staff, nil
}

// InsertStaff inserts a roster record
func (d *DB) InsertStaff(ctx context.Context, staff *db.Staff) error {
	var rate *string
	if staff.HourlyRate != "" {
		rate = &staff.HourlyRate
	}
	var efficiency *float64
	if staff.Efficiency > 0 {
		efficiency = &staff.Efficiency
	}

	_, err := d.pool.Exec(ctx, `
		INSERT INTO staff (id, name, position, hourly_rate, max_hours_per_week, efficiency)
		VALUES ($1, $2, $3, $4::numeric, $5, $6)
	`, staff.ID, staff.Name, staff.Position, rate, staff.MaxHoursPerWeek, efficiency)
	if err != nil {
		return fmt.Errorf("failed to insert staff: %w", err)
	}

	return nil
}
