package postgres

import (
	"context"
	"fmt"

	"github.com/rgoodall/brigade/pkg/db"
)

// GetConstraints retrieves all constraint records
func (d *DB) GetConstraints(ctx context.Context) ([]db.Constraint, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, staff_id, kind,
		       start_date::text, end_date::text, rule, rrule, expires_on::text
		FROM staff_constraint
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query constraints: %w", err)
	}
	defer rows.Close()

	var constraints []db.Constraint
	for rows.Next() {
		var c db.Constraint
		var startDate, endDate, rule, rruleText, expiresOn *string
		if err := rows.Scan(&c.ID, &c.StaffID, &c.Kind, &startDate, &endDate, &rule, &rruleText, &expiresOn); err != nil {
			return nil, fmt.Errorf("failed to scan constraint: %w", err)
		}
		if startDate != nil {
			c.StartDate = *startDate
		}
		if endDate != nil {
			c.EndDate = *endDate
		}
		if rule != nil {
			c.Rule = *rule
		}
		if rruleText != nil {
			c.RRule = *rruleText
		}
		if expiresOn != nil {
			c.ExpiresOn = *expiresOn
		}
		constraints = append(constraints, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating constraints: %w", err)
	}

	return constraints, nil
}

// InsertConstraint inserts a constraint record
func (d *DB) InsertConstraint(ctx context.Context, constraint *db.Constraint) error {
	nullable := func(s string) *string {
		if s == "" {
			return nil
		}
		return &s
	}

	_, err := d.pool.Exec(ctx, `
		INSERT INTO staff_constraint (id, staff_id, kind, start_date, end_date, rule, rrule, expires_on)
		VALUES ($1, $2, $3, $4::date, $5::date, $6, $7, $8::date)
	`, constraint.ID, constraint.StaffID, constraint.Kind,
		nullable(constraint.StartDate), nullable(constraint.EndDate),
		nullable(constraint.Rule), nullable(constraint.RRule), nullable(constraint.ExpiresOn))
	if err != nil {
		return fmt.Errorf("failed to insert constraint: %w", err)
	}

	return nil
}
