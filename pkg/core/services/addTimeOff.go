package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rgoodall/brigade/pkg/db"
)

// AddTimeOffStore defines the database operations needed to record time off
type AddTimeOffStore interface {
	GetStaff(ctx context.Context) ([]db.Staff, error)
	InsertConstraint(ctx context.Context, constraint *db.Constraint) error
}

// AddTimeOff records a PTO constraint for a staff member. The range is
// inclusive on both ends; the staff member is fully blocked for every day
// in it.
func AddTimeOff(ctx context.Context, database AddTimeOffStore, logger *zap.Logger, staffID, startDate, endDate string) (*db.Constraint, error) {
	logger.Debug("Adding time off",
		zap.String("staff_id", staffID),
		zap.String("start", startDate),
		zap.String("end", endDate))

	start, err := parseDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(endDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("time off ends (%s) before it starts (%s)", endDate, startDate)
	}

	// Verify the staff member exists before recording anything
	staff, err := database.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}
	found := false
	for _, s := range staff {
		if s.ID == staffID {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("staff member %s not found", staffID)
	}

	constraint := &db.Constraint{
		ID:        uuid.New().String(),
		StaffID:   staffID,
		Kind:      "pto",
		StartDate: start.Format(dateFormat),
		EndDate:   end.Format(dateFormat),
	}

	if err := database.InsertConstraint(ctx, constraint); err != nil {
		return nil, fmt.Errorf("failed to insert constraint: %w", err)
	}

	logger.Info("Time off recorded",
		zap.String("constraint_id", constraint.ID),
		zap.String("staff_id", staffID))

	return constraint, nil
}
