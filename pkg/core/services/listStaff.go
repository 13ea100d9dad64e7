package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/rgoodall/brigade/pkg/db"
)

// ListStaff fetches the roster sorted by position then name
func ListStaff(ctx context.Context, database db.StaffStore, logger *zap.Logger) ([]db.Staff, error) {
	logger.Debug("Fetching staff roster")
	staff, err := database.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}
	logger.Debug("Found staff", zap.Int("count", len(staff)))

	sort.Slice(staff, func(i, j int) bool {
		if staff[i].Position != staff[j].Position {
			return staff[i].Position < staff[j].Position
		}
		return staff[i].Name < staff[j].Name
	})

	return staff, nil
}
