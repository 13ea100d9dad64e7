package services

import (
	"fmt"
	"time"

	"github.com/rgoodall/brigade/pkg/db"
)

const dateFormat = "2006-01-02"

// parseDate parses a YYYY-MM-DD date string
func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(dateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", value, err)
	}
	return date, nil
}

// findLatestRun returns the most recently created schedule run
func findLatestRun(runs []db.ScheduleRun) *db.ScheduleRun {
	if len(runs) == 0 {
		return nil
	}
	latest := &runs[0]
	for i := 1; i < len(runs); i++ {
		if runs[i].CreatedAt > latest.CreatedAt {
			latest = &runs[i]
		}
	}
	return latest
}
