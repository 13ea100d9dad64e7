package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rgoodall/brigade/pkg/core/services"
)

// ViewScheduleCmd creates the viewSchedule command
func ViewScheduleCmd(app *AppContext) *cobra.Command {
	var runID string

	cmd := &cobra.Command{
		Use:   "viewSchedule",
		Short: "Display a generated schedule",
		Long:  "Show the shifts of a schedule run grouped by date, with the run's coverage and cost summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := services.ViewSchedule(app.Ctx, app.Database, app.Logger, runID)
			if err != nil {
				return fmt.Errorf("failed to view schedule: %w", err)
			}

			fmt.Printf("\nSchedule %s (%s to %s)\n", view.Run.ID, view.Run.PeriodStart, view.Run.PeriodEnd)
			fmt.Printf("Coverage %.1f%% | cost %s | %d violations\n\n",
				view.Run.CoveragePercent, view.Run.EstimatedCost, view.Run.ConstraintViolations)

			for _, day := range view.Days {
				fmt.Printf("%s\n", day.Date)
				for _, shift := range day.Shifts {
					start := formatClock(shift.StartTime)
					end := formatClock(shift.EndTime)
					fmt.Printf("  %s-%s  %-10s %-12s %s\n", start, end, shift.Role, shift.Template, shift.StaffID)
				}
				fmt.Println()
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&runID, "run-id", "", "Schedule run to display (default: most recent)")

	return cmd
}

// formatClock renders an RFC 3339 timestamp as HH:MM, falling back to the
// raw value if it doesn't parse
func formatClock(value string) string {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return t.Format("15:04")
}
