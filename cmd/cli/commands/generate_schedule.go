package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rgoodall/brigade/pkg/core/services"
)

// GenerateScheduleCmd creates the generateSchedule command
func GenerateScheduleCmd(app *AppContext) *cobra.Command {
	var (
		startDate   string
		days        int
		dryRun      bool
		forceCommit bool
	)

	cmd := &cobra.Command{
		Use:   "generateSchedule",
		Short: "Generate shift assignments for a pay period",
		Long:  "Run the allocation engine against the roster, constraints and demand curve, and save the resulting schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("generateSchedule command",
				zap.String("start", startDate),
				zap.Int("days", days),
				zap.Bool("dry_run", dryRun),
				zap.Bool("force_commit", forceCommit))

			result, err := services.GenerateSchedule(
				app.Ctx,
				app.Database,
				app.Cfg,
				app.Logger,
				startDate,
				days,
				dryRun,
				forceCommit,
			)
			if err != nil {
				return fmt.Errorf("schedule generation failed: %w", err)
			}

			metrics := result.Outcome.Metrics

			fmt.Printf("\nSchedule Generation Results\n\n")
			fmt.Printf("Run ID:      %s\n", result.RunID)
			fmt.Printf("Period:      %s to %s\n",
				result.PeriodStart.Format("2006-01-02"),
				result.PeriodEnd.Format("2006-01-02"))
			fmt.Printf("Shifts:      %d\n", len(result.Outcome.Shifts))
			fmt.Printf("Coverage:    %.1f%%\n", metrics.CoveragePercent)
			fmt.Printf("Total hours: %.1f\n", metrics.TotalHours)
			fmt.Printf("Est. cost:   %s\n", metrics.EstimatedCost.StringFixed(2))
			fmt.Printf("Avg/shift:   %s\n", metrics.AvgCostPerShift.StringFixed(2))

			if metrics.HasCoverageGaps {
				fmt.Printf("Gaps:        %d unfilled slots\n", metrics.ConstraintViolations)
			}

			switch {
			case dryRun:
				fmt.Printf("Mode:        DRY RUN (not saved)\n")
			case result.Saved:
				fmt.Printf("Status:      saved\n")
			default:
				fmt.Printf("Status:      NOT saved (coverage gaps; rerun with --force-commit to save anyway)\n")
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "Period start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&days, "days", 14, "Period length in days")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Run the allocation without saving")
	cmd.Flags().BoolVar(&forceCommit, "force-commit", false, "Save even if demand was not fully covered")
	cmd.MarkFlagRequired("start")

	return cmd
}
