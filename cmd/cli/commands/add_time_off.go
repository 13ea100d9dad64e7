package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgoodall/brigade/pkg/core/services"
)

// AddTimeOffCmd creates the addTimeOff command
func AddTimeOffCmd(app *AppContext) *cobra.Command {
	var staffID string
	var startDate string
	var endDate string

	cmd := &cobra.Command{
		Use:   "addTimeOff",
		Short: "Record a block of time off for a staff member",
		RunE: func(cmd *cobra.Command, args []string) error {
			constraint, err := services.AddTimeOff(app.Ctx, app.Database, app.Logger, staffID, startDate, endDate)
			if err != nil {
				return fmt.Errorf("failed to add time off: %w", err)
			}

			fmt.Printf("\nTime off recorded: %s\n", constraint.ID)
			fmt.Printf("  Staff:  %s\n", constraint.StaffID)
			fmt.Printf("  Period: %s to %s (inclusive)\n\n", constraint.StartDate, constraint.EndDate)

			return nil
		},
	}

	cmd.Flags().StringVar(&staffID, "staff-id", "", "Staff member ID (required)")
	cmd.Flags().StringVar(&startDate, "start", "", "First day off, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&endDate, "end", "", "Last day off, YYYY-MM-DD (required)")
	cmd.MarkFlagRequired("staff-id")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")

	return cmd
}
