package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgoodall/brigade/pkg/core/services"
)

// ListStaffCmd creates the listStaff command
func ListStaffCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listStaff",
		Short: "List the staff roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			staff, err := services.ListStaff(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return fmt.Errorf("failed to list staff: %w", err)
			}

			fmt.Printf("\nStaff Roster (%d)\n\n", len(staff))
			for _, s := range staff {
				rate := s.HourlyRate
				if rate == "" {
					rate = "MISSING"
				}
				fmt.Printf("  %-24s %-18s rate %-8s max %gh/wk  [%s]\n",
					s.Name, s.Position, rate, s.MaxHoursPerWeek, s.ID)
			}
			fmt.Println()

			return nil
		},
	}
}
