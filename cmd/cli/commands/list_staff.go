package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// ListStaffCmd creates the listStaff command
func ListStaffCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listStaff",
		Short: "List all staff members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			staff, err := app.Store.GetStaffMembers(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list staff: %w", err)
			}

			fmt.Printf("\nFound %d staff member(s):\n\n", len(staff))
			for _, s := range staff {
				status := "active"
				if !s.Active {
					status = "inactive"
				}
				skills := ""
				if len(s.Qualifications) > 0 {
					skills = fmt.Sprintf(" [%s]", strings.Join(s.Qualifications, ", "))
				}
				fmt.Printf("- %s (%s) - %s - %s - %.1fh contracted%s\n",
					s.Name,
					s.ID,
					s.JobTitle,
					status,
					s.ContractedHours,
					skills,
				)
			}
			fmt.Println()

			return nil
		},
	}
}
