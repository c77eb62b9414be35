package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// MigrateCmd creates the migrate command
func MigrateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Database.RunMigrations(app.Ctx); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("\n✓ Database schema is up to date.\n\n")
			return nil
		},
	}
}
