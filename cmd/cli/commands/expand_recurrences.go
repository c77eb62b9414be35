package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/services"
)

// ExpandRecurrencesCmd creates the expandRecurrences command
func ExpandRecurrencesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "expandRecurrences <from> <to>",
		Short: "Materialise configured recurrence rules into visit records",
		Long:  "Expand every recurrence rule in the configuration into concrete visits between the two dates (inclusive), skipping occurrences that already exist",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := time.Parse("2006-01-02", args[0])
			if err != nil {
				return fmt.Errorf("invalid from date %q: %w", args[0], err)
			}
			to, err := time.Parse("2006-01-02", args[1])
			if err != nil {
				return fmt.Errorf("invalid to date %q: %w", args[1], err)
			}
			if to.Before(from) {
				return fmt.Errorf("to date %s is before from date %s", args[1], args[0])
			}

			app.Logger.Debug("expandRecurrences command",
				zap.Time("from", from),
				zap.Time("to", to))

			inserted, err := services.ExpandRecurrences(app.Ctx, app.Store, app.Logger, app.Cfg, from, to)
			if err != nil {
				return fmt.Errorf("expansion failed: %w", err)
			}

			fmt.Printf("\n✓ Inserted %d visit(s) from %d rule(s).\n\n", inserted, len(app.Cfg.RecurrenceRules))
			return nil
		},
	}
}
