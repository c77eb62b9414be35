package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/attendance"
	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/services"
)

// AttendanceBoardCmd creates the attendanceBoard command
func AttendanceBoardCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "attendanceBoard <date>",
		Short: "Show the live attendance state of a day's shifts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := args[0]
			now := time.Now()

			app.Logger.Debug("attendanceBoard command", zap.String("date", date))

			board, err := services.AttendanceBoard(app.Ctx, app.Store, app.Logger, app.Cfg, date, now)
			if err != nil {
				return fmt.Errorf("attendance derivation failed: %w", err)
			}

			if len(board) == 0 {
				fmt.Printf("\nNo shifts on %s.\n\n", date)
				return nil
			}

			fmt.Printf("\nAttendance for %s (as of %s)\n\n", date, now.Format("15:04"))

			for _, row := range board {
				detail := ""
				switch {
				case row.Status == attendance.StatusLate && row.Details.MinutesLate > 0:
					detail = fmt.Sprintf("  %d min late", row.Details.MinutesLate)
				case row.Status == attendance.StatusPresent && row.Details.MinutesEarly > 0:
					detail = fmt.Sprintf("  %d min early", row.Details.MinutesEarly)
				}
				fmt.Printf("  %-24s %-10s%s\n", row.StaffName, row.Status, detail)
			}
			fmt.Println()

			return nil
		},
	}
}
