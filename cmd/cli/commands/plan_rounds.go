package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/model"
	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/services"
)

// PlanRoundsCmd creates the planRounds command
func PlanRoundsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "planRounds <date> <visit_type>",
		Short: "Group a day's visits into travel-feasible rounds",
		Long:  "Cluster all visits of one type on one date into rounds a single carer can cover, ordered by start time with travel between consecutive visits",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := args[0]
			visitType := model.VisitType(args[1])

			app.Logger.Debug("planRounds command",
				zap.String("date", date),
				zap.String("visit_type", string(visitType)))

			result, err := services.PlanDayRounds(app.Ctx, app.Store, app.Logger, app.Cfg, date, visitType)
			if err != nil {
				return fmt.Errorf("planning failed: %w", err)
			}

			if len(result.Rounds) == 0 {
				fmt.Printf("\nNo %s visits on %s.\n\n", visitType, date)
				return nil
			}

			fmt.Printf("\n%d round(s) for %s visits on %s\n\n", len(result.Rounds), visitType, date)

			for _, round := range result.Rounds {
				status := "✓ fully assigned"
				if !round.IsFullyAssigned {
					status = "! needs attention"
				}
				fmt.Printf("%s  [%s]\n", round.Name, status)
				fmt.Printf("  %d visit(s), %d service user(s), %d min care, %d min travel\n",
					len(round.Visits),
					round.ServiceUserCount,
					round.TotalVisitMinutes,
					round.TotalTravelMinutes,
				)
				for _, visit := range round.Visits {
					assigned := "unassigned"
					if visit.AssignedStaffID != "" {
						assigned = visit.AssignedStaffID
					}
					fmt.Printf("    %s-%s  %s  (%s)\n", visit.Start, visit.End, visit.ServiceUserID, assigned)
				}
				fmt.Println()
			}

			if result.Bounds != nil {
				fmt.Printf("Map bounds: N %.4f  S %.4f  E %.4f  W %.4f\n\n",
					result.Bounds.North,
					result.Bounds.South,
					result.Bounds.East,
					result.Bounds.West,
				)
			}

			return nil
		},
	}
}
