package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/matching"
	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/services"
)

// MatchStaffCmd creates the matchStaff command
func MatchStaffCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matchStaff <visit_id>",
		Short: "Rank staff members by suitability for a visit",
		Long:  "Score every active staff member against one visit and print the ranked candidates with their score breakdowns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			visitID := args[0]
			limit, _ := cmd.Flags().GetInt("limit")
			includeUnavailable, _ := cmd.Flags().GetBool("include-unavailable")

			app.Logger.Debug("matchStaff command",
				zap.String("visit_id", visitID),
				zap.Int("limit", limit),
				zap.Bool("include_unavailable", includeUnavailable))

			result, err := services.MatchStaffForVisit(
				app.Ctx,
				app.Store,
				app.Logger,
				app.Cfg,
				visitID,
				matching.MatchOptions{
					Limit:              limit,
					IncludeUnavailable: includeUnavailable,
				},
			)
			if err != nil {
				return fmt.Errorf("matching failed: %w", err)
			}

			fmt.Printf("\nCandidates for %s visit to %s on %s %s-%s\n\n",
				result.Visit.Type,
				result.ServiceUser.Name,
				result.Visit.Date,
				result.Visit.Start,
				result.Visit.End,
			)

			for _, warning := range result.Warnings {
				fmt.Printf("⚠ %s\n", warning)
			}
			if len(result.Warnings) > 0 {
				fmt.Println()
			}

			if len(result.Matches) == 0 {
				fmt.Printf("No candidates found.\n\n")
				return nil
			}

			for i, match := range result.Matches {
				marker := "  "
				if match.IsExcluded {
					marker = "✗ "
				} else if !match.IsAvailable {
					marker = "! "
				}

				fmt.Printf("%s%2d. %-24s %3d/100  (avail %d, cont %d, skills %d, pref %d, travel %d)\n",
					marker,
					i+1,
					match.StaffName,
					match.Score,
					match.Breakdown.Availability,
					match.Breakdown.Continuity,
					match.Breakdown.Skills,
					match.Breakdown.Preference,
					match.Breakdown.Travel,
				)
				if len(match.Warnings) > 0 {
					fmt.Printf("      %s\n", strings.Join(match.Warnings, "; "))
				}
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Int("limit", 0, "Maximum number of candidates to show (0 = all)")
	cmd.Flags().Bool("include-unavailable", false, "Include candidates with schedule conflicts")

	return cmd
}
