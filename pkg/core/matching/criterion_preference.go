package matching

import (
	"fmt"
	"math"

	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/model"
)

// PreferenceCriterion scores the relationship standing between the service
// user and the candidate.
//
// Points:
//   - Preferred carer → full maximum
//   - Excluded → 0, and the exclusion is a hard veto: the candidate is forced
//     out of the available pool regardless of their numeric score
//   - No standing either way → a neutral third of the maximum
//
// Warnings:
//   - Exclusions always warn, with the recorded reason when present
type PreferenceCriterion struct {
	maxPoints int
}

// NewPreferenceCriterion creates a PreferenceCriterion with the given maximum
// points
func NewPreferenceCriterion(maxPoints int) *PreferenceCriterion {
	return &PreferenceCriterion{maxPoints: maxPoints}
}

func (c *PreferenceCriterion) Name() string {
	return "Preference"
}

func (c *PreferenceCriterion) MaxPoints() int {
	return c.maxPoints
}

func (c *PreferenceCriterion) Evaluate(state *MatchContext, staff model.StaffMember) CriterionResult {
	rel, ok := state.Relationships[staff.ID]

	// Exclusion overrides preference, always
	if ok && rel.IsExcluded {
		warning := "Excluded from this service user"
		if rel.ExclusionReason != "" {
			warning = fmt.Sprintf("Excluded from this service user: %s", rel.ExclusionReason)
		}
		return CriterionResult{
			Points:   0,
			Excluded: true,
			Warnings: []string{warning},
		}
	}

	if ok && rel.IsPreferredCarer {
		return CriterionResult{Points: c.maxPoints}
	}

	points := int(math.Round(float64(c.maxPoints) / 3))
	return CriterionResult{Points: clampPoints(points, c.maxPoints)}
}
