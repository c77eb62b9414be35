package matching

import (
	"fmt"
	"math"
	"strings"

	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/model"
)

// SkillsCriterion scores the overlap between the visit's required activity
// categories and the candidate's recorded qualifications.
//
// Points:
//   - No required activities → full maximum
//   - Otherwise proportional to the fraction of required activities the
//     candidate is qualified for
//
// Warnings:
//   - Any unmet required activity flags the candidate as missing required
//     skills and names the gaps
type SkillsCriterion struct {
	maxPoints int
}

// NewSkillsCriterion creates a SkillsCriterion with the given maximum points
func NewSkillsCriterion(maxPoints int) *SkillsCriterion {
	return &SkillsCriterion{maxPoints: maxPoints}
}

func (c *SkillsCriterion) Name() string {
	return "Skills"
}

func (c *SkillsCriterion) MaxPoints() int {
	return c.maxPoints
}

func (c *SkillsCriterion) Evaluate(state *MatchContext, staff model.StaffMember) CriterionResult {
	required := state.Visit.RequiredActivities
	if len(required) == 0 {
		return CriterionResult{Points: c.maxPoints}
	}

	var missing []string
	matched := 0
	for _, activity := range required {
		if staff.HasQualification(activity) {
			matched++
		} else {
			missing = append(missing, activity)
		}
	}

	points := int(math.Round(float64(c.maxPoints) * float64(matched) / float64(len(required))))
	result := CriterionResult{Points: clampPoints(points, c.maxPoints)}

	if len(missing) > 0 {
		result.MissingRequiredSkill = true
		result.Warnings = []string{
			fmt.Sprintf("Missing required skills: %s", strings.Join(missing, ", ")),
		}
	}

	return result
}
