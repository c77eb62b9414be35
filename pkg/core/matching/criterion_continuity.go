package matching

import (
	"math"

	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/model"
)

// continuityBaseline is the fraction of the maximum awarded when the pair has
// no relationship record. New staff get a low baseline rather than zero so
// they are not shut out of a first visit.
const continuityBaseline = 0.2

// ContinuityCriterion scores how often the candidate has previously visited
// this service user, from the relationship record's visit-history-derived
// continuity score.
//
// Points:
//   - No relationship record → the baseline fraction of the maximum
//   - Otherwise the baseline plus the remainder scaled by the relationship's
//     ContinuityScore (0-100)
type ContinuityCriterion struct {
	maxPoints int
}

// NewContinuityCriterion creates a ContinuityCriterion with the given maximum
// points
func NewContinuityCriterion(maxPoints int) *ContinuityCriterion {
	return &ContinuityCriterion{maxPoints: maxPoints}
}

func (c *ContinuityCriterion) Name() string {
	return "Continuity"
}

func (c *ContinuityCriterion) MaxPoints() int {
	return c.maxPoints
}

func (c *ContinuityCriterion) Evaluate(state *MatchContext, staff model.StaffMember) CriterionResult {
	rel, ok := state.Relationships[staff.ID]
	if !ok {
		points := int(math.Round(float64(c.maxPoints) * continuityBaseline))
		return CriterionResult{Points: clampPoints(points, c.maxPoints)}
	}

	score := rel.ContinuityScore
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	fraction := continuityBaseline + (1-continuityBaseline)*float64(score)/100
	points := int(math.Round(float64(c.maxPoints) * fraction))
	return CriterionResult{Points: clampPoints(points, c.maxPoints)}
}
