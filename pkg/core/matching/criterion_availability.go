package matching

import (
	"fmt"
	"math"

	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/model"
)

// AvailabilityCriterion scores whether the candidate is free for the visit's
// window and how much contracted capacity they have left.
//
// Points:
//   - A hard overlap with any of the candidate's existing visits scores 0 and
//     flags the candidate unavailable (the candidate is still returned, not
//     filtered, unless the caller excludes unavailable results).
//   - Otherwise half the maximum is awarded for being free, and the rest
//     scales linearly with remaining contracted hours. Staff with no
//     contracted hours (bank staff) count as full remaining capacity.
//
// Warnings:
//   - A scheduling conflict warning naming the overlapping visit's window
type AvailabilityCriterion struct {
	maxPoints int
}

// NewAvailabilityCriterion creates an AvailabilityCriterion with the given
// maximum points
func NewAvailabilityCriterion(maxPoints int) *AvailabilityCriterion {
	return &AvailabilityCriterion{maxPoints: maxPoints}
}

func (c *AvailabilityCriterion) Name() string {
	return "Availability"
}

func (c *AvailabilityCriterion) MaxPoints() int {
	return c.maxPoints
}

func (c *AvailabilityCriterion) Evaluate(state *MatchContext, staff model.StaffMember) CriterionResult {
	if conflict, ok := findConflict(state, staff); ok {
		return CriterionResult{
			Points:       0,
			HardConflict: true,
			Warnings: []string{
				fmt.Sprintf("Scheduling conflict with existing visit %s-%s", conflict.Start, conflict.End),
			},
		}
	}

	ratio := remainingHoursRatio(staff)
	points := int(math.Round(float64(c.maxPoints) * (0.5 + 0.5*ratio)))
	return CriterionResult{Points: clampPoints(points, c.maxPoints)}
}

// findConflict returns the first of the candidate's existing visits whose
// window overlaps the visit being scored. Cancelled visits and the visit
// itself never conflict. Visits with unparsable times cannot be judged and
// are skipped.
func findConflict(state *MatchContext, staff model.StaffMember) (model.Visit, bool) {
	start, okS := state.Visit.StartAt()
	end, okE := state.Visit.EndAt()
	if !okS || !okE {
		return model.Visit{}, false
	}

	for _, other := range state.AssignedVisits[staff.ID] {
		if other.ID == state.Visit.ID || other.Status == model.VisitCancelled {
			continue
		}
		otherStart, okS := other.StartAt()
		otherEnd, okE := other.EndAt()
		if !okS || !okE {
			continue
		}
		if start.Before(otherEnd) && otherStart.Before(end) {
			return other, true
		}
	}
	return model.Visit{}, false
}

// remainingHoursRatio is the fraction of the candidate's contracted weekly
// hours still unscheduled, in [0, 1]
func remainingHoursRatio(staff model.StaffMember) float64 {
	if staff.ContractedHours <= 0 {
		return 1
	}
	remaining := staff.ContractedHours - staff.ScheduledHours
	if remaining <= 0 {
		return 0
	}
	if remaining >= staff.ContractedHours {
		return 1
	}
	return remaining / staff.ContractedHours
}

func clampPoints(points, max int) int {
	if points < 0 {
		return 0
	}
	if points > max {
		return max
	}
	return points
}
