package matching

import (
	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/model"
)

// Weights are the per-criterion score maxima. They are used consistently
// across every call site so displayed badges always match computed totals.
// The defaults sum to 100; a deployment that tunes them is responsible for
// keeping the sum at 100 if it wants a percentage-like total.
type Weights struct {
	Availability int
	Continuity   int
	Skills       int
	Preference   int
	Travel       int
}

// DefaultWeights returns the standard maxima:
// availability 30, continuity 25, skills 20, preference 15, travel 10.
func DefaultWeights() Weights {
	return Weights{
		Availability: 30,
		Continuity:   25,
		Skills:       20,
		Preference:   15,
		Travel:       10,
	}
}

// Scorer produces suitability scores for (staff, visit) pairings. Construct
// with NewScorer; the criterion maxima and travel tuning come from
// configuration, not from literals buried in the criteria.
type Scorer struct {
	availability *AvailabilityCriterion
	continuity   *ContinuityCriterion
	skills       *SkillsCriterion
	preference   *PreferenceCriterion
	travel       *TravelCriterion
}

// NewScorer creates a Scorer from the given weights and travel tuning.
// Non-positive weights fall back to the defaults.
func NewScorer(weights Weights, travel TravelParams) *Scorer {
	defaults := DefaultWeights()
	if weights.Availability <= 0 {
		weights.Availability = defaults.Availability
	}
	if weights.Continuity <= 0 {
		weights.Continuity = defaults.Continuity
	}
	if weights.Skills <= 0 {
		weights.Skills = defaults.Skills
	}
	if weights.Preference <= 0 {
		weights.Preference = defaults.Preference
	}
	if weights.Travel <= 0 {
		weights.Travel = defaults.Travel
	}

	return &Scorer{
		availability: NewAvailabilityCriterion(weights.Availability),
		continuity:   NewContinuityCriterion(weights.Continuity),
		skills:       NewSkillsCriterion(weights.Skills),
		preference:   NewPreferenceCriterion(weights.Preference),
		travel:       NewTravelCriterion(weights.Travel, travel),
	}
}

// ScoreMatch scores one candidate staff member against the context's visit.
// The returned breakdown fields always sum exactly to Score, and Score is
// clamped to [0, 100]. Candidates are never filtered here: a conflicted or
// excluded candidate comes back scored with IsAvailable=false and warnings
// attached.
func (s *Scorer) ScoreMatch(state *MatchContext, staff model.StaffMember) MatchResult {
	result := MatchResult{
		StaffID:           staff.ID,
		StaffName:         staff.Name,
		VisitID:           state.Visit.ID,
		ServiceUserID:     state.ServiceUser.ID,
		IsAvailable:       true,
		HasRequiredSkills: true,
	}

	availability := s.availability.Evaluate(state, staff)
	continuity := s.continuity.Evaluate(state, staff)
	skills := s.skills.Evaluate(state, staff)
	preference := s.preference.Evaluate(state, staff)
	travel := s.travel.Evaluate(state, staff)

	result.Breakdown = ScoreBreakdown{
		Availability: availability.Points,
		Continuity:   continuity.Points,
		Skills:       skills.Points,
		Preference:   preference.Points,
		Travel:       travel.Points,
	}

	for _, r := range []CriterionResult{availability, continuity, skills, preference, travel} {
		result.Warnings = append(result.Warnings, r.Warnings...)
		if r.HardConflict {
			result.IsAvailable = false
		}
		if r.MissingRequiredSkill {
			result.HasRequiredSkills = false
		}
		if r.Excluded {
			result.IsExcluded = true
			// Exclusion is a veto, not a score penalty: the candidate is
			// forced out of the available pool
			result.IsAvailable = false
		}
	}

	score := result.Breakdown.Total()
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	result.Score = score

	return result
}
