package matching

import (
	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/model"
)

// MatchContext is the consistent snapshot a scoring invocation runs over: one
// visit with its service user, the candidate staff, and the records needed to
// judge conflicts, continuity and travel. The caller supplies a single
// fetched snapshot; the scorer never reads live data.
type MatchContext struct {
	// Visit being filled
	Visit model.Visit

	// ServiceUser receiving the visit
	ServiceUser model.ServiceUser

	// Staff is the list of candidate staff members
	Staff []model.StaffMember

	// Relationships for this service user, keyed by staff ID
	Relationships map[string]model.Relationship

	// AssignedVisits holds each staff member's other visits on the visit's
	// date, keyed by staff ID. Used for conflict detection and as the travel
	// anchor.
	AssignedVisits map[string][]model.Visit

	// Locations maps service user IDs to their coordinates (nil when
	// unknown), covering the service users of all visits in AssignedVisits
	Locations map[string]*model.Coordinate
}

// MatchOptions controls ranking behaviour in FindMatchingStaff
type MatchOptions struct {
	// IncludeUnavailable keeps candidates with conflicts or exclusions in the
	// result list instead of filtering them out
	IncludeUnavailable bool

	// Limit truncates the ranked results; 0 means no limit
	Limit int
}

// ScoreBreakdown is the per-criterion decomposition of a suitability score.
// The five fields always sum exactly to the total score.
type ScoreBreakdown struct {
	Availability int
	Continuity   int
	Skills       int
	Preference   int
	Travel       int
}

// Total returns the sum of all breakdown fields
func (b ScoreBreakdown) Total() int {
	return b.Availability + b.Continuity + b.Skills + b.Preference + b.Travel
}

// MatchResult is the scored suitability of one staff member for one visit
type MatchResult struct {
	StaffID       string
	StaffName     string
	VisitID       string
	ServiceUserID string

	// Score is the composite 0-100 suitability
	Score     int
	Breakdown ScoreBreakdown

	// IsAvailable is false when the candidate has a hard scheduling conflict
	// or is excluded from this service user
	IsAvailable bool

	// HasRequiredSkills is false when any required activity is unmet
	HasRequiredSkills bool

	// IsExcluded marks a hard veto from the relationship record
	IsExcluded bool

	// Warnings are human-readable notes for degraded or vetoed conditions,
	// in criterion evaluation order
	Warnings []string
}

// CriterionResult is what a single criterion contributes to a match
type CriterionResult struct {
	// Points awarded, already clamped to the criterion's maximum
	Points int

	Warnings []string

	// HardConflict marks a scheduling overlap that makes the candidate
	// unavailable for this visit
	HardConflict bool

	// MissingRequiredSkill marks an unmet required activity
	MissingRequiredSkill bool

	// Excluded marks a relationship-level veto
	Excluded bool
}

// Criterion is one weighted component of the suitability score. Each
// criterion holds its configured maximum and awards integer points in
// [0, MaxPoints].
type Criterion interface {
	Name() string
	MaxPoints() int
	Evaluate(state *MatchContext, staff model.StaffMember) CriterionResult
}
