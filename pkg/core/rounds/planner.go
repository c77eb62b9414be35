package rounds

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/geo"
	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/model"
)

// Round is an ordered sequence of visits intended to be completed by one
// carer in one outing. Rounds are built transiently per day and visit type;
// they are not a persisted schedule unless promoted to a template by the
// caller.
type Round struct {
	ID   string
	Name string
	Type model.VisitType

	// Visits in execution order
	Visits []model.Visit

	// AssignedStaffID is set when the whole round is assigned as one unit
	AssignedStaffID string

	// Derived stats
	TotalVisitMinutes  int
	TotalTravelMinutes int
	ServiceUserCount   int

	// IsFullyAssigned is true only when every visit already has an assigned
	// staff member (or the round is assigned as one unit), and no visit in
	// the round breached its time-window feasibility
	IsFullyAssigned bool
}

// PlannerParams are the operator-tunable planning inputs
type PlannerParams struct {
	// SpeedMPH is the assumed average road speed for inter-visit travel
	SpeedMPH float64

	// Windows confines each visit type to its time-of-day slot; types absent
	// from the map are unconstrained
	Windows map[model.VisitType]model.TimeWindow
}

// Planner groups a day's same-type visits into travel-feasible rounds.
// Construct with NewPlanner.
type Planner struct {
	params PlannerParams
}

// NewPlanner creates a Planner. A non-positive speed falls back to the
// default; a nil window map falls back to the standard windows.
func NewPlanner(params PlannerParams) *Planner {
	if params.SpeedMPH <= 0 {
		params.SpeedMPH = geo.DefaultSpeedMPH
	}
	if params.Windows == nil {
		params.Windows = model.DefaultWindows()
	}
	return &Planner{params: params}
}

// BuildRoundsInput is the snapshot one planning invocation runs over
type BuildRoundsInput struct {
	// Visits is the day's visit pool; the planner filters to Date and Type
	Visits []model.Visit

	Type model.VisitType
	Date string // "2006-01-02"

	// Locations maps service user IDs to coordinates (nil when unknown)
	Locations map[string]*model.Coordinate
}

// plannedVisit pairs a visit with its parsed times and location for chaining
type plannedVisit struct {
	visit    model.Visit
	start    time.Time
	end      time.Time
	location *model.Coordinate
}

// BuildRounds partitions the visits of one type on one date into rounds a
// single carer can execute sequentially.
//
// Rounds are seeded from the earliest unplanned visit; the geographically
// nearest remaining visit whose start is reachable after travel (and inside
// the visit type's window) is attached repeatedly until nothing fits, then a
// new round starts. Visits without a known coordinate never block planning:
// they are appended to the least-loaded round, or gathered into a single
// unclustered round when no located round exists.
//
// Zero matching visits yields an empty slice, never an error.
func (p *Planner) BuildRounds(input BuildRoundsInput) []*Round {
	var located []plannedVisit
	var unlocated []model.Visit

	for _, visit := range input.Visits {
		if visit.Date != input.Date || visit.Type != input.Type {
			continue
		}
		if visit.Status == model.VisitCancelled {
			continue
		}

		start, okS := visit.StartAt()
		end, okE := visit.EndAt()
		loc := input.Locations[visit.ServiceUserID]

		// Malformed times are handled like missing coordinates: the visit
		// cannot be chained but must not be dropped
		if !okS || !okE || loc == nil {
			unlocated = append(unlocated, visit)
			continue
		}

		located = append(located, plannedVisit{visit: visit, start: start, end: end, location: loc})
	}

	sort.Slice(located, func(i, j int) bool {
		if !located[i].start.Equal(located[j].start) {
			return located[i].start.Before(located[j].start)
		}
		return located[i].visit.ID < located[j].visit.ID
	})

	rounds := p.chainRounds(located, input.Type)

	if len(unlocated) > 0 {
		if len(rounds) == 0 {
			rounds = append(rounds, &Round{
				ID:     uuid.New().String(),
				Type:   input.Type,
				Visits: unlocated,
			})
		} else {
			for _, visit := range unlocated {
				least := rounds[0]
				for _, r := range rounds[1:] {
					if visitMinutes(r.Visits) < visitMinutes(least.Visits) {
						least = r
					}
				}
				least.Visits = append(least.Visits, visit)
			}
		}
	}

	for _, round := range rounds {
		p.finishRound(round)
	}

	// Chronological by first visit, then name the rounds
	sort.Slice(rounds, func(i, j int) bool {
		return roundStartKey(rounds[i]) < roundStartKey(rounds[j])
	})
	for i, round := range rounds {
		round.Name = fmt.Sprintf("%s Round %d", input.Type, i+1)
	}

	return rounds
}

// chainRounds runs the nearest-neighbour construction over located visits
func (p *Planner) chainRounds(pool []plannedVisit, visitType model.VisitType) []*Round {
	window, hasWindow := p.params.Windows[visitType]

	remaining := make([]plannedVisit, len(pool))
	copy(remaining, pool)

	var rounds []*Round

	for len(remaining) > 0 {
		// Seed with the earliest remaining visit
		current := remaining[0]
		remaining = remaining[1:]

		round := &Round{
			ID:     uuid.New().String(),
			Type:   visitType,
			Visits: []model.Visit{current.visit},
		}

		for {
			bestIdx := -1
			bestMiles := 0.0
			bestTravel := 0

			for i, candidate := range remaining {
				miles := geo.Distance(*current.location, *candidate.location)
				travel := geo.TravelMinutes(miles, p.params.SpeedMPH)

				reachable := !candidate.start.Before(current.end.Add(time.Duration(travel) * time.Minute))
				if !reachable {
					continue
				}
				if hasWindow && !window.Contains(candidate.start) {
					continue
				}

				if bestIdx == -1 || miles < bestMiles {
					bestIdx = i
					bestMiles = miles
					bestTravel = travel
				}
			}

			if bestIdx == -1 {
				break
			}

			next := remaining[bestIdx]
			remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)

			round.Visits = append(round.Visits, next.visit)
			round.TotalTravelMinutes += bestTravel
			current = next
		}

		rounds = append(rounds, round)
	}

	return rounds
}

// finishRound computes the round's derived stats
func (p *Planner) finishRound(round *Round) {
	round.TotalVisitMinutes = visitMinutes(round.Visits)

	users := make(map[string]bool)
	for _, visit := range round.Visits {
		users[visit.ServiceUserID] = true
	}
	round.ServiceUserCount = len(users)

	round.IsFullyAssigned = roundAssigned(round) && p.windowFeasible(round)
}

// roundAssigned is true when the round is assigned as one unit or every visit
// already carries a staff member
func roundAssigned(round *Round) bool {
	if round.AssignedStaffID != "" {
		return true
	}
	for _, visit := range round.Visits {
		if visit.AssignedStaffID == "" {
			return false
		}
	}
	return true
}

// windowFeasible is false when any visit in the round starts outside the
// visit type's window: the round is still returned best-effort, the flag
// surfaces the breach
func (p *Planner) windowFeasible(round *Round) bool {
	window, ok := p.params.Windows[round.Type]
	if !ok {
		return true
	}
	for _, visit := range round.Visits {
		start, parsed := visit.StartAt()
		if !parsed {
			continue
		}
		if !window.Contains(start) {
			return false
		}
	}
	return true
}

func visitMinutes(visits []model.Visit) int {
	total := 0
	for _, visit := range visits {
		if visit.DurationMins > 0 {
			total += visit.DurationMins
			continue
		}
		start, okS := visit.StartAt()
		end, okE := visit.EndAt()
		if okS && okE {
			total += int(end.Sub(start).Minutes())
		}
	}
	return total
}

// roundStartKey orders rounds chronologically by first visit; rounds whose
// first visit has no parsable start sort last
func roundStartKey(round *Round) string {
	if len(round.Visits) == 0 {
		return "~"
	}
	start, ok := round.Visits[0].StartAt()
	if !ok {
		return "~" + round.Visits[0].ID
	}
	return start.Format(time.RFC3339)
}
