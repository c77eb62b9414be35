package matching

import (
	"fmt"
	"math"

	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/geo"
	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/model"
)

const (
	// DefaultFarMiles is the distance at which the travel score reaches zero
	DefaultFarMiles = 10.0

	// DefaultLongTravelMiles is the distance beyond which a long-travel
	// warning is attached
	DefaultLongTravelMiles = 7.5
)

// TravelParams are the operator-tunable travel scoring inputs
type TravelParams struct {
	// SpeedMPH is the assumed average road speed
	SpeedMPH float64

	// FarMiles is where the linear falloff bottoms out at zero points
	FarMiles float64

	// LongTravelMiles triggers the long-distance warning
	LongTravelMiles float64
}

// DefaultTravelParams returns the standard travel tuning
func DefaultTravelParams() TravelParams {
	return TravelParams{
		SpeedMPH:        geo.DefaultSpeedMPH,
		FarMiles:        DefaultFarMiles,
		LongTravelMiles: DefaultLongTravelMiles,
	}
}

// TravelCriterion scores how far the candidate would have to travel to reach
// the service user, anchored at the candidate's nearest same-day visit
// location when one exists, otherwise their base location.
//
// Points:
//   - Linear falloff from the maximum at zero miles down to zero at FarMiles
//   - An unknown location on either side scores a neutral half of the
//     maximum, never zero or full
//
// Warnings:
//   - "location unknown" when a coordinate is missing
//   - A long-travel warning beyond LongTravelMiles
type TravelCriterion struct {
	maxPoints int
	params    TravelParams
}

// NewTravelCriterion creates a TravelCriterion with the given maximum points
// and tuning. Zero-valued params fall back to the defaults.
func NewTravelCriterion(maxPoints int, params TravelParams) *TravelCriterion {
	if params.SpeedMPH <= 0 {
		params.SpeedMPH = geo.DefaultSpeedMPH
	}
	if params.FarMiles <= 0 {
		params.FarMiles = DefaultFarMiles
	}
	if params.LongTravelMiles <= 0 {
		params.LongTravelMiles = DefaultLongTravelMiles
	}
	return &TravelCriterion{maxPoints: maxPoints, params: params}
}

func (c *TravelCriterion) Name() string {
	return "Travel"
}

func (c *TravelCriterion) MaxPoints() int {
	return c.maxPoints
}

func (c *TravelCriterion) Evaluate(state *MatchContext, staff model.StaffMember) CriterionResult {
	target := state.ServiceUser.Location
	anchor := travelAnchor(state, staff)

	if target == nil || anchor == nil {
		points := int(math.Round(float64(c.maxPoints) / 2))
		return CriterionResult{
			Points:   clampPoints(points, c.maxPoints),
			Warnings: []string{"Location unknown, travel could not be estimated"},
		}
	}

	miles := geo.Distance(*anchor, *target)

	fraction := 1 - miles/c.params.FarMiles
	if fraction < 0 {
		fraction = 0
	}
	points := int(math.Round(float64(c.maxPoints) * fraction))
	result := CriterionResult{Points: clampPoints(points, c.maxPoints)}

	if miles >= c.params.LongTravelMiles {
		result.Warnings = []string{
			fmt.Sprintf("Long travel distance: %.1f miles (about %d minutes)",
				miles, geo.TravelMinutes(miles, c.params.SpeedMPH)),
		}
	}

	return result
}

// travelAnchor picks the most relevant known location the candidate would be
// travelling from: the nearest of their same-day visit locations, falling
// back to their base location. Returns nil when nothing is known.
func travelAnchor(state *MatchContext, staff model.StaffMember) *model.Coordinate {
	target := state.ServiceUser.Location

	var nearest *model.Coordinate
	var nearestMiles float64

	for _, other := range state.AssignedVisits[staff.ID] {
		if other.ID == state.Visit.ID || other.Status == model.VisitCancelled {
			continue
		}
		loc := state.Locations[other.ServiceUserID]
		if loc == nil {
			continue
		}
		if target == nil {
			// Any known visit location beats the base location, but there is
			// no distance to minimise against
			return loc
		}
		miles := geo.Distance(*loc, *target)
		if nearest == nil || miles < nearestMiles {
			nearest = loc
			nearestMiles = miles
		}
	}

	if nearest != nil {
		return nearest
	}
	return staff.BaseLocation
}
