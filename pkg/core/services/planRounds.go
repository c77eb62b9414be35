package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sarjCP365/rota-DomSL-sub003/internal/config"
	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/model"
	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/rounds"
	"github.com/sarjCP365/rota-DomSL-sub003/pkg/db"
)

// PlanRoundsResult is the outcome of planning one day's rounds of one type
type PlanRoundsResult struct {
	Rounds []*rounds.Round

	// Bounds is the map-framing envelope of the day's located visits; nil
	// when no visit has a known location
	Bounds *rounds.BoundingBox
}

// PlanDayRounds loads one day's visits of the given type plus service-user
// locations and partitions them into travel-feasible rounds. A day with no
// matching visits yields an empty result, not an error.
func PlanDayRounds(ctx context.Context, store db.Store, logger *zap.Logger, cfg *config.Config, date string, visitType model.VisitType) (*PlanRoundsResult, error) {
	if _, err := parseDate(date); err != nil {
		return nil, err
	}
	if !visitType.IsValid() {
		return nil, fmt.Errorf("unknown visit type %q", visitType)
	}

	logger.Info("Planning rounds",
		zap.String("date", date),
		zap.String("visit_type", string(visitType)))

	visits, err := store.GetVisitsByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch visits for %s: %w", date, err)
	}

	serviceUsers, err := store.GetServiceUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service users: %w", err)
	}
	locations := locationsByServiceUser(serviceUsers)

	planner := rounds.NewPlanner(rounds.PlannerParams{
		SpeedMPH: cfg.TravelSpeedMPH,
		Windows:  cfg.Windows(),
	})

	planned := planner.BuildRounds(rounds.BuildRoundsInput{
		Visits:    visits,
		Type:      visitType,
		Date:      date,
		Locations: locations,
	})

	// Bounds cover only the visits that made it into the plan
	var inPlan []model.Visit
	for _, round := range planned {
		inPlan = append(inPlan, round.Visits...)
	}

	logger.Info("Planned rounds",
		zap.String("date", date),
		zap.Int("rounds", len(planned)),
		zap.Int("visits", len(inPlan)))

	return &PlanRoundsResult{
		Rounds: planned,
		Bounds: rounds.BoundsOf(inPlan, locations),
	}, nil
}
