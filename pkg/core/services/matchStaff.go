package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sarjCP365/rota-DomSL-sub003/internal/config"
	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/matching"
	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/model"
	"github.com/sarjCP365/rota-DomSL-sub003/pkg/db"
)

// MatchStaffResult is the outcome of ranking candidates for one visit
type MatchStaffResult struct {
	Visit       model.Visit
	ServiceUser model.ServiceUser
	Matches     []matching.MatchResult

	// Warnings carries data-quality notes from snapshot assembly (missing
	// references), distinct from the per-candidate warnings inside Matches
	Warnings []string
}

// MatchStaffForVisit loads a consistent snapshot for one visit and ranks all
// candidate staff by suitability. The snapshot is fetched once up front;
// the scorer runs purely over it.
//
// Missing service-user records degrade to a warning (the visit is still
// scored, with location unknown); a missing visit record is a hard error
// since the whole call is about it.
func MatchStaffForVisit(ctx context.Context, store db.Store, logger *zap.Logger, cfg *config.Config, visitID string, opts matching.MatchOptions) (*MatchStaffResult, error) {
	logger.Info("Matching staff for visit", zap.String("visit_id", visitID))

	visit, err := store.GetVisit(ctx, visitID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch visit: %w", err)
	}
	if visit == nil {
		return nil, fmt.Errorf("visit %s not found", visitID)
	}

	result := &MatchStaffResult{Visit: *visit}

	serviceUser, err := store.GetServiceUser(ctx, visit.ServiceUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service user: %w", err)
	}
	if serviceUser == nil {
		logger.Warn("Service user record missing, scoring with location unknown",
			zap.String("service_user_id", visit.ServiceUserID))
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Service user %s not found", visit.ServiceUserID))
		serviceUser = &model.ServiceUser{ID: visit.ServiceUserID}
	}
	result.ServiceUser = *serviceUser

	staff, err := store.GetStaffMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff members: %w", err)
	}

	relationships, err := store.GetRelationshipsForServiceUser(ctx, visit.ServiceUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch relationships: %w", err)
	}

	dayVisits, err := store.GetVisitsByDate(ctx, visit.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch visits for %s: %w", visit.Date, err)
	}

	serviceUsers, err := store.GetServiceUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service users: %w", err)
	}

	state := &matching.MatchContext{
		Visit:          *visit,
		ServiceUser:    *serviceUser,
		Staff:          staff,
		Relationships:  relationshipsByStaff(relationships),
		AssignedVisits: assignedVisitsByStaff(dayVisits),
		Locations:      locationsByServiceUser(serviceUsers),
	}

	scorer := matching.NewScorer(cfg.MatchWeights(), cfg.TravelParams())
	result.Matches = scorer.FindMatchingStaff(state, opts)

	logger.Info("Ranked candidates",
		zap.String("visit_id", visitID),
		zap.Int("candidates", len(result.Matches)))

	return result, nil
}
