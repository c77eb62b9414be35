package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sarjCP365/rota-DomSL-sub003/internal/config"
	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/model"
)

func roundsStore() *mockStore {
	homeA := &model.Coordinate{Lat: 51.5590, Long: 0.0815}
	homeB := &model.Coordinate{Lat: 51.5735, Long: 0.0815} // about a mile north

	return &mockStore{
		visits: []model.Visit{
			{ID: "v1", ServiceUserID: "su1", Type: model.VisitMorning, Date: "2025-03-10",
				Start: "08:00", End: "08:30", DurationMins: 30, Status: model.VisitScheduled},
			{ID: "v2", ServiceUserID: "su2", Type: model.VisitMorning, Date: "2025-03-10",
				Start: "09:00", End: "09:30", DurationMins: 30, Status: model.VisitScheduled},
			// Different type, must not appear in a Morning plan
			{ID: "v3", ServiceUserID: "su1", Type: model.VisitLunch, Date: "2025-03-10",
				Start: "12:00", End: "12:30", DurationMins: 30, Status: model.VisitScheduled},
		},
		serviceUsers: []model.ServiceUser{
			{ID: "su1", Name: "Edith Hall", Location: homeA, Active: true},
			{ID: "su2", Name: "Frank Mills", Location: homeB, Active: true},
		},
	}
}

func TestPlanDayRounds_BuildsRounds(t *testing.T) {
	mock := roundsStore()
	logger := zap.NewNop()

	result, err := PlanDayRounds(context.Background(), mock, logger, &config.Config{}, "2025-03-10", model.VisitMorning)
	require.NoError(t, err)
	require.NotNil(t, result)

	// Both morning visits are close enough to chain into one round
	require.Len(t, result.Rounds, 1)
	round := result.Rounds[0]
	require.Len(t, round.Visits, 2)
	assert.Equal(t, "v1", round.Visits[0].ID)
	assert.Equal(t, "v2", round.Visits[1].ID)
	assert.Equal(t, model.VisitMorning, round.Type)
	assert.Equal(t, 60, round.TotalVisitMinutes)

	require.NotNil(t, result.Bounds)
	assert.InDelta(t, 51.5735, result.Bounds.North, 1e-9)
	assert.InDelta(t, 51.5590, result.Bounds.South, 1e-9)
}

func TestPlanDayRounds_NoMatchingVisits(t *testing.T) {
	mock := roundsStore()

	result, err := PlanDayRounds(context.Background(), mock, zap.NewNop(), &config.Config{}, "2025-03-11", model.VisitMorning)
	require.NoError(t, err)
	assert.Empty(t, result.Rounds)
	assert.Nil(t, result.Bounds)
}

func TestPlanDayRounds_InvalidDate(t *testing.T) {
	mock := roundsStore()

	result, err := PlanDayRounds(context.Background(), mock, zap.NewNop(), &config.Config{}, "10/03/2025", model.VisitMorning)
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestPlanDayRounds_UnknownVisitType(t *testing.T) {
	mock := roundsStore()

	result, err := PlanDayRounds(context.Background(), mock, zap.NewNop(), &config.Config{}, "2025-03-10", model.VisitType("Brunch"))
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "Brunch")
}

func TestPlanDayRounds_StoreError(t *testing.T) {
	mock := roundsStore()
	mock.visitsErr = errors.New("connection refused")

	result, err := PlanDayRounds(context.Background(), mock, zap.NewNop(), &config.Config{}, "2025-03-10", model.VisitMorning)
	require.Error(t, err)
	assert.Nil(t, result)
}
