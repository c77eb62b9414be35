package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sarjCP365/rota-DomSL-sub003/internal/config"
	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/model"
)

func recurrenceConfig() *config.Config {
	return &config.Config{
		RecurrenceRules: []config.RecurrenceRule{
			{
				RRule:              "FREQ=DAILY",
				ServiceUserID:      "su1",
				VisitType:          "Morning",
				Start:              "08:00",
				DurationMins:       45,
				RequiredActivities: []string{"Medication"},
			},
		},
	}
}

func recurrenceStore() *mockStore {
	return &mockStore{
		serviceUsers: []model.ServiceUser{
			{ID: "su1", Name: "Edith Hall", Active: true},
		},
	}
}

func TestExpandRecurrences_InsertsOccurrences(t *testing.T) {
	mock := recurrenceStore()
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	inserted, err := ExpandRecurrences(context.Background(), mock, zap.NewNop(), recurrenceConfig(), from, to)
	require.NoError(t, err)
	assert.Equal(t, 3, inserted)
	require.Len(t, mock.insertedVisits, 3)

	first := mock.insertedVisits[0]
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "su1", first.ServiceUserID)
	assert.Equal(t, model.VisitMorning, first.Type)
	assert.Equal(t, "2025-03-10", first.Date)
	assert.Equal(t, "08:00", first.Start)
	assert.Equal(t, "08:45", first.End)
	assert.Equal(t, 45, first.DurationMins)
	assert.Equal(t, model.VisitScheduled, first.Status)
	assert.Equal(t, []string{"Medication"}, first.RequiredActivities)

	assert.Equal(t, "2025-03-11", mock.insertedVisits[1].Date)
	assert.Equal(t, "2025-03-12", mock.insertedVisits[2].Date)
}

func TestExpandRecurrences_SkipsExistingVisits(t *testing.T) {
	mock := recurrenceStore()
	mock.visits = []model.Visit{
		{ID: "v-existing", ServiceUserID: "su1", Type: model.VisitMorning,
			Date: "2025-03-11", Start: "08:00", End: "08:45", DurationMins: 45,
			Status: model.VisitScheduled},
	}
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	inserted, err := ExpandRecurrences(context.Background(), mock, zap.NewNop(), recurrenceConfig(), from, to)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)
	for _, visit := range mock.insertedVisits {
		assert.NotEqual(t, "2025-03-11", visit.Date)
	}
}

func TestExpandRecurrences_UnknownServiceUserSkipped(t *testing.T) {
	mock := &mockStore{}
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	inserted, err := ExpandRecurrences(context.Background(), mock, zap.NewNop(), recurrenceConfig(), from, to)
	require.NoError(t, err)
	assert.Zero(t, inserted)
	assert.Empty(t, mock.insertedVisits)
}

func TestExpandRecurrences_InvalidRule(t *testing.T) {
	mock := recurrenceStore()
	cfg := recurrenceConfig()
	cfg.RecurrenceRules[0].RRule = "FREQ=SOMETIMES"
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	_, err := ExpandRecurrences(context.Background(), mock, zap.NewNop(), cfg, from, to)
	require.Error(t, err)
}

func TestExpandRecurrences_InsertError(t *testing.T) {
	mock := recurrenceStore()
	mock.insertErr = errors.New("connection refused")
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	inserted, err := ExpandRecurrences(context.Background(), mock, zap.NewNop(), recurrenceConfig(), from, to)
	require.Error(t, err)
	assert.Zero(t, inserted)
}
