package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/model"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rota_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromPath_Minimal(t *testing.T) {
	path := writeConfig(t, `
databaseURL: postgres://localhost/rota
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/rota", cfg.DatabaseURL)

	// Zero weights fall through to scorer defaults
	assert.Equal(t, 0, cfg.Weights.Availability)
}

func TestLoadFromPath_FullConfig(t *testing.T) {
	path := writeConfig(t, `
databaseURL: postgres://localhost/rota
scoringWeights:
  availability: 30
  continuity: 25
  skills: 20
  preference: 15
  travel: 10
lateGraceMinutes: 10
absenceCode: SICK
travelSpeedMPH: 25
farTravelMiles: 12
longTravelMiles: 8
windowOverrides:
  - visitType: Morning
    start: "07:00"
    end: "11:00"
recurrenceRules:
  - rrule: "FREQ=DAILY;INTERVAL=1"
    serviceUserID: su1
    visitType: Morning
    start: "08:00"
    durationMinutes: 45
    requiredActivities: [Medication]
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.MatchWeights().Availability)
	assert.Equal(t, 10, cfg.LateGraceMinutes)
	assert.Equal(t, "SICK", cfg.AbsenceCode)
	assert.Equal(t, 25.0, cfg.TravelParams().SpeedMPH)

	windows := cfg.Windows()
	assert.Equal(t, model.TimeWindow{Start: "07:00", End: "11:00"}, windows[model.VisitMorning])
	// Non-overridden windows keep their defaults
	assert.Equal(t, "11:30", windows[model.VisitLunch].Start)
}

func TestLoadFromPath_MissingDatabaseURL(t *testing.T) {
	path := writeConfig(t, `
lateGraceMinutes: 5
`)

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromPath_InvalidRRule(t *testing.T) {
	path := writeConfig(t, `
databaseURL: postgres://localhost/rota
recurrenceRules:
  - rrule: "not an rrule"
    serviceUserID: su1
    visitType: Morning
    start: "08:00"
    durationMinutes: 45
`)

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rrule")
}

func TestLoadFromPath_InvalidVisitType(t *testing.T) {
	path := writeConfig(t, `
databaseURL: postgres://localhost/rota
windowOverrides:
  - visitType: Brunch
    start: "09:00"
    end: "11:00"
`)

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "visit type")
}

func TestLoadFromPath_FileNotFound(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
