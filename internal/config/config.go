package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/matching"
	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/model"
)

// ScoringWeights are the per-criterion maxima for suitability scoring. The
// defaults sum to 100 so the total reads as a percentage.
type ScoringWeights struct {
	Availability int `yaml:"availability,omitempty" validate:"omitempty,min=1"`
	Continuity   int `yaml:"continuity,omitempty" validate:"omitempty,min=1"`
	Skills       int `yaml:"skills,omitempty" validate:"omitempty,min=1"`
	Preference   int `yaml:"preference,omitempty" validate:"omitempty,min=1"`
	Travel       int `yaml:"travel,omitempty" validate:"omitempty,min=1"`
}

// WindowOverride replaces the default time-of-day window for one visit type
type WindowOverride struct {
	VisitType string `yaml:"visitType" validate:"required"`
	Start     string `yaml:"start" validate:"required"`
	End       string `yaml:"end" validate:"required"`
}

// RecurrenceRule describes a repeating visit to be expanded into concrete
// visit records
type RecurrenceRule struct {
	RRule              string   `yaml:"rrule" validate:"required"`
	ServiceUserID      string   `yaml:"serviceUserID" validate:"required"`
	VisitType          string   `yaml:"visitType" validate:"required"`
	Start              string   `yaml:"start" validate:"required"` // "15:04"
	DurationMins       int      `yaml:"durationMinutes" validate:"required,min=1"`
	RequiredActivities []string `yaml:"requiredActivities,omitempty"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL string `yaml:"databaseURL" validate:"required"`

	Weights ScoringWeights `yaml:"scoringWeights,omitempty"`

	// LateGraceMinutes is how long after shift start a missing clock-in is
	// tolerated before reporting Late
	LateGraceMinutes int    `yaml:"lateGraceMinutes,omitempty" validate:"omitempty,min=1"`
	AbsenceCode      string `yaml:"absenceCode,omitempty"`

	TravelSpeedMPH  float64 `yaml:"travelSpeedMPH,omitempty" validate:"omitempty,gt=0"`
	FarTravelMiles  float64 `yaml:"farTravelMiles,omitempty" validate:"omitempty,gt=0"`
	LongTravelMiles float64 `yaml:"longTravelMiles,omitempty" validate:"omitempty,gt=0"`

	WindowOverrides []WindowOverride `yaml:"windowOverrides,omitempty" validate:"dive"`
	RecurrenceRules []RecurrenceRule `yaml:"recurrenceRules,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from rota_config.yaml.
// It looks for the config file in the current directory first, then in the
// user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct, rrule syntax, and enum values
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, override := range cfg.WindowOverrides {
		if !model.VisitType(override.VisitType).IsValid() {
			return fmt.Errorf("unknown visit type in windowOverrides[%d]: %q", i, override.VisitType)
		}
	}

	for i, rule := range cfg.RecurrenceRules {
		if _, err := rrule.StrToRRule(rule.RRule); err != nil {
			return fmt.Errorf("invalid rrule in recurrenceRules[%d]: %w", i, err)
		}
		if !model.VisitType(rule.VisitType).IsValid() {
			return fmt.Errorf("unknown visit type in recurrenceRules[%d]: %q", i, rule.VisitType)
		}
	}

	return nil
}

// MatchWeights converts the configured maxima into scorer weights; zero
// values mean "use the default"
func (c *Config) MatchWeights() matching.Weights {
	return matching.Weights{
		Availability: c.Weights.Availability,
		Continuity:   c.Weights.Continuity,
		Skills:       c.Weights.Skills,
		Preference:   c.Weights.Preference,
		Travel:       c.Weights.Travel,
	}
}

// TravelParams converts the configured travel tuning; zero values mean "use
// the default"
func (c *Config) TravelParams() matching.TravelParams {
	return matching.TravelParams{
		SpeedMPH:        c.TravelSpeedMPH,
		FarMiles:        c.FarTravelMiles,
		LongTravelMiles: c.LongTravelMiles,
	}
}

// Windows returns the default visit-type windows with any configured
// overrides applied
func (c *Config) Windows() map[model.VisitType]model.TimeWindow {
	windows := model.DefaultWindows()
	for _, override := range c.WindowOverrides {
		windows[model.VisitType(override.VisitType)] = model.TimeWindow{
			Start: override.Start,
			End:   override.End,
		}
	}
	return windows
}

// findConfigFile searches for rota_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "rota_config.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
