package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/sarjCP365/rota-DomSL-sub003/internal/config"
	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/model"
	"github.com/sarjCP365/rota-DomSL-sub003/pkg/db"
)

// ExpandRecurrences expands the configured recurrence rules into concrete
// visit records over the given date range (inclusive) and inserts any that do
// not already exist. An occurrence is a duplicate when a visit for the same
// service user, type, date and start time is already stored.
//
// Rules referencing unknown service users are skipped with a warning; the
// rest of the batch still runs. Returns the number of visits inserted.
func ExpandRecurrences(ctx context.Context, store db.Store, logger *zap.Logger, cfg *config.Config, from, to time.Time) (int, error) {
	logger.Info("Expanding recurrence rules",
		zap.Int("rules", len(cfg.RecurrenceRules)),
		zap.Time("from", from),
		zap.Time("to", to))

	inserted := 0

	for i, rule := range cfg.RecurrenceRules {
		parsed, err := rrule.StrToRRule(rule.RRule)
		if err != nil {
			// Config validation checks rrule syntax at load, so this is a
			// call-contract failure, not a data-quality degrade
			return inserted, fmt.Errorf("invalid rrule in rule %d: %w", i, err)
		}

		serviceUser, err := store.GetServiceUser(ctx, rule.ServiceUserID)
		if err != nil {
			return inserted, fmt.Errorf("failed to fetch service user %s: %w", rule.ServiceUserID, err)
		}
		if serviceUser == nil {
			logger.Warn("Recurrence rule references unknown service user, skipping",
				zap.String("service_user_id", rule.ServiceUserID))
			continue
		}

		parsed.DTStart(from)
		occurrences := parsed.Between(from, to, true)

		for _, occurrence := range occurrences {
			date := occurrence.Format("2006-01-02")

			existing, err := store.GetVisitsByDate(ctx, date)
			if err != nil {
				return inserted, fmt.Errorf("failed to fetch visits for %s: %w", date, err)
			}
			if hasVisit(existing, rule, date) {
				continue
			}

			visit := visitFromRule(rule, date)
			if err := store.InsertVisit(ctx, visit); err != nil {
				return inserted, fmt.Errorf("failed to insert visit for %s on %s: %w",
					rule.ServiceUserID, date, err)
			}
			inserted++
		}
	}

	logger.Info("Recurrence expansion complete", zap.Int("inserted", inserted))
	return inserted, nil
}

// hasVisit reports whether an equivalent visit already exists on the date
func hasVisit(visits []model.Visit, rule config.RecurrenceRule, date string) bool {
	for _, visit := range visits {
		if visit.ServiceUserID == rule.ServiceUserID &&
			visit.Type == model.VisitType(rule.VisitType) &&
			visit.Date == date &&
			visit.Start == rule.Start {
			return true
		}
	}
	return false
}

// visitFromRule builds the concrete visit record for one occurrence
func visitFromRule(rule config.RecurrenceRule, date string) *model.Visit {
	start, _ := time.Parse("15:04", rule.Start)
	end := start.Add(time.Duration(rule.DurationMins) * time.Minute)

	return &model.Visit{
		ID:                 uuid.New().String(),
		ServiceUserID:      rule.ServiceUserID,
		Type:               model.VisitType(rule.VisitType),
		Date:               date,
		Start:              rule.Start,
		End:                end.Format("15:04"),
		DurationMins:       rule.DurationMins,
		Status:             model.VisitScheduled,
		RequiredActivities: rule.RequiredActivities,
	}
}
