package services

import (
	"fmt"
	"time"

	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/model"
)

// parseDate validates a "2006-01-02" date string
func parseDate(date string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", date, err)
	}
	return t, nil
}

// assignedVisitsByStaff groups a day's visits by their assigned staff member.
// Unassigned visits belong to nobody's schedule.
func assignedVisitsByStaff(visits []model.Visit) map[string][]model.Visit {
	byStaff := make(map[string][]model.Visit)
	for _, visit := range visits {
		if visit.AssignedStaffID == "" {
			continue
		}
		byStaff[visit.AssignedStaffID] = append(byStaff[visit.AssignedStaffID], visit)
	}
	return byStaff
}

// locationsByServiceUser builds the service-user location lookup the core
// consumes. Users without coordinates map to nil.
func locationsByServiceUser(users []model.ServiceUser) map[string]*model.Coordinate {
	locations := make(map[string]*model.Coordinate, len(users))
	for _, user := range users {
		locations[user.ID] = user.Location
	}
	return locations
}

// relationshipsByStaff keys one service user's relationship rows by staff ID
func relationshipsByStaff(relationships []model.Relationship) map[string]model.Relationship {
	byStaff := make(map[string]model.Relationship, len(relationships))
	for _, rel := range relationships {
		byStaff[rel.StaffID] = rel
	}
	return byStaff
}
