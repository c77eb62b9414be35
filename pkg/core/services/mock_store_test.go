package services

import (
	"context"

	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/model"
	"github.com/sarjCP365/rota-DomSL-sub003/pkg/db"
)

// mockStore implements a test double for db.Store
type mockStore struct {
	visits        []model.Visit
	serviceUsers  []model.ServiceUser
	staff         []model.StaffMember
	relationships []model.Relationship
	shifts        []db.Shift

	insertedVisits []*model.Visit
	assignments    map[string]string

	visitsErr error
	usersErr  error
	staffErr  error
	relsErr   error
	shiftsErr error
	insertErr error
}

func (m *mockStore) GetVisit(ctx context.Context, id string) (*model.Visit, error) {
	if m.visitsErr != nil {
		return nil, m.visitsErr
	}
	for i := range m.visits {
		if m.visits[i].ID == id {
			return &m.visits[i], nil
		}
	}
	return nil, nil
}

func (m *mockStore) GetVisitsByDate(ctx context.Context, date string) ([]model.Visit, error) {
	if m.visitsErr != nil {
		return nil, m.visitsErr
	}
	var matched []model.Visit
	for _, visit := range m.visits {
		if visit.Date == date {
			matched = append(matched, visit)
		}
	}
	for _, visit := range m.insertedVisits {
		if visit.Date == date {
			matched = append(matched, *visit)
		}
	}
	return matched, nil
}

func (m *mockStore) InsertVisit(ctx context.Context, visit *model.Visit) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.insertedVisits = append(m.insertedVisits, visit)
	return nil
}

func (m *mockStore) UpdateVisitAssignment(ctx context.Context, visitID, staffID string) error {
	if m.assignments == nil {
		m.assignments = make(map[string]string)
	}
	m.assignments[visitID] = staffID
	return nil
}

func (m *mockStore) GetServiceUser(ctx context.Context, id string) (*model.ServiceUser, error) {
	if m.usersErr != nil {
		return nil, m.usersErr
	}
	for i := range m.serviceUsers {
		if m.serviceUsers[i].ID == id {
			return &m.serviceUsers[i], nil
		}
	}
	return nil, nil
}

func (m *mockStore) GetServiceUsers(ctx context.Context) ([]model.ServiceUser, error) {
	if m.usersErr != nil {
		return nil, m.usersErr
	}
	return m.serviceUsers, nil
}

func (m *mockStore) GetStaffMembers(ctx context.Context) ([]model.StaffMember, error) {
	if m.staffErr != nil {
		return nil, m.staffErr
	}
	return m.staff, nil
}

func (m *mockStore) GetRelationshipsForServiceUser(ctx context.Context, serviceUserID string) ([]model.Relationship, error) {
	if m.relsErr != nil {
		return nil, m.relsErr
	}
	var matched []model.Relationship
	for _, rel := range m.relationships {
		if rel.ServiceUserID == serviceUserID {
			matched = append(matched, rel)
		}
	}
	return matched, nil
}

func (m *mockStore) GetShiftsByDate(ctx context.Context, date string) ([]db.Shift, error) {
	if m.shiftsErr != nil {
		return nil, m.shiftsErr
	}
	var matched []db.Shift
	for _, shift := range m.shifts {
		if shift.Date == date {
			matched = append(matched, shift)
		}
	}
	return matched, nil
}
