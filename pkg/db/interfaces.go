package db

import (
	"context"

	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/model"
)

// VisitStore defines the interface for visit record operations
type VisitStore interface {
	GetVisit(ctx context.Context, id string) (*model.Visit, error)
	GetVisitsByDate(ctx context.Context, date string) ([]model.Visit, error)
	InsertVisit(ctx context.Context, visit *model.Visit) error
	UpdateVisitAssignment(ctx context.Context, visitID, staffID string) error
}

// ServiceUserStore defines the interface for service user record operations
type ServiceUserStore interface {
	GetServiceUser(ctx context.Context, id string) (*model.ServiceUser, error)
	GetServiceUsers(ctx context.Context) ([]model.ServiceUser, error)
}

// StaffStore defines the interface for staff member record operations
type StaffStore interface {
	GetStaffMembers(ctx context.Context) ([]model.StaffMember, error)
}

// RelationshipStore defines the interface for service-user/staff
// relationship record operations
type RelationshipStore interface {
	GetRelationshipsForServiceUser(ctx context.Context, serviceUserID string) ([]model.Relationship, error)
}

// ShiftStore defines the interface for shift and clock-event record operations
type ShiftStore interface {
	GetShiftsByDate(ctx context.Context, date string) ([]Shift, error)
}

// Store aggregates every record store the services consume. Each scoring or
// planning invocation fetches one snapshot through it and passes plain
// records into the core; the core never touches the store.
type Store interface {
	VisitStore
	ServiceUserStore
	StaffStore
	RelationshipStore
	ShiftStore
}
