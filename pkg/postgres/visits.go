package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/model"
)

const visitColumns = `
	id, service_user_id, visit_type, visit_date, start_time, end_time,
	duration_minutes, status, assigned_staff_id, required_activities, notes
`

// GetVisit retrieves a single visit by ID. Returns nil when no such visit
// exists.
func (d *DB) GetVisit(ctx context.Context, id string) (*model.Visit, error) {
	row := d.pool.QueryRow(ctx, `SELECT `+visitColumns+` FROM visit WHERE id = $1`, id)

	visit, err := scanVisit(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query visit: %w", err)
	}
	return visit, nil
}

// GetVisitsByDate retrieves all visits scheduled on the given date
func (d *DB) GetVisitsByDate(ctx context.Context, date string) ([]model.Visit, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+visitColumns+` FROM visit WHERE visit_date = $1
	`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query visits: %w", err)
	}
	defer rows.Close()

	var visits []model.Visit
	for rows.Next() {
		visit, err := scanVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan visit: %w", err)
		}
		visits = append(visits, *visit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating visits: %w", err)
	}

	return visits, nil
}

// InsertVisit inserts a new visit record
func (d *DB) InsertVisit(ctx context.Context, visit *model.Visit) error {
	var staffID *string
	if visit.AssignedStaffID != "" {
		staffID = &visit.AssignedStaffID
	}

	_, err := d.pool.Exec(ctx, `
		INSERT INTO visit (id, service_user_id, visit_type, visit_date, start_time,
			end_time, duration_minutes, status, assigned_staff_id, required_activities, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, visit.ID, visit.ServiceUserID, string(visit.Type), visit.Date, visit.Start,
		visit.End, visit.DurationMins, string(visit.Status), staffID,
		visit.RequiredActivities, visit.Notes)
	if err != nil {
		return fmt.Errorf("failed to insert visit: %w", err)
	}
	return nil
}

// UpdateVisitAssignment assigns a visit to a staff member and transitions its
// status. An empty staffID clears the assignment back to Scheduled.
func (d *DB) UpdateVisitAssignment(ctx context.Context, visitID, staffID string) error {
	var assignee *string
	status := model.VisitScheduled
	if staffID != "" {
		assignee = &staffID
		status = model.VisitAssigned
	}

	_, err := d.pool.Exec(ctx, `
		UPDATE visit SET assigned_staff_id = $2, status = $3 WHERE id = $1
	`, visitID, assignee, string(status))
	if err != nil {
		return fmt.Errorf("failed to update visit assignment: %w", err)
	}
	return nil
}

func scanVisit(row pgx.Row) (*model.Visit, error) {
	var v model.Visit
	var visitType, status string
	var date time.Time
	var staffID *string

	err := row.Scan(&v.ID, &v.ServiceUserID, &visitType, &date, &v.Start, &v.End,
		&v.DurationMins, &status, &staffID, &v.RequiredActivities, &v.Notes)
	if err != nil {
		return nil, err
	}

	v.Type = model.VisitType(visitType)
	v.Status = model.VisitStatus(status)
	v.Date = date.Format("2006-01-02")
	if staffID != nil {
		v.AssignedStaffID = *staffID
	}

	return &v, nil
}
