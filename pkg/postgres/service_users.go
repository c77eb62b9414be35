package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/model"
)

// GetServiceUser retrieves a single service user by ID. Returns nil when no
// such record exists.
func (d *DB) GetServiceUser(ctx context.Context, id string) (*model.ServiceUser, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT id, name, lat, long, funding_type, weekly_funded_hours, access_notes, active
		FROM service_user WHERE id = $1
	`, id)

	user, err := scanServiceUser(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query service user: %w", err)
	}
	return user, nil
}

// GetServiceUsers retrieves all service user records
func (d *DB) GetServiceUsers(ctx context.Context) ([]model.ServiceUser, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, lat, long, funding_type, weekly_funded_hours, access_notes, active
		FROM service_user
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query service users: %w", err)
	}
	defer rows.Close()

	var users []model.ServiceUser
	for rows.Next() {
		user, err := scanServiceUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service user: %w", err)
		}
		users = append(users, *user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating service users: %w", err)
	}

	return users, nil
}

func scanServiceUser(row pgx.Row) (*model.ServiceUser, error) {
	var u model.ServiceUser
	var lat, long *float64

	err := row.Scan(&u.ID, &u.Name, &lat, &long, &u.FundingType,
		&u.WeeklyFundedHours, &u.AccessNotes, &u.Active)
	if err != nil {
		return nil, err
	}

	// Both coordinates must be present for a location to be known
	if lat != nil && long != nil {
		u.Location = &model.Coordinate{Lat: *lat, Long: *long}
	}

	return &u, nil
}
