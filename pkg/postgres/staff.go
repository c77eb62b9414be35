package postgres

import (
	"context"
	"fmt"

	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/model"
)

// GetStaffMembers retrieves all staff member records
func (d *DB) GetStaffMembers(ctx context.Context) ([]model.StaffMember, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, job_title, qualifications, base_lat, base_long,
			contracted_hours, scheduled_hours, active
		FROM staff_member
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff members: %w", err)
	}
	defer rows.Close()

	var staff []model.StaffMember
	for rows.Next() {
		var s model.StaffMember
		var lat, long *float64

		err := rows.Scan(&s.ID, &s.Name, &s.JobTitle, &s.Qualifications,
			&lat, &long, &s.ContractedHours, &s.ScheduledHours, &s.Active)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff member: %w", err)
		}

		if lat != nil && long != nil {
			s.BaseLocation = &model.Coordinate{Lat: *lat, Long: *long}
		}

		staff = append(staff, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff members: %w", err)
	}

	return staff, nil
}
