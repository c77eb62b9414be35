package postgres

import (
	"context"
	"fmt"

	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/model"
)

// GetRelationshipsForServiceUser retrieves all relationship rows for one
// service user. The schema enforces at most one row per (service user, staff)
// pair.
func (d *DB) GetRelationshipsForServiceUser(ctx context.Context, serviceUserID string) ([]model.Relationship, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT service_user_id, staff_id, is_preferred_carer, is_excluded,
			exclusion_reason, continuity_score, status
		FROM service_user_staff_relationship
		WHERE service_user_id = $1
	`, serviceUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to query relationships: %w", err)
	}
	defer rows.Close()

	var relationships []model.Relationship
	for rows.Next() {
		var r model.Relationship
		err := rows.Scan(&r.ServiceUserID, &r.StaffID, &r.IsPreferredCarer,
			&r.IsExcluded, &r.ExclusionReason, &r.ContinuityScore, &r.Status)
		if err != nil {
			return nil, fmt.Errorf("failed to scan relationship: %w", err)
		}
		relationships = append(relationships, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating relationships: %w", err)
	}

	return relationships, nil
}
