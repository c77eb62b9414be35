package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/sarjCP365/rota-DomSL-sub003/pkg/db"
)

// GetShiftsByDate retrieves all shifts scheduled on the given date, with
// their clock events
func (d *DB) GetShiftsByDate(ctx context.Context, date string) ([]db.Shift, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, staff_id, shift_date, start_time, end_time, clock_in, clock_out, status_code
		FROM shift WHERE shift_date = $1
	`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []db.Shift
	for rows.Next() {
		var s db.Shift
		var shiftDate time.Time
		var clockIn, clockOut *time.Time

		err := rows.Scan(&s.ID, &s.StaffID, &shiftDate, &s.Start, &s.End,
			&clockIn, &clockOut, &s.StatusCode)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}

		s.Date = shiftDate.Format("2006-01-02")
		if clockIn != nil {
			s.ClockIn = clockIn.UTC().Format(time.RFC3339)
		}
		if clockOut != nil {
			s.ClockOut = clockOut.UTC().Format(time.RFC3339)
		}

		shifts = append(shifts, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shifts: %w", err)
	}

	return shifts, nil
}
