package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/sarjCP365/rota-DomSL-sub003/internal/config"
	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/attendance"
	"github.com/sarjCP365/rota-DomSL-sub003/pkg/db"
)

// StaffAttendance is one row of the live attendance board
type StaffAttendance struct {
	ShiftID   string
	StaffID   string
	StaffName string
	Status    attendance.Status
	Details   attendance.AttendanceDetails
}

// AttendanceBoard derives the live attendance state of every shift on the
// given date. The reference time is injected so polling callers and tests are
// reproducible; pass time.Now() for live data.
//
// Shifts referencing unknown staff members are skipped with a warning rather
// than failing the board. Unparsable schedule or clock values degrade to
// absent information inside the classifier.
func AttendanceBoard(ctx context.Context, store db.Store, logger *zap.Logger, cfg *config.Config, date string, now time.Time) ([]StaffAttendance, error) {
	if _, err := parseDate(date); err != nil {
		return nil, err
	}

	logger.Info("Deriving attendance board", zap.String("date", date), zap.Time("now", now))

	shifts, err := store.GetShiftsByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shifts for %s: %w", date, err)
	}

	staff, err := store.GetStaffMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff members: %w", err)
	}
	names := make(map[string]string, len(staff))
	for _, s := range staff {
		names[s.ID] = s.Name
	}

	classifier := attendance.NewClassifier(cfg.LateGraceMinutes, cfg.AbsenceCode)

	board := make([]StaffAttendance, 0, len(shifts))
	for _, shift := range shifts {
		name, known := names[shift.StaffID]
		if !known {
			logger.Warn("Shift references unknown staff member",
				zap.String("shift_id", shift.ID),
				zap.String("staff_id", shift.StaffID))
			continue
		}

		record := shiftAttendanceRecord(shift)
		board = append(board, StaffAttendance{
			ShiftID:   shift.ID,
			StaffID:   shift.StaffID,
			StaffName: name,
			Status:    classifier.Classify(record, now),
			Details:   classifier.Details(record, now),
		})
	}

	sort.Slice(board, func(i, j int) bool {
		if board[i].StaffName != board[j].StaffName {
			return board[i].StaffName < board[j].StaffName
		}
		return board[i].ShiftID < board[j].ShiftID
	})

	return board, nil
}

// shiftAttendanceRecord converts a stored shift into the classifier's view,
// parsing timestamps at the edge. Unparsable values become nil.
func shiftAttendanceRecord(shift db.Shift) attendance.ShiftAttendanceRecord {
	return attendance.ShiftAttendanceRecord{
		ShiftStart:  attendance.ParseClock(shift.Date + " " + shift.Start),
		ShiftEnd:    attendance.ParseClock(shift.Date + " " + shift.End),
		ClockIn:     attendance.ParseClock(shift.ClockIn),
		ClockOut:    attendance.ParseClock(shift.ClockOut),
		AbsenceCode: shift.StatusCode,
	}
}
