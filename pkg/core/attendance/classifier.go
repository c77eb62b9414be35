package attendance

import "time"

// Status is the live classification of a scheduled shift.
//
// Transitions: Scheduled → {Present | Late} → {Worked | Absent}, with Absent
// also reachable directly from Scheduled via an explicit absence code.
// Worked and Absent are terminal.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusPresent   Status = "Present"
	StatusLate      Status = "Late"
	StatusWorked    Status = "Worked"
	StatusAbsent    Status = "Absent"
)

const (
	// DefaultGraceMinutes is how long after shift start a missing clock-in is
	// tolerated before the shift is reported as Late
	DefaultGraceMinutes = 5

	// DefaultAbsenceCode is the explicit status code that marks a shift Absent
	DefaultAbsenceCode = "ABS"
)

// ShiftAttendanceRecord is the derived view a classification runs over. It is
// recomputed on every read and never stored. Nil fields mean the information
// is absent (not yet clocked, or unparsable at the edge).
type ShiftAttendanceRecord struct {
	ShiftStart *time.Time
	// ShiftEnd earlier than ShiftStart means the shift runs overnight into
	// the next calendar day
	ShiftEnd *time.Time
	ClockIn  *time.Time
	ClockOut *time.Time
	// AbsenceCode is an explicit status code; matching the configured absence
	// code forces Absent regardless of clock evidence
	AbsenceCode string
}

// AttendanceDetails is the secondary derivation alongside a Status
type AttendanceDetails struct {
	Status       Status
	MinutesLate  int
	MinutesEarly int
	HasEnded     bool
	IsOvernight  bool
}

// Classifier maps shift attendance records to statuses. Construct with
// NewClassifier; the grace period and absence code are deployment tunables.
type Classifier struct {
	grace       time.Duration
	absenceCode string
}

// NewClassifier creates a Classifier. Non-positive graceMinutes and an empty
// absenceCode fall back to the defaults.
func NewClassifier(graceMinutes int, absenceCode string) *Classifier {
	if graceMinutes <= 0 {
		graceMinutes = DefaultGraceMinutes
	}
	if absenceCode == "" {
		absenceCode = DefaultAbsenceCode
	}
	return &Classifier{
		grace:       time.Duration(graceMinutes) * time.Minute,
		absenceCode: absenceCode,
	}
}

// Classify derives the attendance status for a record at the given reference
// time. It is a pure function: identical inputs always produce the same
// output. Rules are evaluated in order, first match wins:
//
//  1. Explicit absence code → Absent
//  2. Clock-in and clock-out both present → Worked
//  3. Clock-in only → Present
//  4. No clock-in, shift currently active and more than the grace period
//     elapsed since shift start → Late
//  5. Otherwise → Scheduled
//
// A shift that has already ended with no clock evidence stays Scheduled:
// missing clock data is not proof of non-attendance, so Late is never claimed
// retroactively.
func (c *Classifier) Classify(rec ShiftAttendanceRecord, now time.Time) Status {
	if rec.AbsenceCode == c.absenceCode && rec.AbsenceCode != "" {
		return StatusAbsent
	}

	if rec.ClockIn != nil && rec.ClockOut != nil {
		return StatusWorked
	}

	if rec.ClockIn != nil {
		return StatusPresent
	}

	// No clock-in. A record without a parsable schedule defaults to Scheduled.
	if rec.ShiftStart == nil || rec.ShiftEnd == nil {
		return StatusScheduled
	}

	start := *rec.ShiftStart
	end := effectiveEnd(rec)

	shiftActive := !now.Before(start) && now.Before(end)
	if shiftActive && now.Sub(start) > c.grace {
		return StatusLate
	}

	return StatusScheduled
}

// Details derives the full attendance view for a record: status plus how late
// or early the clock-in was, whether the shift has ended, and whether it runs
// overnight. For a Late status with no clock-in, MinutesLate measures from
// shift start to the reference time.
func (c *Classifier) Details(rec ShiftAttendanceRecord, now time.Time) AttendanceDetails {
	details := AttendanceDetails{
		Status: c.Classify(rec, now),
	}

	if rec.ShiftStart != nil && rec.ShiftEnd != nil {
		details.IsOvernight = rec.ShiftEnd.Before(*rec.ShiftStart)
		details.HasEnded = now.After(effectiveEnd(rec))
	}

	if rec.ClockIn != nil && rec.ShiftStart != nil {
		delta := rec.ClockIn.Sub(*rec.ShiftStart)
		if delta > 0 {
			details.MinutesLate = int(delta.Minutes())
		} else if delta < 0 {
			details.MinutesEarly = int((-delta).Minutes())
		}
	} else if details.Status == StatusLate && rec.ShiftStart != nil {
		details.MinutesLate = int(now.Sub(*rec.ShiftStart).Minutes())
	}

	return details
}

// effectiveEnd returns the absolute end of the shift, rolling onto the next
// calendar day when the end precedes the start. Callers must have checked
// both times are non-nil.
func effectiveEnd(rec ShiftAttendanceRecord) time.Time {
	end := *rec.ShiftEnd
	if end.Before(*rec.ShiftStart) {
		end = end.AddDate(0, 0, 1)
	}
	return end
}

// ParseClock parses a timestamp string into a *time.Time, trying the layouts
// the record store emits. Unparsable or empty input yields nil rather than an
// error: absent information degrades the classification, it never aborts it.
func ParseClock(value string) *time.Time {
	if value == "" {
		return nil
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-01-02T15:04",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}
