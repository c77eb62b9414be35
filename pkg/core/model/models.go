package model

import (
	"strings"
	"time"
)

// VisitType identifies the slot of day (or special category) a visit belongs to
type VisitType string

const (
	VisitMorning     VisitType = "Morning"
	VisitLunch       VisitType = "Lunch"
	VisitAfternoon   VisitType = "Afternoon"
	VisitTea         VisitType = "Tea"
	VisitEvening     VisitType = "Evening"
	VisitBedtime     VisitType = "Bedtime"
	VisitNight       VisitType = "Night"
	VisitWakingNight VisitType = "WakingNight"
	VisitSleepIn     VisitType = "SleepIn"
	VisitEmergency   VisitType = "Emergency"
	VisitAssessment  VisitType = "Assessment"
	VisitReview      VisitType = "Review"
)

func (t VisitType) IsValid() bool {
	switch t {
	case VisitMorning, VisitLunch, VisitAfternoon, VisitTea, VisitEvening,
		VisitBedtime, VisitNight, VisitWakingNight, VisitSleepIn,
		VisitEmergency, VisitAssessment, VisitReview:
		return true
	}
	return false
}

// VisitStatus is the lifecycle state of a visit. Visits are never deleted,
// only transitioned.
type VisitStatus string

const (
	VisitScheduled  VisitStatus = "Scheduled"
	VisitAssigned   VisitStatus = "Assigned"
	VisitInProgress VisitStatus = "InProgress"
	VisitCompleted  VisitStatus = "Completed"
	VisitCancelled  VisitStatus = "Cancelled"
	VisitMissed     VisitStatus = "Missed"
	VisitLate       VisitStatus = "Late"
)

func (s VisitStatus) IsValid() bool {
	switch s {
	case VisitScheduled, VisitAssigned, VisitInProgress, VisitCompleted,
		VisitCancelled, VisitMissed, VisitLate:
		return true
	}
	return false
}

// Coordinate is a WGS84 position. Records that may not have a known position
// hold a *Coordinate; nil means "location unknown", which is never the same
// thing as (0, 0).
type Coordinate struct {
	Lat  float64
	Long float64
}

// Visit is a single scheduled domiciliary care appointment for one service user
type Visit struct {
	ID            string
	ServiceUserID string
	Type          VisitType
	Date          string // "2006-01-02"
	Start         string // "15:04", time of day
	End           string // "15:04"; earlier than Start means the visit runs overnight
	DurationMins  int
	Status        VisitStatus
	// AssignedStaffID is empty while the visit is unassigned
	AssignedStaffID    string
	RequiredActivities []string
	Notes              string
}

// StartAt parses the visit's scheduled start into an absolute time.
// Returns false for malformed date or time values.
func (v Visit) StartAt() (time.Time, bool) {
	return combineDateTime(v.Date, v.Start)
}

// EndAt parses the visit's scheduled end into an absolute time, rolling onto
// the next calendar day when the end time-of-day precedes the start
// (overnight visit). Returns false for malformed values.
func (v Visit) EndAt() (time.Time, bool) {
	end, ok := combineDateTime(v.Date, v.End)
	if !ok {
		return time.Time{}, false
	}
	start, ok := combineDateTime(v.Date, v.Start)
	if !ok {
		return time.Time{}, false
	}
	if end.Before(start) {
		end = end.AddDate(0, 0, 1)
	}
	return end, true
}

func combineDateTime(date, clock string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02 15:04", date+" "+clock)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ServiceUser is the care recipient associated with visits
type ServiceUser struct {
	ID                string
	Name              string
	Location          *Coordinate
	FundingType       string
	WeeklyFundedHours float64
	AccessNotes       string
	Active            bool
}

// StaffMember is a care worker who can be assigned to visits
type StaffMember struct {
	ID             string
	Name           string
	JobTitle       string
	Qualifications []string
	BaseLocation   *Coordinate
	// ContractedHours is the weekly contracted total; 0 means uncapped (bank staff)
	ContractedHours float64
	// ScheduledHours is derived from the staff member's current assignments
	ScheduledHours float64
	Active         bool
}

// HasQualification reports whether the staff member holds the given skill tag
// (case-insensitive)
func (s StaffMember) HasQualification(tag string) bool {
	for _, q := range s.Qualifications {
		if strings.EqualFold(q, tag) {
			return true
		}
	}
	return false
}

// Relationship captures the standing between one service user and one staff
// member. At most one relationship exists per pair; exclusion always
// overrides preference.
type Relationship struct {
	ServiceUserID    string
	StaffID          string
	IsPreferredCarer bool
	IsExcluded       bool
	ExclusionReason  string
	// ContinuityScore is derived from visit history, normalised to 0-100
	ContinuityScore int
	Status          string
}

// TimeWindow is a time-of-day range used to confine a visit type (e.g.
// "Morning" visits) to its slot of the day. End earlier than Start means the
// window spans midnight.
type TimeWindow struct {
	Start string // "15:04"
	End   string // "15:04"
}

// Contains reports whether the given time-of-day falls within the window.
// Start is inclusive, End exclusive.
func (w TimeWindow) Contains(t time.Time) bool {
	start, okS := clockMinutes(w.Start)
	end, okE := clockMinutes(w.End)
	if !okS || !okE {
		return true // malformed window never blocks a visit
	}
	m := t.Hour()*60 + t.Minute()
	if end <= start {
		// spans midnight
		return m >= start || m < end
	}
	return m >= start && m < end
}

func clockMinutes(clock string) (int, bool) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// DefaultWindows maps each visit type to its standard time-of-day window.
// Operators can override these per deployment via configuration.
// Emergency, Assessment and Review visits have no window by default.
func DefaultWindows() map[VisitType]TimeWindow {
	return map[VisitType]TimeWindow{
		VisitMorning:     {Start: "06:00", End: "12:00"},
		VisitLunch:       {Start: "11:30", End: "14:30"},
		VisitAfternoon:   {Start: "14:00", End: "17:00"},
		VisitTea:         {Start: "16:00", End: "19:00"},
		VisitEvening:     {Start: "18:00", End: "21:30"},
		VisitBedtime:     {Start: "20:30", End: "23:30"},
		VisitNight:       {Start: "22:00", End: "07:00"},
		VisitWakingNight: {Start: "22:00", End: "07:00"},
		VisitSleepIn:     {Start: "21:00", End: "08:00"},
	}
}
