package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tp(t time.Time) *time.Time {
	return &t
}

var (
	shiftStart = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	shiftEnd   = time.Date(2025, 3, 10, 16, 0, 0, 0, time.UTC)
)

func scheduledShift() ShiftAttendanceRecord {
	return ShiftAttendanceRecord{
		ShiftStart: tp(shiftStart),
		ShiftEnd:   tp(shiftEnd),
	}
}

func TestClassify_AbsenceCodeOverridesEverything(t *testing.T) {
	c := NewClassifier(5, "ABS")

	rec := scheduledShift()
	rec.AbsenceCode = "ABS"
	rec.ClockIn = tp(shiftStart)
	rec.ClockOut = tp(shiftEnd)

	// Absence code wins even with full clock evidence
	assert.Equal(t, StatusAbsent, c.Classify(rec, shiftEnd))

	// And before the shift has started
	rec = scheduledShift()
	rec.AbsenceCode = "ABS"
	assert.Equal(t, StatusAbsent, c.Classify(rec, shiftStart.Add(-2*time.Hour)))
}

func TestClassify_BothClocksMeansWorked(t *testing.T) {
	c := NewClassifier(5, "ABS")

	rec := scheduledShift()
	rec.ClockIn = tp(shiftStart.Add(30 * time.Minute))
	rec.ClockOut = tp(shiftEnd.Add(-time.Hour))

	// Worked regardless of schedule timing or reference time
	assert.Equal(t, StatusWorked, c.Classify(rec, shiftStart.Add(-time.Hour)))
	assert.Equal(t, StatusWorked, c.Classify(rec, shiftEnd.Add(24*time.Hour)))
}

func TestClassify_ClockInOnlyMeansPresent(t *testing.T) {
	c := NewClassifier(5, "ABS")

	rec := scheduledShift()
	rec.ClockIn = tp(shiftStart.Add(20 * time.Minute))

	assert.Equal(t, StatusPresent, c.Classify(rec, shiftStart.Add(time.Hour)))
}

func TestClassify_BeforeShiftStartIsScheduled(t *testing.T) {
	c := NewClassifier(5, "ABS")

	assert.Equal(t, StatusScheduled, c.Classify(scheduledShift(), shiftStart.Add(-time.Minute)))
}

func TestClassify_GraceBoundary(t *testing.T) {
	c := NewClassifier(5, "ABS")
	rec := scheduledShift()

	// At exactly 5:00 elapsed the shift is still Scheduled
	assert.Equal(t, StatusScheduled, c.Classify(rec, shiftStart.Add(5*time.Minute)))

	// At 5:01 it becomes Late
	assert.Equal(t, StatusLate, c.Classify(rec, shiftStart.Add(5*time.Minute+time.Second)))
}

func TestClassify_NoRetroactiveLate(t *testing.T) {
	c := NewClassifier(5, "ABS")
	rec := scheduledShift()

	// Shift ended with no clock evidence: absence of data is not proof of
	// non-attendance, so the status falls back to Scheduled, not Late
	assert.Equal(t, StatusScheduled, c.Classify(rec, shiftEnd.Add(time.Minute)))
}

func TestClassify_OvernightShift(t *testing.T) {
	c := NewClassifier(5, "ABS")

	rec := ShiftAttendanceRecord{
		ShiftStart: tp(time.Date(2025, 3, 10, 22, 0, 0, 0, time.UTC)),
		ShiftEnd:   tp(time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)), // 07:00 next day
	}

	// 02:00 the next morning is inside the shift and past grace
	early := time.Date(2025, 3, 11, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, StatusLate, c.Classify(rec, early))

	// 08:00 the next morning is after the effective end
	after := time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, StatusScheduled, c.Classify(rec, after))
}

func TestClassify_NilScheduleDefaultsToScheduled(t *testing.T) {
	c := NewClassifier(5, "ABS")

	assert.Equal(t, StatusScheduled, c.Classify(ShiftAttendanceRecord{}, shiftStart))

	rec := ShiftAttendanceRecord{ShiftStart: tp(shiftStart)}
	assert.Equal(t, StatusScheduled, c.Classify(rec, shiftStart.Add(time.Hour)))
}

func TestClassify_IsPure(t *testing.T) {
	c := NewClassifier(5, "ABS")
	rec := scheduledShift()
	now := shiftStart.Add(10 * time.Minute)

	first := c.Classify(rec, now)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Classify(rec, now))
	}
}

func TestDetails_MinutesLateFromClockIn(t *testing.T) {
	c := NewClassifier(5, "ABS")

	rec := scheduledShift()
	rec.ClockIn = tp(shiftStart.Add(12 * time.Minute))

	details := c.Details(rec, shiftStart.Add(time.Hour))
	assert.Equal(t, StatusPresent, details.Status)
	assert.Equal(t, 12, details.MinutesLate)
	assert.Equal(t, 0, details.MinutesEarly)
}

func TestDetails_MinutesEarly(t *testing.T) {
	c := NewClassifier(5, "ABS")

	rec := scheduledShift()
	rec.ClockIn = tp(shiftStart.Add(-8 * time.Minute))

	details := c.Details(rec, shiftStart)
	assert.Equal(t, 8, details.MinutesEarly)
	assert.Equal(t, 0, details.MinutesLate)
}

func TestDetails_LateWithNoClockInMeasuresFromNow(t *testing.T) {
	c := NewClassifier(5, "ABS")

	details := c.Details(scheduledShift(), shiftStart.Add(17*time.Minute))
	assert.Equal(t, StatusLate, details.Status)
	assert.Equal(t, 17, details.MinutesLate)
}

func TestDetails_HasEndedAndOvernight(t *testing.T) {
	c := NewClassifier(5, "ABS")

	rec := ShiftAttendanceRecord{
		ShiftStart: tp(time.Date(2025, 3, 10, 22, 0, 0, 0, time.UTC)),
		ShiftEnd:   tp(time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)),
	}

	details := c.Details(rec, time.Date(2025, 3, 11, 7, 30, 0, 0, time.UTC))
	assert.True(t, details.IsOvernight)
	assert.True(t, details.HasEnded)

	details = c.Details(rec, time.Date(2025, 3, 11, 2, 0, 0, 0, time.UTC))
	assert.True(t, details.IsOvernight)
	assert.False(t, details.HasEnded)
}

func TestNewClassifier_Defaults(t *testing.T) {
	c := NewClassifier(0, "")
	rec := scheduledShift()

	// Default 5 minute grace applies
	assert.Equal(t, StatusScheduled, c.Classify(rec, shiftStart.Add(5*time.Minute)))
	assert.Equal(t, StatusLate, c.Classify(rec, shiftStart.Add(6*time.Minute)))

	// Default absence code applies
	rec.AbsenceCode = DefaultAbsenceCode
	assert.Equal(t, StatusAbsent, c.Classify(rec, shiftStart))
}

func TestParseClock(t *testing.T) {
	parsed := ParseClock("2025-03-10T08:00:00Z")
	require.NotNil(t, parsed)
	assert.Equal(t, shiftStart, parsed.UTC())

	parsed = ParseClock("2025-03-10 08:00")
	require.NotNil(t, parsed)
	assert.Equal(t, shiftStart, parsed.UTC())

	// Unparsable input degrades to nil, never an error
	assert.Nil(t, ParseClock("not a timestamp"))
	assert.Nil(t, ParseClock(""))
}
