package db

// Shift is a scheduled staff shift as stored, with its clock events.
// Timestamps are kept as strings in stored form; the attendance service
// parses them at the edge, degrading unparsable values to absent.
type Shift struct {
	ID      string
	StaffID string
	Date    string // "2006-01-02"
	Start   string // "15:04"
	End     string // "15:04"; earlier than Start means overnight
	// ClockIn / ClockOut are RFC3339 timestamps, empty until clocked
	ClockIn  string
	ClockOut string
	// StatusCode is an explicit attendance status code (e.g. an absence
	// code), empty when unset
	StatusCode string
}
