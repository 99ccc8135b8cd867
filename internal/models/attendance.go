package models

// SubjectAttendance is a stored per-subject attendance record. Percentage is
// kept as recorded and never recomputed from Present and Total.
type SubjectAttendance struct {
	Name       string `json:"name"`
	Present    int    `json:"present"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
}

// AttendanceEntry is a single day's mark for a subject.
type AttendanceEntry struct {
	Date    string `json:"date"`
	Subject string `json:"subject"`
	Status  Status `json:"status"`
}

// AttendanceTotals are the term's class counters.
type AttendanceTotals struct {
	TotalClasses int `json:"totalClasses"`
	Attended     int `json:"attended"`
}

// MinimumAttendance is the percentage below which a subject is flagged.
const MinimumAttendance = 75
