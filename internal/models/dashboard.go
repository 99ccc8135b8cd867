package models

// DashboardStat is a headline figure on the dashboard.
type DashboardStat struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
	Tone  Tone   `json:"tone"`
}

// AssignmentDigest is the short assignment row on the dashboard.
type AssignmentDigest struct {
	Title    string `json:"title"`
	Subject  string `json:"subject"`
	Deadline string `json:"deadline"`
	Status   Status `json:"status"`
}

// EventDigest is the short event row on the dashboard.
type EventDigest struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Type  string `json:"type"`
}

// SubjectPercentage is an attendance figure for a subject.
type SubjectPercentage struct {
	Subject    string `json:"subject"`
	Percentage int    `json:"percentage"`
}

// DashboardSummary holds the dashboard's own fixtures. It is not derived from
// the other pages.
type DashboardSummary struct {
	Greeting          string              `json:"greeting"`
	Stats             []DashboardStat     `json:"stats"`
	RecentAssignments []AssignmentDigest  `json:"recentAssignments"`
	UpcomingEvents    []EventDigest       `json:"upcomingEvents"`
	Attendance        []SubjectPercentage `json:"attendance"`
}
