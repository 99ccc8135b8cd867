package models

import "strings"

// Status is the shared lifecycle vocabulary of portal records.
type Status string

const (
	StatusPending    Status = "pending"
	StatusSubmitted  Status = "submitted"
	StatusGraded     Status = "graded"
	StatusInProgress Status = "in-progress"
	StatusResolved   Status = "resolved"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
	StatusActive     Status = "active"
	StatusCompleted  Status = "completed"
	StatusOngoing    Status = "ongoing"
	StatusPresent    Status = "present"
	StatusAbsent     Status = "absent"
)

// Tone is a semantic colour applied to badges, progress bars and figures.
type Tone string

const (
	ToneSuccess     Tone = "success"
	ToneWarning     Tone = "warning"
	ToneAccent      Tone = "accent"
	ToneDestructive Tone = "destructive"
	ToneMuted       Tone = "muted"
	TonePrimary     Tone = "primary"
)

// Badge is the presentation of a status.
type Badge struct {
	Label string `json:"label"`
	Tone  Tone   `json:"tone"`
	Icon  string `json:"icon,omitempty"`
}

var statusBadges = map[Status]Badge{
	StatusPending:    {Label: "Pending", Tone: ToneWarning, Icon: "clock"},
	StatusSubmitted:  {Label: "Submitted", Tone: ToneAccent, Icon: "check-circle"},
	StatusGraded:     {Label: "Graded", Tone: ToneSuccess, Icon: "check-circle"},
	StatusInProgress: {Label: "In Progress", Tone: ToneAccent, Icon: "alert-circle"},
	StatusResolved:   {Label: "Resolved", Tone: ToneSuccess, Icon: "check-circle"},
	StatusApproved:   {Label: "Approved", Tone: ToneSuccess, Icon: "check-circle"},
	StatusRejected:   {Label: "Rejected", Tone: ToneDestructive, Icon: "x-circle"},
	StatusActive:     {Label: "Active", Tone: ToneSuccess, Icon: "check-circle"},
	StatusCompleted:  {Label: "Completed", Tone: ToneSuccess},
	StatusOngoing:    {Label: "Ongoing", Tone: ToneMuted},
	StatusPresent:    {Label: "Present", Tone: ToneSuccess},
	StatusAbsent:     {Label: "Absent", Tone: ToneDestructive},
}

// Known reports whether the status has a dedicated presentation.
func Known(status Status) bool {
	_, ok := statusBadges[status]
	return ok
}

// BadgeFor maps a status to its badge. Unknown statuses render muted with the
// raw value as label.
func BadgeFor(status Status) Badge {
	if badge, ok := statusBadges[status]; ok {
		return badge
	}
	return Badge{Label: strings.ReplaceAll(string(status), "-", " "), Tone: ToneMuted, Icon: "circle"}
}

// LabelBadge is a neutral tag such as an event category.
func LabelBadge(label string) Badge {
	return Badge{Label: label, Tone: ToneMuted}
}

// PercentageTone grades attendance style percentages: 85 and above is healthy,
// 75 and above is a warning, anything lower is below requirement.
func PercentageTone(percentage int) Tone {
	switch {
	case percentage >= 85:
		return ToneSuccess
	case percentage >= 75:
		return ToneWarning
	default:
		return ToneDestructive
	}
}

// ScoreTone grades internal assessment percentages.
func ScoreTone(percentage int) Tone {
	switch {
	case percentage >= 85:
		return ToneSuccess
	case percentage >= 70:
		return TonePrimary
	default:
		return ToneWarning
	}
}

// GradeTone colours letter grades.
func GradeTone(grade string) Tone {
	switch grade {
	case "A+", "O":
		return ToneSuccess
	case "A":
		return ToneAccent
	case "B+", "B":
		return TonePrimary
	default:
		return ToneMuted
	}
}
