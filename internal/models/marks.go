package models

import "math"

// InternalMark is a subject's internal assessment sheet.
type InternalMark struct {
	Subject    string `json:"subject"`
	Test1      int    `json:"test1"`
	Test2      int    `json:"test2"`
	Test3      int    `json:"test3"`
	Assignment int    `json:"assignment"`
	Total      int    `json:"total"`
	Max        int    `json:"max"`
}

// Percentage rounds Total over Max to a whole percent.
func (m InternalMark) Percentage() int {
	if m.Max <= 0 {
		return 0
	}
	return int(math.Round(float64(m.Total) / float64(m.Max) * 100))
}

// SemesterResult is a semester's grade point summary.
type SemesterResult struct {
	Semester string  `json:"semester"`
	SGPA     float64 `json:"sgpa"`
	CGPA     float64 `json:"cgpa"`
	Credits  int     `json:"credits"`
	Status   Status  `json:"status"`
}

// SubjectGrade is a graded course of the current semester.
type SubjectGrade struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Credits int    `json:"credits"`
	Grade   string `json:"grade"`
	Points  int    `json:"points"`
}

// MarksOverview carries the headline academic figures.
type MarksOverview struct {
	CGPA            float64  `json:"cgpa"`
	SGPA            float64  `json:"sgpa"`
	CreditsEarned   int      `json:"creditsEarned"`
	CreditsRequired int      `json:"creditsRequired"`
	Rank            int      `json:"rank"`
	ClassSize       int      `json:"classSize"`
	OverallProgress int      `json:"overallProgress"`
	YearsCompleted  int      `json:"yearsCompleted"`
	YearsTotal      int      `json:"yearsTotal"`
	Summary         []string `json:"summary"`
}
