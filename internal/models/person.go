package models

import (
	"strings"
	"unicode"
)

// PersonKind partitions the Connect directory.
type PersonKind string

const (
	PersonStudent PersonKind = "students"
	PersonTeacher PersonKind = "teachers"
	PersonAlumni  PersonKind = "alumni"
)

// PersonKinds lists directory partitions in tab order.
var PersonKinds = []PersonKind{PersonStudent, PersonTeacher, PersonAlumni}

// Person is a directory entry. Which optional fields are set depends on Kind.
type Person struct {
	ID             int        `json:"id"`
	Kind           PersonKind `json:"kind"`
	Name           string     `json:"name"`
	Role           string     `json:"role"`
	Department     string     `json:"department"`
	Location       string     `json:"location"`
	Connected      bool       `json:"connected"`
	Year           string     `json:"year,omitempty"`
	Interests      []string   `json:"interests,omitempty"`
	Specialization string     `json:"specialization,omitempty"`
	Experience     string     `json:"experience,omitempty"`
	Batch          string     `json:"batch,omitempty"`
	CurrentRole    string     `json:"currentRole,omitempty"`
}

// Initials takes the first letter of every word of the name.
func (p Person) Initials() string {
	var b strings.Builder
	for _, word := range strings.Fields(p.Name) {
		for _, r := range word {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	return b.String()
}

// Matches reports whether the query occurs in the name, department or interests.
func (p Person) Matches(query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), query) || strings.Contains(strings.ToLower(p.Department), query) {
		return true
	}
	for _, interest := range p.Interests {
		if strings.Contains(strings.ToLower(interest), query) {
			return true
		}
	}
	return false
}
