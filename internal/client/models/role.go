// Package models defines client-side data models for the Student Diary
// backend: identities, subjects, grades, tasks, calendar entries,
// assignments and forum messages.
package models

import "strings"

// Role is the account kind chosen at signup. It stays fixed for the
// lifetime of a session.
type Role string

const (
	RoleUnknown Role = ""
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAlumni  Role = "alumni"
)

// Roles lists every valid role in display order.
var Roles = []Role{RoleStudent, RoleTeacher, RoleAlumni}

// ParseRole normalizes s and returns the matching role, or RoleUnknown.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleStudent:
		return RoleStudent
	case RoleTeacher:
		return RoleTeacher
	case RoleAlumni:
		return RoleAlumni
	default:
		return RoleUnknown
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return ParseRole(string(r)) != RoleUnknown
}

func (r Role) String() string {
	if r == RoleUnknown {
		return "unknown"
	}
	return string(r)
}

// AdditionalInfoLabel is the prompt for the role-specific signup field.
func (r Role) AdditionalInfoLabel() string {
	switch r {
	case RoleTeacher:
		return "Subject"
	case RoleStudent:
		return "Student ID"
	default:
		return "Graduation Year"
	}
}
