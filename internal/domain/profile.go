package domain

import (
	"fmt"
	"time"
)

// Role represents an employee's portal role
type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleHR       Role = "hr"
)

// Certification represents a certification held by an employee
type Certification struct {
	Title     string
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt *time.Time
}

// CareerPreferences holds the employee's stated career direction.
// CurrentRole is free text and may differ from the stored Role; the engine
// maps it to an effective role for recommendation purposes.
type CareerPreferences struct {
	Goals          []string
	PreferredRoles []string
	CurrentRole    string
}

// Profile is a read-only snapshot of an employee record. The engine never
// mutates it; ownership stays with the user-record store.
type Profile struct {
	ID             string
	Name           string
	Role           Role
	Department     string
	Skills         []string
	Interests      []string
	Certifications []Certification
	Preferences    *CareerPreferences
	LeaveBalance   int
}

// Goals returns the profile's career goals, or nil when no preferences are set.
func (p *Profile) Goals() []string {
	if p == nil || p.Preferences == nil {
		return nil
	}
	return p.Preferences.Goals
}

// ValidateProfile validates a Profile snapshot
func ValidateProfile(p *Profile) error {
	if p == nil {
		return fmt.Errorf("profile cannot be nil")
	}

	if p.ID == "" {
		return fmt.Errorf("profile ID is required")
	}

	if p.Department == "" {
		return fmt.Errorf("profile Department is required")
	}

	if !isValidRole(p.Role) {
		return fmt.Errorf("profile Role is invalid: %s", p.Role)
	}

	return nil
}

// isValidRole checks if a Role is valid
func isValidRole(r Role) bool {
	switch r {
	case RoleEmployee, RoleManager, RoleHR:
		return true
	}
	return false
}
