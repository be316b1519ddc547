package domain

import (
	"fmt"
	"time"
)

// DepartmentAll is the sentinel department for policies that apply company-wide.
const DepartmentAll = "All"

// Policy represents a compliance requirement with a due date and optional
// structured rule statements. Owned by the external policy store.
type Policy struct {
	ID          string
	Title       string
	Department  string
	DueDate     time.Time
	Description string
	Category    string
	Rules       []string
}

// HasRules reports whether the policy carries structured rule statements.
func (p *Policy) HasRules() bool {
	return p != nil && len(p.Rules) > 0
}

// CategoryRule is an HR-authored rule statement filed under a compliance
// category (hr, ai, it, finance).
type CategoryRule struct {
	ID           string
	Category     string
	Text         string
	DisplayOrder int
}

// ValidatePolicy validates a Policy
func ValidatePolicy(p *Policy) error {
	if p == nil {
		return fmt.Errorf("policy cannot be nil")
	}

	if p.ID == "" {
		return fmt.Errorf("policy ID is required")
	}

	if p.Title == "" {
		return fmt.Errorf("policy Title is required")
	}

	if p.Department == "" {
		return fmt.Errorf("policy Department is required")
	}

	if p.DueDate.IsZero() {
		return fmt.Errorf("policy DueDate is required")
	}

	return nil
}
