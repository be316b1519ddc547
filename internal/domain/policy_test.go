package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidatePolicy(t *testing.T) {
	due := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	valid := &Policy{ID: "pol-1", Title: "Data Privacy Policy", Department: "Engineering", DueDate: due}
	assert.NoError(t, ValidatePolicy(valid))

	tests := []struct {
		name    string
		policy  *Policy
		errText string
	}{
		{"nil policy", nil, "cannot be nil"},
		{"missing id", &Policy{Title: "T", Department: "D", DueDate: due}, "ID is required"},
		{"missing title", &Policy{ID: "pol-1", Department: "D", DueDate: due}, "Title is required"},
		{"missing department", &Policy{ID: "pol-1", Title: "T", DueDate: due}, "Department is required"},
		{"zero due date", &Policy{ID: "pol-1", Title: "T", Department: "D"}, "DueDate is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePolicy(tt.policy)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestPolicyHasRules(t *testing.T) {
	var nilPolicy *Policy
	assert.False(t, nilPolicy.HasRules())

	assert.False(t, (&Policy{}).HasRules())
	assert.True(t, (&Policy{Rules: []string{"Encrypt personal data at rest."}}).HasRules())
}
