package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateProfile(t *testing.T) {
	valid := &Profile{ID: "emp-1", Role: RoleEmployee, Department: "Engineering"}
	assert.NoError(t, ValidateProfile(valid))

	tests := []struct {
		name    string
		profile *Profile
		errText string
	}{
		{"nil profile", nil, "cannot be nil"},
		{"missing id", &Profile{Role: RoleEmployee, Department: "Engineering"}, "ID is required"},
		{"missing department", &Profile{ID: "emp-1", Role: RoleEmployee}, "Department is required"},
		{"invalid role", &Profile{ID: "emp-1", Role: "wizard", Department: "Engineering"}, "Role is invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfile(tt.profile)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestProfileGoals(t *testing.T) {
	var nilProfile *Profile
	assert.Nil(t, nilProfile.Goals())

	assert.Nil(t, (&Profile{}).Goals())

	p := &Profile{Preferences: &CareerPreferences{Goals: []string{"AI", "Leadership"}}}
	assert.Equal(t, []string{"AI", "Leadership"}, p.Goals())
}

func TestRoleConstants(t *testing.T) {
	assert.Equal(t, "employee", string(RoleEmployee))
	assert.Equal(t, "manager", string(RoleManager))
	assert.Equal(t, "hr", string(RoleHR))
}
