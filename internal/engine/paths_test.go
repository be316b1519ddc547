package engine

import (
	"testing"

	"github.com/meridianhr/pathfinder/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pathsCatalog() []domain.CatalogItem {
	return []domain.CatalogItem{
		{ID: "c1", Title: "Engineering Fundamentals", Tags: []string{"Engineering"}, Level: domain.LevelBeginner},
		{ID: "c2", Title: "Docker and Containerization", Tags: []string{"DevOps", "Engineering"}, Level: domain.LevelIntermediate},
		{ID: "c3", Title: "Advanced React Patterns", Tags: []string{"React", "Engineering"}, Level: domain.LevelAdvanced},
		{ID: "c4", Title: "Leadership Essentials", Tags: []string{"Leadership", "Management"}, Level: domain.LevelIntermediate},
		{ID: "c5", Title: "Cloud Architecture", Tags: []string{"Cloud", "Engineering"}, Level: domain.LevelAdvanced},
		{ID: "c6", Title: "HR Compliance Basics", Tags: []string{"HR", "Compliance"}, Level: domain.LevelBeginner},
	}
}

func stepIDs(path domain.LearningPath) []string {
	ids := make([]string, 0, len(path.Steps))
	for _, s := range path.Steps {
		ids = append(ids, s.Item.ID)
	}
	return ids
}

func TestEffectiveRole(t *testing.T) {
	tests := []struct {
		name    string
		profile *domain.Profile
		want    domain.Role
	}{
		{
			name:    "nil profile defaults to employee",
			profile: nil,
			want:    domain.RoleEmployee,
		},
		{
			name:    "no preferences keeps stored role",
			profile: &domain.Profile{Role: domain.RoleManager},
			want:    domain.RoleManager,
		},
		{
			name: "engineering manager keyword wins",
			profile: &domain.Profile{
				Role:        domain.RoleEmployee,
				Preferences: &domain.CareerPreferences{CurrentRole: "Engineering Manager"},
			},
			want: domain.RoleManager,
		},
		{
			name: "tech lead maps to manager",
			profile: &domain.Profile{
				Role:        domain.RoleEmployee,
				Preferences: &domain.CareerPreferences{CurrentRole: "Tech Lead"},
			},
			want: domain.RoleManager,
		},
		{
			name: "senior engineer maps to employee",
			profile: &domain.Profile{
				Role:        domain.RoleManager,
				Preferences: &domain.CareerPreferences{CurrentRole: "Senior Software Engineer"},
			},
			want: domain.RoleEmployee,
		},
		{
			name: "human resources maps to hr",
			profile: &domain.Profile{
				Role:        domain.RoleEmployee,
				Preferences: &domain.CareerPreferences{CurrentRole: "Human Resources Specialist"},
			},
			want: domain.RoleHR,
		},
		{
			name: "unknown current role keeps stored role",
			profile: &domain.Profile{
				Role:        domain.RoleManager,
				Preferences: &domain.CareerPreferences{CurrentRole: "Chief Vibes Officer"},
			},
			want: domain.RoleManager,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveRole(tt.profile))
		})
	}
}

func TestBuildPaths_EmployeeEngineering(t *testing.T) {
	p := &domain.Profile{Role: domain.RoleEmployee, Department: "Engineering"}

	paths := BuildPaths(p, pathsCatalog(), DefaultScoreWeights())

	require.Len(t, paths, 2)
	assert.Equal(t, "Foundation Skills Path", paths[0].Name)
	assert.Equal(t, "Advanced Skills Path", paths[1].Name)

	// Foundation holds non-advanced relevant items (c6 qualifies through the
	// "basics" keyword), Advanced holds non-beginner ones, and no item
	// appears in both.
	assert.Equal(t, []string{"c1", "c2", "c6"}, stepIDs(paths[0]))
	assert.Equal(t, []string{"c3", "c5"}, stepIDs(paths[1]))

	for i, step := range paths[0].Steps {
		assert.Equal(t, i+1, step.Order)
	}
}

func TestBuildPaths_ManagerEngineering(t *testing.T) {
	p := &domain.Profile{Role: domain.RoleManager, Department: "Engineering"}

	paths := BuildPaths(p, pathsCatalog(), DefaultScoreWeights())

	require.Len(t, paths, 2)
	assert.Equal(t, "Leadership Development Path", paths[0].Name)
	assert.Equal(t, []string{"c4"}, stepIDs(paths[0]))

	assert.Equal(t, "Technical Excellence Path", paths[1].Name)
	assert.Equal(t, []string{"c2", "c5"}, stepIDs(paths[1]))
}

func TestBuildPaths_ManagerNonTechnicalSkipsTechnicalPath(t *testing.T) {
	p := &domain.Profile{Role: domain.RoleManager, Department: "Sales"}

	paths := BuildPaths(p, pathsCatalog(), DefaultScoreWeights())

	require.Len(t, paths, 1)
	assert.Equal(t, "Leadership Development Path", paths[0].Name)
}

func TestBuildPaths_HR(t *testing.T) {
	p := &domain.Profile{Role: domain.RoleHR, Department: "HR"}

	paths := BuildPaths(p, pathsCatalog(), DefaultScoreWeights())

	require.Len(t, paths, 1)
	assert.Equal(t, "HR Excellence Path", paths[0].Name)
	assert.Contains(t, stepIDs(paths[0]), "c6")
}

func TestBuildPaths_FallbackToTopScored(t *testing.T) {
	p := &domain.Profile{
		Role:       domain.RoleEmployee,
		Department: "Finance",
		Skills:     []string{"React"},
	}
	catalog := []domain.CatalogItem{
		{ID: "x1", Title: "Advanced React Patterns", Tags: []string{"React"}, Level: domain.LevelAdvanced},
	}

	paths := BuildPaths(p, catalog, DefaultScoreWeights())

	require.Len(t, paths, 1)
	assert.Equal(t, "Recommended Learning Path", paths[0].Name)
	assert.Equal(t, []string{"x1"}, stepIDs(paths[0]))
}

func TestBuildPaths_NilProfile(t *testing.T) {
	assert.Nil(t, BuildPaths(nil, pathsCatalog(), DefaultScoreWeights()))
}

func TestBuildPaths_NoRelevantContent(t *testing.T) {
	p := &domain.Profile{Role: domain.RoleEmployee, Department: "Finance"}
	catalog := []domain.CatalogItem{
		{ID: "z1", Title: "Watercolor Painting", Tags: []string{"Art"}, Level: domain.LevelBeginner},
	}

	assert.Nil(t, BuildPaths(p, catalog, DefaultScoreWeights()))
}
