package engine

import (
	"testing"

	"github.com/meridianhr/pathfinder/internal/domain"
	"github.com/stretchr/testify/assert"
)

func engineeringProfile() *domain.Profile {
	return &domain.Profile{
		ID:         "emp-1",
		Name:       "John Employee",
		Role:       domain.RoleEmployee,
		Department: "Engineering",
		Skills:     []string{"Python", "Docker"},
		Interests:  []string{"AI"},
		Certifications: []domain.Certification{
			{Title: "Kubernetes"},
		},
		Preferences: &domain.CareerPreferences{
			Goals: []string{"Leadership"},
		},
	}
}

func TestScoreItem(t *testing.T) {
	w := DefaultScoreWeights()

	tests := []struct {
		name string
		item domain.CatalogItem
		want int
	}{
		{
			name: "department in title",
			item: domain.CatalogItem{Title: "Engineering Basics"},
			want: 2,
		},
		{
			name: "skill in title",
			item: domain.CatalogItem{Title: "Python Deep Dive"},
			want: 2,
		},
		{
			name: "skill in tag",
			item: domain.CatalogItem{Title: "Container Orchestration", Tags: []string{"Docker"}},
			want: 3,
		},
		{
			name: "interest in title",
			item: domain.CatalogItem{Title: "AI Foundations"},
			want: 2,
		},
		{
			name: "certification in title",
			item: domain.CatalogItem{Title: "Kubernetes Operations"},
			want: 1,
		},
		{
			name: "career goal in title",
			item: domain.CatalogItem{Title: "Leadership 101"},
			want: 2,
		},
		{
			name: "no relevance",
			item: domain.CatalogItem{Title: "Watercolor Painting", Tags: []string{"Art"}},
			want: 0,
		},
		{
			name: "signals stack additively",
			item: domain.CatalogItem{Title: "Python for Engineering", Tags: []string{"Docker", "AI"}},
			want: 2 + 2 + 3 + 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreItem(engineeringProfile(), tt.item, w))
		})
	}
}

func TestScoreItem_CaseInsensitive(t *testing.T) {
	p := &domain.Profile{Department: "engineering", Skills: []string{"PYTHON"}}
	item := domain.CatalogItem{Title: "python for ENGINEERING"}

	assert.Equal(t, 4, ScoreItem(p, item, DefaultScoreWeights()))
}

func TestScoreItem_NilProfile(t *testing.T) {
	assert.Equal(t, 0, ScoreItem(nil, domain.CatalogItem{Title: "Anything"}, DefaultScoreWeights()))
}

func TestRankLearning_TopFiveSortedDescending(t *testing.T) {
	p := engineeringProfile()
	catalog := []domain.CatalogItem{
		{ID: "a", Title: "Watercolor Painting"},
		{ID: "b", Title: "Python for Engineering", Tags: []string{"Docker"}},
		{ID: "c", Title: "AI Foundations"},
		{ID: "d", Title: "Engineering Basics"},
		{ID: "e", Title: "Leadership 101"},
		{ID: "f", Title: "Kubernetes Operations"},
		{ID: "g", Title: "Python Deep Dive"},
	}

	top := RankLearning(p, catalog, DefaultScoreWeights())

	assert.Len(t, top, 5)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Score, top[i].Score)
	}
	for _, item := range top {
		assert.Positive(t, item.Score)
		assert.NotEqual(t, "a", item.Item.ID)
	}
}

func TestRankLearning_TiesPreserveCatalogOrder(t *testing.T) {
	p := &domain.Profile{Department: "Engineering"}
	catalog := []domain.CatalogItem{
		{ID: "first", Title: "Engineering One"},
		{ID: "second", Title: "Engineering Two"},
	}

	top := RankLearning(p, catalog, DefaultScoreWeights())

	assert.Len(t, top, 2)
	assert.Equal(t, "first", top[0].Item.ID)
	assert.Equal(t, "second", top[1].Item.ID)
}

func TestRankLearning_Deterministic(t *testing.T) {
	p := engineeringProfile()
	catalog := []domain.CatalogItem{
		{ID: "b", Title: "Python for Engineering", Tags: []string{"Docker"}},
		{ID: "c", Title: "AI Foundations"},
		{ID: "d", Title: "Engineering Basics"},
	}

	first := RankLearning(p, catalog, DefaultScoreWeights())
	second := RankLearning(p, catalog, DefaultScoreWeights())

	assert.Equal(t, first, second)
}

func TestRankLearning_EmptyCatalog(t *testing.T) {
	assert.Empty(t, RankLearning(engineeringProfile(), nil, DefaultScoreWeights()))
}

func TestSkillGaps(t *testing.T) {
	p := &domain.Profile{
		Department: "Engineering",
		Skills:     []string{"docker"},
	}
	top := []domain.ScoredItem{
		{Item: domain.CatalogItem{Tags: []string{"Docker", "AI", "Ethics"}}},
		{Item: domain.CatalogItem{Tags: []string{"React", "ai"}}},
	}

	gaps := SkillGaps(p, top)

	// Docker is excluded case-insensitively, duplicates collapse, output is
	// sorted, and the department counts as a candidate only when missing.
	assert.Equal(t, []string{"AI", "Engineering", "Ethics", "React"}, gaps)
}

func TestSkillGaps_CapAtFifteen(t *testing.T) {
	tags := []string{
		"t01", "t02", "t03", "t04", "t05", "t06", "t07", "t08", "t09", "t10",
		"t11", "t12", "t13", "t14", "t15", "t16", "t17", "t18",
	}
	top := []domain.ScoredItem{{Item: domain.CatalogItem{Tags: tags}}}

	gaps := SkillGaps(&domain.Profile{Department: "Zed"}, top)

	assert.Len(t, gaps, 15)
}

func TestSkillGaps_NilProfile(t *testing.T) {
	top := []domain.ScoredItem{{Item: domain.CatalogItem{Tags: []string{"AI"}}}}
	assert.Equal(t, []string{"AI"}, SkillGaps(nil, top))
}

func TestSuggestedCertifications(t *testing.T) {
	tests := []struct {
		name       string
		role       domain.Role
		department string
		want       []string
	}{
		{
			name:       "exact match",
			role:       domain.RoleEmployee,
			department: "Engineering",
			want:       []string{"AWS Certified Developer", "Google Cloud Professional", "Kubernetes (CKA)"},
		},
		{
			name:       "manager sales",
			role:       domain.RoleManager,
			department: "Sales",
			want:       []string{"Sales Leadership", "Executive Presence"},
		},
		{
			name:       "department fallback on unknown role pairing",
			role:       domain.RoleHR,
			department: "Engineering",
			want:       []string{"AWS Certified Developer", "Google Cloud Professional", "Kubernetes (CKA)"},
		},
		{
			name:       "unknown department",
			role:       domain.RoleEmployee,
			department: "Logistics",
			want:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SuggestedCertifications(tt.role, tt.department))
		})
	}
}
