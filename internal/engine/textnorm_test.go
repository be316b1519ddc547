package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "leave balance", Normalize("  Leave Balance  "))
	assert.Equal(t, "", Normalize("   "))
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "drops stopwords and punctuation",
			in:   "What is my leave balance?",
			want: []string{"leave", "balance"},
		},
		{
			name: "keeps numbers",
			in:   "policy due 2026-08-29",
			want: []string{"policy", "due", "2026", "08", "29"},
		},
		{
			name: "empty input",
			in:   "",
			want: []string{},
		},
		{
			name: "only stopwords",
			in:   "what is the and of",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.in))
		})
	}
}

func TestContainsFold(t *testing.T) {
	assert.True(t, containsFold("Python for Engineering", "engineering"))
	assert.True(t, containsFold("DOCKER", "docker"))
	assert.False(t, containsFold("Python", "Go"))
	assert.False(t, containsFold("anything", ""))
	assert.False(t, containsFold("anything", "   "))
}

func TestAnyContainsFold(t *testing.T) {
	assert.True(t, anyContainsFold([]string{"AI", "Ethics"}, "ethics"))
	assert.False(t, anyContainsFold([]string{"AI", "Ethics"}, "sales"))
	assert.False(t, anyContainsFold(nil, "ai"))
}
