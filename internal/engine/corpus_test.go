package engine

import (
	"testing"
	"time"

	"github.com/meridianhr/pathfinder/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCorpus_NeverEmpty(t *testing.T) {
	c := BuildCorpus(nil, CorpusInput{})

	assert.NotEmpty(t, c.Documents)

	// Each category is represented even with no source data.
	categories := make(map[domain.DocumentCategory]bool)
	for _, d := range c.Documents {
		categories[d.Category] = true
	}
	assert.True(t, categories[domain.CategoryLeave])
	assert.True(t, categories[domain.CategoryCompliance])
	assert.True(t, categories[domain.CategoryLearning])
	assert.True(t, categories[domain.CategoryWellness])
	assert.True(t, categories[domain.CategoryCareer])
	assert.True(t, categories[domain.CategoryGeneral])
}

func TestBuildCorpus_LeaveBalanceDocumentFirst(t *testing.T) {
	c := BuildCorpus(nil, CorpusInput{LeaveBalance: 12})

	require.NotEmpty(t, c.Documents)
	first := c.Documents[0]
	assert.Equal(t, domain.CategoryLeave, first.Category)
	assert.Equal(t, "You currently have 12 leave days remaining.", first.Response)
	assert.Equal(t, 12, c.LeaveBalance)
}

func TestBuildCorpus_PolicyCap(t *testing.T) {
	policies := make([]domain.Policy, 0, 12)
	for i := 0; i < 12; i++ {
		policies = append(policies, domain.Policy{
			ID:      string(rune('a' + i)),
			Title:   "Policy",
			DueDate: time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
		})
	}

	c := BuildCorpus(nil, CorpusInput{Policies: policies})

	count := 0
	for _, d := range c.Documents {
		if d.Category == domain.CategoryCompliance {
			count++
		}
	}
	assert.Equal(t, 10, count)
	// The raw policy list is kept intact for the semantic retriever.
	assert.Len(t, c.Policies, 12)
}

func TestBuildCorpus_LeaveRequestCap(t *testing.T) {
	requests := make([]domain.LeaveRequest, 0, 8)
	for i := 0; i < 8; i++ {
		requests = append(requests, domain.LeaveRequest{
			ID:       string(rune('a' + i)),
			FromDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			ToDate:   time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
			Status:   domain.LeaveStatusPending,
		})
	}

	c := BuildCorpus(nil, CorpusInput{LeaveRequests: requests})

	leaveDocs := 0
	for _, d := range c.Documents {
		if d.Category == domain.CategoryLeave {
			leaveDocs++
		}
	}
	// Balance document plus at most five request documents.
	assert.Equal(t, 6, leaveDocs)
}

func TestBuildCorpus_RuleDocumentsSkipBlankText(t *testing.T) {
	c := BuildCorpus(nil, CorpusInput{CategoryRules: []domain.CategoryRule{
		{ID: "r1", Category: "hr", Text: "Leave needs approval."},
		{ID: "r2", Category: "hr", Text: "   "},
	}})

	found := 0
	for _, d := range c.Documents {
		if d.Response == "Leave needs approval." {
			found++
		}
	}
	assert.Equal(t, 1, found)
}

func TestLeaveBalanceResponse(t *testing.T) {
	assert.Equal(t, "You currently have 0 leave days remaining.", LeaveBalanceResponse(0))
	assert.Equal(t, "You currently have 25 leave days remaining.", LeaveBalanceResponse(25))
}
