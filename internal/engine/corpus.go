package engine

import (
	"fmt"
	"strings"

	"github.com/meridianhr/pathfinder/internal/domain"
)

const (
	maxCorpusPolicies      = 10
	maxCorpusLeaveRequests = 5
)

// CorpusInput carries the dashboard data sources the corpus is built from.
// All slices are read-only snapshots supplied by the caller's stores.
type CorpusInput struct {
	Policies      []domain.Policy
	TopLearning   []domain.ScoredItem
	LeaveBalance  int
	LeaveRequests []domain.LeaveRequest
	CategoryRules []domain.CategoryRule
}

// Corpus is the per-request set of searchable documents plus the raw policy
// data the semantic retriever may re-rank. Transient; never persisted.
type Corpus struct {
	Documents    []domain.Document
	Policies     []domain.Policy
	LeaveBalance int

	// PolicyVectors holds cached policy embeddings keyed by policy ID,
	// when the vector cache has them. Missing entries are embedded on
	// demand by the semantic retriever.
	PolicyVectors map[string][]float32
}

// BuildCorpus assembles the retrieval corpus for one profile. Every source
// category contributes at least one document; empty categories emit a
// placeholder so the category stays matchable and the corpus is never empty.
//
// The leave-balance document is always the first leave-category document, a
// contract the retriever's exact-phrase shortcut relies on.
func BuildCorpus(p *domain.Profile, in CorpusInput) *Corpus {
	c := &Corpus{
		Policies:     in.Policies,
		LeaveBalance: in.LeaveBalance,
	}

	c.Documents = append(c.Documents, leaveDocuments(in.LeaveBalance, in.LeaveRequests)...)
	c.Documents = append(c.Documents, policyDocuments(p, in.Policies)...)
	c.Documents = append(c.Documents, learningDocuments(p, in.TopLearning)...)
	c.Documents = append(c.Documents, wellnessDocuments()...)
	c.Documents = append(c.Documents, careerDocument(p))
	c.Documents = append(c.Documents, ruleDocuments(in.CategoryRules)...)
	c.Documents = append(c.Documents, faqDocuments()...)

	return c
}

func leaveDocuments(balance int, requests []domain.LeaveRequest) []domain.Document {
	docs := []domain.Document{{
		SearchText: "leave balance remaining days time off vacation holiday",
		Response:   LeaveBalanceResponse(balance),
		Category:   domain.CategoryLeave,
	}}

	if len(requests) == 0 {
		docs = append(docs, domain.Document{
			SearchText: "leave request status pending approved",
			Response:   "You have no recent leave requests.",
			Category:   domain.CategoryLeave,
		})
		return docs
	}

	if len(requests) > maxCorpusLeaveRequests {
		requests = requests[:maxCorpusLeaveRequests]
	}

	summary := leaveRequestSummary(requests)
	for _, r := range requests {
		docs = append(docs, domain.Document{
			SearchText: strings.Join([]string{
				"leave request", r.Reason, string(r.Status),
				r.FromDate.Format("2006-01-02"), r.ToDate.Format("2006-01-02"),
			}, " "),
			Response: summary,
			Category: domain.CategoryLeave,
		})
	}
	return docs
}

func policyDocuments(p *domain.Profile, policies []domain.Policy) []domain.Document {
	if len(policies) == 0 {
		return []domain.Document{{
			SearchText: "compliance policy due date requirement",
			Response:   "No compliance policies are currently assigned to you.",
			Category:   domain.CategoryCompliance,
		}}
	}

	if len(policies) > maxCorpusPolicies {
		policies = policies[:maxCorpusPolicies]
	}

	response := policySummary(p, policies)
	docs := make([]domain.Document, 0, len(policies))
	for _, pol := range policies {
		docs = append(docs, domain.Document{
			SearchText: strings.Join([]string{
				pol.Title, pol.Description, pol.Department, pol.DueDate.Format("2006-01-02"),
			}, " "),
			Response: response,
			Category: domain.CategoryCompliance,
		})
	}
	return docs
}

func learningDocuments(p *domain.Profile, top []domain.ScoredItem) []domain.Document {
	if len(top) == 0 {
		return []domain.Document{{
			SearchText: "course learning training recommendation skill",
			Response:   "No learning recommendations are available yet. Add skills and interests to your profile to get tailored courses.",
			Category:   domain.CategoryLearning,
		}}
	}

	if len(top) > maxTopLearning {
		top = top[:maxTopLearning]
	}

	response := learningSummary(p, top)
	docs := make([]domain.Document, 0, len(top))
	for _, item := range top {
		docs = append(docs, domain.Document{
			SearchText: strings.Join(append([]string{item.Item.Title, item.Item.Description}, item.Item.Tags...), " "),
			Response:   response,
			Category:   domain.CategoryLearning,
		})
	}
	return docs
}

func wellnessDocuments() []domain.Document {
	docs := make([]domain.Document, 0, len(wellnessSnippets))
	for _, s := range wellnessSnippets {
		docs = append(docs, domain.Document{
			SearchText: strings.Join([]string{s.Title, s.Content, s.Category}, " "),
			Response:   s.Title + ": " + s.Content,
			Category:   domain.CategoryWellness,
		})
	}
	return docs
}

func careerDocument(p *domain.Profile) domain.Document {
	role := resolveCurrentRole(p)
	return domain.Document{
		SearchText: strings.Join([]string{"career growth promotion next role roadmap", role.Title, role.Department}, " "),
		Response: fmt.Sprintf(
			"Your current role is %s. Check the Career Roadmap section to see the most common, similar, and pivot paths from here.",
			role.Title),
		Category: domain.CategoryCareer,
	}
}

func ruleDocuments(rules []domain.CategoryRule) []domain.Document {
	docs := make([]domain.Document, 0, len(rules))
	for _, r := range rules {
		text := strings.TrimSpace(r.Text)
		if text == "" {
			continue
		}
		docs = append(docs, domain.Document{
			SearchText: r.Category + " " + text,
			Response:   text,
			Category:   domain.CategoryCompliance,
		})
	}
	return docs
}

func faqDocuments() []domain.Document {
	docs := make([]domain.Document, 0, len(faqEntries))
	for _, f := range faqEntries {
		docs = append(docs, domain.Document{
			SearchText: f.Phrase,
			Response:   f.Answer,
			Category:   domain.CategoryGeneral,
		})
	}
	return docs
}

// LeaveBalanceResponse renders the live leave balance answer.
func LeaveBalanceResponse(balance int) string {
	return fmt.Sprintf("You currently have %d leave days remaining.", balance)
}

func leaveRequestSummary(requests []domain.LeaveRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your recent leave requests (%d):", len(requests))
	for _, r := range requests {
		fmt.Fprintf(&b, " %s to %s (%s);",
			r.FromDate.Format("2006-01-02"), r.ToDate.Format("2006-01-02"), r.Status)
	}
	return strings.TrimSuffix(b.String(), ";")
}

func policySummary(p *domain.Profile, policies []domain.Policy) string {
	titles := make([]string, 0, len(policies))
	for _, pol := range policies {
		titles = append(titles, fmt.Sprintf("'%s' (due %s)", pol.Title, pol.DueDate.Format("2006-01-02")))
	}

	who := "you"
	if p != nil {
		who = fmt.Sprintf("your role as %s in %s", p.Role, p.Department)
	}
	return fmt.Sprintf(
		"Based on %s, these compliance policies apply: %s. See 'Compliance Reminders' on your dashboard for details.",
		who, strings.Join(titles, ", "))
}

func learningSummary(p *domain.Profile, top []domain.ScoredItem) string {
	titles := make([]string, 0, len(top))
	for _, item := range top {
		titles = append(titles, "'"+item.Item.Title+"'")
	}

	dept := "your department"
	if p != nil && p.Department != "" {
		dept = p.Department
	}
	return fmt.Sprintf(
		"Based on your skills and department (%s), we recommend: %s. See 'Learning Recommendations' on your dashboard.",
		dept, strings.Join(titles, ", "))
}
