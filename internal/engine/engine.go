package engine

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/meridianhr/pathfinder/internal/domain"
)

const maxExplanations = 5

// maxComplianceReminders caps the upcoming-policy list in recommendations.
const maxComplianceReminders = 5

// Recommendations is the result of scoring a catalog against a profile.
type Recommendations struct {
	TopLearning      []domain.ScoredItem
	SkillGaps        []string
	Certifications   []string
	Explanations     []string
	UpcomingPolicies []domain.Policy
}

// Navigation suggests where in the portal the caller should send the
// employee after an answer.
type Navigation struct {
	Category    domain.DocumentCategory
	Destination string
}

// Answer is the result of a free-text query against the corpus. Matched is
// false when retrieval found nothing above threshold; Response then carries
// the generic fallback so the caller always has something to surface.
type Answer struct {
	Response   string
	Category   domain.DocumentCategory
	Score      float64
	Matched    bool
	Navigation *Navigation
}

// Engine is the recommendation and retrieval core. All methods are pure
// functions of their inputs plus the injected retriever; there is no
// cross-request state.
type Engine struct {
	retriever Retriever
	weights   ScoreWeights
	now       func() time.Time
}

// New creates an Engine around the given retriever. The retriever variant
// (lexical, or semantic with lexical fallback) is the caller's capability
// decision; the engine is indifferent to which it got.
func New(retriever Retriever) *Engine {
	return &Engine{
		retriever: retriever,
		weights:   DefaultScoreWeights(),
		now:       time.Now,
	}
}

// Weights exposes the scoring policy in use.
func (e *Engine) Weights() ScoreWeights {
	return e.weights
}

// ScoreAndRankLearning ranks the catalog for the profile and derives skill
// gaps, certification suggestions, explanations, and upcoming compliance
// reminders. Degenerate inputs produce empty slices, never an error.
func (e *Engine) ScoreAndRankLearning(p *domain.Profile, catalog []domain.CatalogItem, policies []domain.Policy) *Recommendations {
	top := RankLearning(p, catalog, e.weights)

	rec := &Recommendations{
		TopLearning:      top,
		SkillGaps:        SkillGaps(p, top),
		Certifications:   SuggestedCertifications(EffectiveRole(p), departmentOf(p)),
		UpcomingPolicies: upcomingPolicies(policies, e.now()),
	}
	rec.Explanations = buildExplanations(p, top, rec.UpcomingPolicies)
	return rec
}

// BuildPaths assembles the role-specific learning paths for the profile.
func (e *Engine) BuildPaths(p *domain.Profile, catalog []domain.CatalogItem) []domain.LearningPath {
	return BuildPaths(p, catalog, e.weights)
}

// AnswerQuery retrieves the best response for a free-text query over the
// corpus. It never fails: an empty corpus or a below-threshold match yields
// the generic fallback answer.
func (e *Engine) AnswerQuery(ctx context.Context, query string, c *Corpus) Answer {
	m := e.retriever.BestMatch(ctx, query, c)
	if !m.Found {
		return Answer{Response: FallbackResponse()}
	}

	answer := Answer{
		Response: m.Response,
		Category: m.Category,
		Score:    m.Score,
		Matched:  true,
	}
	if target, ok := NavigationTarget(m.Category); ok {
		answer.Navigation = &Navigation{Category: m.Category, Destination: target}
	}
	return answer
}

// ResolveRoadmap resolves the profile's career trajectory.
func (e *Engine) ResolveRoadmap(p *domain.Profile) domain.Roadmap {
	return ResolveRoadmap(p)
}

func departmentOf(p *domain.Profile) string {
	if p == nil {
		return ""
	}
	return p.Department
}

// upcomingPolicies keeps policies due today or later, sorted by due date.
func upcomingPolicies(policies []domain.Policy, now time.Time) []domain.Policy {
	today := now.Truncate(24 * time.Hour)

	upcoming := make([]domain.Policy, 0, len(policies))
	for _, p := range policies {
		if !p.DueDate.Before(today) {
			upcoming = append(upcoming, p)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(upcoming[j].DueDate)
	})

	if len(upcoming) > maxComplianceReminders {
		upcoming = upcoming[:maxComplianceReminders]
	}
	return upcoming
}

func buildExplanations(p *domain.Profile, top []domain.ScoredItem, policies []domain.Policy) []string {
	explanations := make([]string, 0, maxExplanations)

	for _, item := range top {
		if len(explanations) >= maxExplanations {
			return explanations
		}
		if p != nil && p.Role == domain.RoleEmployee {
			explanations = append(explanations, fmt.Sprintf(
				"As a %s employee, we recommend '%s' to enhance your skills.",
				p.Department, item.Item.Title))
		} else if p != nil {
			explanations = append(explanations, fmt.Sprintf(
				"As a %s in %s, '%s' is relevant for your role.",
				p.Role, p.Department, item.Item.Title))
		}
	}

	for _, pol := range policies {
		if len(explanations) >= maxExplanations {
			return explanations
		}
		explanations = append(explanations, fmt.Sprintf(
			"Compliance policy '%s' is due on %s. Please ensure completion.",
			pol.Title, pol.DueDate.Format("2006-01-02")))
	}

	return explanations
}
