package engine

import (
	"context"
	"strings"

	"github.com/meridianhr/pathfinder/internal/domain"
)

// Defaults for the lexical retriever's tuning constants. Both are preserved
// from the original dashboard configuration rather than derived; override
// via configuration if retrieval quality needs retuning.
const (
	DefaultThreshold    = 0.25
	DefaultKeywordBoost = 0.2
)

// Match is the outcome of a retrieval pass. Found is false when no document
// cleared the acceptance threshold; callers fall back to a generic response.
type Match struct {
	Response string
	Score    float64
	Category domain.DocumentCategory
	Found    bool
}

// Retriever ranks the corpus for a query and returns the single best
// response. Implementations never fail: degenerate corpora and provider
// outages degrade to Match{Found: false} or a lexical result.
type Retriever interface {
	BestMatch(ctx context.Context, query string, c *Corpus) Match
}

// LexicalRetriever ranks documents by TF-IDF cosine similarity with
// keyword-triggered category boosting. Exact-phrase shortcuts for
// high-value intents bypass retrieval entirely.
type LexicalRetriever struct {
	threshold float64
	boost     float64
}

// NewLexicalRetriever creates a lexical retriever with the given acceptance
// threshold and category boost. Non-positive values fall back to defaults.
func NewLexicalRetriever(threshold, boost float64) *LexicalRetriever {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if boost <= 0 {
		boost = DefaultKeywordBoost
	}
	return &LexicalRetriever{threshold: threshold, boost: boost}
}

// BestMatch implements Retriever.
func (r *LexicalRetriever) BestMatch(_ context.Context, query string, c *Corpus) Match {
	if c == nil || len(c.Documents) == 0 {
		return Match{}
	}

	if m, ok := r.shortcut(query, c); ok {
		return m
	}

	texts := make([]string, len(c.Documents))
	for i, d := range c.Documents {
		texts[i] = d.SearchText
	}

	v := fitTFIDF(texts)
	queryVec := v.vectorize(query)

	boosted := r.boostedCategories(query)

	bestIdx := -1
	bestScore := 0.0
	for i, d := range c.Documents {
		score := cosineNormalized(queryVec, v.vectorize(texts[i]))
		if _, ok := boosted[d.Category]; ok {
			score += r.boost
		}
		// Strictly-greater keeps the first occurrence on ties.
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestIdx < 0 || bestScore < r.threshold {
		return Match{}
	}

	return Match{
		Response: c.Documents[bestIdx].Response,
		Score:    bestScore,
		Category: c.Documents[bestIdx].Category,
		Found:    true,
	}
}

// shortcut handles exact-phrase intents that the statistical ranker cannot
// reliably hit: the live leave balance and the leave application walkthrough.
func (r *LexicalRetriever) shortcut(query string, c *Corpus) (Match, bool) {
	q := Normalize(query)

	if strings.Contains(q, "leave balance") || strings.Contains(q, "balance left") {
		return Match{
			Response: LeaveBalanceResponse(c.LeaveBalance),
			Score:    1,
			Category: domain.CategoryLeave,
			Found:    true,
		}, true
	}

	if strings.Contains(q, "apply leave") || strings.Contains(q, "apply for leave") || strings.Contains(q, "leave application") {
		return Match{
			Response: applyLeaveResponse,
			Score:    1,
			Category: domain.CategoryLeave,
			Found:    true,
		}, true
	}

	return Match{}, false
}

// boostedCategories returns the set of document categories triggered by the
// query's keywords.
func (r *LexicalRetriever) boostedCategories(query string) map[domain.DocumentCategory]struct{} {
	q := Normalize(query)
	boosted := make(map[domain.DocumentCategory]struct{})
	for _, route := range keywordRoutes {
		if strings.Contains(q, route.Keyword) {
			boosted[route.Category] = struct{}{}
		}
	}
	return boosted
}

// FallbackResponse is the generic answer surfaced when no document clears
// the threshold.
func FallbackResponse() string {
	return fallbackResponse
}

// NavigationTarget returns the dashboard destination suggested for a matched
// category, if one is registered.
func NavigationTarget(category domain.DocumentCategory) (string, bool) {
	target, ok := navigationTargets[category]
	return target, ok
}
