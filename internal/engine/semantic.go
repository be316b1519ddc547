package engine

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/meridianhr/pathfinder/internal/domain"
)

const (
	semanticTopK      = 3
	rulesMentionBoost = 0.2

	// providerTimeout bounds every embedding/completion call so a provider
	// outage degrades instead of stalling the request.
	providerTimeout = 10 * time.Second
)

// EmbeddingClient generates an embedding vector for the given text.
type EmbeddingClient interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// CompletionClient produces a natural-language answer for the given system
// prompt and user text.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userText string) (string, error)
}

const policyAnswerSystemPrompt = "You are an HR compliance assistant. Answer strictly from the policy text provided. " +
	"If the answer is not present in the supplied policies, reply exactly: " +
	"\"I don't have that specific information in the assigned policies.\" Do not invent policy content."

// SemanticRetriever re-ranks compliance policies by embedding similarity and
// answers policy questions through the completion provider. Every external
// call has a deterministic fallback: the wrapped lexical retriever's match,
// the rules-first policy ordering, or the templated policy answer. It never
// surfaces a provider failure to the caller.
type SemanticRetriever struct {
	lexical  *LexicalRetriever
	embed    EmbeddingClient
	complete CompletionClient
}

// NewSemanticRetriever wraps a lexical retriever with embedding-based policy
// re-ranking. complete may be nil; answers then use the templated form.
func NewSemanticRetriever(lexical *LexicalRetriever, embed EmbeddingClient, complete CompletionClient) *SemanticRetriever {
	return &SemanticRetriever{lexical: lexical, embed: embed, complete: complete}
}

// BestMatch implements Retriever. The lexical pass always runs first; only a
// compliance-category match with policies available is upgraded semantically.
func (r *SemanticRetriever) BestMatch(ctx context.Context, query string, c *Corpus) Match {
	m := r.lexical.BestMatch(ctx, query, c)
	if !m.Found || m.Category != domain.CategoryCompliance || c == nil || len(c.Policies) == 0 {
		return m
	}

	ranked := r.RankPolicies(ctx, query, c.Policies, c.PolicyVectors)
	if len(ranked) == 0 {
		return m
	}

	m.Response = r.AnswerPolicyQuestion(ctx, query, ranked)
	return m
}

// RankPolicies orders policies by cosine similarity between the query
// embedding and each policy's embedding, preferring cached vectors. A
// query-embedding failure falls back entirely to rules-first ordering; a
// per-policy failure excludes only that policy from scoring. The result
// always holds up to K policies, filled from policies with rules and then
// the remainder in original order.
func (r *SemanticRetriever) RankPolicies(ctx context.Context, query string, policies []domain.Policy, cached map[string][]float32) []domain.Policy {
	if r.embed == nil {
		return fallbackRankPolicies(policies)
	}

	queryVec, err := r.embedText(ctx, query)
	if err != nil {
		log.Printf("semantic: query embedding failed, using rules-first ordering: %v", err)
		return fallbackRankPolicies(policies)
	}

	mentionsRules := strings.Contains(Normalize(query), "rule")

	type scoredPolicy struct {
		policy domain.Policy
		score  float64
	}

	scored := make([]scoredPolicy, 0, len(policies))
	for _, p := range policies {
		vec, ok := cached[p.ID]
		if !ok {
			vec, err = r.embedText(ctx, PolicyEmbeddingText(p))
			if err != nil {
				log.Printf("semantic: skipping policy %s, embedding failed: %v", p.ID, err)
				continue
			}
		}

		score := cosine32(queryVec, vec)
		if mentionsRules && p.HasRules() {
			score += rulesMentionBoost
		}
		scored = append(scored, scoredPolicy{policy: p, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	ranked := make([]domain.Policy, 0, semanticTopK)
	used := make(map[string]struct{})
	for _, s := range scored {
		if len(ranked) >= semanticTopK {
			break
		}
		ranked = append(ranked, s.policy)
		used[s.policy.ID] = struct{}{}
	}

	return fillPolicies(ranked, used, policies)
}

// AnswerPolicyQuestion asks the completion provider for an answer grounded
// in the ranked policies, falling back to the templated response on any
// failure or when no provider is configured.
func (r *SemanticRetriever) AnswerPolicyQuestion(ctx context.Context, query string, ranked []domain.Policy) string {
	if r.complete == nil {
		return TemplatedPolicyAnswer(ranked)
	}

	callCtx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	answer, err := r.complete.Complete(callCtx, policyAnswerSystemPrompt, policyAnswerUserText(query, ranked))
	if err != nil || strings.TrimSpace(answer) == "" {
		if err != nil {
			log.Printf("semantic: completion failed, using templated answer: %v", err)
		}
		return TemplatedPolicyAnswer(ranked)
	}
	return answer
}

func (r *SemanticRetriever) embedText(ctx context.Context, text string) ([]float32, error) {
	callCtx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()
	return r.embed.GenerateEmbedding(callCtx, text)
}

// fallbackRankPolicies orders policies with structured rules first, then the
// rest in original order, truncated to K.
func fallbackRankPolicies(policies []domain.Policy) []domain.Policy {
	ranked := make([]domain.Policy, 0, semanticTopK)
	used := make(map[string]struct{})
	for _, p := range policies {
		if len(ranked) >= semanticTopK {
			break
		}
		if p.HasRules() {
			ranked = append(ranked, p)
			used[p.ID] = struct{}{}
		}
	}
	return fillPolicies(ranked, used, policies)
}

// fillPolicies tops ranked up to K: first with unused policies that have
// rules, then with any remaining policies in original order.
func fillPolicies(ranked []domain.Policy, used map[string]struct{}, all []domain.Policy) []domain.Policy {
	for _, p := range all {
		if len(ranked) >= semanticTopK {
			return ranked
		}
		if _, ok := used[p.ID]; ok {
			continue
		}
		if p.HasRules() {
			ranked = append(ranked, p)
			used[p.ID] = struct{}{}
		}
	}
	for _, p := range all {
		if len(ranked) >= semanticTopK {
			return ranked
		}
		if _, ok := used[p.ID]; ok {
			continue
		}
		ranked = append(ranked, p)
		used[p.ID] = struct{}{}
	}
	return ranked
}

// PolicyEmbeddingText builds the text embedded for a policy: category,
// title, department, and rule statements.
func PolicyEmbeddingText(p domain.Policy) string {
	parts := make([]string, 0, 4)
	if p.Category != "" {
		parts = append(parts, p.Category)
	}
	parts = append(parts, p.Title)
	if p.Department != "" {
		parts = append(parts, p.Department)
	}
	if len(p.Rules) > 0 {
		parts = append(parts, strings.Join(p.Rules, "\n"))
	}
	return strings.Join(parts, "\n\n")
}

// TemplatedPolicyAnswer renders a deterministic answer from the ranked
// policies with no generative step.
func TemplatedPolicyAnswer(ranked []domain.Policy) string {
	if len(ranked) == 0 {
		return fallbackResponse
	}

	var b strings.Builder
	b.WriteString("These policies apply to you:")
	for _, p := range ranked {
		fmt.Fprintf(&b, "\n- %s (due %s)", p.Title, p.DueDate.Format("2006-01-02"))
		for _, rule := range p.Rules {
			fmt.Fprintf(&b, "\n  • %s", rule)
		}
	}
	return b.String()
}

func policyAnswerUserText(query string, ranked []domain.Policy) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n\nPolicies:\n", query)
	for _, p := range ranked {
		fmt.Fprintf(&b, "---\n%s\nDue: %s\n", PolicyEmbeddingText(p), p.DueDate.Format("2006-01-02"))
		if p.Description != "" {
			fmt.Fprintf(&b, "%s\n", p.Description)
		}
	}
	return b.String()
}
