package jobs

import (
	"context"
	"fmt"
	"log"

	"github.com/meridianhr/pathfinder/internal/domain"
	"github.com/meridianhr/pathfinder/internal/engine"
)

const defaultEmbeddingBatchSize = 20

// PolicyEmbeddingRepo is the policy store surface the embedding processor needs.
type PolicyEmbeddingRepo interface {
	ListMissingEmbeddings(ctx context.Context, limit int) ([]domain.Policy, error)
	UpdateEmbedding(ctx context.Context, policyID string, embedding []float32) error
}

// Embedder generates an embedding vector for a piece of text.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// PolicyEmbeddingProcessor backfills the policy embedding cache so request-time
// semantic retrieval rarely has to embed policies on demand.
type PolicyEmbeddingProcessor struct {
	repo      PolicyEmbeddingRepo
	embedder  Embedder
	batchSize int
}

// NewPolicyEmbeddingProcessor creates a new PolicyEmbeddingProcessor instance
func NewPolicyEmbeddingProcessor(repo PolicyEmbeddingRepo, embedder Embedder) *PolicyEmbeddingProcessor {
	return &PolicyEmbeddingProcessor{
		repo:      repo,
		embedder:  embedder,
		batchSize: defaultEmbeddingBatchSize,
	}
}

// ProcessJobs embeds one batch of policies missing a cached vector. A failure
// on one policy is logged and skipped; the rest of the batch still runs.
func (p *PolicyEmbeddingProcessor) ProcessJobs(ctx context.Context) error {
	policies, err := p.repo.ListMissingEmbeddings(ctx, p.batchSize)
	if err != nil {
		return fmt.Errorf("failed to list policies missing embeddings: %w", err)
	}

	for _, pol := range policies {
		embedding, err := p.embedder.GenerateEmbedding(ctx, engine.PolicyEmbeddingText(pol))
		if err != nil {
			log.Printf("embedding failed for policy %s: %v", pol.ID, err)
			continue
		}

		if err := p.repo.UpdateEmbedding(ctx, pol.ID, embedding); err != nil {
			log.Printf("embedding cache write failed for policy %s: %v", pol.ID, err)
		}
	}
	return nil
}
