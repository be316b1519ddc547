package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meridianhr/pathfinder/internal/domain"
	"github.com/pgvector/pgvector-go"
)

// PolicyRepository reads compliance policies and owns their cached
// embedding vectors.
type PolicyRepository struct {
	db dbtx
}

func NewPolicyRepository(pool *pgxpool.Pool) *PolicyRepository {
	return &PolicyRepository{db: pool}
}

// ListByDepartment returns policies scoped to the given department plus
// company-wide ones. Matching is case-insensitive.
func (r *PolicyRepository) ListByDepartment(ctx context.Context, department string) ([]domain.Policy, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, department, due_date, COALESCE(description, ''), COALESCE(category, ''), rules
		 FROM compliance_policies
		 WHERE LOWER(department) = LOWER($1) OR department = $2
		 ORDER BY due_date, id`,
		department, domain.DepartmentAll)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPolicies(rows)
}

// List returns every policy in due-date order.
func (r *PolicyRepository) List(ctx context.Context) ([]domain.Policy, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, department, due_date, COALESCE(description, ''), COALESCE(category, ''), rules
		 FROM compliance_policies
		 ORDER BY due_date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPolicies(rows)
}

func (r *PolicyRepository) GetByID(ctx context.Context, id string) (*domain.Policy, error) {
	var p domain.Policy
	err := r.db.QueryRow(ctx,
		`SELECT id, title, department, due_date, COALESCE(description, ''), COALESCE(category, ''), rules
		 FROM compliance_policies WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Title, &p.Department, &p.DueDate, &p.Description, &p.Category, &p.Rules)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPolicyNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PolicyRepository) Create(ctx context.Context, p *domain.Policy) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO compliance_policies (id, title, department, due_date, description, category, rules)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO NOTHING`,
		p.ID, p.Title, p.Department, p.DueDate, nullableString(p.Description), nullableString(p.Category), p.Rules,
	)
	return err
}

// ListMissingEmbeddings returns policies whose embedding cache is empty,
// oldest first, capped at limit.
func (r *PolicyRepository) ListMissingEmbeddings(ctx context.Context, limit int) ([]domain.Policy, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, department, due_date, COALESCE(description, ''), COALESCE(category, ''), rules
		 FROM compliance_policies
		 WHERE embedding IS NULL
		 ORDER BY due_date, id
		 LIMIT $1`,
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPolicies(rows)
}

// UpdateEmbedding writes the cached embedding vector for a policy.
func (r *PolicyRepository) UpdateEmbedding(ctx context.Context, policyID string, embedding []float32) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE compliance_policies SET embedding = $1, embedded_at = NOW() WHERE id = $2`,
		pgvector.NewVector(embedding), policyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPolicyNotFound
	}
	return nil
}

// GetEmbeddings returns the cached vectors for the given policy IDs.
// Policies without a cached vector are simply absent from the result.
func (r *PolicyRepository) GetEmbeddings(ctx context.Context, policyIDs []string) (map[string][]float32, error) {
	if len(policyIDs) == 0 {
		return map[string][]float32{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, embedding
		 FROM compliance_policies
		 WHERE id = ANY($1) AND embedding IS NOT NULL`,
		policyIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vectors := make(map[string][]float32)
	for rows.Next() {
		var id string
		var vec pgvector.Vector
		if err := rows.Scan(&id, &vec); err != nil {
			return nil, err
		}
		vectors[id] = vec.Slice()
	}
	return vectors, rows.Err()
}

func scanPolicies(rows pgx.Rows) ([]domain.Policy, error) {
	var policies []domain.Policy
	for rows.Next() {
		var p domain.Policy
		if err := rows.Scan(&p.ID, &p.Title, &p.Department, &p.DueDate, &p.Description, &p.Category, &p.Rules); err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	return policies, rows.Err()
}
