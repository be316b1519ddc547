package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meridianhr/pathfinder/internal/domain"
)

// RulesRepository reads HR-authored category rule statements.
type RulesRepository struct {
	db dbtx
}

func NewRulesRepository(pool *pgxpool.Pool) *RulesRepository {
	return &RulesRepository{db: pool}
}

// List returns all rules in display order within each category.
func (r *RulesRepository) List(ctx context.Context) ([]domain.CategoryRule, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, category, text, display_order
		 FROM category_rules
		 ORDER BY category, display_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []domain.CategoryRule
	for rows.Next() {
		var rule domain.CategoryRule
		if err := rows.Scan(&rule.ID, &rule.Category, &rule.Text, &rule.DisplayOrder); err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

func (r *RulesRepository) Create(ctx context.Context, rule *domain.CategoryRule) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO category_rules (id, category, text, display_order)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO NOTHING`,
		rule.ID, rule.Category, rule.Text, rule.DisplayOrder,
	)
	return err
}
