package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meridianhr/pathfinder/internal/domain"
)

// ProgressRepository stores suggestion progress rows keyed by the
// deterministic suggestion key.
type ProgressRepository struct {
	db dbtx
}

func NewProgressRepository(pool *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{db: pool}
}

// Get returns the progress rows for the given keys. Keys with no row are
// absent from the map; callers treat those as not started.
func (r *ProgressRepository) Get(ctx context.Context, employeeID string, keys []string) (map[string]domain.SuggestionProgress, error) {
	if len(keys) == 0 {
		return map[string]domain.SuggestionProgress{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT suggestion_key, employee_id, status, completed_at
		 FROM suggestion_progress
		 WHERE employee_id = $1 AND suggestion_key = ANY($2)`,
		employeeID, keys)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	progress := make(map[string]domain.SuggestionProgress)
	for rows.Next() {
		var p domain.SuggestionProgress
		if err := rows.Scan(&p.Key, &p.EmployeeID, &p.Status, &p.CompletedAt); err != nil {
			return nil, err
		}
		progress[p.Key] = p
	}
	return progress, rows.Err()
}

// Upsert writes a progress row, replacing any existing state for the key.
// Last write wins.
func (r *ProgressRepository) Upsert(ctx context.Context, p domain.SuggestionProgress) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO suggestion_progress (suggestion_key, employee_id, status, completed_at, updated_at)
		 VALUES ($1, $2, $3, $4, NOW())
		 ON CONFLICT (suggestion_key, employee_id)
		 DO UPDATE SET status = EXCLUDED.status, completed_at = EXCLUDED.completed_at, updated_at = NOW()`,
		p.Key, p.EmployeeID, p.Status, p.CompletedAt,
	)
	return err
}
