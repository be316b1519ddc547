package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meridianhr/pathfinder/internal/domain"
)

// CatalogRepository reads the learning content catalog.
type CatalogRepository struct {
	db dbtx
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: pool}
}

// List returns the full catalog in a stable order so scoring ties resolve
// the same way on every request.
func (r *CatalogRepository) List(ctx context.Context) ([]domain.CatalogItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, tags, level, COALESCE(description, '')
		 FROM learning_content
		 ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CatalogItem
	for rows.Next() {
		var item domain.CatalogItem
		if err := rows.Scan(&item.ID, &item.Title, &item.Tags, &item.Level, &item.Description); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *CatalogRepository) GetByID(ctx context.Context, id string) (*domain.CatalogItem, error) {
	var item domain.CatalogItem
	err := r.db.QueryRow(ctx,
		`SELECT id, title, tags, level, COALESCE(description, '')
		 FROM learning_content WHERE id = $1`,
		id,
	).Scan(&item.ID, &item.Title, &item.Tags, &item.Level, &item.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *CatalogRepository) Create(ctx context.Context, item *domain.CatalogItem) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO learning_content (id, title, tags, level, description)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO NOTHING`,
		item.ID, item.Title, item.Tags, item.Level, nullableString(item.Description),
	)
	return err
}
