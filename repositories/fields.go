package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"paper-letter/models"
)

type FieldRepository struct {
	pool PgxPool
}

func NewFieldRepository(pool PgxPool) *FieldRepository {
	return &FieldRepository{pool: pool}
}

// ListFields returns every configured field, stable order by name.
func (r *FieldRepository) ListFields(ctx context.Context) ([]models.Field, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, created_at, name, slug, arxiv_query FROM fields ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}
	defer rows.Close()

	var fields []models.Field
	for rows.Next() {
		var f models.Field
		if err := rows.Scan(&f.ID, &f.CreatedAt, &f.Name, &f.Slug, &f.ArxivQuery); err != nil {
			return nil, fmt.Errorf("scan field: %w", err)
		}
		fields = append(fields, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}
	return fields, nil
}

// GetFieldBySlug returns the field with the given slug, or (nil, nil) when absent.
func (r *FieldRepository) GetFieldBySlug(ctx context.Context, slug string) (*models.Field, error) {
	var f models.Field
	err := r.pool.QueryRow(ctx,
		`SELECT id, created_at, name, slug, arxiv_query FROM fields WHERE slug = $1`,
		slug,
	).Scan(&f.ID, &f.CreatedAt, &f.Name, &f.Slug, &f.ArxivQuery)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get field by slug: %w", err)
	}
	return &f, nil
}
