package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"paper-letter/models"
)

type PrereadingRepository struct {
	pool PgxPool
}

func NewPrereadingRepository(pool PgxPool) *PrereadingRepository {
	return &PrereadingRepository{pool: pool}
}

// PrereadingExists reports whether a pre-reading guide exists for (paper, field).
func (r *PrereadingRepository) PrereadingExists(ctx context.Context, paperID, fieldID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM prereadings WHERE paper_id = $1 AND field_id = $2)`,
		paperID, fieldID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("prereading exists: %w", err)
	}
	return exists, nil
}

// UpsertPrereading writes a pre-reading guide keyed by (paper, field).
func (r *PrereadingRepository) UpsertPrereading(ctx context.Context, p *models.Prereading) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO prereadings (paper_id, field_id, prereading_json)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (paper_id, field_id) DO UPDATE SET
		   prereading_json = EXCLUDED.prereading_json,
		   updated_at = now()`,
		p.PaperID, p.FieldID, p.PrereadingData,
	)
	if err != nil {
		return fmt.Errorf("upsert prereading %s: %w", p.PaperID, err)
	}
	return nil
}

// GetPrereading returns the guide for (paper, field), or (nil, nil) when absent.
func (r *PrereadingRepository) GetPrereading(ctx context.Context, paperID, fieldID uuid.UUID) (*models.Prereading, error) {
	var p models.Prereading
	err := r.pool.QueryRow(ctx,
		`SELECT id, created_at, updated_at, paper_id, field_id, prereading_json
		 FROM prereadings WHERE paper_id = $1 AND field_id = $2`,
		paperID, fieldID,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.PaperID, &p.FieldID, &p.PrereadingData)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get prereading: %w", err)
	}
	return &p, nil
}
