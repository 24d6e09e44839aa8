package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"paper-letter/models"
)

type SummaryRepository struct {
	pool PgxPool
}

func NewSummaryRepository(pool PgxPool) *SummaryRepository {
	return &SummaryRepository{pool: pool}
}

// CountSummaries returns how many reading levels exist for (paper, field).
// The summary stage is complete when the count reaches len(models.AllReadingLevels).
func (r *SummaryRepository) CountSummaries(ctx context.Context, paperID, fieldID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM summaries WHERE paper_id = $1 AND field_id = $2`,
		paperID, fieldID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count summaries: %w", err)
	}
	return count, nil
}

// UpsertSummary writes one summary keyed by (paper, field, level).
func (r *SummaryRepository) UpsertSummary(ctx context.Context, s *models.Summary) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO summaries (paper_id, field_id, level, summary_text)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (paper_id, field_id, level) DO UPDATE SET
		   summary_text = EXCLUDED.summary_text,
		   updated_at = now()`,
		s.PaperID, s.FieldID, s.Level, s.SummaryText,
	)
	if err != nil {
		return fmt.Errorf("upsert summary %s/%s: %w", s.PaperID, s.Level, err)
	}
	return nil
}

// ListSummaries returns all summaries for (paper, field), coarsest level first.
func (r *SummaryRepository) ListSummaries(ctx context.Context, paperID, fieldID uuid.UUID) ([]models.Summary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, created_at, updated_at, paper_id, field_id, level, summary_text
		 FROM summaries WHERE paper_id = $1 AND field_id = $2
		 ORDER BY CASE level WHEN 'grade5' THEN 0 WHEN 'middle' THEN 1 ELSE 2 END`,
		paperID, fieldID,
	)
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	defer rows.Close()

	var summaries []models.Summary
	for rows.Next() {
		var s models.Summary
		if err := rows.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt, &s.PaperID, &s.FieldID, &s.Level, &s.SummaryText); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	return summaries, nil
}
