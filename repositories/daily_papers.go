package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"paper-letter/models"
)

type DailyPaperRepository struct {
	pool PgxPool
}

func NewDailyPaperRepository(pool PgxPool) *DailyPaperRepository {
	return &DailyPaperRepository{pool: pool}
}

// GetDailyPaper returns the selection for (date, field), or (nil, nil)
// when the field has no selection for that date yet.
func (r *DailyPaperRepository) GetDailyPaper(ctx context.Context, date time.Time, fieldID uuid.UUID) (*models.DailyPaper, error) {
	var dp models.DailyPaper
	err := r.pool.QueryRow(ctx,
		`SELECT id, created_at, date, field_id, paper_id FROM daily_papers
		 WHERE date = $1 AND field_id = $2`,
		date, fieldID,
	).Scan(&dp.ID, &dp.CreatedAt, &dp.Date, &dp.FieldID, &dp.PaperID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get daily paper: %w", err)
	}
	return &dp, nil
}

// CreateDailyPaper records the day's selection for a field. On conflict the
// first writer wins: the existing row is returned unchanged so that a
// concurrent re-run can never re-point the day at a different paper.
func (r *DailyPaperRepository) CreateDailyPaper(ctx context.Context, date time.Time, fieldID, paperID uuid.UUID) (*models.DailyPaper, error) {
	var dp models.DailyPaper
	err := r.pool.QueryRow(ctx,
		`INSERT INTO daily_papers (date, field_id, paper_id)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (date, field_id) DO NOTHING
		 RETURNING id, created_at, date, field_id, paper_id`,
		date, fieldID, paperID,
	).Scan(&dp.ID, &dp.CreatedAt, &dp.Date, &dp.FieldID, &dp.PaperID)
	if errors.Is(err, pgx.ErrNoRows) {
		existing, getErr := r.GetDailyPaper(ctx, date, fieldID)
		if getErr != nil {
			return nil, getErr
		}
		if existing == nil {
			return nil, fmt.Errorf("create daily paper: conflict but no existing row for (%s, %s)",
				date.Format("2006-01-02"), fieldID)
		}
		return existing, nil
	}
	if err != nil {
		return nil, fmt.Errorf("create daily paper: %w", err)
	}
	return &dp, nil
}

// UsedArxivIDs returns the arXiv IDs of every paper this field has already
// featured, across all dates. Feeds the selector's exclusion set.
func (r *DailyPaperRepository) UsedArxivIDs(ctx context.Context, fieldID uuid.UUID) (map[string]struct{}, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.arxiv_id FROM daily_papers dp
		 JOIN papers p ON p.id = dp.paper_id
		 WHERE dp.field_id = $1`,
		fieldID,
	)
	if err != nil {
		return nil, fmt.Errorf("used arxiv ids: %w", err)
	}
	defer rows.Close()

	used := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan used arxiv id: %w", err)
		}
		used[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("used arxiv ids: %w", err)
	}
	return used, nil
}
