package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"paper-letter/models"
)

type PaperRepository struct {
	pool PgxPool
}

func NewPaperRepository(pool PgxPool) *PaperRepository {
	return &PaperRepository{pool: pool}
}

// UpsertPaper inserts or refreshes a paper keyed by its arXiv ID and
// returns the persisted row. Re-running with the same candidate is safe.
func (r *PaperRepository) UpsertPaper(ctx context.Context, p *models.Paper) (*models.Paper, error) {
	saved := *p
	err := r.pool.QueryRow(ctx,
		`INSERT INTO papers (arxiv_id, title, abstract, authors, categories, published_at, pdf_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (arxiv_id) DO UPDATE SET
		   title = EXCLUDED.title,
		   abstract = EXCLUDED.abstract,
		   authors = EXCLUDED.authors,
		   categories = EXCLUDED.categories,
		   published_at = EXCLUDED.published_at,
		   pdf_url = EXCLUDED.pdf_url,
		   updated_at = now()
		 RETURNING id, created_at, updated_at, full_text`,
		p.ArxivID, p.Title, p.Abstract, p.Authors, p.Categories, p.PublishedAt, p.PDFURL,
	).Scan(&saved.ID, &saved.CreatedAt, &saved.UpdatedAt, &saved.FullText)
	if err != nil {
		return nil, fmt.Errorf("upsert paper %s: %w", p.ArxivID, err)
	}
	return &saved, nil
}

// GetPaperByID returns a paper by primary key, or (nil, nil) when absent.
func (r *PaperRepository) GetPaperByID(ctx context.Context, id uuid.UUID) (*models.Paper, error) {
	var p models.Paper
	err := r.pool.QueryRow(ctx,
		`SELECT id, created_at, updated_at, arxiv_id, title, abstract, authors, categories, published_at, pdf_url, full_text
		 FROM papers WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.ArxivID, &p.Title, &p.Abstract,
		&p.Authors, &p.Categories, &p.PublishedAt, &p.PDFURL, &p.FullText)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get paper %s: %w", id, err)
	}
	return &p, nil
}

// UpdatePaperFullText attaches extracted full text to a paper.
func (r *PaperRepository) UpdatePaperFullText(ctx context.Context, id uuid.UUID, fullText string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE papers SET full_text = $2, updated_at = now() WHERE id = $1`,
		id, fullText,
	)
	if err != nil {
		return fmt.Errorf("update paper full text: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update paper full text: paper %s not found", id)
	}
	return nil
}
