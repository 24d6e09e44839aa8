package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"paper-letter/models"
)

type QuizRepository struct {
	pool PgxPool
}

func NewQuizRepository(pool PgxPool) *QuizRepository {
	return &QuizRepository{pool: pool}
}

// QuizExists reports whether a quiz row exists for (paper, field).
func (r *QuizRepository) QuizExists(ctx context.Context, paperID, fieldID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM quizzes WHERE paper_id = $1 AND field_id = $2)`,
		paperID, fieldID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("quiz exists: %w", err)
	}
	return exists, nil
}

// UpsertQuiz writes a validated quiz keyed by (paper, field).
func (r *QuizRepository) UpsertQuiz(ctx context.Context, q *models.Quiz) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO quizzes (paper_id, field_id, quiz_json)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (paper_id, field_id) DO UPDATE SET
		   quiz_json = EXCLUDED.quiz_json,
		   updated_at = now()`,
		q.PaperID, q.FieldID, q.QuizData,
	)
	if err != nil {
		return fmt.Errorf("upsert quiz %s: %w", q.PaperID, err)
	}
	return nil
}

// GetQuiz returns the quiz for (paper, field), or (nil, nil) when absent.
func (r *QuizRepository) GetQuiz(ctx context.Context, paperID, fieldID uuid.UUID) (*models.Quiz, error) {
	var q models.Quiz
	err := r.pool.QueryRow(ctx,
		`SELECT id, created_at, updated_at, paper_id, field_id, quiz_json
		 FROM quizzes WHERE paper_id = $1 AND field_id = $2`,
		paperID, fieldID,
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt, &q.PaperID, &q.FieldID, &q.QuizData)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get quiz: %w", err)
	}
	return &q, nil
}
