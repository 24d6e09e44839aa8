package repositories

import (
	"context"
	"fmt"

	"paper-letter/models"
)

type LLMLogRepository struct {
	pool PgxPool
}

func NewLLMLogRepository(pool PgxPool) *LLMLogRepository {
	return &LLMLogRepository{pool: pool}
}

// InsertLLMLog records one LLM call for usage monitoring.
func (r *LLMLogRepository) InsertLLMLog(ctx context.Context, l models.LLMLog) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO llm_logs
		   (model_name, model_version, operation, paper_id, input_tokens, output_tokens,
		    total_tokens, duration_ms, success, error_message, response_excerpt,
		    requested_at, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		l.ModelName, l.ModelVersion, l.Operation, l.PaperID, l.InputTokens, l.OutputTokens,
		l.TotalTokens, l.DurationMs, l.Success, l.ErrorMessage, l.ResponseExcerpt,
		l.RequestedAt, l.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert llm log: %w", err)
	}
	return nil
}
