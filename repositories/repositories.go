package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxPool is the subset of pgxpool.Pool the repositories use.
// pgxmock's pool satisfies it, so repository tests run against the
// driver boundary without a database.
type PgxPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Store bundles every repository behind one value. The ingest service
// depends on the promoted method set, not on the individual repositories.
type Store struct {
	*FieldRepository
	*PaperRepository
	*DailyPaperRepository
	*SummaryRepository
	*QuizRepository
	*PrereadingRepository
	*LLMLogRepository
}

func NewStore(pool PgxPool) *Store {
	return &Store{
		FieldRepository:      NewFieldRepository(pool),
		PaperRepository:      NewPaperRepository(pool),
		DailyPaperRepository: NewDailyPaperRepository(pool),
		SummaryRepository:    NewSummaryRepository(pool),
		QuizRepository:       NewQuizRepository(pool),
		PrereadingRepository: NewPrereadingRepository(pool),
		LLMLogRepository:     NewLLMLogRepository(pool),
	}
}
