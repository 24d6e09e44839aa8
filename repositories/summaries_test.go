package repositories_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paper-letter/models"
	"paper-letter/repositories"
)

func TestCountSummaries(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	paperID := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	fieldID := uuid.MustParse("11111111-2222-3333-4444-555555555555")

	mock.ExpectQuery(`SELECT COUNT`).
		WithArgs(paperID, fieldID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

	repo := repositories.NewSummaryRepository(mock)
	count, err := repo.CountSummaries(context.Background(), paperID, fieldID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertSummary(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s := &models.Summary{
		PaperID:     uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"),
		FieldID:     uuid.MustParse("11111111-2222-3333-4444-555555555555"),
		Level:       models.ReadingLevelMiddle,
		SummaryText: "A summary for middle schoolers.",
	}

	mock.ExpectExec(`INSERT INTO summaries`).
		WithArgs(s.PaperID, s.FieldID, s.Level, s.SummaryText).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := repositories.NewSummaryRepository(mock)
	require.NoError(t, repo.UpsertSummary(context.Background(), s))
	assert.NoError(t, mock.ExpectationsWereMet())
}
