package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paper-letter/models"
	"paper-letter/repositories"
)

func TestUpsertPaperReturnsPersistedRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	paperID := uuid.MustParse("5f0c3a52-9c1d-4f6e-8a4b-1b2f3c4d5e6f")
	now := time.Date(2025, 12, 4, 9, 0, 0, 0, time.UTC)
	published := time.Date(2025, 12, 3, 18, 30, 0, 0, time.UTC)

	p := &models.Paper{
		ArxivID:     "2512.01234",
		Title:       "Sparse Mixture Routing",
		Abstract:    "We study routing.",
		Authors:     []string{"A. Researcher", "B. Scientist"},
		Categories:  []string{"cs.LG", "cs.AI"},
		PublishedAt: published,
		PDFURL:      "https://arxiv.org/pdf/2512.01234",
	}

	mock.ExpectQuery(`INSERT INTO papers`).
		WithArgs(p.ArxivID, p.Title, p.Abstract, p.Authors, p.Categories, p.PublishedAt, p.PDFURL).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at", "full_text"}).
			AddRow(paperID, now, now, (*string)(nil)))

	repo := repositories.NewPaperRepository(mock)
	saved, err := repo.UpsertPaper(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, paperID, saved.ID)
	assert.Equal(t, p.ArxivID, saved.ArxivID)
	assert.Equal(t, now, saved.CreatedAt)
	assert.Nil(t, saved.FullText)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePaperFullTextMissingPaper(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	paperID := uuid.MustParse("5f0c3a52-9c1d-4f6e-8a4b-1b2f3c4d5e6f")

	mock.ExpectExec(`UPDATE papers SET full_text`).
		WithArgs(paperID, "extracted body").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := repositories.NewPaperRepository(mock)
	err = repo.UpdatePaperFullText(context.Background(), paperID, "extracted body")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
