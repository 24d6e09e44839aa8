package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paper-letter/models"
)

func TestGetDailyAssemblesBundle(t *testing.T) {
	field := testField("cs-lg")
	store := newFakeStore(field)
	date := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	paper := store.seedPaper("2512.04242", field.ID, date)
	fullText := "extracted text"
	paper.FullText = &fullText
	paper.Abstract = "the abstract"
	paper.Authors = []string{"A. Author"}

	for _, level := range models.AllReadingLevels {
		require.NoError(t, store.UpsertSummary(ctx, &models.Summary{
			PaperID: paper.ID, FieldID: field.ID, Level: level, SummaryText: string(level) + " text",
		}))
	}
	idx := 1
	require.NoError(t, store.UpsertQuiz(ctx, &models.Quiz{
		PaperID: paper.ID, FieldID: field.ID,
		QuizData: models.QuizData{Questions: []models.QuizQuestion{{
			Question: "Q?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: &idx, Explanation: "e",
		}}},
	}))
	require.NoError(t, store.UpsertPrereading(ctx, &models.Prereading{
		PaperID: paper.ID, FieldID: field.ID,
		PrereadingData: models.PrereadingData{Difficulty: 2, EstimatedReadTimeMinutes: 15},
	}))

	svc := NewDailyService(store)

	d, err := svc.GetDaily(ctx, field.Slug, date)
	require.NoError(t, err)

	assert.Equal(t, "2026-08-25", d.Date)
	assert.Equal(t, field.Slug, d.Field.Slug)
	assert.Equal(t, paper.ID.String(), d.Paper.ID)
	assert.Equal(t, "2512.04242", d.Paper.ArxivID)
	assert.True(t, d.Paper.HasFullText)

	require.Len(t, d.Summaries, 3)
	assert.Equal(t, "grade5 text", d.Summaries["grade5"])
	assert.Equal(t, "middle text", d.Summaries["middle"])
	assert.Equal(t, "high text", d.Summaries["high"])

	require.NotNil(t, d.Quiz)
	assert.Len(t, d.Quiz.Questions, 1)
	require.NotNil(t, d.Prereading)
	assert.Equal(t, 2, d.Prereading.Difficulty)
}

func TestGetDailyOmitsMissingArtifacts(t *testing.T) {
	field := testField("cs-cv")
	store := newFakeStore(field)
	date := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	store.seedPaper("2512.00010", field.ID, date)

	svc := NewDailyService(store)

	d, err := svc.GetDaily(context.Background(), field.Slug, date)
	require.NoError(t, err)

	assert.False(t, d.Paper.HasFullText)
	assert.Empty(t, d.Summaries)
	assert.Nil(t, d.Quiz)
	assert.Nil(t, d.Prereading)
}

func TestGetDailyUnknownField(t *testing.T) {
	store := newFakeStore(testField("known"))
	svc := NewDailyService(store)

	_, err := svc.GetDaily(context.Background(), "unknown", time.Now().UTC())
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestGetDailyNoSelectionForDate(t *testing.T) {
	field := testField("cs-ai")
	store := newFakeStore(field)
	svc := NewDailyService(store)

	_, err := svc.GetDaily(context.Background(), field.Slug, time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrDailyPaperNotFound)
}

func TestListFieldsReturnsDTOs(t *testing.T) {
	fieldA := testField("cs-lg")
	fieldB := testField("q-bio")
	store := newFakeStore(fieldA, fieldB)
	svc := NewDailyService(store)

	fields, err := svc.ListFields(context.Background())
	require.NoError(t, err)

	require.Len(t, fields, 2)
	assert.Equal(t, "cs-lg", fields[0].Slug)
	assert.Equal(t, "Field cs-lg", fields[0].Name)
	assert.Equal(t, "q-bio", fields[1].Slug)
}
