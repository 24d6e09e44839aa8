package models_test

import (
	"testing"

	"paper-letter/models"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func validQuestion() models.QuizQuestion {
	return models.QuizQuestion{
		Question:     "What does the paper propose?",
		Options:      []string{"a", "b", "c", "d"},
		CorrectIndex: intPtr(2),
		Explanation:  "Stated in the abstract.",
	}
}

func TestQuizDataValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.QuizData)
		wantErr string
	}{
		{
			name:   "valid quiz passes",
			mutate: func(q *models.QuizData) {},
		},
		{
			name:    "no questions",
			mutate:  func(q *models.QuizData) { q.Questions = nil },
			wantErr: "no questions",
		},
		{
			name:    "empty question text",
			mutate:  func(q *models.QuizData) { q.Questions[0].Question = "  " },
			wantErr: "empty question text",
		},
		{
			name:    "three options",
			mutate:  func(q *models.QuizData) { q.Questions[0].Options = []string{"a", "b", "c"} },
			wantErr: "expected 4 options",
		},
		{
			name:    "five options",
			mutate:  func(q *models.QuizData) { q.Questions[0].Options = append(q.Questions[0].Options, "e") },
			wantErr: "expected 4 options",
		},
		{
			name:    "missing correct index",
			mutate:  func(q *models.QuizData) { q.Questions[0].CorrectIndex = nil },
			wantErr: "missing correct_index",
		},
		{
			name:    "negative correct index",
			mutate:  func(q *models.QuizData) { q.Questions[0].CorrectIndex = intPtr(-1) },
			wantErr: "out of range",
		},
		{
			name:    "correct index past last option",
			mutate:  func(q *models.QuizData) { q.Questions[0].CorrectIndex = intPtr(4) },
			wantErr: "out of range",
		},
		{
			name:    "empty explanation",
			mutate:  func(q *models.QuizData) { q.Questions[0].Explanation = "" },
			wantErr: "empty explanation",
		},
		{
			name: "second question invalid",
			mutate: func(q *models.QuizData) {
				second := validQuestion()
				second.CorrectIndex = nil
				q.Questions = append(q.Questions, second)
			},
			wantErr: "question 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiz := models.QuizData{Questions: []models.QuizQuestion{validQuestion()}}
			tt.mutate(&quiz)

			err := quiz.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestCorrectIndexZeroIsValid(t *testing.T) {
	quiz := models.QuizData{Questions: []models.QuizQuestion{validQuestion()}}
	quiz.Questions[0].CorrectIndex = intPtr(0)

	assert.NoError(t, quiz.Validate())
}
