package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// QuizQuestion is a single multiple-choice question.
// CorrectIndex is a pointer so that a missing field in LLM output can be
// told apart from a legitimate index 0.
type QuizQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex *int     `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}

// QuizData is the fixed-shape JSON value stored for a quiz.
type QuizData struct {
	Questions []QuizQuestion `json:"questions"`
}

// Validate checks the structural shape of LLM-produced quiz data.
// Anything that fails here must be reported as a generation failure and
// never persisted.
func (q *QuizData) Validate() error {
	if len(q.Questions) == 0 {
		return fmt.Errorf("quiz has no questions")
	}
	for i, question := range q.Questions {
		if strings.TrimSpace(question.Question) == "" {
			return fmt.Errorf("question %d: empty question text", i)
		}
		if len(question.Options) != 4 {
			return fmt.Errorf("question %d: expected 4 options, got %d", i, len(question.Options))
		}
		if question.CorrectIndex == nil {
			return fmt.Errorf("question %d: missing correct_index", i)
		}
		if *question.CorrectIndex < 0 || *question.CorrectIndex > 3 {
			return fmt.Errorf("question %d: correct_index %d out of range [0,3]", i, *question.CorrectIndex)
		}
		if strings.TrimSpace(question.Explanation) == "" {
			return fmt.Errorf("question %d: empty explanation", i)
		}
	}
	return nil
}

// Quiz stores one validated question set per (paper, field).
// Table: quizzes, unique (paper_id, field_id)
type Quiz struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	PaperID   uuid.UUID `json:"paper_id"`
	FieldID   uuid.UUID `json:"field_id"`
	QuizData  QuizData  `json:"quiz_data"`
}
