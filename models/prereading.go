package models

import (
	"time"

	"github.com/google/uuid"
)

// JargonTerm is one technical term with a plain-language definition.
type JargonTerm struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// PrereadingData is the structured pre-reading guide generated from a
// paper's full text. Free-form compared to QuizData: only parseability
// is enforced.
type PrereadingData struct {
	Jargon                   []JargonTerm `json:"jargon"`
	Prerequisites            []string     `json:"prerequisites"`
	KeyConcepts              []string     `json:"key_concepts"`
	Difficulty               int          `json:"difficulty"`
	EstimatedReadTimeMinutes int          `json:"estimated_read_time_minutes"`
}

// Prereading stores one pre-reading guide per (paper, field).
// Optional artifact: only generated when full text was extracted.
// Table: prereadings, unique (paper_id, field_id)
type Prereading struct {
	ID             uuid.UUID      `json:"id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	PaperID        uuid.UUID      `json:"paper_id"`
	FieldID        uuid.UUID      `json:"field_id"`
	PrereadingData PrereadingData `json:"prereading_data"`
}
