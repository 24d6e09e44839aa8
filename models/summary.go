package models

import (
	"time"

	"github.com/google/uuid"
)

// ReadingLevel identifies one of the fixed summary difficulty levels.
type ReadingLevel string

const (
	ReadingLevelGrade5 ReadingLevel = "grade5"
	ReadingLevelMiddle ReadingLevel = "middle"
	ReadingLevelHigh   ReadingLevel = "high"
)

// AllReadingLevels lists every level a paper must be summarized at,
// coarsest first. The summary stage is complete only when all of them exist.
var AllReadingLevels = []ReadingLevel{
	ReadingLevelGrade5,
	ReadingLevelMiddle,
	ReadingLevelHigh,
}

// Summary stores one generated summary text per (paper, field, level).
// Table: summaries, unique (paper_id, field_id, level)
type Summary struct {
	ID          uuid.UUID    `json:"id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	PaperID     uuid.UUID    `json:"paper_id"`
	FieldID     uuid.UUID    `json:"field_id"`
	Level       ReadingLevel `json:"level"`
	SummaryText string       `json:"summary_text"`
}
