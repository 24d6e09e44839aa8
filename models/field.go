package models

import (
	"time"

	"github.com/google/uuid"
)

// Field represents a subject category exposed to readers.
// Each field maps to exactly one arXiv search query.
// Table: fields
type Field struct {
	ID         uuid.UUID `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	ArxivQuery string    `json:"arxiv_query"`
}
