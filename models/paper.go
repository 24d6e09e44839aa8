package models

import (
	"time"

	"github.com/google/uuid"
)

// CandidatePaper is a single arXiv search result.
// Candidates are transient: they only become a Paper if selected for a day.
type CandidatePaper struct {
	ArxivID     string    `json:"arxiv_id"`
	Title       string    `json:"title"`
	Abstract    string    `json:"abstract"`
	Authors     []string  `json:"authors"`
	Categories  []string  `json:"categories"`
	PublishedAt time.Time `json:"published_at"`
	PDFURL      string    `json:"pdf_url"`
}

// Paper is the persisted, deduplicated record of an arXiv paper,
// keyed by its version-stripped arXiv ID.
// Table: papers
type Paper struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	ArxivID     string    `json:"arxiv_id"`
	Title       string    `json:"title"`
	Abstract    string    `json:"abstract"`
	Authors     []string  `json:"authors"`
	Categories  []string  `json:"categories"`
	PublishedAt time.Time `json:"published_at"`
	PDFURL      string    `json:"pdf_url"`
	FullText    *string   `json:"full_text,omitempty"`
}

// NewPaperFromCandidate builds a Paper from a selected candidate.
func NewPaperFromCandidate(c CandidatePaper) *Paper {
	return &Paper{
		ArxivID:     c.ArxivID,
		Title:       c.Title,
		Abstract:    c.Abstract,
		Authors:     c.Authors,
		Categories:  c.Categories,
		PublishedAt: c.PublishedAt,
		PDFURL:      c.PDFURL,
	}
}
