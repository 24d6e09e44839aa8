package dto

import (
	"time"

	"paper-letter/models"
)

// FieldDTO exposes the reader-facing identity of a field.
type FieldDTO struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// NewFieldDTO constructs FieldDTO from models.Field
func NewFieldDTO(f models.Field) FieldDTO {
	return FieldDTO{
		Slug: f.Slug,
		Name: f.Name,
	}
}

// PaperDTO exposes the paper metadata for API consumers.
// Full text is intentionally omitted from responses; HasFullText tells
// clients whether a pre-reading guide could exist.
type PaperDTO struct {
	ID          string    `json:"id"`
	ArxivID     string    `json:"arxiv_id"`
	Title       string    `json:"title"`
	Abstract    string    `json:"abstract"`
	Authors     []string  `json:"authors"`
	Categories  []string  `json:"categories"`
	PublishedAt time.Time `json:"published_at"`
	PDFURL      string    `json:"pdf_url"`
	HasFullText bool      `json:"has_full_text"`
}

// NewPaperDTO constructs PaperDTO from models.Paper
func NewPaperDTO(p models.Paper) PaperDTO {
	return PaperDTO{
		ID:          p.ID.String(),
		ArxivID:     p.ArxivID,
		Title:       p.Title,
		Abstract:    p.Abstract,
		Authors:     p.Authors,
		Categories:  p.Categories,
		PublishedAt: p.PublishedAt,
		PDFURL:      p.PDFURL,
		HasFullText: p.FullText != nil,
	}
}

// DailyPaperDTO bundles everything a reader needs for one field and day:
// the selected paper plus whichever artifacts exist. Missing artifacts
// are omitted rather than erroring the whole response.
type DailyPaperDTO struct {
	Date       string                 `json:"date"`
	Field      FieldDTO               `json:"field"`
	Paper      PaperDTO               `json:"paper"`
	Summaries  map[string]string      `json:"summaries"`
	Quiz       *models.QuizData       `json:"quiz,omitempty"`
	Prereading *models.PrereadingData `json:"prereading,omitempty"`
}

// NewDailyPaperDTO assembles the daily bundle from its stored parts.
func NewDailyPaperDTO(date time.Time, field models.Field, paper models.Paper, summaries []models.Summary, quiz *models.Quiz, prereading *models.Prereading) DailyPaperDTO {
	summaryMap := make(map[string]string, len(summaries))
	for _, s := range summaries {
		summaryMap[string(s.Level)] = s.SummaryText
	}

	d := DailyPaperDTO{
		Date:      date.Format("2006-01-02"),
		Field:     NewFieldDTO(field),
		Paper:     NewPaperDTO(paper),
		Summaries: summaryMap,
	}
	if quiz != nil {
		d.Quiz = &quiz.QuizData
	}
	if prereading != nil {
		d.Prereading = &prereading.PrereadingData
	}
	return d
}
