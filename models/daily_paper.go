package models

import (
	"time"

	"github.com/google/uuid"
)

// DailyPaper binds one paper to one (date, field) pair.
// Its presence is the signal that the field's selection for that date is done.
// Table: daily_papers, unique (date, field_id)
type DailyPaper struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Date      time.Time `json:"date"`
	FieldID   uuid.UUID `json:"field_id"`
	PaperID   uuid.UUID `json:"paper_id"`
}
