package models

import (
	"time"

	"github.com/google/uuid"
)

// LLMLog stores LLM usage logs (system monitoring purpose).
// Table: llm_logs
type LLMLog struct {
	ID              uuid.UUID  `json:"id"`
	ModelName       string     `json:"model_name"`
	ModelVersion    string     `json:"model_version"`
	Operation       string     `json:"operation"`
	PaperID         *uuid.UUID `json:"paper_id,omitempty"`
	InputTokens     int64      `json:"input_tokens"`
	OutputTokens    int64      `json:"output_tokens"`
	TotalTokens     int64      `json:"total_tokens"`
	DurationMs      int64      `json:"duration_ms"`
	Success         bool       `json:"success"`
	ErrorMessage    *string    `json:"error_message,omitempty"`
	ResponseExcerpt string     `json:"response_excerpt"`
	RequestedAt     time.Time  `json:"requested_at"`
	CompletedAt     time.Time  `json:"completed_at"`
}
