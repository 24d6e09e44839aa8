package models

// FieldIngestResult reports the outcome of ingesting one field for one date.
// Error is null on success so that callers always see the key.
type FieldIngestResult struct {
	Field   string  `json:"field"`
	Success bool    `json:"success"`
	PaperID string  `json:"paper_id,omitempty"`
	ArxivID string  `json:"arxiv_id,omitempty"`
	Error   *string `json:"error"`
}

// IngestReport is the batch-level outcome across all fields for one date.
// Partial failure is a normal outcome: failures are data here, not errors.
type IngestReport struct {
	Message      string              `json:"message"`
	Date         string              `json:"date"`
	SuccessCount int                 `json:"success_count"`
	FailCount    int                 `json:"fail_count"`
	Results      []FieldIngestResult `json:"results"`
}
