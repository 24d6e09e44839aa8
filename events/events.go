package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType 이벤트 타입 정의
type EventType string

const (
	// PaperIngested 필드 하나의 논문 아티팩트가 모두 준비되었을 때 발행
	PaperIngested EventType = "paper.ingested"

	// IngestCompleted 일일 배치 전체가 끝났을 때 발행
	IngestCompleted EventType = "ingest.completed"
)

// BaseEvent 모든 이벤트의 기본 구조
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"` // "api", "ingest" 등
	Version   string    `json:"version"`
}

// GetType 이벤트 타입을 반환
func (e BaseEvent) GetType() EventType {
	return e.Type
}

// PaperIngestedEvent 오늘의 논문 선정과 아티팩트 생성 완료 이벤트
type PaperIngestedEvent struct {
	BaseEvent
	FieldSlug string    `json:"field_slug"`
	Date      string    `json:"date"`
	PaperID   uuid.UUID `json:"paper_id"`
	ArxivID   string    `json:"arxiv_id"`
	Title     string    `json:"title"`
}

// IngestCompletedEvent 일일 수집 배치 완료 이벤트
type IngestCompletedEvent struct {
	BaseEvent
	Date         string `json:"date"`
	SuccessCount int    `json:"success_count"`
	FailCount    int    `json:"fail_count"`
}
