package eventbus

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

// Event는 Kafka 메시지의 페이로드로 사용되는 구조체입니다.
type Event struct {
	ID      string          `json:"id"`
	Payload json.RawMessage `json:"payload"`
}

// NewJSONEvent는 페이로드를 JSON으로 직렬화하여 Event를 생성합니다.
// id가 비어 있으면 새 UUID를 부여합니다.
func NewJSONEvent(id string, payload any) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	if id == "" {
		id = uuid.NewString()
	}
	return Event{ID: id, Payload: data}, nil
}

// EventBus 인터페이스는 이벤트 발행의 추상화를 정의합니다.
// 이 서비스는 발행만 하고 구독하지 않습니다.
type EventBus interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close()
}
