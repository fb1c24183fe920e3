package po

import (
	"encoding/json"
	"time"

	"catalog/domain/shared"

	"github.com/google/uuid"
)

// OutboxEventPO Outbox event persistence object
// 事件与业务数据在同一事务中写入，由外部进程读取投递
type OutboxEventPO struct {
	ID          string    `gorm:"primaryKey;size:36"`
	AggregateID string    `gorm:"size:36;index;not null"`
	EventType   string    `gorm:"size:100;index;not null"` // e.g., "genre.created"
	Payload     string    `gorm:"type:text;not null"`      // JSON serialized event data
	Status      string    `gorm:"size:20;not null"`        // PENDING, PUBLISHED
	OccurredOn  time.Time `gorm:"precision:6;not null"`
	CreatedAt   time.Time `gorm:"precision:6;index"`
}

func (OutboxEventPO) TableName() string {
	return "outbox_events"
}

type EventStatus string

const (
	EventStatusPending   EventStatus = "PENDING"
	EventStatusPublished EventStatus = "PUBLISHED"
)

// FromDomainEvent Convert domain event to outbox persistence object
func FromDomainEvent(event shared.DomainEvent) (*OutboxEventPO, error) {
	payload, err := json.Marshal(map[string]any{
		"event_name":   event.EventName(),
		"aggregate_id": event.GetAggregateID(),
		"occurred_on":  event.OccurredOn(),
		"data":         event.Payload(),
	})
	if err != nil {
		return nil, err
	}

	return &OutboxEventPO{
		ID:          uuid.NewString(),
		AggregateID: event.GetAggregateID(),
		EventType:   event.EventName(),
		Payload:     string(payload),
		Status:      string(EventStatusPending),
		OccurredOn:  event.OccurredOn(),
		CreatedAt:   time.Now(),
	}, nil
}

// ToEventData Extract event data from outbox PO (for debugging/testing)
func (p *OutboxEventPO) ToEventData() (map[string]any, error) {
	var data map[string]any
	if err := json.Unmarshal([]byte(p.Payload), &data); err != nil {
		return nil, err
	}
	return data, nil
}

// AllModels AutoMigrate 使用的全部模型
func AllModels() []any {
	return []any{
		&CategoryPO{},
		&CastMemberPO{},
		&GenrePO{},
		&CategoryGenrePO{},
		&VideoPO{},
		&CategoryVideoPO{},
		&GenreVideoPO{},
		&CastMemberVideoPO{},
		&OutboxEventPO{},
	}
}
