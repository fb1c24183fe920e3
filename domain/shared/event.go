package shared

import (
	"fmt"
	"time"
)

// DomainEvent 领域事件
// 聚合记录事件，工作单元在事务提交前把事件写入 outbox
type DomainEvent interface {
	EventName() string
	OccurredOn() time.Time
	GetAggregateID() string
	// Payload 事件专属数据，写入 outbox 时序列化为 JSON
	Payload() map[string]any
}

func ValidateEvent(event DomainEvent) error {
	if event == nil {
		return fmt.Errorf("event cannot be nil")
	}

	if event.EventName() == "" {
		return fmt.Errorf("event name cannot be empty")
	}

	aggregateID := event.GetAggregateID()
	if aggregateID == "" {
		return fmt.Errorf("aggregate ID cannot be empty")
	}

	occurredOn := event.OccurredOn()
	if occurredOn.IsZero() {
		return fmt.Errorf("occurred on time cannot be zero")
	}

	return nil
}

// BaseEvent 通用字段，由具体事件嵌入
type BaseEvent struct {
	name        string
	aggregateID string
	occurredOn  time.Time
}

func NewBaseEvent(name, aggregateID string) BaseEvent {
	return BaseEvent{name: name, aggregateID: aggregateID, occurredOn: time.Now()}
}

func (e BaseEvent) EventName() string      { return e.name }
func (e BaseEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e BaseEvent) GetAggregateID() string { return e.aggregateID }
