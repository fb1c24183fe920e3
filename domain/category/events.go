package category

import "catalog/domain/shared"

// CategoryCreatedEvent category created event
type CategoryCreatedEvent struct {
	shared.BaseEvent
	name     string
	isActive bool
}

func NewCategoryCreatedEvent(c *Category) *CategoryCreatedEvent {
	return &CategoryCreatedEvent{
		BaseEvent: shared.NewBaseEvent("category.created", c.ID().String()),
		name:      c.Name(),
		isActive:  c.IsActive(),
	}
}

func (e *CategoryCreatedEvent) Payload() map[string]any {
	return map[string]any{
		"category_id": e.GetAggregateID(),
		"name":        e.name,
		"is_active":   e.isActive,
	}
}
