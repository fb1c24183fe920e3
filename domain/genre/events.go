package genre

import "catalog/domain/shared"

// GenreCreatedEvent genre created event
type GenreCreatedEvent struct {
	shared.BaseEvent
	name         string
	categoriesID []string
}

func NewGenreCreatedEvent(g *Genre) *GenreCreatedEvent {
	return &GenreCreatedEvent{
		BaseEvent:    shared.NewBaseEvent("genre.created", g.ID().String()),
		name:         g.Name(),
		categoriesID: g.categoriesID.Strings(),
	}
}

func (e *GenreCreatedEvent) Payload() map[string]any {
	return map[string]any{
		"genre_id":      e.GetAggregateID(),
		"name":          e.name,
		"categories_id": e.categoriesID,
	}
}
