package video

import "catalog/domain/shared"

// VideoCreatedEvent video created event
type VideoCreatedEvent struct {
	shared.BaseEvent
	title         string
	rating        Rating
	categoriesID  []string
	genresID      []string
	castMembersID []string
}

func NewVideoCreatedEvent(v *Video) *VideoCreatedEvent {
	return &VideoCreatedEvent{
		BaseEvent:     shared.NewBaseEvent("video.created", v.ID().String()),
		title:         v.Title(),
		rating:        v.Rating(),
		categoriesID:  v.categoriesID.Strings(),
		genresID:      v.genresID.Strings(),
		castMembersID: v.castMembersID.Strings(),
	}
}

func (e *VideoCreatedEvent) Payload() map[string]any {
	return map[string]any{
		"video_id":        e.GetAggregateID(),
		"title":           e.title,
		"rating":          e.rating.String(),
		"categories_id":   e.categoriesID,
		"genres_id":       e.genresID,
		"cast_members_id": e.castMembersID,
	}
}
