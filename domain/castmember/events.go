package castmember

import "catalog/domain/shared"

// CastMemberCreatedEvent cast member created event
type CastMemberCreatedEvent struct {
	shared.BaseEvent
	name string
	typ  CastMemberType
}

func NewCastMemberCreatedEvent(m *CastMember) *CastMemberCreatedEvent {
	return &CastMemberCreatedEvent{
		BaseEvent: shared.NewBaseEvent("cast_member.created", m.ID().String()),
		name:      m.Name(),
		typ:       m.Type(),
	}
}

func (e *CastMemberCreatedEvent) Payload() map[string]any {
	return map[string]any{
		"cast_member_id": e.GetAggregateID(),
		"name":           e.name,
		"type":           e.typ.Int(),
	}
}
