package castmember

import (
	"time"

	"catalog/domain/shared"
)

const EntityName = "CastMember"

type CastMemberID struct {
	shared.Uuid
}

func NewCastMemberID() CastMemberID {
	return CastMemberID{shared.NewUuid()}
}

func ParseCastMemberID(id string) (CastMemberID, error) {
	u, err := shared.ParseUuid(id)
	if err != nil {
		return CastMemberID{}, err
	}
	return CastMemberID{u}, nil
}

func ParseCastMemberIDs(ids []string) ([]CastMemberID, error) {
	out := make([]CastMemberID, 0, len(ids))
	for _, raw := range ids {
		id, err := ParseCastMemberID(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// CastMember 演职人员聚合根
type CastMember struct {
	shared.AggregateRoot

	id        CastMemberID
	name      string
	typ       CastMemberType
	createdAt time.Time
}

type Props struct {
	ID        *CastMemberID
	Name      string
	Type      CastMemberType
	CreatedAt *time.Time
}

func NewCastMember(props Props) *CastMember {
	m := build(props)
	m.validate()
	m.RecordEvent(NewCastMemberCreatedEvent(m))
	return m
}

func build(props Props) *CastMember {
	m := &CastMember{
		AggregateRoot: shared.NewAggregateRoot(),
		id:            NewCastMemberID(),
		name:          props.Name,
		typ:           props.Type,
		createdAt:     time.Now(),
	}
	if props.ID != nil {
		m.id = *props.ID
	}
	if props.CreatedAt != nil {
		m.createdAt = *props.CreatedAt
	}
	return m
}

func (m *CastMember) validate() {
	m.validateName()
	m.validateType()
}

func (m *CastMember) validateName() bool {
	return shared.ValidateField(m.Notification(), "name", m.name, "required,max=255")
}

func (m *CastMember) validateType() bool {
	if m.typ.IsValid() {
		return true
	}
	m.Notification().AddError((&InvalidCastMemberTypeError{Value: int(m.typ)}).Error(), "type")
	return false
}

func (m *CastMember) ChangeName(name string) {
	m.name = name
	m.validateName()
}

func (m *CastMember) ChangeType(t CastMemberType) {
	m.typ = t
	m.validateType()
}

func (m *CastMember) ID() CastMemberID                { return m.id }
func (m *CastMember) EntityID() shared.Identifier     { return m.id }
func (m *CastMember) Name() string                    { return m.name }
func (m *CastMember) Type() CastMemberType            { return m.typ }
func (m *CastMember) CreatedAt() time.Time            { return m.createdAt }
func (m *CastMember) Equals(other shared.Entity) bool { return shared.SameEntity(m, other) }

func (m *CastMember) Clone() *CastMember {
	cp := *m
	cp.AggregateRoot = shared.NewAggregateRoot()
	return &cp
}

// ReconstructionDTO 仅供仓储重建使用
type ReconstructionDTO struct {
	ID        string
	Name      string
	Type      int
	CreatedAt time.Time
}

func RebuildFromDTO(dto ReconstructionDTO) (*CastMember, error) {
	id, err := ParseCastMemberID(dto.ID)
	if err != nil {
		return nil, err
	}
	createdAt := dto.CreatedAt
	m := build(Props{ID: &id, Name: dto.Name, Type: CastMemberType(dto.Type), CreatedAt: &createdAt})
	m.validate()
	if m.Notification().HasErrors() {
		return nil, shared.NewLoadEntityError(m.Notification().Errors())
	}
	return m, nil
}

var _ shared.Aggregate = (*CastMember)(nil)
