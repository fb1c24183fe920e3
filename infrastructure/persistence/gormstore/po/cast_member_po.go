package po

import (
	"time"

	"catalog/domain/castmember"
)

// CastMemberPO Cast member persistence object
type CastMemberPO struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"size:255;not null"`
	Type      int       `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"precision:6;not null;index"`
}

func (CastMemberPO) TableName() string {
	return "cast_members"
}

func (p *CastMemberPO) ToDomain() (*castmember.CastMember, error) {
	return castmember.RebuildFromDTO(castmember.ReconstructionDTO{
		ID:        p.ID,
		Name:      p.Name,
		Type:      p.Type,
		CreatedAt: p.CreatedAt,
	})
}

func FromCastMemberDomain(m *castmember.CastMember) *CastMemberPO {
	return &CastMemberPO{
		ID:        m.ID().String(),
		Name:      m.Name(),
		Type:      m.Type().Int(),
		CreatedAt: m.CreatedAt(),
	}
}
