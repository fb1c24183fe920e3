package memory

import (
	"strings"
	"time"

	"catalog/domain/castmember"
	"catalog/domain/shared"
)

// CastMemberRepository 演职人员仓储的内存实现
type CastMemberRepository struct {
	*SearchableRepository[*castmember.CastMember, castmember.CastMemberID, castmember.Filter]
}

func NewCastMemberRepository() *CastMemberRepository {
	return &CastMemberRepository{
		SearchableRepository: NewSearchableRepository[*castmember.CastMember, castmember.CastMemberID](
			castmember.EntityName,
			func(f castmember.Filter) shared.Specification[*castmember.CastMember] { return f.Specification() },
			func(m *castmember.CastMember) time.Time { return m.CreatedAt() },
			SortField[*castmember.CastMember]{Name: "name", Compare: func(a, b *castmember.CastMember) int {
				return strings.Compare(a.Name(), b.Name())
			}},
			SortField[*castmember.CastMember]{Name: "created_at", Compare: func(a, b *castmember.CastMember) int {
				return a.CreatedAt().Compare(b.CreatedAt())
			}},
		),
	}
}

var _ castmember.Repository = (*CastMemberRepository)(nil)
