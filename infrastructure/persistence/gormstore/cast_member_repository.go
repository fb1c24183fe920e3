package gormstore

import (
	"context"
	"errors"

	"catalog/domain/castmember"
	"catalog/domain/shared"
	"catalog/infrastructure/persistence/gormstore/po"

	"gorm.io/gorm"
)

// CastMemberRepository GORM 实现的演职人员仓储
type CastMemberRepository struct {
	base
}

func NewCastMemberRepository(db *gorm.DB) *CastMemberRepository {
	return &CastMemberRepository{base{db: db}}
}

var castMemberSortable = map[string]string{
	"name":       "name",
	"created_at": "created_at",
}

func (r *CastMemberRepository) Insert(ctx context.Context, m *castmember.CastMember) error {
	memberPO := po.FromCastMemberDomain(m)
	if err := r.getDB(ctx).Create(memberPO).Error; err != nil {
		return translateWriteError(err, castmember.EntityName, memberPO.ID)
	}
	return nil
}

func (r *CastMemberRepository) BulkInsert(ctx context.Context, members []*castmember.CastMember) error {
	if len(members) == 0 {
		return nil
	}
	rows := make([]*po.CastMemberPO, len(members))
	for i, m := range members {
		rows[i] = po.FromCastMemberDomain(m)
	}
	return r.inTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(&rows).Error; err != nil {
			return translateWriteError(err, castmember.EntityName, "")
		}
		return nil
	})
}

func (r *CastMemberRepository) Update(ctx context.Context, m *castmember.CastMember) error {
	memberPO := po.FromCastMemberDomain(m)
	return r.inTx(ctx, func(tx *gorm.DB) error {
		result := tx.Model(&po.CastMemberPO{}).
			Where("id = ?", memberPO.ID).
			Updates(map[string]interface{}{
				"name": memberPO.Name,
				"type": memberPO.Type,
			})
		if result.Error != nil {
			return result.Error
		}
		return ensureRowExists(tx, result, &po.CastMemberPO{}, castmember.EntityName, memberPO.ID)
	})
}

func (r *CastMemberRepository) Delete(ctx context.Context, id castmember.CastMemberID) error {
	result := r.getDB(ctx).Delete(&po.CastMemberPO{}, "id = ?", id.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError(castmember.EntityName, id.String())
	}
	return nil
}

func (r *CastMemberRepository) FindByID(ctx context.Context, id castmember.CastMemberID) (*castmember.CastMember, error) {
	var memberPO po.CastMemberPO
	err := r.getDB(ctx).First(&memberPO, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return memberPO.ToDomain()
}

func (r *CastMemberRepository) FindAll(ctx context.Context) ([]*castmember.CastMember, error) {
	var rows []po.CastMemberPO
	if err := r.getDB(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.toDomain(rows)
}

func (r *CastMemberRepository) FindByIDs(ctx context.Context, ids []castmember.CastMemberID) ([]*castmember.CastMember, error) {
	if len(ids) == 0 {
		return make([]*castmember.CastMember, 0), nil
	}
	var rows []po.CastMemberPO
	if err := r.getDB(ctx).Where("id IN ?", idStrings(ids)).Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.toDomain(rows)
}

func (r *CastMemberRepository) ExistsByIDs(ctx context.Context, ids []castmember.CastMemberID) (shared.ExistsResult[castmember.CastMemberID], error) {
	if len(ids) == 0 {
		return shared.ExistsResult[castmember.CastMemberID]{}, shared.ErrEmptyIDs()
	}
	found, err := existingIDs(r.getDB(ctx), &po.CastMemberPO{}, idStrings(ids))
	if err != nil {
		return shared.ExistsResult[castmember.CastMemberID]{}, err
	}
	return splitExists(ids, found), nil
}

func (r *CastMemberRepository) SortableFields() []string {
	return castmember.SortableFields
}

func (r *CastMemberRepository) Search(ctx context.Context, params castmember.SearchParams) (castmember.SearchResult, error) {
	var scopes []Scope
	if filter, ok := params.Filter(); ok {
		scope, err := translate(filter.Specification(), translateCastMember)
		if err != nil {
			return castmember.SearchResult{}, err
		}
		if scope != nil {
			scopes = append(scopes, scope)
		}
	}

	var rows []po.CastMemberPO
	total, err := search(ctx, r.getDB, searchQuery{
		model:   &po.CastMemberPO{},
		scopes:  scopes,
		order:   orderClause(r.db, castMemberSortable, []string{"name"}, params.Sort(), params.SortDir()),
		offset:  params.Offset(),
		limit:   params.PerPage(),
		metrics: "cast_member",
	}, &rows)
	if err != nil {
		return castmember.SearchResult{}, err
	}

	items, err := r.toDomain(rows)
	if err != nil {
		return castmember.SearchResult{}, err
	}
	return shared.NewSearchResult(items, total, params.Page(), params.PerPage()), nil
}

func (r *CastMemberRepository) toDomain(rows []po.CastMemberPO) ([]*castmember.CastMember, error) {
	out := make([]*castmember.CastMember, 0, len(rows))
	for i := range rows {
		m, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

var _ castmember.Repository = (*CastMemberRepository)(nil)
