package gormstore

import (
	"context"
	"errors"

	"catalog/domain/category"
	"catalog/domain/shared"
	"catalog/infrastructure/persistence/gormstore/po"

	"gorm.io/gorm"
)

// CategoryRepository GORM 实现的分类仓储
type CategoryRepository struct {
	base
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{base{db: db}}
}

var categorySortable = map[string]string{
	"name":       "name",
	"created_at": "created_at",
}

func (r *CategoryRepository) Insert(ctx context.Context, c *category.Category) error {
	categoryPO := po.FromCategoryDomain(c)
	if err := r.getDB(ctx).Create(categoryPO).Error; err != nil {
		return translateWriteError(err, category.EntityName, categoryPO.ID)
	}
	return nil
}

func (r *CategoryRepository) BulkInsert(ctx context.Context, categories []*category.Category) error {
	if len(categories) == 0 {
		return nil
	}
	rows := make([]*po.CategoryPO, len(categories))
	for i, c := range categories {
		rows[i] = po.FromCategoryDomain(c)
	}
	return r.inTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(&rows).Error; err != nil {
			return translateWriteError(err, category.EntityName, "")
		}
		return nil
	})
}

func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) error {
	categoryPO := po.FromCategoryDomain(c)
	return r.inTx(ctx, func(tx *gorm.DB) error {
		result := tx.Model(&po.CategoryPO{}).
			Where("id = ?", categoryPO.ID).
			Updates(map[string]interface{}{
				"name":        categoryPO.Name,
				"description": categoryPO.Description,
				"is_active":   categoryPO.IsActive,
			})
		if result.Error != nil {
			return result.Error
		}
		return ensureRowExists(tx, result, &po.CategoryPO{}, category.EntityName, categoryPO.ID)
	})
}

func (r *CategoryRepository) Delete(ctx context.Context, id category.CategoryID) error {
	result := r.getDB(ctx).Delete(&po.CategoryPO{}, "id = ?", id.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError(category.EntityName, id.String())
	}
	return nil
}

// FindByID 不存在时返回 (nil, nil)
func (r *CategoryRepository) FindByID(ctx context.Context, id category.CategoryID) (*category.Category, error) {
	var categoryPO po.CategoryPO
	err := r.getDB(ctx).First(&categoryPO, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return categoryPO.ToDomain()
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]*category.Category, error) {
	var rows []po.CategoryPO
	if err := r.getDB(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.toDomain(rows)
}

func (r *CategoryRepository) FindByIDs(ctx context.Context, ids []category.CategoryID) ([]*category.Category, error) {
	if len(ids) == 0 {
		return make([]*category.Category, 0), nil
	}
	var rows []po.CategoryPO
	if err := r.getDB(ctx).Where("id IN ?", idStrings(ids)).Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.toDomain(rows)
}

func (r *CategoryRepository) ExistsByIDs(ctx context.Context, ids []category.CategoryID) (shared.ExistsResult[category.CategoryID], error) {
	if len(ids) == 0 {
		return shared.ExistsResult[category.CategoryID]{}, shared.ErrEmptyIDs()
	}
	found, err := existingIDs(r.getDB(ctx), &po.CategoryPO{}, idStrings(ids))
	if err != nil {
		return shared.ExistsResult[category.CategoryID]{}, err
	}
	return splitExists(ids, found), nil
}

func (r *CategoryRepository) SortableFields() []string {
	return category.SortableFields
}

func (r *CategoryRepository) Search(ctx context.Context, params category.SearchParams) (category.SearchResult, error) {
	var scopes []Scope
	if filter, ok := params.Filter(); ok {
		scope, err := translate(filter.Specification(), translateCategory)
		if err != nil {
			return category.SearchResult{}, err
		}
		if scope != nil {
			scopes = append(scopes, scope)
		}
	}

	var rows []po.CategoryPO
	total, err := search(ctx, r.getDB, searchQuery{
		model:   &po.CategoryPO{},
		scopes:  scopes,
		order:   orderClause(r.db, categorySortable, []string{"name"}, params.Sort(), params.SortDir()),
		offset:  params.Offset(),
		limit:   params.PerPage(),
		metrics: "category",
	}, &rows)
	if err != nil {
		return category.SearchResult{}, err
	}

	items, err := r.toDomain(rows)
	if err != nil {
		return category.SearchResult{}, err
	}
	return shared.NewSearchResult(items, total, params.Page(), params.PerPage()), nil
}

func (r *CategoryRepository) toDomain(rows []po.CategoryPO) ([]*category.Category, error) {
	out := make([]*category.Category, 0, len(rows))
	for i := range rows {
		c, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

var _ category.Repository = (*CategoryRepository)(nil)
