package genre

import (
	"context"
	"strings"

	"catalog/domain/category"
	"catalog/domain/shared"
)

// Filter 名称包含 AND 分类交集非空
type Filter struct {
	Name         string
	CategoriesID []category.CategoryID
}

// FilterInput 原始过滤输入
type FilterInput struct {
	Name         string   `json:"name" yaml:"name"`
	CategoriesID []string `json:"categories_id" yaml:"categories_id"`
}

type (
	SearchParams = shared.SearchParams[Filter]
	SearchResult = shared.SearchResult[*Genre]
)

var SortableFields = []string{"name", "created_at"}

// NewSearchParams name 空白或 categories_id 为空列表视为缺失；
// categories_id 中的非法 id 返回 SearchValidationError
func NewSearchParams(in shared.SearchInput, input *FilterInput) (SearchParams, error) {
	if input == nil {
		return shared.NewSearchParams[Filter](in, nil), nil
	}

	var f Filter
	present := false
	if strings.TrimSpace(input.Name) != "" {
		f.Name = input.Name
		present = true
	}
	if len(input.CategoriesID) > 0 {
		ids, err := category.ParseCategoryIDs(input.CategoriesID)
		if err != nil {
			return SearchParams{}, shared.NewSearchValidationError([]shared.FieldErrors{
				{"categories_id": {err.Error()}},
			})
		}
		f.CategoriesID = ids
		present = true
	}

	if !present {
		return shared.NewSearchParams[Filter](in, nil), nil
	}
	return shared.NewSearchParams(in, &f), nil
}

func (f Filter) Specification() shared.Specification[*Genre] {
	var byName, byCategories shared.Specification[*Genre]
	if f.Name != "" {
		byName = ByNameSpecification{Name: f.Name}
	}
	if len(f.CategoriesID) > 0 {
		byCategories = ByCategoriesSpecification{CategoriesID: f.CategoriesID}
	}
	return shared.AllOf(byName, byCategories)
}

// Repository 类型仓储接口
type Repository interface {
	shared.SearchableRepository[*Genre, GenreID, Filter]
}

type ByNameSpecification struct {
	Name string
}

func (spec ByNameSpecification) IsSatisfiedBy(ctx context.Context, entity *Genre) bool {
	return shared.ContainsFold(entity.Name(), spec.Name)
}

// ByCategoriesSpecification 至少关联了其中一个分类
type ByCategoriesSpecification struct {
	CategoriesID []category.CategoryID
}

func (spec ByCategoriesSpecification) IsSatisfiedBy(ctx context.Context, entity *Genre) bool {
	return entity.categoriesID.Intersects(spec.CategoriesID)
}
