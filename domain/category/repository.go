package category

import (
	"context"
	"strings"

	"catalog/domain/shared"
)

// Filter 按名称模糊匹配（大小写不敏感）
type Filter string

// SearchParams / SearchResult 分类搜索类型别名
type (
	SearchParams = shared.SearchParams[Filter]
	SearchResult = shared.SearchResult[*Category]
)

// SortableFields 允许排序的字段
var SortableFields = []string{"name", "created_at"}

// NewSearchParams 空白过滤条件视为未设置
func NewSearchParams(in shared.SearchInput, filter string) SearchParams {
	if strings.TrimSpace(filter) == "" {
		return shared.NewSearchParams[Filter](in, nil)
	}
	f := Filter(filter)
	return shared.NewSearchParams(in, &f)
}

// Specification 把过滤条件转换为领域规约
func (f Filter) Specification() shared.Specification[*Category] {
	return ByNameSpecification{Name: string(f)}
}

// Repository 分类仓储接口
type Repository interface {
	shared.SearchableRepository[*Category, CategoryID, Filter]
}

// ByNameSpecification 名称包含（大小写不敏感）
type ByNameSpecification struct {
	Name string
}

func (spec ByNameSpecification) IsSatisfiedBy(ctx context.Context, entity *Category) bool {
	return shared.ContainsFold(entity.Name(), spec.Name)
}
