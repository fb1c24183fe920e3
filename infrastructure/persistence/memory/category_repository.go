package memory

import (
	"strings"
	"time"

	"catalog/domain/category"
	"catalog/domain/shared"
)

// CategoryRepository 分类仓储的内存实现
type CategoryRepository struct {
	*SearchableRepository[*category.Category, category.CategoryID, category.Filter]
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{
		SearchableRepository: NewSearchableRepository[*category.Category, category.CategoryID](
			category.EntityName,
			func(f category.Filter) shared.Specification[*category.Category] { return f.Specification() },
			func(c *category.Category) time.Time { return c.CreatedAt() },
			SortField[*category.Category]{Name: "name", Compare: func(a, b *category.Category) int {
				return strings.Compare(a.Name(), b.Name())
			}},
			SortField[*category.Category]{Name: "created_at", Compare: func(a, b *category.Category) int {
				return a.CreatedAt().Compare(b.CreatedAt())
			}},
		),
	}
}

var _ category.Repository = (*CategoryRepository)(nil)
