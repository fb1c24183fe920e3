package category

import (
	"time"

	"catalog/domain/shared"
)

// CreateCategoryInput 创建分类入参
type CreateCategoryInput struct {
	Name        string  `json:"name" yaml:"name" validate:"required,max=255"`
	Description *string `json:"description" yaml:"description"`
	IsActive    *bool   `json:"is_active" yaml:"is_active"`
}

// UpdateCategoryInput 更新分类入参，nil 字段保持不变
type UpdateCategoryInput struct {
	ID          string  `json:"id" validate:"required"`
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// ListCategoriesInput 搜索入参，Filter 为名称关键字
type ListCategoriesInput struct {
	shared.SearchInput
	Filter string `json:"filter" yaml:"filter"`
}

// CategoryOutput 分类输出
type CategoryOutput struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
