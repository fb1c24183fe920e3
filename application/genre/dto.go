package genre

import (
	"time"

	"catalog/domain/genre"
	"catalog/domain/shared"
)

type CreateGenreInput struct {
	Name         string   `json:"name" yaml:"name" validate:"required,max=255"`
	CategoriesID []string `json:"categories_id" yaml:"categories_id" validate:"required,min=1"`
	IsActive     *bool    `json:"is_active" yaml:"is_active"`
}

// UpdateGenreInput CategoriesID 为 nil 时不修改关联；非 nil 时整体替换
type UpdateGenreInput struct {
	ID           string   `json:"id" validate:"required"`
	Name         *string  `json:"name" validate:"omitempty,max=255"`
	CategoriesID []string `json:"categories_id" validate:"omitnil,min=1"`
	IsActive     *bool    `json:"is_active"`
}

type ListGenresInput struct {
	shared.SearchInput
	Filter *genre.FilterInput `json:"filter" yaml:"filter"`
}

// GenreCategoryOutput 类型输出中内嵌的分类
type GenreCategoryOutput struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type GenreOutput struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Categories   []GenreCategoryOutput `json:"categories"`
	CategoriesID []string              `json:"categories_id"`
	IsActive     bool                  `json:"is_active"`
	CreatedAt    time.Time             `json:"created_at"`
}
