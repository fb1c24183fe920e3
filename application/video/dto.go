package video

import (
	"time"

	"catalog/domain/shared"
	"catalog/domain/video"
)

type CreateVideoInput struct {
	Title         string   `json:"title" yaml:"title" validate:"required,max=255"`
	Description   string   `json:"description" yaml:"description"`
	YearLaunched  int      `json:"year_launched" yaml:"year_launched" validate:"required"`
	Duration      int      `json:"duration" yaml:"duration" validate:"required"`
	Rating        string   `json:"rating" yaml:"rating" validate:"required"`
	IsOpened      bool     `json:"is_opened" yaml:"is_opened"`
	IsPublished   bool     `json:"is_published" yaml:"is_published"`
	CategoriesID  []string `json:"categories_id" yaml:"categories_id" validate:"required,min=1"`
	GenresID      []string `json:"genres_id" yaml:"genres_id" validate:"required,min=1"`
	CastMembersID []string `json:"cast_members_id" yaml:"cast_members_id" validate:"required,min=1"`
}

// UpdateVideoInput nil 字段保持不变；关联 id 列表非 nil 时整体替换
type UpdateVideoInput struct {
	ID            string   `json:"id" validate:"required"`
	Title         *string  `json:"title" validate:"omitempty,max=255"`
	Description   *string  `json:"description"`
	YearLaunched  *int     `json:"year_launched"`
	Duration      *int     `json:"duration"`
	Rating        *string  `json:"rating"`
	IsOpened      *bool    `json:"is_opened"`
	IsPublished   *bool    `json:"is_published"`
	CategoriesID  []string `json:"categories_id" validate:"omitnil,min=1"`
	GenresID      []string `json:"genres_id" validate:"omitnil,min=1"`
	CastMembersID []string `json:"cast_members_id" validate:"omitnil,min=1"`
}

type ListVideosInput struct {
	shared.SearchInput
	Filter *video.FilterInput `json:"filter" yaml:"filter"`
}

// VideoIDOutput Create / Update 只返回 id
type VideoIDOutput struct {
	ID string `json:"id"`
}

type VideoCategoryOutput struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type VideoGenreOutput struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	IsActive     bool      `json:"is_active"`
	CategoriesID []string  `json:"categories_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type VideoCastMemberOutput struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      int       `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

type VideoOutput struct {
	ID            string                  `json:"id"`
	Title         string                  `json:"title"`
	Description   string                  `json:"description"`
	YearLaunched  int                     `json:"year_launched"`
	Duration      int                     `json:"duration"`
	Rating        string                  `json:"rating"`
	IsOpened      bool                    `json:"is_opened"`
	IsPublished   bool                    `json:"is_published"`
	Categories    []VideoCategoryOutput   `json:"categories"`
	CategoriesID  []string                `json:"categories_id"`
	Genres        []VideoGenreOutput      `json:"genres"`
	GenresID      []string                `json:"genres_id"`
	CastMembers   []VideoCastMemberOutput `json:"cast_members"`
	CastMembersID []string                `json:"cast_members_id"`
	CreatedAt     time.Time               `json:"created_at"`
}
