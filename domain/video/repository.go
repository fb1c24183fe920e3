package video

import (
	"context"
	"strings"

	"catalog/domain/castmember"
	"catalog/domain/category"
	"catalog/domain/genre"
	"catalog/domain/shared"
)

// Filter 所有出现的条件之间是 AND；每个关联条件是"交集非空"
type Filter struct {
	Title         string
	CategoriesID  []category.CategoryID
	GenresID      []genre.GenreID
	CastMembersID []castmember.CastMemberID
}

type FilterInput struct {
	Title         string   `json:"title" yaml:"title"`
	CategoriesID  []string `json:"categories_id" yaml:"categories_id"`
	GenresID      []string `json:"genres_id" yaml:"genres_id"`
	CastMembersID []string `json:"cast_members_id" yaml:"cast_members_id"`
}

type (
	SearchParams = shared.SearchParams[Filter]
	SearchResult = shared.SearchResult[*Video]
)

var SortableFields = []string{"title", "created_at"}

// NewSearchParams 非法 id 按字段收集，一次性返回 SearchValidationError
func NewSearchParams(in shared.SearchInput, input *FilterInput) (SearchParams, error) {
	if input == nil {
		return shared.NewSearchParams[Filter](in, nil), nil
	}

	var (
		f       Filter
		present bool
		errs    []shared.FieldErrors
	)
	if strings.TrimSpace(input.Title) != "" {
		f.Title = input.Title
		present = true
	}
	if len(input.CategoriesID) > 0 {
		ids, err := category.ParseCategoryIDs(input.CategoriesID)
		if err != nil {
			errs = append(errs, shared.FieldErrors{"categories_id": {err.Error()}})
		}
		f.CategoriesID = ids
		present = true
	}
	if len(input.GenresID) > 0 {
		ids, err := genre.ParseGenreIDs(input.GenresID)
		if err != nil {
			errs = append(errs, shared.FieldErrors{"genres_id": {err.Error()}})
		}
		f.GenresID = ids
		present = true
	}
	if len(input.CastMembersID) > 0 {
		ids, err := castmember.ParseCastMemberIDs(input.CastMembersID)
		if err != nil {
			errs = append(errs, shared.FieldErrors{"cast_members_id": {err.Error()}})
		}
		f.CastMembersID = ids
		present = true
	}

	if len(errs) > 0 {
		return SearchParams{}, shared.NewSearchValidationError(errs)
	}
	if !present {
		return shared.NewSearchParams[Filter](in, nil), nil
	}
	return shared.NewSearchParams(in, &f), nil
}

func (f Filter) Specification() shared.Specification[*Video] {
	specs := make([]shared.Specification[*Video], 0, 4)
	if f.Title != "" {
		specs = append(specs, ByTitleSpecification{Title: f.Title})
	}
	if len(f.CategoriesID) > 0 {
		specs = append(specs, ByCategoriesSpecification{CategoriesID: f.CategoriesID})
	}
	if len(f.GenresID) > 0 {
		specs = append(specs, ByGenresSpecification{GenresID: f.GenresID})
	}
	if len(f.CastMembersID) > 0 {
		specs = append(specs, ByCastMembersSpecification{CastMembersID: f.CastMembersID})
	}
	return shared.AllOf(specs...)
}

// Repository 视频仓储接口
type Repository interface {
	shared.SearchableRepository[*Video, VideoID, Filter]
}

type ByTitleSpecification struct {
	Title string
}

func (spec ByTitleSpecification) IsSatisfiedBy(ctx context.Context, entity *Video) bool {
	return shared.ContainsFold(entity.Title(), spec.Title)
}

type ByCategoriesSpecification struct {
	CategoriesID []category.CategoryID
}

func (spec ByCategoriesSpecification) IsSatisfiedBy(ctx context.Context, entity *Video) bool {
	return entity.categoriesID.Intersects(spec.CategoriesID)
}

type ByGenresSpecification struct {
	GenresID []genre.GenreID
}

func (spec ByGenresSpecification) IsSatisfiedBy(ctx context.Context, entity *Video) bool {
	return entity.genresID.Intersects(spec.GenresID)
}

type ByCastMembersSpecification struct {
	CastMembersID []castmember.CastMemberID
}

func (spec ByCastMembersSpecification) IsSatisfiedBy(ctx context.Context, entity *Video) bool {
	return entity.castMembersID.Intersects(spec.CastMembersID)
}
