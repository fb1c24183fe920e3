package gormstore

import (
	"fmt"

	"catalog/domain/castmember"
	"catalog/domain/category"
	"catalog/domain/genre"
	"catalog/domain/shared"
	"catalog/domain/video"
	"catalog/infrastructure/persistence/gormstore/po"

	"gorm.io/gorm"
)

// translate converts a domain specification to a GORM scope
// 组合规约只支持 AND（搜索过滤条件之间都是 AND）；遇到无法翻译的规约返回错误，不静默忽略
func translate[T any](spec shared.Specification[T], concrete func(shared.Specification[T]) (Scope, bool)) (Scope, error) {
	if spec == nil {
		return nil, nil
	}

	switch s := spec.(type) {
	case shared.AndSpecification[T]:
		left, err := translate(s.Left, concrete)
		if err != nil {
			return nil, err
		}
		right, err := translate(s.Right, concrete)
		if err != nil {
			return nil, err
		}
		return func(db *gorm.DB) *gorm.DB {
			if left != nil {
				db = left(db)
			}
			if right != nil {
				db = right(db)
			}
			return db
		}, nil
	}

	if scope, ok := concrete(spec); ok {
		return scope, nil
	}
	return nil, fmt.Errorf("unsupported specification %T", spec)
}

func translateCategory(spec shared.Specification[*category.Category]) (Scope, bool) {
	switch s := spec.(type) {
	case category.ByNameSpecification:
		return containsFold("name", s.Name), true
	}
	return nil, false
}

func translateCastMember(spec shared.Specification[*castmember.CastMember]) (Scope, bool) {
	switch s := spec.(type) {
	case castmember.ByNameSpecification:
		return containsFold("name", s.Name), true
	case castmember.ByTypeSpecification:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("type = ?", s.Type.Int())
		}, true
	}
	return nil, false
}

func translateGenre(spec shared.Specification[*genre.Genre]) (Scope, bool) {
	switch s := spec.(type) {
	case genre.ByNameSpecification:
		return containsFold("name", s.Name), true
	case genre.ByCategoriesSpecification:
		return relatedTo(&po.CategoryGenrePO{}, "genre_id", "category_id", idStrings(s.CategoriesID)), true
	}
	return nil, false
}

func translateVideo(spec shared.Specification[*video.Video]) (Scope, bool) {
	switch s := spec.(type) {
	case video.ByTitleSpecification:
		return containsFold("title", s.Title), true
	case video.ByCategoriesSpecification:
		return relatedTo(&po.CategoryVideoPO{}, "video_id", "category_id", idStrings(s.CategoriesID)), true
	case video.ByGenresSpecification:
		return relatedTo(&po.GenreVideoPO{}, "video_id", "genre_id", idStrings(s.GenresID)), true
	case video.ByCastMembersSpecification:
		return relatedTo(&po.CastMemberVideoPO{}, "video_id", "cast_member_id", idStrings(s.CastMembersID)), true
	}
	return nil, false
}
