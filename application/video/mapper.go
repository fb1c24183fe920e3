package video

import (
	"catalog/domain/castmember"
	"catalog/domain/category"
	"catalog/domain/genre"
	"catalog/domain/shared"
	"catalog/domain/video"
)

// related 组装输出所需的关联聚合，可以是多个视频共用的超集
type related struct {
	categories  map[string]*category.Category
	genres      map[string]*genre.Genre
	castMembers map[string]*castmember.CastMember
}

func indexByID[E shared.Entity](items []E) map[string]E {
	out := make(map[string]E, len(items))
	for _, item := range items {
		out[item.EntityID().String()] = item
	}
	return out
}

// ToOutput 关联按视频自身集合的顺序输出，已不存在的关联被跳过
func ToOutput(v *video.Video, rel related) VideoOutput {
	out := VideoOutput{
		ID:            v.ID().String(),
		Title:         v.Title(),
		Description:   v.Description(),
		YearLaunched:  v.YearLaunched(),
		Duration:      v.Duration(),
		Rating:        v.Rating().String(),
		IsOpened:      v.IsOpened(),
		IsPublished:   v.IsPublished(),
		Categories:    make([]VideoCategoryOutput, 0),
		CategoriesID:  make([]string, 0),
		Genres:        make([]VideoGenreOutput, 0),
		GenresID:      make([]string, 0),
		CastMembers:   make([]VideoCastMemberOutput, 0),
		CastMembersID: make([]string, 0),
		CreatedAt:     v.CreatedAt(),
	}

	for _, id := range v.CategoriesID() {
		out.CategoriesID = append(out.CategoriesID, id.String())
		if c, ok := rel.categories[id.String()]; ok {
			out.Categories = append(out.Categories, VideoCategoryOutput{
				ID:        c.ID().String(),
				Name:      c.Name(),
				CreatedAt: c.CreatedAt(),
			})
		}
	}
	for _, id := range v.GenresID() {
		out.GenresID = append(out.GenresID, id.String())
		if g, ok := rel.genres[id.String()]; ok {
			categoriesID := make([]string, 0, len(g.CategoriesID()))
			for _, cid := range g.CategoriesID() {
				categoriesID = append(categoriesID, cid.String())
			}
			out.Genres = append(out.Genres, VideoGenreOutput{
				ID:           g.ID().String(),
				Name:         g.Name(),
				IsActive:     g.IsActive(),
				CategoriesID: categoriesID,
				CreatedAt:    g.CreatedAt(),
			})
		}
	}
	for _, id := range v.CastMembersID() {
		out.CastMembersID = append(out.CastMembersID, id.String())
		if m, ok := rel.castMembers[id.String()]; ok {
			out.CastMembers = append(out.CastMembers, VideoCastMemberOutput{
				ID:        m.ID().String(),
				Name:      m.Name(),
				Type:      m.Type().Int(),
				CreatedAt: m.CreatedAt(),
			})
		}
	}
	return out
}

// collectIDs 去重并保持首次出现的顺序
func collectIDs[ID shared.Identifier](lists ...[]ID) []ID {
	seen := make(map[string]struct{})
	var out []ID
	for _, list := range lists {
		for _, id := range list {
			if _, ok := seen[id.String()]; ok {
				continue
			}
			seen[id.String()] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
