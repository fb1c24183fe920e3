package genre

import (
	"catalog/domain/category"
	"catalog/domain/genre"
)

// ToOutput categories 可以包含与本 genre 无关的分类（List 时一次查出全部），按 genre 自己的关联顺序挑选
func ToOutput(g *genre.Genre, categories []*category.Category) GenreOutput {
	byID := make(map[string]*category.Category, len(categories))
	for _, c := range categories {
		byID[c.ID().String()] = c
	}

	out := GenreOutput{
		ID:           g.ID().String(),
		Name:         g.Name(),
		Categories:   make([]GenreCategoryOutput, 0, len(g.CategoriesID())),
		CategoriesID: make([]string, 0, len(g.CategoriesID())),
		IsActive:     g.IsActive(),
		CreatedAt:    g.CreatedAt(),
	}
	for _, id := range g.CategoriesID() {
		out.CategoriesID = append(out.CategoriesID, id.String())
		c, ok := byID[id.String()]
		if !ok {
			continue
		}
		out.Categories = append(out.Categories, GenreCategoryOutput{
			ID:        c.ID().String(),
			Name:      c.Name(),
			CreatedAt: c.CreatedAt(),
		})
	}
	return out
}

// relatedCategoryIDs 多个 genre 引用的分类 id，去重并保持首次出现的顺序
func relatedCategoryIDs(genres ...*genre.Genre) []category.CategoryID {
	seen := make(map[string]struct{})
	var out []category.CategoryID
	for _, g := range genres {
		for _, id := range g.CategoriesID() {
			if _, ok := seen[id.String()]; ok {
				continue
			}
			seen[id.String()] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
