package po

import (
	"time"

	"catalog/domain/genre"
)

// GenrePO Genre persistence object
// 关联分类存放在 category_genre 表中，由仓储手动维护（不使用 GORM 关联）
type GenrePO struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"size:255;not null"`
	IsActive  bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"precision:6;not null;index"`
}

func (GenrePO) TableName() string {
	return "genres"
}

// CategoryGenrePO genre ↔ category 关联行，Position 保持集合的插入顺序
type CategoryGenrePO struct {
	GenreID    string `gorm:"primaryKey;size:36"`
	CategoryID string `gorm:"primaryKey;size:36;index"`
	Position   int    `gorm:"not null"`
}

func (CategoryGenrePO) TableName() string {
	return "category_genre"
}

func (p *GenrePO) ToDomain(categoriesID []string) (*genre.Genre, error) {
	return genre.RebuildFromDTO(genre.ReconstructionDTO{
		ID:           p.ID,
		Name:         p.Name,
		CategoriesID: categoriesID,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
	})
}

func FromGenreDomain(g *genre.Genre) (*GenrePO, []CategoryGenrePO) {
	genrePO := &GenrePO{
		ID:        g.ID().String(),
		Name:      g.Name(),
		IsActive:  g.IsActive(),
		CreatedAt: g.CreatedAt(),
	}
	ids := g.CategoriesID()
	rows := make([]CategoryGenrePO, len(ids))
	for i, id := range ids {
		rows[i] = CategoryGenrePO{GenreID: genrePO.ID, CategoryID: id.String(), Position: i}
	}
	return genrePO, rows
}
