package po

import (
	"time"

	"catalog/domain/category"
)

// CategoryPO Category persistence object
type CategoryPO struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Name        string    `gorm:"size:255;not null"`
	Description *string   `gorm:"type:text"`
	IsActive    bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"precision:6;not null;index"`
}

func (CategoryPO) TableName() string {
	return "categories"
}

func (p *CategoryPO) ToDomain() (*category.Category, error) {
	return category.RebuildFromDTO(category.ReconstructionDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
	})
}

func FromCategoryDomain(c *category.Category) *CategoryPO {
	return &CategoryPO{
		ID:          c.ID().String(),
		Name:        c.Name(),
		Description: c.Description(),
		IsActive:    c.IsActive(),
		CreatedAt:   c.CreatedAt(),
	}
}
