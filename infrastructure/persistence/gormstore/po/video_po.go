package po

import (
	"time"

	"catalog/domain/video"
)

// VideoPO Video persistence object
type VideoPO struct {
	ID           string    `gorm:"primaryKey;size:36"`
	Title        string    `gorm:"size:255;not null"`
	Description  string    `gorm:"type:text;not null"`
	YearLaunched int       `gorm:"not null"`
	Duration     int       `gorm:"not null"`
	Rating       string    `gorm:"size:3;not null"`
	IsOpened     bool      `gorm:"not null"`
	IsPublished  bool      `gorm:"not null"`
	CreatedAt    time.Time `gorm:"precision:6;not null;index"`
}

func (VideoPO) TableName() string {
	return "videos"
}

type CategoryVideoPO struct {
	VideoID    string `gorm:"primaryKey;size:36"`
	CategoryID string `gorm:"primaryKey;size:36;index"`
	Position   int    `gorm:"not null"`
}

func (CategoryVideoPO) TableName() string {
	return "category_video"
}

type GenreVideoPO struct {
	VideoID  string `gorm:"primaryKey;size:36"`
	GenreID  string `gorm:"primaryKey;size:36;index"`
	Position int    `gorm:"not null"`
}

func (GenreVideoPO) TableName() string {
	return "genre_video"
}

type CastMemberVideoPO struct {
	VideoID      string `gorm:"primaryKey;size:36"`
	CastMemberID string `gorm:"primaryKey;size:36;index"`
	Position     int    `gorm:"not null"`
}

func (CastMemberVideoPO) TableName() string {
	return "cast_member_video"
}

// VideoRelations 一个视频的全部关联 id（按 Position 排序）
type VideoRelations struct {
	CategoriesID  []string
	GenresID      []string
	CastMembersID []string
}

func (p *VideoPO) ToDomain(rel VideoRelations) (*video.Video, error) {
	return video.RebuildFromDTO(video.ReconstructionDTO{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		YearLaunched:  p.YearLaunched,
		Duration:      p.Duration,
		Rating:        p.Rating,
		IsOpened:      p.IsOpened,
		IsPublished:   p.IsPublished,
		CategoriesID:  rel.CategoriesID,
		GenresID:      rel.GenresID,
		CastMembersID: rel.CastMembersID,
		CreatedAt:     p.CreatedAt,
	})
}

// VideoRows 视频主表行与三张关联表的行
type VideoRows struct {
	Video       *VideoPO
	Categories  []CategoryVideoPO
	Genres      []GenreVideoPO
	CastMembers []CastMemberVideoPO
}

func FromVideoDomain(v *video.Video) VideoRows {
	id := v.ID().String()
	rows := VideoRows{
		Video: &VideoPO{
			ID:           id,
			Title:        v.Title(),
			Description:  v.Description(),
			YearLaunched: v.YearLaunched(),
			Duration:     v.Duration(),
			Rating:       v.Rating().String(),
			IsOpened:     v.IsOpened(),
			IsPublished:  v.IsPublished(),
			CreatedAt:    v.CreatedAt(),
		},
	}
	for i, cid := range v.CategoriesID() {
		rows.Categories = append(rows.Categories, CategoryVideoPO{VideoID: id, CategoryID: cid.String(), Position: i})
	}
	for i, gid := range v.GenresID() {
		rows.Genres = append(rows.Genres, GenreVideoPO{VideoID: id, GenreID: gid.String(), Position: i})
	}
	for i, mid := range v.CastMembersID() {
		rows.CastMembers = append(rows.CastMembers, CastMemberVideoPO{VideoID: id, CastMemberID: mid.String(), Position: i})
	}
	return rows
}
