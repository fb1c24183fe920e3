package gormstore

import (
	"context"
	"errors"

	"catalog/domain/shared"
	"catalog/domain/video"
	"catalog/infrastructure/persistence/gormstore/po"

	"gorm.io/gorm"
)

// VideoRepository GORM 实现的视频仓储
// 三张关联表 category_video / genre_video / cast_member_video 与主表在同一事务内写入
type VideoRepository struct {
	base
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{base{db: db}}
}

var videoSortable = map[string]string{
	"title":      "title",
	"created_at": "created_at",
}

func (r *VideoRepository) Insert(ctx context.Context, v *video.Video) error {
	return r.inTx(ctx, func(tx *gorm.DB) error {
		return r.insertWithTx(tx, v)
	})
}

func (r *VideoRepository) BulkInsert(ctx context.Context, videos []*video.Video) error {
	if len(videos) == 0 {
		return nil
	}
	return r.inTx(ctx, func(tx *gorm.DB) error {
		for _, v := range videos {
			if err := r.insertWithTx(tx, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *VideoRepository) insertWithTx(tx *gorm.DB, v *video.Video) error {
	rows := po.FromVideoDomain(v)
	if err := tx.Create(rows.Video).Error; err != nil {
		return translateWriteError(err, video.EntityName, rows.Video.ID)
	}
	if len(rows.Categories) > 0 {
		if err := tx.Create(&rows.Categories).Error; err != nil {
			return err
		}
	}
	if len(rows.Genres) > 0 {
		if err := tx.Create(&rows.Genres).Error; err != nil {
			return err
		}
	}
	if len(rows.CastMembers) > 0 {
		if err := tx.Create(&rows.CastMembers).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *VideoRepository) Update(ctx context.Context, v *video.Video) error {
	rows := po.FromVideoDomain(v)
	id := rows.Video.ID
	return r.inTx(ctx, func(tx *gorm.DB) error {
		result := tx.Model(&po.VideoPO{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"title":         rows.Video.Title,
				"description":   rows.Video.Description,
				"year_launched": rows.Video.YearLaunched,
				"duration":      rows.Video.Duration,
				"rating":        rows.Video.Rating,
				"is_opened":     rows.Video.IsOpened,
				"is_published":  rows.Video.IsPublished,
			})
		if result.Error != nil {
			return result.Error
		}
		if err := ensureRowExists(tx, result, &po.VideoPO{}, video.EntityName, id); err != nil {
			return err
		}
		if err := replaceRelations(tx, &po.CategoryVideoPO{}, "video_id", id, rows.Categories); err != nil {
			return err
		}
		if err := replaceRelations(tx, &po.GenreVideoPO{}, "video_id", id, rows.Genres); err != nil {
			return err
		}
		return replaceRelations(tx, &po.CastMemberVideoPO{}, "video_id", id, rows.CastMembers)
	})
}

func (r *VideoRepository) Delete(ctx context.Context, id video.VideoID) error {
	return r.inTx(ctx, func(tx *gorm.DB) error {
		result := tx.Delete(&po.VideoPO{}, "id = ?", id.String())
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.NewNotFoundError(video.EntityName, id.String())
		}
		for _, model := range []any{&po.CategoryVideoPO{}, &po.GenreVideoPO{}, &po.CastMemberVideoPO{}} {
			if err := tx.Where("video_id = ?", id.String()).Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *VideoRepository) FindByID(ctx context.Context, id video.VideoID) (*video.Video, error) {
	db := r.getDB(ctx)
	var videoPO po.VideoPO
	if err := db.First(&videoPO, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	videos, err := r.hydrate(db, []po.VideoPO{videoPO})
	if err != nil {
		return nil, err
	}
	return videos[0], nil
}

func (r *VideoRepository) FindAll(ctx context.Context) ([]*video.Video, error) {
	db := r.getDB(ctx)
	var rows []po.VideoPO
	if err := db.Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.hydrate(db, rows)
}

func (r *VideoRepository) FindByIDs(ctx context.Context, ids []video.VideoID) ([]*video.Video, error) {
	if len(ids) == 0 {
		return make([]*video.Video, 0), nil
	}
	db := r.getDB(ctx)
	var rows []po.VideoPO
	if err := db.Where("id IN ?", idStrings(ids)).Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.hydrate(db, rows)
}

func (r *VideoRepository) ExistsByIDs(ctx context.Context, ids []video.VideoID) (shared.ExistsResult[video.VideoID], error) {
	if len(ids) == 0 {
		return shared.ExistsResult[video.VideoID]{}, shared.ErrEmptyIDs()
	}
	found, err := existingIDs(r.getDB(ctx), &po.VideoPO{}, idStrings(ids))
	if err != nil {
		return shared.ExistsResult[video.VideoID]{}, err
	}
	return splitExists(ids, found), nil
}

func (r *VideoRepository) SortableFields() []string {
	return video.SortableFields
}

func (r *VideoRepository) Search(ctx context.Context, params video.SearchParams) (video.SearchResult, error) {
	var scopes []Scope
	if filter, ok := params.Filter(); ok {
		scope, err := translate(filter.Specification(), translateVideo)
		if err != nil {
			return video.SearchResult{}, err
		}
		if scope != nil {
			scopes = append(scopes, scope)
		}
	}

	var rows []po.VideoPO
	total, err := search(ctx, r.getDB, searchQuery{
		model:   &po.VideoPO{},
		scopes:  scopes,
		order:   orderClause(r.db, videoSortable, []string{"title"}, params.Sort(), params.SortDir()),
		offset:  params.Offset(),
		limit:   params.PerPage(),
		metrics: "video",
	}, &rows)
	if err != nil {
		return video.SearchResult{}, err
	}

	items, err := r.hydrate(r.getDB(ctx), rows)
	if err != nil {
		return video.SearchResult{}, err
	}
	return shared.NewSearchResult(items, total, params.Page(), params.PerPage()), nil
}

func (r *VideoRepository) hydrate(db *gorm.DB, rows []po.VideoPO) ([]*video.Video, error) {
	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	categories, err := loadRelations(db, &po.CategoryVideoPO{}, "video_id", "category_id", ids)
	if err != nil {
		return nil, err
	}
	genres, err := loadRelations(db, &po.GenreVideoPO{}, "video_id", "genre_id", ids)
	if err != nil {
		return nil, err
	}
	castMembers, err := loadRelations(db, &po.CastMemberVideoPO{}, "video_id", "cast_member_id", ids)
	if err != nil {
		return nil, err
	}

	out := make([]*video.Video, 0, len(rows))
	for i := range rows {
		v, err := rows[i].ToDomain(po.VideoRelations{
			CategoriesID:  categories[rows[i].ID],
			GenresID:      genres[rows[i].ID],
			CastMembersID: castMembers[rows[i].ID],
		})
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

var _ video.Repository = (*VideoRepository)(nil)
