package gormstore

import (
	"context"
	"errors"

	"catalog/domain/genre"
	"catalog/domain/shared"
	"catalog/infrastructure/persistence/gormstore/po"

	"gorm.io/gorm"
)

// GenreRepository GORM 实现的类型仓储
// genre 与 category 的关联保存在 category_genre 中，随主表在同一事务内写入
type GenreRepository struct {
	base
}

func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{base{db: db}}
}

var genreSortable = map[string]string{
	"name":       "name",
	"created_at": "created_at",
}

func (r *GenreRepository) Insert(ctx context.Context, g *genre.Genre) error {
	return r.inTx(ctx, func(tx *gorm.DB) error {
		return r.insertWithTx(tx, g)
	})
}

func (r *GenreRepository) BulkInsert(ctx context.Context, genres []*genre.Genre) error {
	if len(genres) == 0 {
		return nil
	}
	return r.inTx(ctx, func(tx *gorm.DB) error {
		for _, g := range genres {
			if err := r.insertWithTx(tx, g); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GenreRepository) insertWithTx(tx *gorm.DB, g *genre.Genre) error {
	genrePO, categories := po.FromGenreDomain(g)
	if err := tx.Create(genrePO).Error; err != nil {
		return translateWriteError(err, genre.EntityName, genrePO.ID)
	}
	if len(categories) == 0 {
		return nil
	}
	return tx.Create(&categories).Error
}

func (r *GenreRepository) Update(ctx context.Context, g *genre.Genre) error {
	genrePO, categories := po.FromGenreDomain(g)
	return r.inTx(ctx, func(tx *gorm.DB) error {
		result := tx.Model(&po.GenrePO{}).
			Where("id = ?", genrePO.ID).
			Updates(map[string]interface{}{
				"name":      genrePO.Name,
				"is_active": genrePO.IsActive,
			})
		if result.Error != nil {
			return result.Error
		}
		if err := ensureRowExists(tx, result, &po.GenrePO{}, genre.EntityName, genrePO.ID); err != nil {
			return err
		}
		return replaceRelations(tx, &po.CategoryGenrePO{}, "genre_id", genrePO.ID, categories)
	})
}

func (r *GenreRepository) Delete(ctx context.Context, id genre.GenreID) error {
	return r.inTx(ctx, func(tx *gorm.DB) error {
		result := tx.Delete(&po.GenrePO{}, "id = ?", id.String())
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.NewNotFoundError(genre.EntityName, id.String())
		}
		return tx.Where("genre_id = ?", id.String()).Delete(&po.CategoryGenrePO{}).Error
	})
}

func (r *GenreRepository) FindByID(ctx context.Context, id genre.GenreID) (*genre.Genre, error) {
	db := r.getDB(ctx)
	var genrePO po.GenrePO
	if err := db.First(&genrePO, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	genres, err := r.hydrate(db, []po.GenrePO{genrePO})
	if err != nil {
		return nil, err
	}
	return genres[0], nil
}

func (r *GenreRepository) FindAll(ctx context.Context) ([]*genre.Genre, error) {
	db := r.getDB(ctx)
	var rows []po.GenrePO
	if err := db.Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.hydrate(db, rows)
}

func (r *GenreRepository) FindByIDs(ctx context.Context, ids []genre.GenreID) ([]*genre.Genre, error) {
	if len(ids) == 0 {
		return make([]*genre.Genre, 0), nil
	}
	db := r.getDB(ctx)
	var rows []po.GenrePO
	if err := db.Where("id IN ?", idStrings(ids)).Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.hydrate(db, rows)
}

func (r *GenreRepository) ExistsByIDs(ctx context.Context, ids []genre.GenreID) (shared.ExistsResult[genre.GenreID], error) {
	if len(ids) == 0 {
		return shared.ExistsResult[genre.GenreID]{}, shared.ErrEmptyIDs()
	}
	found, err := existingIDs(r.getDB(ctx), &po.GenrePO{}, idStrings(ids))
	if err != nil {
		return shared.ExistsResult[genre.GenreID]{}, err
	}
	return splitExists(ids, found), nil
}

func (r *GenreRepository) SortableFields() []string {
	return genre.SortableFields
}

func (r *GenreRepository) Search(ctx context.Context, params genre.SearchParams) (genre.SearchResult, error) {
	var scopes []Scope
	if filter, ok := params.Filter(); ok {
		scope, err := translate(filter.Specification(), translateGenre)
		if err != nil {
			return genre.SearchResult{}, err
		}
		if scope != nil {
			scopes = append(scopes, scope)
		}
	}

	var rows []po.GenrePO
	total, err := search(ctx, r.getDB, searchQuery{
		model:   &po.GenrePO{},
		scopes:  scopes,
		order:   orderClause(r.db, genreSortable, []string{"name"}, params.Sort(), params.SortDir()),
		offset:  params.Offset(),
		limit:   params.PerPage(),
		metrics: "genre",
	}, &rows)
	if err != nil {
		return genre.SearchResult{}, err
	}

	items, err := r.hydrate(r.getDB(ctx), rows)
	if err != nil {
		return genre.SearchResult{}, err
	}
	return shared.NewSearchResult(items, total, params.Page(), params.PerPage()), nil
}

// hydrate 一次查询取回所有行的关联分类
func (r *GenreRepository) hydrate(db *gorm.DB, rows []po.GenrePO) ([]*genre.Genre, error) {
	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	categories, err := loadRelations(db, &po.CategoryGenrePO{}, "genre_id", "category_id", ids)
	if err != nil {
		return nil, err
	}

	out := make([]*genre.Genre, 0, len(rows))
	for i := range rows {
		g, err := rows[i].ToDomain(categories[rows[i].ID])
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

var _ genre.Repository = (*GenreRepository)(nil)
