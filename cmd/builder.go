package cmd

import (
	"context"
	"fmt"
	"time"

	castmemberapp "catalog/application/castmember"
	categoryapp "catalog/application/category"
	genreapp "catalog/application/genre"
	videoapp "catalog/application/video"
	"catalog/config"
	"catalog/domain/castmember"
	"catalog/domain/category"
	"catalog/domain/genre"
	"catalog/domain/shared"
	"catalog/domain/video"
	"catalog/infrastructure/persistence/gormstore"
	"catalog/infrastructure/persistence/memory"
	"catalog/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AppBuilder 根据配置选择仓储实现并装配用例
type AppBuilder struct {
	cfg *config.Config
	db  *gorm.DB
}

func NewBuilder(cfg *config.Config) *AppBuilder {
	return &AppBuilder{cfg: cfg}
}

// WithDB 使用已打开的连接（测试用），跳过 Connect
func (b *AppBuilder) WithDB(db *gorm.DB) *AppBuilder {
	b.db = db
	return b
}

type repositories struct {
	categories  category.Repository
	castMembers castmember.Repository
	genres      genre.Repository
	videos      video.Repository
	uowFactory  shared.UnitOfWorkFactory
}

func (b *AppBuilder) Build() (*App, error) {
	var (
		repos repositories
		db    *gorm.DB
	)

	if b.cfg.UsesMemory() && b.db == nil {
		logger.Info("Using in-memory persistence layer")
		categories := memory.NewCategoryRepository()
		castMembers := memory.NewCastMemberRepository()
		genres := memory.NewGenreRepository()
		videos := memory.NewVideoRepository()
		repos = repositories{
			categories:  categories,
			castMembers: castMembers,
			genres:      genres,
			videos:      videos,
			uowFactory:  memory.NewUnitOfWorkFactory(nil, categories, castMembers, genres, videos),
		}
	} else {
		var err error
		db, err = b.initDatabase()
		if err != nil {
			return nil, err
		}
		repos = repositories{
			categories:  gormstore.NewCategoryRepository(db),
			castMembers: gormstore.NewCastMemberRepository(db),
			genres:      gormstore.NewGenreRepository(db),
			videos:      gormstore.NewVideoRepository(db),
			uowFactory:  gormstore.NewUnitOfWorkFactory(db),
		}
	}

	return &App{
		config:      b.cfg,
		db:          db,
		Categories:  categoryapp.NewApplicationService(repos.categories, repos.uowFactory),
		CastMembers: castmemberapp.NewApplicationService(repos.castMembers, repos.uowFactory),
		Genres:      genreapp.NewApplicationService(repos.genres, repos.categories, repos.uowFactory),
		Videos: videoapp.NewApplicationService(
			repos.videos, repos.categories, repos.genres, repos.castMembers, repos.uowFactory,
		),
	}, nil
}

func (b *AppBuilder) initDatabase() (*gorm.DB, error) {
	db := b.db
	if db == nil {
		var err error
		db, err = gormstore.FromAppConfig(b.cfg.Database).Connect()
		if err != nil {
			return nil, err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := gormstore.Ping(ctx, db); err != nil {
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
	}

	// Auto migration only when explicitly enabled
	if b.cfg.Database.AutoMigrate {
		if err := gormstore.AutoMigrate(db); err != nil {
			return nil, err
		}
	}

	logger.Info("Using GORM persistence layer", zap.String("dialect", db.Dialector.Name()))
	return db, nil
}
