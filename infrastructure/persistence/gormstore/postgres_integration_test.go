//go:build integration

package gormstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"catalog/domain/castmember"
	"catalog/domain/category"
	"catalog/domain/genre"
	"catalog/domain/video"
	"catalog/infrastructure/persistence/repotest"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// go test -tags integration ./infrastructure/persistence/gormstore/...
// 需要本地 Docker；同一套仓储契约在真实 Postgres 上再跑一遍（COLLATE "C" 排序、ESCAPE 语义）

func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("catalog_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	cfg := &Config{
		Driver:   DriverPostgres,
		Host:     host,
		Port:     port.Port(),
		Username: "test",
		Password: "test",
		Database: "catalog_test",
		SSLMode:  "disable",
		LogLevel: "silent",
	}
	db, err := cfg.Connect()
	require.NoError(t, err)
	require.NoError(t, Ping(ctx, db))
	require.NoError(t, AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

var integrationTables = []string{
	"category_video", "genre_video", "cast_member_video", "category_genre",
	"videos", "genres", "cast_members", "categories", "outbox_events",
}

// truncate 每个子测试从空表开始
func truncate(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, table := range integrationTables {
		require.NoError(t, db.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error)
	}
}

func TestPostgresRepositories(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres container in short mode")
	}
	db := startPostgres(t)

	t.Run("Category", func(t *testing.T) {
		repotest.RunCategoryRepository(t, func(t *testing.T) category.Repository {
			truncate(t, db)
			return NewCategoryRepository(db)
		})
	})
	t.Run("CastMember", func(t *testing.T) {
		repotest.RunCastMemberRepository(t, func(t *testing.T) castmember.Repository {
			truncate(t, db)
			return NewCastMemberRepository(db)
		})
	})
	t.Run("Genre", func(t *testing.T) {
		repotest.RunGenreRepository(t, func(t *testing.T) genre.Repository {
			truncate(t, db)
			return NewGenreRepository(db)
		})
	})
	t.Run("Video", func(t *testing.T) {
		repotest.RunVideoRepository(t, func(t *testing.T) video.Repository {
			truncate(t, db)
			return NewVideoRepository(db)
		})
	})
}
