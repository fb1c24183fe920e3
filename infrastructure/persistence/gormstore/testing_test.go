package gormstore

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB 每次调用返回一个独立的内存 sqlite 库，并完成建表
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &Config{
		Driver:   DriverSQLite,
		Path:     fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		LogLevel: "silent",
	}
	db, err := cfg.Connect()
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
