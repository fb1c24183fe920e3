package gormstore

import (
	"fmt"

	"catalog/infrastructure/persistence/gormstore/po"
	"catalog/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AutoMigrate 根据持久化对象建表，仅用于开发环境与测试
func AutoMigrate(db *gorm.DB) error {
	models := po.AllModels()
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	logger.Info("database schema migrated",
		zap.String("dialect", db.Dialector.Name()),
		zap.Int("tables", len(models)))
	return nil
}
