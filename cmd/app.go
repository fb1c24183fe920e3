package cmd

import (
	castmemberapp "catalog/application/castmember"
	categoryapp "catalog/application/category"
	genreapp "catalog/application/genre"
	videoapp "catalog/application/video"
	"catalog/config"
	"catalog/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App 一次命令执行所需的全部用例
type App struct {
	config *config.Config
	db     *gorm.DB

	Categories  *categoryapp.ApplicationService
	CastMembers *castmemberapp.ApplicationService
	Genres      *genreapp.ApplicationService
	Videos      *videoapp.ApplicationService
}

// DB memory 驱动下为 nil
func (a *App) DB() *gorm.DB {
	return a.db
}

func (a *App) Close() {
	if a.db == nil {
		return
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Warn("Failed to close database", zap.Error(err))
	}
}
