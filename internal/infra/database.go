package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"vivuplan/internal/models/db_models"
	"vivuplan/pkg/logger"
)

// InitDatabase opens the SQL backend named by cfg.StorageDriver and migrates
// the storage table.
func InitDatabase(cfg *AppConfig, log *logger.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.StorageDriver {
	case StoragePostgres:
		dialector = postgres.Open(cfg.PostgresURL)
	case StorageSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("storage driver %q is not a SQL backend", cfg.StorageDriver)
	}

	db, err := OpenDatabase(dialector)
	if err != nil {
		return nil, err
	}
	log.Info("database connected", "driver", cfg.StorageDriver)
	return db, nil
}

func OpenDatabase(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := db.AutoMigrate(&db_models.StorageEntry{}); err != nil {
		return nil, fmt.Errorf("error migrating storage table: %w", err)
	}
	return db, nil
}

func CloseDatabase(db *gorm.DB, log *logger.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("error getting database instance", "error", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error("error closing database connection", "error", err)
	} else {
		log.Info("database connection closed")
	}
}
