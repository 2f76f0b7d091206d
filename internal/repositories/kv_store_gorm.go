package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vivuplan/internal/models/db_models"
	"vivuplan/pkg/utils"
)

type GormKeyValueStore struct {
	db *gorm.DB
}

func NewGormKeyValueStore(db *gorm.DB) *GormKeyValueStore {
	return &GormKeyValueStore{db: db}
}

func (s *GormKeyValueStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry db_models.StorageEntry
	err := s.db.WithContext(ctx).First(&entry, "storage_key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return []byte(entry.Value), true, nil
}

// Set stores value as-is. Callers only write JSON, which the column type
// requires on postgres.
func (s *GormKeyValueStore) Set(ctx context.Context, key string, value []byte) error {
	entry := db_models.StorageEntry{
		StorageKey: key,
		Value:      datatypes.JSON(value),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (s *GormKeyValueStore) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Delete(&db_models.StorageEntry{}, "storage_key = ?", key).Error
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}
