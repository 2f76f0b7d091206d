package db_models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StorageEntry is one keyed JSON blob. The history and the feedback log each
// occupy a single row.
type StorageEntry struct {
	StorageKey string         `gorm:"column:storage_key;type:varchar(128);primaryKey"`
	Value      datatypes.JSON `gorm:"column:value;not null"`
	CreatedAt  int64          `gorm:"autoCreateTime"`
	UpdatedAt  int64          `gorm:"autoUpdateTime"`
}

func (StorageEntry) TableName() string {
	return "storage_entries"
}

func (e *StorageEntry) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().Unix()
	if e.CreatedAt == 0 {
		e.CreatedAt = now
	}
	e.UpdatedAt = now
	return nil
}
