package models

import (
	"time"

	"gorm.io/datatypes"
)

// KVEntry is a row of the key-value table backing the persistent store.
type KVEntry struct {
	Key       string         `gorm:"primaryKey;size:64" json:"key"`
	Value     datatypes.JSON `gorm:"not null" json:"value"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// TableName pins the table name used by the key-value store.
func (KVEntry) TableName() string {
	return "kv_entries"
}
