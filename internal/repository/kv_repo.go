package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/noah-isme/alhafizh-api/internal/models"
)

// ErrKeyNotFound is returned when a key has never been written.
var ErrKeyNotFound = errors.New("key not found")

// KVRepository is the local key-value persistence layer.
type KVRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// PutMany writes every entry or none of them.
	PutMany(ctx context.Context, entries map[string][]byte) error
}

type gormKVRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormKVRepository constructs a key-value repository over a SQL table.
func NewGormKVRepository(db *gorm.DB) KVRepository {
	return &gormKVRepository{db: db, now: time.Now}
}

func (r *gormKVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var entry models.KVEntry
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}

	return []byte(entry.Value), nil
}

func (r *gormKVRepository) PutMany(ctx context.Context, entries map[string][]byte) error {
	if len(entries) == 0 {
		return nil
	}

	now := r.now()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, key := range sortedKeys(entries) {
			entry := models.KVEntry{Key: key, Value: entries[key], UpdatedAt: now}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&entry).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func sortedKeys(entries map[string][]byte) []string {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
