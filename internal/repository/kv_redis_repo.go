package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

type redisKVRepository struct {
	client *redis.Client
	prefix string
}

// NewRedisKVRepository constructs a key-value repository backed by Redis.
// Keys are namespaced with prefix.
func NewRedisKVRepository(client *redis.Client, prefix string) KVRepository {
	return &redisKVRepository{client: client, prefix: prefix}
}

func (r *redisKVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}

	return value, nil
}

func (r *redisKVRepository) PutMany(ctx context.Context, entries map[string][]byte) error {
	if len(entries) == 0 {
		return nil
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, key := range sortedKeys(entries) {
			pipe.Set(ctx, r.prefix+key, entries[key], 0)
		}
		return nil
	})
	return err
}
