package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "todo:collection:"

var _ Backend = (*RedisBackend)(nil)

// RedisBackend keeps each collection under its own key, without expiry.
type RedisBackend struct {
	rdb *redis.Client
}

// NewRedisBackend wraps an already connected client. Close closes the client.
func NewRedisBackend(rdb *redis.Client) *RedisBackend {
	return &RedisBackend{rdb: rdb}
}

func (r *RedisBackend) Read(ctx context.Context, name string) ([]byte, error) {
	b, err := r.rdb.Get(ctx, redisKeyPrefix+name).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMissing
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return b, nil
}

func (r *RedisBackend) Write(ctx context.Context, name string, data []byte) error {
	if err := r.rdb.Set(ctx, redisKeyPrefix+name, data, 0).Err(); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (r *RedisBackend) Close() error {
	return r.rdb.Close()
}
