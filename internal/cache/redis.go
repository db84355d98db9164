package cache

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airtransport/config"
	"github.com/redis/go-redis/v9"
)

// RedisCache mirrors the JSON snapshot documents so that other readers can
// pick up the latest state without touching the data directory.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(cfg config.RedisConfig) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
	}
}

func (c *RedisCache) SetSnapshot(ctx context.Context, name string, payload []byte) error {
	return c.client.Set(ctx, snapshotKey(name), payload, 0).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func snapshotKey(name string) string {
	return fmt.Sprintf("snapshot:%s", name)
}
