package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"climbreg/internal/exam/models"
	id "climbreg/pkg/domain"
)

const keyPrefix = "climbreg:certificate:"

// RedisCache shares resolved certificates between processes. Entries expire
// through Redis TTLs.
type RedisCache struct {
	client   redis.Cmdable
	cacheTTL time.Duration
}

// NewRedisCache creates a cache on client with the given entry TTL.
func NewRedisCache(client redis.Cmdable, cacheTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, cacheTTL: cacheTTL}
}

func (c *RedisCache) Backend() string {
	return "redis"
}

func (c *RedisCache) FindCertificate(ctx context.Context, code id.IDCode) (*models.Certificate, error) {
	raw, err := c.client.Get(ctx, key(code)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get cached certificate: %w", err)
	}
	var record models.Certificate
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("decode cached certificate: %w", err)
	}
	return &record, nil
}

func (c *RedisCache) SaveCertificate(ctx context.Context, record *models.Certificate) error {
	if record == nil {
		return nil
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode certificate: %w", err)
	}
	if err := c.client.Set(ctx, key(record.IDCode), raw, c.cacheTTL).Err(); err != nil {
		return fmt.Errorf("cache certificate: %w", err)
	}
	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context, code id.IDCode) error {
	if err := c.client.Del(ctx, key(code)).Err(); err != nil {
		return fmt.Errorf("invalidate cached certificate: %w", err)
	}
	return nil
}

func key(code id.IDCode) string {
	return keyPrefix + code.String()
}
