package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ListCache caches serialized public list responses per resource. Invalidation
// bumps a per-resource version key, which orphans every cached page for that
// resource at once; orphans age out through the TTL.
type ListCache interface {
	Get(ctx context.Context, resource, key string) ([]byte, bool)
	Set(ctx context.Context, resource, key string, payload []byte)
	Invalidate(ctx context.Context, resource string)
}

// RedisListCache implements ListCache on a redis client. A nil client or any
// redis error degrades to cache misses; the cache is never load-bearing.
type RedisListCache struct {
	rc     *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisListCache creates a redis-backed list cache
func NewRedisListCache(rc *redis.Client, prefix string, ttl time.Duration) *RedisListCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if prefix == "" {
		prefix = "cms"
	}
	return &RedisListCache{rc: rc, prefix: prefix, ttl: ttl}
}

func (c *RedisListCache) Get(ctx context.Context, resource, key string) ([]byte, bool) {
	if c.rc == nil {
		return nil, false
	}
	payload, err := c.rc.Get(ctx, c.entryKey(ctx, resource, key)).Bytes()
	if err != nil || len(payload) == 0 {
		return nil, false
	}
	return payload, true
}

func (c *RedisListCache) Set(ctx context.Context, resource, key string, payload []byte) {
	if c.rc == nil || len(payload) == 0 {
		return
	}
	_ = c.rc.Set(ctx, c.entryKey(ctx, resource, key), payload, c.ttl).Err()
}

// Invalidate bumps the resource version so every cached page stops matching.
func (c *RedisListCache) Invalidate(ctx context.Context, resource string) {
	if c.rc == nil {
		return
	}
	_ = c.rc.Incr(ctx, c.versionKey(resource)).Err()
}

func (c *RedisListCache) entryKey(ctx context.Context, resource, key string) string {
	version, err := c.rc.Get(ctx, c.versionKey(resource)).Int64()
	if err != nil {
		version = 0
	}
	return fmt.Sprintf("%s:list:%s:v%d:%s", c.prefix, resource, version, key)
}

func (c *RedisListCache) versionKey(resource string) string {
	return fmt.Sprintf("%s:ver:%s", c.prefix, resource)
}
