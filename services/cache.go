package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a thin JSON cache over redis. A nil client disables caching, so
// the service runs fine without redis configured.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// Get unmarshals the cached value into target. Returns false on miss or any
// cache error; cache failures never fail the request.
func (c *Cache) Get(ctx context.Context, key string, target interface{}) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	cached, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(cached), target) == nil
}

// Set stores value under key with the cache TTL, best-effort.
func (c *Cache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil || c.rdb == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key, data, c.ttl)
}

// Delete drops a key, best-effort. Used for invalidation after writes.
func (c *Cache) Delete(ctx context.Context, key string) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, key)
}
