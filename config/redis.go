package config

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a redis client when REDIS_ADDR is configured, or nil
// when it is not. Callers must treat a nil client as "caching disabled".
func ConnectRedis(ctx context.Context) *redis.Client {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: os.Getenv("REDIS_USER"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("warning: redis unreachable at %s, continuing without cache: %v", addr, err)
		return nil
	}
	log.Printf("Redis connected at %s", addr)
	return rdb
}
