package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"facilityai/config"
)

// NewCacheClient builds the Redis client used for availability-response
// caching. The cache is best-effort: with no REDIS_ADDR configured, or when
// Redis cannot be reached, it returns nil and callers skip caching.
func NewCacheClient() *redis.Client {
	if config.AppConfig.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		GetLogger().Warn("Redis unreachable, availability cache disabled", zap.Error(err))
		return nil
	}
	return client
}
