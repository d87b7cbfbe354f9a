// Package ratelimit provides request rate limiting backed by Redis.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/logger"
)

// Limiter decides whether a key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// RedisLimiter implements a sliding window over a Redis sorted set.
type RedisLimiter struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisLimiter(client *redis.Client, log logger.Interface) *RedisLimiter {
	return &RedisLimiter{client: client, logger: log}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := time.Now()
	windowStart := now.Add(-window)
	redisKey := "ratelimit:" + key

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStart.UnixNano()))
	countCmd := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: fmt.Sprintf("%d", now.UnixNano()),
	})
	pipe.Expire(ctx, redisKey, window)

	if _, err := pipe.Exec(ctx); err != nil {
		// fail open: a broken limiter must not take payments down
		l.logger.Warnw("rate limiter unavailable, allowing request", "key", key, "error", err)
		return true, nil
	}

	return countCmd.Val() < int64(limit), nil
}
