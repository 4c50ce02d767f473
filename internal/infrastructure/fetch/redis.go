package fetch

import (
	"context"
	"fmt"

	"github.com/snoozie-v/dinner-sub000/internal/infrastructure/config"
	"github.com/snoozie-v/dinner-sub000/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// redisCache is the redis-backed page cache, for sharing fetched pages
// between import runs.
type redisCache struct {
	client *redis.Client
	cfg    *config.PageCacheConfig
}

func newRedisCache(cfg *config.PageCacheConfig) (*redisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	common.LogInfo("page cache initialized",
		zap.String("backend", "redis"),
		zap.String("addr", cfg.RedisAddr),
		zap.Duration("ttl", cfg.TTL),
	)

	return &redisCache{client: client, cfg: cfg}, nil
}

func (c *redisCache) Get(ctx context.Context, url string) (string, error) {
	html, err := c.client.Get(ctx, cacheKey(url)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", common.ErrCacheMiss
		}
		return "", fmt.Errorf("failed to get cached page: %w", err)
	}

	common.LogDebug("page cache hit", zap.String("url", url))
	return html, nil
}

func (c *redisCache) Set(ctx context.Context, url, html string) error {
	if err := c.client.Set(ctx, cacheKey(url), html, c.cfg.TTL).Err(); err != nil {
		return fmt.Errorf("failed to cache page: %w", err)
	}
	return nil
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
