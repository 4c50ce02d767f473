package fetch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/snoozie-v/dinner-sub000/internal/infrastructure/config"
	"github.com/snoozie-v/dinner-sub000/internal/pkg/common"

	"go.uber.org/zap"
)

// PageCache stores fetched HTML so duplicate URLs within the cache TTL skip
// the fetch boundary entirely.
type PageCache interface {
	Get(ctx context.Context, url string) (string, error)
	Set(ctx context.Context, url, html string) error
	Close() error
}

// NewPageCache builds the configured cache backend. A disabled cache
// returns nil; callers treat nil as "always miss".
func NewPageCache(cfg *config.PageCacheConfig) (PageCache, error) {
	if !cfg.Enabled {
		common.LogInfo("page cache disabled")
		return nil, nil
	}

	switch cfg.Backend {
	case "redis":
		return newRedisCache(cfg)
	default:
		return newMemoryCache(cfg), nil
	}
}

// memoryCache is an in-process TTL cache with LRU eviction.
type memoryCache struct {
	cfg   *config.PageCacheConfig
	mu    sync.RWMutex
	store map[string]cacheEntry
	stats cacheStats
	done  chan struct{}
}

type cacheEntry struct {
	html        string
	expiresAt   time.Time
	lastAccess  time.Time
	accessCount int
}

type cacheStats struct {
	hits      int64
	misses    int64
	evictions int64
}

func newMemoryCache(cfg *config.PageCacheConfig) *memoryCache {
	c := &memoryCache{
		cfg:   cfg,
		store: make(map[string]cacheEntry),
		done:  make(chan struct{}),
	}

	go c.startCleanup()

	common.LogInfo("page cache initialized",
		zap.String("backend", "memory"),
		zap.Int("max_size", cfg.MaxSize),
		zap.Duration("ttl", cfg.TTL),
	)

	return c
}

func cacheKey(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "page:" + hex.EncodeToString(hash[:])
}

func (c *memoryCache) Get(_ context.Context, url string) (string, error) {
	key := cacheKey(url)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.store[key]
	if !exists {
		c.stats.misses++
		return "", common.ErrCacheMiss
	}

	if time.Now().After(entry.expiresAt) {
		delete(c.store, key)
		c.stats.evictions++
		c.stats.misses++
		return "", common.ErrCacheMiss
	}

	entry.lastAccess = time.Now()
	entry.accessCount++
	c.store[key] = entry
	c.stats.hits++

	common.LogDebug("page cache hit", zap.String("url", url))
	return entry.html, nil
}

func (c *memoryCache) Set(_ context.Context, url, html string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.store) >= c.cfg.MaxSize {
		c.cleanupLocked()
		if len(c.store) >= c.cfg.MaxSize {
			c.evictLRULocked()
		}
	}

	now := time.Now()
	c.store[cacheKey(url)] = cacheEntry{
		html:       html,
		expiresAt:  now.Add(c.cfg.TTL),
		lastAccess: now,
	}
	return nil
}

func (c *memoryCache) startCleanup() {
	ticker := time.NewTicker(c.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			c.cleanupLocked()
			c.mu.Unlock()
		case <-c.done:
			return
		}
	}
}

func (c *memoryCache) cleanupLocked() {
	now := time.Now()
	for key, entry := range c.store {
		if now.After(entry.expiresAt) {
			delete(c.store, key)
			c.stats.evictions++
		}
	}
}

// evictLRULocked drops the least-recently and least-often used entry.
func (c *memoryCache) evictLRULocked() {
	var oldestKey string
	var oldestAccess time.Time
	var lowestCount int

	for key, entry := range c.store {
		if oldestKey == "" ||
			entry.accessCount < lowestCount ||
			(entry.accessCount == lowestCount && entry.lastAccess.Before(oldestAccess)) {
			oldestKey = key
			oldestAccess = entry.lastAccess
			lowestCount = entry.accessCount
		}
	}

	if oldestKey != "" {
		delete(c.store, oldestKey)
		c.stats.evictions++
	}
}

func (c *memoryCache) Close() error {
	close(c.done)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]cacheEntry)

	common.LogInfo("page cache closed",
		zap.Int64("hits", c.stats.hits),
		zap.Int64("misses", c.stats.misses),
		zap.Int64("evictions", c.stats.evictions),
	)
	return nil
}
