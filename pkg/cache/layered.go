package cache

import (
	"context"
	"time"
)

// LayeredCache is a two-level cache: L1 in-process memory, L2 Redis.
// The Redis layer is optional; without it the cache degrades to memory only.
type LayeredCache struct {
	mem   *MemoryCache
	redis *RedisCache
}

// NewLayeredCache creates a layered cache. redisCache may be nil.
func NewLayeredCache(redisCache *RedisCache, opts ...LayeredOption) *LayeredCache {
	cfg := &LayeredConfig{
		MemoryMaxSize: 1000,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return &LayeredCache{
		mem:   NewMemoryCache(WithMemoryMaxSize(cfg.MemoryMaxSize)),
		redis: redisCache,
	}
}

func (lc *LayeredCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if lc.redis != nil {
		if err := lc.redis.Set(ctx, key, value, expiration); err != nil {
			return err
		}
	}
	return lc.mem.Set(ctx, key, value, expiration)
}

func (lc *LayeredCache) Get(ctx context.Context, key string, dest interface{}) error {
	if err := lc.mem.Get(ctx, key, dest); err == nil {
		return nil
	}

	if lc.redis == nil {
		return ErrCacheMiss
	}
	if err := lc.redis.Get(ctx, key, dest); err != nil {
		return err
	}

	// Promote to L1. Redis keeps the authoritative TTL.
	_ = lc.mem.Set(ctx, key, dest, time.Minute)
	return nil
}

func (lc *LayeredCache) Delete(ctx context.Context, keys ...string) error {
	if err := lc.mem.Delete(ctx, keys...); err != nil {
		return err
	}
	if lc.redis != nil {
		return lc.redis.Delete(ctx, keys...)
	}
	return nil
}

func (lc *LayeredCache) Exists(ctx context.Context, key string) (bool, error) {
	if ok, _ := lc.mem.Exists(ctx, key); ok {
		return true, nil
	}
	if lc.redis != nil {
		return lc.redis.Exists(ctx, key)
	}
	return false, nil
}

// Close closes both cache layers.
func (lc *LayeredCache) Close() error {
	_ = lc.mem.Close()
	if lc.redis != nil {
		return lc.redis.Close()
	}
	return nil
}
