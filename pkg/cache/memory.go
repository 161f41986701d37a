package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type memoryItem struct {
	data     []byte
	expireAt time.Time
	accessed time.Time
}

func (m *memoryItem) expired(now time.Time) bool {
	return !m.expireAt.IsZero() && now.After(m.expireAt)
}

// MemoryCache implements Service in process memory with LRU eviction.
type MemoryCache struct {
	mu      sync.Mutex
	items   map[string]*memoryItem
	maxSize int
	janitor *time.Ticker
	done    chan struct{}
}

// NewMemoryCache creates an in-memory cache.
func NewMemoryCache(opts ...MemoryOption) *MemoryCache {
	cfg := &MemoryConfig{
		MaxSize:         1000,
		CleanupInterval: 5 * time.Minute,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	mc := &MemoryCache{
		items:   make(map[string]*memoryItem),
		maxSize: cfg.MaxSize,
		janitor: time.NewTicker(cfg.CleanupInterval),
		done:    make(chan struct{}),
	}

	go mc.cleanupLoop()
	return mc
}

func (mc *MemoryCache) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	var expireAt time.Time
	if expiration > 0 {
		expireAt = time.Now().Add(expiration)
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()

	if len(mc.items) >= mc.maxSize {
		mc.evictLRU()
	}

	mc.items[key] = &memoryItem{
		data:     data,
		expireAt: expireAt,
		accessed: time.Now(),
	}
	return nil
}

func (mc *MemoryCache) Get(_ context.Context, key string, dest interface{}) error {
	now := time.Now()

	mc.mu.Lock()
	item, ok := mc.items[key]
	if !ok || item.expired(now) {
		if ok {
			delete(mc.items, key)
		}
		mc.mu.Unlock()
		return ErrCacheMiss
	}
	item.accessed = now
	data := item.data
	mc.mu.Unlock()

	return json.Unmarshal(data, dest)
}

func (mc *MemoryCache) Delete(_ context.Context, keys ...string) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	for _, key := range keys {
		delete(mc.items, key)
	}
	return nil
}

func (mc *MemoryCache) Exists(_ context.Context, key string) (bool, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	item, ok := mc.items[key]
	return ok && !item.expired(time.Now()), nil
}

// Close stops the cleanup goroutine.
func (mc *MemoryCache) Close() error {
	mc.janitor.Stop()
	close(mc.done)
	return nil
}

// evictLRU removes the least recently used item. Caller holds the lock.
func (mc *MemoryCache) evictLRU() {
	var oldestKey string
	var oldest time.Time

	for key, item := range mc.items {
		if oldestKey == "" || item.accessed.Before(oldest) {
			oldest = item.accessed
			oldestKey = key
		}
	}

	if oldestKey != "" {
		delete(mc.items, oldestKey)
	}
}

func (mc *MemoryCache) cleanupLoop() {
	for {
		select {
		case <-mc.done:
			return
		case <-mc.janitor.C:
		}

		now := time.Now()
		mc.mu.Lock()
		for key, item := range mc.items {
			if item.expired(now) {
				delete(mc.items, key)
			}
		}
		mc.mu.Unlock()
	}
}
