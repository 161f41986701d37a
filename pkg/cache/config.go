package cache

import "time"

// MemoryOption configures MemoryCache.
type MemoryOption func(*MemoryConfig)

// MemoryConfig holds memory cache configuration.
type MemoryConfig struct {
	MaxSize         int
	CleanupInterval time.Duration
}

// WithMemoryMaxSize sets the maximum number of cached items.
func WithMemoryMaxSize(n int) MemoryOption {
	return func(c *MemoryConfig) {
		if n > 0 {
			c.MaxSize = n
		}
	}
}

// WithMemoryCleanupInterval sets the expired-item sweep interval.
func WithMemoryCleanupInterval(d time.Duration) MemoryOption {
	return func(c *MemoryConfig) {
		if d > 0 {
			c.CleanupInterval = d
		}
	}
}

// RedisOption configures RedisCache.
type RedisOption func(*RedisConfig)

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// WithRedisAddr sets the Redis address.
func WithRedisAddr(addr string) RedisOption {
	return func(c *RedisConfig) {
		if addr != "" {
			c.Addr = addr
		}
	}
}

// WithRedisAuth sets password and database.
func WithRedisAuth(password string, db int) RedisOption {
	return func(c *RedisConfig) {
		c.Password = password
		c.DB = db
	}
}

// WithRedisPrefix sets the key prefix.
func WithRedisPrefix(prefix string) RedisOption {
	return func(c *RedisConfig) {
		if prefix != "" {
			c.Prefix = prefix
		}
	}
}

// LayeredOption configures LayeredCache.
type LayeredOption func(*LayeredConfig)

// LayeredConfig holds layered cache configuration.
type LayeredConfig struct {
	MemoryMaxSize int
}

// WithLayeredMemorySize sets the L1 max size.
func WithLayeredMemorySize(n int) LayeredOption {
	return func(c *LayeredConfig) {
		if n > 0 {
			c.MemoryMaxSize = n
		}
	}
}
