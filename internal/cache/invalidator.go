// Package cache invalidates downstream read caches after picks are settled.
package cache

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/pick-settler/internal/config"
)

const scanBatch = 200

// Invalidator drops cached views that depend on pick state
type Invalidator interface {
	Invalidate(ctx context.Context) (int64, error)
	Close() error
}

// NoopInvalidator is used when no read cache is configured
type NoopInvalidator struct{}

// Invalidate does nothing
func (NoopInvalidator) Invalidate(context.Context) (int64, error) { return 0, nil }

// Close does nothing
func (NoopInvalidator) Close() error { return nil }

// RedisInvalidator deletes every key matching its patterns. Keys are found
// with SCAN so a large keyspace never blocks the server.
type RedisInvalidator struct {
	rdb      *redis.Client
	patterns []string
	logger   *logrus.Entry
}

// NewRedisInvalidator wraps an existing client
func NewRedisInvalidator(rdb *redis.Client, patterns []string, logger *logrus.Logger) *RedisInvalidator {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &RedisInvalidator{
		rdb:      rdb,
		patterns: patterns,
		logger:   logger.WithField("component", "cache_invalidator"),
	}
}

// New returns a RedisInvalidator when the cache is enabled, else a NoopInvalidator.
// The connection is checked with PING.
func New(ctx context.Context, cfg config.CacheConfig, logger *logrus.Logger) (Invalidator, error) {
	if !cfg.Enabled {
		return NoopInvalidator{}, nil
	}

	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.TLSEnabled {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}
	return NewRedisInvalidator(rdb, cfg.KeyPatterns, logger), nil
}

// Invalidate deletes the matching keys and returns how many were removed
func (r *RedisInvalidator) Invalidate(ctx context.Context) (int64, error) {
	var deleted int64
	for _, pattern := range r.patterns {
		n, err := r.deletePattern(ctx, pattern)
		deleted += n
		if err != nil {
			return deleted, fmt.Errorf("redis: invalidate %s: %w", pattern, err)
		}
	}
	r.logger.WithFields(logrus.Fields{"patterns": r.patterns, "deleted": deleted}).Debug("Read cache invalidated")
	return deleted, nil
}

func (r *RedisInvalidator) deletePattern(ctx context.Context, pattern string) (int64, error) {
	var (
		cursor  uint64
		deleted int64
	)
	for {
		keys, next, err := r.rdb.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return deleted, err
		}
		if len(keys) > 0 {
			n, err := r.rdb.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, err
			}
			deleted += n
		}
		if next == 0 {
			return deleted, nil
		}
		cursor = next
	}
}

// Close closes the Redis connection
func (r *RedisInvalidator) Close() error {
	return r.rdb.Close()
}
