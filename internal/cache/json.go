package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"pylearn/internal/domain"
	"pylearn/internal/logger"

	"go.uber.org/zap"
)

// GetJSON decodes a cached value into dst. It reports false on a miss, on a
// cache failure, or on undecodable data; failures are logged, never returned.
func GetJSON(ctx context.Context, c domain.Cache, key string, dst interface{}) bool {
	if c == nil {
		return false
	}
	raw, err := c.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		logger.Get().Warn("cache entry is not valid JSON", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// SetJSON stores v as JSON. Errors are logged and swallowed.
func SetJSON(ctx context.Context, c domain.Cache, key string, v interface{}, ttl time.Duration) {
	if c == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		logger.Get().Warn("failed to encode cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.Set(ctx, key, string(data), ttl); err != nil {
		logger.Get().Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate deletes keys, logging failures.
func Invalidate(ctx context.Context, c domain.Cache, keys ...string) {
	if c == nil {
		return
	}
	for _, k := range keys {
		if err := c.Delete(ctx, k); err != nil {
			logger.Get().Warn("cache delete failed", zap.String("key", k), zap.Error(err))
		}
	}
}
