// Package cache stores rendered structured-data documents in Redis.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	errx "github.com/storefront-seo/microdata/internal/core/error"
	"github.com/storefront-seo/microdata/internal/microdata/render"
	logx "github.com/storefront-seo/microdata/pkg/logger"
)

// Client is the subset of redis.Cmdable the cache uses.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type RedisCache struct {
	rdb    Client
	prefix string
}

func NewRedisCache(rdb Client, prefix string) *RedisCache {
	return &RedisCache{rdb: rdb, prefix: prefix}
}

func (c *RedisCache) key(r render.Cacheable) string {
	return c.prefix + r.CacheKey()
}

// Wrap returns a renderer that serves r's output from Redis and stores fresh
// renders for r.CacheLifetime. Redis failures are logged and fall back to
// rendering.
func (c *RedisCache) Wrap(r render.Cacheable) render.Renderer {
	return &cachedRenderer{cache: c, next: r}
}

// Invalidate drops the cached document of r.
func (c *RedisCache) Invalidate(ctx context.Context, r render.Cacheable) error {
	key := c.key(r)
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to delete cached structured data")
		return errx.WrapRedis(err)
	}
	return nil
}

func (c *RedisCache) load(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return "", errx.WrapRedis(err)
	}
	return val, nil
}

func (c *RedisCache) store(ctx context.Context, key, val string, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, key, val, ttl).Err(); err != nil {
		return errx.WrapRedis(err)
	}
	return nil
}

type cachedRenderer struct {
	cache *RedisCache
	next  render.Cacheable
}

func (r *cachedRenderer) Display() bool {
	return r.next.Display()
}

func (r *cachedRenderer) RenderJSON(ctx context.Context) (string, error) {
	if !r.next.Display() {
		return "", nil
	}
	key := r.cache.key(r.next)

	val, err := r.cache.load(ctx, key)
	switch {
	case err == nil:
		logx.Debug().Str("key", key).Msg("structured data served from cache")
		return val, nil
	case errx.IsNotFound(err):
		logx.Debug().Str("key", key).Msg("structured data cache miss")
	default:
		logx.Warn().Err(err).Str("key", key).Msg("structured data cache unavailable")
	}

	out, err := r.next.RenderJSON(ctx)
	if err != nil || out == "" {
		return out, err
	}

	if err := r.cache.store(ctx, key, out, r.next.CacheLifetime()); err != nil {
		var appErr *errx.AppError
		if errors.As(err, &appErr) {
			logx.Warn().Err(appErr.Err).Str("key", key).Dur("ttl", r.next.CacheLifetime()).Msg(appErr.Message)
		}
	}
	return out, nil
}
