package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
)

// Redis is a JSON response cache. A nil *Redis, or one whose server went
// away, behaves as a permanent miss so callers fall through to the store.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis returns nil when url is empty.
func NewRedis(ctx context.Context, url string, ttl time.Duration) (*Redis, error) {
	if url == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		slog.Warn("redis unavailable, bypassing cache", "error", err)
		_ = client.Close()
		return nil, nil
	}

	return &Redis{client: client, ttl: ttl}, nil
}

func (r *Redis) GetJSON(ctx context.Context, key string, out any) bool {
	if r == nil {
		return false
	}

	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.WarnContext(ctx, "cache get failed", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(b, out); err != nil {
		return false
	}
	return true
}

func (r *Redis) SetJSON(ctx context.Context, key string, value any) {
	if r == nil {
		return
	}

	b, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, key, b, r.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "cache set failed", "key", key, "error", err)
	}
}

func (r *Redis) DeleteByPattern(ctx context.Context, pattern string) {
	if r == nil {
		return
	}

	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			slog.WarnContext(ctx, "cache delete failed", "key", iter.Val(), "error", err)
		}
	}
	if err := iter.Err(); err != nil {
		slog.WarnContext(ctx, "cache scan failed", "pattern", pattern, "error", err)
	}
}

// Generation reads an integer counter; a missing key is generation 0.
func (r *Redis) Generation(ctx context.Context, key string) (int64, bool) {
	if r == nil {
		return 0, false
	}

	n, err := r.client.Get(ctx, key).Int64()
	switch {
	case err == nil:
		return n, true
	case errors.Is(err, redis.Nil):
		return 0, true
	default:
		slog.WarnContext(ctx, "cache generation read failed", "key", key, "error", err)
		return 0, false
	}
}

// Bump advances a counter. The counter never expires, so a generation is
// not reused while pages written under it may still be live.
func (r *Redis) Bump(ctx context.Context, key string) {
	if r == nil {
		return
	}
	if err := r.client.Incr(ctx, key).Err(); err != nil {
		slog.WarnContext(ctx, "cache bump failed", "key", key, "error", err)
	}
}

func (r *Redis) Close() error {
	if r == nil {
		return nil
	}
	return r.client.Close()
}
