package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Aside implements the cache-aside pattern: fill dest from the cached JSON
// value under key, or run loader, cache the result, and leave it in dest.
// A missing or unreachable cache degrades to calling loader directly.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, loader func() error) error {
	if client == nil {
		return loader()
	}

	raw, err := client.Get(ctx, key).Result()
	if err == nil {
		if jsonErr := json.Unmarshal([]byte(raw), dest); jsonErr == nil {
			return nil
		}
		// Corrupt entry: drop it and fall through to the loader.
		client.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		return loader()
	}

	if err := loader(); err != nil {
		return err
	}

	if buf, jsonErr := json.Marshal(dest); jsonErr == nil {
		client.Set(ctx, key, buf, ttl)
	}
	return nil
}
