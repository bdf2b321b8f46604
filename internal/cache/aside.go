package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Aside implements the cache-aside pattern: on a hit, dest is filled from the
// cached JSON; on a miss, fetch must populate dest, and the result is cached
// with the given TTL. A nil or unreachable Redis client degrades to fetch-only.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	if client == nil {
		return fetch()
	}

	raw, err := client.Get(ctx, key).Bytes()
	if err == nil {
		if unmarshalErr := json.Unmarshal(raw, dest); unmarshalErr == nil {
			return nil
		}
		// Corrupt entry; drop it and fall through to the source of truth.
		client.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		// Redis unavailable; serve from the source of truth.
		return fetch()
	}

	if err := fetch(); err != nil {
		return err
	}

	if raw, marshalErr := json.Marshal(dest); marshalErr == nil {
		client.Set(ctx, key, raw, ttl)
	}
	return nil
}
