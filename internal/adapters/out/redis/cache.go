package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"repairshop/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// KeyPrefixResolution namespaces resolver entries.
const KeyPrefixResolution = "repairshop:resolve:"

var _ ports.ResolutionCache = (*ResolutionCache)(nil)

// ResolutionCache stores identity key to id mappings with a TTL.
type ResolutionCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewResolutionCache builds the cache. A non-positive ttl keeps entries
// forever.
func NewResolutionCache(client redis.Cmdable, ttl time.Duration) *ResolutionCache {
	if ttl < 0 {
		ttl = 0
	}
	return &ResolutionCache{client: client, ttl: ttl}
}

func ResolutionKey(key string) string {
	return KeyPrefixResolution + key
}

func (c *ResolutionCache) Get(ctx context.Context, key string) (int64, bool, error) {
	raw, err := c.client.Get(ctx, ResolutionKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get cached resolution: %w", err)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		// unreadable entries are dropped and treated as a miss
		_ = c.client.Del(ctx, ResolutionKey(key)).Err()
		return 0, false, nil
	}
	return id, true, nil
}

func (c *ResolutionCache) Set(ctx context.Context, key string, id int64) error {
	if err := c.client.Set(ctx, ResolutionKey(key), strconv.FormatInt(id, 10), c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache resolution: %w", err)
	}
	return nil
}

func (c *ResolutionCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, ResolutionKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate resolution: %w", err)
	}
	return nil
}

// Flush removes every resolver entry.
func (c *ResolutionCache) Flush(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, KeyPrefixResolution+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete cache key: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to flush cache: %w", err)
	}
	return nil
}
