package cache

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Through serves key from the cache, or runs load and stores its result in
// the background. Load errors are returned as is and nothing is stored.
func Through[T any](ctx context.Context, c RedisCache, key string, ttl int, load func(context.Context) (T, error)) (T, error) {
	var cached T
	if err := c.Get(ctx, key, &cached); err == nil {
		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	go func() {
		if err := c.Save(context.WithoutCancel(ctx), key, value, ttl); err != nil {
			log.Warn().Err(err).Str("cacheKey", key).Msg("failed to save cache entry")
		}
	}()

	return value, nil
}
