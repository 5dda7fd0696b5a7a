package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"luxhome/infras/otel"
	"luxhome/shared/metrics"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
	clearBatchSize        = 100
	Nil                   = redis.Nil
)

// RedisCache stores JSON payloads under "family:op:id" keys. Plain strings are stored as is.
type RedisCache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, prefix string) error
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

// family labels metrics by the first key segment, e.g. "tour" for "tour:get:<id>".
func family(key string) string {
	name, _, _ := strings.Cut(key, ":")

	return name
}

// Clear deletes every key matching the glob pattern, in batches.
func (cache *redisCache) Clear(ctx context.Context, pattern string) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Clear")
	defer func() {
		scope.TraceIfError(err)
		scope.End()
	}()

	scope.SetAttribute(otelCacheKeyAttribute, pattern)

	batch := make([]string, 0, clearBatchSize)
	deleted := 0

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}

		if err := cache.client.Del(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("failed to delete cache values: %w", err)
		}

		deleted += len(batch)
		batch = batch[:0]

		return nil
	}

	iter := cache.client.Scan(ctx, 0, pattern, clearBatchSize).Iterator()
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())

		if len(batch) == clearBatchSize {
			if err = flush(); err != nil {
				return err
			}
		}
	}

	if err = iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys: %w", err)
	}

	if err = flush(); err != nil {
		log.Error().Err(err).Str("pattern", pattern).Msg("failed to clear cache")

		return err
	}

	if deleted > 0 {
		metrics.ObserveCache(family(pattern), metrics.CacheEventDel)
	}

	return nil
}

func (cache *redisCache) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Delete")
	defer func() {
		scope.TraceIfError(err)
		scope.End()
	}()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	if err = cache.client.Del(ctx, key).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete cache")

		return fmt.Errorf("failed to delete cache value: %w", err)
	}

	metrics.ObserveCache(family(key), metrics.CacheEventDel)

	return nil
}

// Get decodes the cached value into value. A missing key returns an error wrapping Nil.
func (cache *redisCache) Get(ctx context.Context, key string, value any) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	raw, err := cache.client.Get(ctx, key).Result()
	if err != nil {
		metrics.ObserveCache(family(key), metrics.CacheEventMiss)

		if !errors.Is(err, redis.Nil) {
			scope.TraceError(err)
		}

		return fmt.Errorf("failed to get cache value: %w", err)
	}

	metrics.ObserveCache(family(key), metrics.CacheEventHit)

	if str, ok := value.(*string); ok {
		*str = raw

		return nil
	}

	if err = json.Unmarshal([]byte(raw), value); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Msg("failed to unmarshal cache")

		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return nil
}

// Save stores value for duration seconds. Zero keeps the key without expiry.
func (cache *redisCache) Save(ctx context.Context, key string, value any, duration int) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Save")
	defer func() {
		scope.TraceIfError(err)
		scope.End()
	}()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	var payload []byte

	if str, ok := value.(string); ok {
		payload = []byte(str)
	} else if payload, err = json.Marshal(value); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to marshal cache")

		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	if err = cache.client.Set(ctx, key, payload, time.Duration(duration)*time.Second).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to set cache")

		return fmt.Errorf("failed to set cache value: %w", err)
	}

	metrics.ObserveCache(family(key), metrics.CacheEventSet)
	log.Debug().Str("key", key).Int("ttl", duration).Msg("cache saved")

	return nil
}
