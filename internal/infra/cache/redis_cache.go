// Package cache provides the Redis lookaside in front of the geocode table.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"foodcart/config"
	"foodcart/internal/domain/geo"
	"foodcart/internal/domain/lifecycle"
	"foodcart/internal/domain/service"
	"foodcart/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyPrefix = "geocode:"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewCoordinateCache returns a Redis cache when cache.enabled is set and a
// no-op cache otherwise.
func NewCoordinateCache(params Params) service.CoordinateCache {
	cfg := params.Config.Cache
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Coordinate cache disabled")

		return &noopCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// The cache is optional; an unreachable Redis only degrades latency.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis unreachable, geocode cache will miss",
					slog.String("addr", cfg.Addr),
					slog.Any("error", err),
				)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	params.Logger.Info("Coordinate cache enabled",
		slog.String("addr", cfg.Addr),
		slog.Duration("ttl", cfg.TTL),
	)

	return NewRedisCoordinateCache(client, cfg.TTL, params.Logger)
}

// RedisCoordinateCache stores coordinates as JSON under geocode:<address>.
type RedisCoordinateCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisCoordinateCache wraps an existing client.
func NewRedisCoordinateCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisCoordinateCache {
	return &RedisCoordinateCache{client: client, ttl: ttl, logger: logger}
}

func (c *RedisCoordinateCache) key(address string) string {
	return keyPrefix + geo.NormalizeAddress(address)
}

// Get returns the cached coordinates. Any Redis error counts as a miss.
func (c *RedisCoordinateCache) Get(ctx context.Context, address string) (*geo.Coordinates, bool) {
	raw, err := c.client.Get(ctx, c.key(address)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "Redis get failed", slog.String("address", address), slog.Any("error", err))
		}

		return nil, false
	}

	var coords geo.Coordinates
	if err := json.Unmarshal(raw, &coords); err != nil {
		c.logger.WarnContext(ctx, "Discarding corrupt cache entry", slog.String("address", address), slog.Any("error", err))
		c.client.Del(ctx, c.key(address))

		return nil, false
	}

	return &coords, true
}

// Set stores the coordinates for the configured TTL.
func (c *RedisCoordinateCache) Set(ctx context.Context, address string, coords geo.Coordinates) {
	raw, err := json.Marshal(coords)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, c.key(address), raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "Redis set failed", slog.String("address", address), slog.Any("error", err))
	}
}

type noopCache struct{}

func (*noopCache) Get(context.Context, string) (*geo.Coordinates, bool) {
	return nil, false
}

func (*noopCache) Set(context.Context, string, geo.Coordinates) {}
