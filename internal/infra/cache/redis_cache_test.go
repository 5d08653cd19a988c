package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"foodcart/config"
	"foodcart/internal/domain/geo"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestCache(t *testing.T) (*RedisCoordinateCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCoordinateCache(client, time.Hour, slog.New(slog.NewTextHandler(io.Discard, nil))), mr
}

func TestRedisCoordinateCache_SetThenGet(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, "  Moscow, Tverskaya 1 ", geo.Coordinates{Latitude: 55.757, Longitude: 37.615})

	got, ok := c.Get(ctx, "moscow, tverskaya 1")
	require.True(t, ok)
	assert.Equal(t, 55.757, got.Latitude)
	assert.Equal(t, 37.615, got.Longitude)
	assert.True(t, mr.Exists("geocode:moscow, tverskaya 1"))
	assert.Equal(t, time.Hour, mr.TTL("geocode:moscow, tverskaya 1"))
}

func TestRedisCoordinateCache_Miss(t *testing.T) {
	c, _ := newTestCache(t)

	_, ok := c.Get(context.Background(), "nowhere")
	assert.False(t, ok)
}

func TestRedisCoordinateCache_Expiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, "spb", geo.Coordinates{Latitude: 59.93, Longitude: 30.33})
	mr.FastForward(2 * time.Hour)

	_, ok := c.Get(ctx, "spb")
	assert.False(t, ok)
}

func TestRedisCoordinateCache_CorruptEntryDropped(t *testing.T) {
	c, mr := newTestCache(t)
	require.NoError(t, mr.Set("geocode:kazan", "not-json"))

	_, ok := c.Get(context.Background(), "kazan")
	assert.False(t, ok)
	assert.False(t, mr.Exists("geocode:kazan"))
}

func TestRedisCoordinateCache_FailsOpen(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()

	ctx := context.Background()
	c.Set(ctx, "sochi", geo.Coordinates{Latitude: 43.6, Longitude: 39.7})

	_, ok := c.Get(ctx, "sochi")
	assert.False(t, ok)
}

func TestNewCoordinateCache_DisabledIsNoop(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{}

	c := NewCoordinateCache(Params{
		Lifecycle: lc,
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	c.Set(context.Background(), "a", geo.Coordinates{})
	_, ok := c.Get(context.Background(), "a")
	assert.False(t, ok)
}
