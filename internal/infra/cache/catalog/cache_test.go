package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return New(client, time.Hour), mr
}

func testPayload() *Payload {
	return &Payload{
		Business: &domain.Business{ID: "biz-1", Name: "Lavadero Lesan", Slug: "lavadero-lesan"},
		Services: []domain.Service{
			{ID: "svc-1", Name: "Lavado Exterior", Price: 15, DurationMinutes: 30, Active: true},
		},
	}
}

func TestCache_RoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "lavadero-lesan", testPayload()))

	got, err := cache.Get(ctx, "lavadero-lesan")
	require.NoError(t, err)
	assert.Equal(t, "biz-1", got.Business.ID)
	require.Len(t, got.Services, 1)
	assert.Equal(t, "Lavado Exterior", got.Services[0].Name)
}

func TestCache_Miss(t *testing.T) {
	cache, _ := newTestCache(t)

	_, err := cache.Get(context.Background(), "desconocido")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCache_Expiry(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "lavadero-lesan", testPayload()))
	mr.FastForward(2 * time.Hour)

	_, err := cache.Get(ctx, "lavadero-lesan")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCache_Invalidate(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "lavadero-lesan", testPayload()))
	require.NoError(t, cache.Invalidate(ctx, "lavadero-lesan"))

	_, err := cache.Get(ctx, "lavadero-lesan")
	assert.ErrorIs(t, err, ErrCacheMiss)
}
