package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
)

const keyPrefix = "catalog:"

// Payload is the cached catalog of one business.
type Payload struct {
	Business *domain.Business `json:"business"`
	Services []domain.Service `json:"services"`
}

// Cache keeps the business profile and service list in redis so that new
// sessions do not hit the scheduling backend on every start.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a catalog cache with the given entry lifetime.
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get returns the cached catalog for the slug, or ErrCacheMiss.
func (c *Cache) Get(ctx context.Context, slug string) (*Payload, error) {
	raw, err := c.client.Get(ctx, keyPrefix+slug).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get: %v", ErrCacheUnavailable, err)
	}

	var payload Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrCacheUnavailable, err)
	}

	return &payload, nil
}

// Set stores the catalog for the slug, replacing any previous entry.
func (c *Cache) Set(ctx context.Context, slug string, payload *Payload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrCacheUnavailable, err)
	}

	if err := c.client.Set(ctx, keyPrefix+slug, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set: %v", ErrCacheUnavailable, err)
	}

	return nil
}

// Invalidate drops the cached catalog for the slug.
func (c *Cache) Invalidate(ctx context.Context, slug string) error {
	if err := c.client.Del(ctx, keyPrefix+slug).Err(); err != nil {
		return fmt.Errorf("%w: del: %v", ErrCacheUnavailable, err)
	}
	return nil
}
