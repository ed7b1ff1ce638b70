package geo

import (
	"context"
	"log"
	"strings"
	"time"

	"vigil/internal/models"
)

// Resolver turns a place name into a coordinate.
type Resolver interface {
	Resolve(ctx context.Context, place string) (*models.Coordinate, error)
}

// Cache is the subset of the cache service the resolver needs.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	GenerateKey(entityType, keyType string, value interface{}) string
}

// CachedResolver wraps a Resolver with a cache keyed on the normalized
// place name. Only successful lookups are stored, so a transient upstream
// failure never pins a negative result. Cache failures degrade to a direct
// upstream call.
type CachedResolver struct {
	next  Resolver
	cache Cache
	ttl   time.Duration
}

func NewCachedResolver(next Resolver, cache Cache, ttl time.Duration) *CachedResolver {
	if next == nil {
		panic("geo: upstream resolver is required")
	}
	if cache == nil {
		panic("geo: cache is required")
	}
	return &CachedResolver{next: next, cache: cache, ttl: ttl}
}

func (r *CachedResolver) Resolve(ctx context.Context, place string) (*models.Coordinate, error) {
	key := r.cache.GenerateKey("geo", "place", normalizePlace(place))

	var cached models.Coordinate
	found, err := r.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Printf("geo cache read failed for %s: %v", key, err)
	} else if found {
		return &cached, nil
	}

	coord, err := r.next.Resolve(ctx, place)
	if err != nil {
		return nil, err
	}

	if err := r.cache.SetWithTTL(ctx, key, coord, r.ttl); err != nil {
		log.Printf("geo cache write failed for %s: %v", key, err)
	}

	return coord, nil
}

func normalizePlace(place string) string {
	return strings.ToLower(strings.TrimSpace(place))
}
