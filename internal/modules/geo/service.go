// README: Location resolver; thin proxy over external geocoding/routing with
// an optional Redis read-through cache for lookups.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/DHARAV-9/EzySafar/internal/types"
)

var (
	ErrBadRequest = errors.New("bad geo request")
	ErrUpstream   = errors.New("upstream geo service failed")
)

const maxSearchResults = 5

// Provider is the upstream contract: address search, reverse geocoding, and
// driving-route distance in meters.
type Provider interface {
	Search(ctx context.Context, query string, limit int) ([]Place, error)
	Reverse(ctx context.Context, pt types.Point) (string, error)
	RouteMeters(ctx context.Context, from, to types.Point) (float64, error)
}

type Service struct {
	provider Provider
	cache    *Cache
}

// NewService wires the resolver. cache may be nil; lookups then always hit
// the provider.
func NewService(provider Provider, cache *Cache) *Service {
	return &Service{provider: provider, cache: cache}
}

// Search proxies an autocomplete query. limit is clamped to the upstream cap.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]Place, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", ErrBadRequest)
	}
	if limit <= 0 || limit > maxSearchResults {
		limit = maxSearchResults
	}

	key := fmt.Sprintf("geo:search:%d:%s", limit, query)
	if cached, ok := s.cacheGet(ctx, key); ok {
		var places []Place
		if json.Unmarshal(cached, &places) == nil {
			return places, nil
		}
	}

	places, err := s.provider.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, places)
	return places, nil
}

// Reverse resolves a coordinate pair to a display name.
func (s *Service) Reverse(ctx context.Context, pt types.Point) (string, error) {
	if !pt.Valid() {
		return "", fmt.Errorf("%w: coordinates out of range", ErrBadRequest)
	}

	key := fmt.Sprintf("geo:reverse:%.6f,%.6f", pt.Lat, pt.Lng)
	if cached, ok := s.cacheGet(ctx, key); ok {
		var name string
		if json.Unmarshal(cached, &name) == nil && name != "" {
			return name, nil
		}
	}

	name, err := s.provider.Reverse(ctx, pt)
	if err != nil {
		return "", err
	}
	s.cacheSet(ctx, key, name)
	return name, nil
}

// DistanceKm returns the driving distance between two points in kilometers,
// rounded to two decimals. Distances are never cached: fare correctness
// depends on them and the original recomputed every request.
func (s *Service) DistanceKm(ctx context.Context, from, to types.Point) (float64, error) {
	if !from.Valid() || !to.Valid() {
		return 0, fmt.Errorf("%w: coordinates out of range", ErrBadRequest)
	}
	meters, err := s.provider.RouteMeters(ctx, from, to)
	if err != nil {
		return 0, err
	}
	return math.Round(meters/1000*100) / 100, nil
}

// Cache errors fail open: a dead Redis must never fail a lookup.
func (s *Service) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}
	return s.cache.Get(ctx, key)
}

func (s *Service) cacheSet(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	s.cache.Set(ctx, key, v)
}
