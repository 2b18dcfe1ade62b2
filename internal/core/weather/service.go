// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/marvega/litoral/internal/core/beach"
	"github.com/marvega/litoral/internal/platform/apperr"
	"github.com/marvega/litoral/internal/platform/constants"
)

// BeachFinder resolves a listing by id or slug. Satisfied by beach.Service.
type BeachFinder interface {
	GetBeach(ctx context.Context, identifier string) (*beach.Beach, error)
}

// Service serves cached weather reports for beach listings.
type Service struct {
	provider Provider
	beaches  BeachFinder
	cache    *redis.Client
	ttl      time.Duration
	logger   *slog.Logger
}

// NewService creates a new weather Service.
func NewService(provider Provider, beaches BeachFinder, cache *redis.Client, ttl time.Duration, logger *slog.Logger) *Service {
	return &Service{
		provider: provider,
		beaches:  beaches,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
	}
}

/*
Report returns current conditions for the beach identified by id or slug.

Description: Resolves the listing, then serves from Redis when a fresh
snapshot exists. On a miss the provider is called with the listing's
coordinates and the result is cached for the configured TTL. Cache
write failures are logged but never fail the request.

Parameters:
  - ctx: context.Context
  - identifier: string (UUID or slug)

Returns:
  - *Report: Current conditions snapshot
  - error: apperr.NotFound, apperr.Unprocessable, or provider errors
*/
func (service *Service) Report(ctx context.Context, identifier string) (*Report, error) {

	// Resolve the listing
	listing, err := service.beaches.GetBeach(ctx, identifier)
	if err != nil {
		return nil, err
	}

	// A listing without verified coordinates has nothing to forecast
	if listing.Lat == nil || listing.Lng == nil {
		return nil, apperr.Unprocessable("Beach has no verified coordinates")
	}

	// Serve from cache when possible
	key := constants.RedisPrefixWeather + listing.ID
	if cached, err := service.cache.Get(ctx, key).Result(); err == nil {
		var report Report
		if err := json.Unmarshal([]byte(cached), &report); err == nil {
			report.Cached = true
			return &report, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		service.logger.Warn("weather_cache_read_failed", "beach_id", listing.ID, "error", err)
	}

	// Fetch from the provider
	report, err := service.provider.Current(ctx, *listing.Lat, *listing.Lng)
	if err != nil {
		return nil, fmt.Errorf("weather_fetch_failed: %w", err)
	}
	report.BeachID = listing.ID

	// Cache the snapshot
	encoded, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("weather_cache_encode_failed: %w", err)
	}
	if err := service.cache.Set(ctx, key, encoded, service.ttl).Err(); err != nil {
		service.logger.Warn("weather_cache_write_failed", "beach_id", listing.ID, "error", err)
	}

	return report, nil
}
