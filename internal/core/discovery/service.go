// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package discovery

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/marvega/litoral/internal/core/beach"
)

// # Service Layer

// Service orchestrates one discovery request end to end: context resolution,
// filter normalization, predicate building, the count/page passes, and the
// single bounded fallback.
type Service struct {
	registry *Registry
	repo     Repository
	logger   *slog.Logger
}

// NewService constructs a discovery [Service].
func NewService(registry *Registry, repo Repository, logger *slog.Logger) *Service {
	return &Service{
		registry: registry,
		repo:     repo,
		logger:   logger,
	}
}

// # Result

// Result is the full outcome of one discovery request.
type Result struct {
	Beaches []*beach.Beach `json:"-"`

	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`

	// ContextFallback is true when the curated context matched nothing and
	// the engine widened to the full published set.
	ContextFallback bool `json:"context_fallback"`

	Collection *CollectionContext `json:"-"`
	Filters    FilterSet          `json:"-"`
}

// Registry exposes the service's context registry for listing endpoints.
func (service *Service) Registry() *Registry {
	return service.registry
}

/*
Browse executes a discovery request against a collection.

Description: This is the engine's single entry point. Malformed filter
values never fail the request (they are normalized away); the only hard
failure besides datastore errors is an unknown collection key.

The fallback is at most one extra pass: when the curated context matches
nothing AND the visitor applied no filters of their own AND they did not
already opt out via include_all, the curated predicate is suppressed and the
count/page pair re-runs once. A visitor whose own filters produced zero rows
sees the honest empty result.

Parameters:
  - context: context.Context
  - key: string (collection key, must exist in the registry)
  - params: url.Values (raw, untrusted request parameters)

Returns:
  - *Result: Page rows plus pagination metadata
  - error: Unknown collection key or datastore failures
*/
func (service *Service) Browse(context context.Context, key string, params url.Values) (*Result, error) {
	collection, err := service.registry.Resolve(key)
	if err != nil {
		return nil, err
	}

	filters := NormalizeFilters(params, collection)

	// Primary pass.
	predicates := BuildPredicates(collection, filters, !filters.IncludeAll)
	total, err := service.repo.Count(context, predicates)
	if err != nil {
		return nil, err
	}

	// Fallback pass. The guard is deliberately narrow; see Browse doc.
	contextFallback := false
	if total == 0 && !filters.IncludeAll && !filters.HasUserFilters() {
		predicates = BuildPredicates(collection, filters, false)
		total, err = service.repo.Count(context, predicates)
		if err != nil {
			return nil, err
		}
		contextFallback = true

		service.logger.Info("discovery_context_fallback",
			slog.String("collection", collection.Key),
			slog.Int("widened_total", total),
		)
	}

	orderBy := ResolveOrder(filters.Sort, predicates.DistanceExpr != "")
	offset := (filters.Page - 1) * filters.Limit

	beaches, err := service.repo.Page(context, predicates, orderBy, filters.Limit, offset)
	if err != nil {
		return nil, err
	}

	return &Result{
		Beaches:         beaches,
		Total:           total,
		Page:            filters.Page,
		Limit:           filters.Limit,
		Pages:           pageCount(total, filters.Limit),
		ContextFallback: contextFallback,
		Collection:      collection,
		Filters:         filters,
	}, nil
}

// pageCount computes ceil(total/limit), never less than 1 so that an empty
// result still renders page 1 of 1.
func pageCount(total, limit int) int {
	if limit < 1 {
		return 1
	}
	pages := (total + limit - 1) / limit
	if pages < 1 {
		return 1
	}
	return pages
}
