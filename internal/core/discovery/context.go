// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

/*
Package discovery implements the collection discovery query engine.

A "collection" is a curated, named view over the beach directory ("best
beaches", "beaches near San Juan", "hidden beaches") with its own default
sort and page size. Visitors layer free-form filters (search text, tags,
municipality) on top of the curated context; the engine turns the
combination into one consistent, paginated result set.

Architecture:

  - Registry: compile-time table of collection contexts, one variant per mode.
  - Normalizer: untrusted query parameters → canonical FilterSet (never errors).
  - Predicate builder: context + filters → bound SQL fragments.
  - Executor: count + page queries over the identical predicate snapshot.
  - Fallback: a curated context that matches nothing widens once to the full
    published set, but only when the visitor applied no filters of their own.

The engine is stateless between calls: every request constructs its own
FilterSet and predicate set and discards them with the response.
*/
package discovery

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/marvega/litoral/internal/platform/apperr"
)

// # Collection Modes

// Mode selects the curated-context strategy for a collection.
type Mode string

const (
	// ModeBest surfaces rated beaches, optionally restricted to a set of municipalities.
	ModeBest Mode = "best"

	// ModeTag requires a single context tag (e.g. every beach tagged "snorkeling").
	ModeTag Mode = "tag"

	// ModeRadius bounds results by great-circle distance from a fixed center.
	ModeRadius Mode = "radius"

	// ModeHidden selects low-visibility beaches by tag overlap or low review count.
	ModeHidden Mode = "hidden"
)

// # Mode Parameters

// BestParams configures a [ModeBest] collection.
type BestParams struct {
	// Municipalities optionally restricts the collection to a municipality set.
	// Empty means island-wide.
	Municipalities []string
}

// TagParams configures a [ModeTag] collection.
type TagParams struct {
	// ContextTag is the single tag slug every member must carry.
	ContextTag string
}

// RadiusParams configures a [ModeRadius] collection.
type RadiusParams struct {
	CenterLat float64
	CenterLng float64
	RadiusKm  float64
}

// HiddenParams configures a [ModeHidden] collection.
//
// A beach qualifies when its tags intersect HiddenTags OR its review count
// is at or below MaxReviewCount. The two signals are independent: a beach
// with zero tags but few reviews is still hidden.
type HiddenParams struct {
	HiddenTags     []string
	MaxReviewCount int
}

// # Collection Context

// CollectionContext is the immutable curated definition behind a collection
// key. Exactly one of the mode parameter fields is non-nil, matching Mode.
type CollectionContext struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	Tagline string `json:"tagline,omitempty"`
	Mode    Mode   `json:"mode"`

	Best   *BestParams   `json:"-"`
	Tag    *TagParams    `json:"-"`
	Radius *RadiusParams `json:"-"`
	Hidden *HiddenParams `json:"-"`

	DefaultSort  string `json:"default_sort"`
	DefaultLimit int    `json:"default_limit"`
}

// # Registry

// Registry resolves collection keys to their curated contexts.
// It is populated once at process start and is read-only afterwards,
// so concurrent lookups need no synchronization.
type Registry struct {
	contexts map[string]*CollectionContext
	keys     []string
}

// NewRegistry builds a registry from the given contexts.
// Duplicate keys panic: the context table is a compile-time artifact and a
// collision is a programming error, not a runtime condition.
func NewRegistry(contexts ...*CollectionContext) *Registry {
	registry := &Registry{contexts: make(map[string]*CollectionContext, len(contexts))}

	for _, collection := range contexts {
		if _, exists := registry.contexts[collection.Key]; exists {
			panic("discovery: duplicate collection key " + collection.Key)
		}
		registry.contexts[collection.Key] = collection
		registry.keys = append(registry.keys, collection.Key)
	}

	sort.Strings(registry.keys)
	return registry
}

// Resolve returns the context registered under key.
//
// An unknown key is the only hard validation failure in the engine: it is
// rejected before any query runs, with the valid keys listed for the caller.
func (registry *Registry) Resolve(key string) (*CollectionContext, error) {
	collection, ok := registry.contexts[key]
	if !ok {
		return nil, &apperr.AppError{
			Code:       "UNKNOWN_COLLECTION",
			Message:    fmt.Sprintf("Unknown collection %q. Valid collections: %s", key, strings.Join(registry.keys, ", ")),
			HTTPStatus: http.StatusNotFound,
		}
	}
	return collection, nil
}

// Keys returns the registered collection keys in sorted order.
func (registry *Registry) Keys() []string {
	return registry.keys
}

// All returns every registered context in key order.
func (registry *Registry) All() []*CollectionContext {
	contexts := make([]*CollectionContext, 0, len(registry.keys))
	for _, key := range registry.keys {
		contexts = append(contexts, registry.contexts[key])
	}
	return contexts
}

// # Default Collections

// DefaultRegistry returns the curated collections shipped with Litoral.
//
// Centers and radii reflect the editorial pages of the site: the San Juan
// coordinates are the Old San Juan waterfront, Ponce is the Plaza Las
// Delicias area.
func DefaultRegistry() *Registry {
	return NewRegistry(
		&CollectionContext{
			Key:          "best-beaches",
			Title:        "Best Beaches in Puerto Rico",
			Tagline:      "Top-rated sand island-wide",
			Mode:         ModeBest,
			Best:         &BestParams{},
			DefaultSort:  SortRating,
			DefaultLimit: 24,
		},
		&CollectionContext{
			Key:          "best-beaches-east",
			Title:        "Best Beaches of the East Coast",
			Tagline:      "Luquillo to Vieques",
			Mode:         ModeBest,
			Best:         &BestParams{Municipalities: []string{"Luquillo", "Fajardo", "Ceiba", "Naguabo", "Humacao", "Vieques", "Culebra"}},
			DefaultSort:  SortRating,
			DefaultLimit: 24,
		},
		&CollectionContext{
			Key:          "beaches-near-san-juan",
			Title:        "Beaches Near San Juan",
			Tagline:      "Within 30 km of the capital",
			Mode:         ModeRadius,
			Radius:       &RadiusParams{CenterLat: 18.4655, CenterLng: -66.1057, RadiusKm: 30},
			DefaultSort:  SortDistance,
			DefaultLimit: 24,
		},
		&CollectionContext{
			Key:          "beaches-near-ponce",
			Title:        "Beaches Near Ponce",
			Tagline:      "The south coast within 35 km",
			Mode:         ModeRadius,
			Radius:       &RadiusParams{CenterLat: 18.0111, CenterLng: -66.6141, RadiusKm: 35},
			DefaultSort:  SortDistance,
			DefaultLimit: 24,
		},
		&CollectionContext{
			Key:          "snorkeling-beaches",
			Title:        "Snorkeling Beaches",
			Tagline:      "Reefs and calm, clear water",
			Mode:         ModeTag,
			Tag:          &TagParams{ContextTag: "snorkeling"},
			DefaultSort:  SortRating,
			DefaultLimit: 24,
		},
		&CollectionContext{
			Key:          "surfing-beaches",
			Title:        "Surfing Beaches",
			Tagline:      "From Rincón to Aviones",
			Mode:         ModeTag,
			Tag:          &TagParams{ContextTag: "surfing"},
			DefaultSort:  SortRating,
			DefaultLimit: 24,
		},
		&CollectionContext{
			Key:          "hidden-beaches",
			Title:        "Hidden Beaches",
			Tagline:      "Secluded coves the crowds miss",
			Mode:         ModeHidden,
			Hidden:       &HiddenParams{HiddenTags: []string{"hidden-gem", "secluded"}, MaxReviewCount: 120},
			DefaultSort:  SortName,
			DefaultLimit: 24,
		},
	)
}
