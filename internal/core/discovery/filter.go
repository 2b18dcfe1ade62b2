// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package discovery

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/marvega/litoral/internal/core/vocab"
	"github.com/marvega/litoral/pkg/query"
)

// # Sort & View Enums

const (
	SortName     = "name"
	SortRating   = "rating"
	SortReviews  = "reviews"
	SortDistance = "distance"
)

const (
	ViewCards = "cards"
	ViewList  = "list"
	ViewGrid  = "grid"
	ViewMap   = "map"
)

// MaxPageSize is the hard ceiling for the per-page limit, regardless of
// what a collection or a visitor asks for.
const MaxPageSize = 120

// # Filter Set

// FilterSet is the canonical, fully-populated form of a discovery request.
//
// Every field is guaranteed in-range after [NormalizeFilters]: downstream
// code never re-validates. Tags and municipality are already vocabulary
// checked; page and limit are clamped.
type FilterSet struct {
	Query        string   `json:"q"`
	Tags         []string `json:"tags"`
	Municipality string   `json:"municipality"`
	Sort         string   `json:"sort"`
	View         string   `json:"view"`
	Page         int      `json:"page"`
	Limit        int      `json:"limit"`
	IncludeAll   bool     `json:"include_all"`
}

// HasUserFilters reports whether the visitor narrowed the collection
// themselves. It gates the zero-result fallback: a visitor who filtered and
// got nothing must see an honest empty page, not a silently widened one.
func (f FilterSet) HasUserFilters() bool {
	return f.Query != "" || len(f.Tags) > 0 || f.Municipality != ""
}

// # Normalization

// truthyTokens are the only values that switch include_all on.
var truthyTokens = map[string]bool{"1": true, "true": true, "yes": true, "on": true}

// NormalizeFilters converts raw, untrusted request parameters into a
// [FilterSet] that is always safe to pass downstream.
//
// The leniency contract: malformed input is replaced with a default, never
// rejected. A stale bookmark with a removed tag or a garbled sort key still
// renders a sensible page.
func NormalizeFilters(values url.Values, collection *CollectionContext) FilterSet {
	filters := FilterSet{
		Query: strings.TrimSpace(values.Get("q")),
		// Never nil: the filter set is echoed in response metadata, where a
		// nil slice would serialize as null instead of [].
		Tags: []string{},
	}

	// Tags arrive under two historical spellings ("tags" from the JSON API,
	// "tags[]" from the legacy HTML forms), each repeatable and each value
	// possibly comma-separated. Unknown slugs are dropped, duplicates kept once.
	seen := make(map[string]bool)
	for _, raw := range append(values["tags"], values["tags[]"]...) {
		for _, slug := range query.StringSlice(raw) {
			if vocab.IsTag(slug) && !seen[slug] {
				seen[slug] = true
				filters.Tags = append(filters.Tags, slug)
			}
		}
	}

	// Municipality must match the vocabulary exactly or is treated as unset.
	if municipality := strings.TrimSpace(values.Get("municipality")); vocab.IsMunicipality(municipality) {
		filters.Municipality = municipality
	}

	filters.Sort = normalizeSort(values.Get("sort"), collection.DefaultSort)
	filters.View = normalizeView(values.Get("view"))
	filters.Page = normalizePage(values.Get("page"))
	filters.Limit = normalizeLimit(values.Get("limit"), collection.DefaultLimit)
	filters.IncludeAll = truthyTokens[strings.ToLower(strings.TrimSpace(values.Get("include_all")))]

	return filters
}

// normalizeSort whitelists the sort key, falling back to the collection default.
func normalizeSort(raw, collectionDefault string) string {
	switch raw {
	case SortName, SortRating, SortReviews, SortDistance:
		return raw
	}

	// The registry is hand-written; guard against a context carrying an
	// unrecognised default.
	switch collectionDefault {
	case SortName, SortRating, SortReviews, SortDistance:
		return collectionDefault
	}
	return SortName
}

// normalizeView whitelists the view key, defaulting to cards.
func normalizeView(raw string) string {
	switch raw {
	case ViewCards, ViewList, ViewGrid, ViewMap:
		return raw
	}
	return ViewCards
}

// normalizePage parses the page number, clamping to 1.
func normalizePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// normalizeLimit parses the page size, substituting the collection default
// for unparseable input and clamping the result to [1, MaxPageSize].
func normalizeLimit(raw string, collectionDefault int) int {
	limit, err := strconv.Atoi(raw)
	if err != nil {
		limit = collectionDefault
	}

	if limit < 1 {
		limit = 1
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return limit
}
