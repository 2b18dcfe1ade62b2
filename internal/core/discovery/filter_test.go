// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package discovery_test

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marvega/litoral/internal/core/discovery"
)

// testCollection returns a minimal context for normalization tests.
func testCollection() *discovery.CollectionContext {
	return &discovery.CollectionContext{
		Key:          "best-beaches",
		Mode:         discovery.ModeBest,
		Best:         &discovery.BestParams{},
		DefaultSort:  discovery.SortRating,
		DefaultLimit: 24,
	}
}

/*
TestNormalizeFilters_Leniency verifies that malformed values are replaced
with defaults, never rejected.
*/
func TestNormalizeFilters_Leniency(t *testing.T) {
	tests := []struct {
		name   string
		params url.Values
		check  func(t *testing.T, f discovery.FilterSet)
	}{
		{
			"empty_input_yields_defaults",
			url.Values{},
			func(t *testing.T, f discovery.FilterSet) {
				assert.Equal(t, "", f.Query)
				// Non-nil so the filter echo marshals as [], not null.
				assert.NotNil(t, f.Tags)
				assert.Empty(t, f.Tags)
				assert.Equal(t, "", f.Municipality)
				assert.Equal(t, discovery.SortRating, f.Sort)
				assert.Equal(t, discovery.ViewCards, f.View)
				assert.Equal(t, 1, f.Page)
				assert.Equal(t, 24, f.Limit)
				assert.False(t, f.IncludeAll)
			},
		},
		{
			"garbage_sort_falls_back_to_collection_default",
			url.Values{"sort": {"DROP TABLE"}},
			func(t *testing.T, f discovery.FilterSet) {
				assert.Equal(t, discovery.SortRating, f.Sort)
			},
		},
		{
			"garbage_view_falls_back_to_cards",
			url.Values{"view": {"carousel"}},
			func(t *testing.T, f discovery.FilterSet) {
				assert.Equal(t, discovery.ViewCards, f.View)
			},
		},
		{
			"negative_page_clamps_to_one",
			url.Values{"page": {"-3"}},
			func(t *testing.T, f discovery.FilterSet) {
				assert.Equal(t, 1, f.Page)
			},
		},
		{
			"non_numeric_page_clamps_to_one",
			url.Values{"page": {"banana"}},
			func(t *testing.T, f discovery.FilterSet) {
				assert.Equal(t, 1, f.Page)
			},
		},
		{
			"limit_above_ceiling_clamps",
			url.Values{"limit": {"5000"}},
			func(t *testing.T, f discovery.FilterSet) {
				assert.Equal(t, discovery.MaxPageSize, f.Limit)
			},
		},
		{
			"zero_limit_clamps_to_one",
			url.Values{"limit": {"0"}},
			func(t *testing.T, f discovery.FilterSet) {
				assert.Equal(t, 1, f.Limit)
			},
		},
		{
			"non_numeric_limit_uses_collection_default",
			url.Values{"limit": {"lots"}},
			func(t *testing.T, f discovery.FilterSet) {
				assert.Equal(t, 24, f.Limit)
			},
		},
		{
			"query_is_trimmed",
			url.Values{"q": {"  flamenco  "}},
			func(t *testing.T, f discovery.FilterSet) {
				assert.Equal(t, "flamenco", f.Query)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, discovery.NormalizeFilters(tt.params, testCollection()))
		})
	}
}

/*
TestNormalizeFilters_Tags covers the two historical tag spellings, comma
splitting, vocabulary whitelisting, and deduplication.
*/
func TestNormalizeFilters_Tags(t *testing.T) {
	tests := []struct {
		name     string
		params   url.Values
		expected []string
	}{
		{
			"modern_spelling",
			url.Values{"tags": {"snorkeling", "surfing"}},
			[]string{"snorkeling", "surfing"},
		},
		{
			"legacy_bracket_spelling",
			url.Values{"tags[]": {"snorkeling"}},
			[]string{"snorkeling"},
		},
		{
			"both_spellings_merge",
			url.Values{"tags": {"snorkeling"}, "tags[]": {"surfing"}},
			[]string{"snorkeling", "surfing"},
		},
		{
			"comma_separated_single_value",
			url.Values{"tags": {"snorkeling,surfing"}},
			[]string{"snorkeling", "surfing"},
		},
		{
			"unknown_slugs_dropped",
			url.Values{"tags": {"snorkeling", "jetskiing", "'; --"}},
			[]string{"snorkeling"},
		},
		{
			"duplicates_kept_once",
			url.Values{"tags": {"surfing", "surfing"}, "tags[]": {"surfing"}},
			[]string{"surfing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := discovery.NormalizeFilters(tt.params, testCollection())
			assert.Equal(t, tt.expected, f.Tags)
		})
	}
}

/*
TestNormalizeFilters_TagEchoShape pins the JSON shape of the filter echo:
with nothing selected, tags serializes as an empty array, not null.
*/
func TestNormalizeFilters_TagEchoShape(t *testing.T) {
	f := discovery.NormalizeFilters(url.Values{}, testCollection())

	payload, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"tags":[]`)
}

/*
TestNormalizeFilters_Municipality requires an exact vocabulary match.
*/
func TestNormalizeFilters_Municipality(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"exact_match_kept", "Rincón", "Rincón"},
		{"wrong_case_dropped", "rincón", ""},
		{"unknown_dropped", "Orlando", ""},
		{"empty_stays_empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := discovery.NormalizeFilters(url.Values{"municipality": {tt.raw}}, testCollection())
			assert.Equal(t, tt.expected, f.Municipality)
		})
	}
}

/*
TestNormalizeFilters_IncludeAll accepts only the explicit truthy tokens.
*/
func TestNormalizeFilters_IncludeAll(t *testing.T) {
	tests := []struct {
		raw      string
		expected bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"on", true},
		{"0", false},
		{"false", false},
		{"", false},
		{"2", false},
		{"si", false},
	}

	for _, tt := range tests {
		t.Run("token_"+tt.raw, func(t *testing.T) {
			f := discovery.NormalizeFilters(url.Values{"include_all": {tt.raw}}, testCollection())
			assert.Equal(t, tt.expected, f.IncludeAll)
		})
	}
}

/*
TestFilterSet_HasUserFilters gates the fallback pass.
*/
func TestFilterSet_HasUserFilters(t *testing.T) {
	assert.False(t, discovery.FilterSet{}.HasUserFilters())
	assert.True(t, discovery.FilterSet{Query: "playa"}.HasUserFilters())
	assert.True(t, discovery.FilterSet{Tags: []string{"surfing"}}.HasUserFilters())
	assert.True(t, discovery.FilterSet{Municipality: "Rincón"}.HasUserFilters())

	// Sort, view, and pagination are presentation, not narrowing.
	assert.False(t, discovery.FilterSet{Sort: discovery.SortRating, View: discovery.ViewMap, Page: 7, Limit: 50}.HasUserFilters())
}
