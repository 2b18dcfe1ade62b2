// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package discovery_test

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marvega/litoral/internal/core/beach"
	"github.com/marvega/litoral/internal/core/discovery"
)

// fakeRepository records every predicate set it is asked to evaluate and
// answers counts from a script, one entry per Count call.
type fakeRepository struct {
	counts     []int
	countCalls []discovery.PredicateSet

	pageCalls []pageCall
	rows      []*beach.Beach
}

type pageCall struct {
	predicates discovery.PredicateSet
	orderBy    string
	limit      int
	offset     int
}

func (repo *fakeRepository) Count(_ context.Context, predicates discovery.PredicateSet) (int, error) {
	repo.countCalls = append(repo.countCalls, predicates)
	total := repo.counts[0]
	if len(repo.counts) > 1 {
		repo.counts = repo.counts[1:]
	}
	return total, nil
}

func (repo *fakeRepository) Page(_ context.Context, predicates discovery.PredicateSet, orderBy string, limit, offset int) ([]*beach.Beach, error) {
	repo.pageCalls = append(repo.pageCalls, pageCall{predicates, orderBy, limit, offset})
	return repo.rows, nil
}

func newTestService(repo *fakeRepository) *discovery.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return discovery.NewService(discovery.DefaultRegistry(), repo, logger)
}

func TestBrowse_UnknownCollection(t *testing.T) {
	service := newTestService(&fakeRepository{counts: []int{0}})

	result, err := service.Browse(context.Background(), "no-such-collection", url.Values{})
	assert.Nil(t, result)
	assert.Error(t, err)
}

func TestBrowse_HappyPath(t *testing.T) {
	repo := &fakeRepository{
		counts: []int{3},
		rows: []*beach.Beach{
			{Name: "Playa Flamenco"},
			{Name: "Playa Sucia"},
			{Name: "Playa Tortuga"},
		},
	}
	service := newTestService(repo)

	result, err := service.Browse(context.Background(), "best-beaches", url.Values{})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 24, result.Limit)
	assert.Equal(t, 1, result.Pages)
	assert.False(t, result.ContextFallback)
	assert.Len(t, result.Beaches, 3)

	// One count, one page, and both see the same predicate set.
	require.Len(t, repo.countCalls, 1)
	require.Len(t, repo.pageCalls, 1)
	assert.Equal(t, repo.countCalls[0], repo.pageCalls[0].predicates)
}

func TestBrowse_FallbackWhenCuratedContextEmpty(t *testing.T) {
	repo := &fakeRepository{counts: []int{0, 41}}
	service := newTestService(repo)

	result, err := service.Browse(context.Background(), "hidden-beaches", url.Values{})
	require.NoError(t, err)

	assert.True(t, result.ContextFallback)
	assert.Equal(t, 41, result.Total)

	// Two count passes; the second drops the curated predicate but keeps
	// the visibility predicates.
	require.Len(t, repo.countCalls, 2)
	first := repo.countCalls[0].WhereClause()
	second := repo.countCalls[1].WhereClause()
	assert.Contains(t, first, "googlereviewcount")
	assert.NotContains(t, second, "googlereviewcount")
	assert.Contains(t, second, "publishstatus")
	assert.Contains(t, second, "deletedat IS NULL")

	// The page query runs over the widened predicates.
	require.Len(t, repo.pageCalls, 1)
	assert.Equal(t, repo.countCalls[1], repo.pageCalls[0].predicates)
}

func TestBrowse_NoFallbackWithUserFilters(t *testing.T) {
	tests := []struct {
		name   string
		params url.Values
	}{
		{"text_search", url.Values{"q": {"nonexistent"}}},
		{"tag_filter", url.Values{"tags": {"surfing"}}},
		{"municipality_filter", url.Values{"municipality": {"Ponce"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{counts: []int{0}}
			service := newTestService(repo)

			result, err := service.Browse(context.Background(), "best-beaches", tt.params)
			require.NoError(t, err)

			// The visitor narrowed the result themselves; an honest zero
			// beats a silently widened page.
			assert.False(t, result.ContextFallback)
			assert.Equal(t, 0, result.Total)
			assert.Len(t, repo.countCalls, 1)
		})
	}
}

func TestBrowse_NoFallbackWithIncludeAll(t *testing.T) {
	repo := &fakeRepository{counts: []int{0}}
	service := newTestService(repo)

	result, err := service.Browse(context.Background(), "best-beaches", url.Values{"include_all": {"1"}})
	require.NoError(t, err)

	assert.False(t, result.ContextFallback)
	assert.Len(t, repo.countCalls, 1)

	// include_all already suppressed the curated predicate on the first pass.
	assert.NotContains(t, repo.countCalls[0].WhereClause(), "googlerating IS NOT NULL")
}

func TestBrowse_RadiusIncludeAllCountOmitsDistanceBindings(t *testing.T) {
	repo := &fakeRepository{counts: []int{7}}
	service := newTestService(repo)

	result, err := service.Browse(context.Background(), "beaches-near-san-juan", url.Values{"include_all": {"1"}})
	require.NoError(t, err)
	assert.False(t, result.ContextFallback)

	// The count pass sees only the bindings its WHERE clause references; the
	// center coordinates travel separately for the page query's distance
	// column.
	require.Len(t, repo.countCalls, 1)
	p := repo.countCalls[0]
	assert.NotContains(t, p.WhereClause(), "acos(")
	assert.Equal(t, []any{"published"}, p.Args)
	assert.Equal(t, []any{18.4655, -66.1057}, p.DistanceArgs)
	assert.Contains(t, p.DistanceExpr, "6371 * acos(")
}

func TestBrowse_RadiusFallbackCountOmitsDistanceBindings(t *testing.T) {
	repo := &fakeRepository{counts: []int{0, 9}}
	service := newTestService(repo)

	result, err := service.Browse(context.Background(), "beaches-near-san-juan", url.Values{})
	require.NoError(t, err)
	assert.True(t, result.ContextFallback)
	assert.Equal(t, 9, result.Total)

	// The widened pass drops the radius bound AND its coordinate bindings
	// from the count arguments.
	require.Len(t, repo.countCalls, 2)
	widened := repo.countCalls[1]
	assert.NotContains(t, widened.WhereClause(), "acos(")
	assert.Equal(t, []any{"published"}, widened.Args)
	assert.Equal(t, []any{18.4655, -66.1057}, widened.DistanceArgs)

	// Distance ordering still works over the widened set.
	require.Len(t, repo.pageCalls, 1)
	assert.True(t, strings.HasPrefix(repo.pageCalls[0].orderBy, "distance_km ASC"))
}

func TestBrowse_PaginationMetadata(t *testing.T) {
	tests := []struct {
		name          string
		total         int
		params        url.Values
		expectedLimit int
		expectedPages int
		expectedOff   int
	}{
		{"partial_last_page", 133, url.Values{"limit": {"15"}}, 15, 9, 0},
		{"exact_division", 120, url.Values{"limit": {"15"}}, 15, 8, 0},
		{"empty_result_is_one_page", 0, url.Values{"q": {"zzz"}}, 24, 1, 0},
		{"offset_from_page", 133, url.Values{"limit": {"15"}, "page": {"9"}}, 15, 9, 120},
		{"default_limit", 50, url.Values{}, 24, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{counts: []int{tt.total}}
			service := newTestService(repo)

			result, err := service.Browse(context.Background(), "best-beaches", tt.params)
			require.NoError(t, err)

			assert.Equal(t, tt.total, result.Total)
			assert.Equal(t, tt.expectedLimit, result.Limit)
			assert.Equal(t, tt.expectedPages, result.Pages)

			require.Len(t, repo.pageCalls, 1)
			assert.Equal(t, tt.expectedLimit, repo.pageCalls[0].limit)
			assert.Equal(t, tt.expectedOff, repo.pageCalls[0].offset)
		})
	}
}

func TestBrowse_DistanceSortOnRadiusCollection(t *testing.T) {
	repo := &fakeRepository{counts: []int{12}}
	service := newTestService(repo)

	_, err := service.Browse(context.Background(), "beaches-near-san-juan", url.Values{})
	require.NoError(t, err)

	require.Len(t, repo.pageCalls, 1)
	assert.True(t, strings.HasPrefix(repo.pageCalls[0].orderBy, "distance_km ASC"))
}

func TestBrowse_DistanceSortDegradesOffRadiusCollection(t *testing.T) {
	repo := &fakeRepository{counts: []int{12}}
	service := newTestService(repo)

	_, err := service.Browse(context.Background(), "best-beaches", url.Values{"sort": {"distance"}})
	require.NoError(t, err)

	require.Len(t, repo.pageCalls, 1)
	assert.Equal(t, "b.name ASC", repo.pageCalls[0].orderBy)
}

// TestBrowse_Deterministic runs the same request twice against identical
// data and expects byte-identical predicates and metadata.
func TestBrowse_Deterministic(t *testing.T) {
	params := url.Values{"tags": {"surfing,snorkeling"}, "q": {"playa"}, "page": {"2"}}

	run := func() (*discovery.Result, pageCall) {
		repo := &fakeRepository{counts: []int{90}}
		service := newTestService(repo)
		result, err := service.Browse(context.Background(), "surfing-beaches", params)
		require.NoError(t, err)
		return result, repo.pageCalls[0]
	}

	firstResult, firstPage := run()
	secondResult, secondPage := run()

	assert.Equal(t, firstResult, secondResult)
	assert.Equal(t, firstPage, secondPage)
}
