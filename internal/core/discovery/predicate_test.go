// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package discovery_test

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marvega/litoral/internal/core/discovery"
)

// placeholderPattern matches the positional bindings emitted by the builder.
var placeholderPattern = regexp.MustCompile(`\$(\d+)`)

// placeholderRefs collects the positional placeholders a SQL fragment references.
func placeholderRefs(t *testing.T, text string) map[int]bool {
	t.Helper()

	refs := map[int]bool{}
	for _, match := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		var n int
		_, err := fmt.Sscanf(match[1], "%d", &n)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1)
		refs[n] = true
	}
	return refs
}

// assertBindingsConsistent verifies placeholder/argument agreement per query
// shape. The count query executes the WHERE clause with Args alone, so every
// Args entry must be referenced there and no WHERE placeholder may exceed
// them. The page query adds the distance expression with DistanceArgs
// appended after Args, so distance-only bindings must be referenced by the
// expression and never by the WHERE clause.
func assertBindingsConsistent(t *testing.T, p discovery.PredicateSet) {
	t.Helper()

	whereRefs := placeholderRefs(t, p.WhereClause())
	for n := range whereRefs {
		assert.LessOrEqual(t, n, len(p.Args), "WHERE placeholder $%d exceeds the %d count args", n, len(p.Args))
	}
	for i := 1; i <= len(p.Args); i++ {
		assert.True(t, whereRefs[i], "count arg $%d is never referenced by the WHERE clause", i)
	}

	pageArgCount := len(p.Args) + len(p.DistanceArgs)
	distanceRefs := placeholderRefs(t, p.DistanceExpr)
	for n := range distanceRefs {
		assert.LessOrEqual(t, n, pageArgCount, "distance placeholder $%d exceeds the %d page args", n, pageArgCount)
	}
	for i := len(p.Args) + 1; i <= pageArgCount; i++ {
		assert.True(t, distanceRefs[i], "page-only arg $%d is never referenced by the distance expression", i)
	}
}

func TestBuildPredicates_AlwaysOnPredicates(t *testing.T) {
	p := discovery.BuildPredicates(testCollection(), discovery.FilterSet{}, true)

	where := p.WhereClause()
	assert.Contains(t, where, "b.publishstatus = $1")
	assert.Contains(t, where, "b.deletedat IS NULL")
	assert.Equal(t, "published", p.Args[0])
	assertBindingsConsistent(t, p)
}

func TestBuildPredicates_AlwaysOnSurvivesFallback(t *testing.T) {
	// The fallback pass drops the curated predicate, never the visibility one.
	p := discovery.BuildPredicates(testCollection(), discovery.FilterSet{}, false)

	assert.Contains(t, p.WhereClause(), "b.publishstatus = $1")
	assert.Contains(t, p.WhereClause(), "b.deletedat IS NULL")
	assert.NotContains(t, p.WhereClause(), "googlerating IS NOT NULL")
	assertBindingsConsistent(t, p)
}

func TestBuildPredicates_BestMode(t *testing.T) {
	collection := &discovery.CollectionContext{
		Key:  "best-beaches-east",
		Mode: discovery.ModeBest,
		Best: &discovery.BestParams{Municipalities: []string{"Fajardo", "Luquillo"}},
	}

	p := discovery.BuildPredicates(collection, discovery.FilterSet{}, true)

	where := p.WhereClause()
	assert.Contains(t, where, "b.googlerating IS NOT NULL")
	assert.Contains(t, where, "b.municipality = ANY(")
	assert.Contains(t, p.Args, []string{"Fajardo", "Luquillo"})
	assertBindingsConsistent(t, p)
}

func TestBuildPredicates_TagMode(t *testing.T) {
	collection := &discovery.CollectionContext{
		Key:  "snorkeling-beaches",
		Mode: discovery.ModeTag,
		Tag:  &discovery.TagParams{ContextTag: "snorkeling"},
	}

	p := discovery.BuildPredicates(collection, discovery.FilterSet{}, true)

	where := p.WhereClause()
	assert.Contains(t, where, "EXISTS (SELECT 1 FROM core.beachtag bt JOIN core.tag t")
	assert.Contains(t, where, "t.slug = $")
	assert.Contains(t, p.Args, "snorkeling")
	assertBindingsConsistent(t, p)
}

func TestBuildPredicates_RadiusMode(t *testing.T) {
	collection := &discovery.CollectionContext{
		Key:    "beaches-near-san-juan",
		Mode:   discovery.ModeRadius,
		Radius: &discovery.RadiusParams{CenterLat: 18.4655, CenterLng: -66.1057, RadiusKm: 30},
	}

	p := discovery.BuildPredicates(collection, discovery.FilterSet{}, true)

	where := p.WhereClause()
	assert.Contains(t, where, "b.lat IS NOT NULL")
	assert.Contains(t, where, "b.lng IS NOT NULL")
	assert.Contains(t, p.DistanceExpr, "6371 * acos(")
	assert.Contains(t, where, p.DistanceExpr+" <= $")
	assert.Contains(t, p.Args, 18.4655)
	assert.Contains(t, p.Args, -66.1057)
	assert.Contains(t, p.Args, 30.0)
	assertBindingsConsistent(t, p)
}

func TestBuildPredicates_RadiusDistanceSurvivesFallback(t *testing.T) {
	collection := &discovery.CollectionContext{
		Key:    "beaches-near-ponce",
		Mode:   discovery.ModeRadius,
		Radius: &discovery.RadiusParams{CenterLat: 18.0111, CenterLng: -66.6141, RadiusKm: 35},
	}

	p := discovery.BuildPredicates(collection, discovery.FilterSet{}, false)

	// The distance bound goes away but the expression stays for sorting and
	// per-row output. Its coordinate bindings leave the count query's
	// argument list entirely, numbered after every WHERE binding.
	assert.NotContains(t, p.WhereClause(), "<=")
	assert.Contains(t, p.DistanceExpr, "6371 * acos(")
	assert.Equal(t, []any{"published"}, p.Args)
	assert.Equal(t, []any{18.0111, -66.6141}, p.DistanceArgs)
	assert.Contains(t, p.DistanceExpr, "$2")
	assert.Contains(t, p.DistanceExpr, "$3")
	assertBindingsConsistent(t, p)
}

func TestBuildPredicates_RadiusIncludeAllWithUserFilters(t *testing.T) {
	collection := &discovery.CollectionContext{
		Key:    "beaches-near-san-juan",
		Mode:   discovery.ModeRadius,
		Radius: &discovery.RadiusParams{CenterLat: 18.4655, CenterLng: -66.1057, RadiusKm: 30},
	}

	p := discovery.BuildPredicates(collection, discovery.FilterSet{Municipality: "Carolina"}, false)

	// The center coordinates bind after the visitor's own predicates, so the
	// WHERE placeholders stay dense and the count query stays well-formed.
	assert.Equal(t, []any{"published", "Carolina"}, p.Args)
	assert.Equal(t, []any{18.4655, -66.1057}, p.DistanceArgs)
	assert.Contains(t, p.DistanceExpr, "$3")
	assert.Contains(t, p.DistanceExpr, "$4")
	assertBindingsConsistent(t, p)
}

func TestPredicateSet_PageArgsDetachedFromBuilder(t *testing.T) {
	collection := &discovery.CollectionContext{
		Key:    "beaches-near-san-juan",
		Mode:   discovery.ModeRadius,
		Radius: &discovery.RadiusParams{CenterLat: 18.4655, CenterLng: -66.1057, RadiusKm: 30},
	}

	p := discovery.BuildPredicates(collection, discovery.FilterSet{}, false)

	args := p.PageArgs()
	assert.Equal(t, []any{"published", 18.4655, -66.1057}, args)

	// Appending LIMIT and OFFSET must not write into the predicate set.
	extended := append(args, 24, 0)
	require.Len(t, extended, 5)
	assert.Equal(t, []any{"published"}, p.Args)
	assert.Equal(t, []any{18.4655, -66.1057}, p.DistanceArgs)
}

func TestBuildPredicates_HiddenMode(t *testing.T) {
	collection := &discovery.CollectionContext{
		Key:    "hidden-beaches",
		Mode:   discovery.ModeHidden,
		Hidden: &discovery.HiddenParams{HiddenTags: []string{"hidden-gem", "secluded"}, MaxReviewCount: 120},
	}

	p := discovery.BuildPredicates(collection, discovery.FilterSet{}, true)

	where := p.WhereClause()
	// The two obscurity signals are OR-ed inside one group.
	assert.Regexp(t, `\(EXISTS .+ OR b\.googlereviewcount <= \$\d+\)`, where)
	assert.Contains(t, p.Args, []string{"hidden-gem", "secluded"})
	assert.Contains(t, p.Args, 120)
	assertBindingsConsistent(t, p)
}

func TestBuildPredicates_UserFiltersSurviveIncludeAll(t *testing.T) {
	filters := discovery.FilterSet{
		Tags:         []string{"surfing"},
		Municipality: "Rincón",
		Query:        "domes",
	}

	p := discovery.BuildPredicates(testCollection(), filters, false)

	where := p.WhereClause()
	assert.Contains(t, where, "t.slug = ANY(")
	assert.Contains(t, where, "b.municipality = $")
	assert.Contains(t, where, "ILIKE")
	assert.Contains(t, p.Args, []string{"surfing"})
	assert.Contains(t, p.Args, "Rincón")
	assertBindingsConsistent(t, p)
}

func TestBuildPredicates_SearchGroupAndEscaping(t *testing.T) {
	p := discovery.BuildPredicates(testCollection(), discovery.FilterSet{Query: "100%_\\x"}, true)

	// One OR-group over the three searchable columns, same pattern bound
	// three times.
	assert.Regexp(t, `\(b\.name ILIKE \$\d+ OR b\.municipality ILIKE \$\d+ OR b\.description ILIKE \$\d+\)`, p.WhereClause())
	assert.Contains(t, p.Args, `%100\%\_\\x%`)
	assertBindingsConsistent(t, p)
}

func TestBuildPredicates_ContextTagAndUserTagsBindSeparately(t *testing.T) {
	collection := &discovery.CollectionContext{
		Key:  "snorkeling-beaches",
		Mode: discovery.ModeTag,
		Tag:  &discovery.TagParams{ContextTag: "snorkeling"},
	}

	p := discovery.BuildPredicates(collection, discovery.FilterSet{Tags: []string{"family-friendly"}}, true)

	// Two independent EXISTS fragments, AND-ed.
	assert.Equal(t, 2, strings.Count(p.WhereClause(), "EXISTS (SELECT 1 FROM core.beachtag"))
	assert.Contains(t, p.Args, "snorkeling")
	assert.Contains(t, p.Args, []string{"family-friendly"})
	assertBindingsConsistent(t, p)
}

func TestResolveOrder(t *testing.T) {
	tests := []struct {
		name        string
		sortKey     string
		hasDistance bool
		expected    string
	}{
		{"rating", discovery.SortRating, false, "COALESCE(b.googlerating, 0) DESC, b.googlereviewcount DESC, b.name ASC"},
		{"reviews", discovery.SortReviews, false, "b.googlereviewcount DESC, COALESCE(b.googlerating, 0) DESC, b.name ASC"},
		{"distance_with_center", discovery.SortDistance, true, "distance_km ASC, b.name ASC"},
		{"distance_without_center_degrades", discovery.SortDistance, false, "b.name ASC"},
		{"name", discovery.SortName, false, "b.name ASC"},
		{"unknown_falls_back_to_name", "bogus", false, "b.name ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, discovery.ResolveOrder(tt.sortKey, tt.hasDistance))
		})
	}
}
