// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package discovery

import (
	"fmt"
	"strings"

	"github.com/marvega/litoral/internal/core/beach"
	"github.com/marvega/litoral/internal/platform/database/schema"
)

// earthRadiusKm is the mean Earth radius used by the great-circle formula.
const earthRadiusKm = 6371

// # Predicate Set

// PredicateSet is the accumulated WHERE clause of one discovery pass.
//
// Fragments are AND-ed in order; Args carries exactly the positional
// bindings $1..$n referenced by the fragments, so the count query can pass
// Args alone. The count query and the page query MUST consume the same
// PredicateSet: computing them from different snapshots desynchronizes the
// pagination metadata from the rows.
type PredicateSet struct {
	Where []string
	Args  []any

	// DistanceExpr is the great-circle distance expression in km. Empty when
	// the collection has no center point.
	DistanceExpr string

	// DistanceArgs holds the center-coordinate bindings when no WHERE
	// fragment references the distance expression. Their placeholders are
	// numbered after every Args entry; only the page query appends them.
	DistanceArgs []any
}

// WhereClause joins the fragments into a single SQL WHERE body.
func (p PredicateSet) WhereClause() string {
	return strings.Join(p.Where, " AND ")
}

// PageArgs returns the bindings for the page query: the WHERE bindings
// followed by the distance-only bindings. The slice is a fresh copy, so the
// caller may append LIMIT and OFFSET without touching the originals.
func (p PredicateSet) PageArgs() []any {
	args := make([]any, 0, len(p.Args)+len(p.DistanceArgs)+2)
	args = append(args, p.Args...)
	return append(args, p.DistanceArgs...)
}

// # Predicate Builder

// BuildPredicates translates a collection context plus normalized filters
// into a bound predicate set.
//
// Two predicate families compose orthogonally. The curated predicate says
// what the collection is about and is emitted only when includeCurated is
// true; the visitor's own filters (tags, municipality, text search) are
// layered on regardless. Suppressing the curated predicate never suppresses
// the visitor's.
func BuildPredicates(collection *CollectionContext, filters FilterSet, includeCurated bool) PredicateSet {
	builder := &predicateBuilder{}
	b := schema.CoreBeach

	// Non-negotiable in every mode and every fallback path: only published,
	// non-deleted listings are ever visible to discovery.
	builder.add(fmt.Sprintf("b.%s = %s", b.PublishStatus, builder.bind(string(beach.StatusPublished))))
	builder.add(fmt.Sprintf("b.%s IS NULL", b.DeletedAt))

	hasCenter := collection.Mode == ModeRadius && collection.Radius != nil

	if includeCurated {
		// The curated radius bound references the distance expression, so its
		// coordinate bindings share the WHERE pool.
		if hasCenter {
			builder.distanceExpr = distanceExpression(builder, collection.Radius)
		}
		builder.curated(collection)
	}
	builder.userFilters(filters)

	whereArgs := builder.args[:len(builder.args):len(builder.args)]

	// With the curated bound suppressed (include_all, or the fallback pass)
	// nothing in the WHERE references the center, yet the page query still
	// computes distance_km for sorting and output. The coordinates bind after
	// every WHERE arg and go into the pool the count query never sees.
	var distanceArgs []any
	if !includeCurated && hasCenter {
		builder.distanceExpr = distanceExpression(builder, collection.Radius)
		distanceArgs = builder.args[len(whereArgs):]
	}

	return PredicateSet{
		Where:        builder.where,
		Args:         whereArgs,
		DistanceExpr: builder.distanceExpr,
		DistanceArgs: distanceArgs,
	}
}

// predicateBuilder accumulates AND-ed fragments and their bindings.
type predicateBuilder struct {
	where        []string
	args         []any
	distanceExpr string
}

// bind appends a value to the args and returns its positional placeholder.
func (builder *predicateBuilder) bind(value any) string {
	builder.args = append(builder.args, value)
	return fmt.Sprintf("$%d", len(builder.args))
}

// add appends a predicate fragment.
func (builder *predicateBuilder) add(fragment string) {
	builder.where = append(builder.where, fragment)
}

// # Curated-Context Predicates

// curated emits the mode-specific predicate defining what the collection is about.
func (builder *predicateBuilder) curated(collection *CollectionContext) {
	b := schema.CoreBeach

	switch collection.Mode {
	case ModeBest:
		// "Best" means the beach has been rated at all; the ordering does the rest.
		builder.add(fmt.Sprintf("b.%s IS NOT NULL", b.GoogleRating))
		if params := collection.Best; params != nil && len(params.Municipalities) > 0 {
			builder.add(fmt.Sprintf("b.%s = ANY(%s)", b.Municipality, builder.bind(params.Municipalities)))
		}

	case ModeTag:
		if params := collection.Tag; params != nil {
			builder.add(tagAssociationExists(fmt.Sprintf("t.%s = %s", schema.RefTag.Slug, builder.bind(params.ContextTag))))
		}

	case ModeRadius:
		if params := collection.Radius; params != nil {
			// Rows with unverified coordinates cannot satisfy a distance bound.
			builder.add(fmt.Sprintf("b.%s IS NOT NULL", b.Lat))
			builder.add(fmt.Sprintf("b.%s IS NOT NULL", b.Lng))
			builder.add(fmt.Sprintf("%s <= %s", builder.distanceExpr, builder.bind(params.RadiusKm)))
		}

	case ModeHidden:
		if params := collection.Hidden; params != nil {
			// OR of two independent obscurity signals, not an AND: a beach with
			// zero tags but few reviews is just as hidden as a tagged one.
			tagOverlap := tagAssociationExists(fmt.Sprintf("t.%s = ANY(%s)", schema.RefTag.Slug, builder.bind(params.HiddenTags)))
			builder.add(fmt.Sprintf("(%s OR b.%s <= %s)", tagOverlap, b.GoogleReviewCount, builder.bind(params.MaxReviewCount)))
		}
	}
}

// # User-Filter Predicates

// userFilters emits the visitor's own predicates. These survive include_all
// and every fallback pass.
func (builder *predicateBuilder) userFilters(filters FilterSet) {
	b := schema.CoreBeach

	// OR semantics across selected tags: one matching association suffices.
	// Bound separately from any context tag so the two never collide.
	if len(filters.Tags) > 0 {
		builder.add(tagAssociationExists(fmt.Sprintf("t.%s = ANY(%s)", schema.RefTag.Slug, builder.bind(filters.Tags))))
	}

	if filters.Municipality != "" {
		builder.add(fmt.Sprintf("b.%s = %s", b.Municipality, builder.bind(filters.Municipality)))
	}

	// Case-insensitive substring search over name, municipality, and
	// description as one AND-ed OR-group.
	if filters.Query != "" {
		pattern := "%" + escapeLike(filters.Query) + "%"
		builder.add(fmt.Sprintf("(b.%s ILIKE %s OR b.%s ILIKE %s OR b.%s ILIKE %s)",
			b.Name, builder.bind(pattern),
			b.Municipality, builder.bind(pattern),
			b.Description, builder.bind(pattern),
		))
	}
}

// # SQL Fragment Helpers

// tagAssociationExists wraps a tag condition into an EXISTS over the
// beach-tag junction.
func tagAssociationExists(tagCondition string) string {
	return fmt.Sprintf(
		"EXISTS (SELECT 1 FROM %s bt JOIN %s t ON t.%s = bt.%s WHERE bt.%s = b.%s AND %s)",
		schema.BeachTag.Table, schema.RefTag.Table,
		schema.RefTag.ID, schema.BeachTag.TagID,
		schema.BeachTag.BeachID, schema.CoreBeach.ID,
		tagCondition,
	)
}

// distanceExpression builds the great-circle distance in km from the
// collection center to each row, binding the center coordinates.
//
// The spherical law of cosines is exact enough at directory scale and is
// evaluated per row; there is deliberately no spatial index here.
func distanceExpression(builder *predicateBuilder, params *RadiusParams) string {
	b := schema.CoreBeach
	latParam := builder.bind(params.CenterLat)
	lngParam := builder.bind(params.CenterLng)

	return fmt.Sprintf(
		"(%d * acos(cos(radians(%s)) * cos(radians(b.%s)) * cos(radians(b.%s) - radians(%s)) + sin(radians(%s)) * sin(radians(b.%s))))",
		earthRadiusKm,
		latParam, b.Lat,
		b.Lng, lngParam,
		latParam, b.Lat,
	)
}

// escapeLike escapes the LIKE metacharacters in visitor-supplied text so a
// search for "100%" matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

// # Order Resolver

// ResolveOrder maps a sort key to a deterministic ORDER BY body.
//
// Every branch ends in a name tie-break so pagination is reproducible: two
// calls over unchanged data always paginate identically.
func ResolveOrder(sortKey string, hasDistance bool) string {
	b := schema.CoreBeach

	switch sortKey {
	case SortRating:
		return fmt.Sprintf("COALESCE(b.%s, 0) DESC, b.%s DESC, b.%s ASC", b.GoogleRating, b.GoogleReviewCount, b.Name)
	case SortReviews:
		return fmt.Sprintf("b.%s DESC, COALESCE(b.%s, 0) DESC, b.%s ASC", b.GoogleReviewCount, b.GoogleRating, b.Name)
	case SortDistance:
		if hasDistance {
			return fmt.Sprintf("distance_km ASC, b.%s ASC", b.Name)
		}
		// No center point available: degrade silently rather than error.
		return fmt.Sprintf("b.%s ASC", b.Name)
	default:
		return fmt.Sprintf("b.%s ASC", b.Name)
	}
}
