// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package discovery

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marvega/litoral/internal/core/beach"
	"github.com/marvega/litoral/internal/platform/database/schema"
)

// # PostgreSQL Repository

// postgresRepository implements [Repository] using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed discovery store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

/*
Count runs the COUNT query for a predicate set.

Description: The WHERE body comes verbatim from the predicate set so that
the subsequent page query, fed the same set, is guaranteed to agree with
the reported total.

Parameters:
  - context: context.Context
  - predicates: PredicateSet

Returns:
  - int: Matching row count
  - error: Database execution errors
*/
func (repository *postgresRepository) Count(context context.Context, predicates PredicateSet) (int, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s b WHERE %s",
		schema.CoreBeach.Table, predicates.WhereClause())

	// Args carries exactly the WHERE bindings; distance-only bindings stay
	// out, the extended protocol rejects parameters no placeholder uses.
	var total int
	if err := repository.pool.QueryRow(context, query, predicates.Args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("postgres: failed to count beaches: %w", err)
	}

	return total, nil
}

/*
Page runs the bounded SELECT for a predicate set and hydrates associations.

Description: Selects the full beach row plus, when the predicate set carries
a distance expression, a computed distance_km column. Tags and amenities for
the page are batch-loaded afterwards in two grouped queries to avoid N+1
round-trips.

Parameters:
  - context: context.Context
  - predicates: PredicateSet (same snapshot the count ran with)
  - orderBy: string
  - limit, offset: int

Returns:
  - []*beach.Beach: Hydrated page rows in order
  - error: Database execution errors
*/
func (repository *postgresRepository) Page(context context.Context, predicates PredicateSet, orderBy string, limit, offset int) ([]*beach.Beach, error) {
	b := schema.CoreBeach

	distanceColumn := "NULL::float8 AS distance_km"
	if predicates.DistanceExpr != "" {
		distanceColumn = predicates.DistanceExpr + " AS distance_km"
	}

	args := predicates.PageArgs()
	query := fmt.Sprintf(`
		SELECT
			b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s,
			b.%s, b.%s, b.%s, b.%s, b.%s,
			b.%s, b.%s, b.%s, b.%s, b.%s,
			b.%s, b.%s, b.%s,
			%s
		FROM %s b
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`,
		b.ID, b.Slug, b.Name, b.Municipality, b.Lat, b.Lng, b.CoverImage,
		b.Description, b.GoogleRating, b.GoogleReviewCount, b.AccessLabel, b.PlaceID,
		b.SargassumLevel, b.SurfLevel, b.WindLevel, b.HasLifeguard, b.SafeForChildren,
		b.PublishStatus, b.CreatedAt, b.UpdatedAt,
		distanceColumn,
		b.Table,
		predicates.WhereClause(),
		orderBy,
		len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to page beaches: %w", err)
	}
	defer rows.Close()

	beaches := make([]*beach.Beach, 0, limit)
	for rows.Next() {
		row := &beach.Beach{}
		err := rows.Scan(
			&row.ID, &row.Slug, &row.Name, &row.Municipality, &row.Lat, &row.Lng, &row.CoverImage,
			&row.Description, &row.GoogleRating, &row.GoogleReviewCount, &row.AccessLabel, &row.PlaceID,
			&row.Sargassum, &row.Surf, &row.Wind, &row.HasLifeguard, &row.SafeForChildren,
			&row.PublishStatus, &row.CreatedAt, &row.UpdatedAt,
			&row.DistanceKm,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan beach: %w", err)
		}
		beaches = append(beaches, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: beach row iteration failed: %w", err)
	}

	if err := repository.attachMetadata(context, beaches); err != nil {
		return nil, err
	}

	return beaches, nil
}

// # Metadata Attacher

// attachMetadata batch-loads tags and amenities for the page rows.
func (repository *postgresRepository) attachMetadata(context context.Context, beaches []*beach.Beach) error {
	if len(beaches) == 0 {
		return nil
	}

	index := make(map[string]*beach.Beach, len(beaches))
	ids := make([]string, 0, len(beaches))
	for _, row := range beaches {
		index[row.ID] = row
		ids = append(ids, row.ID)
	}

	tagQuery := fmt.Sprintf(`
		SELECT bt.%s, t.%s, t.%s, t.%s, t.%s
		FROM %s bt
		JOIN %s t ON t.%s = bt.%s
		WHERE bt.%s = ANY($1)
		ORDER BY t.%s ASC
	`,
		schema.BeachTag.BeachID, schema.RefTag.ID, schema.RefTag.Slug, schema.RefTag.Name, schema.RefTag.Category,
		schema.BeachTag.Table,
		schema.RefTag.Table, schema.RefTag.ID, schema.BeachTag.TagID,
		schema.BeachTag.BeachID,
		schema.RefTag.Name,
	)

	tagRows, err := repository.pool.Query(context, tagQuery, ids)
	if err != nil {
		return fmt.Errorf("postgres: failed to load beach tags: %w", err)
	}
	defer tagRows.Close()

	for tagRows.Next() {
		var beachID string
		var tag beach.Tag
		if err := tagRows.Scan(&beachID, &tag.ID, &tag.Slug, &tag.Name, &tag.Category); err != nil {
			return fmt.Errorf("postgres: failed to scan beach tag: %w", err)
		}
		if row, ok := index[beachID]; ok {
			row.Tags = append(row.Tags, tag)
		}
	}
	if err := tagRows.Err(); err != nil {
		return fmt.Errorf("postgres: beach tag iteration failed: %w", err)
	}

	amenityQuery := fmt.Sprintf(`
		SELECT ba.%s, a.%s, a.%s, a.%s, a.%s
		FROM %s ba
		JOIN %s a ON a.%s = ba.%s
		WHERE ba.%s = ANY($1)
		ORDER BY a.%s ASC
	`,
		schema.BeachAmenity.BeachID, schema.RefAmenity.ID, schema.RefAmenity.Slug, schema.RefAmenity.Name, schema.RefAmenity.Icon,
		schema.BeachAmenity.Table,
		schema.RefAmenity.Table, schema.RefAmenity.ID, schema.BeachAmenity.AmenityID,
		schema.BeachAmenity.BeachID,
		schema.RefAmenity.Name,
	)

	amenityRows, err := repository.pool.Query(context, amenityQuery, ids)
	if err != nil {
		return fmt.Errorf("postgres: failed to load beach amenities: %w", err)
	}
	defer amenityRows.Close()

	for amenityRows.Next() {
		var beachID string
		var amenity beach.Amenity
		if err := amenityRows.Scan(&beachID, &amenity.ID, &amenity.Slug, &amenity.Name, &amenity.Icon); err != nil {
			return fmt.Errorf("postgres: failed to scan beach amenity: %w", err)
		}
		if row, ok := index[beachID]; ok {
			row.Amenities = append(row.Amenities, amenity)
		}
	}
	if err := amenityRows.Err(); err != nil {
		return fmt.Errorf("postgres: beach amenity iteration failed: %w", err)
	}

	return nil
}
