// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package beach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marvega/litoral/internal/platform/apperr"
	"github.com/marvega/litoral/internal/platform/database/schema"
)

// # PostgreSQL Repository

// postgresRepository implements the [Repository] interface using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed beach store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// beachSelectColumns returns the aliased column list shared by every
// single-entity and list query, including the aggregated tag and amenity
// JSON sub-selects.
func beachSelectColumns() string {
	b := schema.CoreBeach

	return fmt.Sprintf(`
		b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s,
		b.%s, b.%s, b.%s, b.%s, b.%s,
		b.%s, b.%s, b.%s, b.%s, b.%s,
		b.%s, b.%s, b.%s,
		COALESCE((
			SELECT json_agg(json_build_object('id', t.%s, 'slug', t.%s, 'name', t.%s, 'category', t.%s) ORDER BY t.%s)
			FROM %s t
			JOIN %s bt ON t.%s = bt.%s
			WHERE bt.%s = b.%s
		), '[]') AS tags,
		COALESCE((
			SELECT json_agg(json_build_object('id', a.%s, 'slug', a.%s, 'name', a.%s, 'icon', a.%s) ORDER BY a.%s)
			FROM %s a
			JOIN %s ba ON a.%s = ba.%s
			WHERE ba.%s = b.%s
		), '[]') AS amenities`,
		b.ID, b.Slug, b.Name, b.Municipality, b.Lat, b.Lng, b.CoverImage,
		b.Description, b.AccessLabel, b.PlaceID, b.GoogleRating, b.GoogleReviewCount,
		b.SargassumLevel, b.SurfLevel, b.WindLevel, b.HasLifeguard, b.SafeForChildren,
		b.PublishStatus, b.CreatedAt, b.UpdatedAt,
		schema.RefTag.ID, schema.RefTag.Slug, schema.RefTag.Name, schema.RefTag.Category, schema.RefTag.Name,
		schema.RefTag.Table,
		schema.BeachTag.Table, schema.RefTag.ID, schema.BeachTag.TagID,
		schema.BeachTag.BeachID, b.ID,
		schema.RefAmenity.ID, schema.RefAmenity.Slug, schema.RefAmenity.Name, schema.RefAmenity.Icon, schema.RefAmenity.Name,
		schema.RefAmenity.Table,
		schema.BeachAmenity.Table, schema.RefAmenity.ID, schema.BeachAmenity.AmenityID,
		schema.BeachAmenity.BeachID, b.ID,
	)
}

// scanBeach maps one result row, including the aggregated JSON columns,
// into a domain entity. The extra destinations are appended after the
// fixed column set so List can scan its window count through the same path.
func scanBeach(row pgx.Row, extra ...any) (*Beach, error) {
	entity := &Beach{}
	var tagsJSON, amenitiesJSON []byte

	destinations := []any{
		&entity.ID,
		&entity.Slug,
		&entity.Name,
		&entity.Municipality,
		&entity.Lat,
		&entity.Lng,
		&entity.CoverImage,
		&entity.Description,
		&entity.AccessLabel,
		&entity.PlaceID,
		&entity.GoogleRating,
		&entity.GoogleReviewCount,
		&entity.Sargassum,
		&entity.Surf,
		&entity.Wind,
		&entity.HasLifeguard,
		&entity.SafeForChildren,
		&entity.PublishStatus,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	}
	destinations = append(destinations, extra...)
	destinations = append(destinations, &tagsJSON, &amenitiesJSON)

	if err := row.Scan(destinations...); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(tagsJSON, &entity.Tags); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal tags: %w", err)
	}
	if err := json.Unmarshal(amenitiesJSON, &entity.Amenities); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal amenities: %w", err)
	}

	return entity, nil
}

/*
List returns a filtered, paginated slice of beaches and the total count.

Description: Uses COUNT(*) OVER() to retrieve the total matching count in the
same round-trip, and JSON sub-query aggregation to hydrate tags and amenities
without an N+1 fan-out. The WHERE clause is assembled dynamically from the
populated filter criteria.

Parameters:
  - context: context.Context
  - filter: Filter (Search, municipality, publish status)
  - limit: int
  - offset: int

Returns:
  - []*Beach: Slice of hydrated listing entities
  - int: Total count matching filters
  - error: Database execution errors
*/
func (repository *postgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Beach, int, error) {
	b := schema.CoreBeach

	var queryBuilder strings.Builder
	var args []any
	argID := 1

	// Window function carries the total through every row.
	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s b
		WHERE b.%s IS NULL
	`, beachSelectColumns(), b.Table, b.DeletedAt))

	// Dynamic WHERE clause construction
	if filter.PublishStatus != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND b.%s = $%d", b.PublishStatus, argID))
		args = append(args, filter.PublishStatus)
		argID++
	}

	if filter.Municipality != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND b.%s = $%d", b.Municipality, argID))
		args = append(args, filter.Municipality)
		argID++
	}

	if filter.Query != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND (b.%s ILIKE $%d OR b.%s ILIKE $%d)", b.Name, argID, b.Description, argID))
		args = append(args, "%"+filter.Query+"%")
		argID++
	}

	// Stable ordering for the admin table view.
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY b.%s DESC, b.%s DESC", b.CreatedAt, b.ID))

	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list beaches: %w", err)
	}
	defer rows.Close()

	var beaches []*Beach
	var totalCount int

	for rows.Next() {
		entity, err := scanBeach(rows, &totalCount)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan beach: %w", err)
		}
		beaches = append(beaches, entity)
	}

	return beaches, totalCount, nil
}

/*
FindByID retrieves a beach record by its primary key.

Description: Performs a single-row lookup hydrating the full entity,
including tags and amenities via JSON aggregation sub-queries to avoid a
second round-trip. Soft-deleted rows are invisible to this lookup.

Parameters:
  - context: context.Context
  - id: string (UUID primary key)

Returns:
  - *Beach: The fully hydrated listing entity
  - error: apperr.NotFound if the beach does not exist
*/
func (repository *postgresRepository) FindByID(context context.Context, id string) (*Beach, error) {
	b := schema.CoreBeach

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s b
		WHERE b.%s = $1 AND b.%s IS NULL
	`, beachSelectColumns(), b.Table, b.ID, b.DeletedAt)

	entity, err := scanBeach(repository.pool.QueryRow(context, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("beach")
		}
		return nil, fmt.Errorf("postgres: failed to find beach by id: %w", err)
	}

	return entity, nil
}

/*
FindBySlug retrieves a beach record by its unique SEO URL slug.

Description: Serves public detail pages where the frontend URL carries the
slug instead of the internal UUID. Otherwise identical to FindByID.

Parameters:
  - context: context.Context
  - slug: string (URL-safe identifier)

Returns:
  - *Beach: The fully hydrated listing entity
  - error: apperr.NotFound on an unknown slug
*/
func (repository *postgresRepository) FindBySlug(context context.Context, slug string) (*Beach, error) {
	b := schema.CoreBeach

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s b
		WHERE b.%s = $1 AND b.%s IS NULL
	`, beachSelectColumns(), b.Table, b.Slug, b.DeletedAt)

	entity, err := scanBeach(repository.pool.QueryRow(context, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("beach")
		}
		return nil, fmt.Errorf("postgres: failed to find beach by slug: %w", err)
	}

	return entity, nil
}

/*
Create persists a new beach listing and its junction table links.

Description: Executes the insertion within a single transaction so that a
failed junction write (tags, amenities) rolls back the core row. This
prevents orphaned associations and partial saves.

Parameters:
  - context: context.Context
  - entity: *Beach (Core metadata plus junction ID arrays)

Returns:
  - error: nil on a committed sequence, otherwise SQL or constraint failures
*/
func (repository *postgresRepository) Create(context context.Context, entity *Beach) error {
	b := schema.CoreBeach

	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		INSERT INTO %s (
			%s, %s, %s, %s, %s, %s, %s,
			%s, %s, %s, %s, %s,
			%s, %s, %s, %s, %s, %s
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`,
		b.Table,
		b.ID, b.Slug, b.Name, b.Municipality, b.Lat, b.Lng, b.CoverImage,
		b.Description, b.AccessLabel, b.PlaceID, b.GoogleRating, b.GoogleReviewCount,
		b.SargassumLevel, b.SurfLevel, b.WindLevel, b.HasLifeguard, b.SafeForChildren, b.PublishStatus,
	)

	_, err = transaction.Exec(context, query,
		entity.ID,
		entity.Slug,
		entity.Name,
		entity.Municipality,
		entity.Lat,
		entity.Lng,
		entity.CoverImage,
		entity.Description,
		entity.AccessLabel,
		entity.PlaceID,
		entity.GoogleRating,
		entity.GoogleReviewCount,
		entity.Sargassum,
		entity.Surf,
		entity.Wind,
		entity.HasLifeguard,
		entity.SafeForChildren,
		entity.PublishStatus,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to create beach: %w", err)
	}

	// Junction synchronization (Tags)
	if len(entity.TagIDs) > 0 {
		if err := repository.updateJunction(context, transaction, schema.BeachTag.Table, schema.BeachTag.BeachID, schema.BeachTag.TagID, entity.ID, entity.TagIDs); err != nil {
			return err
		}
	}

	// Junction synchronization (Amenities)
	if len(entity.AmenityIDs) > 0 {
		if err := repository.updateJunction(context, transaction, schema.BeachAmenity.Table, schema.BeachAmenity.BeachID, schema.BeachAmenity.AmenityID, entity.ID, entity.AmenityIDs); err != nil {
			return err
		}
	}

	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres: failed to commit create transaction: %w", err)
	}

	return nil
}

/*
Update persists metadata modifications to an existing beach record.

Description: Builds a PATCH-style partial update with strings.Builder,
appending only the populated fields to the SET block. Junction associations
are fully replaced when the corresponding ID array is non-nil, so a client
sending an empty array clears the association while an absent field leaves
it untouched. The whole sequence runs in one transaction.

Parameters:
  - context: context.Context
  - entity: *Beach (Target UUID plus updated fields)

Returns:
  - error: apperr.NotFound if the target row is missing or soft-deleted
*/
func (repository *postgresRepository) Update(context context.Context, entity *Beach) error {
	b := schema.CoreBeach

	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf("UPDATE %s SET %s = NOW()", b.Table, b.UpdatedAt))

	var args []any
	argID := 1

	// Populated-field detection keeps zero values from clobbering columns.
	if entity.Name != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", b.Name, argID))
		args = append(args, entity.Name)
		argID++
	}

	if entity.Slug != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", b.Slug, argID))
		args = append(args, entity.Slug)
		argID++
	}

	if entity.Municipality != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", b.Municipality, argID))
		args = append(args, entity.Municipality)
		argID++
	}

	if entity.Lat != nil {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", b.Lat, argID))
		args = append(args, *entity.Lat)
		argID++
	}

	if entity.Lng != nil {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", b.Lng, argID))
		args = append(args, *entity.Lng)
		argID++
	}

	if entity.CoverImage != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", b.CoverImage, argID))
		args = append(args, entity.CoverImage)
		argID++
	}

	if entity.Description != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", b.Description, argID))
		args = append(args, entity.Description)
		argID++
	}

	if entity.AccessLabel != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", b.AccessLabel, argID))
		args = append(args, entity.AccessLabel)
		argID++
	}

	if entity.PlaceID != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", b.PlaceID, argID))
		args = append(args, entity.PlaceID)
		argID++
	}

	if entity.GoogleRating != nil {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d, %s = $%d", b.GoogleRating, argID, b.GoogleReviewCount, argID+1))
		args = append(args, *entity.GoogleRating, entity.GoogleReviewCount)
		argID += 2
	}

	if entity.PublishStatus != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", b.PublishStatus, argID))
		args = append(args, entity.PublishStatus)
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" WHERE %s = $%d AND %s IS NULL", b.ID, argID, b.DeletedAt))
	args = append(args, entity.ID)

	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres: update transaction begin failed: %w", err)
	}
	defer transaction.Rollback(context)

	response, err := transaction.Exec(context, queryBuilder.String(), args...)
	if err != nil {
		return fmt.Errorf("postgres: failed to update beach: %w", err)
	}
	if response.RowsAffected() == 0 {
		return apperr.NotFound("beach")
	}

	// Junction synchronization (Tags)
	if entity.TagIDs != nil {
		if err := repository.updateJunction(context, transaction, schema.BeachTag.Table, schema.BeachTag.BeachID, schema.BeachTag.TagID, entity.ID, entity.TagIDs); err != nil {
			return err
		}
	}

	// Junction synchronization (Amenities)
	if entity.AmenityIDs != nil {
		if err := repository.updateJunction(context, transaction, schema.BeachAmenity.Table, schema.BeachAmenity.BeachID, schema.BeachAmenity.AmenityID, entity.ID, entity.AmenityIDs); err != nil {
			return err
		}
	}

	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres: update transaction commit failed: %w", err)
	}

	return nil
}

/*
UpdateConditions replaces the three shoreline readings of a beach.

Description: Conditions change far more often than listing metadata
(lifeguard crews report sargassum daily in season), so they get a dedicated
narrow update instead of riding through the full PATCH path.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - conditions: Conditions (Already validated against the vocab scales)

Returns:
  - error: apperr.NotFound if the beach is missing or soft-deleted
*/
func (repository *postgresRepository) UpdateConditions(context context.Context, id string, conditions Conditions) error {
	b := schema.CoreBeach

	query := fmt.Sprintf(
		"UPDATE %s SET %s = $1, %s = $2, %s = $3, %s = NOW() WHERE %s = $4 AND %s IS NULL",
		b.Table, b.SargassumLevel, b.SurfLevel, b.WindLevel, b.UpdatedAt, b.ID, b.DeletedAt,
	)

	result, err := repository.pool.Exec(context, query, conditions.Sargassum, conditions.Surf, conditions.Wind, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to update beach conditions: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("beach")
	}

	return nil
}

/*
SoftDelete hides a beach without physical row removal.

Description: Stamps the deletedat column with NOW(). Every read path in
this repository and in discovery carries a deletedat IS NULL guard, so the
row drops out of all surfaces at once while remaining available for audit.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - error: apperr.NotFound if missing or already deleted
*/
func (repository *postgresRepository) SoftDelete(context context.Context, id string) error {
	b := schema.CoreBeach

	query := fmt.Sprintf("UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL", b.Table, b.DeletedAt, b.ID, b.DeletedAt)

	result, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete beach: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("beach")
	}

	return nil
}

/*
updateJunction synchronizes a many-to-many association.

Description: Clear-and-insert strategy: flushes all junction rows for the
parent, then queues the new links through a pgx.Batch to bound the network
round-trips. Must run inside the caller's transaction.

Parameters:
  - context: context.Context
  - transaction: pgx.Tx (The active transaction boundary)
  - table: string (Fully-qualified junction table, e.g. "core.beachtag")
  - idCol: string (Parent column, e.g. "beachid")
  - valCol: string (Target column, e.g. "tagid")
  - id: string (Parent UUID)
  - vals: []int (Foreign keys to attach)

Returns:
  - error: Execution failures
*/
func (repository *postgresRepository) updateJunction(context context.Context, transaction pgx.Tx, table, idCol, valCol, id string, vals []int) error {
	delQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table, idCol)
	if _, err := transaction.Exec(context, delQuery, id); err != nil {
		return fmt.Errorf("postgres: failed to clear %s: %w", table, err)
	}

	if len(vals) == 0 {
		return nil
	}

	insQuery := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2)", table, idCol, valCol)
	batch := &pgx.Batch{}
	for _, value := range vals {
		batch.Queue(insQuery, id, value)
	}

	response := transaction.SendBatch(context, batch)
	if err := response.Close(); err != nil {
		return fmt.Errorf("postgres: failed to batch insert into %s: %w", table, err)
	}

	return nil
}
