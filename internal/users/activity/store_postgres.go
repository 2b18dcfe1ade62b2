// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package activity

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marvega/litoral/internal/platform/apperr"
	"github.com/marvega/litoral/internal/platform/database/schema"
	"github.com/marvega/litoral/internal/platform/dberr"
)

// # PostgreSQL Repository

// postgresRepository implements the [Repository] interface using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed activity store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// # Favorites

func (repository *postgresRepository) AddFavorite(context context.Context, userID, beachID string) error {
	f := schema.UserFavorite

	// ON CONFLICT keeps the toggle idempotent from the client's view.
	query := fmt.Sprintf(
		"INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT (%s, %s) DO NOTHING",
		f.Table, f.UserID, f.BeachID, f.UserID, f.BeachID,
	)

	if _, err := repository.pool.Exec(context, query, userID, beachID); err != nil {
		return dberr.Wrap(err, "add_favorite")
	}

	return nil
}

func (repository *postgresRepository) RemoveFavorite(context context.Context, userID, beachID string) error {
	f := schema.UserFavorite

	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1 AND %s = $2", f.Table, f.UserID, f.BeachID)

	result, err := repository.pool.Exec(context, query, userID, beachID)
	if err != nil {
		return dberr.Wrap(err, "remove_favorite")
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("favorite")
	}

	return nil
}

/*
ListFavorites returns an account's bookmarks with listing context.

Description: Joins the beach row for display fields and hides bookmarks
whose listing has been soft-deleted or unpublished in the meantime.

Parameters:
  - context: context.Context
  - userID: string (UUID)
  - limit: int
  - offset: int

Returns:
  - []*FavoriteEntry: Bookmarks, most recent first
  - int: Total bookmark count
  - error: Database execution errors
*/
func (repository *postgresRepository) ListFavorites(context context.Context, userID string, limit, offset int) ([]*FavoriteEntry, int, error) {
	f := schema.UserFavorite
	b := schema.CoreBeach

	query := fmt.Sprintf(`
		SELECT f.%s, b.%s, b.%s, b.%s, b.%s, f.%s,
			COUNT(*) OVER() AS total_count
		FROM %s f
		JOIN %s b ON b.%s = f.%s
		WHERE f.%s = $1 AND b.%s IS NULL AND b.%s = 'published'
		ORDER BY f.%s DESC
		LIMIT $2 OFFSET $3
	`,
		f.BeachID, b.Slug, b.Name, b.Municipality, b.CoverImage, f.CreatedAt,
		f.Table,
		b.Table, b.ID, f.BeachID,
		f.UserID, b.DeletedAt, b.PublishStatus,
		f.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list favorites: %w", err)
	}
	defer rows.Close()

	var entries []*FavoriteEntry
	var totalCount int

	for rows.Next() {
		entry := &FavoriteEntry{}
		err := rows.Scan(
			&entry.BeachID,
			&entry.Slug,
			&entry.Name,
			&entry.Municipality,
			&entry.CoverImage,
			&entry.SavedAt,
			&totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan favorite: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, totalCount, nil
}

func (repository *postgresRepository) IsFavorite(context context.Context, userID, beachID string) (bool, error) {
	f := schema.UserFavorite

	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = $2)", f.Table, f.UserID, f.BeachID)

	var exists bool
	if err := repository.pool.QueryRow(context, query, userID, beachID).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres: failed to check favorite: %w", err)
	}

	return exists, nil
}

// # Check-ins

func (repository *postgresRepository) CreateCheckin(context context.Context, checkin *Checkin) error {
	c := schema.SocialCheckin

	query := fmt.Sprintf(
		"INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4)",
		c.Table, c.ID, c.BeachID, c.UserID, c.Note,
	)

	if _, err := repository.pool.Exec(context, query, checkin.ID, checkin.BeachID, checkin.UserID, checkin.Note); err != nil {
		return dberr.Wrap(err, "create_checkin")
	}

	return nil
}

/*
ListCheckins returns an account's visit log with beach names.

Parameters:
  - context: context.Context
  - userID: string (UUID)
  - limit: int
  - offset: int

Returns:
  - []*Checkin: Visits, most recent first
  - int: Total visit count
  - error: Database execution errors
*/
func (repository *postgresRepository) ListCheckins(context context.Context, userID string, limit, offset int) ([]*Checkin, int, error) {
	c := schema.SocialCheckin
	b := schema.CoreBeach

	query := fmt.Sprintf(`
		SELECT c.%s, c.%s, b.%s, c.%s, c.%s,
			COUNT(*) OVER() AS total_count
		FROM %s c
		JOIN %s b ON b.%s = c.%s
		WHERE c.%s = $1
		ORDER BY c.%s DESC
		LIMIT $2 OFFSET $3
	`,
		c.ID, c.BeachID, b.Name, c.Note, c.CreatedAt,
		c.Table,
		b.Table, b.ID, c.BeachID,
		c.UserID,
		c.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list checkins: %w", err)
	}
	defer rows.Close()

	var checkins []*Checkin
	var totalCount int

	for rows.Next() {
		checkin := &Checkin{}
		err := rows.Scan(
			&checkin.ID,
			&checkin.BeachID,
			&checkin.BeachName,
			&checkin.Note,
			&checkin.CreatedAt,
			&totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan checkin: %w", err)
		}
		checkins = append(checkins, checkin)
	}

	return checkins, totalCount, nil
}
