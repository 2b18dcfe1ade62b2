// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
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

// NewPostgresRepository constructs a PostgreSQL backed review store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

/*
ListByBeach returns the reviews of one beach, newest first.

Description: Joins the author's public profile fields and carries the total
through a COUNT(*) OVER() window so pagination costs one round-trip.

Parameters:
  - context: context.Context
  - beachID: string (UUID)
  - limit: int
  - offset: int

Returns:
  - []*Review: Hydrated reviews
  - int: Total matching count
  - error: Database execution errors
*/
func (repository *postgresRepository) ListByBeach(context context.Context, beachID string, limit, offset int) ([]*Review, int, error) {
	r := schema.SocialReview
	u := schema.UserAccount

	query := fmt.Sprintf(`
		SELECT r.%s, r.%s, r.%s, r.%s, r.%s, r.%s, r.%s, r.%s,
			u.%s, u.%s,
			COUNT(*) OVER() AS total_count
		FROM %s r
		JOIN %s u ON u.%s = r.%s
		WHERE r.%s = $1 AND r.%s IS NULL
		ORDER BY r.%s DESC
		LIMIT $2 OFFSET $3
	`,
		r.ID, r.BeachID, r.UserID, r.Rating, r.Title, r.Body, r.CreatedAt, r.UpdatedAt,
		u.DisplayName, u.AvatarURL,
		r.Table,
		u.Table, u.ID, r.UserID,
		r.BeachID, r.DeletedAt,
		r.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, beachID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*Review
	var totalCount int

	for rows.Next() {
		entity := &Review{}
		err := rows.Scan(
			&entity.ID,
			&entity.BeachID,
			&entity.UserID,
			&entity.Rating,
			&entity.Title,
			&entity.Body,
			&entity.CreatedAt,
			&entity.UpdatedAt,
			&entity.AuthorName,
			&entity.AuthorAvatar,
			&totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan review: %w", err)
		}
		reviews = append(reviews, entity)
	}

	return reviews, totalCount, nil
}

/*
FindByID retrieves a review by its primary key, excluding soft-deleted rows.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *Review: The hydrated entity
  - error: apperr.NotFound if missing
*/
func (repository *postgresRepository) FindByID(context context.Context, id string) (*Review, error) {
	r := schema.SocialReview

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		r.ID, r.BeachID, r.UserID, r.Rating, r.Title, r.Body, r.CreatedAt, r.UpdatedAt,
		r.Table, r.ID, r.DeletedAt,
	)

	entity := &Review{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&entity.ID,
		&entity.BeachID,
		&entity.UserID,
		&entity.Rating,
		&entity.Title,
		&entity.Body,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("review")
		}
		return nil, fmt.Errorf("postgres: failed to find review: %w", err)
	}

	return entity, nil
}

/*
Create persists a new review row.

Description: The (beachid, userid) pair is unique among live rows; a second
review from the same account maps to a 409 through the dberr classifier.

Parameters:
  - context: context.Context
  - entity: *Review

Returns:
  - error: Conflict on a duplicate, otherwise storage failures
*/
func (repository *postgresRepository) Create(context context.Context, entity *Review) error {
	r := schema.SocialReview

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, r.Table, r.ID, r.BeachID, r.UserID, r.Rating, r.Title, r.Body)

	_, err := repository.pool.Exec(context, query,
		entity.ID,
		entity.BeachID,
		entity.UserID,
		entity.Rating,
		entity.Title,
		entity.Body,
	)
	if err != nil {
		return dberr.Wrap(err, "create_review")
	}

	return nil
}

/*
Update persists the mutable fields of a review.

Parameters:
  - context: context.Context
  - entity: *Review (Target ID plus rating, title, body)

Returns:
  - error: apperr.NotFound if missing or soft-deleted
*/
func (repository *postgresRepository) Update(context context.Context, entity *Review) error {
	r := schema.SocialReview

	query := fmt.Sprintf(
		"UPDATE %s SET %s = $1, %s = $2, %s = $3, %s = NOW() WHERE %s = $4 AND %s IS NULL",
		r.Table, r.Rating, r.Title, r.Body, r.UpdatedAt, r.ID, r.DeletedAt,
	)

	result, err := repository.pool.Exec(context, query, entity.Rating, entity.Title, entity.Body, entity.ID)
	if err != nil {
		return fmt.Errorf("postgres: failed to update review: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("review")
	}

	return nil
}

/*
SoftDelete hides a review without physical row removal.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - error: apperr.NotFound if missing or already deleted
*/
func (repository *postgresRepository) SoftDelete(context context.Context, id string) error {
	r := schema.SocialReview

	query := fmt.Sprintf("UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL", r.Table, r.DeletedAt, r.ID, r.DeletedAt)

	result, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete review: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("review")
	}

	return nil
}

/*
Summarize computes the live rating aggregate of one beach.

Description: COALESCE keeps the average at 0 for beaches with no reviews
instead of returning NULL.

Parameters:
  - context: context.Context
  - beachID: string (UUID)

Returns:
  - *Summary: Average (rounded to two decimals) and count
  - error: Database execution errors
*/
func (repository *postgresRepository) Summarize(context context.Context, beachID string) (*Summary, error) {
	r := schema.SocialReview

	query := fmt.Sprintf(
		"SELECT COALESCE(ROUND(AVG(%s)::numeric, 2), 0), COUNT(*) FROM %s WHERE %s = $1 AND %s IS NULL",
		r.Rating, r.Table, r.BeachID, r.DeletedAt,
	)

	summary := &Summary{BeachID: beachID}
	if err := repository.pool.QueryRow(context, query, beachID).Scan(&summary.Average, &summary.Count); err != nil {
		return nil, fmt.Errorf("postgres: failed to summarize reviews: %w", err)
	}

	return summary, nil
}
