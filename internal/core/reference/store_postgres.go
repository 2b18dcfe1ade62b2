// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package reference

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marvega/litoral/internal/platform/apperr"
	"github.com/marvega/litoral/internal/platform/database/schema"
	"github.com/marvega/litoral/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed master data store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Tag Queries

func (repository *PostgresRepository) ListTags(context context.Context) ([]*TagCategory, error) {
	t := schema.RefTag

	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s ORDER BY %s ASC, %s ASC`,
		t.ID, t.Slug, t.Name, t.Category, t.Table, t.Category, t.Name)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	defer rows.Close()

	// Rows arrive category-ordered, so grouping is a single linear pass.
	categories := make([]*TagCategory, 0)
	var current *TagCategory

	for rows.Next() {
		tag := Tag{}
		if err := rows.Scan(&tag.ID, &tag.Slug, &tag.Name, &tag.Category); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}

		if current == nil || current.Category != tag.Category {
			current = &TagCategory{Category: tag.Category, Tags: make([]Tag, 0)}
			categories = append(categories, current)
		}
		current.Tags = append(current.Tags, tag)
	}

	return categories, nil
}

func (repository *PostgresRepository) GetTagBySlug(context context.Context, slug string) (*Tag, error) {
	t := schema.RefTag

	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		t.ID, t.Slug, t.Name, t.Category, t.Table, t.Slug)

	tag := &Tag{}
	err := repository.db.QueryRow(context, query, slug).Scan(&tag.ID, &tag.Slug, &tag.Name, &tag.Category)
	if err != nil {
		return nil, dberr.Wrap(err, "get_tag_by_slug")
	}

	return tag, nil
}

func (repository *PostgresRepository) CreateTag(context context.Context, tag *Tag) error {
	t := schema.RefTag

	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) RETURNING %s`,
		t.Table, t.Slug, t.Name, t.Category, t.ID)

	if err := repository.db.QueryRow(context, query, tag.Slug, tag.Name, tag.Category).Scan(&tag.ID); err != nil {
		return dberr.Wrap(err, "create_tag")
	}

	return nil
}

func (repository *PostgresRepository) DeleteTag(context context.Context, id int) error {
	t := schema.RefTag

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	result, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_tag")
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("tag")
	}

	return nil
}

// # Amenity Queries

func (repository *PostgresRepository) ListAmenities(context context.Context) ([]*Amenity, error) {
	a := schema.RefAmenity

	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		a.ID, a.Slug, a.Name, a.Icon, a.Table, a.Name)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_amenities")
	}
	defer rows.Close()

	amenities := make([]*Amenity, 0)
	for rows.Next() {
		amenity := &Amenity{}
		if err := rows.Scan(&amenity.ID, &amenity.Slug, &amenity.Name, &amenity.Icon); err != nil {
			return nil, dberr.Wrap(err, "scan_amenity")
		}
		amenities = append(amenities, amenity)
	}

	return amenities, nil
}

func (repository *PostgresRepository) CreateAmenity(context context.Context, amenity *Amenity) error {
	a := schema.RefAmenity

	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) RETURNING %s`,
		a.Table, a.Slug, a.Name, a.Icon, a.ID)

	if err := repository.db.QueryRow(context, query, amenity.Slug, amenity.Name, amenity.Icon).Scan(&amenity.ID); err != nil {
		return dberr.Wrap(err, "create_amenity")
	}

	return nil
}

func (repository *PostgresRepository) DeleteAmenity(context context.Context, id int) error {
	a := schema.RefAmenity

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, a.Table, a.ID)

	result, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_amenity")
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("amenity")
	}

	return nil
}
