// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package reference

import "context"

// Repository defines the data access contract for the master data domain.
type Repository interface {
	// ListTags returns every tag grouped by category, categories and tags
	// both alphabetically ordered.
	ListTags(context context.Context) ([]*TagCategory, error)

	// GetTagBySlug returns a single tag by its unique slug.
	GetTagBySlug(context context.Context, slug string) (*Tag, error)

	// CreateTag persists a new tag and assigns its generated ID.
	CreateTag(context context.Context, tag *Tag) error

	// DeleteTag removes a tag and, via cascade, its beach associations.
	DeleteTag(context context.Context, id int) error

	// ListAmenities returns the full amenity catalogue ordered by name.
	ListAmenities(context context.Context) ([]*Amenity, error)

	// CreateAmenity persists a new amenity and assigns its generated ID.
	CreateAmenity(context context.Context, amenity *Amenity) error

	// DeleteAmenity removes an amenity and its beach associations.
	DeleteAmenity(context context.Context, id int) error
}
