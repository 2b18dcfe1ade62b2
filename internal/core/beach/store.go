// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package beach

import "context"

// # Beach Data Access

// Repository defines the data access contract for the beach domain.
type Repository interface {
	/*
		List returns a filtered, paginated slice of beaches and the total count.

		Parameters:
		  - context: context.Context
		  - filter: Filter (Criteria for status, municipality, search)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Beach: Slice of matching listing records
		  - int: Total count of records matching the filter
		  - error: Database retrieval failures
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Beach, int, error)

	/*
		FindByID returns the beach with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *Beach: The hydrated domain entity
		  - error: apperr.NotFound if missing or soft-deleted
	*/
	FindByID(context context.Context, id string) (*Beach, error)

	/*
		FindBySlug returns the beach matching the unique SEO identifier.

		Parameters:
		  - context: context.Context
		  - slug: string

		Returns:
		  - *Beach: The hydrated domain entity
		  - error: apperr.NotFound if missing
	*/
	FindBySlug(context context.Context, slug string) (*Beach, error)

	/*
		Create persists a new beach listing to the store.

		Parameters:
		  - context: context.Context
		  - beach: *Beach (Metadata and initial state)

		Returns:
		  - error: Storage or constraint failures
	*/
	Create(context context.Context, beach *Beach) error

	/*
		Update persists changes to an existing beach's mutable fields.

		Parameters:
		  - context: context.Context
		  - beach: *Beach (Target ID and modified attributes)

		Returns:
		  - error: Storage or validation failures
	*/
	Update(context context.Context, beach *Beach) error

	/*
		UpdateConditions replaces the shoreline condition readings of a beach.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)
		  - conditions: Conditions (Validated scale values)

		Returns:
		  - error: apperr.NotFound if missing, otherwise storage failures
	*/
	UpdateConditions(context context.Context, id string, conditions Conditions) error

	/*
		SoftDelete marks a beach as deleted without physical row removal.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - error: State update failures
	*/
	SoftDelete(context context.Context, id string) error
}
