// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package review

import "context"

// # Review Data Access

// Repository defines the data access contract for the review domain.
type Repository interface {
	/*
		ListByBeach returns the reviews of one beach, newest first, with the
		total count.

		Parameters:
		  - context: context.Context
		  - beachID: string (UUID)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Review: Slice of reviews with author fields hydrated
		  - int: Total review count for the beach
		  - error: Database retrieval failures
	*/
	ListByBeach(context context.Context, beachID string, limit, offset int) ([]*Review, int, error)

	// FindByID returns a single review, soft-deleted rows excluded.
	FindByID(context context.Context, id string) (*Review, error)

	// Create persists a new review. Violating the one-review-per-account
	// constraint surfaces as a conflict error.
	Create(context context.Context, review *Review) error

	// Update persists the mutable fields (rating, title, body) of a review.
	Update(context context.Context, review *Review) error

	// SoftDelete hides a review without physical row removal.
	SoftDelete(context context.Context, id string) error

	// Summarize computes the current rating average and count of a beach.
	Summarize(context context.Context, beachID string) (*Summary, error)
}
