// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package discovery

import (
	"context"

	"github.com/marvega/litoral/internal/core/beach"
)

// # Discovery Data Access

// Repository defines the datastore contract for the discovery engine.
//
// Both methods must be driven by the same [PredicateSet] within one request
// so the reported total and the returned page never drift apart.
type Repository interface {

	/*
		Count returns the number of beaches matching the predicate set.

		Parameters:
		  - context: context.Context
		  - predicates: PredicateSet

		Returns:
		  - int: Matching row count
		  - error: Database execution errors
	*/
	Count(context context.Context, predicates PredicateSet) (int, error)

	/*
		Page returns one page of beaches matching the predicate set, with
		tags and amenities attached and distance_km populated when the
		predicate set carries a distance expression.

		Parameters:
		  - context: context.Context
		  - predicates: PredicateSet
		  - orderBy: string (ORDER BY body from ResolveOrder)
		  - limit, offset: int

		Returns:
		  - []*beach.Beach: Hydrated page rows in order
		  - error: Database execution errors
	*/
	Page(context context.Context, predicates PredicateSet, orderBy string, limit, offset int) ([]*beach.Beach, error)
}
