// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package activity

import "context"

// Repository defines the data access contract for account activity.
type Repository interface {
	// AddFavorite bookmarks a beach for an account. Adding an existing
	// favorite is a no-op, not an error.
	AddFavorite(context context.Context, userID, beachID string) error

	// RemoveFavorite drops a bookmark. Removing a non-existent favorite
	// returns apperr.NotFound.
	RemoveFavorite(context context.Context, userID, beachID string) error

	// ListFavorites returns an account's bookmarks, most recent first.
	ListFavorites(context context.Context, userID string, limit, offset int) ([]*FavoriteEntry, int, error)

	// IsFavorite reports whether the account has bookmarked the beach.
	IsFavorite(context context.Context, userID, beachID string) (bool, error)

	// CreateCheckin logs a visit.
	CreateCheckin(context context.Context, checkin *Checkin) error

	// ListCheckins returns an account's visit log, most recent first.
	ListCheckins(context context.Context, userID string, limit, offset int) ([]*Checkin, int, error)
}
