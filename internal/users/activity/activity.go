// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

/*
Package activity tracks per-account interactions with beach listings.

It covers the two lightweight social features of the directory:

  - Favorites: A flat account-to-beach bookmark set.
  - Check-ins: A timestamped visit log with an optional note.

Both are account-scoped; there is no cross-account feed.
*/
package activity

import "time"

// FavoriteEntry is one bookmarked beach with enough listing context to
// render a favorites list without a second lookup.
type FavoriteEntry struct {
	BeachID      string    `json:"beach_id"`
	Slug         string    `json:"slug"`
	Name         string    `json:"name"`
	Municipality string    `json:"municipality"`
	CoverImage   string    `json:"cover_image,omitempty"`
	SavedAt      time.Time `json:"saved_at"`
}

// Checkin is one logged visit to a beach.
type Checkin struct {
	ID        string    `json:"id"`
	BeachID   string    `json:"beach_id"`
	UserID    string    `json:"-"`
	BeachName string    `json:"beach_name,omitempty"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
