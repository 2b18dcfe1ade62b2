// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

/*
Package review manages visitor reviews of beach listings.

Reviews are first-party content, distinct from the Google rating metrics
synced onto the listing itself. Each account may review a beach once; the
pair (beach, user) is unique at the database level.

Core Responsibility:

  - Lifecycle: Create, edit, and soft-delete reviews with ownership checks.
  - Aggregation: Per-beach rating summary (average and count).
*/
package review

import "time"

// Review represents one visitor's written assessment of a beach.
type Review struct {
	ID      string `json:"id"`
	BeachID string `json:"beach_id"`
	UserID  string `json:"user_id"`

	// Author fields are joined from the account at read time.
	AuthorName   string `json:"author_name,omitempty"`
	AuthorAvatar string `json:"author_avatar,omitempty"`

	Rating int    `json:"rating"` // 1..5
	Title  string `json:"title,omitempty"`
	Body   string `json:"body"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}

// Summary aggregates the first-party ratings of one beach.
type Summary struct {
	BeachID string  `json:"beach_id"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// # Field Identifiers

const (
	FieldRating = "rating"
	FieldTitle  = "title"
	FieldBody   = "body"
)
