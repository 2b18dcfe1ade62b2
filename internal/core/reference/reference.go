// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

/*
Package reference manages the "Master Data" or taxonomic foundations of Litoral.

It handles the retrieval and administration of reference entities shared by
every beach listing, ensuring data consistency and enabling rich discovery
features.

# Core Responsibility

  - Taxonomy: Manages [Tag] records grouped by category (activities, character, setting).
  - Facilities: Maintains the [Amenity] catalogue.
  - Geography & Scales: Exposes the compiled-in vocabularies (coastal
    municipalities, condition scales) alongside the database-backed sets.

This package provides the "Common Language" used by the directory to
categorize shoreline content.
*/
package reference

import "time"

// # Tag Domain

// TagCategory groups tags of one theme for navigation menus.
type TagCategory struct {
	Category string `json:"category"`
	Tags     []Tag  `json:"tags"`
}

// Tag represents a specific classifier applied to a beach.
type Tag struct {
	ID        int       `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"-"`
}

// # Amenity Domain

// Amenity represents an on-site facility available at a beach.
type Amenity struct {
	ID        int       `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon,omitempty"`
	CreatedAt time.Time `json:"-"`
}

// # Vocabulary Listings

// Scales bundles the three shoreline condition vocabularies for clients
// that render condition pickers.
type Scales struct {
	Sargassum []string `json:"sargassum"`
	Surf      []string `json:"surf"`
	Wind      []string `json:"wind"`
}
