// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

/*
Package beach defines the core domain entities for the Litoral directory.

It manages the lifecycle of beach listings along the Puerto Rico coastline,
including geographic placement, shoreline conditions, and third-party rating
metrics.

Core Responsibility:

  - Catalogue: Defines publish states (Draft, Published, Archived) and access labels.
  - Discovery: Manages tags (activities/character) and amenity associations.
  - Conditions: Tracks sargassum, surf, and wind readings per beach.

This package acts as the source of truth for all listing-related data models.
*/
package beach

import "time"

// # Domain Enums

// PublishStatus represents the editorial visibility of a beach listing.
type PublishStatus string

const (
	// StatusDraft indicates the listing is still being curated and is invisible to visitors.
	StatusDraft PublishStatus = "draft"

	// StatusPublished indicates the listing is live in every discovery surface.
	StatusPublished PublishStatus = "published"

	// StatusArchived indicates the listing was withdrawn (e.g. beach closed by authorities).
	StatusArchived PublishStatus = "archived"
)

// IsValid reports whether s is a recognised [PublishStatus] value.
func (s PublishStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// # Core Entities

// Beach is the central aggregate of the Litoral domain.
// It represents a single stretch of shoreline in the directory.
type Beach struct {
	ID           string `json:"id"`
	Slug         string `json:"slug"` // URL-safe identifier
	Name         string `json:"name"`
	Municipality string `json:"municipality"`

	// Coordinates are nullable: imported listings occasionally arrive without
	// a verified position and must be excluded from radius queries until fixed.
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`

	CoverImage  string `json:"cover_image,omitempty"`
	Description string `json:"description,omitempty"`
	AccessLabel string `json:"access_label,omitempty"` // e.g. "public", "walk-in", "boat-only"
	PlaceID     string `json:"place_id,omitempty"`     // Google Places identifier

	// # External Rating Metrics
	// Synced periodically from the Places API; nil rating means never rated.
	GoogleRating      *float64 `json:"google_rating"`
	GoogleReviewCount int      `json:"google_review_count"`

	// # Shoreline Conditions
	// Values validated against the vocab condition scales.
	Sargassum string `json:"sargassum,omitempty"`
	Surf      string `json:"surf,omitempty"`
	Wind      string `json:"wind,omitempty"`

	HasLifeguard    bool `json:"has_lifeguard"`
	SafeForChildren bool `json:"safe_for_children"`

	// DistanceKm is populated only by radius-mode discovery queries.
	DistanceKm *float64 `json:"distance_km,omitempty"`

	Tags      []Tag     `json:"tags,omitempty"`
	Amenities []Amenity `json:"amenities,omitempty"`

	// # Junction IDs (Input only)
	TagIDs     []int `json:"tag_ids,omitempty"`
	AmenityIDs []int `json:"amenity_ids,omitempty"`

	PublishStatus PublishStatus `json:"publish_status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	DeletedAt     *time.Time    `json:"-"` // nil = active; non-nil = soft-deleted
}

// Tag represents an activity or character classifier attached to a [Beach].
type Tag struct {
	ID       int    `json:"id"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"` // activities, character, setting
}

// Amenity represents an on-site facility attached to a [Beach].
type Amenity struct {
	ID   int    `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// Conditions groups the three shoreline readings for a condition update.
type Conditions struct {
	Sargassum string `json:"sargassum"`
	Surf      string `json:"surf"`
	Wind      string `json:"wind"`
}

// # Admin Filtering

// Filter holds the parameters for an administrative beach list query.
// Visitor-facing discovery has its own, richer filter model in the
// discovery package; this one only serves the management endpoints.
type Filter struct {
	Query         string        `json:"q,omitempty"`
	Municipality  string        `json:"municipality,omitempty"`
	PublishStatus PublishStatus `json:"publish_status,omitempty"`
}

// # Field Identifiers

// Global field names for validation and dynamic query mapping.
const (
	FieldID           = "id"
	FieldSlug         = "slug"
	FieldName         = "name"
	FieldMunicipality = "municipality"
	FieldLat          = "lat"
	FieldLng          = "lng"
	FieldCoverImage   = "cover_image"
	FieldDescription  = "description"
	FieldAccessLabel  = "access_label"
	FieldPlaceID      = "place_id"
	FieldSargassum    = "sargassum"
	FieldSurf         = "surf"
	FieldWind         = "wind"
	FieldStatus       = "publish_status"
	FieldTagIDs       = "tag_ids"
	FieldAmenityIDs   = "amenity_ids"
)
