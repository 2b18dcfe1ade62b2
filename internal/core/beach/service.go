// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package beach

import (
	"context"
	"log/slog"

	"github.com/marvega/litoral/internal/core/vocab"
	"github.com/marvega/litoral/internal/platform/validate"
	"github.com/marvega/litoral/pkg/slug"
	"github.com/marvega/litoral/pkg/uuidv7"
)

// # Service Layer

// Service orchestrates the business logic for beach listing management.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] with its required repository.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Beach Lookups

/*
ListBeaches retrieves a paginated and filtered collection of beaches.

Description: Serves the administrative catalogue table. Visitor-facing
browsing goes through the discovery engine instead; this listing applies no
publish-status default, so editors see drafts and archived listings too.

Parameters:
  - context: context.Context
  - filter: Filter (Criteria for status, municipality, search)
  - limit: int (Max records to return)
  - offset: int (Pagination cursor)

Returns:
  - []*Beach: Slice of matching listing records
  - int: Total count matching the filter (for pagination metadata)
  - error: System or repository level errors
*/
func (service *Service) ListBeaches(context context.Context, filter Filter, limit, offset int) ([]*Beach, int, error) {
	return service.repo.List(context, filter, limit, offset)
}

/*
GetBeach fetches a single listing by UUID or SEO slug.

Description: The lookup strategy is inferred from the identifier shape. A
36-character identifier is treated as a UUID primary key; anything else
resolves through the unique URL slug.

Parameters:
  - context: context.Context
  - identifier: string (UUID or slug)

Returns:
  - *Beach: The hydrated domain entity
  - error: apperr.NotFound if no match is found
*/
func (service *Service) GetBeach(context context.Context, identifier string) (*Beach, error) {
	if isUUID(identifier) {
		return service.repo.FindByID(context, identifier)
	}

	return service.repo.FindBySlug(context, identifier)
}

// # Beach Management

/*
CreateBeach initialises a new listing record in the directory.

Description: Validates the metadata against the controlled vocabularies,
generates a stable UUIDv7 identity and an SEO slug from the name, then
persists the entity with its tag and amenity associations.

Parameters:
  - context: context.Context
  - entity: *Beach (The listing to be persisted)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) CreateBeach(context context.Context, entity *Beach) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, entity.Name).MaxLen(FieldName, entity.Name, 200)

	// The municipality must come from the coastal vocabulary; there is no
	// free-text geography in the directory.
	validator.Required(FieldMunicipality, entity.Municipality).
		Custom(FieldMunicipality, entity.Municipality != "" && !vocab.IsMunicipality(entity.Municipality), "must be a coastal municipality of Puerto Rico")

	if entity.PublishStatus == "" {
		entity.PublishStatus = StatusDraft
	}
	validator.Custom(FieldStatus, !entity.PublishStatus.IsValid(), "must be one of: draft, published, archived")

	validateCoordinates(validator, entity)
	validateConditions(validator, entity.Sargassum, entity.Surf, entity.Wind)

	if err := validator.Err(); err != nil {
		return err
	}

	if entity.ID == "" {
		entity.ID = uuidv7.New()
	}
	if entity.Slug == "" {
		entity.Slug = slug.From(entity.Name)
	}

	if err := service.repo.Create(context, entity); err != nil {
		return err
	}

	service.logger.Info("beach_created",
		slog.String("beach_id", entity.ID),
		slog.String("name", entity.Name),
		slog.String("municipality", entity.Municipality),
	)

	return nil
}

/*
UpdateBeach applies modifications to an existing listing.

Description: Supports partial updates; non-empty fields overwrite existing
values. The same vocabulary constraints apply to whichever fields are
present in the payload.

Parameters:
  - context: context.Context
  - entity: *Beach (Target ID plus updated attributes)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) UpdateBeach(context context.Context, entity *Beach) error {
	validator := &validate.Validator{}

	if entity.Name != "" {
		validator.MaxLen(FieldName, entity.Name, 200)
	}
	if entity.Slug != "" {
		validator.Slug(FieldSlug, entity.Slug)
	}
	if entity.Municipality != "" {
		validator.Custom(FieldMunicipality, !vocab.IsMunicipality(entity.Municipality), "must be a coastal municipality of Puerto Rico")
	}
	if entity.PublishStatus != "" {
		validator.Custom(FieldStatus, !entity.PublishStatus.IsValid(), "must be one of: draft, published, archived")
	}

	validateCoordinates(validator, entity)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Update(context, entity); err != nil {
		return err
	}

	service.logger.Info("beach_updated", slog.String("beach_id", entity.ID))

	return nil
}

/*
UpdateConditions replaces the shoreline readings of a listing.

Description: Each of the three scales is validated against its vocabulary.
All three values must be supplied; a conditions report is a complete
observation, not a patch.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - conditions: Conditions (sargassum, surf, wind)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) UpdateConditions(context context.Context, id string, conditions Conditions) error {
	validator := &validate.Validator{}
	validator.Required(FieldSargassum, conditions.Sargassum).
		Required(FieldSurf, conditions.Surf).
		Required(FieldWind, conditions.Wind)
	validateConditions(validator, conditions.Sargassum, conditions.Surf, conditions.Wind)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpdateConditions(context, id, conditions); err != nil {
		return err
	}

	service.logger.Info("beach_conditions_updated",
		slog.String("beach_id", id),
		slog.String("sargassum", conditions.Sargassum),
		slog.String("surf", conditions.Surf),
		slog.String("wind", conditions.Wind),
	)

	return nil
}

/*
DeleteBeach removes a listing from every public surface.

Description: Implements soft-delete logic. The record remains in the
database for audit but disappears from discovery and lookups.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - error: Persistence error if removal fails
*/
func (service *Service) DeleteBeach(context context.Context, id string) error {
	if err := service.repo.SoftDelete(context, id); err != nil {
		return err
	}

	service.logger.Warn("beach_deleted", slog.String("beach_id", id))

	return nil
}

// # Internal Helpers

// validateCoordinates checks that the coordinate pair, when present, is
// complete and inside valid WGS84 bounds.
func validateCoordinates(validator *validate.Validator, entity *Beach) {
	if entity.Lat == nil && entity.Lng == nil {
		return
	}

	validator.Custom(FieldLat, entity.Lat == nil || entity.Lng == nil, "lat and lng must be provided together")

	if entity.Lat != nil {
		validator.Custom(FieldLat, *entity.Lat < -90 || *entity.Lat > 90, "must be between -90 and 90")
	}
	if entity.Lng != nil {
		validator.Custom(FieldLng, *entity.Lng < -180 || *entity.Lng > 180, "must be between -180 and 180")
	}
}

// validateConditions checks the non-empty readings against the vocab scales.
func validateConditions(validator *validate.Validator, sargassum, surf, wind string) {
	if sargassum != "" {
		validator.Custom(FieldSargassum, !vocab.IsSargassumLevel(sargassum), "must be one of: none, light, moderate, heavy")
	}
	if surf != "" {
		validator.Custom(FieldSurf, !vocab.IsSurfLevel(surf), "must be one of: calm, moderate, strong, dangerous")
	}
	if wind != "" {
		validator.Custom(FieldWind, !vocab.IsWindLevel(wind), "must be one of: light, breezy, windy, strong")
	}
}

// isUUID returns true if the string matches the standard UUID length.
func isUUID(s string) bool {
	return len(s) == 36
}
