// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package reference

import (
	"context"
	"log/slog"

	"github.com/marvega/litoral/internal/core/vocab"
	"github.com/marvega/litoral/internal/platform/validate"
	"github.com/marvega/litoral/pkg/slug"
)

// tagCategories lists the valid values of the tag category column.
var tagCategories = []string{"activities", "character", "setting"}

// Service orchestrates access to the directory's master data.
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

// # Read Side

func (service *Service) ListTags(context context.Context) ([]*TagCategory, error) {
	return service.repo.ListTags(context)
}

func (service *Service) GetTagBySlug(context context.Context, slug string) (*Tag, error) {
	return service.repo.GetTagBySlug(context, slug)
}

func (service *Service) ListAmenities(context context.Context) ([]*Amenity, error) {
	return service.repo.ListAmenities(context)
}

// Municipalities returns the compiled-in coastal municipality vocabulary.
func (service *Service) Municipalities() []string {
	return vocab.Municipalities
}

// ConditionScales returns the compiled-in shoreline condition vocabularies.
func (service *Service) ConditionScales() Scales {
	return Scales{
		Sargassum: vocab.SargassumLevels,
		Surf:      vocab.SurfLevels,
		Wind:      vocab.WindLevels,
	}
}

// # Write Side

/*
CreateTag adds a new classifier to the taxonomy.

Description: Validates the name and category, derives the slug from the
name when absent, and persists the tag. The generated ID is written back
into the entity.

Parameters:
  - context: context.Context
  - tag: *Tag (Name and category; slug optional)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) CreateTag(context context.Context, tag *Tag) error {
	validator := &validate.Validator{}
	validator.Required("name", tag.Name).MaxLen("name", tag.Name, 100)
	validator.Required("category", tag.Category).OneOf("category", tag.Category, tagCategories...)

	if tag.Slug == "" {
		tag.Slug = slug.From(tag.Name)
	}
	validator.Slug("slug", tag.Slug)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateTag(context, tag); err != nil {
		return err
	}

	service.logger.Info("tag_created", slog.String("slug", tag.Slug), slog.String("category", tag.Category))

	return nil
}

// DeleteTag removes a classifier from the taxonomy.
func (service *Service) DeleteTag(context context.Context, id int) error {
	if err := service.repo.DeleteTag(context, id); err != nil {
		return err
	}

	service.logger.Warn("tag_deleted", slog.Int("tag_id", id))

	return nil
}

/*
CreateAmenity adds a new facility to the catalogue.

Parameters:
  - context: context.Context
  - amenity: *Amenity (Name; slug and icon optional)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) CreateAmenity(context context.Context, amenity *Amenity) error {
	validator := &validate.Validator{}
	validator.Required("name", amenity.Name).MaxLen("name", amenity.Name, 100)

	if amenity.Slug == "" {
		amenity.Slug = slug.From(amenity.Name)
	}
	validator.Slug("slug", amenity.Slug)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateAmenity(context, amenity); err != nil {
		return err
	}

	service.logger.Info("amenity_created", slog.String("slug", amenity.Slug))

	return nil
}

// DeleteAmenity removes a facility from the catalogue.
func (service *Service) DeleteAmenity(context context.Context, id int) error {
	if err := service.repo.DeleteAmenity(context, id); err != nil {
		return err
	}

	service.logger.Warn("amenity_deleted", slog.Int("amenity_id", id))

	return nil
}
