// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package review

import (
	"context"
	"log/slog"

	"github.com/marvega/litoral/internal/platform/apperr"
	"github.com/marvega/litoral/internal/platform/sec"
	"github.com/marvega/litoral/internal/platform/validate"
	"github.com/marvega/litoral/pkg/uuidv7"
)

// # Service Layer

// Service orchestrates the business logic for beach reviews.
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

// # Review Lookups

// ListByBeach retrieves one beach's reviews, newest first.
func (service *Service) ListByBeach(context context.Context, beachID string, limit, offset int) ([]*Review, int, error) {
	return service.repo.ListByBeach(context, beachID, limit, offset)
}

// Summarize returns the live rating aggregate of one beach.
func (service *Service) Summarize(context context.Context, beachID string) (*Summary, error) {
	return service.repo.Summarize(context, beachID)
}

// # Review Lifecycle

/*
Create publishes a new review on behalf of the authenticated account.

Description: Validates the rating bounds and text lengths, stamps the
caller's identity, and persists. The repository's uniqueness constraint
rejects a second review of the same beach by the same account.

Parameters:
  - context: context.Context
  - entity: *Review (BeachID, rating, title, body; UserID is overwritten)
  - userID: string (The authenticated account)

Returns:
  - error: Validation, conflict, or persistence errors
*/
func (service *Service) Create(context context.Context, entity *Review, userID string) error {
	validator := &validate.Validator{}
	validator.Range(FieldRating, entity.Rating, 1, 5)
	validator.MaxLen(FieldTitle, entity.Title, 200)
	validator.Required(FieldBody, entity.Body).MaxLen(FieldBody, entity.Body, 5000)

	if err := validator.Err(); err != nil {
		return err
	}

	entity.ID = uuidv7.New()
	entity.UserID = userID

	if err := service.repo.Create(context, entity); err != nil {
		return err
	}

	service.logger.Info("review_created",
		slog.String("review_id", entity.ID),
		slog.String("beach_id", entity.BeachID),
		slog.Int("rating", entity.Rating),
	)

	return nil
}

/*
Update edits an existing review.

Description: Only the review's author may edit it; moderators delete rather
than rewrite other people's words. Rating and text re-run the same
validation as creation.

Parameters:
  - context: context.Context
  - entity: *Review (Target ID plus new rating, title, body)
  - userID: string (The authenticated account)

Returns:
  - error: apperr.Forbidden on an ownership mismatch
*/
func (service *Service) Update(context context.Context, entity *Review, userID string) error {
	validator := &validate.Validator{}
	validator.Range(FieldRating, entity.Rating, 1, 5)
	validator.MaxLen(FieldTitle, entity.Title, 200)
	validator.Required(FieldBody, entity.Body).MaxLen(FieldBody, entity.Body, 5000)

	if err := validator.Err(); err != nil {
		return err
	}

	existing, err := service.repo.FindByID(context, entity.ID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return apperr.Forbidden("You can only edit your own reviews")
	}

	if err := service.repo.Update(context, entity); err != nil {
		return err
	}

	service.logger.Info("review_updated", slog.String("review_id", entity.ID))

	return nil
}

/*
Delete removes a review from public view.

Description: The author may always delete their own review; moderators and
admins may delete anyone's.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - userID: string (The authenticated account)
  - role: sec.UserRole (The caller's role)

Returns:
  - error: apperr.Forbidden when neither owner nor moderator
*/
func (service *Service) Delete(context context.Context, id, userID string, role sec.UserRole) error {
	existing, err := service.repo.FindByID(context, id)
	if err != nil {
		return err
	}

	if existing.UserID != userID && !role.AtLeast(sec.RoleModerator) {
		return apperr.Forbidden("You can only delete your own reviews")
	}

	if err := service.repo.SoftDelete(context, id); err != nil {
		return err
	}

	service.logger.Warn("review_deleted",
		slog.String("review_id", id),
		slog.String("deleted_by", userID),
	)

	return nil
}
