// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package activity

import (
	"context"
	"log/slog"

	"github.com/marvega/litoral/internal/platform/validate"
	"github.com/marvega/litoral/pkg/uuidv7"
)

// Service orchestrates per-account favorites and check-ins.
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

// # Favorites

// AddFavorite bookmarks a beach. Idempotent.
func (service *Service) AddFavorite(context context.Context, userID, beachID string) error {
	if err := service.repo.AddFavorite(context, userID, beachID); err != nil {
		return err
	}

	service.logger.Info("favorite_added",
		slog.String("user_id", userID),
		slog.String("beach_id", beachID),
	)

	return nil
}

// RemoveFavorite drops a bookmark.
func (service *Service) RemoveFavorite(context context.Context, userID, beachID string) error {
	return service.repo.RemoveFavorite(context, userID, beachID)
}

// ListFavorites returns the account's bookmarks, most recent first.
func (service *Service) ListFavorites(context context.Context, userID string, limit, offset int) ([]*FavoriteEntry, int, error) {
	return service.repo.ListFavorites(context, userID, limit, offset)
}

// IsFavorite reports whether the account has bookmarked the beach.
func (service *Service) IsFavorite(context context.Context, userID, beachID string) (bool, error) {
	return service.repo.IsFavorite(context, userID, beachID)
}

// # Check-ins

/*
CheckIn logs a visit to a beach under the authenticated account.

Parameters:
  - context: context.Context
  - userID: string (The authenticated account)
  - beachID: string (UUID)
  - note: string (Optional, at most 500 characters)

Returns:
  - *Checkin: The stored visit
  - error: Validation or persistence errors
*/
func (service *Service) CheckIn(context context.Context, userID, beachID, note string) (*Checkin, error) {
	validator := &validate.Validator{}
	validator.Required("beach_id", beachID).UUID("beach_id", beachID)
	validator.MaxLen("note", note, 500)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	checkin := &Checkin{
		ID:      uuidv7.New(),
		BeachID: beachID,
		UserID:  userID,
		Note:    note,
	}

	if err := service.repo.CreateCheckin(context, checkin); err != nil {
		return nil, err
	}

	service.logger.Info("checkin_created",
		slog.String("user_id", userID),
		slog.String("beach_id", beachID),
	)

	return checkin, nil
}

// ListCheckins returns the account's visit log, most recent first.
func (service *Service) ListCheckins(context context.Context, userID string, limit, offset int) ([]*Checkin, int, error) {
	return service.repo.ListCheckins(context, userID, limit, offset)
}
