// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package review_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marvega/litoral/internal/core/review"
	"github.com/marvega/litoral/internal/platform/apperr"
	"github.com/marvega/litoral/internal/platform/sec"
)

type fakeRepository struct {
	stored  *review.Review
	created []*review.Review
	updated []*review.Review
	deleted []string
}

func (repo *fakeRepository) ListByBeach(_ context.Context, _ string, _, _ int) ([]*review.Review, int, error) {
	return nil, 0, nil
}

func (repo *fakeRepository) FindByID(_ context.Context, id string) (*review.Review, error) {
	if repo.stored == nil || repo.stored.ID != id {
		return nil, apperr.NotFound("review")
	}
	return repo.stored, nil
}

func (repo *fakeRepository) Create(_ context.Context, entity *review.Review) error {
	repo.created = append(repo.created, entity)
	return nil
}

func (repo *fakeRepository) Update(_ context.Context, entity *review.Review) error {
	repo.updated = append(repo.updated, entity)
	return nil
}

func (repo *fakeRepository) SoftDelete(_ context.Context, id string) error {
	repo.deleted = append(repo.deleted, id)
	return nil
}

func (repo *fakeRepository) Summarize(_ context.Context, beachID string) (*review.Summary, error) {
	return &review.Summary{BeachID: beachID}, nil
}

func newTestService(repo *fakeRepository) *review.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return review.NewService(repo, logger)
}

func TestCreate_StampsIdentity(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	entity := &review.Review{BeachID: "beach-1", Rating: 5, Body: "Crystal clear water."}
	require.NoError(t, service.Create(context.Background(), entity, "user-1"))

	require.Len(t, repo.created, 1)
	assert.Len(t, entity.ID, 36)
	assert.Equal(t, "user-1", entity.UserID)
}

func TestCreate_CallerCannotSpoofAuthor(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	entity := &review.Review{BeachID: "beach-1", Rating: 4, Body: "Nice.", UserID: "someone-else"}
	require.NoError(t, service.Create(context.Background(), entity, "user-1"))

	assert.Equal(t, "user-1", entity.UserID)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		entity review.Review
	}{
		{"rating too low", review.Review{Rating: 0, Body: "x"}},
		{"rating too high", review.Review{Rating: 6, Body: "x"}},
		{"empty body", review.Review{Rating: 3}},
		{"body too long", review.Review{Rating: 3, Body: strings.Repeat("a", 5001)}},
		{"title too long", review.Review{Rating: 3, Body: "x", Title: strings.Repeat("t", 201)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			service := newTestService(repo)

			entity := tt.entity
			err := service.Create(context.Background(), &entity, "user-1")
			require.Error(t, err)

			var appErr *apperr.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			assert.Empty(t, repo.created)
		})
	}
}

func TestUpdate_OnlyAuthorMayEdit(t *testing.T) {
	repo := &fakeRepository{stored: &review.Review{ID: "rev-1", UserID: "author"}}
	service := newTestService(repo)

	edit := &review.Review{ID: "rev-1", Rating: 4, Body: "Edited."}

	err := service.Update(context.Background(), edit, "intruder")
	require.Error(t, err)

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.Code)
	assert.Empty(t, repo.updated)

	require.NoError(t, service.Update(context.Background(), edit, "author"))
	assert.Len(t, repo.updated, 1)
}

func TestDelete_OwnerAndModeratorRules(t *testing.T) {
	tests := []struct {
		name    string
		caller  string
		role    sec.UserRole
		allowed bool
	}{
		{"author deletes own", "author", sec.RoleMember, true},
		{"stranger rejected", "stranger", sec.RoleMember, false},
		{"moderator deletes any", "stranger", sec.RoleModerator, true},
		{"admin deletes any", "stranger", sec.RoleAdmin, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{stored: &review.Review{ID: "rev-1", UserID: "author"}}
			service := newTestService(repo)

			err := service.Delete(context.Background(), "rev-1", tt.caller, tt.role)
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, []string{"rev-1"}, repo.deleted)
			} else {
				var appErr *apperr.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, "FORBIDDEN", appErr.Code)
				assert.Empty(t, repo.deleted)
			}
		})
	}
}

func TestDelete_MissingReview(t *testing.T) {
	service := newTestService(&fakeRepository{})

	err := service.Delete(context.Background(), "ghost", "user-1", sec.RoleAdmin)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}
