// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package beach_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marvega/litoral/internal/core/beach"
	"github.com/marvega/litoral/internal/platform/apperr"
	"github.com/marvega/litoral/pkg/pointer"
)

// fakeRepository records every call so tests can assert on what the service
// actually asked the storage layer to do.
type fakeRepository struct {
	created          []*beach.Beach
	updated          []*beach.Beach
	conditionUpdates map[string]beach.Conditions
	deleted          []string

	findByIDCalls   []string
	findBySlugCalls []string
	stored          *beach.Beach
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{conditionUpdates: map[string]beach.Conditions{}}
}

func (repo *fakeRepository) List(_ context.Context, _ beach.Filter, _, _ int) ([]*beach.Beach, int, error) {
	return nil, 0, nil
}

func (repo *fakeRepository) FindByID(_ context.Context, id string) (*beach.Beach, error) {
	repo.findByIDCalls = append(repo.findByIDCalls, id)
	if repo.stored == nil {
		return nil, apperr.NotFound("beach")
	}
	return repo.stored, nil
}

func (repo *fakeRepository) FindBySlug(_ context.Context, slug string) (*beach.Beach, error) {
	repo.findBySlugCalls = append(repo.findBySlugCalls, slug)
	if repo.stored == nil {
		return nil, apperr.NotFound("beach")
	}
	return repo.stored, nil
}

func (repo *fakeRepository) Create(_ context.Context, entity *beach.Beach) error {
	repo.created = append(repo.created, entity)
	return nil
}

func (repo *fakeRepository) Update(_ context.Context, entity *beach.Beach) error {
	repo.updated = append(repo.updated, entity)
	return nil
}

func (repo *fakeRepository) UpdateConditions(_ context.Context, id string, conditions beach.Conditions) error {
	repo.conditionUpdates[id] = conditions
	return nil
}

func (repo *fakeRepository) SoftDelete(_ context.Context, id string) error {
	repo.deleted = append(repo.deleted, id)
	return nil
}

func newTestService(repo *fakeRepository) *beach.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return beach.NewService(repo, logger)
}

// validBeach returns a minimal listing that passes every validation rule.
func validBeach() *beach.Beach {
	return &beach.Beach{
		Name:         "Playa Flamenco",
		Municipality: "Culebra",
		Lat:          pointer.To(18.3285),
		Lng:          pointer.To(-65.3172),
	}
}

func TestCreateBeach_GeneratesIdentityAndSlug(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	entity := validBeach()
	require.NoError(t, service.CreateBeach(context.Background(), entity))

	require.Len(t, repo.created, 1)
	assert.Len(t, entity.ID, 36)
	assert.Equal(t, "playa-flamenco", entity.Slug)
	assert.Equal(t, beach.StatusDraft, entity.PublishStatus)
}

func TestCreateBeach_KeepsExplicitStatus(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	entity := validBeach()
	entity.PublishStatus = beach.StatusPublished
	require.NoError(t, service.CreateBeach(context.Background(), entity))

	assert.Equal(t, beach.StatusPublished, entity.PublishStatus)
}

func TestCreateBeach_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*beach.Beach)
	}{
		{"missing name", func(b *beach.Beach) { b.Name = "" }},
		{"inland municipality", func(b *beach.Beach) { b.Municipality = "Orlando" }},
		{"missing municipality", func(b *beach.Beach) { b.Municipality = "" }},
		{"unknown status", func(b *beach.Beach) { b.PublishStatus = "live" }},
		{"lat without lng", func(b *beach.Beach) { b.Lng = nil }},
		{"lat out of range", func(b *beach.Beach) { b.Lat = pointer.To(123.0) }},
		{"lng out of range", func(b *beach.Beach) { b.Lng = pointer.To(200.0) }},
		{"unknown sargassum level", func(b *beach.Beach) { b.Sargassum = "apocalyptic" }},
		{"unknown surf level", func(b *beach.Beach) { b.Surf = "tsunami" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository()
			service := newTestService(repo)

			entity := validBeach()
			tt.mutate(entity)

			err := service.CreateBeach(context.Background(), entity)
			require.Error(t, err)

			var appErr *apperr.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

			// Rejected input must never reach storage.
			assert.Empty(t, repo.created)
		})
	}
}

func TestGetBeach_LookupStrategy(t *testing.T) {
	repo := newFakeRepository()
	repo.stored = validBeach()
	service := newTestService(repo)

	_, err := service.GetBeach(context.Background(), "0191e3a7-1c3d-7f00-8000-0123456789ab")
	require.NoError(t, err)

	_, err = service.GetBeach(context.Background(), "playa-flamenco")
	require.NoError(t, err)

	assert.Equal(t, []string{"0191e3a7-1c3d-7f00-8000-0123456789ab"}, repo.findByIDCalls)
	assert.Equal(t, []string{"playa-flamenco"}, repo.findBySlugCalls)
}

func TestUpdateBeach_PartialValidation(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	// Empty fields are simply not validated.
	require.NoError(t, service.UpdateBeach(context.Background(), &beach.Beach{ID: "some-id"}))
	require.Len(t, repo.updated, 1)

	// A present field still has to be legal.
	err := service.UpdateBeach(context.Background(), &beach.Beach{ID: "some-id", Slug: "Not A Slug!"})
	require.Error(t, err)
	assert.Len(t, repo.updated, 1)
}

func TestUpdateConditions(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	full := beach.Conditions{Sargassum: "light", Surf: "calm", Wind: "breezy"}
	require.NoError(t, service.UpdateConditions(context.Background(), "beach-1", full))
	assert.Equal(t, full, repo.conditionUpdates["beach-1"])

	// A report is a complete observation: all three readings are mandatory.
	partial := beach.Conditions{Sargassum: "light", Surf: "calm"}
	err := service.UpdateConditions(context.Background(), "beach-1", partial)
	require.Error(t, err)

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestDeleteBeach(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	require.NoError(t, service.DeleteBeach(context.Background(), "beach-9"))
	assert.Equal(t, []string{"beach-9"}, repo.deleted)
}
