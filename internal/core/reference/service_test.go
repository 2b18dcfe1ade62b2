// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package reference_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marvega/litoral/internal/core/reference"
	"github.com/marvega/litoral/internal/platform/apperr"
)

type fakeRepository struct {
	createdTags      []*reference.Tag
	createdAmenities []*reference.Amenity
	deletedTags      []int
	deletedAmenities []int
}

func (repo *fakeRepository) ListTags(_ context.Context) ([]*reference.TagCategory, error) {
	return nil, nil
}

func (repo *fakeRepository) GetTagBySlug(_ context.Context, _ string) (*reference.Tag, error) {
	return nil, apperr.NotFound("tag")
}

func (repo *fakeRepository) CreateTag(_ context.Context, tag *reference.Tag) error {
	tag.ID = len(repo.createdTags) + 1
	repo.createdTags = append(repo.createdTags, tag)
	return nil
}

func (repo *fakeRepository) DeleteTag(_ context.Context, id int) error {
	repo.deletedTags = append(repo.deletedTags, id)
	return nil
}

func (repo *fakeRepository) ListAmenities(_ context.Context) ([]*reference.Amenity, error) {
	return nil, nil
}

func (repo *fakeRepository) CreateAmenity(_ context.Context, amenity *reference.Amenity) error {
	amenity.ID = len(repo.createdAmenities) + 1
	repo.createdAmenities = append(repo.createdAmenities, amenity)
	return nil
}

func (repo *fakeRepository) DeleteAmenity(_ context.Context, id int) error {
	repo.deletedAmenities = append(repo.deletedAmenities, id)
	return nil
}

func newTestService(repo *fakeRepository) *reference.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return reference.NewService(repo, logger)
}

func TestCreateTag_DerivesSlugFromName(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	tag := &reference.Tag{Name: "Natural Pools", Category: "character"}
	require.NoError(t, service.CreateTag(context.Background(), tag))

	assert.Equal(t, "natural-pools", tag.Slug)
	assert.Equal(t, 1, tag.ID)
}

func TestCreateTag_Validation(t *testing.T) {
	tests := []struct {
		name string
		tag  reference.Tag
	}{
		{"missing name", reference.Tag{Category: "activities"}},
		{"missing category", reference.Tag{Name: "Snorkeling"}},
		{"unknown category", reference.Tag{Name: "Snorkeling", Category: "watersports"}},
		{"illegal explicit slug", reference.Tag{Name: "Snorkeling", Category: "activities", Slug: "Not Valid"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			service := newTestService(repo)

			tag := tt.tag
			err := service.CreateTag(context.Background(), &tag)
			require.Error(t, err)

			var appErr *apperr.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			assert.Empty(t, repo.createdTags)
		})
	}
}

func TestCreateAmenity_DerivesSlugFromName(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	amenity := &reference.Amenity{Name: "Picnic Tables", Icon: "table"}
	require.NoError(t, service.CreateAmenity(context.Background(), amenity))

	assert.Equal(t, "picnic-tables", amenity.Slug)
}

func TestMunicipalities_ComesFromVocabulary(t *testing.T) {
	service := newTestService(&fakeRepository{})

	municipalities := service.Municipalities()
	assert.Contains(t, municipalities, "Rincón")
	assert.Contains(t, municipalities, "Culebra")
	assert.NotContains(t, municipalities, "Orlando")
}

func TestConditionScales_ExposesAllThreeScales(t *testing.T) {
	service := newTestService(&fakeRepository{})

	scales := service.ConditionScales()
	assert.Equal(t, []string{"none", "light", "moderate", "heavy"}, scales.Sargassum)
	assert.Equal(t, []string{"calm", "moderate", "strong", "dangerous"}, scales.Surf)
	assert.Equal(t, []string{"light", "breezy", "windy", "strong"}, scales.Wind)
}

func TestDeleteTag_LogsAndDelegates(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	require.NoError(t, service.DeleteTag(context.Background(), 7))
	assert.Equal(t, []int{7}, repo.deletedTags)
}
