// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package discovery_test

import (
	"net/http"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marvega/litoral/internal/core/discovery"
	"github.com/marvega/litoral/internal/platform/apperr"
)

func TestRegistry_Resolve(t *testing.T) {
	registry := discovery.DefaultRegistry()

	t.Run("known_key", func(t *testing.T) {
		collection, err := registry.Resolve("snorkeling-beaches")
		require.NoError(t, err)
		assert.Equal(t, "snorkeling-beaches", collection.Key)
		assert.Equal(t, discovery.ModeTag, collection.Mode)
		require.NotNil(t, collection.Tag)
		assert.Equal(t, "snorkeling", collection.Tag.ContextTag)
	})

	t.Run("unknown_key_is_not_found", func(t *testing.T) {
		collection, err := registry.Resolve("party-beaches")
		assert.Nil(t, collection)

		var appErr *apperr.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "UNKNOWN_COLLECTION", appErr.Code)
		assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
		// The message names the valid keys so the caller can self-correct.
		assert.Contains(t, appErr.Message, "best-beaches")
	})
}

func TestRegistry_KeysAreSorted(t *testing.T) {
	keys := discovery.DefaultRegistry().Keys()
	assert.True(t, sort.StringsAreSorted(keys))
	assert.Len(t, keys, 7)
}

func TestNewRegistry_PanicsOnDuplicateKey(t *testing.T) {
	assert.Panics(t, func() {
		discovery.NewRegistry(
			&discovery.CollectionContext{Key: "twice", Mode: discovery.ModeBest, Best: &discovery.BestParams{}},
			&discovery.CollectionContext{Key: "twice", Mode: discovery.ModeBest, Best: &discovery.BestParams{}},
		)
	})
}

// TestDefaultRegistry_ModeParamsPresent ensures every built-in collection
// carries the parameter struct its mode dispatches on.
func TestDefaultRegistry_ModeParamsPresent(t *testing.T) {
	for _, collection := range discovery.DefaultRegistry().All() {
		t.Run(collection.Key, func(t *testing.T) {
			switch collection.Mode {
			case discovery.ModeBest:
				assert.NotNil(t, collection.Best)
			case discovery.ModeTag:
				require.NotNil(t, collection.Tag)
				assert.NotEmpty(t, collection.Tag.ContextTag)
			case discovery.ModeRadius:
				require.NotNil(t, collection.Radius)
				assert.Greater(t, collection.Radius.RadiusKm, 0.0)
			case discovery.ModeHidden:
				require.NotNil(t, collection.Hidden)
				assert.NotEmpty(t, collection.Hidden.HiddenTags)
			default:
				t.Fatalf("unhandled mode %q", collection.Mode)
			}
			assert.Positive(t, collection.DefaultLimit)
			assert.NotEmpty(t, collection.DefaultSort)
		})
	}
}
