// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package vocab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marvega/litoral/internal/core/vocab"
)

func TestIsTag(t *testing.T) {
	for _, slug := range vocab.TagSlugs {
		assert.True(t, vocab.IsTag(slug), slug)
	}
	assert.False(t, vocab.IsTag("jetskiing"))
	assert.False(t, vocab.IsTag("Snorkeling"))
	assert.False(t, vocab.IsTag(""))
}

func TestIsMunicipality(t *testing.T) {
	assert.True(t, vocab.IsMunicipality("San Juan"))
	assert.True(t, vocab.IsMunicipality("Rincón"))
	assert.True(t, vocab.IsMunicipality("Culebra"))

	// Exact match only: case and accents matter.
	assert.False(t, vocab.IsMunicipality("san juan"))
	assert.False(t, vocab.IsMunicipality("Rincon"))
	assert.False(t, vocab.IsMunicipality("Orlando"))
	assert.False(t, vocab.IsMunicipality(""))
}

func TestIsAmenity(t *testing.T) {
	assert.True(t, vocab.IsAmenity("restrooms"))
	assert.True(t, vocab.IsAmenity("lifeguard-tower"))
	assert.False(t, vocab.IsAmenity("helipad"))
}

func TestConditionScales(t *testing.T) {
	assert.True(t, vocab.IsSargassumLevel("none"))
	assert.True(t, vocab.IsSargassumLevel("heavy"))
	assert.False(t, vocab.IsSargassumLevel("calm"))

	assert.True(t, vocab.IsSurfLevel("calm"))
	assert.True(t, vocab.IsSurfLevel("dangerous"))
	assert.False(t, vocab.IsSurfLevel("none"))

	assert.True(t, vocab.IsWindLevel("breezy"))
	assert.False(t, vocab.IsWindLevel("hurricane"))
}

// TestVocabulariesHaveNoDuplicates guards the seed lists against copy-paste
// drift.
func TestVocabulariesHaveNoDuplicates(t *testing.T) {
	lists := map[string][]string{
		"tags":           vocab.TagSlugs,
		"municipalities": vocab.Municipalities,
		"amenities":      vocab.AmenitySlugs,
	}
	for name, list := range lists {
		seen := map[string]bool{}
		for _, v := range list {
			assert.False(t, seen[v], "%s contains %q twice", name, v)
			seen[v] = true
		}
	}
}
