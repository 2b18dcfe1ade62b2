// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package discovery

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/marvega/litoral/internal/core/beach"
	requestutil "github.com/marvega/litoral/internal/platform/request"
	"github.com/marvega/litoral/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for collection discovery.
type Handler struct {
	service *Service
}

// NewHandler constructs a discovery [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the discovery endpoints.
//
// Both endpoints are public: collections are the storefront of the site.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listCollections)
	router.Get("/{key}", handler.browseCollection)

	return router
}

// # Response Envelopes

// browseEnvelope is the JSON contract of a discovery response. It is richer
// than the standard paginated envelope: the collection metadata and the
// normalized filter echo let clients render the page header and the active
// filter chips without a second request.
type browseEnvelope struct {
	Success    bool               `json:"success"`
	Collection *CollectionContext `json:"collection"`
	Data       []*beach.Beach     `json:"data"`
	Meta       browseMeta         `json:"meta"`
}

type browseMeta struct {
	Total           int       `json:"total"`
	Page            int       `json:"page"`
	Limit           int       `json:"limit"`
	Pages           int       `json:"pages"`
	ContextFallback bool      `json:"context_fallback"`
	Filters         FilterSet `json:"filters"`
}

// # Discovery Endpoints

/*
GET /api/v1/collections.

Description: Lists the curated collections with their display metadata so
clients can build navigation without hardcoding keys.

Response:
  - 200: []CollectionContext
*/
func (handler *Handler) listCollections(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Registry().All())
}

/*
GET /api/v1/collections/{key}.

Description: Browses one curated collection with free-form visitor filters
layered on top. All filter parameters degrade to defaults when malformed;
only an unknown collection key fails.

Request:
  - q: string (substring search over name, municipality, description)
  - tags / tags[]: []string (repeatable, comma-splittable, OR semantics)
  - municipality: string (exact vocabulary match)
  - sort: string (name, rating, reviews, distance)
  - view: string (cards, list, grid, map)
  - page, limit: int
  - include_all: bool token (suppresses the curated context predicate)
  - format: string (accepted for legacy links; this server always answers JSON)

Response:
  - 200: browseEnvelope
  - 404: UNKNOWN_COLLECTION listing the valid keys
*/
func (handler *Handler) browseCollection(writer http.ResponseWriter, request *http.Request) {
	key := requestutil.Param(request, "key")

	result, err := handler.service.Browse(request.Context(), key, request.URL.Query())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, browseEnvelope{
		Success:    true,
		Collection: result.Collection,
		Data:       result.Beaches,
		Meta: browseMeta{
			Total:           result.Total,
			Page:            result.Page,
			Limit:           result.Limit,
			Pages:           result.Pages,
			ContextFallback: result.ContextFallback,
			Filters:         result.Filters,
		},
	})
}
