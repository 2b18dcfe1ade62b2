// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package reference

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/marvega/litoral/internal/platform/middleware"
	requestutil "github.com/marvega/litoral/internal/platform/request"
	"github.com/marvega/litoral/internal/platform/respond"
	"github.com/marvega/litoral/internal/platform/sec"
)

// Handler implements the HTTP layer for master data retrieval and management.
type Handler struct {
	service *Service
}

// NewHandler constructs a new reference [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the master data endpoints on the given router.
//
// Read endpoints are public; mutations require [sec.RoleAdmin].
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/tags", handler.listTags)
	router.Get("/tags/{slug}", handler.getTag)
	router.Get("/amenities", handler.listAmenities)
	router.Get("/municipalities", handler.listMunicipalities)
	router.Get("/condition-scales", handler.listConditionScales)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))

		admin.Post("/tags", handler.createTag)
		admin.Delete("/tags/{id}", handler.deleteTag)
		admin.Post("/amenities", handler.createAmenity)
		admin.Delete("/amenities/{id}", handler.deleteAmenity)
	})
}

// # Read Endpoints

// GET /api/v1/reference/tags returns the taxonomy grouped by category.
func (handler *Handler) listTags(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.ListTags(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}

// GET /api/v1/reference/tags/{slug} returns one tag.
func (handler *Handler) getTag(writer http.ResponseWriter, request *http.Request) {
	slug := chi.URLParam(request, "slug")

	tag, err := handler.service.GetTagBySlug(request.Context(), slug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tag)
}

// GET /api/v1/reference/amenities returns the amenity catalogue.
func (handler *Handler) listAmenities(writer http.ResponseWriter, request *http.Request) {
	amenities, err := handler.service.ListAmenities(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, amenities)
}

// GET /api/v1/reference/municipalities returns the coastal municipality list.
func (handler *Handler) listMunicipalities(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Municipalities())
}

// GET /api/v1/reference/condition-scales returns the shoreline scales.
func (handler *Handler) listConditionScales(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.ConditionScales())
}

// # Mutation Endpoints

// createTagRequest defines the inbound JSON schema for tag creation.
type createTagRequest struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Category string `json:"category"`
}

// POST /api/v1/reference/tags creates a taxonomy entry.
func (handler *Handler) createTag(writer http.ResponseWriter, request *http.Request) {
	var input createTagRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	tag := &Tag{Name: input.Name, Slug: input.Slug, Category: input.Category}
	if err := handler.service.CreateTag(request.Context(), tag); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, tag)
}

// DELETE /api/v1/reference/tags/{id} removes a taxonomy entry.
func (handler *Handler) deleteTag(writer http.ResponseWriter, request *http.Request) {
	id, err := strconv.Atoi(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteTag(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// createAmenityRequest defines the inbound JSON schema for amenity creation.
type createAmenityRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
	Icon string `json:"icon"`
}

// POST /api/v1/reference/amenities creates a facility entry.
func (handler *Handler) createAmenity(writer http.ResponseWriter, request *http.Request) {
	var input createAmenityRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	amenity := &Amenity{Name: input.Name, Slug: input.Slug, Icon: input.Icon}
	if err := handler.service.CreateAmenity(request.Context(), amenity); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, amenity)
}

// DELETE /api/v1/reference/amenities/{id} removes a facility entry.
func (handler *Handler) deleteAmenity(writer http.ResponseWriter, request *http.Request) {
	id, err := strconv.Atoi(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteAmenity(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
