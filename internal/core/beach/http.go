// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package beach

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/marvega/litoral/internal/platform/middleware"
	requestutil "github.com/marvega/litoral/internal/platform/request"
	"github.com/marvega/litoral/internal/platform/respond"
	"github.com/marvega/litoral/internal/platform/sec"
	"github.com/marvega/litoral/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for beach listing management.
// It translates web requests into domain service calls.
type Handler struct {
	service *Service
}

// NewHandler constructs a new beach [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the beach domain's endpoints.
//
// # Routing Strategy
//
//   - Detail (Public): Single-listing lookup by slug or UUID.
//   - Management (Restricted): Requires [sec.RoleAdmin]; moderators may
//     additionally report shoreline conditions.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Detail Endpoint
	router.Get("/{identifier}", handler.getBeach)

	// ## Conditions Reporting (Moderator or Admin)
	router.Group(func(moderator chi.Router) {
		moderator.Use(middleware.RequireRole(sec.RoleModerator))

		moderator.Put("/{id}/conditions", handler.updateConditions)
	})

	// ## Listing Management (Admin Protected)
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))

		admin.Get("/", handler.listBeaches)
		admin.Post("/", handler.createBeach)
		admin.Patch("/{id}", handler.updateBeach)
		admin.Delete("/{id}", handler.deleteBeach)
	})

	return router
}

// # Listing Endpoints

/*
GET /api/v1/beaches.

Description: Retrieves the administrative catalogue table, including drafts
and archived listings. Visitor browsing uses the collection endpoints
instead.

Request:
  - q: string (Substring search over name and description)
  - municipality: string (Exact coastal municipality name)
  - publish_status: string (draft, published, archived)
  - limit: int
  - page: int

Response:
  - 200: []Beach: Paginated list of beaches
*/
func (handler *Handler) listBeaches(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	queryParams := request.URL.Query()

	filter := Filter{
		Query:        queryParams.Get("q"),
		Municipality: queryParams.Get("municipality"),
	}

	if status := PublishStatus(queryParams.Get("publish_status")); status.IsValid() {
		filter.PublishStatus = status
	}

	beaches, total, err := handler.service.ListBeaches(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, beaches, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/beaches/{identifier}.

Description: Retrieves full listing detail using either the UUID or the
unique URL slug. UUID lookups take precedence.

Request:
  - identifier: string (UUID or slug)

Response:
  - 200: Beach: Success
  - 404: 404: ErrNotFound: Beach not found
*/
func (handler *Handler) getBeach(writer http.ResponseWriter, request *http.Request) {
	identifier := requestutil.ID(request, "identifier")

	entity, err := handler.service.GetBeach(request.Context(), identifier)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entity)
}

// # Request Payloads

// beachRequest defines the inbound JSON schema for creation and update.
type beachRequest struct {
	Name         string        `json:"name"`
	Municipality string        `json:"municipality"`
	Lat          *float64      `json:"lat"`
	Lng          *float64      `json:"lng"`
	CoverImage   string        `json:"cover_image"`
	Description  string        `json:"description"`
	AccessLabel  string        `json:"access_label"`
	PlaceID      string        `json:"place_id"`
	Sargassum    string        `json:"sargassum"`
	Surf         string        `json:"surf"`
	Wind         string        `json:"wind"`
	HasLifeguard bool          `json:"has_lifeguard"`
	SafeChildren bool          `json:"safe_for_children"`
	Status       PublishStatus `json:"publish_status"`
	TagIDs       []int         `json:"tag_ids"`
	AmenityIDs   []int         `json:"amenity_ids"`
}

// toEntity maps the payload into a domain entity.
func (input beachRequest) toEntity() *Beach {
	return &Beach{
		Name:            input.Name,
		Municipality:    input.Municipality,
		Lat:             input.Lat,
		Lng:             input.Lng,
		CoverImage:      input.CoverImage,
		Description:     input.Description,
		AccessLabel:     input.AccessLabel,
		PlaceID:         input.PlaceID,
		Sargassum:       input.Sargassum,
		Surf:            input.Surf,
		Wind:            input.Wind,
		HasLifeguard:    input.HasLifeguard,
		SafeForChildren: input.SafeChildren,
		PublishStatus:   input.Status,
		TagIDs:          input.TagIDs,
		AmenityIDs:      input.AmenityIDs,
	}
}

// # Mutation Endpoints

/*
POST /api/v1/beaches.

Description: Creates a new beach listing. Slugs are auto-generated from the
name; new listings default to draft status until published explicitly.

Request (Body):
  - beachRequest: JSON object

Response:
  - 201: Beach: Created listing
  - 400: 400: ErrInvalidJSON/Validation: Invalid input data
  - 401: 401: ErrUnauthorized: Missing or invalid token
  - 403: 403: ErrForbidden: Insufficient permissions
*/
func (handler *Handler) createBeach(writer http.ResponseWriter, request *http.Request) {
	var input beachRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity := input.toEntity()
	if err := handler.service.CreateBeach(request.Context(), entity); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entity)
}

/*
PATCH /api/v1/beaches/{id}.

Description: Applies partial updates to an existing listing. Clients should
only provide the fields that need to change; omitted junction arrays leave
the associations untouched.

Request:
  - id: string (UUID)
  - body: beachRequest (Partial JSON)

Response:
  - 200: Beach: Updated listing
  - 400: 400: ErrInvalidJSON/Validation: Invalid input data
  - 404: 404: ErrNotFound: Beach not found
*/
func (handler *Handler) updateBeach(writer http.ResponseWriter, request *http.Request) {
	beachID := requestutil.ID(request, "id")

	var input beachRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity := input.toEntity()
	entity.ID = beachID

	if err := handler.service.UpdateBeach(request.Context(), entity); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entity)
}

/*
PUT /api/v1/beaches/{id}/conditions.

Description: Replaces the shoreline readings of a listing with a fresh
observation. All three scales are required.

Request:
  - id: string (UUID)
  - body: Conditions (sargassum, surf, wind)

Response:
  - 200: Conditions: The stored readings
  - 400: 400: Validation: Unknown scale value
  - 404: 404: ErrNotFound: Beach not found
*/
func (handler *Handler) updateConditions(writer http.ResponseWriter, request *http.Request) {
	beachID := requestutil.ID(request, "id")

	var input Conditions
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateConditions(request.Context(), beachID, input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, input)
}

/*
DELETE /api/v1/beaches/{id}.

Description: Performs a soft-delete of the listing. Deleted records are
hidden from all surfaces but remain in the database for auditing.

Request:
  - id: string (UUID)

Response:
  - 204: No Content: Success
  - 404: 404: ErrNotFound: Beach not found
*/
func (handler *Handler) deleteBeach(writer http.ResponseWriter, request *http.Request) {
	beachID := requestutil.ID(request, "id")

	if err := handler.service.DeleteBeach(request.Context(), beachID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
