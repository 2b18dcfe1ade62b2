// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package activity

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/marvega/litoral/internal/platform/middleware"
	requestutil "github.com/marvega/litoral/internal/platform/request"
	"github.com/marvega/litoral/internal/platform/respond"
	"github.com/marvega/litoral/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for favorites and check-ins.
// Every endpoint requires authentication; activity is always self-scoped.
type Handler struct {
	service *Service
}

// NewHandler constructs a new activity [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches activity endpoints to the root API router.
// Endpoints span /me/... for account-scoped lists and /beaches/{beachID}/...
// for per-listing toggles.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	api.Group(func(user chi.Router) {
		user.Use(middleware.RequireAuth)

		// Account-scoped lists
		user.Get("/me/favorites", handler.listFavorites)
		user.Get("/me/checkins", handler.listCheckins)

		// Per-listing interactions
		user.Put("/beaches/{beachID}/favorite", handler.addFavorite)
		user.Delete("/beaches/{beachID}/favorite", handler.removeFavorite)
		user.Get("/beaches/{beachID}/favorite", handler.getFavorite)
		user.Post("/beaches/{beachID}/checkins", handler.checkIn)
	})
}

// # Favorite Endpoints

/*
GET /api/v1/me/favorites.

Description: Returns the caller's bookmarked beaches, most recently saved
first. Unpublished or deleted listings are filtered out.

Response:
  - 200: []FavoriteEntry: Paginated bookmarks
*/
func (handler *Handler) listFavorites(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	entries, total, err := handler.service.ListFavorites(request.Context(), userID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, entries, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
PUT /api/v1/beaches/{beachID}/favorite.

Description: Bookmarks the beach for the caller. Idempotent; repeating the
call changes nothing.

Response:
  - 204: No Content: Saved
*/
func (handler *Handler) addFavorite(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	beachID := requestutil.ID(request, "beachID")

	if err := handler.service.AddFavorite(request.Context(), userID, beachID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
DELETE /api/v1/beaches/{beachID}/favorite.

Description: Drops the caller's bookmark on the beach.

Response:
  - 204: No Content: Removed
  - 404: 404: ErrNotFound: Beach was not bookmarked
*/
func (handler *Handler) removeFavorite(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	beachID := requestutil.ID(request, "beachID")

	if err := handler.service.RemoveFavorite(request.Context(), userID, beachID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// favoriteStatus is the response body of the bookmark probe.
type favoriteStatus struct {
	Favorite bool `json:"favorite"`
}

/*
GET /api/v1/beaches/{beachID}/favorite.

Description: Reports whether the caller has bookmarked the beach, so detail
pages can render the toggle state.

Response:
  - 200: favoriteStatus
*/
func (handler *Handler) getFavorite(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	beachID := requestutil.ID(request, "beachID")

	favorite, err := handler.service.IsFavorite(request.Context(), userID, beachID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, favoriteStatus{Favorite: favorite})
}

// # Check-in Endpoints

// checkinRequest defines the inbound JSON schema for a visit log entry.
type checkinRequest struct {
	Note string `json:"note"`
}

/*
POST /api/v1/beaches/{beachID}/checkins.

Description: Logs a visit to the beach under the caller's account with an
optional note.

Request:
  - beachID: string (UUID)
  - body: checkinRequest

Response:
  - 201: Checkin: The stored visit
  - 400: 400: Validation: Note too long
*/
func (handler *Handler) checkIn(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	beachID := requestutil.ID(request, "beachID")

	var input checkinRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	checkin, err := handler.service.CheckIn(request.Context(), userID, beachID, input.Note)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, checkin)
}

/*
GET /api/v1/me/checkins.

Description: Returns the caller's visit log, most recent first.

Response:
  - 200: []Checkin: Paginated visits
*/
func (handler *Handler) listCheckins(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	checkins, total, err := handler.service.ListCheckins(request.Context(), userID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, checkins, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}
