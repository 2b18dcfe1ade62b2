// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package review

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

// Handler implements the HTTP layer for beach reviews.
type Handler struct {
	service *Service
}

// NewHandler constructs a new review [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches review endpoints to the root API router.
// Review endpoints span both /beaches/{beachID}/... and /reviews/... prefixes.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	// Public read endpoints
	api.Get("/beaches/{beachID}/reviews", handler.listReviews)
	api.Get("/beaches/{beachID}/reviews/summary", handler.getSummary)

	// Authenticated interactions
	api.Group(func(user chi.Router) {
		user.Use(middleware.RequireAuth)

		user.Post("/beaches/{beachID}/reviews", handler.createReview)
		user.Patch("/reviews/{id}", handler.updateReview)
		user.Delete("/reviews/{id}", handler.deleteReview)
	})
}

// # Read Endpoints

/*
GET /api/v1/beaches/{beachID}/reviews.

Description: Returns a paginated roster of reviews for one beach, newest
first, with author display fields.

Request:
  - beachID: string (UUID)
  - limit: int
  - page: int

Response:
  - 200: []Review: Paginated reviews
*/
func (handler *Handler) listReviews(writer http.ResponseWriter, request *http.Request) {
	beachID := requestutil.ID(request, "beachID")
	paginationParams := pagination.FromRequest(request)

	reviews, total, err := handler.service.ListByBeach(request.Context(), beachID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, reviews, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/beaches/{beachID}/reviews/summary.

Description: Returns the live first-party rating aggregate of one beach.

Response:
  - 200: Summary: Average and count
*/
func (handler *Handler) getSummary(writer http.ResponseWriter, request *http.Request) {
	beachID := requestutil.ID(request, "beachID")

	summary, err := handler.service.Summarize(request.Context(), beachID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, summary)
}

// # Request Payloads

// reviewRequest defines the inbound JSON schema for review creation and edits.
type reviewRequest struct {
	Rating int    `json:"rating"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// # Mutation Endpoints

/*
POST /api/v1/beaches/{beachID}/reviews.

Description: Publishes a review under the authenticated account. One review
per account per beach.

Request:
  - beachID: string (UUID)
  - body: reviewRequest

Response:
  - 201: Review: The published review
  - 400: 400: Validation: Rating out of bounds or empty body
  - 401: 401: ErrUnauthorized: Missing or invalid token
  - 409: 409: ErrConflict: Account already reviewed this beach
*/
func (handler *Handler) createReview(writer http.ResponseWriter, request *http.Request) {
	beachID := requestutil.ID(request, "beachID")

	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input reviewRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity := &Review{
		BeachID: beachID,
		Rating:  input.Rating,
		Title:   input.Title,
		Body:    input.Body,
	}

	if err := handler.service.Create(request.Context(), entity, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entity)
}

/*
PATCH /api/v1/reviews/{id}.

Description: Edits the caller's own review.

Request:
  - id: string (UUID)
  - body: reviewRequest

Response:
  - 200: Review: The updated review
  - 403: 403: ErrForbidden: Not the review author
  - 404: 404: ErrNotFound: Review not found
*/
func (handler *Handler) updateReview(writer http.ResponseWriter, request *http.Request) {
	reviewID := requestutil.ID(request, "id")

	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input reviewRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity := &Review{
		ID:     reviewID,
		Rating: input.Rating,
		Title:  input.Title,
		Body:   input.Body,
	}

	if err := handler.service.Update(request.Context(), entity, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entity)
}

/*
DELETE /api/v1/reviews/{id}.

Description: Removes a review. Authors delete their own; moderators may
delete any.

Request:
  - id: string (UUID)

Response:
  - 204: No Content: Success
  - 403: 403: ErrForbidden: Neither author nor moderator
  - 404: 404: ErrNotFound: Review not found
*/
func (handler *Handler) deleteReview(writer http.ResponseWriter, request *http.Request) {
	reviewID := requestutil.ID(request, "id")

	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), reviewID, claims.UserID, sec.UserRole(claims.Role)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
