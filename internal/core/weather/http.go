// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package weather

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/marvega/litoral/internal/platform/request"
	"github.com/marvega/litoral/internal/platform/respond"
)

// Handler implements the HTTP layer for beach weather.
type Handler struct {
	service *Service
}

// NewHandler constructs a new weather [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches the weather endpoint to the root API router.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	api.Get("/beaches/{identifier}/weather", handler.getWeather)
}

/*
GET /api/v1/beaches/{identifier}/weather.

Description: Returns current conditions at the beach's coordinates. Served
from cache when a snapshot newer than the cache window exists.

Request:
  - identifier: string (UUID or slug)

Response:
  - 200: Report: Current conditions snapshot
  - 404: 404: ErrNotFound: Beach not found
  - 422: 422: ErrUnprocessable: Beach has no verified coordinates
*/
func (handler *Handler) getWeather(writer http.ResponseWriter, request *http.Request) {
	identifier := requestutil.ID(request, "identifier")

	report, err := handler.service.Report(request.Context(), identifier)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, report)
}
