// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package stats

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/webtoon/internal/platform/respond"
)

// Handler implements the HTTP layer for statistics.
type Handler struct {
	service *Service
}

// NewHandler constructs a new stats [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches GET /stats to the API router.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	api.Get("/stats", handler.getSummary)
}

/*
GET /api/stats.

Response:
  - 200: Summary
*/
func (handler *Handler) getSummary(writer http.ResponseWriter, request *http.Request) {
	summary, err := handler.service.Summary(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, summary)
}
