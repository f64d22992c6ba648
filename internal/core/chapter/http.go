// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/webtoon/internal/platform/request"
	"github.com/taibuivan/webtoon/internal/platform/respond"
	"github.com/taibuivan/webtoon/internal/platform/validate"
)

// # Handler Implementation

// Handler implements the HTTP layer for chapter management.
type Handler struct {
	service *Service
}

// NewHandler constructs a new chapter [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches chapter endpoints to the root API router.
// Chapter endpoints span both /chapters/... and /comics/{identifier}/chapters.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	api.Get("/chapters", handler.listChapters)
	api.Post("/chapters", handler.createChapter)
	api.Get("/chapters/{id}", handler.getChapter)
	api.Delete("/chapters/{id}", handler.deleteChapter)

	api.Get("/comics/{identifier}/chapters", handler.listComicChapters)
}

// createChapterRequest defines the inbound JSON schema for chapter uploads.
type createChapterRequest struct {
	ComicID string   `json:"comic_id"`
	Number  *float64 `json:"number"`
	Title   string   `json:"title"`
	Pages   []string `json:"pages"`
}

// # Chapter Retrieval

/*
GET /api/chapters?comic_id={id}.

Response:
  - 200: []Chapter: Ordered by number, empty for an unknown comic
  - 400: ValidationError: comic_id missing
*/
func (handler *Handler) listChapters(writer http.ResponseWriter, request *http.Request) {
	chapters, err := handler.service.ListChapters(request.Context(), requestutil.Query(request, "comic_id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, chapters)
}

/*
GET /api/comics/{identifier}/chapters.

Response:
  - 200: []Chapter
  - 404: NotFoundError: Comic not found
*/
func (handler *Handler) listComicChapters(writer http.ResponseWriter, request *http.Request) {
	chapters, err := handler.service.ListComicChapters(request.Context(), requestutil.Param(request, "identifier"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, chapters)
}

/*
GET /api/chapters/{id}?comic_id={id}.

Description: The optional comic_id scopes the lookup to one comic.

Response:
  - 200: Chapter
  - 404: NotFoundError
*/
func (handler *Handler) getChapter(writer http.ResponseWriter, request *http.Request) {
	chapter, err := handler.service.GetChapter(request.Context(),
		requestutil.Param(request, "id"),
		requestutil.Query(request, "comic_id"),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, chapter)
}

// # Chapter Management

/*
POST /api/chapters.

Response:
  - 201: Chapter: Created chapter object
  - 400: ValidationError: Invalid payload or missing comic_id
  - 404: NotFoundError: Comic not found
  - 409: ConflictError: Number already used in this comic
*/
func (handler *Handler) createChapter(writer http.ResponseWriter, request *http.Request) {
	var input createChapterRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if input.Number == nil {
		respond.Error(writer, request, validate.FieldError(FieldNumber, "This field is required"))
		return
	}

	chapter := &Chapter{
		ComicID: input.ComicID,
		Number:  *input.Number,
		Title:   input.Title,
		Pages:   input.Pages,
	}

	if err := handler.service.CreateChapter(request.Context(), chapter); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, chapter)
}

/*
DELETE /api/chapters/{id}.

Response:
  - 204: Deleted
  - 404: NotFoundError
*/
func (handler *Handler) deleteChapter(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteChapter(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
