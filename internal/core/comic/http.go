// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/webtoon/internal/platform/apperr"
	requestutil "github.com/taibuivan/webtoon/internal/platform/request"
	"github.com/taibuivan/webtoon/internal/platform/respond"
	"github.com/taibuivan/webtoon/pkg/pointer"
)

// # Handler Implementation

// Handler implements the HTTP layer for comic management and discovery.
// It translates web requests into domain service calls.
type Handler struct {
	service *Service
}

// NewHandler constructs a new comic [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches the comic collection endpoints to the API router.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	api.Get("/comics", handler.listComics)
	api.Post("/comics", handler.createComic)
	api.Get("/comics/{identifier}", handler.getComic)
	api.Patch("/comics/{identifier}", handler.updateComic)
	api.Put("/comics/{identifier}", handler.updateComic)
	api.Delete("/comics/{identifier}", handler.deleteComic)
}

// # Request Payloads

// createComicRequest defines the inbound JSON schema for comic creation.
type createComicRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Author      string `json:"author"`
	CoverURL    string `json:"cover_url"`
	Status      string `json:"status"`
}

// updateComicRequest defines the inbound JSON schema for PATCH and PUT.
// Absent keys decode to nil and leave the stored value untouched.
type updateComicRequest struct {
	Title       *string `json:"title"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Author      *string `json:"author"`
	CoverURL    *string `json:"cover_url"`
	Status      *string `json:"status"`
}

// # Comic Endpoints

/*
GET /api/comics.

Description: Lists comics, optionally filtered and sorted.

Request:
  - status: string (Ongoing, Completed, Hiatus; case-insensitive)
  - search: string (substring of title or author)
  - sort: string (recent, chapters, title)

Response:
  - 200: []Comic
  - 400: ValidationError: Unknown status or sort
*/
func (handler *Handler) listComics(writer http.ResponseWriter, request *http.Request) {
	sort, err := ParseSort(requestutil.Query(request, "sort"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter := Filter{
		Search: requestutil.Query(request, "search"),
		Sort:   sort,
	}

	if raw := requestutil.Query(request, "status"); raw != "" {
		status, ok := ParseStatus(raw)
		if !ok {
			respond.Error(writer, request, apperr.ValidationError("Invalid status filter", apperr.FieldError{
				Field:   FieldStatus,
				Message: "Must be one of: Ongoing, Completed, Hiatus",
			}))
			return
		}
		filter.Status = status
	}

	comics, err := handler.service.ListComics(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, comics)
}

/*
POST /api/comics.

Response:
  - 201: Comic: The created comic with its generated id
  - 400: ValidationError: Missing or malformed fields
  - 409: ConflictError: Slug already in use
*/
func (handler *Handler) createComic(writer http.ResponseWriter, request *http.Request) {
	var input createComicRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comic := &Comic{
		Title:       input.Title,
		Slug:        input.Slug,
		Description: input.Description,
		Author:      input.Author,
		CoverURL:    input.CoverURL,
		Status:      Status(input.Status),
	}

	if err := handler.service.CreateComic(request.Context(), comic); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, comic)
}

/*
GET /api/comics/{identifier}.

Response:
  - 200: Comic
  - 404: NotFoundError
*/
func (handler *Handler) getComic(writer http.ResponseWriter, request *http.Request) {
	comic, err := handler.service.GetComic(request.Context(), requestutil.Param(request, "identifier"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, comic)
}

/*
PATCH|PUT /api/comics/{identifier}.

Description: Both verbs apply partial-update semantics.

Response:
  - 200: Comic: The updated comic
  - 400: ValidationError
  - 404: NotFoundError
  - 409: ConflictError: New slug already in use
*/
func (handler *Handler) updateComic(writer http.ResponseWriter, request *http.Request) {
	var input updateComicRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	patch := Patch{
		Title:       input.Title,
		Slug:        input.Slug,
		Description: input.Description,
		Author:      input.Author,
		CoverURL:    input.CoverURL,
	}
	if input.Status != nil {
		patch.Status = pointer.To(Status(*input.Status))
	}

	comic, err := handler.service.UpdateComic(request.Context(), requestutil.Param(request, "identifier"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, comic)
}

/*
DELETE /api/comics/{identifier}.

Response:
  - 204: Deleted along with its chapters
  - 404: NotFoundError
*/
func (handler *Handler) deleteComic(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteComic(request.Context(), requestutil.Param(request, "identifier")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
