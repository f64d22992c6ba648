// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/webtoon/internal/platform/apperr"
	"github.com/taibuivan/webtoon/internal/platform/validate"
	"github.com/taibuivan/webtoon/pkg/uuid"
)

// # Service Layer

// Service orchestrates the business logic for the comic catalogue.
type Service struct {
	comicRepo Repository
	logger    *slog.Logger
	now       func() time.Time
}

// NewService constructs a new [Service] with its required repository.
func NewService(comicRepo Repository, logger *slog.Logger) *Service {
	return &Service{
		comicRepo: comicRepo,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// # Comic Lookups

// ListComics returns every comic matching the filter.
func (service *Service) ListComics(context context.Context, filter Filter) ([]*Comic, error) {
	return service.comicRepo.List(context, filter)
}

/*
GetComic fetches a single comic by UUID or slug.

Description: A slug may itself look like a UUID, so an identifier in UUID
form is tried as a primary key first and then as a slug. Anything else is
resolved as a slug only.

Parameters:
  - context: context.Context
  - identifier: string (UUID or Slug)

Returns:
  - *Comic: The hydrated domain entity
  - error: ErrNotFound if neither lookup matches
*/
func (service *Service) GetComic(context context.Context, identifier string) (*Comic, error) {
	if id, ok := uuid.Normalize(identifier); ok {
		comic, err := service.comicRepo.FindByID(context, id)
		if err == nil || !apperr.IsNotFound(err) {
			return comic, err
		}
	}

	return service.comicRepo.FindBySlug(context, identifier)
}

// # Comic Management

/*
CreateComic validates and persists a new comic.

Description: Generates a UUIDv7 identity and the creation timestamps. An empty
status defaults to Ongoing; any other value is matched case-insensitively.

Parameters:
  - context: context.Context
  - comic: *Comic (Title and Slug required)

Returns:
  - error: ValidationError on bad input, ErrSlugTaken on a slug collision
*/
func (service *Service) CreateComic(context context.Context, comic *Comic) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, comic.Title).MaxLen(FieldTitle, comic.Title, MaxTitleLength)
	validator.Required(FieldSlug, comic.Slug)
	if comic.Slug != "" {
		validator.MaxLen(FieldSlug, comic.Slug, MaxSlugLength).Slug(FieldSlug, comic.Slug)
	}
	validator.MaxLen(FieldAuthor, comic.Author, MaxAuthorLength)
	validator.URL(FieldCoverURL, comic.CoverURL)

	if comic.Status == "" {
		comic.Status = StatusOngoing
	} else {
		service.normalizeStatus(validator, &comic.Status)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	comic.ID = uuid.New()
	comic.CreatedAt = service.now()
	comic.UpdatedAt = comic.CreatedAt
	comic.ChapterCount = 0

	if err := service.comicRepo.Create(context, comic); err != nil {
		return err
	}

	service.logger.InfoContext(context, "comic_created",
		slog.String("comic_id", comic.ID),
		slog.String("slug", comic.Slug),
	)

	return nil
}

/*
UpdateComic applies a partial update to an existing comic.

Description: Only the fields present in the patch change. The title cannot be
blanked; description, author and cover_url may be cleared with an empty
string. A new slug is validated and its uniqueness re-checked by the store.

Parameters:
  - context: context.Context
  - identifier: string (UUID or Slug of the target)
  - patch: Patch

Returns:
  - *Comic: The comic after the update
  - error: ErrNotFound, ValidationError or ErrSlugTaken
*/
func (service *Service) UpdateComic(context context.Context, identifier string, patch Patch) (*Comic, error) {
	validator := &validate.Validator{}

	if patch.Title != nil {
		validator.Required(FieldTitle, *patch.Title).MaxLen(FieldTitle, *patch.Title, MaxTitleLength)
	}
	if patch.Slug != nil {
		validator.Required(FieldSlug, *patch.Slug)
		if *patch.Slug != "" {
			validator.MaxLen(FieldSlug, *patch.Slug, MaxSlugLength).Slug(FieldSlug, *patch.Slug)
		}
	}
	if patch.Author != nil {
		validator.MaxLen(FieldAuthor, *patch.Author, MaxAuthorLength)
	}
	if patch.CoverURL != nil {
		validator.URL(FieldCoverURL, *patch.CoverURL)
	}
	if patch.Status != nil {
		service.normalizeStatus(validator, patch.Status)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	comic, err := service.GetComic(context, identifier)
	if err != nil {
		return nil, err
	}

	patch.Apply(comic)
	comic.UpdatedAt = service.now()

	if err := service.comicRepo.Update(context, comic); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "comic_updated", slog.String("comic_id", comic.ID))

	return comic, nil
}

// DeleteComic removes a comic and every chapter that belongs to it.
func (service *Service) DeleteComic(context context.Context, identifier string) error {
	comic, err := service.GetComic(context, identifier)
	if err != nil {
		return err
	}

	if err := service.comicRepo.Delete(context, comic.ID); err != nil {
		return err
	}

	service.logger.InfoContext(context, "comic_deleted",
		slog.String("comic_id", comic.ID),
		slog.Int("chapters_removed", comic.ChapterCount),
	)

	return nil
}

// # Internal Helpers

// normalizeStatus rewrites status to its canonical spelling or records a field error.
func (service *Service) normalizeStatus(validator *validate.Validator, status *Status) {
	parsed, ok := ParseStatus(string(*status))
	if !ok {
		validator.Custom(FieldStatus, true, "Must be one of: Ongoing, Completed, Hiatus")
		return
	}
	*status = parsed
}
