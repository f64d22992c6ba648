// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chapter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/webtoon/internal/core/comic"
	"github.com/taibuivan/webtoon/internal/platform/validate"
	"github.com/taibuivan/webtoon/pkg/uuid"
)

// # Collaborators

// ComicLookup resolves a comic by id or slug.
type ComicLookup interface {
	GetComic(context context.Context, identifier string) (*comic.Comic, error)
}

// ComicCache drops a cached comic whose chapter count changed.
type ComicCache interface {
	Invalidate(context context.Context, comicID string)
}

// # Service Layer

// Service orchestrates chapter uploads and lookups.
type Service struct {
	chapterRepo Repository
	comics      ComicLookup
	cache       ComicCache
	logger      *slog.Logger
	now         func() time.Time
}

// NewService constructs a new [Service]. cache may be nil when no comic cache is configured.
func NewService(chapterRepo Repository, comics ComicLookup, cache ComicCache, logger *slog.Logger) *Service {
	return &Service{
		chapterRepo: chapterRepo,
		comics:      comics,
		cache:       cache,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// # Chapter Retrieval

/*
ListChapters returns the chapters of a comic ordered by number.

Description: An id that matches no comic, including one that is not a UUID,
yields an empty list rather than an error, so a deleted comic reads as having
no chapters.

Returns:
  - []*Chapter: Chapters by ascending number
  - error: ValidationError if comicID is empty
*/
func (service *Service) ListChapters(context context.Context, comicID string) ([]*Chapter, error) {
	if strings.TrimSpace(comicID) == "" {
		return nil, validate.FieldError(FieldComicID, "This field is required")
	}

	id, ok := uuid.Normalize(comicID)
	if !ok {
		return []*Chapter{}, nil
	}

	return service.chapterRepo.ListByComic(context, id)
}

// ListComicChapters resolves a comic by id or slug and returns its chapters.
func (service *Service) ListComicChapters(context context.Context, identifier string) ([]*Chapter, error) {
	owner, err := service.comics.GetComic(context, identifier)
	if err != nil {
		return nil, err
	}

	return service.chapterRepo.ListByComic(context, owner.ID)
}

/*
GetChapter returns a chapter by id.

Parameters:
  - context: context.Context
  - id: string (Chapter UUID)
  - comicID: string (Optional owner scope; empty skips the check)

Returns:
  - *Chapter: The chapter with its pages
  - error: ErrNotFound if missing or owned by another comic
*/
func (service *Service) GetChapter(context context.Context, id, comicID string) (*Chapter, error) {
	chapterID, ok := uuid.Normalize(id)
	if !ok {
		return nil, ErrNotFound
	}

	var owner string
	if comicID != "" {
		if owner, ok = uuid.Normalize(comicID); !ok {
			return nil, ErrNotFound
		}
	}

	chapter, err := service.chapterRepo.FindByID(context, chapterID)
	if err != nil {
		return nil, err
	}

	if owner != "" && chapter.ComicID != owner {
		return nil, ErrNotFound
	}

	return chapter, nil
}

// # Chapter Management

/*
CreateChapter validates and persists a chapter for an existing comic.

Description: The owning comic's existence and the per-comic number uniqueness
are checked by the repository inside the insert, so a failed create leaves no
record behind.

Returns:
  - error: ValidationError, ErrComicNotFound or ErrNumberTaken
*/
func (service *Service) CreateChapter(context context.Context, chapter *Chapter) error {
	validator := &validate.Validator{}

	validator.Required(FieldComicID, chapter.ComicID)
	validator.Custom(FieldNumber, chapter.Number < 0, "Chapter number cannot be negative")
	validator.MaxLen(FieldTitle, chapter.Title, MaxTitleLength)
	for index, page := range chapter.Pages {
		validator.Custom(fmt.Sprintf("%s[%d]", FieldPages, index), strings.TrimSpace(page) == "", "Page reference cannot be empty")
	}

	if err := validator.Err(); err != nil {
		return err
	}

	comicID, ok := uuid.Normalize(chapter.ComicID)
	if !ok {
		return ErrComicNotFound
	}
	chapter.ComicID = comicID

	if chapter.Pages == nil {
		chapter.Pages = []string{}
	}
	chapter.ID = uuid.New()
	chapter.CreatedAt = service.now()

	if err := service.chapterRepo.Create(context, chapter); err != nil {
		return err
	}

	service.invalidate(context, chapter.ComicID)

	service.logger.InfoContext(context, "chapter_created",
		slog.String("chapter_id", chapter.ID),
		slog.String("comic_id", chapter.ComicID),
		slog.Float64("number", chapter.Number),
		slog.Int("pages", len(chapter.Pages)),
	)

	return nil
}

// DeleteChapter removes a chapter and its pages.
func (service *Service) DeleteChapter(context context.Context, id string) error {
	chapter, err := service.GetChapter(context, id, "")
	if err != nil {
		return err
	}

	if err := service.chapterRepo.Delete(context, chapter.ID); err != nil {
		return err
	}

	service.invalidate(context, chapter.ComicID)

	service.logger.InfoContext(context, "chapter_deleted",
		slog.String("chapter_id", chapter.ID),
		slog.String("comic_id", chapter.ComicID),
	)

	return nil
}

func (service *Service) invalidate(context context.Context, comicID string) {
	if service.cache != nil {
		service.cache.Invalidate(context, comicID)
	}
}
