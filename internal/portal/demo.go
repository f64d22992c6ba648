// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package portal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/taibuivan/webtoon/internal/core/chapter"
	"github.com/taibuivan/webtoon/internal/core/comic"
	"github.com/taibuivan/webtoon/internal/core/stats"
	"github.com/taibuivan/webtoon/internal/platform/apperr"
	"github.com/taibuivan/webtoon/internal/platform/memdb"
	"github.com/taibuivan/webtoon/pkg/slice"
)

// ErrReadOnly is returned when a write is attempted against the demo catalogue.
var ErrReadOnly = errors.New("portal: the demo catalogue is read-only")

type demoComic struct {
	title       string
	slug        string
	author      string
	description string
	status      comic.Status
	chapters    []float64
}

// demoCatalogue is the offline sample data, oldest first.
func demoCatalogue() []demoComic {
	return []demoComic{
		{"Tower of God", "tower-of-god", "SIU", "A boy climbs a tower to find the girl who left him.", comic.StatusOngoing, []float64{1, 2, 3}},
		{"The Breaker", "the-breaker", "Jeon Geuk-jin", "A bullied student finds a reluctant martial arts master.", comic.StatusCompleted, []float64{1, 2}},
		{"Noblesse", "noblesse", "Son Jeho", "A noble wakes after 820 years of sleep.", comic.StatusCompleted, []float64{1}},
		{"Lore Olympus", "lore-olympus", "Rachel Smythe", "A modern retelling of Hades and Persephone.", comic.StatusHiatus, []float64{1, 1.5, 2}},
		{"Solo Leveling", "solo-leveling", "Chugong", "The weakest hunter gains the power to level up.", comic.StatusOngoing, []float64{1, 2, 3, 4}},
	}
}

// Demo is a [Source] backed by an in-memory copy of the sample catalogue.
//
// It runs the same services as the API, so filters and ordering behave alike.
type Demo struct {
	comics   *comic.Service
	chapters *chapter.Service
	stats    *stats.Service
}

// NewDemo seeds a fresh catalogue. Each call returns an independent copy.
func NewDemo(ctx context.Context) (*Demo, error) {
	db := memdb.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	comics := comic.NewService(comic.NewMemoryRepository(db), logger)
	demo := &Demo{
		comics:   comics,
		chapters: chapter.NewService(chapter.NewMemoryRepository(db), comics, nil, logger),
		stats:    stats.NewService(stats.NewMemoryRepository(db), logger),
	}

	for _, entry := range demoCatalogue() {
		seeded := &comic.Comic{
			Title:       entry.title,
			Slug:        entry.slug,
			Author:      entry.author,
			Description: entry.description,
			Status:      entry.status,
		}
		if err := demo.comics.CreateComic(ctx, seeded); err != nil {
			return nil, fmt.Errorf("portal: seed %s: %w", entry.slug, err)
		}

		for _, number := range entry.chapters {
			page := fmt.Sprintf("https://cdn.example.com/%s/%g/001.jpg", entry.slug, number)
			if err := demo.chapters.CreateChapter(ctx, &chapter.Chapter{
				ComicID: seeded.ID,
				Number:  number,
				Title:   fmt.Sprintf("Episode %g", number),
				Pages:   []string{page},
			}); err != nil {
				return nil, fmt.Errorf("portal: seed %s chapter %g: %w", entry.slug, number, err)
			}
		}
	}

	return demo, nil
}

// Summary implements [Source].
func (demo *Demo) Summary(ctx context.Context) (*stats.Summary, error) {
	return demo.stats.Summary(ctx)
}

// ListComics implements [Source] with the same parsing rules as the API.
func (demo *Demo) ListComics(ctx context.Context, query ComicQuery) ([]comic.Comic, error) {
	sort, err := comic.ParseSort(query.Sort)
	if err != nil {
		return nil, err
	}

	filter := comic.Filter{Search: query.Search, Sort: sort}
	if query.Status != "" {
		status, ok := comic.ParseStatus(query.Status)
		if !ok {
			return nil, apperr.ValidationError("Invalid status filter", apperr.FieldError{
				Field:   comic.FieldStatus,
				Message: "Must be one of: Ongoing, Completed, Hiatus",
			})
		}
		filter.Status = status
	}

	comics, err := demo.comics.ListComics(ctx, filter)
	if err != nil {
		return nil, err
	}
	return slice.Map(comics, func(c *comic.Comic) comic.Comic { return *c }), nil
}

// CreateComic always fails with [ErrReadOnly].
func (demo *Demo) CreateComic(context.Context, NewComic) (*comic.Comic, error) {
	return nil, ErrReadOnly
}

// ListChapters implements [Source].
func (demo *Demo) ListChapters(ctx context.Context, comicIdentifier string) ([]chapter.Chapter, error) {
	chapters, err := demo.chapters.ListComicChapters(ctx, comicIdentifier)
	if err != nil {
		return nil, err
	}
	return slice.Map(chapters, func(c *chapter.Chapter) chapter.Chapter { return *c }), nil
}
