// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic

import (
	"context"
	"slices"
	"strings"

	"github.com/taibuivan/webtoon/internal/platform/memdb"
)

// memoryRepository implements [Repository] over the process-local [memdb.DB].
type memoryRepository struct {
	db *memdb.DB
}

// NewMemoryRepository constructs a comic store backed by db.
func NewMemoryRepository(db *memdb.DB) Repository {
	return &memoryRepository{db: db}
}

func (repository *memoryRepository) List(_ context.Context, filter Filter) ([]*Comic, error) {
	comics := make([]*Comic, 0)

	_ = repository.db.View(func(tx *memdb.Tx) error {
		for _, row := range tx.Comics() {
			comic := fromRow(tx, row)
			if filter.Matches(comic) {
				comics = append(comics, comic)
			}
		}
		return nil
	})

	slices.SortFunc(comics, compareFor(filter.Sort))
	return comics, nil
}

func (repository *memoryRepository) FindByID(_ context.Context, id string) (*Comic, error) {
	var comic *Comic

	_ = repository.db.View(func(tx *memdb.Tx) error {
		if row, found := tx.Comic(id); found {
			comic = fromRow(tx, row)
		}
		return nil
	})

	if comic == nil {
		return nil, ErrNotFound
	}
	return comic, nil
}

func (repository *memoryRepository) FindBySlug(_ context.Context, slug string) (*Comic, error) {
	var comic *Comic

	_ = repository.db.View(func(tx *memdb.Tx) error {
		if row, found := tx.ComicBySlug(slug); found {
			comic = fromRow(tx, row)
		}
		return nil
	})

	if comic == nil {
		return nil, ErrNotFound
	}
	return comic, nil
}

func (repository *memoryRepository) Create(_ context.Context, comic *Comic) error {
	return repository.db.Update(func(tx *memdb.Tx) error {
		if _, taken := tx.ComicBySlug(comic.Slug); taken {
			return ErrSlugTaken
		}
		tx.PutComic(toRow(comic))
		return nil
	})
}

func (repository *memoryRepository) Update(_ context.Context, comic *Comic) error {
	return repository.db.Update(func(tx *memdb.Tx) error {
		existing, found := tx.Comic(comic.ID)
		if !found {
			return ErrNotFound
		}
		if other, taken := tx.ComicBySlug(comic.Slug); taken && other.ID != comic.ID {
			return ErrSlugTaken
		}

		row := toRow(comic)
		row.CreatedAt = existing.CreatedAt
		tx.PutComic(row)
		return nil
	})
}

func (repository *memoryRepository) Delete(_ context.Context, id string) error {
	return repository.db.Update(func(tx *memdb.Tx) error {
		if !tx.DeleteComic(id) {
			return ErrNotFound
		}
		return nil
	})
}

// # Internal Helpers

func toRow(comic *Comic) memdb.ComicRow {
	return memdb.ComicRow{
		ID:          comic.ID,
		Title:       comic.Title,
		Slug:        comic.Slug,
		Description: comic.Description,
		Author:      comic.Author,
		CoverURL:    comic.CoverURL,
		Status:      string(comic.Status),
		CreatedAt:   comic.CreatedAt,
		UpdatedAt:   comic.UpdatedAt,
	}
}

func fromRow(tx *memdb.Tx, row memdb.ComicRow) *Comic {
	return &Comic{
		ID:           row.ID,
		Title:        row.Title,
		Slug:         row.Slug,
		Description:  row.Description,
		Author:       row.Author,
		CoverURL:     row.CoverURL,
		Status:       Status(row.Status),
		ChapterCount: tx.ChapterCount(row.ID),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

// compareFor returns the ordering used by the PostgreSQL store for the same sort,
// with id descending as the tie-breaker.
func compareFor(sort Sort) func(a, b *Comic) int {
	return func(a, b *Comic) int {
		var primary int
		switch sort {
		case SortChapters:
			primary = b.ChapterCount - a.ChapterCount
		case SortTitle:
			primary = strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		default:
			primary = b.CreatedAt.Compare(a.CreatedAt)
		}

		if primary != 0 {
			return primary
		}
		return strings.Compare(b.ID, a.ID)
	}
}
