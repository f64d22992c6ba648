// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chapter

import (
	"context"

	"github.com/taibuivan/webtoon/internal/platform/memdb"
)

// memoryRepository implements [Repository] over the process-local [memdb.DB].
type memoryRepository struct {
	db *memdb.DB
}

// NewMemoryRepository constructs a chapter store backed by db.
func NewMemoryRepository(db *memdb.DB) Repository {
	return &memoryRepository{db: db}
}

func (repository *memoryRepository) ListByComic(_ context.Context, comicID string) ([]*Chapter, error) {
	chapters := make([]*Chapter, 0)

	_ = repository.db.View(func(tx *memdb.Tx) error {
		for _, row := range tx.ChaptersOf(comicID) {
			chapters = append(chapters, fromRow(row))
		}
		return nil
	})

	return chapters, nil
}

func (repository *memoryRepository) FindByID(_ context.Context, id string) (*Chapter, error) {
	var chapter *Chapter

	_ = repository.db.View(func(tx *memdb.Tx) error {
		if row, found := tx.Chapter(id); found {
			chapter = fromRow(row)
		}
		return nil
	})

	if chapter == nil {
		return nil, ErrNotFound
	}
	return chapter, nil
}

// Create checks the parent comic and the number under the write lock, matching
// the foreign key and unique constraint of the relational schema.
func (repository *memoryRepository) Create(_ context.Context, chapter *Chapter) error {
	return repository.db.Update(func(tx *memdb.Tx) error {
		if _, found := tx.Comic(chapter.ComicID); !found {
			return ErrComicNotFound
		}
		if tx.HasChapterNumber(chapter.ComicID, chapter.Number) {
			return ErrNumberTaken
		}

		tx.PutChapter(memdb.ChapterRow{
			ID:        chapter.ID,
			ComicID:   chapter.ComicID,
			Number:    chapter.Number,
			Title:     chapter.Title,
			Pages:     chapter.Pages,
			CreatedAt: chapter.CreatedAt,
		})
		return nil
	})
}

func (repository *memoryRepository) Delete(_ context.Context, id string) error {
	return repository.db.Update(func(tx *memdb.Tx) error {
		if !tx.DeleteChapter(id) {
			return ErrNotFound
		}
		return nil
	})
}

func fromRow(row memdb.ChapterRow) *Chapter {
	pages := row.Pages
	if pages == nil {
		pages = []string{}
	}

	return &Chapter{
		ID:        row.ID,
		ComicID:   row.ComicID,
		Number:    row.Number,
		Title:     row.Title,
		Pages:     pages,
		CreatedAt: row.CreatedAt,
	}
}
