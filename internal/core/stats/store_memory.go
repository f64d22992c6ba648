// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package stats

import (
	"context"

	"github.com/taibuivan/webtoon/internal/core/comic"
	"github.com/taibuivan/webtoon/internal/platform/memdb"
)

type memoryRepository struct {
	db *memdb.DB
}

// NewMemoryRepository constructs a stats store backed by db.
func NewMemoryRepository(db *memdb.DB) Repository {
	return &memoryRepository{db: db}
}

func (repository *memoryRepository) Summary(_ context.Context) (*Summary, error) {
	summary := newSummary()

	_ = repository.db.View(func(tx *memdb.Tx) error {
		for _, row := range tx.Comics() {
			summary.ComicsByStatus[comic.Status(row.Status)]++
			summary.TotalComics++
		}
		summary.TotalChapters = tx.TotalChapters()
		return nil
	})

	return summary, nil
}
