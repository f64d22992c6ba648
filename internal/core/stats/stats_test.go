// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package stats_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/webtoon/internal/core/comic"
	"github.com/taibuivan/webtoon/internal/core/stats"
	"github.com/taibuivan/webtoon/internal/platform/memdb"
)

func TestSummary_CountsByStatus(t *testing.T) {
	db := memdb.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := stats.NewService(stats.NewMemoryRepository(db), logger)

	// 1. Empty catalogue still lists every status
	empty, err := service.Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, empty.TotalComics)
	assert.Len(t, empty.ComicsByStatus, len(comic.Statuses))

	// 2. Populated catalogue
	_ = db.Update(func(tx *memdb.Tx) error {
		tx.PutComic(memdb.ComicRow{ID: "a", Slug: "a", Status: string(comic.StatusOngoing)})
		tx.PutComic(memdb.ComicRow{ID: "b", Slug: "b", Status: string(comic.StatusCompleted)})
		tx.PutComic(memdb.ComicRow{ID: "c", Slug: "c", Status: string(comic.StatusCompleted)})
		tx.PutChapter(memdb.ChapterRow{ID: "x", ComicID: "a", Number: 1})
		tx.PutChapter(memdb.ChapterRow{ID: "y", ComicID: "b", Number: 1})
		return nil
	})

	summary, err := service.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalComics)
	assert.Equal(t, 2, summary.TotalChapters)
	assert.Equal(t, 1, summary.ComicsByStatus[comic.StatusOngoing])
	assert.Equal(t, 2, summary.ComicsByStatus[comic.StatusCompleted])
	assert.Equal(t, 0, summary.ComicsByStatus[comic.StatusHiatus])
}
