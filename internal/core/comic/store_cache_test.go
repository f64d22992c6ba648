// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/webtoon/internal/core/chapter"
	"github.com/taibuivan/webtoon/internal/core/comic"
	"github.com/taibuivan/webtoon/internal/platform/apperr"
	"github.com/taibuivan/webtoon/internal/platform/constants"
	"github.com/taibuivan/webtoon/internal/platform/memdb"
	"github.com/taibuivan/webtoon/pkg/pointer"
)

// cacheFixture runs the services over an in-process Redis.
type cacheFixture struct {
	redis    *miniredis.Miniredis
	inner    comic.Repository
	comics   *comic.Service
	chapters *chapter.Service
}

func newCacheFixture(t *testing.T) cacheFixture {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	db := memdb.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	inner := comic.NewMemoryRepository(db)
	cached := comic.NewCachedRepository(inner, client, time.Minute, logger)
	comics := comic.NewService(cached, logger)

	return cacheFixture{
		redis:    server,
		inner:    inner,
		comics:   comics,
		chapters: chapter.NewService(chapter.NewMemoryRepository(db), comics, cached, logger),
	}
}

func (f cacheFixture) create(t *testing.T, title, slug string) *comic.Comic {
	t.Helper()
	created := &comic.Comic{Title: title, Slug: slug}
	require.NoError(t, f.comics.CreateComic(context.Background(), created))
	return created
}

/*
TestCachedRepository_ServesFromCache verifies a second read never reaches the
wrapped store.
*/
func TestCachedRepository_ServesFromCache(t *testing.T) {
	f := newCacheFixture(t)
	created := f.create(t, "Solo Leveling", "solo-leveling")
	ctx := context.Background()

	_, err := f.comics.GetComic(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, f.redis.Exists(constants.RedisPrefixComicByID+created.ID))

	pointed, err := f.redis.Get(constants.RedisPrefixComicBySlug + "solo-leveling")
	require.NoError(t, err)
	assert.Equal(t, created.ID, pointed)

	// Change the row behind the cache's back
	stored, err := f.inner.FindByID(ctx, created.ID)
	require.NoError(t, err)
	stored.Title = "Changed Underneath"
	require.NoError(t, f.inner.Update(ctx, stored))

	byID, err := f.comics.GetComic(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Solo Leveling", byID.Title)

	bySlug, err := f.comics.GetComic(ctx, "solo-leveling")
	require.NoError(t, err)
	assert.Equal(t, "Solo Leveling", bySlug.Title)
}

/*
TestCachedRepository_ChapterChangesInvalidate verifies creating or deleting a
chapter drops the cached comic so its chapter count stays current.
*/
func TestCachedRepository_ChapterChangesInvalidate(t *testing.T) {
	tests := []struct {
		name  string
		owner func(id string) string
	}{
		{"canonical_id", func(id string) string { return id }},
		{"uppercase_id", strings.ToUpper},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCacheFixture(t)
			created := f.create(t, "Tower of God", "tower-of-god")
			key := constants.RedisPrefixComicByID + created.ID
			ctx := context.Background()

			before, err := f.comics.GetComic(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, 0, before.ChapterCount)
			require.True(t, f.redis.Exists(key))

			added := &chapter.Chapter{ComicID: tt.owner(created.ID), Number: 1}
			require.NoError(t, f.chapters.CreateChapter(ctx, added))
			assert.False(t, f.redis.Exists(key))

			after, err := f.comics.GetComic(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, 1, after.ChapterCount)
			require.True(t, f.redis.Exists(key))

			require.NoError(t, f.chapters.DeleteChapter(ctx, added.ID))
			assert.False(t, f.redis.Exists(key))

			removed, err := f.comics.GetComic(ctx, "tower-of-god")
			require.NoError(t, err)
			assert.Equal(t, 0, removed.ChapterCount)
		})
	}
}

/*
TestCachedRepository_RenameDropsOldSlug verifies a stale slug pointer never
serves the renamed comic.
*/
func TestCachedRepository_RenameDropsOldSlug(t *testing.T) {
	f := newCacheFixture(t)
	created := f.create(t, "Noblesse", "noblesse")
	ctx := context.Background()

	_, err := f.comics.GetComic(ctx, "noblesse")
	require.NoError(t, err)

	_, err = f.comics.UpdateComic(ctx, created.ID, comic.Patch{Slug: pointer.To("noblesse-remastered")})
	require.NoError(t, err)

	// Refill the id entry so the old slug pointer leads to the renamed comic
	renamed, err := f.comics.GetComic(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "noblesse-remastered", renamed.Slug)
	assert.True(t, f.redis.Exists(constants.RedisPrefixComicBySlug+"noblesse"))

	_, err = f.comics.GetComic(ctx, "noblesse")
	assert.True(t, apperr.IsNotFound(err))

	found, err := f.comics.GetComic(ctx, "noblesse-remastered")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

/*
TestCachedRepository_FailedUpdateKeepsEntry verifies a rejected write leaves
the cached comic untouched.
*/
func TestCachedRepository_FailedUpdateKeepsEntry(t *testing.T) {
	f := newCacheFixture(t)
	f.create(t, "A", "a")
	target := f.create(t, "D", "d")
	key := constants.RedisPrefixComicByID + target.ID
	ctx := context.Background()

	_, err := f.comics.GetComic(ctx, target.ID)
	require.NoError(t, err)
	require.True(t, f.redis.Exists(key))

	_, err = f.comics.UpdateComic(ctx, target.ID, comic.Patch{Title: pointer.To("Renamed"), Slug: pointer.To("a")})
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))
	assert.True(t, f.redis.Exists(key))

	unchanged, err := f.comics.GetComic(ctx, "d")
	require.NoError(t, err)
	assert.Equal(t, "D", unchanged.Title)

	stored, err := f.inner.FindByID(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, "D", stored.Title)
}

/*
TestCachedRepository_DegradesWhenRedisIsDown verifies every call falls through
to the wrapped store when the cache cannot be reached.
*/
func TestCachedRepository_DegradesWhenRedisIsDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cached := comic.NewCachedRepository(comic.NewMemoryRepository(memdb.New()), client, time.Minute, logger)
	service := comic.NewService(cached, logger)
	ctx := context.Background()

	created := &comic.Comic{Title: "Solo Leveling", Slug: "solo-leveling"}
	require.NoError(t, service.CreateComic(ctx, created))

	byID, err := service.GetComic(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "solo-leveling", byID.Slug)

	bySlug, err := service.GetComic(ctx, "solo-leveling")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)

	_, err = service.UpdateComic(ctx, created.ID, comic.Patch{Title: pointer.To("Solo Leveling: Ragnarok")})
	require.NoError(t, err)

	require.NoError(t, service.DeleteComic(ctx, created.ID))

	_, err = service.GetComic(ctx, created.ID)
	assert.True(t, apperr.IsNotFound(err))
}
