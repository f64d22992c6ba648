// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/webtoon/internal/core/comic"
	"github.com/taibuivan/webtoon/internal/platform/apperr"
	"github.com/taibuivan/webtoon/internal/platform/memdb"
	"github.com/taibuivan/webtoon/pkg/pointer"
	"github.com/taibuivan/webtoon/pkg/slug"
)

func newService(t *testing.T) (*comic.Service, *memdb.DB) {
	t.Helper()
	db := memdb.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return comic.NewService(comic.NewMemoryRepository(db), logger), db
}

func mustCreate(t *testing.T, service *comic.Service, title, slug string, status comic.Status) *comic.Comic {
	t.Helper()
	created := &comic.Comic{Title: title, Slug: slug, Status: status}
	require.NoError(t, service.CreateComic(context.Background(), created))
	return created
}

/*
TestCreateComic_Defaults verifies identity, timestamps and default status.
*/
func TestCreateComic_Defaults(t *testing.T) {
	service, _ := newService(t)

	created := mustCreate(t, service, "Tower of God", "tower-of-god", "")

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, comic.StatusOngoing, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

/*
TestCreateComic_Validation verifies field-level errors for bad payloads.
*/
func TestCreateComic_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input comic.Comic
		field string
	}{
		{"missing_title", comic.Comic{Slug: "x"}, comic.FieldTitle},
		{"blank_title", comic.Comic{Title: "   ", Slug: "x"}, comic.FieldTitle},
		{"missing_slug", comic.Comic{Title: "X"}, comic.FieldSlug},
		{"bad_slug", comic.Comic{Title: "X", Slug: "Not A Slug"}, comic.FieldSlug},
		{"bad_status", comic.Comic{Title: "X", Slug: "x", Status: "Cancelled"}, comic.FieldStatus},
		{"bad_cover", comic.Comic{Title: "X", Slug: "x", CoverURL: "ftp://host/img.png"}, comic.FieldCoverURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newService(t)
			input := tt.input

			err := service.CreateComic(context.Background(), &input)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, apperr.CodeValidation, appError.Code)
			require.NotEmpty(t, appError.Details)
			assert.Equal(t, tt.field, appError.Details[0].Field)
		})
	}
}

/*
TestCreateComic_StatusCaseInsensitive verifies status normalization.
*/
func TestCreateComic_StatusCaseInsensitive(t *testing.T) {
	service, _ := newService(t)

	created := mustCreate(t, service, "Omniscient Reader", "omniscient-reader", "completed")

	assert.Equal(t, comic.StatusCompleted, created.Status)
}

/*
TestCreateComic_DuplicateSlug verifies the second create with a slug conflicts.
*/
func TestCreateComic_DuplicateSlug(t *testing.T) {
	service, _ := newService(t)
	mustCreate(t, service, "Solo Leveling", "solo-leveling", "")

	err := service.CreateComic(context.Background(), &comic.Comic{Title: "Another", Slug: "solo-leveling"})

	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))

	comics, err := service.ListComics(context.Background(), comic.Filter{})
	require.NoError(t, err)
	assert.Len(t, comics, 1)
}

/*
TestGetComic_ByIDOrSlug verifies both lookups, including a UUID-shaped slug.
*/
func TestGetComic_ByIDOrSlug(t *testing.T) {
	service, _ := newService(t)
	created := mustCreate(t, service, "Solo Leveling", "solo-leveling", "")
	uuidSlug := mustCreate(t, service, "Odd", "0190f5b4-7c1e-7a3b-9d2e-4f5a6b7c8d9e", "")

	byID, err := service.GetComic(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byID.ID)

	bySlug, err := service.GetComic(context.Background(), "solo-leveling")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)

	fallback, err := service.GetComic(context.Background(), uuidSlug.Slug)
	require.NoError(t, err)
	assert.Equal(t, uuidSlug.ID, fallback.ID)

	_, err = service.GetComic(context.Background(), "missing")
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestListComics_StatusFilterIsExactSubset verifies the listing filter.
*/
func TestListComics_StatusFilterIsExactSubset(t *testing.T) {
	service, _ := newService(t)
	mustCreate(t, service, "A", "a", comic.StatusOngoing)
	mustCreate(t, service, "B", "b", comic.StatusCompleted)
	mustCreate(t, service, "C", "c", comic.StatusCompleted)
	mustCreate(t, service, "D", "d", comic.StatusHiatus)

	for _, status := range comic.Statuses {
		comics, err := service.ListComics(context.Background(), comic.Filter{Status: status})
		require.NoError(t, err)
		for _, item := range comics {
			assert.Equal(t, status, item.Status)
		}
	}

	completed, _ := service.ListComics(context.Background(), comic.Filter{Status: comic.StatusCompleted})
	assert.Len(t, completed, 2)
}

/*
TestListComics_Sorting verifies recent, title and chapter-count orders.
*/
func TestListComics_Sorting(t *testing.T) {
	service, db := newService(t)
	first := mustCreate(t, service, "beta", "beta", "")
	second := mustCreate(t, service, "Alpha", "alpha", "")

	_ = db.Update(func(tx *memdb.Tx) error {
		tx.PutChapter(memdb.ChapterRow{ID: "ch1", ComicID: first.ID, Number: 1})
		return nil
	})

	recent, _ := service.ListComics(context.Background(), comic.Filter{Sort: comic.SortRecent})
	require.Len(t, recent, 2)
	assert.Equal(t, second.ID, recent[0].ID)

	byTitle, _ := service.ListComics(context.Background(), comic.Filter{Sort: comic.SortTitle})
	assert.Equal(t, "Alpha", byTitle[0].Title)

	byChapters, _ := service.ListComics(context.Background(), comic.Filter{Sort: comic.SortChapters})
	assert.Equal(t, first.ID, byChapters[0].ID)
	assert.Equal(t, 1, byChapters[0].ChapterCount)
}

/*
TestListComics_TitleOrderIsBytewise verifies the title sort compares lowercased
titles byte by byte, so punctuation sorts first and accented letters last.
*/
func TestListComics_TitleOrderIsBytewise(t *testing.T) {
	service, _ := newService(t)
	for _, title := range []string{"Zed", "Éclair", "(Untitled)", "Apple Pie", "apple"} {
		mustCreate(t, service, title, slug.From(title), "")
	}

	byTitle, err := service.ListComics(context.Background(), comic.Filter{Sort: comic.SortTitle})
	require.NoError(t, err)

	var titles []string
	for _, c := range byTitle {
		titles = append(titles, c.Title)
	}
	assert.Equal(t, []string{"(Untitled)", "apple", "Apple Pie", "Zed", "Éclair"}, titles)
}

/*
TestUpdateComic_Partial verifies patch semantics and slug re-validation.
*/
func TestUpdateComic_Partial(t *testing.T) {
	service, _ := newService(t)
	target := mustCreate(t, service, "Solo Leveling", "solo-leveling", "")
	mustCreate(t, service, "Other", "other", "")
	ctx := context.Background()

	// 1. Partial change keeps untouched fields
	updated, err := service.UpdateComic(ctx, target.ID, comic.Patch{
		Author: pointer.To("Chugong"),
		Status: pointer.To(comic.Status("hiatus")),
	})
	require.NoError(t, err)
	assert.Equal(t, "Solo Leveling", updated.Title)
	assert.Equal(t, "Chugong", updated.Author)
	assert.Equal(t, comic.StatusHiatus, updated.Status)
	assert.True(t, !updated.UpdatedAt.Before(target.UpdatedAt))

	// 2. Title cannot be blanked
	_, err = service.UpdateComic(ctx, target.ID, comic.Patch{Title: pointer.To("")})
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))

	// 3. Slug collision conflicts
	_, err = service.UpdateComic(ctx, target.ID, comic.Patch{Slug: pointer.To("other")})
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))

	// 4. Rename slug then resolve under the new slug only
	_, err = service.UpdateComic(ctx, "solo-leveling", comic.Patch{Slug: pointer.To("solo-leveling-2")})
	require.NoError(t, err)
	_, err = service.GetComic(ctx, "solo-leveling")
	assert.True(t, apperr.IsNotFound(err))

	// 5. Missing target
	_, err = service.UpdateComic(ctx, "ghost", comic.Patch{Author: pointer.To("x")})
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestDeleteComic_CascadesChapters verifies chapters are removed with the comic.
*/
func TestDeleteComic_CascadesChapters(t *testing.T) {
	service, db := newService(t)
	target := mustCreate(t, service, "Solo Leveling", "solo-leveling", "")

	_ = db.Update(func(tx *memdb.Tx) error {
		tx.PutChapter(memdb.ChapterRow{ID: "ch1", ComicID: target.ID, Number: 1})
		return nil
	})

	require.NoError(t, service.DeleteComic(context.Background(), target.ID))

	_ = db.View(func(tx *memdb.Tx) error {
		assert.Empty(t, tx.ChaptersOf(target.ID))
		return nil
	})

	err := service.DeleteComic(context.Background(), target.ID)
	assert.True(t, apperr.IsNotFound(err))
}
