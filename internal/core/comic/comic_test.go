// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/webtoon/internal/core/comic"
	"github.com/taibuivan/webtoon/internal/platform/apperr"
	"github.com/taibuivan/webtoon/pkg/pointer"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in     string
		want   comic.Status
		wantOK bool
	}{
		{"Ongoing", comic.StatusOngoing, true},
		{"completed", comic.StatusCompleted, true},
		{" HIATUS ", comic.StatusHiatus, true},
		{"cancelled", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := comic.ParseStatus(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		in      string
		want    comic.Sort
		wantErr bool
	}{
		{"", comic.SortRecent, false},
		{"Latest", comic.SortRecent, false},
		{"most-recent", comic.SortRecent, false},
		{"most-chapters", comic.SortChapters, false},
		{"title", comic.SortTitle, false},
		{"rating", "", true},
		{"highest-rating", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := comic.ParseSort(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilter_Matches(t *testing.T) {
	subject := &comic.Comic{Title: "Solo Leveling", Author: "Chugong", Status: comic.StatusCompleted}

	tests := []struct {
		name   string
		filter comic.Filter
		want   bool
	}{
		{"empty", comic.Filter{}, true},
		{"status_match", comic.Filter{Status: comic.StatusCompleted}, true},
		{"status_miss", comic.Filter{Status: comic.StatusOngoing}, false},
		{"title_substring_any_case", comic.Filter{Search: "LEVEL"}, true},
		{"author_substring", comic.Filter{Search: "chug"}, true},
		{"search_miss", comic.Filter{Search: "tower"}, false},
		{"both_terms", comic.Filter{Status: comic.StatusCompleted, Search: "solo"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(subject))
		})
	}
}

func TestPatch_Apply(t *testing.T) {
	subject := &comic.Comic{Title: "Old", Slug: "old", Description: "desc", Author: "someone", Status: comic.StatusOngoing}

	comic.Patch{
		Title:       pointer.To("New"),
		Description: pointer.To(""),
		Status:      pointer.To(comic.StatusHiatus),
	}.Apply(subject)

	assert.Equal(t, "New", subject.Title)
	assert.Equal(t, "old", subject.Slug)
	assert.Empty(t, subject.Description)
	assert.Equal(t, "someone", subject.Author)
	assert.Equal(t, comic.StatusHiatus, subject.Status)
}
