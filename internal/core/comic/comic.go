// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package comic manages the comic catalogue: creation, discovery, lookup by id
or slug, partial updates and deletion.

A comic owns its chapters. Deleting a comic removes every chapter with it.
*/
package comic

import (
	"strings"
	"time"

	"github.com/taibuivan/webtoon/internal/platform/apperr"
)

// # Field Identifiers

const (
	FieldTitle       = "title"
	FieldSlug        = "slug"
	FieldDescription = "description"
	FieldAuthor      = "author"
	FieldCoverURL    = "cover_url"
	FieldStatus      = "status"
	FieldSort        = "sort"
)

// Length limits enforced on create and update.
const (
	MaxTitleLength  = 500
	MaxSlugLength   = 200
	MaxAuthorLength = 200
)

// # Publication Status

// Status describes where a comic is in its publication lifecycle.
type Status string

const (
	StatusOngoing   Status = "Ongoing"
	StatusCompleted Status = "Completed"
	StatusHiatus    Status = "Hiatus"
)

// Statuses lists every valid [Status] in display order.
var Statuses = []Status{StatusOngoing, StatusCompleted, StatusHiatus}

// ParseStatus resolves a status name case-insensitively.
func ParseStatus(value string) (Status, bool) {
	for _, status := range Statuses {
		if strings.EqualFold(strings.TrimSpace(value), string(status)) {
			return status, true
		}
	}
	return "", false
}

// # Domain Entity

// Comic is a titled serial work with a unique slug.
type Comic struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	Author       string    `json:"author"`
	CoverURL     string    `json:"cover_url"`
	Status       Status    `json:"status"`
	ChapterCount int       `json:"chapter_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Patch carries the fields of a partial update. Nil fields are left unchanged.
type Patch struct {
	Title       *string
	Slug        *string
	Description *string
	Author      *string
	CoverURL    *string
	Status      *Status
}

// Apply copies every non-nil field onto comic.
func (patch Patch) Apply(comic *Comic) {
	if patch.Title != nil {
		comic.Title = *patch.Title
	}
	if patch.Slug != nil {
		comic.Slug = *patch.Slug
	}
	if patch.Description != nil {
		comic.Description = *patch.Description
	}
	if patch.Author != nil {
		comic.Author = *patch.Author
	}
	if patch.CoverURL != nil {
		comic.CoverURL = *patch.CoverURL
	}
	if patch.Status != nil {
		comic.Status = *patch.Status
	}
}

// # Discovery

// Sort orders a comic listing.
type Sort string

const (
	// SortRecent lists the newest comics first.
	SortRecent Sort = "recent"
	// SortChapters lists comics with the most chapters first.
	SortChapters Sort = "chapters"
	// SortTitle lists comics alphabetically.
	SortTitle Sort = "title"
)

var sortAliases = map[string]Sort{
	"":              SortRecent,
	"recent":        SortRecent,
	"latest":        SortRecent,
	"most-recent":   SortRecent,
	"chapters":      SortChapters,
	"most-chapters": SortChapters,
	"title":         SortTitle,
	"az":            SortTitle,
}

// ParseSort resolves a sort key or one of its aliases.
//
// Rating-based orders are rejected because comics carry no rating.
func ParseSort(value string) (Sort, error) {
	if sort, ok := sortAliases[strings.ToLower(strings.TrimSpace(value))]; ok {
		return sort, nil
	}
	return "", apperr.ValidationError("Invalid sort order", apperr.FieldError{
		Field:   FieldSort,
		Message: "Must be one of: recent, chapters, title",
	})
}

// Filter narrows a comic listing.
type Filter struct {
	// Status keeps only comics with this exact status when set.
	Status Status
	// Search is a case-insensitive substring matched against title and author.
	Search string
	Sort   Sort
}

// Matches reports whether comic satisfies the filter's status and search terms.
func (filter Filter) Matches(comic *Comic) bool {
	if filter.Status != "" && comic.Status != filter.Status {
		return false
	}
	if filter.Search == "" {
		return true
	}

	needle := strings.ToLower(filter.Search)
	return strings.Contains(strings.ToLower(comic.Title), needle) ||
		strings.Contains(strings.ToLower(comic.Author), needle)
}

// # Domain Errors

// ErrNotFound is returned when no comic matches an id or slug.
var ErrNotFound = apperr.NotFound("Comic")

// ErrSlugTaken is returned when another comic already uses the slug.
var ErrSlugTaken = apperr.Conflict("A comic with this slug already exists")
