// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package chapter manages the numbered installments of a comic and their pages.

A chapter always belongs to an existing comic and its number is unique within
that comic. Both rules are enforced by the store in the same step as the
insert, so concurrent uploads cannot break them.
*/
package chapter

import (
	"time"

	"github.com/taibuivan/webtoon/internal/platform/apperr"
)

// # Field Identifiers

const (
	FieldComicID = "comic_id"
	FieldNumber  = "number"
	FieldTitle   = "title"
	FieldPages   = "pages"
)

// MaxTitleLength caps chapter titles.
const MaxTitleLength = 500

// # Domain Entity

// Chapter is one installment of a comic.
type Chapter struct {
	ID      string `json:"id"`
	ComicID string `json:"comic_id"`

	// Number supports fractional installments such as 12.5.
	Number float64 `json:"number"`
	Title  string  `json:"title"`

	// Pages holds the ordered page image references.
	Pages     []string  `json:"pages"`
	CreatedAt time.Time `json:"created_at"`
}

// # Domain Errors

var (
	// ErrNotFound is returned when no chapter matches the id.
	ErrNotFound = apperr.NotFound("Chapter")

	// ErrComicNotFound is returned when the referenced comic does not exist.
	ErrComicNotFound = apperr.NotFound("Comic")

	// ErrNumberTaken is returned when the comic already has a chapter with this number.
	ErrNumberTaken = apperr.Conflict("This comic already has a chapter with that number")
)
