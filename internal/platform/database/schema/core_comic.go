// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema holds the table and column names of the relational store so
// queries never spell identifiers by hand.
package schema

// CoreComicTable represents the 'core.comic' table
type CoreComicTable struct {
	Table       string
	ID          string
	Title       string
	Slug        string
	Description string
	Author      string
	CoverURL    string
	Status      string
	CreatedAt   string
	UpdatedAt   string

	// SlugKey is the unique constraint guarding Slug.
	SlugKey string
}

// CoreComic is the schema definition for core.comic
var CoreComic = CoreComicTable{
	Table:       "core.comic",
	ID:          "id",
	Title:       "title",
	Slug:        "slug",
	Description: "description",
	Author:      "author",
	CoverURL:    "coverurl",
	Status:      "status",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
	SlugKey:     "comic_slug_key",
}

// Columns returns the selectable columns in scan order.
func (t CoreComicTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Slug, t.Description, t.Author,
		t.CoverURL, t.Status, t.CreatedAt, t.UpdatedAt,
	}
}
