// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CoreChapterTable represents the 'core.chapter' table
type CoreChapterTable struct {
	Table     string
	ID        string
	ComicID   string
	Number    string
	Title     string
	CreatedAt string

	// NumberKey is the unique constraint over (ComicID, Number).
	NumberKey string
}

// CoreChapter is the schema definition for core.chapter
var CoreChapter = CoreChapterTable{
	Table:     "core.chapter",
	ID:        "id",
	ComicID:   "comicid",
	Number:    "chapternumber",
	Title:     "title",
	CreatedAt: "createdat",
	NumberKey: "chapter_comic_number_key",
}

// Columns returns the selectable columns in scan order.
func (t CoreChapterTable) Columns() []string {
	return []string{t.ID, t.ComicID, t.Number, t.Title, t.CreatedAt}
}
