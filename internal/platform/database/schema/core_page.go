// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CorePageTable represents the 'core.page' table
type CorePageTable struct {
	Table      string
	ChapterID  string
	PageNumber string
	ImageURL   string
}

// CorePage is the schema definition for core.page
var CorePage = CorePageTable{
	Table:      "core.page",
	ChapterID:  "chapterid",
	PageNumber: "pagenumber",
	ImageURL:   "imageurl",
}

// Columns returns the selectable columns in scan order.
func (t CorePageTable) Columns() []string {
	return []string{t.ChapterID, t.PageNumber, t.ImageURL}
}
