// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package memdb is a process-local relational store used when STORE_DRIVER=memory
and by the HTTP test suites.

It mirrors the PostgreSQL schema: a comic table, a chapter table keyed to its
comic, and the same cascade on delete. Every read runs under [DB.View] and every
write under [DB.Update], so a check-then-insert inside one Update is atomic in
the same way a unique index is.

Rows are stored by value and copied on the way in and out; callers never share
memory with the store.
*/
package memdb

import (
	"slices"
	"sync"
	"time"
)

// ComicRow is one row of the comic table.
type ComicRow struct {
	ID          string
	Title       string
	Slug        string
	Description string
	Author      string
	CoverURL    string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ChapterRow is one row of the chapter table, with its pages inlined.
type ChapterRow struct {
	ID        string
	ComicID   string
	Number    float64
	Title     string
	Pages     []string
	CreatedAt time.Time
}

// DB holds the tables behind a single lock.
type DB struct {
	mu       sync.RWMutex
	comics   map[string]ComicRow
	chapters map[string]ChapterRow
}

// New returns an empty database.
func New() *DB {
	return &DB{
		comics:   make(map[string]ComicRow),
		chapters: make(map[string]ChapterRow),
	}
}

// Tx is a handle to the tables valid only inside View or Update.
type Tx struct {
	db       *DB
	writable bool
}

// View runs fn with shared read access.
func (db *DB) View(fn func(tx *Tx) error) error {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return fn(&Tx{db: db})
}

// Update runs fn with exclusive access. Writes made before fn returns an error
// are kept; callers validate before mutating.
func (db *DB) Update(fn func(tx *Tx) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return fn(&Tx{db: db, writable: true})
}

func (tx *Tx) mustWrite() {
	if !tx.writable {
		panic("memdb: write inside a read-only transaction")
	}
}

// # Comics

// Comic returns the comic with the given id.
func (tx *Tx) Comic(id string) (ComicRow, bool) {
	row, found := tx.db.comics[id]
	return row, found
}

// ComicBySlug returns the comic with the given slug.
func (tx *Tx) ComicBySlug(slug string) (ComicRow, bool) {
	for _, row := range tx.db.comics {
		if row.Slug == slug {
			return row, true
		}
	}
	return ComicRow{}, false
}

// Comics returns every comic in no particular order.
func (tx *Tx) Comics() []ComicRow {
	rows := make([]ComicRow, 0, len(tx.db.comics))
	for _, row := range tx.db.comics {
		rows = append(rows, row)
	}
	return rows
}

// PutComic inserts or replaces a comic.
func (tx *Tx) PutComic(row ComicRow) {
	tx.mustWrite()
	tx.db.comics[row.ID] = row
}

// DeleteComic removes a comic and its chapters. It reports whether the comic existed.
func (tx *Tx) DeleteComic(id string) bool {
	tx.mustWrite()
	if _, found := tx.db.comics[id]; !found {
		return false
	}

	delete(tx.db.comics, id)
	for chapterID, chapter := range tx.db.chapters {
		if chapter.ComicID == id {
			delete(tx.db.chapters, chapterID)
		}
	}
	return true
}

// # Chapters

// Chapter returns the chapter with the given id.
func (tx *Tx) Chapter(id string) (ChapterRow, bool) {
	row, found := tx.db.chapters[id]
	if !found {
		return ChapterRow{}, false
	}
	row.Pages = slices.Clone(row.Pages)
	return row, true
}

// ChaptersOf returns the chapters of a comic ordered by number.
func (tx *Tx) ChaptersOf(comicID string) []ChapterRow {
	rows := make([]ChapterRow, 0)
	for _, row := range tx.db.chapters {
		if row.ComicID == comicID {
			row.Pages = slices.Clone(row.Pages)
			rows = append(rows, row)
		}
	}

	slices.SortFunc(rows, func(a, b ChapterRow) int {
		switch {
		case a.Number < b.Number:
			return -1
		case a.Number > b.Number:
			return 1
		default:
			return 0
		}
	})
	return rows
}

// ChapterCount returns how many chapters a comic has.
func (tx *Tx) ChapterCount(comicID string) int {
	count := 0
	for _, row := range tx.db.chapters {
		if row.ComicID == comicID {
			count++
		}
	}
	return count
}

// TotalChapters returns the size of the chapter table.
func (tx *Tx) TotalChapters() int {
	return len(tx.db.chapters)
}

// HasChapterNumber reports whether the comic already has a chapter with this number.
func (tx *Tx) HasChapterNumber(comicID string, number float64) bool {
	for _, row := range tx.db.chapters {
		if row.ComicID == comicID && row.Number == number {
			return true
		}
	}
	return false
}

// PutChapter inserts or replaces a chapter.
func (tx *Tx) PutChapter(row ChapterRow) {
	tx.mustWrite()
	row.Pages = slices.Clone(row.Pages)
	tx.db.chapters[row.ID] = row
}

// DeleteChapter removes a chapter. It reports whether the chapter existed.
func (tx *Tx) DeleteChapter(id string) bool {
	tx.mustWrite()
	if _, found := tx.db.chapters[id]; !found {
		return false
	}
	delete(tx.db.chapters, id)
	return true
}
