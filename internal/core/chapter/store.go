// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chapter

import "context"

// # Chapter & Page Data Access

// Repository defines the data access contract for chapters and pages.
type Repository interface {

	/*
		ListByComic returns all chapters for a comic, ordered by chapter number.

		Parameters:
		  - context: context.Context
		  - comicID: string (Owner ID)

		Returns:
		  - []*Chapter: Hydrated chapters with pages, empty for an unknown comic
		  - error: Storage failures
	*/
	ListByComic(context context.Context, comicID string) ([]*Chapter, error)

	/*
		FindByID returns the chapter with the given ID.

		Returns:
		  - *Chapter: Hydrated chapter with pages
		  - error: ErrNotFound if missing
	*/
	FindByID(context context.Context, id string) (*Chapter, error)

	/*
		Create persists a chapter and its pages atomically.

		Returns:
		  - error: ErrComicNotFound if the comic is missing, ErrNumberTaken on a duplicate number
	*/
	Create(context context.Context, chapter *Chapter) error

	// Delete removes a chapter and its pages.
	Delete(context context.Context, id string) error
}
