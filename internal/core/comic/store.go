// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic

import "context"

// # Comic Data Access

// Repository defines the data access contract for the comic domain.
type Repository interface {

	/*
		List returns every comic matching the filter, in the filter's order.

		Parameters:
		  - context: context.Context
		  - filter: Filter (Status, search and sort)

		Returns:
		  - []*Comic: Matching comics with their chapter counts
		  - error: Database retrieval failures
	*/
	List(context context.Context, filter Filter) ([]*Comic, error)

	/*
		FindByID returns the comic with the given ID.

		Returns:
		  - *Comic: The hydrated domain entity
		  - error: ErrNotFound if missing
	*/
	FindByID(context context.Context, id string) (*Comic, error)

	/*
		FindBySlug returns the comic with the given slug.

		Returns:
		  - *Comic: The hydrated domain entity
		  - error: ErrNotFound if missing
	*/
	FindBySlug(context context.Context, slug string) (*Comic, error)

	/*
		Create persists a new comic.

		Returns:
		  - error: ErrSlugTaken if the slug is in use
	*/
	Create(context context.Context, comic *Comic) error

	/*
		Update persists every mutable field of an existing comic.

		Returns:
		  - error: ErrNotFound if missing, ErrSlugTaken on a slug collision
	*/
	Update(context context.Context, comic *Comic) error

	// Delete removes a comic and, by cascade, its chapters.
	Delete(context context.Context, id string) error
}
