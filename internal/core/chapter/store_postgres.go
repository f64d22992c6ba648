// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chapter

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/webtoon/internal/platform/apperr"
	"github.com/taibuivan/webtoon/internal/platform/database/schema"
	"github.com/taibuivan/webtoon/internal/platform/dberr"
)

// # PostgreSQL Repository

// postgresRepository implements [Repository] using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed chapter store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// readMapping classifies lookup failures; a malformed id is simply absent.
var readMapping = dberr.Mapping{NotFound: ErrNotFound}

// writeMapping classifies insert failures on core.chapter and core.page.
var writeMapping = dberr.Mapping{
	NotFound: ErrComicNotFound,
	Conflicts: map[string]*apperr.AppError{
		schema.CoreChapter.NumberKey: ErrNumberTaken,
	},
}

// selectChapter aggregates the ordered page list into a text[] so a chapter
// hydrates in one round-trip.
var selectChapter = fmt.Sprintf(`
	SELECT
		ch.%s, ch.%s, ch.%s, ch.%s, ch.%s,
		COALESCE((
			SELECT array_agg(p.%s ORDER BY p.%s)
			FROM %s p
			WHERE p.%s = ch.%s
		), '{}') AS pages
	FROM %s ch`,
	schema.CoreChapter.ID,
	schema.CoreChapter.ComicID,
	schema.CoreChapter.Number,
	schema.CoreChapter.Title,
	schema.CoreChapter.CreatedAt,
	schema.CorePage.ImageURL, schema.CorePage.PageNumber,
	schema.CorePage.Table,
	schema.CorePage.ChapterID, schema.CoreChapter.ID,
	schema.CoreChapter.Table,
)

// ListByComic returns the chapters of a comic by ascending number.
func (repository *postgresRepository) ListByComic(context context.Context, comicID string) ([]*Chapter, error) {
	query := fmt.Sprintf("%s WHERE ch.%s = $1 ORDER BY ch.%s ASC",
		selectChapter, schema.CoreChapter.ComicID, schema.CoreChapter.Number)

	rows, err := repository.pool.Query(context, query, comicID)
	if err != nil {
		return nil, dberr.Wrap(err, "list chapters", readMapping)
	}
	defer rows.Close()

	chapters := make([]*Chapter, 0)
	for rows.Next() {
		chapter, err := scanChapter(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan chapter", readMapping)
		}
		chapters = append(chapters, chapter)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate chapters", readMapping)
	}

	return chapters, nil
}

// FindByID retrieves a chapter with its pages.
func (repository *postgresRepository) FindByID(context context.Context, id string) (*Chapter, error) {
	query := fmt.Sprintf("%s WHERE ch.%s = $1", selectChapter, schema.CoreChapter.ID)

	chapter, err := scanChapter(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find chapter", readMapping)
	}

	return chapter, nil
}

/*
Create inserts the chapter row and its pages in one transaction.

Description: The foreign key on comicid rejects a missing comic and the
(comicid, chapternumber) unique constraint rejects a duplicate number, so
neither rule needs a separate read. Pages are pipelined with [pgx.Batch] to
keep multi-page uploads to one round-trip.
*/
func (repository *postgresRepository) Create(context context.Context, chapter *Chapter) (err error) {
	tx, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin chapter transaction", writeMapping)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(context)
		}
	}()

	insertChapter := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
	`,
		schema.CoreChapter.Table,
		schema.CoreChapter.ID,
		schema.CoreChapter.ComicID,
		schema.CoreChapter.Number,
		schema.CoreChapter.Title,
		schema.CoreChapter.CreatedAt,
	)

	if _, err = tx.Exec(context, insertChapter,
		chapter.ID,
		chapter.ComicID,
		chapter.Number,
		chapter.Title,
		chapter.CreatedAt,
	); err != nil {
		return dberr.Wrap(err, "create chapter", writeMapping)
	}

	if len(chapter.Pages) > 0 {
		insertPage := fmt.Sprintf("INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)",
			schema.CorePage.Table, schema.CorePage.ChapterID, schema.CorePage.PageNumber, schema.CorePage.ImageURL)

		batch := &pgx.Batch{}
		for index, imageURL := range chapter.Pages {
			batch.Queue(insertPage, chapter.ID, index+1, imageURL)
		}

		if err = tx.SendBatch(context, batch).Close(); err != nil {
			return dberr.Wrap(err, "create pages", writeMapping)
		}
	}

	if err = tx.Commit(context); err != nil {
		return dberr.Wrap(err, "commit chapter", writeMapping)
	}

	return nil
}

// Delete removes a chapter. Pages go with it through ON DELETE CASCADE.
func (repository *postgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.CoreChapter.Table, schema.CoreChapter.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete chapter", readMapping)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// # Internal Helpers

// scanChapter reads one row of the [selectChapter] projection.
func scanChapter(row pgx.Row) (*Chapter, error) {
	chapter := &Chapter{}

	err := row.Scan(
		&chapter.ID,
		&chapter.ComicID,
		&chapter.Number,
		&chapter.Title,
		&chapter.CreatedAt,
		&chapter.Pages,
	)
	if err != nil {
		return nil, err
	}

	if chapter.Pages == nil {
		chapter.Pages = []string{}
	}
	return chapter, nil
}
