// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic

import (
	"context"
	"fmt"
	"strings"

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

// NewPostgresRepository constructs a PostgreSQL backed comic store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// comicMapping classifies constraint failures on core.comic.
var comicMapping = dberr.Mapping{
	NotFound: ErrNotFound,
	Conflicts: map[string]*apperr.AppError{
		schema.CoreComic.SlugKey: ErrSlugTaken,
	},
}

// selectComic is the projection shared by every read. The chapter count is a
// correlated sub-query so listings and lookups hydrate the same shape.
var selectComic = fmt.Sprintf(`
	SELECT
		c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s,
		(SELECT COUNT(*) FROM %s ch WHERE ch.%s = c.%s) AS chapter_count
	FROM %s c`,
	schema.CoreComic.ID,
	schema.CoreComic.Title,
	schema.CoreComic.Slug,
	schema.CoreComic.Description,
	schema.CoreComic.Author,
	schema.CoreComic.CoverURL,
	schema.CoreComic.Status,
	schema.CoreComic.CreatedAt,
	schema.CoreComic.UpdatedAt,
	schema.CoreChapter.Table, schema.CoreChapter.ComicID, schema.CoreComic.ID,
	schema.CoreComic.Table,
)

/*
List returns every comic matching the filter.

Description: The WHERE clause is assembled from the optional status and search
terms. Search uses ILIKE over title and author with LIKE metacharacters
escaped, so a user typing "100%" matches literally.

Parameters:
  - context: context.Context
  - filter: Filter

Returns:
  - []*Comic: Matching comics, never nil
  - error: Database execution errors
*/
func (repository *postgresRepository) List(context context.Context, filter Filter) ([]*Comic, error) {
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(selectComic)
	queryBuilder.WriteString(" WHERE TRUE")

	// Status Filtering
	if filter.Status != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND c.%s = $%d", schema.CoreComic.Status, argID))
		args = append(args, string(filter.Status))
		argID++
	}

	// Search Query Filtering
	if filter.Search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND (c.%s ILIKE $%d OR c.%s ILIKE $%d)",
			schema.CoreComic.Title, argID, schema.CoreComic.Author, argID))
		args = append(args, likePattern(filter.Search))
	}

	// Apply Sorting
	order := fmt.Sprintf("c.%s DESC", schema.CoreComic.CreatedAt)
	switch filter.Sort {
	case SortChapters:
		order = "chapter_count DESC"
	case SortTitle:
		// Byte order, matching the in-memory store regardless of the database locale
		order = fmt.Sprintf(`lower(c.%s) COLLATE "C" ASC`, schema.CoreComic.Title)
	}
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s, c.%s DESC", order, schema.CoreComic.ID))

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list comics", comicMapping)
	}
	defer rows.Close()

	comics := make([]*Comic, 0)
	for rows.Next() {
		comic, err := scanComic(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan comic", comicMapping)
		}
		comics = append(comics, comic)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate comics", comicMapping)
	}

	return comics, nil
}

// FindByID retrieves a comic by primary key. A malformed UUID is reported as not found.
func (repository *postgresRepository) FindByID(context context.Context, id string) (*Comic, error) {
	query := fmt.Sprintf("%s WHERE c.%s = $1", selectComic, schema.CoreComic.ID)

	comic, err := scanComic(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find comic by id", comicMapping)
	}

	return comic, nil
}

// FindBySlug retrieves a comic by its unique slug.
func (repository *postgresRepository) FindBySlug(context context.Context, slug string) (*Comic, error) {
	query := fmt.Sprintf("%s WHERE c.%s = $1", selectComic, schema.CoreComic.Slug)

	comic, err := scanComic(repository.pool.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "find comic by slug", comicMapping)
	}

	return comic, nil
}

/*
Create inserts a new comic row.

Description: Slug uniqueness is left to the comic_slug_key constraint; two
concurrent creates with the same slug resolve to one success and one
ErrSlugTaken.
*/
func (repository *postgresRepository) Create(context context.Context, comic *Comic) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		schema.CoreComic.Table,
		schema.CoreComic.ID,
		schema.CoreComic.Title,
		schema.CoreComic.Slug,
		schema.CoreComic.Description,
		schema.CoreComic.Author,
		schema.CoreComic.CoverURL,
		schema.CoreComic.Status,
		schema.CoreComic.CreatedAt,
		schema.CoreComic.UpdatedAt,
	)

	_, err := repository.pool.Exec(context, query,
		comic.ID,
		comic.Title,
		comic.Slug,
		comic.Description,
		comic.Author,
		comic.CoverURL,
		string(comic.Status),
		comic.CreatedAt,
		comic.UpdatedAt,
	)

	return dberr.Wrap(err, "create comic", comicMapping)
}

// Update overwrites the mutable columns of an existing comic.
func (repository *postgresRepository) Update(context context.Context, comic *Comic) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8
		WHERE %s = $1
	`,
		schema.CoreComic.Table,
		schema.CoreComic.Title,
		schema.CoreComic.Slug,
		schema.CoreComic.Description,
		schema.CoreComic.Author,
		schema.CoreComic.CoverURL,
		schema.CoreComic.Status,
		schema.CoreComic.UpdatedAt,
		schema.CoreComic.ID,
	)

	tag, err := repository.pool.Exec(context, query,
		comic.ID,
		comic.Title,
		comic.Slug,
		comic.Description,
		comic.Author,
		comic.CoverURL,
		string(comic.Status),
		comic.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "update comic", comicMapping)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a comic row. Chapters and pages go with it through ON DELETE CASCADE.
func (repository *postgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.CoreComic.Table, schema.CoreComic.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete comic", comicMapping)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// # Internal Helpers

// scanComic reads one row of the [selectComic] projection.
func scanComic(row pgx.Row) (*Comic, error) {
	comic := &Comic{}
	var status string

	err := row.Scan(
		&comic.ID,
		&comic.Title,
		&comic.Slug,
		&comic.Description,
		&comic.Author,
		&comic.CoverURL,
		&status,
		&comic.CreatedAt,
		&comic.UpdatedAt,
		&comic.ChapterCount,
	)
	if err != nil {
		return nil, err
	}

	comic.Status = Status(status)
	return comic, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps term for a substring ILIKE match with metacharacters escaped.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
