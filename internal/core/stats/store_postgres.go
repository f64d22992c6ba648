// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package stats

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/webtoon/internal/core/comic"
	"github.com/taibuivan/webtoon/internal/platform/database/schema"
	"github.com/taibuivan/webtoon/internal/platform/dberr"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed stats store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

/*
Summary counts comics per status and chapters in total.

Description: Both statements are pipelined in one [pgx.Batch] inside a
read-only snapshot, so the totals agree with each other.
*/
func (repository *postgresRepository) Summary(context context.Context) (*Summary, error) {
	summary := newSummary()

	err := pgx.BeginTxFunc(context, repository.pool, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	}, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}

		batch.Queue(fmt.Sprintf("SELECT %s, COUNT(*) FROM %s GROUP BY %s",
			schema.CoreComic.Status, schema.CoreComic.Table, schema.CoreComic.Status,
		)).Query(func(rows pgx.Rows) error {
			var status string
			var count int
			_, err := pgx.ForEachRow(rows, []any{&status, &count}, func() error {
				summary.ComicsByStatus[comic.Status(status)] = count
				summary.TotalComics += count
				return nil
			})
			return err
		})

		batch.Queue(fmt.Sprintf("SELECT COUNT(*) FROM %s", schema.CoreChapter.Table)).
			QueryRow(func(row pgx.Row) error {
				return row.Scan(&summary.TotalChapters)
			})

		return tx.SendBatch(context, batch).Close()
	})
	if err != nil {
		return nil, dberr.Wrap(err, "compute stats", dberr.Mapping{})
	}

	return summary, nil
}
