// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package stats reports catalogue-wide counts for the dashboard.
package stats

import (
	"context"
	"log/slog"

	"github.com/taibuivan/webtoon/internal/core/comic"
)

// Summary is a snapshot of catalogue size.
type Summary struct {
	TotalComics    int                  `json:"total_comics"`
	TotalChapters  int                  `json:"total_chapters"`
	ComicsByStatus map[comic.Status]int `json:"comics_by_status"`
}

// newSummary returns a Summary with a zero entry for every status.
func newSummary() *Summary {
	byStatus := make(map[comic.Status]int, len(comic.Statuses))
	for _, status := range comic.Statuses {
		byStatus[status] = 0
	}
	return &Summary{ComicsByStatus: byStatus}
}

// Repository computes a [Summary] from the store.
type Repository interface {
	Summary(context context.Context) (*Summary, error)
}

// Service exposes catalogue statistics.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Summary returns the current counts.
func (service *Service) Summary(context context.Context) (*Summary, error) {
	summary, err := service.repo.Summary(context)
	if err != nil {
		return nil, err
	}

	service.logger.DebugContext(context, "stats_computed",
		slog.Int("total_comics", summary.TotalComics),
		slog.Int("total_chapters", summary.TotalChapters),
	)

	return summary, nil
}
