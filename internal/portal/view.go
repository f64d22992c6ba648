// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package portal

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/taibuivan/webtoon/internal/core/comic"
	"github.com/taibuivan/webtoon/internal/platform/validate"
	"github.com/taibuivan/webtoon/pkg/slug"
)

// View is one dashboard screen. Render fetches its own data from a [Source].
type View interface {
	Name() string
	Render(ctx context.Context, out io.Writer) error
}

// Names of the built-in views.
const (
	ViewHome     = "home"
	ViewBrowse   = "browse"
	ViewAdd      = "add"
	ViewStats    = "stats"
	ViewChapters = "chapters"
)

// RecentLimit is how many comics the home view lists.
const RecentLimit = 3

// # Home

// HomeView shows headline counts and the most recent comics.
type HomeView struct {
	Source Source
}

func (HomeView) Name() string { return ViewHome }

func (view HomeView) Render(ctx context.Context, out io.Writer) error {
	summary, err := view.Source.Summary(ctx)
	if err != nil {
		return err
	}

	recent, err := view.Source.ListComics(ctx, ComicQuery{Sort: string(comic.SortRecent)})
	if err != nil {
		return err
	}
	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}

	fmt.Fprintln(out, titleStyle.Render("Webtoon Reader"))
	fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("%d comics · %d chapters", summary.TotalComics, summary.TotalChapters)))
	fmt.Fprintln(out)

	if len(recent) == 0 {
		fmt.Fprintln(out, "No comics yet. Use 'portal add' to create one.")
		return nil
	}

	fmt.Fprintln(out, "Recently added")
	fmt.Fprintln(out, comicTable(recent))
	return nil
}

// # Browse

// BrowseView lists comics matching a search, status and sort order.
type BrowseView struct {
	Source Source
	Query  ComicQuery
}

func (BrowseView) Name() string { return ViewBrowse }

func (view BrowseView) Render(ctx context.Context, out io.Writer) error {
	comics, err := view.Source.ListComics(ctx, view.Query)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Browse (%d)", len(comics))))
	if len(comics) == 0 {
		fmt.Fprintln(out, "No comics match the current filters.")
		return nil
	}

	fmt.Fprintln(out, comicTable(comics))
	return nil
}

// # Add Comic

// AddView creates a comic. An empty slug is derived from the title.
type AddView struct {
	Source Source
	Input  NewComic
}

func (AddView) Name() string { return ViewAdd }

// Prepare trims the input, derives a missing slug and checks the required
// fields without contacting the API.
func (view AddView) Prepare() (NewComic, error) {
	input := view.Input
	input.Title = strings.TrimSpace(input.Title)
	input.Slug = strings.TrimSpace(input.Slug)
	if input.Slug == "" {
		input.Slug = slug.From(input.Title)
	}

	validator := &validate.Validator{}
	validator.
		Required(comic.FieldTitle, input.Title).
		Required(comic.FieldSlug, input.Slug)
	if err := validator.Err(); err != nil {
		return NewComic{}, err
	}
	return input, nil
}

func (view AddView) Render(ctx context.Context, out io.Writer) error {
	input, err := view.Prepare()
	if err != nil {
		return err
	}

	created, err := view.Source.CreateComic(ctx, input)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, titleStyle.Render("Comic created"))
	fmt.Fprintln(out, comicTable([]comic.Comic{*created}))
	fmt.Fprintln(out, mutedStyle.Render("id: "+created.ID))
	return nil
}

// # Statistics

// StatsView prints the catalogue counts per status.
type StatsView struct {
	Source Source
}

func (StatsView) Name() string { return ViewStats }

func (view StatsView) Render(ctx context.Context, out io.Writer) error {
	summary, err := view.Source.Summary(ctx)
	if err != nil {
		return err
	}

	t := newTable([]string{"Metric", "Count"}, 1)
	t.Row("Comics", strconv.Itoa(summary.TotalComics))
	t.Row("Chapters", strconv.Itoa(summary.TotalChapters))
	for _, status := range comic.Statuses {
		t.Row(statusLabel(status), strconv.Itoa(summary.ComicsByStatus[status]))
	}

	fmt.Fprintln(out, titleStyle.Render("Statistics"))
	fmt.Fprintln(out, t)
	return nil
}

// # Chapters

// ChaptersView lists the chapters of one comic, addressed by id or slug.
type ChaptersView struct {
	Source Source
	Comic  string
}

func (ChaptersView) Name() string { return ViewChapters }

func (view ChaptersView) Render(ctx context.Context, out io.Writer) error {
	if strings.TrimSpace(view.Comic) == "" {
		return validate.FieldError("comic", "is required")
	}

	chapters, err := view.Source.ListChapters(ctx, view.Comic)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Chapters of %s (%d)", view.Comic, len(chapters))))
	if len(chapters) == 0 {
		fmt.Fprintln(out, "No chapters yet.")
		return nil
	}

	t := newTable([]string{"Number", "Title", "Pages", "Added"}, 0, 2)
	for _, c := range chapters {
		t.Row(
			formatNumber(c.Number),
			truncate(c.Title, 40),
			strconv.Itoa(len(c.Pages)),
			c.CreatedAt.Format("2006-01-02"),
		)
	}
	fmt.Fprintln(out, t)
	return nil
}
