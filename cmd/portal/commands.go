// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"github.com/spf13/cobra"

	"github.com/taibuivan/webtoon/internal/portal"
)

// app carries the flags shared by every view command.
type app struct {
	apiURL string
	demo   bool
	source portal.Source
}

func newRootCommand() *cobra.Command {
	state := &app{}

	root := &cobra.Command{
		Use:           "portal",
		Short:         "Webtoon Reader dashboard",
		Long:          "Browse, add and inspect comics served by the Webtoon Reader API",
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return state.connect(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return state.render(cmd, portal.HomeView{Source: state.source})
		},
	}

	root.PersistentFlags().StringVar(&state.apiURL, "api-url", "", "API base URL (overrides WEBTOON_API_URL)")
	root.PersistentFlags().BoolVar(&state.demo, "demo", false, "Render the built-in read-only sample catalogue")

	root.AddCommand(
		state.homeCommand(),
		state.browseCommand(),
		state.addCommand(),
		state.statsCommand(),
		state.chaptersCommand(),
	)

	return root
}

// connect selects the data source before any view runs.
func (state *app) connect(cmd *cobra.Command) error {
	if state.demo {
		demo, err := portal.NewDemo(cmd.Context())
		if err != nil {
			return err
		}
		state.source = demo
		return nil
	}

	cfg, err := portal.LoadConfig()
	if err != nil {
		return err
	}
	if state.apiURL != "" {
		cfg.APIURL = state.apiURL
	}

	state.source = portal.NewClient(cfg)
	return nil
}

func (state *app) render(cmd *cobra.Command, view portal.View) error {
	return view.Render(cmd.Context(), cmd.OutOrStdout())
}

func (state *app) homeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   portal.ViewHome,
		Short: "Show catalogue counts and the newest comics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return state.render(cmd, portal.HomeView{Source: state.source})
		},
	}
}

func (state *app) browseCommand() *cobra.Command {
	var query portal.ComicQuery

	cmd := &cobra.Command{
		Use:   portal.ViewBrowse,
		Short: "List comics with optional search, status and sort",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return state.render(cmd, portal.BrowseView{Source: state.source, Query: query})
		},
	}

	cmd.Flags().StringVarP(&query.Search, "search", "s", "", "Case-insensitive match on title or author")
	cmd.Flags().StringVar(&query.Status, "status", "", "Ongoing, Completed or Hiatus")
	cmd.Flags().StringVar(&query.Sort, "sort", "recent", "recent, chapters or title")
	return cmd
}

func (state *app) addCommand() *cobra.Command {
	var input portal.NewComic

	cmd := &cobra.Command{
		Use:   portal.ViewAdd,
		Short: "Create a comic",
		Long:  "Create a comic. When --slug is omitted it is derived from the title.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return state.render(cmd, portal.AddView{Source: state.source, Input: input})
		},
	}

	cmd.Flags().StringVarP(&input.Title, "title", "t", "", "Comic title (required)")
	cmd.Flags().StringVar(&input.Slug, "slug", "", "URL slug, derived from the title when empty")
	cmd.Flags().StringVarP(&input.Description, "description", "d", "", "Synopsis")
	cmd.Flags().StringVarP(&input.Author, "author", "a", "", "Author name")
	cmd.Flags().StringVar(&input.CoverURL, "cover-url", "", "Absolute http(s) cover image URL")
	cmd.Flags().StringVar(&input.Status, "status", "", "Ongoing, Completed or Hiatus (default Ongoing)")
	return cmd
}

func (state *app) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   portal.ViewStats,
		Short: "Show catalogue statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return state.render(cmd, portal.StatsView{Source: state.source})
		},
	}
}

func (state *app) chaptersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   portal.ViewChapters + " <comic-id-or-slug>",
		Short: "List the chapters of a comic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return state.render(cmd, portal.ChaptersView{Source: state.source, Comic: args[0]})
		},
	}
}
