// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package portal

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/taibuivan/webtoon/internal/core/comic"
)

// # Palette

var (
	primary = lipgloss.Color("#FF6B9D")
	accent  = lipgloss.Color("99")
	muted   = lipgloss.Color("#546E7A")

	titleStyle  = lipgloss.NewStyle().Foreground(primary).Bold(true).MarginBottom(1)
	mutedStyle  = lipgloss.NewStyle().Foreground(muted)
	headerStyle = lipgloss.NewStyle().Foreground(accent).Bold(true).Align(lipgloss.Center)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)

	statusStyles = map[comic.Status]lipgloss.Style{
		comic.StatusOngoing:   lipgloss.NewStyle().Foreground(lipgloss.Color("#82AAFF")),
		comic.StatusCompleted: lipgloss.NewStyle().Foreground(lipgloss.Color("#C3E88D")),
		comic.StatusHiatus:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFCB6B")),
	}
)

// newTable returns a bordered table with the dashboard header style.
// Columns listed in numeric are right aligned.
func newTable(headers []string, numeric ...int) *table.Table {
	right := make(map[int]bool, len(numeric))
	for _, col := range numeric {
		right[col] = true
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(accent)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case right[col]:
				return numberStyle
			default:
				return cellStyle
			}
		}).
		Headers(headers...)
}

// comicTable renders comics with their status and chapter count.
func comicTable(comics []comic.Comic) *table.Table {
	t := newTable([]string{"#", "Title", "Slug", "Author", "Status", "Chapters"}, 0, 5)
	for i, c := range comics {
		t.Row(
			strconv.Itoa(i+1),
			truncate(c.Title, 40),
			truncate(c.Slug, 30),
			truncate(c.Author, 24),
			statusLabel(c.Status),
			strconv.Itoa(c.ChapterCount),
		)
	}
	return t
}

func statusLabel(status comic.Status) string {
	if style, ok := statusStyles[status]; ok {
		return style.Render(string(status))
	}
	return string(status)
}

// formatNumber prints chapter numbers without trailing zeros (12, 12.5).
func formatNumber(number float64) string {
	return strconv.FormatFloat(number, 'f', -1, 64)
}

// truncate shortens s to at most limit runes, marking the cut with an ellipsis.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 1 {
		return string(runes[:limit])
	}
	return fmt.Sprintf("%s…", string(runes[:limit-1]))
}
