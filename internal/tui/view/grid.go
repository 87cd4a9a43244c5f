package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mgalindo/wpeek/internal/wp"
)

// GridOptions controls the multi-column grid layout.
type GridOptions struct {
	Width      int
	Size       string
	Cursor     int
	ShowImages bool
	Styles     ItemStyles
}

// GridColumns returns how many card columns fit in the given width for an
// item size. Never less than one.
func GridColumns(width int, size string) int {
	cardWidth := gridCardWidth(size)
	cols := width / cardWidth
	if cols < 1 {
		cols = 1
	}
	return cols
}

func gridCardWidth(size string) int {
	switch size {
	case SizeSmall:
		return 24
	case SizeLarge:
		return 48
	default:
		return 36
	}
}

// RenderGrid renders items as rows of fixed-width cards.
func RenderGrid(items []wp.ContentItem, opts GridOptions) string {
	if len(items) == 0 {
		return ""
	}
	cols := GridColumns(opts.Width, opts.Size)
	cardWidth := opts.Width / cols

	rows := make([]string, 0, (len(items)+cols-1)/cols)
	for start := 0; start < len(items); start += cols {
		end := start + cols
		if end > len(items) {
			end = len(items)
		}
		cells := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cells = append(cells, RenderItem(items[i], ItemOptions{
				Width:      cardWidth,
				Size:       opts.Size,
				Selected:   i == opts.Cursor,
				ShowImages: opts.ShowImages,
				Styles:     opts.Styles,
			}))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}
