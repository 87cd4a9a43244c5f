package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mgalindo/wpeek/internal/wp"
)

const maxIndicatorDots = 15

// CarouselOptions controls the one-item-at-a-time layout.
type CarouselOptions struct {
	Width      int
	Size       string
	Cursor     int
	ShowImages bool
	Styles     ItemStyles
	Indicator  lipgloss.Style
	Active     lipgloss.Style
}

// RenderCarousel renders the item under the cursor as a centered card with a
// position indicator below it.
func RenderCarousel(items []wp.ContentItem, opts CarouselOptions) string {
	if len(items) == 0 {
		return ""
	}
	cursor := opts.Cursor
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(items) {
		cursor = len(items) - 1
	}

	cardWidth := opts.Width * 2 / 3
	if cardWidth < 20 {
		cardWidth = opts.Width
	}
	card := RenderItem(items[cursor], ItemOptions{
		Width:      cardWidth,
		Size:       opts.Size,
		Selected:   true,
		ShowImages: opts.ShowImages,
		Styles:     opts.Styles,
	})

	indicator := CarouselIndicator(cursor, len(items), opts.Indicator, opts.Active)
	body := card + "\n" + indicator
	return lipgloss.PlaceHorizontal(opts.Width, lipgloss.Center, body)
}

// CarouselIndicator renders position dots, falling back to a "n/total"
// counter when there are too many items for dots.
func CarouselIndicator(cursor, total int, idle, active lipgloss.Style) string {
	if total <= 0 {
		return ""
	}
	if total > maxIndicatorDots {
		return active.Render(strconv.Itoa(cursor+1)) + idle.Render("/"+strconv.Itoa(total))
	}
	var b strings.Builder
	for i := 0; i < total; i++ {
		if i == cursor {
			b.WriteString(active.Render("●"))
		} else {
			b.WriteString(idle.Render("○"))
		}
		if i != total-1 {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
