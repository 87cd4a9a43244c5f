package view

import (
	"strings"

	"github.com/mgalindo/wpeek/internal/wp"
)

// FeedOptions controls the vertical feed layout.
type FeedOptions struct {
	Width      int
	Size       string
	Cursor     int
	ShowImages bool
	Styles     ItemStyles
}

// RenderFeed renders items as a single vertical column of cards.
func RenderFeed(items []wp.ContentItem, opts FeedOptions) string {
	if len(items) == 0 {
		return ""
	}
	cards := make([]string, 0, len(items))
	for i, item := range items {
		cards = append(cards, RenderItem(item, ItemOptions{
			Width:      opts.Width,
			Size:       opts.Size,
			Selected:   i == opts.Cursor,
			ShowImages: opts.ShowImages,
			Styles:     opts.Styles,
		}))
	}
	return strings.Join(cards, "\n")
}
