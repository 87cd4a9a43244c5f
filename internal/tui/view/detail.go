package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mgalindo/wpeek/internal/blocks"
	"github.com/mgalindo/wpeek/internal/wp"
)

// Content display modes inside the detail overlay.
const (
	ContentPage     = "page"
	ContentGrid     = "grid"
	ContentCarousel = "carousel"
)

// DetailStyles holds the styles the detail body renders with.
type DetailStyles struct {
	Title       lipgloss.Style
	Body        lipgloss.Style
	MetaKey     lipgloss.Style
	MetaValue   lipgloss.Style
	BlockHeader lipgloss.Style
	Muted       lipgloss.Style
	Warning     lipgloss.Style
}

// DetailOptions controls the detail body rendering.
type DetailOptions struct {
	Width       int
	Mode        string
	BlockCursor int
	Styles      DetailStyles
}

// RenderDetail renders the full detail body for an item: title, metadata
// panel, content blocks in the selected mode, and classified custom fields.
func RenderDetail(item wp.ContentItem, opts DetailOptions) string {
	if opts.Width < 20 {
		opts.Width = 20
	}
	st := opts.Styles

	sections := make([]string, 0, 4)

	title := blocks.Text(item.Title)
	if title == "" {
		title = "(untitled)"
	}
	sections = append(sections, st.Title.Render(wrapText(title, opts.Width)))
	sections = append(sections, renderMeta(item, opts))

	if item.Protected {
		sections = append(sections, st.Warning.Render("This content is password protected."))
	} else if body := renderBody(item, opts); body != "" {
		sections = append(sections, body)
	}

	if fields := renderDetailFields(item, opts); fields != "" {
		sections = append(sections, fields)
	}

	return strings.Join(sections, "\n\n")
}

func renderMeta(item wp.ContentItem, opts DetailOptions) string {
	st := opts.Styles
	rows := make([]string, 0, 8)
	add := func(key, value string) {
		if value == "" {
			return
		}
		rows = append(rows, st.MetaKey.Render(key)+st.MetaValue.Render(Truncate(value, opts.Width-16)))
	}

	add("Type", item.Type)
	add("Slug", item.Slug)
	if item.Status != "" && item.Status != "publish" {
		add("Status", item.Status)
	}
	add("Date", FormatDateTime(item.Date))
	if !item.Modified.Equal(item.Date) {
		add("Modified", FormatDateTime(item.Modified))
	}
	if item.Author != nil {
		add("Author", item.Author.Name)
	}
	add("Categories", termNames(item.Categories))
	add("Tags", termNames(item.Tags))
	add("Link", item.Link)
	if item.FeaturedImage != "" {
		add("Image", item.FeaturedImage)
	}
	return strings.Join(rows, "\n")
}

func renderBody(item wp.ContentItem, opts DetailOptions) string {
	bs := blocks.Split(item.Content)
	if len(bs) == 0 {
		if item.Type == "attachment" || item.Type == "media" {
			return renderMediaBody(item, opts)
		}
		return ""
	}

	switch opts.Mode {
	case ContentGrid:
		return renderBlockGrid(bs, opts)
	case ContentCarousel:
		return renderBlockCarousel(bs, opts)
	default:
		return renderBlockPage(bs, opts)
	}
}

func renderMediaBody(item wp.ContentItem, opts DetailOptions) string {
	if item.FeaturedMedia == nil {
		return ""
	}
	st := opts.Styles
	parts := make([]string, 0, 3)
	if item.FeaturedMedia.Caption != "" {
		parts = append(parts, st.Body.Render(wrapText(blocks.Text(item.FeaturedMedia.Caption), opts.Width)))
	}
	if item.FeaturedMedia.Description != "" {
		parts = append(parts, st.Body.Render(wrapText(blocks.Text(item.FeaturedMedia.Description), opts.Width)))
	}
	if item.FeaturedMedia.URL != "" {
		parts = append(parts, st.Muted.Render(Truncate(item.FeaturedMedia.URL, opts.Width)))
	}
	return strings.Join(parts, "\n\n")
}

func renderBlockPage(bs []blocks.Block, opts DetailOptions) string {
	parts := make([]string, 0, len(bs))
	for _, b := range bs {
		if b.Text == "" {
			continue
		}
		parts = append(parts, opts.Styles.Body.Render(wrapText(b.Text, opts.Width)))
	}
	return strings.Join(parts, "\n\n")
}

func renderBlockGrid(bs []blocks.Block, opts DetailOptions) string {
	st := opts.Styles
	parts := make([]string, 0, len(bs))
	for i, b := range bs {
		if b.Text == "" {
			continue
		}
		header := st.BlockHeader.Render("block " + strconv.Itoa(i+1) + "/" + strconv.Itoa(len(bs)))
		parts = append(parts, header+"\n"+st.Body.Render(wrapText(b.Text, opts.Width)))
	}
	return strings.Join(parts, "\n\n")
}

func renderBlockCarousel(bs []blocks.Block, opts DetailOptions) string {
	cursor := opts.BlockCursor
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(bs) {
		cursor = len(bs) - 1
	}
	st := opts.Styles
	header := st.BlockHeader.Render("block " + strconv.Itoa(cursor+1) + "/" + strconv.Itoa(len(bs)) + "  ←/→ to browse")
	return header + "\n\n" + st.Body.Render(wrapText(bs[cursor].Text, opts.Width))
}

func renderDetailFields(item wp.ContentItem, opts DetailOptions) string {
	if len(item.Fields) == 0 {
		return ""
	}
	st := opts.Styles
	rows := make([]string, 0, len(item.Fields)+1)
	rows = append(rows, st.BlockHeader.Render("Fields"))
	for _, f := range item.Fields {
		rows = append(rows, st.MetaKey.Render(f.Name)+st.MetaValue.Render(Truncate(FieldValue(f), opts.Width-16)))
	}
	return strings.Join(rows, "\n")
}

func termNames(terms []wp.Term) string {
	if len(terms) == 0 {
		return ""
	}
	names := make([]string, 0, len(terms))
	for _, t := range terms {
		names = append(names, t.Name)
	}
	return strings.Join(names, ", ")
}
