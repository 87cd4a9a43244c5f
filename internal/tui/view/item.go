package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mgalindo/wpeek/internal/blocks"
	"github.com/mgalindo/wpeek/internal/wp"
)

// Item size presets controlling how much of an item a card shows.
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

const maxFieldPreview = 3

// ItemStyles holds the styles an item card renders with.
type ItemStyles struct {
	Title         lipgloss.Style
	TitleSelected lipgloss.Style
	Date          lipgloss.Style
	Excerpt       lipgloss.Style
	TypeBadge     lipgloss.Style
	Category      lipgloss.Style
	Tag           lipgloss.Style
	Sticky        lipgloss.Style
	Protected     lipgloss.Style
	Field         lipgloss.Style
	Card          lipgloss.Style
	CardSelected  lipgloss.Style
}

// ItemOptions controls the rendering of a single item card.
type ItemOptions struct {
	Width      int
	Size       string
	Selected   bool
	ShowImages bool
	Styles     ItemStyles
}

// RenderItem renders one content item as a card. Small cards carry only the
// title line; medium adds date, badges, and a one-line excerpt; large adds a
// longer excerpt, the featured image URL, and a custom-field preview.
func RenderItem(item wp.ContentItem, opts ItemOptions) string {
	card := opts.Styles.Card
	if opts.Selected {
		card = opts.Styles.CardSelected
	}
	inner := opts.Width - card.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	lines := []string{titleLine(item, opts, inner)}

	if opts.Size != SizeSmall {
		if meta := metaLine(item, opts.Styles, inner); meta != "" {
			lines = append(lines, meta)
		}
		lines = append(lines, excerptLines(item, opts, inner)...)
	}

	if opts.Size == SizeLarge {
		if opts.ShowImages && item.FeaturedImage != "" {
			lines = append(lines, opts.Styles.Date.Render(Truncate("img: "+item.FeaturedImage, inner)))
		}
		lines = append(lines, fieldLines(item, opts.Styles, inner)...)
	}

	return card.Width(opts.Width).Render(strings.Join(lines, "\n"))
}

func titleLine(item wp.ContentItem, opts ItemOptions, inner int) string {
	titleStyle := opts.Styles.Title
	if opts.Selected {
		titleStyle = opts.Styles.TitleSelected
	}

	prefix := ""
	if item.Sticky {
		prefix += opts.Styles.Sticky.Render("★ ")
	}
	if item.Protected {
		prefix += opts.Styles.Protected.Render("🔒 ")
	}

	title := blocks.Text(item.Title)
	if title == "" {
		title = "(untitled)"
	}
	avail := inner - lipgloss.Width(prefix)
	if avail < 1 {
		avail = 1
	}
	return prefix + titleStyle.Render(Truncate(title, avail))
}

func metaLine(item wp.ContentItem, st ItemStyles, inner int) string {
	parts := make([]string, 0, 4)
	if d := FormatDate(item.Date); d != "" {
		parts = append(parts, st.Date.Render(d))
	}
	parts = append(parts, st.TypeBadge.Render("["+item.Type+"]"))
	for _, c := range item.Categories {
		parts = append(parts, st.Category.Render("@"+c.Name))
	}
	for _, t := range item.Tags {
		parts = append(parts, st.Tag.Render("#"+t.Name))
	}

	line := ""
	for _, p := range parts {
		next := p
		if line != "" {
			next = " " + p
		}
		if lipgloss.Width(line)+lipgloss.Width(next) > inner {
			break
		}
		line += next
	}
	return line
}

func excerptLines(item wp.ContentItem, opts ItemOptions, inner int) []string {
	if item.Protected {
		return []string{opts.Styles.Protected.Render("Protected content")}
	}
	text := blocks.Text(item.Excerpt)
	if text == "" {
		text = blocks.Text(item.Content)
	}
	if text == "" {
		return nil
	}

	maxLines := 1
	if opts.Size == SizeLarge {
		maxLines = 3
	}
	wrapped := strings.Split(wrapText(text, inner), "\n")
	if len(wrapped) > maxLines {
		wrapped = wrapped[:maxLines]
		wrapped[maxLines-1] = Truncate(wrapped[maxLines-1]+"…", inner)
	}
	out := make([]string, 0, len(wrapped))
	for _, w := range wrapped {
		out = append(out, opts.Styles.Excerpt.Render(w))
	}
	return out
}

func fieldLines(item wp.ContentItem, st ItemStyles, inner int) []string {
	out := make([]string, 0, maxFieldPreview)
	for _, f := range item.Fields {
		if len(out) == maxFieldPreview {
			break
		}
		out = append(out, st.Field.Render(Truncate(f.Name+": "+FieldValue(f), inner)))
	}
	return out
}

// FieldValue renders a classified custom field as display text.
func FieldValue(f wp.CustomField) string {
	switch f.Kind {
	case wp.FieldLink, wp.FieldMedia:
		if f.Label != "" {
			return f.Label + " (" + f.Value + ")"
		}
		return f.Value
	case wp.FieldDate:
		return FormatDate(f.Date)
	case wp.FieldLocation:
		return formatCoords(f.Lat, f.Lng)
	default:
		return f.Value
	}
}

// wrapText word-wraps plain text to the given width, breaking long words.
func wrapText(text string, width int) string {
	if width < 1 {
		width = 1
	}
	words := strings.Fields(text)
	var b strings.Builder
	lineLen := 0
	for _, word := range words {
		w := lipgloss.Width(word)
		if lineLen > 0 && lineLen+1+w > width {
			b.WriteByte('\n')
			lineLen = 0
		} else if lineLen > 0 {
			b.WriteByte(' ')
			lineLen++
		}
		b.WriteString(word)
		lineLen += w
	}
	return b.String()
}
