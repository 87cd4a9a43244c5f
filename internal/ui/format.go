package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mgalindo/wpeek/internal/blocks"
	"github.com/mgalindo/wpeek/internal/wp"
)

// PrintOpts controls how items are printed.
type PrintOpts struct {
	Verbose bool
	Width   int
}

// PrintItemRow prints one item as a compact list row.
func PrintItemRow(item wp.ContentItem, opts PrintOpts) {
	marks := ""
	if item.Sticky {
		marks += colorSticky.Sprint("★")
	}
	if item.Protected {
		marks += colorProtected.Sprint("🔒")
	}
	if marks != "" {
		marks += " "
	}

	title := blocks.Text(item.Title)
	if title == "" {
		title = "(untitled)"
	}

	fmt.Printf("  %s#%-6d %s%s %s\n",
		formatMuted(""),
		item.ID,
		marks,
		formatTitle(title),
		formatMuted(item.Date.Format("2006-01-02")),
	)

	if badges := termBadges(item); badges != "" {
		fmt.Printf("          %s\n", badges)
	}

	if opts.Verbose {
		if excerpt := blocks.Text(item.Excerpt); excerpt != "" {
			fmt.Printf("          %s\n", truncate(excerpt, opts.Width-10))
		}
	}
}

// PrintItemDetail prints the full record for one item.
func PrintItemDetail(item wp.ContentItem, width int) {
	title := blocks.Text(item.Title)
	if title == "" {
		title = "(untitled)"
	}
	fmt.Printf("=== %s ===\n\n", formatHeader(title))

	printMetaRow("ID", strconv.FormatInt(item.ID, 10))
	printMetaRow("Type", item.Type)
	printMetaRow("Status", item.Status)
	printMetaRow("Date", item.Date.Format("2006-01-02 15:04"))
	if !item.Modified.IsZero() && !item.Modified.Equal(item.Date) {
		printMetaRow("Modified", item.Modified.Format("2006-01-02 15:04"))
	}
	if item.Author != nil {
		printMetaRow("Author", item.Author.Name)
	}
	if names := termNameList(item.Categories); names != "" {
		printMetaRow("Categories", names)
	}
	if names := termNameList(item.Tags); names != "" {
		printMetaRow("Tags", names)
	}
	printMetaRow("Link", item.Link)
	if item.FeaturedImage != "" {
		printMetaRow("Image", item.FeaturedImage)
	}

	if item.Protected {
		fmt.Printf("\n%s\n", colorProtected.Sprint("This content is password protected."))
	} else if bs := blocks.Split(item.Content); len(bs) > 0 {
		fmt.Println()
		for _, b := range bs {
			if b.Text == "" {
				continue
			}
			fmt.Println(wrap(b.Text, width))
			fmt.Println()
		}
	}

	if len(item.Fields) > 0 {
		fmt.Printf("%s\n", formatHeader("Fields"))
		for _, f := range item.Fields {
			printMetaRow(f.Name, FieldText(f))
		}
	}
}

// FieldText renders a classified custom field as plain display text.
func FieldText(f wp.CustomField) string {
	switch f.Kind {
	case wp.FieldLink, wp.FieldMedia:
		if f.Label != "" {
			return fmt.Sprintf("%s (%s)", f.Label, f.Value)
		}
		return f.Value
	case wp.FieldDate:
		return f.Date.Format("2006-01-02")
	case wp.FieldLocation:
		return fmt.Sprintf("%.5f, %.5f", f.Lat, f.Lng)
	default:
		return f.Value
	}
}

func printMetaRow(key, value string) {
	if value == "" {
		return
	}
	fmt.Printf("  %-12s %s\n", formatMuted(key), value)
}

func termBadges(item wp.ContentItem) string {
	parts := make([]string, 0, 4)
	for _, c := range item.Categories {
		parts = append(parts, formatCategory("@"+c.Name))
	}
	for _, t := range item.Tags {
		parts = append(parts, formatTag("#"+t.Name))
	}
	return strings.Join(parts, " ")
}

func termNameList(terms []wp.Term) string {
	names := make([]string, 0, len(terms))
	for _, t := range terms {
		names = append(names, t.Name)
	}
	return strings.Join(names, ", ")
}

func truncate(s string, width int) string {
	if width <= 0 || len([]rune(s)) <= width {
		return s
	}
	runes := []rune(s)
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}

// wrap word-wraps text to the given width.
func wrap(text string, width int) string {
	if width < 20 {
		width = 20
	}
	words := strings.Fields(text)
	var b strings.Builder
	lineLen := 0
	for _, word := range words {
		if lineLen > 0 && lineLen+1+len(word) > width {
			b.WriteByte('\n')
			lineLen = 0
		} else if lineLen > 0 {
			b.WriteByte(' ')
			lineLen++
		}
		b.WriteString(word)
		lineLen += len(word)
	}
	return b.String()
}
