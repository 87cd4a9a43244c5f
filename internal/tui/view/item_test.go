package view

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mgalindo/wpeek/internal/wp"
)

func testItemStyles() ItemStyles {
	plain := lipgloss.NewStyle()
	return ItemStyles{
		Title:         plain,
		TitleSelected: plain,
		Date:          plain,
		Excerpt:       plain,
		TypeBadge:     plain,
		Category:      plain,
		Tag:           plain,
		Sticky:        plain,
		Protected:     plain,
		Field:         plain,
		Card:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		CardSelected:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

func testItems(n int) []wp.ContentItem {
	items := make([]wp.ContentItem, n)
	for i := range items {
		items[i] = wp.ContentItem{
			ID:    int64(i + 1),
			Type:  "post",
			Title: "Item " + strconv.Itoa(i+1),
			Date:  time.Date(2024, time.June, i+1, 0, 0, 0, 0, time.UTC),
		}
	}
	return items
}

func TestRenderItemSizes(t *testing.T) {
	item := wp.ContentItem{
		ID:      1,
		Type:    "post",
		Title:   "<em>Styled</em> title",
		Excerpt: "<p>A short excerpt about nothing much at all.</p>",
		Date:    time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC),
	}

	small := RenderItem(item, ItemOptions{Width: 40, Size: SizeSmall, Styles: testItemStyles()})
	if !strings.Contains(small, "Styled title") {
		t.Error("small card missing plain-text title")
	}
	if strings.Contains(small, "Jun 5, 2024") {
		t.Error("small card should not carry the date line")
	}

	medium := RenderItem(item, ItemOptions{Width: 40, Size: SizeMedium, Styles: testItemStyles()})
	if !strings.Contains(medium, "Jun 5, 2024") {
		t.Error("medium card missing the date")
	}
	if !strings.Contains(medium, "short excerpt") {
		t.Error("medium card missing the excerpt")
	}
	if strings.Contains(medium, "<p>") {
		t.Error("excerpt markup leaked into the card")
	}
}

func TestRenderItemMarkers(t *testing.T) {
	styles := testItemStyles()

	sticky := RenderItem(wp.ContentItem{Title: "Pinned", Sticky: true}, ItemOptions{Width: 40, Size: SizeSmall, Styles: styles})
	if !strings.Contains(sticky, "★") {
		t.Error("sticky item missing its marker")
	}

	protected := RenderItem(wp.ContentItem{Title: "Secret", Protected: true}, ItemOptions{Width: 40, Size: SizeMedium, Styles: styles})
	if !strings.Contains(protected, "🔒") {
		t.Error("protected item missing its marker")
	}

	untitled := RenderItem(wp.ContentItem{}, ItemOptions{Width: 40, Size: SizeSmall, Styles: styles})
	if !strings.Contains(untitled, "(untitled)") {
		t.Error("empty title not rendered as (untitled)")
	}
}

func TestFieldValue(t *testing.T) {
	tests := []struct {
		name  string
		field wp.CustomField
		want  string
	}{
		{"text", wp.CustomField{Kind: wp.FieldText, Value: "hello"}, "hello"},
		{"bare link", wp.CustomField{Kind: wp.FieldLink, Value: "https://example.com"}, "https://example.com"},
		{"labeled link", wp.CustomField{Kind: wp.FieldLink, Value: "https://example.com", Label: "Tickets"}, "Tickets (https://example.com)"},
		{"date", wp.CustomField{Kind: wp.FieldDate, Date: time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)}, "Jun 5, 2024"},
		{"location", wp.CustomField{Kind: wp.FieldLocation, Lat: 40.41678, Lng: -3.70379}, "40.41678, -3.70379"},
		{"unknown", wp.CustomField{Kind: wp.FieldUnknown, Value: `{"a":1}`}, `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FieldValue(tt.field); got != tt.want {
				t.Errorf("FieldValue = %q, want %q", got, tt.want)
			}
		})
	}
}
