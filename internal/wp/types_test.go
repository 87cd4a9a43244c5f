package wp

import (
	"testing"
	"time"
)

func TestDecodeItem(t *testing.T) {
	data := []byte(`{
		"id": 12,
		"type": "post",
		"slug": "hello",
		"status": "publish",
		"link": "https://example.com/hello",
		"title": {"rendered": "Hello"},
		"excerpt": {"rendered": "<p>Short</p>", "protected": false},
		"content": {"rendered": "<p>Long</p>", "protected": false},
		"date": "2024-03-01T10:30:00",
		"modified": "2024-03-02T08:00:00",
		"sticky": true,
		"categories": [{"id": 3, "name": "News"}],
		"tags": [5, 9],
		"_embedded": {
			"author": [{"name": "Ana", "link": "https://example.com/ana"}],
			"wp:featuredmedia": [{"source_url": "https://example.com/img.jpg", "alt_text": "pic"}]
		}
	}`)

	item, err := decodeItem(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if item.ID != 12 || item.Type != "post" || item.Slug != "hello" {
		t.Errorf("identity fields wrong: %+v", item)
	}
	if item.Title != "Hello" {
		t.Errorf("got title %q", item.Title)
	}
	if !item.Sticky {
		t.Error("sticky flag lost")
	}
	if item.Protected {
		t.Error("item should not be protected")
	}

	wantDate := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	if !item.Date.Equal(wantDate) {
		t.Errorf("got date %v, want %v", item.Date, wantDate)
	}

	if len(item.Categories) != 1 || item.Categories[0].Name != "News" {
		t.Errorf("categories = %v", item.Categories)
	}
	// Bare integer tag ids still come through as terms.
	if len(item.Tags) != 2 || item.Tags[0].ID != 5 || item.Tags[1].ID != 9 {
		t.Errorf("tags = %v", item.Tags)
	}

	if item.Author == nil || item.Author.Name != "Ana" {
		t.Errorf("author = %v", item.Author)
	}
	if item.FeaturedImage != "https://example.com/img.jpg" {
		t.Errorf("featured image = %q", item.FeaturedImage)
	}
}

func TestDecodeItem_MediaFallbacks(t *testing.T) {
	// Media items have caption/description instead of title/excerpt.
	data := []byte(`{
		"id": 4,
		"type": "attachment",
		"caption": {"rendered": "A sunset"},
		"description": {"rendered": "<p>Taken in June</p>"},
		"source_url": "https://example.com/sunset.jpg"
	}`)

	item, err := decodeItem(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Title != "A sunset" {
		t.Errorf("got title %q, want caption fallback", item.Title)
	}
	if item.Excerpt != "<p>Taken in June</p>" {
		t.Errorf("got excerpt %q, want description fallback", item.Excerpt)
	}
	if item.FeaturedImage != "https://example.com/sunset.jpg" {
		t.Errorf("featured image = %q, want source_url", item.FeaturedImage)
	}
}

func TestDecodeItem_Protected(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"password set", `{"id": 1, "password": "secret"}`},
		{"content flag", `{"id": 1, "content": {"rendered": "", "protected": true}}`},
		{"excerpt flag", `{"id": 1, "excerpt": {"rendered": "", "protected": true}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := decodeItem([]byte(tt.data))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !item.Protected {
				t.Error("expected protected item")
			}
		})
	}
}

func TestResolveFeaturedImage_MediumSize(t *testing.T) {
	data := []byte(`{
		"id": 8,
		"_embedded": {
			"wp:featuredmedia": [{
				"media_details": {"sizes": {"medium": {"source_url": "https://example.com/med.jpg"}}}
			}]
		}
	}`)
	item, err := decodeItem(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.FeaturedImage != "https://example.com/med.jpg" {
		t.Errorf("featured image = %q, want medium rendition", item.FeaturedImage)
	}
}

func TestParseWPTime(t *testing.T) {
	tests := []struct {
		in   string
		zero bool
	}{
		{"2024-03-01T10:30:00", false},
		{"2024-03-01T10:30:00Z", false},
		{"2024-03-01T10:30:00+02:00", false},
		{"", true},
		{"garbage", true},
	}
	for _, tt := range tests {
		got := parseWPTime(tt.in)
		if got.IsZero() != tt.zero {
			t.Errorf("parseWPTime(%q).IsZero() = %v, want %v", tt.in, got.IsZero(), tt.zero)
		}
	}
}

func TestHasCategoryAndTag(t *testing.T) {
	item := ContentItem{
		Categories: []Term{{ID: 1}, {ID: 2}},
		Tags:       []Term{{ID: 7}},
	}
	if !item.HasCategory(2) {
		t.Error("HasCategory(2) = false")
	}
	if item.HasCategory(9) {
		t.Error("HasCategory(9) = true")
	}
	if !item.HasTag(7) {
		t.Error("HasTag(7) = false")
	}
	if item.HasTag(1) {
		t.Error("HasTag(1) = true")
	}
}
