// Package wp is a client for WordPress-style REST content APIs. It translates
// (content type, page, filters) into HTTP requests, normalizes the varying
// response shapes into ContentItem, and returns typed errors instead of
// panicking on expected failure modes.
package wp

import (
	"encoding/json"
	"time"
)

// Term is a category or tag attached to a content item.
type Term struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
	Link string `json:"link,omitempty"`
}

// Author is the embedded author relation, when present.
type Author struct {
	Name string
	Link string
}

// MediaDetails is the embedded featured-media relation, when present.
type MediaDetails struct {
	URL         string
	Title       string
	AltText     string
	Caption     string
	Description string
}

// ContentItem is one normalized record from the remote API. Identity is the
// (content type, source) scoped ID; IDs from different types or sources may
// collide and must not be compared across scopes.
type ContentItem struct {
	ID       int64
	Type     string
	Slug     string
	Status   string
	Link     string
	GUID     string
	Title    string
	Excerpt  string // rendered HTML fragment
	Content  string // rendered HTML fragment
	Date     time.Time
	Modified time.Time

	// Sticky is only meaningful for the "posts" type.
	Sticky bool
	// Protected marks password-restricted content whose body must not be
	// rendered.
	Protected bool

	Categories []Term
	Tags       []Term

	Author        *Author
	FeaturedMedia *MediaDetails
	// FeaturedImage is the best resolvable image URL for the item, or "".
	FeaturedImage string

	// Fields holds custom fields classified once at decode time.
	Fields []CustomField
}

// HasCategory reports whether the item carries the given category id.
func (it ContentItem) HasCategory(id int64) bool {
	for _, t := range it.Categories {
		if t.ID == id {
			return true
		}
	}
	return false
}

// HasTag reports whether the item carries the given tag id.
func (it ContentItem) HasTag(id int64) bool {
	for _, t := range it.Tags {
		if t.ID == id {
			return true
		}
	}
	return false
}

// ContentType describes one browsable content type discovered from the API.
type ContentType struct {
	Name     string
	Label    string
	RestBase string
}

// rendered is the WP "rendered object" wire shape.
type rendered struct {
	Rendered  string `json:"rendered"`
	Protected bool   `json:"protected"`
}

// rawItem mirrors the wire shape of a content item before normalization.
type rawItem struct {
	ID               int64           `json:"id"`
	Type             string          `json:"type"`
	Slug             string          `json:"slug"`
	Status           string          `json:"status"`
	Link             string          `json:"link"`
	GUID             rendered        `json:"guid"`
	Title            rendered        `json:"title"`
	Caption          rendered        `json:"caption"`
	Excerpt          rendered        `json:"excerpt"`
	Description      rendered        `json:"description"`
	Content          rendered        `json:"content"`
	Date             string          `json:"date"`
	Modified         string          `json:"modified"`
	Sticky           bool            `json:"sticky"`
	Password         string          `json:"password"`
	SourceURL        string          `json:"source_url"`
	FeaturedMediaURL string          `json:"featured_media_url"`
	Categories       json.RawMessage `json:"categories"`
	Tags             json.RawMessage `json:"tags"`
	ACF              json.RawMessage `json:"acf"`
	Embedded         rawEmbedded     `json:"_embedded"`
}

type rawEmbedded struct {
	Author        []rawAuthor `json:"author"`
	FeaturedMedia []rawMedia  `json:"wp:featuredmedia"`
}

type rawAuthor struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

type rawMedia struct {
	SourceURL    string   `json:"source_url"`
	Title        rendered `json:"title"`
	AltText      string   `json:"alt_text"`
	Caption      rendered `json:"caption"`
	Description  rendered `json:"description"`
	MediaDetails struct {
		Sizes map[string]struct {
			SourceURL string `json:"source_url"`
		} `json:"sizes"`
	} `json:"media_details"`
}

// wpDateLayout is the zone-less timestamp WordPress emits in local site time.
const wpDateLayout = "2006-01-02T15:04:05"

func parseWPTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse(wpDateLayout, s); err == nil {
		return t
	}
	return time.Time{}
}

// decodeItem normalizes one wire item. All shape sniffing happens here, once;
// everything downstream works with the normalized struct.
func decodeItem(data []byte) (ContentItem, error) {
	var raw rawItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return ContentItem{}, err
	}

	item := ContentItem{
		ID:        raw.ID,
		Type:      raw.Type,
		Slug:      raw.Slug,
		Status:    raw.Status,
		Link:      raw.Link,
		GUID:      raw.GUID.Rendered,
		Title:     firstNonEmpty(raw.Title.Rendered, raw.Caption.Rendered),
		Excerpt:   firstNonEmpty(raw.Excerpt.Rendered, raw.Description.Rendered),
		Content:   firstNonEmpty(raw.Content.Rendered, raw.Description.Rendered),
		Date:      parseWPTime(raw.Date),
		Modified:  parseWPTime(raw.Modified),
		Sticky:    raw.Sticky,
		Protected: raw.Password != "" || raw.Excerpt.Protected || raw.Content.Protected,
	}

	item.Categories = decodeTerms(raw.Categories)
	item.Tags = decodeTerms(raw.Tags)

	if len(raw.Embedded.Author) > 0 {
		a := raw.Embedded.Author[0]
		item.Author = &Author{Name: a.Name, Link: a.Link}
	}
	if len(raw.Embedded.FeaturedMedia) > 0 {
		m := raw.Embedded.FeaturedMedia[0]
		item.FeaturedMedia = &MediaDetails{
			URL:         m.SourceURL,
			Title:       m.Title.Rendered,
			AltText:     m.AltText,
			Caption:     m.Caption.Rendered,
			Description: m.Description.Rendered,
		}
	}
	item.FeaturedImage = resolveFeaturedImage(raw)
	item.Fields = ClassifyFields(raw.ACF)

	return item, nil
}

// decodeTerms tolerates both the enriched {id,name} objects added by the host
// and the bare integer IDs stock WordPress returns.
func decodeTerms(data json.RawMessage) []Term {
	if len(data) == 0 {
		return nil
	}
	var terms []Term
	if err := json.Unmarshal(data, &terms); err == nil {
		return terms
	}
	var ids []int64
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil
	}
	terms = make([]Term, 0, len(ids))
	for _, id := range ids {
		terms = append(terms, Term{ID: id})
	}
	return terms
}

// resolveFeaturedImage picks the best available image URL: the embedded
// featured media, the item's own source_url (media items), the medium-size
// rendition, then the host-injected featured_media_url.
func resolveFeaturedImage(raw rawItem) string {
	if len(raw.Embedded.FeaturedMedia) > 0 {
		m := raw.Embedded.FeaturedMedia[0]
		if m.SourceURL != "" {
			return m.SourceURL
		}
		if size, ok := m.MediaDetails.Sizes["medium"]; ok && size.SourceURL != "" {
			return size.SourceURL
		}
	}
	if raw.SourceURL != "" {
		return raw.SourceURL
	}
	return raw.FeaturedMediaURL
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
