// Package settings holds the user-adjustable viewing preferences and the
// contract for persisting them.
package settings

import "github.com/mgalindo/wpeek/internal/wp"

// View mode names for the main feed.
const (
	ViewFeed     = "feed"
	ViewGrid     = "grid"
	ViewCarousel = "carousel"
)

// Content view mode names for the detail overlay.
const (
	ContentPage     = "page"
	ContentGrid     = "grid"
	ContentCarousel = "carousel"
)

// Item size names.
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

// StorageKey is the well-known key the settings blob is stored under.
const StorageKey = "wpApiViewerSettings"

// Settings are the persisted viewing preferences. The whole struct is saved
// as one JSON blob so a write is atomic: a blob with a valid itemsPerPage but
// an undefined sortDescending cannot exist.
type Settings struct {
	ItemsPerPage       int    `json:"itemsPerPage"`
	SortDescending     bool   `json:"sortDescending"`
	MainViewMode       string `json:"mainViewMode"`
	ItemSize           string `json:"itemSize"`
	ContentViewMode    string `json:"contentViewMode"`
	LoadMoreEnabled    bool   `json:"loadMore"`
	ShowFeaturedImages bool   `json:"showFeaturedImages"`
	APISource          string `json:"apiSource"`
	CustomAPIURL       string `json:"customApiUrl,omitempty"`
}

// Default returns the documented fallback settings, used when nothing is
// persisted yet or the stored blob is corrupt.
func Default() Settings {
	return Settings{
		ItemsPerPage:       5,
		SortDescending:     true,
		MainViewMode:       ViewFeed,
		ItemSize:           SizeMedium,
		ContentViewMode:    ContentPage,
		LoadMoreEnabled:    true,
		ShowFeaturedImages: true,
		APISource:          wp.SourceCurrent,
	}
}

// Normalize clamps and backfills every field so a loaded blob is always in a
// consistent shape regardless of what was stored.
func (s Settings) Normalize() Settings {
	s.ItemsPerPage = wp.ClampPerPage(s.ItemsPerPage)
	switch s.MainViewMode {
	case ViewFeed, ViewGrid, ViewCarousel:
	default:
		s.MainViewMode = ViewFeed
	}
	switch s.ItemSize {
	case SizeSmall, SizeMedium, SizeLarge:
	default:
		s.ItemSize = SizeMedium
	}
	switch s.ContentViewMode {
	case ContentPage, ContentGrid, ContentCarousel:
	default:
		s.ContentViewMode = ContentPage
	}
	switch s.APISource {
	case wp.SourceCurrent, wp.SourceParent, wp.SourceCustom:
	default:
		s.APISource = wp.SourceCurrent
	}
	return s
}

// AutoLoadAllowed reports whether the infinite-scroll trigger may fire in
// the given view mode. Carousel navigation does not imply "scrolled near the
// bottom", so auto-loading there would fetch without user intent.
func (s Settings) AutoLoadAllowed() bool {
	return s.LoadMoreEnabled && (s.MainViewMode == ViewFeed || s.MainViewMode == ViewGrid)
}

// Store persists settings as a single blob under StorageKey.
type Store interface {
	// Load returns the persisted settings, or defaults when nothing valid
	// is stored. It only fails on storage-level errors.
	Load() (Settings, error)

	// Save writes the settings transactionally.
	Save(Settings) error

	// Close releases the underlying storage.
	Close() error
}
