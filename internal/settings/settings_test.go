package settings

import (
	"testing"

	"github.com/mgalindo/wpeek/internal/wp"
)

func TestDefault(t *testing.T) {
	d := Default()
	if d.ItemsPerPage != 5 {
		t.Errorf("ItemsPerPage = %d, want 5", d.ItemsPerPage)
	}
	if !d.SortDescending {
		t.Error("SortDescending = false, want true")
	}
	if d.MainViewMode != ViewFeed {
		t.Errorf("MainViewMode = %q, want %q", d.MainViewMode, ViewFeed)
	}
	if d.ItemSize != SizeMedium {
		t.Errorf("ItemSize = %q, want %q", d.ItemSize, SizeMedium)
	}
	if d.ContentViewMode != ContentPage {
		t.Errorf("ContentViewMode = %q, want %q", d.ContentViewMode, ContentPage)
	}
	if !d.LoadMoreEnabled {
		t.Error("LoadMoreEnabled = false, want true")
	}
	if !d.ShowFeaturedImages {
		t.Error("ShowFeaturedImages = false, want true")
	}
	if d.APISource != wp.SourceCurrent {
		t.Errorf("APISource = %q, want %q", d.APISource, wp.SourceCurrent)
	}
	if d != d.Normalize() {
		t.Error("defaults are not a fixed point of Normalize")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Settings
		want Settings
	}{
		{
			name: "zero value backfills everything",
			in:   Settings{},
			want: Settings{
				ItemsPerPage:    1,
				MainViewMode:    ViewFeed,
				ItemSize:        SizeMedium,
				ContentViewMode: ContentPage,
				APISource:       wp.SourceCurrent,
			},
		},
		{
			name: "per page clamped high",
			in:   Settings{ItemsPerPage: 100, MainViewMode: ViewGrid, ItemSize: SizeLarge, ContentViewMode: ContentCarousel, APISource: wp.SourceParent},
			want: Settings{ItemsPerPage: 20, MainViewMode: ViewGrid, ItemSize: SizeLarge, ContentViewMode: ContentCarousel, APISource: wp.SourceParent},
		},
		{
			name: "unknown enum values reset",
			in:   Settings{ItemsPerPage: 5, MainViewMode: "mosaic", ItemSize: "huge", ContentViewMode: "spiral", APISource: "mirror"},
			want: Settings{ItemsPerPage: 5, MainViewMode: ViewFeed, ItemSize: SizeMedium, ContentViewMode: ContentPage, APISource: wp.SourceCurrent},
		},
		{
			name: "valid settings pass through",
			in:   Settings{ItemsPerPage: 10, SortDescending: true, MainViewMode: ViewCarousel, ItemSize: SizeSmall, ContentViewMode: ContentGrid, APISource: wp.SourceCustom, CustomAPIURL: "https://example.com/wp-json/wp/v2"},
			want: Settings{ItemsPerPage: 10, SortDescending: true, MainViewMode: ViewCarousel, ItemSize: SizeSmall, ContentViewMode: ContentGrid, APISource: wp.SourceCustom, CustomAPIURL: "https://example.com/wp-json/wp/v2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalize(); got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAutoLoadAllowed(t *testing.T) {
	tests := []struct {
		name     string
		loadMore bool
		mode     string
		want     bool
	}{
		{"feed with load more", true, ViewFeed, true},
		{"grid with load more", true, ViewGrid, true},
		{"carousel never auto-loads", true, ViewCarousel, false},
		{"feed with load more off", false, ViewFeed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Settings{LoadMoreEnabled: tt.loadMore, MainViewMode: tt.mode}
			if got := s.AutoLoadAllowed(); got != tt.want {
				t.Errorf("AutoLoadAllowed() = %v, want %v", got, tt.want)
			}
		})
	}
}
