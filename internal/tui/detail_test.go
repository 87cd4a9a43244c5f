package tui

import (
	"errors"
	"testing"

	"github.com/mgalindo/wpeek/internal/settings"
	"github.com/mgalindo/wpeek/internal/wp"
)

func TestDetailOpenWithFetch(t *testing.T) {
	var d detailState
	summary := wp.ContentItem{ID: 7, Title: "Summary title"}

	token := d.Open(summary, settings.ContentPage, true)

	if !d.Visible() {
		t.Error("overlay not visible after Open")
	}
	if !d.Loading() {
		t.Error("overlay not loading while fetch is pending")
	}
	if d.item.ID != 7 {
		t.Errorf("item.ID = %d, want the summary shown immediately", d.item.ID)
	}

	full := wp.ContentItem{ID: 7, Title: "Summary title", Content: "<p>Full body</p>"}
	d.Resolve(token, &full, nil)

	if d.phase != DetailLoaded {
		t.Errorf("phase = %v, want DetailLoaded", d.phase)
	}
	if d.item.Content != "<p>Full body</p>" {
		t.Error("resolved item did not replace the summary")
	}
}

func TestDetailOpenWithoutFetch(t *testing.T) {
	var d detailState
	d.Open(wp.ContentItem{ID: 3, Type: "attachment"}, settings.ContentPage, false)

	if d.phase != DetailLoaded {
		t.Errorf("phase = %v, want DetailLoaded immediately when no fetch is needed", d.phase)
	}
	if d.Loading() {
		t.Error("Loading() = true with no fetch pending")
	}
}

func TestDetailResolveFailureKeepsSummary(t *testing.T) {
	var d detailState
	summary := wp.ContentItem{ID: 7, Title: "Summary title", Excerpt: "<p>teaser</p>"}
	token := d.Open(summary, settings.ContentPage, true)

	d.Resolve(token, nil, errors.New("boom"))

	if d.phase != DetailFailed {
		t.Errorf("phase = %v, want DetailFailed", d.phase)
	}
	if !d.Visible() {
		t.Error("overlay closed on failure, want it kept open with summary data")
	}
	if d.item.Title != "Summary title" {
		t.Error("summary data lost on failure")
	}
	if d.err == nil {
		t.Error("err not recorded")
	}
}

func TestDetailResolveStaleTokenIgnored(t *testing.T) {
	var d detailState
	stale := d.Open(wp.ContentItem{ID: 1}, settings.ContentPage, true)
	fresh := d.Open(wp.ContentItem{ID: 2}, settings.ContentPage, true)

	d.Resolve(stale, &wp.ContentItem{ID: 1, Content: "<p>old</p>"}, nil)

	if d.item.ID != 2 {
		t.Errorf("item.ID = %d, stale response overwrote the current session", d.item.ID)
	}
	if d.phase != DetailOpening {
		t.Errorf("phase = %v, want still DetailOpening", d.phase)
	}

	d.Resolve(fresh, &wp.ContentItem{ID: 2, Content: "<p>new</p>"}, nil)
	if d.phase != DetailLoaded || d.item.Content != "<p>new</p>" {
		t.Error("current session's response not applied")
	}
}

func TestDetailResolveAfterCloseIgnored(t *testing.T) {
	var d detailState
	token := d.Open(wp.ContentItem{ID: 1}, settings.ContentPage, true)
	d.Close()

	d.Resolve(token, &wp.ContentItem{ID: 1, Content: "<p>late</p>"}, nil)

	if d.Visible() {
		t.Error("late response reopened a closed overlay")
	}
}

func TestDetailOpenResetsBlockCursor(t *testing.T) {
	var d detailState
	d.Open(wp.ContentItem{ID: 1}, settings.ContentCarousel, true)
	d.blockCursor = 3

	d.Open(wp.ContentItem{ID: 2}, settings.ContentCarousel, true)
	if d.blockCursor != 0 {
		t.Errorf("blockCursor = %d after reopen, want 0", d.blockCursor)
	}
}

func TestDetailBlockCount(t *testing.T) {
	var d detailState
	d.item = wp.ContentItem{Content: "<p>one</p><p>two</p><p>three</p>"}
	if got := d.blockCount(); got != 3 {
		t.Errorf("blockCount = %d, want 3", got)
	}
	d.item.Content = ""
	if got := d.blockCount(); got != 0 {
		t.Errorf("blockCount for empty content = %d, want 0", got)
	}
}
