package tui

import "github.com/mgalindo/wpeek/internal/settings"

// scrollThreshold is how many rows from the bottom of the viewport the next
// page starts loading.
const scrollThreshold = 4

// scrollTrigger arms once per scroll position so one approach to the bottom
// issues one load, not one per scroll event.
type scrollTrigger struct {
	armed bool
}

func newScrollTrigger() scrollTrigger {
	return scrollTrigger{armed: true}
}

// Rearm allows the next bottom approach to fire again. Called when new
// content arrives or the user scrolls away from the bottom.
func (t *scrollTrigger) Rearm() {
	t.armed = true
}

// ShouldLoad reports whether scrolling near the bottom should fetch the next
// page. Auto-load only runs in the feed and grid views; the carousel pages
// explicitly.
func (t *scrollTrigger) ShouldLoad(offset, contentHeight, viewHeight int, loading, hasMore bool, prefs settings.Settings) bool {
	if !t.armed || loading || !hasMore || !prefs.AutoLoadAllowed() {
		return false
	}
	if contentHeight <= viewHeight {
		return false
	}
	if offset+viewHeight < contentHeight-scrollThreshold {
		return false
	}
	t.armed = false
	return true
}
