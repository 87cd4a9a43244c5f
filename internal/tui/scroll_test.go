package tui

import (
	"testing"

	"github.com/mgalindo/wpeek/internal/settings"
)

func scrollPrefs(mode string) settings.Settings {
	prefs := settings.Default()
	prefs.MainViewMode = mode
	return prefs
}

func TestScrollTriggerShouldLoad(t *testing.T) {
	tests := []struct {
		name          string
		offset        int
		contentHeight int
		viewHeight    int
		loading       bool
		hasMore       bool
		prefs         settings.Settings
		want          bool
	}{
		{"at bottom of feed", 76, 100, 20, false, true, scrollPrefs(settings.ViewFeed), true},
		{"within threshold", 77, 100, 20, false, true, scrollPrefs(settings.ViewFeed), true},
		{"just above threshold", 75, 100, 20, false, true, scrollPrefs(settings.ViewFeed), false},
		{"top of feed", 0, 100, 20, false, true, scrollPrefs(settings.ViewFeed), false},
		{"already loading", 80, 100, 20, true, true, scrollPrefs(settings.ViewFeed), false},
		{"no more pages", 80, 100, 20, false, false, scrollPrefs(settings.ViewFeed), false},
		{"grid auto-loads", 80, 100, 20, false, true, scrollPrefs(settings.ViewGrid), true},
		{"carousel never auto-loads", 80, 100, 20, false, true, scrollPrefs(settings.ViewCarousel), false},
		{"content fits viewport", 0, 15, 20, false, true, scrollPrefs(settings.ViewFeed), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trigger := newScrollTrigger()
			got := trigger.ShouldLoad(tt.offset, tt.contentHeight, tt.viewHeight, tt.loading, tt.hasMore, tt.prefs)
			if got != tt.want {
				t.Errorf("ShouldLoad = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScrollTriggerLoadMoreDisabled(t *testing.T) {
	prefs := scrollPrefs(settings.ViewFeed)
	prefs.LoadMoreEnabled = false

	trigger := newScrollTrigger()
	if trigger.ShouldLoad(80, 100, 20, false, true, prefs) {
		t.Error("trigger fired with load-more disabled")
	}
}

func TestScrollTriggerFiresOnce(t *testing.T) {
	prefs := scrollPrefs(settings.ViewFeed)
	trigger := newScrollTrigger()

	if !trigger.ShouldLoad(80, 100, 20, false, true, prefs) {
		t.Fatal("first bottom approach did not fire")
	}
	if trigger.ShouldLoad(81, 100, 20, false, true, prefs) {
		t.Error("second scroll event at the bottom fired again without a rearm")
	}

	trigger.Rearm()
	if !trigger.ShouldLoad(81, 100, 20, false, true, prefs) {
		t.Error("trigger did not fire after Rearm")
	}
}

func TestScrollTriggerStaysArmedWhenGated(t *testing.T) {
	prefs := scrollPrefs(settings.ViewFeed)
	trigger := newScrollTrigger()

	// A gated check must not consume the armed state.
	if trigger.ShouldLoad(80, 100, 20, true, true, prefs) {
		t.Fatal("fired while loading")
	}
	if !trigger.ShouldLoad(80, 100, 20, false, true, prefs) {
		t.Error("armed state was consumed by a gated check")
	}
}
