// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgalindo/wpeek/internal/feed"
	"github.com/mgalindo/wpeek/internal/settings"
	"github.com/mgalindo/wpeek/internal/wp"
)

const requestTimeout = 30 * time.Second

// TypesLoadedMsg is sent when content-type discovery completes. Types is the
// fallback set when Err is non-nil.
type TypesLoadedMsg struct {
	Types []wp.ContentType
	Err   error
}

// PageLoadedMsg is sent when a page fetch completes. Outcome is nil when the
// call was dropped because a load was already in flight.
type PageLoadedMsg struct {
	ContentType string
	Outcome     *feed.Outcome
	Err         error
}

// ItemLoadedMsg is sent when a detail fetch completes. Token ties the
// response to the overlay session that requested it.
type ItemLoadedMsg struct {
	Token int
	Item  *wp.ContentItem
	Err   error
}

// SettingsSavedMsg is sent when preferences are persisted.
type SettingsSavedMsg struct {
	Err error
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// TypeLister is the part of the API client type discovery needs.
type TypeLister interface {
	ListContentTypes(ctx context.Context) ([]wp.ContentType, error)
}

// ItemGetter is the part of the API client detail fetches need.
type ItemGetter interface {
	GetItem(ctx context.Context, contentType string, id int64) (*wp.ContentItem, error)
}

// LoadContentTypes discovers the browsable content types of the active source.
func LoadContentTypes(client TypeLister) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		types, err := client.ListContentTypes(ctx)
		return TypesLoadedMsg{Types: types, Err: err}
	}
}

// LoadNextPage fetches the next page for the loader's current content type.
func LoadNextPage(loader *feed.Loader) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		contentType := loader.Snapshot().ContentType
		outcome, err := loader.LoadNextPage(ctx)
		return PageLoadedMsg{ContentType: contentType, Outcome: outcome, Err: err}
	}
}

// ResetAndLoad switches the loader to a content type and fetches its first page.
func ResetAndLoad(loader *feed.Loader, contentType string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		outcome, err := loader.ResetAndLoad(ctx, contentType)
		return PageLoadedMsg{ContentType: contentType, Outcome: outcome, Err: err}
	}
}

// FetchItem loads the full record for one item. The token comes back in the
// message so stale responses from closed overlays can be discarded.
func FetchItem(client ItemGetter, contentType string, id int64, token int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		item, err := client.GetItem(ctx, contentType, id)
		return ItemLoadedMsg{Token: token, Item: item, Err: err}
	}
}

// SaveSettings persists the current preferences.
func SaveSettings(store settings.Store, prefs settings.Settings) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return SettingsSavedMsg{Err: fmt.Errorf("no settings store")}
		}
		return SettingsSavedMsg{Err: store.Save(prefs)}
	}
}

// Status shows a temporary status message and schedules its removal.
func Status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}

// ClearStatusAfter clears the status line after the given delay.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
