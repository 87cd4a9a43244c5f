package tui

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgalindo/wpeek/internal/config"
	"github.com/mgalindo/wpeek/internal/settings"
	"github.com/mgalindo/wpeek/internal/tui/commands"
	"github.com/mgalindo/wpeek/internal/wp"
)

// recordingStore keeps saved settings in memory.
type recordingStore struct {
	mu    sync.Mutex
	saved []settings.Settings
}

func (s *recordingStore) Load() (settings.Settings, error) {
	return settings.Default(), nil
}

func (s *recordingStore) Save(prefs settings.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append(s.saved, prefs)
	return nil
}

func (s *recordingStore) Close() error { return nil }

func (s *recordingStore) last() (settings.Settings, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.saved) == 0 {
		return settings.Settings{}, false
	}
	return s.saved[len(s.saved)-1], true
}

// contentServer serves type discovery and one-item list pages, recording the
// request paths it saw.
type contentServer struct {
	*httptest.Server
	mu    sync.Mutex
	paths []string
}

func newContentServer() *contentServer {
	cs := &contentServer{}
	cs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cs.mu.Lock()
		cs.paths = append(cs.paths, r.URL.Path)
		cs.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if strings.HasSuffix(r.URL.Path, "/types") {
			_, _ = w.Write([]byte(`{
				"post": {"name": "Posts", "rest_base": "posts"},
				"page": {"name": "Pages", "rest_base": "pages"}
			}`))
			return
		}
		w.Header().Set("X-WP-Total", "1")
		w.Header().Set("X-WP-TotalPages", "1")
		_, _ = w.Write([]byte(`[
			{"id": 1, "type": "post", "title": {"rendered": "First"}, "date": "2024-03-01T10:00:00"}
		]`))
	}))
	return cs
}

func (cs *contentServer) counts() (types, lists int) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	for _, p := range cs.paths {
		if strings.HasSuffix(p, "/types") {
			types++
		} else {
			lists++
		}
	}
	return types, lists
}

func newTestModel(t *testing.T, srv *contentServer, store settings.Store) Model {
	t.Helper()
	cfg := config.Default()
	cfg.API.BaseURL = srv.URL + "/wp-json/wp/v2"
	return *New(cfg, store)
}

// runCmd executes a command and fans a batch out into its member messages.
func runCmd(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("got nil command, want one to run")
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, c())
	}
	return msgs
}

func TestUpdateTypesLoadedStartsFirstPage(t *testing.T) {
	srv := newContentServer()
	defer srv.Close()
	m := newTestModel(t, srv, &recordingStore{})

	types := []wp.ContentType{
		{Name: "posts", Label: "Posts", RestBase: "posts"},
		{Name: "pages", Label: "Pages", RestBase: "pages"},
	}
	updated, cmd := m.Update(commands.TypesLoadedMsg{Types: types})
	m = updated.(Model)

	if m.activeType != "posts" {
		t.Fatalf("activeType = %q, want %q", m.activeType, "posts")
	}
	if cmd == nil {
		t.Fatal("got nil command, want the first page load")
	}

	msg := cmd()
	page, ok := msg.(commands.PageLoadedMsg)
	if !ok {
		t.Fatalf("got %T, want PageLoadedMsg", msg)
	}
	if page.Err != nil {
		t.Fatalf("unexpected error: %v", page.Err)
	}
	if page.ContentType != "posts" {
		t.Errorf("ContentType = %q, want %q", page.ContentType, "posts")
	}
	if page.Outcome == nil || page.Outcome.Added != 1 {
		t.Fatalf("outcome = %+v, want one added item", page.Outcome)
	}

	updated, _ = m.Update(page)
	m = updated.(Model)
	if got := len(m.snapshot().Items); got != 1 {
		t.Errorf("got %d loaded items, want 1", got)
	}

	typeReqs, listReqs := srv.counts()
	if typeReqs != 0 || listReqs != 1 {
		t.Errorf("saw %d type and %d list requests, want 0 and 1", typeReqs, listReqs)
	}
}

func TestUpdateSourceSwitch(t *testing.T) {
	srv := newContentServer()
	defer srv.Close()
	store := &recordingStore{}
	m := newTestModel(t, srv, store)

	// Load the first source's feed so the switch has something to discard.
	updated, cmd := m.Update(commands.TypesLoadedMsg{Types: []wp.ContentType{
		{Name: "posts", Label: "Posts", RestBase: "posts"},
	}})
	m = updated.(Model)
	updated, _ = m.Update(cmd().(commands.PageLoadedMsg))
	m = updated.(Model)
	if got := len(m.snapshot().Items); got != 1 {
		t.Fatalf("got %d items before the switch, want 1", got)
	}
	typesBefore, listsBefore := srv.counts()

	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("S")})
	m = updated.(Model)

	if m.prefs.APISource != wp.SourceParent {
		t.Errorf("APISource = %q, want %q", m.prefs.APISource, wp.SourceParent)
	}
	if got := len(m.snapshot().Items); got != 0 {
		t.Errorf("got %d items after the switch, want 0", got)
	}
	if m.activeType != "" {
		t.Errorf("activeType = %q, want cleared until rediscovery", m.activeType)
	}

	// The switch persists the selection and rediscovers types, nothing else.
	var typesMsg *commands.TypesLoadedMsg
	sawSave := false
	for _, msg := range runCmd(t, cmd) {
		switch msg := msg.(type) {
		case commands.TypesLoadedMsg:
			if typesMsg != nil {
				t.Fatal("source switch discovered types more than once")
			}
			tm := msg
			typesMsg = &tm
		case commands.SettingsSavedMsg:
			if msg.Err != nil {
				t.Errorf("saving settings: %v", msg.Err)
			}
			sawSave = true
		}
	}
	if typesMsg == nil {
		t.Fatal("source switch never discovered types")
	}
	if typesMsg.Err != nil {
		t.Fatalf("type discovery failed: %v", typesMsg.Err)
	}
	if !sawSave {
		t.Error("source switch never persisted the settings")
	}
	if prefs, ok := store.last(); !ok || prefs.APISource != wp.SourceParent {
		t.Errorf("persisted APISource = %q, want %q", prefs.APISource, wp.SourceParent)
	}

	typesAfter, listsAfter := srv.counts()
	if got := typesAfter - typesBefore; got != 1 {
		t.Errorf("switch issued %d type requests, want 1", got)
	}
	if got := listsAfter - listsBefore; got != 0 {
		t.Errorf("switch issued %d list requests before types arrived, want 0", got)
	}

	// Delivering the discovery result loads exactly one first page.
	updated, cmd = m.Update(*typesMsg)
	m = updated.(Model)
	if m.activeType != "post" {
		t.Fatalf("activeType = %q, want %q", m.activeType, "post")
	}
	msg := cmd()
	page, ok := msg.(commands.PageLoadedMsg)
	if !ok {
		t.Fatalf("got %T, want PageLoadedMsg", msg)
	}
	if page.Err != nil {
		t.Fatalf("page load failed: %v", page.Err)
	}
	updated, _ = m.Update(page)
	m = updated.(Model)
	if got := len(m.snapshot().Items); got != 1 {
		t.Errorf("got %d items after rediscovery, want 1", got)
	}

	_, listsFinal := srv.counts()
	if got := listsFinal - listsBefore; got != 1 {
		t.Errorf("switch issued %d list requests in total, want 1", got)
	}
}
