package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgalindo/wpeek/internal/config"
	"github.com/mgalindo/wpeek/internal/feed"
	"github.com/mgalindo/wpeek/internal/logger"
	"github.com/mgalindo/wpeek/internal/settings"
	"github.com/mgalindo/wpeek/internal/tui/theme"
	"github.com/mgalindo/wpeek/internal/wp"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch      // Typing into the search prompt
	ModeDetail      // Detail overlay open
	ModeSetup       // No API base URL configured yet
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	config *config.Config
	store  settings.Store
	log    *logger.Logger

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Content state
	registry *wp.Registry
	client   *wp.Client
	loader   *feed.Loader
	prefs    settings.Settings

	types      []wp.ContentType
	activeType string
	typesErr   error

	// Navigation state
	mode    Mode
	cursor  int // index into the visible items
	trigger scrollTrigger

	// Detail overlay
	detail  detailState
	overlay OverlayModel

	// Components
	viewport viewport.Model
	detailVP viewport.Model
	spinner  spinner.Model
	search   textinput.Model
	setup    textinput.Model

	// Terminal dimensions
	width  int
	height int
	ready  bool

	// Messages
	statusMsg  string
	statusTime time.Time

	// Error state
	err error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithLogger sets the structured logger used for background events.
func WithLogger(log *logger.Logger) ModelOption {
	return func(m *Model) {
		m.log = log
	}
}

// New creates a new TUI model. Preferences are loaded from the store; a
// missing or corrupt blob falls back to defaults without failing startup.
func New(cfg *config.Config, store settings.Store, opts ...ModelOption) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	prefs, err := store.Load()
	if err != nil {
		prefs = settings.Default()
	}

	search := textinput.New()
	search.Placeholder = "search..."
	search.Prompt = "/ "
	search.CharLimit = 128
	search.PromptStyle = styles.PromptFocusedStyle
	search.TextStyle = styles.PromptStyle

	setup := textinput.New()
	setup.Placeholder = "https://example.com/wp-json/wp/v2"
	setup.Prompt = "> "
	setup.CharLimit = 256
	setup.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.TitleStyle

	m := &Model{
		config:  cfg,
		store:   store,
		log:     logger.Discard(),
		theme:   t,
		styles:  styles,
		prefs:   prefs,
		trigger: newScrollTrigger(),
		overlay: NewOverlayModel(styles.OverlayBackdropColor),
		search:  search,
		setup:   setup,
		spinner: sp,
		mode:    ModeNormal,
	}
	for _, opt := range opts {
		opt(m)
	}

	if !cfg.HasBaseURL() {
		m.mode = ModeSetup
		m.setup.Focus()
		return m
	}

	m.connect(cfg.API.BaseURL)
	return m
}

// connect builds the registry, client, and loader for the given site base.
func (m *Model) connect(baseURL string) {
	m.registry = wp.NewRegistry(baseURL)
	if m.prefs.CustomAPIURL != "" {
		m.registry.SetCustomURL(m.prefs.CustomAPIURL)
	}
	m.setClient(m.registry.Resolve(m.prefs.APISource))
}

// setClient points the feed at a source, discarding all loaded content.
func (m *Model) setClient(source wp.Source) {
	m.client = wp.New(source,
		wp.WithNonce(m.config.API.Nonce),
		wp.WithTimeout(m.config.Timeout()),
		wp.WithLogger(m.log),
	)
	m.loader = feed.NewLoader(m.client, feed.Options{
		ContentType:    "posts",
		PageSize:       m.prefs.ItemsPerPage,
		SortDescending: m.prefs.SortDescending,
		Logger:         m.log,
	})
	m.types = nil
	m.activeType = ""
	m.cursor = 0
	m.trigger = newScrollTrigger()
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.mode == ModeSetup {
		return textinput.Blink
	}
	return tea.Batch(m.spinner.Tick, m.loadTypesCmd())
}

// Run starts the TUI.
func Run(cfg *config.Config, store settings.Store) error {
	return RunWithDebug(cfg, store, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(cfg *config.Config, store settings.Store, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(cfg, store)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
