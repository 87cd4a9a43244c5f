// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Item cards, subtle highlight
	BgSelection string `toml:"bg_selection"` // Cursor, selected item
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Dates, metadata, muted elements
	Accent      string `toml:"accent"`       // Title, active type, borders
	Category    string `toml:"category"`     // Category badges
	Tag         string `toml:"tag"`          // Tag badges
	Sticky      string `toml:"sticky"`       // Sticky item marker
	Warning     string `toml:"warning"`      // Errors, protected content

	// Overlay palette (can override base theme values)
	OverlayBg     string `toml:"overlay_bg"`
	OverlayBorder string `toml:"overlay_border"`
	TextPrimary   string `toml:"text_primary"`
	TextMuted     string `toml:"text_muted"`
	Highlight     string `toml:"highlight"`
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to mocha if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "mocha"
	}
	name = strings.ToLower(name)

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		// Fallback to mocha
		if name != "mocha" {
			return Load("mocha")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

// OverlayPalette provides the detail-overlay colors derived from the theme.
type OverlayPalette struct {
	Bg          string
	Border      string
	TextPrimary string
	TextMuted   string
	Highlight   string
}

// Overlay returns the overlay palette, falling back to base theme colors when needed.
func (t *Theme) Overlay() OverlayPalette {
	return OverlayPalette{
		Bg:          coalesce(t.OverlayBg, t.BgHighlight, t.Bg),
		Border:      coalesce(t.OverlayBorder, t.Accent),
		TextPrimary: coalesce(t.TextPrimary, t.Fg),
		TextMuted:   coalesce(t.TextMuted, t.FgMuted),
		Highlight:   coalesce(t.Highlight, t.BgSelection, t.Accent),
	}
}

func (t *Theme) applyDefaults() {
	if t.OverlayBg == "" {
		t.OverlayBg = coalesce(t.BgHighlight, t.Bg)
	}
	if t.OverlayBorder == "" {
		t.OverlayBorder = t.Accent
	}
	if t.TextPrimary == "" {
		t.TextPrimary = t.Fg
	}
	if t.TextMuted == "" {
		t.TextMuted = t.FgMuted
	}
	if t.Highlight == "" {
		t.Highlight = coalesce(t.BgSelection, t.Accent)
	}
	if t.Category == "" {
		t.Category = t.Accent
	}
	if t.Tag == "" {
		t.Tag = t.Accent
	}
	if t.Sticky == "" {
		t.Sticky = t.Warning
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"mocha", "macchiato", "frappe", "latte"}
}

// IsAvailable reports whether name is a bundled theme.
func IsAvailable(name string) bool {
	for _, n := range Available() {
		if n == name {
			return true
		}
	}
	return false
}
