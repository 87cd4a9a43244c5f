package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mgalindo/wpeek/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg        lipgloss.Color
	colorBgCard    lipgloss.Color
	colorSelection lipgloss.Color
	colorFg        lipgloss.Color
	colorFgMuted   lipgloss.Color
	colorAccent    lipgloss.Color
	colorCategory  lipgloss.Color
	colorTag       lipgloss.Color
	colorSticky    lipgloss.Color
	colorWarning   lipgloss.Color

	// Chrome
	AppStyle    lipgloss.Style
	TitleStyle  lipgloss.Style
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	HelpStyle   lipgloss.Style

	// Type navigation bar
	TypeStyle       lipgloss.Style
	TypeActiveStyle lipgloss.Style

	// Filter bar
	FilterStyle       lipgloss.Style
	FilterActiveStyle lipgloss.Style

	// Item cards
	ItemTitleStyle    lipgloss.Style
	ItemSelectedStyle lipgloss.Style
	ItemDateStyle     lipgloss.Style
	ItemExcerptStyle  lipgloss.Style
	TypeBadgeStyle    lipgloss.Style
	CategoryStyle     lipgloss.Style
	TagStyle          lipgloss.Style
	StickyStyle       lipgloss.Style
	ProtectedStyle    lipgloss.Style
	FieldStyle        lipgloss.Style
	CardStyle         lipgloss.Style
	CardSelectedStyle lipgloss.Style

	// Carousel
	IndicatorStyle       lipgloss.Style
	IndicatorActiveStyle lipgloss.Style

	// Detail overlay
	OverlayBackdropColor lipgloss.Color
	OverlayStyle         lipgloss.Style
	OverlayTitleStyle    lipgloss.Style
	OverlayHeaderStyle   lipgloss.Style
	OverlayFooterStyle   lipgloss.Style
	OverlayBodyStyle     lipgloss.Style
	OverlayLabelStyle    lipgloss.Style
	OverlayMutedStyle    lipgloss.Style
	MetaKeyStyle         lipgloss.Style
	MetaValueStyle       lipgloss.Style
	BlockHeaderStyle     lipgloss.Style
	TabStyle             lipgloss.Style
	TabActiveStyle       lipgloss.Style

	// Search prompt
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style
}

// NewStyles creates styles derived from the given theme.
func NewStyles(t *theme.Theme) *Styles {
	overlay := t.Overlay()

	s := &Styles{
		colorBg:        theme.Color(t.Bg),
		colorBgCard:    theme.Color(t.BgHighlight),
		colorSelection: theme.Color(t.BgSelection),
		colorFg:        theme.Color(t.Fg),
		colorFgMuted:   theme.Color(t.FgMuted),
		colorAccent:    theme.Color(t.Accent),
		colorCategory:  theme.Color(t.Category),
		colorTag:       theme.Color(t.Tag),
		colorSticky:    theme.Color(t.Sticky),
		colorWarning:   theme.Color(t.Warning),
	}

	s.AppStyle = lipgloss.NewStyle().Background(s.colorBg)
	s.TitleStyle = lipgloss.NewStyle().Foreground(s.colorAccent).Bold(true)
	s.StatusStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)
	s.ErrorStyle = lipgloss.NewStyle().Foreground(s.colorWarning)
	s.HelpStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)

	s.TypeStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted).Padding(0, 1)
	s.TypeActiveStyle = lipgloss.NewStyle().Foreground(s.colorBg).Background(s.colorAccent).Bold(true).Padding(0, 1)

	s.FilterStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)
	s.FilterActiveStyle = lipgloss.NewStyle().Foreground(s.colorBg).Background(s.colorTag).Bold(true)

	s.ItemTitleStyle = lipgloss.NewStyle().Foreground(s.colorFg).Bold(true)
	s.ItemSelectedStyle = lipgloss.NewStyle().Foreground(s.colorAccent).Bold(true)
	s.ItemDateStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)
	s.ItemExcerptStyle = lipgloss.NewStyle().Foreground(s.colorFg)
	s.TypeBadgeStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)
	s.CategoryStyle = lipgloss.NewStyle().Foreground(s.colorCategory)
	s.TagStyle = lipgloss.NewStyle().Foreground(s.colorTag)
	s.StickyStyle = lipgloss.NewStyle().Foreground(s.colorSticky).Bold(true)
	s.ProtectedStyle = lipgloss.NewStyle().Foreground(s.colorWarning)
	s.FieldStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted).Italic(true)

	s.CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorBgCard).
		Padding(0, 1)
	s.CardSelectedStyle = s.CardStyle.
		BorderForeground(s.colorAccent)

	s.IndicatorStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)
	s.IndicatorActiveStyle = lipgloss.NewStyle().Foreground(s.colorAccent).Bold(true)

	s.OverlayBackdropColor = theme.Color(overlay.Bg)
	s.OverlayStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Color(overlay.Border)).
		Background(theme.Color(overlay.Bg)).
		Padding(1, 2)
	s.OverlayTitleStyle = lipgloss.NewStyle().Foreground(theme.Color(overlay.TextPrimary)).Background(theme.Color(overlay.Bg)).Bold(true)
	s.OverlayHeaderStyle = lipgloss.NewStyle().Background(theme.Color(overlay.Bg))
	s.OverlayFooterStyle = lipgloss.NewStyle().Foreground(theme.Color(overlay.TextMuted)).Background(theme.Color(overlay.Bg))
	s.OverlayBodyStyle = lipgloss.NewStyle().Foreground(theme.Color(overlay.TextPrimary)).Background(theme.Color(overlay.Bg))
	s.OverlayLabelStyle = lipgloss.NewStyle().Foreground(theme.Color(overlay.TextMuted)).Background(theme.Color(overlay.Bg))
	s.OverlayMutedStyle = s.OverlayLabelStyle
	s.MetaKeyStyle = lipgloss.NewStyle().Foreground(theme.Color(overlay.TextMuted)).Background(theme.Color(overlay.Bg)).Width(16)
	s.MetaValueStyle = lipgloss.NewStyle().Foreground(theme.Color(overlay.TextPrimary)).Background(theme.Color(overlay.Bg))
	s.BlockHeaderStyle = lipgloss.NewStyle().Foreground(theme.Color(overlay.TextMuted)).Background(theme.Color(overlay.Bg)).Italic(true)
	s.TabStyle = lipgloss.NewStyle().Foreground(theme.Color(overlay.TextMuted)).Background(theme.Color(overlay.Bg)).Padding(0, 1)
	s.TabActiveStyle = lipgloss.NewStyle().Foreground(theme.Color(overlay.Bg)).Background(theme.Color(overlay.Border)).Bold(true).Padding(0, 1)

	s.PromptStyle = lipgloss.NewStyle().Foreground(s.colorFg)
	s.PromptFocusedStyle = lipgloss.NewStyle().Foreground(s.colorAccent)

	return s
}
