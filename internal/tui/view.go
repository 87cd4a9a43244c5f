package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/mgalindo/wpeek/internal/tui/view"
)

// View renders the TUI.
func (m Model) View() string {
	if m.mode == ModeSetup {
		return m.renderSetup()
	}

	state := view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      m.renderAppContent(),
		EmptyPlaceholder: "Loading...",
	}
	if m.detail.Visible() {
		state.ShowOverlay = true
		state.OverlayContent = m.renderDetailPanel()
		state.Overlay = m.overlay
	}
	return view.Render(state)
}

func (m Model) renderAppContent() string {
	header := m.renderHeader()
	footer := m.renderFooter()
	content := lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), footer)
	return view.PadLinesWithBackground(content, m.width, m.height, m.styles.colorBg)
}

func (m Model) renderHeader() string {
	s := m.snapshot()
	return view.RenderHeader(view.HeaderViewState{
		Width:        m.width,
		SourceLabel:  m.sourceLabel(),
		Types:        m.types,
		ActiveType:   m.activeType,
		Category:     m.categoryLabel(),
		Tag:          m.tagLabel(),
		Search:       s.Search,
		Total:        s.Total,
		Loaded:       len(s.Items),
		Title:        m.styles.TitleStyle,
		Muted:        m.styles.StatusStyle,
		Type:         m.styles.TypeStyle,
		TypeActive:   m.styles.TypeActiveStyle,
		Filter:       m.styles.FilterStyle,
		FilterActive: m.styles.FilterActiveStyle,
	})
}

func (m Model) renderFooter() string {
	return view.RenderFooter(view.FooterViewState{
		InnerW:     m.width,
		FooterH:    footerHeight,
		StatusLine: m.statusLine(),
		HelpLine:   m.styles.HelpStyle.Render(m.helpLine()),
		VAlign:     lipgloss.Bottom,
		Bg:         m.styles.colorBg,
	})
}

func (m Model) statusLine() string {
	if m.mode == ModeSearch {
		return m.search.View()
	}
	s := m.snapshot()
	if s.IsLoading {
		return m.spinner.View() + m.styles.StatusStyle.Render(" loading...")
	}
	if m.statusMsg != "" {
		return m.styles.ErrorStyle.Render(m.statusMsg)
	}

	parts := []string{m.prefs.MainViewMode, m.prefs.ItemSize}
	if !s.HasMore && len(s.Items) > 0 {
		parts = append(parts, "all loaded")
	}
	parts = append(parts, strconv.Itoa(m.prefs.ItemsPerPage)+"/page")
	return m.styles.StatusStyle.Render(strings.Join(parts, " · "))
}

func (m Model) helpLine() string {
	if m.mode == ModeDetail {
		return "j/k scroll  b view  ←/→ block  c copy link  esc close"
	}
	return "j/k move  tab type  v view  z size  s sort  / search  c/t filter  S source  enter open  q quit"
}

// renderDetailPanel builds the overlay panel: a framed box holding the
// scrollable detail body and a footer with loading state.
func (m Model) renderDetailPanel() string {
	boxW, boxH := m.overlay.BoxSize(m.width, m.height)
	frame := m.styles.OverlayStyle
	innerW := boxW - frame.GetHorizontalFrameSize()
	innerH := boxH - frame.GetVerticalFrameSize()
	if innerW < 1 || innerH < 2 {
		return ""
	}

	footer := m.detailFooter(innerW)
	body := m.detailVP.View()

	return frame.Width(innerW).Height(innerH).Render(body + "\n" + footer)
}

func (m Model) detailFooter(width int) string {
	var text string
	switch {
	case m.detail.Loading():
		text = m.spinner.View() + " loading full content..."
	case m.detail.phase == DetailFailed:
		text = "Couldn't load full content; showing summary."
	default:
		text = "tabs: " + m.detail.contentMode
	}
	return m.styles.OverlayFooterStyle.Render(view.Truncate(text, width))
}

// setupDetailViewport sizes the detail viewport for the current terminal and
// fills it with the detail body.
func (m *Model) setupDetailViewport() {
	boxW, boxH := m.overlay.BoxSize(m.width, m.height)
	frame := m.styles.OverlayStyle
	innerW := boxW - frame.GetHorizontalFrameSize()
	innerH := boxH - frame.GetVerticalFrameSize() - 1
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}
	m.detailVP = viewportSized(innerW, innerH)
	m.refreshDetail()
}

// refreshDetail re-renders the detail body into the overlay viewport.
func (m *Model) refreshDetail() {
	content := view.RenderDetail(m.detail.item, view.DetailOptions{
		Width:       m.detailVP.Width,
		Mode:        m.detail.contentMode,
		BlockCursor: m.detail.blockCursor,
		Styles:      m.detailStyles(),
	})
	m.detailVP.SetContent(content)
}

func (m Model) renderSetup() string {
	lines := []string{
		m.styles.TitleStyle.Render("wpeek"),
		"",
		m.styles.StatusStyle.Render("No API endpoint configured."),
		m.styles.StatusStyle.Render("Enter the site URL or its /wp-json/wp/v2 base:"),
		"",
		m.setup.View(),
		"",
	}
	if m.statusMsg != "" {
		lines = append(lines, m.styles.ErrorStyle.Render(m.statusMsg))
	}
	lines = append(lines, m.styles.HelpStyle.Render("enter confirm  esc quit"))

	content := strings.Join(lines, "\n")
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func viewportSized(w, h int) viewport.Model {
	vp := viewport.New(w, h)
	return vp
}

// onDetailResolved refreshes the overlay body after a fetch response lands.
func (m *Model) onDetailResolved() {
	if m.detail.Visible() {
		m.refreshDetail()
	}
}
