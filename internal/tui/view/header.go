package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mgalindo/wpeek/internal/wp"
)

// HeaderViewState holds what the header section renders: the app title with
// the active source, the content-type bar, and the active filters.
type HeaderViewState struct {
	Width          int
	SourceLabel    string
	Types          []wp.ContentType
	ActiveType     string
	Category       string
	Tag            string
	Search         string
	Total          int
	Loaded         int
	Title          lipgloss.Style
	Muted          lipgloss.Style
	Type           lipgloss.Style
	TypeActive     lipgloss.Style
	Filter         lipgloss.Style
	FilterActive   lipgloss.Style
}

// RenderHeader renders the title line and the type bar.
func RenderHeader(state HeaderViewState) string {
	title := state.Title.Render("wpeek") + state.Muted.Render("  "+state.SourceLabel)
	if state.Total > 0 {
		title += state.Muted.Render("  " + strconv.Itoa(state.Loaded) + "/" + strconv.Itoa(state.Total))
	}

	lines := []string{Truncate(title, state.Width), renderTypeBar(state)}
	if filters := renderFilterLine(state); filters != "" {
		lines = append(lines, filters)
	}
	return strings.Join(lines, "\n")
}

func renderTypeBar(state HeaderViewState) string {
	parts := make([]string, 0, len(state.Types))
	for _, t := range state.Types {
		label := t.Label
		if label == "" {
			label = t.Name
		}
		if t.Name == state.ActiveType {
			parts = append(parts, state.TypeActive.Render(label))
		} else {
			parts = append(parts, state.Type.Render(label))
		}
	}
	return Truncate(strings.Join(parts, " "), state.Width)
}

func renderFilterLine(state HeaderViewState) string {
	parts := make([]string, 0, 3)
	if state.Category != "" && state.Category != "all" {
		parts = append(parts, state.FilterActive.Render(" @"+state.Category+" "))
	}
	if state.Tag != "" && state.Tag != "all" {
		parts = append(parts, state.FilterActive.Render(" #"+state.Tag+" "))
	}
	if state.Search != "" {
		parts = append(parts, state.Filter.Render("search: "+state.Search))
	}
	if len(parts) == 0 {
		return ""
	}
	return Truncate(strings.Join(parts, " "), state.Width)
}
