package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	overlayMinWidth  = 40
	overlayMinHeight = 10
	overlayMaxWidth  = 100
)

// OverlayModel splices the detail panel over the feed so the surrounding
// content stays visible behind it.
type OverlayModel struct {
	active  bool
	bgColor lipgloss.Color
}

// NewOverlayModel initializes an overlay model with the given backdrop color.
func NewOverlayModel(bg lipgloss.Color) OverlayModel {
	return OverlayModel{bgColor: bg}
}

// SetActive controls the overlay visibility.
func (o *OverlayModel) SetActive(active bool) {
	o.active = active
}

// Active reports whether the overlay is visible.
func (o OverlayModel) Active() bool {
	return o.active
}

// BoxSize returns the overlay panel dimensions for a terminal size. The
// panel takes most of the screen but never all of it.
func (o OverlayModel) BoxSize(width, height int) (int, int) {
	boxW := width * 4 / 5
	boxH := height * 4 / 5
	if boxW < overlayMinWidth {
		boxW = overlayMinWidth
	}
	if boxH < overlayMinHeight {
		boxH = overlayMinHeight
	}
	if boxW > overlayMaxWidth {
		boxW = overlayMaxWidth
	}
	if boxW > width {
		boxW = width
	}
	if boxH > height {
		boxH = height
	}
	return boxW, boxH
}

// Render draws the overlay panel on top of base content.
func (o OverlayModel) Render(base string, width, height int, content string) string {
	if !o.active || width <= 0 || height <= 0 {
		return base
	}

	panelLines := strings.Split(content, "\n")
	panelW, panelH := contentSize(panelLines)
	if panelW == 0 || panelH == 0 {
		return base
	}
	if panelW > width {
		panelW = width
	}
	if panelH > height {
		panelLines = panelLines[:height]
		panelH = height
	}

	top := (height - panelH) / 2
	left := (width - panelW) / 2

	bgSeq := ansi.Style{}.BackgroundColor(ansi.HexColor(string(o.bgColor))).String()
	for i, line := range panelLines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > panelW {
			line = ansi.Cut(line, 0, panelW)
			lineWidth = panelW
		}
		if lineWidth < panelW {
			line += bgSeq + strings.Repeat(" ", panelW-lineWidth)
		}
		line = applyBackgroundResets(line, bgSeq)
		panelLines[i] = line + ansi.ResetStyle
	}

	baseLines := normalizeBase(base, width, height)

	lines := make([]string, 0, height)
	for row := 0; row < height; row++ {
		if row < top || row >= top+panelH {
			lines = append(lines, baseLines[row])
			continue
		}

		panelLine := panelLines[row-top]
		baseLine := baseLines[row]
		leftSlice := ansi.Cut(baseLine, 0, left)
		rightSlice := ansi.Cut(baseLine, left+panelW, width)
		lines = append(lines, leftSlice+panelLine+rightSlice)
	}

	return strings.Join(lines, "\n")
}

func contentSize(lines []string) (int, int) {
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth, len(lines)
}

func applyBackgroundResets(line, bgSeq string) string {
	if bgSeq == "" || line == "" {
		return line
	}
	line = strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[0m", "\x1b[0m"+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[49m", "\x1b[49m"+bgSeq)
	return line
}

func normalizeBase(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			lines[i] = ansi.Cut(line, 0, width)
			continue
		}
		if lineWidth < width {
			lines[i] = line + strings.Repeat(" ", width-lineWidth)
		}
	}

	return lines
}
