package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Titles: bold cyan
	colorTitle = color.New(color.FgCyan, color.Bold)

	// Type badges: yellow
	colorType = color.New(color.FgYellow)

	// Categories: magenta
	colorCategory = color.New(color.FgMagenta)

	// Tags: blue
	colorTag = color.New(color.FgBlue)

	// Sticky marker: green
	colorSticky = color.New(color.FgGreen, color.Bold)

	// Protected marker: red
	colorProtected = color.New(color.FgRed)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for dates and secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

func formatTitle(s string) string {
	return colorTitle.Sprint(s)
}

func formatType(s string) string {
	return colorType.Sprint(s)
}

func formatCategory(s string) string {
	return colorCategory.Sprint(s)
}

func formatTag(s string) string {
	return colorTag.Sprint(s)
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
