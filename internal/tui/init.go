// Package tui provides the terminal user interface for wpeek.
package tui

import (
	"fmt"
	"net/url"
	"strings"
)

// applySetupURL validates the URL typed into the setup prompt, persists it to
// the config file, and connects the feed to the new site.
func (m Model) applySetupURL(raw string) (Model, error) {
	base, err := normalizeBaseURL(raw)
	if err != nil {
		return m, err
	}

	m.config.API.BaseURL = base
	if err := m.config.Save(); err != nil {
		return m, fmt.Errorf("saving config: %w", err)
	}

	m.connect(base)
	m.mode = ModeNormal
	m.setup.Blur()
	return m, nil
}

// normalizeBaseURL checks that the input is an absolute http(s) URL and
// appends the standard collection path when only a site root was given.
func normalizeBaseURL(raw string) (string, error) {
	base := strings.TrimSuffix(strings.TrimSpace(raw), "/")
	if base == "" {
		return "", fmt.Errorf("API URL is required")
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("API URL must start with http:// or https://")
	}
	if u.Host == "" {
		return "", fmt.Errorf("API URL must include a host")
	}
	if !strings.Contains(u.Path, "/wp-json") {
		base += "/wp-json/wp/v2"
	}
	return base, nil
}
