package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgalindo/wpeek/internal/settings"
	"github.com/mgalindo/wpeek/internal/wp"
)

func (a *App) sourcesCmd() *cobra.Command {
	var customURL string

	cmd := &cobra.Command{
		Use:   "sources",
		Short: "List the selectable API sources",
		Long: `List the API sources the viewer can be pointed at: the configured
site, its parent install, and an optional custom endpoint.

Use --set-custom to record a custom endpoint URL.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if !a.config.HasBaseURL() {
				return fmt.Errorf("no API base URL configured; run 'wpeek config' or set WPEEK_API_BASE_URL")
			}

			prefs, err := a.store.Load()
			if err != nil {
				prefs = settings.Default()
			}

			if customURL != "" {
				prefs.CustomAPIURL = customURL
				if err := a.store.Save(prefs); err != nil {
					return fmt.Errorf("saving custom URL: %w", err)
				}
				fmt.Printf("Custom source set to %s\n\n", customURL)
			}

			registry := wp.NewRegistry(a.config.API.BaseURL)
			if prefs.CustomAPIURL != "" {
				registry.SetCustomURL(prefs.CustomAPIURL)
			}

			for _, s := range registry.Sources() {
				marker := " "
				if s.ID == prefs.APISource {
					marker = "*"
				}
				url := s.BaseURL
				if url == "" {
					url = formatMuted("(not set)")
				}
				fmt.Printf("  %s %-10s %s\n", marker, formatType(s.ID), url)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&customURL, "set-custom", "", "Record a custom API endpoint URL")
	return cmd
}
