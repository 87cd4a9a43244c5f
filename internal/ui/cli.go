// Package ui implements the wpeek command line interface.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgalindo/wpeek/internal/config"
	"github.com/mgalindo/wpeek/internal/logger"
	"github.com/mgalindo/wpeek/internal/settings"
	"github.com/mgalindo/wpeek/internal/tui"
	"github.com/mgalindo/wpeek/internal/wp"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	store  settings.Store
	root   *cobra.Command
	debug  bool
}

// NewApp creates a new CLI application with the given config and settings store.
func NewApp(cfg *config.Config, store settings.Store) *App {
	a := &App{config: cfg, store: store}

	a.root = &cobra.Command{
		Use:   "wpeek",
		Short: "A terminal viewer for WordPress-style content APIs",
		Long: `Wpeek browses the content of any WordPress-style REST API from the
terminal: posts, pages, media, and custom types, with live search,
category and tag filters, and infinite scrolling.

Run without arguments to open the interactive viewer.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.RunWithDebug(a.config, a.store, a.debug)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to wpeek-debug.log)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.typesCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.sourcesCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("wpeek %s (commit: %s)\n", Version, Commit)
		},
	}
}

// client builds an API client for the selected source. The --source flag
// value overrides the persisted preference.
func (a *App) client(sourceID string) (*wp.Client, error) {
	if !a.config.HasBaseURL() {
		return nil, fmt.Errorf("no API base URL configured; run 'wpeek config' or set WPEEK_API_BASE_URL")
	}

	prefs, err := a.store.Load()
	if err != nil {
		prefs = settings.Default()
	}
	if sourceID == "" {
		sourceID = prefs.APISource
	}

	registry := wp.NewRegistry(a.config.API.BaseURL)
	if prefs.CustomAPIURL != "" {
		registry.SetCustomURL(prefs.CustomAPIURL)
	}

	return wp.New(registry.Resolve(sourceID),
		wp.WithNonce(a.config.API.Nonce),
		wp.WithTimeout(a.config.Timeout()),
		wp.WithLogger(logger.New(logger.Config{
			Level:  a.config.Log.Level,
			Format: a.config.Log.Format,
		})),
	), nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
