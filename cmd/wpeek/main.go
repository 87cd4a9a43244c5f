package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mgalindo/wpeek/internal/config"
	"github.com/mgalindo/wpeek/internal/db"
	"github.com/mgalindo/wpeek/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if dir := filepath.Dir(cfg.Storage.DBPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}
	store, err := db.New(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening settings store: %w", err)
	}
	defer func() { _ = store.Close() }()

	app := ui.NewApp(cfg, store)
	return app.Execute()
}
