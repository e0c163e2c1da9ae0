// Package commands implements the callboard subcommands.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/brightline-labs/callboard/internal/cli/config"
	"github.com/brightline-labs/callboard/internal/source"
)

// getConfig returns the loaded CLI configuration.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{
		Database:        config.DefaultDatabase,
		Port:            config.DefaultPort,
		RefreshInterval: config.DefaultRefreshInterval,
		OutputFormat:    config.DefaultOutput,
	}
}

// openStore opens the synced document database.
func openStore(cfg *config.Config) (*source.Store, error) {
	dir := filepath.Dir(cfg.Database)
	if dir != "." && dir != "" && cfg.Database != ":memory:" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	store := source.NewStore()
	if err := store.Open(cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := store.InitSchema(); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}
