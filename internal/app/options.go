package app

import (
	"log/slog"

	"github.com/thenoetrevino/roster/internal/database"
	"github.com/thenoetrevino/roster/internal/roster"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger        *slog.Logger
	store         *roster.Store
	snapshotStore database.SnapshotStore
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithStore uses an already opened roster store instead of opening cfg.DataFile
func WithStore(store *roster.Store) Option {
	return func(cfg *appConfig) {
		cfg.store = store
	}
}

// WithSnapshotStore sets the snapshot archive instead of opening cfg.ArchiveFile
func WithSnapshotStore(store database.SnapshotStore) Option {
	return func(cfg *appConfig) {
		cfg.snapshotStore = store
	}
}
