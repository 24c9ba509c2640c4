package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/roster/internal/config"
	"github.com/thenoetrevino/roster/internal/database"
	"github.com/thenoetrevino/roster/internal/roster"
	snapshotservice "github.com/thenoetrevino/roster/internal/services/snapshot"
	studentservice "github.com/thenoetrevino/roster/internal/services/student"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	cfg    *config.Config
	logger *slog.Logger

	// Roster store (flat file)
	store *roster.Store

	// Snapshot archive, opened on first use
	archive         *sql.DB
	snapshotService snapshotservice.Service

	// Service layer
	StudentService studentservice.Service
}

// New creates a new App, loading the roster file named by cfg.
// A missing or unreadable roster file leaves the roster empty.
func New(cfg *config.Config, opts ...Option) *App {
	options := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}
	if cfg == nil {
		cfg = config.Default()
	}

	store := options.store
	if store == nil {
		store = roster.Open(cfg.DataFile, roster.WithLogger(options.logger))
	}

	a := &App{
		cfg:            cfg,
		logger:         options.logger,
		store:          store,
		StudentService: studentservice.NewService(store),
	}
	if options.snapshotStore != nil {
		a.snapshotService = snapshotservice.NewService(options.snapshotStore, store)
	}
	return a
}

// Config returns the configuration the app was built with
func (a *App) Config() *config.Config {
	return a.cfg
}

// Store returns the underlying roster store
func (a *App) Store() *roster.Store {
	return a.store
}

// SnapshotService returns the snapshot service, opening the archive database
// on first call
func (a *App) SnapshotService(ctx context.Context) (snapshotservice.Service, error) {
	if a.snapshotService != nil {
		return a.snapshotService, nil
	}

	db, err := database.InitDB(ctx, a.cfg.ArchiveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot archive: %w", err)
	}
	a.archive = db
	a.snapshotService = snapshotservice.NewService(database.NewSnapshotRepo(db), a.store)
	return a.snapshotService, nil
}

// Close performs the shutdown save of the roster and releases the archive.
// Both steps run even if the first fails.
func (a *App) Close() error {
	var errs []error
	if err := a.StudentService.Flush(context.Background()); err != nil {
		errs = append(errs, err)
	}
	if a.archive != nil {
		if err := a.archive.Close(); err != nil {
			a.logger.Error("failed to close snapshot archive", "error", err)
			errs = append(errs, err)
		}
		a.archive = nil
	}
	return errors.Join(errs...)
}
