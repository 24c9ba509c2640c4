// Package cli holds the shared plumbing of the roster command line:
// app lookup, output formatting and exit codes
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/roster/internal/app"
	"github.com/thenoetrevino/roster/internal/config"
	"github.com/thenoetrevino/roster/internal/logging"
)

// ContextKey is the type of context keys owned by this package
type ContextKey string

// AppKey carries a prebuilt *app.App through a command context.
// Commands reuse it instead of loading config, and do not close it.
const AppKey ContextKey = "app"

// CLI represents the CLI application context
type CLI struct {
	App   *app.App // Application container with services
	owned bool
}

// NewCLI loads configuration, routes logs to the log file and opens the roster
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if appDir, err := config.AppDir(); err == nil {
		if err := logging.Init(appDir); err != nil {
			slog.Warn("failed to initialize file logging", "error", err)
		}
	}

	return &CLI{
		App:   app.New(cfg),
		owned: true,
	}, nil
}

// GetCLIFromContext returns the CLI for a command, reusing an app injected
// under AppKey when present
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if a, ok := ctx.Value(AppKey).(*app.App); ok && a != nil {
			return &CLI{App: a}, nil
		}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return NewCLI(ctx)
}

// Close performs the shutdown save when this CLI created the app
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
