// Package launcher starts the interactive roster window
package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/roster/internal/app"
	"github.com/thenoetrevino/roster/internal/config"
	"github.com/thenoetrevino/roster/internal/logging"
	"github.com/thenoetrevino/roster/internal/tui"
)

// Launch starts the TUI application and saves the roster when it exits
func Launch() error {
	appDir, err := config.AppDir()
	if err != nil {
		return fmt.Errorf("failed to locate application directory: %w", err)
	}

	// Initialize logging to file before anything else
	if err := logging.Init(appDir); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	application := app.New(cfg)

	// shutdown save
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error saving roster on exit", "error", err)
		}
	}()

	model := tui.InitialModel(ctx, application.StudentService, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			slog.Info("shutdown signal received, cleaning up")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}
