// Package snapshot holds all cli commands related to roster snapshots
// e.g., roster snapshot ...
package snapshot

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
	snapshotservice "github.com/thenoetrevino/roster/internal/services/snapshot"
)

// SnapshotCmd returns the snapshot parent command
func SnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Archive and restore copies of the roster",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(RestoreCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

func closeCLI(c *cli.CLI) {
	if err := c.Close(); err != nil {
		slog.Error("failed to close CLI", "error", err)
	}
}

func classify(err error) error {
	if errors.Is(err, snapshotservice.ErrSnapshotNotFound) {
		return cli.NewCommandError(cli.ExitNotFound, "SNAPSHOT_NOT_FOUND", "snapshot not found", err)
	}
	return err
}

func parseIDFlag(cmd *cobra.Command) error {
	_, err := handler.NewFlagParser(cmd).ParseID("id")
	return err
}
