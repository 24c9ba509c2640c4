package snapshot

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
	"github.com/thenoetrevino/roster/internal/models"
)

// CreateCmd returns the snapshot create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Archive the current roster",
		Long: `Copy the current roster into the snapshot archive.

Examples:
  roster snapshot create --note="before term 2"

  # Quiet mode for bash capture
  SNAP_ID=$(roster snapshot create --quiet)
`,
		RunE: handler.SimpleCommand(&createHandler{}),
	}

	cmd.Flags().String("note", "", "Free-text note stored with the snapshot")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

// createHandler implements handler.Handler for snapshot creation
type createHandler struct{}

// Execute implements the Handler interface
func (h *createHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	note := args.GetString("note", "")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer closeCLI(cliInstance)

	svc, err := cliInstance.App.SnapshotService(ctx)
	if err != nil {
		return nil, err
	}

	snap, err := svc.CreateSnapshot(ctx, note)
	if err != nil {
		return nil, err
	}
	return &createResult{snap}, nil
}

type createResult struct {
	*models.Snapshot
}

// String implements fmt.Stringer for human-readable output
func (r *createResult) String() string {
	return fmt.Sprintf("Created snapshot %d (%d students)", r.ID, r.Count)
}
