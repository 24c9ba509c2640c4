package snapshot

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
)

// DeleteCmd returns the snapshot delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a snapshot from the archive",
		Long: `Delete a snapshot. The live roster is not touched.

Examples:
  roster snapshot delete --id=3
`,
		RunE: handler.Command(&deleteHandler{}, parseIDFlag),
	}

	cmd.Flags().Int("id", 0, "Snapshot ID (required)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

// deleteHandler implements handler.Handler for snapshot deletion
type deleteHandler struct{}

// Execute implements the Handler interface
func (h *deleteHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	id := args.GetInt("id", 0)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer closeCLI(cliInstance)

	svc, err := cliInstance.App.SnapshotService(ctx)
	if err != nil {
		return nil, err
	}

	if err := svc.DeleteSnapshot(ctx, id); err != nil {
		return nil, classify(err)
	}
	return &deleteResult{ID: id}, nil
}

type deleteResult struct {
	ID int `json:"id"`
}

// GetID implements quiet mode output
func (r *deleteResult) GetID() int {
	return r.ID
}

// String implements fmt.Stringer for human-readable output
func (r *deleteResult) String() string {
	return fmt.Sprintf("Deleted snapshot %d", r.ID)
}
