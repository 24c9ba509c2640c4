package snapshot

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
)

// RestoreCmd returns the snapshot restore subcommand
func RestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Replace the roster with a snapshot",
		Long: `Replace the whole roster with the students of a snapshot and save it.

Examples:
  roster snapshot restore --id=3
`,
		RunE: handler.Command(&restoreHandler{}, parseIDFlag),
	}

	cmd.Flags().Int("id", 0, "Snapshot ID (required)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (student count only)")

	return cmd
}

// restoreHandler implements handler.Handler for snapshot restore
type restoreHandler struct{}

// Execute implements the Handler interface
func (h *restoreHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
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

	restored, err := svc.RestoreSnapshot(ctx, id)
	if err != nil {
		return nil, classify(err)
	}
	return &restoreResult{ID: id, Restored: restored}, nil
}

type restoreResult struct {
	ID       int `json:"id"`
	Restored int `json:"restored"`
}

// String implements fmt.Stringer for human-readable output
func (r *restoreResult) String() string {
	return fmt.Sprintf("Restored %d student(s) from snapshot %d", r.Restored, r.ID)
}

// QuietLines implements quiet mode output
func (r *restoreResult) QuietLines() []string {
	return []string{strconv.Itoa(r.Restored)}
}
