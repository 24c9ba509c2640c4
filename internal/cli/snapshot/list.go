package snapshot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
	"github.com/thenoetrevino/roster/internal/models"
)

// ListCmd returns the snapshot list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived snapshots",
		Long: `List all snapshots, newest first.

Examples:
  # Human-readable list
  roster snapshot list

  # Quiet mode (one ID per line)
  roster snapshot list --quiet
`,
		RunE: handler.SimpleCommand(&listHandler{}),
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

// listHandler implements handler.Handler for listing snapshots
type listHandler struct{}

// Execute implements the Handler interface
func (h *listHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer closeCLI(cliInstance)

	svc, err := cliInstance.App.SnapshotService(ctx)
	if err != nil {
		return nil, err
	}

	snapshots, err := svc.ListSnapshots(ctx)
	if err != nil {
		return nil, err
	}
	return &listResult{Snapshots: snapshots}, nil
}

type listResult struct {
	Snapshots []*models.Snapshot `json:"snapshots"`
}

// String implements fmt.Stringer for human-readable output
func (r *listResult) String() string {
	if len(r.Snapshots) == 0 {
		return "No snapshots found"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %-4s %-20s %-6s %s\n", "ID", "Created", "Count", "Note")
	b.WriteString("  " + strings.Repeat("-", 50))
	for _, s := range r.Snapshots {
		fmt.Fprintf(&b, "\n  %-4d %-20s %-6d %s",
			s.ID, s.CreatedAt.Local().Format("2006-01-02 15:04:05"), s.Count, s.Note)
	}
	return b.String()
}

// QuietLines implements quiet mode output
func (r *listResult) QuietLines() []string {
	lines := make([]string, len(r.Snapshots))
	for i, s := range r.Snapshots {
		lines[i] = strconv.Itoa(s.ID)
	}
	return lines
}
