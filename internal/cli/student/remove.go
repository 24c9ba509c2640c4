package student

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
)

// RemoveCmd returns the remove subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove every student with a roll number",
		Long: `Remove all students whose roll number matches exactly.
Removing a roll number that is not on the roster is not an error.

Examples:
  roster remove --roll=5

  # Print only the number of removed students
  roster remove --roll=5 --quiet
`,
		RunE: handler.SimpleCommand(&removeHandler{}),
	}

	cmd.Flags().String("roll", "", "Roll number to remove")
	addOutputFlags(cmd)

	return cmd
}

// removeHandler implements handler.Handler for removing students
type removeHandler struct{}

// Execute implements the Handler interface
func (h *removeHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	rollNumber, err := handler.NewFlagParser(args.GetCmd()).ParseStringOptional("roll")
	if err != nil {
		return nil, err
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer closeCLI(cliInstance)

	removed, err := cliInstance.App.StudentService.RemoveStudents(ctx, rollNumber)
	if err != nil {
		return nil, classify(err)
	}

	return &removeResult{RollNumber: rollNumber, Removed: removed}, nil
}

// removeResult represents the result of a removal
type removeResult struct {
	RollNumber string `json:"roll_number"`
	Removed    int    `json:"removed"`
}

// String implements fmt.Stringer for human-readable output
func (r *removeResult) String() string {
	return fmt.Sprintf("Removed %d student(s) with roll number %s", r.Removed, r.RollNumber)
}

// QuietLines implements quiet mode output
func (r *removeResult) QuietLines() []string {
	return []string{strconv.Itoa(r.Removed)}
}
