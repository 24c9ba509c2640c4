package student

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
	"github.com/thenoetrevino/roster/internal/models"
)

// SearchCmd returns the search subcommand
func SearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Show the first student with a roll number",
		Long: `Show the first student (in roster order) whose roll number matches exactly.
Exits with status 3 when there is no match.

Examples:
  roster search --roll=1
  roster search --roll=1 --json
`,
		RunE: handler.SimpleCommand(&searchHandler{}),
	}

	cmd.Flags().String("roll", "", "Roll number to look up")
	addOutputFlags(cmd)

	return cmd
}

// searchHandler implements handler.Handler for looking up a student
type searchHandler struct{}

// Execute implements the Handler interface
func (h *searchHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	rollNumber, err := handler.NewFlagParser(args.GetCmd()).ParseStringOptional("roll")
	if err != nil {
		return nil, err
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer closeCLI(cliInstance)

	student, ok := cliInstance.App.StudentService.FindStudent(ctx, rollNumber)
	if !ok {
		return nil, cli.NewCommandError(cli.ExitNotFound, "STUDENT_NOT_FOUND", models.NotFoundMessage, nil).
			WithSuggestion(notFoundSuggestion)
	}
	return student, nil
}
