// Package student holds the cli commands that read and change the roster
// e.g., roster add, roster search ...
package student

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/models"
)

// Commands returns the roster subcommands registered on the root command
func Commands() []*cobra.Command {
	return []*cobra.Command{
		AddCmd(),
		RemoveCmd(),
		SearchCmd(),
		ListCmd(),
	}
}

// addOutputFlags registers the agent-friendly flags shared by every command
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (roll numbers only)")
}

func closeCLI(c *cli.CLI) {
	if err := c.Close(); err != nil {
		slog.Error("failed to close CLI", "error", err)
	}
}

const (
	missingFieldsSuggestion = "Pass --name, --roll and --grade, or use --interactive"
	missingRollSuggestion   = "Pass the roll number with --roll"
	notFoundSuggestion      = "Run 'roster list' to see every roll number"
)

// classify maps service errors onto CLI exit codes
func classify(err error) error {
	switch {
	case errors.Is(err, models.ErrMissingFields):
		return cli.NewCommandError(cli.ExitValidation, "VALIDATION_ERROR", models.MissingFieldsMessage, err).
			WithSuggestion(missingFieldsSuggestion)
	case errors.Is(err, models.ErrMissingRollNumber):
		return cli.NewCommandError(cli.ExitValidation, "VALIDATION_ERROR", models.MissingRollNumberMessage, err).
			WithSuggestion(missingRollSuggestion)
	default:
		return err
	}
}
