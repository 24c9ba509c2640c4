package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
	"github.com/thenoetrevino/roster/internal/cli/snapshot"
	"github.com/thenoetrevino/roster/internal/cli/student"
	"github.com/thenoetrevino/roster/internal/cli/tutorial"
	"github.com/thenoetrevino/roster/internal/launcher"
)

var rootCmd = NewRootCmd()

// NewRootCmd builds the roster command tree. Without a subcommand it opens
// the interactive roster window.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Roster - a terminal student roster",
		Long: `Roster keeps a list of students (name, roll number, grade) in students.txt.

Run it without arguments for the interactive window, or use the subcommands
to script it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Inherited by every subcommand
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		usageErr := cli.NewCommandError(cli.ExitUsage, "USAGE_ERROR", err.Error(), err)
		_ = handler.Formatter(c).Failure(usageErr)
		return usageErr
	})

	cmd.AddCommand(student.Commands()...)
	cmd.AddCommand(snapshot.SnapshotCmd())
	cmd.AddCommand(tutorial.TutorialCmd())

	return cmd
}

// Execute runs the root command. Subcommands report their own errors, so only
// errors raised by the root command itself are printed here.
func Execute() error {
	c, err := rootCmd.ExecuteC()
	if err != nil && c == rootCmd {
		var cmdErr *cli.CommandError
		if !errors.As(err, &cmdErr) {
			fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %s\n", err)
		}
	}
	return err
}
