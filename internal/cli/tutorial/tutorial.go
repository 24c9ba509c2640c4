// Package tutorial prints a short guide to the roster commands
package tutorial

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Show a short guide to roster",
		Long: `Show a short guide to the roster window and commands.

Use --raw to print the markdown source, for scripts and agents.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetBool("raw")
			return outputTutorial(cmd, raw)
		},
	}
	cmd.Flags().Bool("raw", false, "Print the markdown without rendering it")
	return cmd
}

func outputTutorial(cmd *cobra.Command, raw bool) error {
	if raw {
		_, err := fmt.Fprint(cmd.OutOrStdout(), tutorialContent)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	rendered, err := renderer.Render(tutorialContent)
	if err != nil {
		return fmt.Errorf("failed to render tutorial: %w", err)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
	return err
}
