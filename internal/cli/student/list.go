package student

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
	"github.com/thenoetrevino/roster/internal/models"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every student in roster order",
		Long: `List every student, one per line, in roster order.

Examples:
  # Human-readable list
  roster list

  # Rendered table
  roster list --markdown

  # Roll numbers only
  roster list --quiet
`,
		RunE: handler.SimpleCommand(&listHandler{}),
	}

	cmd.Flags().Bool("markdown", false, "Render the roster as a table")
	addOutputFlags(cmd)

	return cmd
}

// listHandler implements handler.Handler for listing the roster
type listHandler struct{}

// Execute implements the Handler interface
func (h *listHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer closeCLI(cliInstance)

	markdown, err := handler.NewFlagParser(args.GetCmd()).ParseBool("markdown")
	if err != nil {
		return nil, err
	}

	result := &listResult{Students: cliInstance.App.StudentService.ListStudents(ctx)}

	if markdown && !args.GetBool("json") && !args.GetBool("quiet") {
		rendered, err := renderMarkdown(result.Students)
		if err != nil {
			return nil, fmt.Errorf("failed to render roster: %w", err)
		}
		return renderedResult(rendered), nil
	}
	return result, nil
}

// listResult represents the whole roster
type listResult struct {
	Students []models.Student `json:"students"`
}

// String renders one canonical line per student
func (r *listResult) String() string {
	lines := make([]string, len(r.Students))
	for i, st := range r.Students {
		lines[i] = st.String()
	}
	return strings.Join(lines, "\n")
}

// QuietLines implements quiet mode output
func (r *listResult) QuietLines() []string {
	lines := make([]string, len(r.Students))
	for i, st := range r.Students {
		lines[i] = st.RollNumber
	}
	return lines
}

type renderedResult string

func (r renderedResult) String() string {
	return strings.TrimRight(string(r), "\n")
}

// RosterMarkdown builds a markdown table of the roster
func RosterMarkdown(students []models.Student) string {
	var b strings.Builder
	b.WriteString("| Name | Roll Number | Grade |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, st := range students {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", escapeCell(st.Name), escapeCell(st.RollNumber), escapeCell(st.Grade))
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func renderMarkdown(students []models.Student) (string, error) {
	if len(students) == 0 {
		return "", nil
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(RosterMarkdown(students))
}
