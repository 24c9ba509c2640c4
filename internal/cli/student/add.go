package student

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
	"github.com/thenoetrevino/roster/internal/models"
	studentservice "github.com/thenoetrevino/roster/internal/services/student"
	"github.com/thenoetrevino/roster/internal/tui/huhforms"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a student to the roster",
		Long: `Add a student with a name, roll number and grade. All three are required.

Examples:
  # Add a student (human-readable output)
  roster add --name="Alice" --roll=1 --grade=A

  # JSON output for agents
  roster add --name="Alice" --roll=1 --grade=A --json

  # Prompt for the fields
  roster add --interactive
`,
		RunE: handler.SimpleCommand(&addHandler{}),
	}

	cmd.Flags().String("name", "", "Student name")
	cmd.Flags().String("roll", "", "Roll number")
	cmd.Flags().String("grade", "", "Grade")
	cmd.Flags().BoolP("interactive", "i", false, "Prompt for the student fields")
	addOutputFlags(cmd)

	return cmd
}

// addHandler implements handler.Handler for adding a student
type addHandler struct{}

// Execute implements the Handler interface
func (h *addHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	name := args.GetString("name", "")
	rollNumber := args.GetString("roll", "")
	grade := args.GetString("grade", "")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer closeCLI(cliInstance)

	interactive, err := handler.NewFlagParser(args.GetCmd()).ParseBool("interactive")
	if err != nil {
		return nil, err
	}
	if interactive {
		form := huhforms.CreateStudentForm(&name, &rollNumber, &grade).
			WithTheme(huhforms.CreateRosterTheme(cliInstance.App.Config().ColorScheme))
		if err := form.RunWithContext(ctx); err != nil {
			return nil, fmt.Errorf("input cancelled: %w", err)
		}
	}

	student, err := cliInstance.App.StudentService.AddStudent(ctx, studentservice.AddStudentRequest{
		Name:       name,
		RollNumber: rollNumber,
		Grade:      grade,
	})
	if err != nil {
		return nil, classify(err)
	}

	return &addResult{Student: student}, nil
}

// addResult represents the result of adding a student
type addResult struct {
	models.Student
}

// String implements fmt.Stringer for human-readable output
func (r *addResult) String() string {
	return "Student added: " + r.Student.String()
}
