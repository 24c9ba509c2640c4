package snapshot

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/roster/internal/app"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/models"
	"github.com/thenoetrevino/roster/internal/testutil"
	cliutil "github.com/thenoetrevino/roster/internal/testutil/cli"
)

func setup(t *testing.T, students ...models.Student) *app.App {
	t.Helper()
	a := cliutil.SetupCLITest(t)
	require.NoError(t, a.Store().Replace(students))
	return a
}

func TestCreateCommand(t *testing.T) {
	a := setup(t,
		models.Student{Name: "Alice", RollNumber: "1", Grade: "A"},
		models.Student{Name: "Bob", RollNumber: "2", Grade: "B"},
	)

	out, _, err := cliutil.ExecuteCLICommand(t, a, CreateCmd(), []string{"--note=term 1"})

	require.NoError(t, err)
	assert.Equal(t, "Created snapshot 1 (2 students)\n", out)
}

func TestCreateCommand_JSON(t *testing.T) {
	a := setup(t, models.Student{Name: "Alice", RollNumber: "1", Grade: "A"})

	out, _, err := cliutil.ExecuteCLICommand(t, a, CreateCmd(), []string{"--note=n", "--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, out)
	data := result["data"].(map[string]any)
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "n", data["note"])
	assert.Equal(t, float64(1), data["count"])
}

func TestListCommand(t *testing.T) {
	a := setup(t, models.Student{Name: "Alice", RollNumber: "1", Grade: "A"})

	out, _, err := cliutil.ExecuteCLICommand(t, a, ListCmd(), nil)
	require.NoError(t, err)
	assert.Equal(t, "No snapshots found\n", out)

	for _, note := range []string{"first", "second"} {
		_, _, err := cliutil.ExecuteCLICommand(t, a, CreateCmd(), []string{"--note=" + note})
		require.NoError(t, err)
	}

	out, _, err = cliutil.ExecuteCLICommand(t, a, ListCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "2\n1\n", out)

	out, _, err = cliutil.ExecuteCLICommand(t, a, ListCmd(), nil)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[2], "second")
	assert.Contains(t, lines[3], "first")
}

func TestRestoreCommand(t *testing.T) {
	a := setup(t,
		models.Student{Name: "Alice", RollNumber: "1", Grade: "A"},
		models.Student{Name: "Bob", RollNumber: "2", Grade: "B"},
	)
	_, _, err := cliutil.ExecuteCLICommand(t, a, CreateCmd(), nil)
	require.NoError(t, err)

	_, err = a.StudentService.RemoveStudents(context.Background(), "1")
	require.NoError(t, err)

	out, _, err := cliutil.ExecuteCLICommand(t, a, RestoreCmd(), []string{"--id=1"})

	require.NoError(t, err)
	assert.Equal(t, "Restored 2 student(s) from snapshot 1\n", out)
	assert.Equal(t, "Alice,1,A\nBob,2,B\n", testutil.ReadRoster(t, a.Config().DataFile))
}

func TestRestoreCommand_NotFound(t *testing.T) {
	a := setup(t)

	_, errOut, err := cliutil.ExecuteCLICommand(t, a, RestoreCmd(), []string{"--id=9"})

	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	assert.Equal(t, "Error: snapshot not found\n", errOut)
}

func TestRestoreCommand_InvalidID(t *testing.T) {
	a := setup(t)

	_, _, err := cliutil.ExecuteCLICommand(t, a, RestoreCmd(), nil)

	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestDeleteCommand(t *testing.T) {
	a := setup(t, models.Student{Name: "Alice", RollNumber: "1", Grade: "A"})
	_, _, err := cliutil.ExecuteCLICommand(t, a, CreateCmd(), nil)
	require.NoError(t, err)

	out, _, err := cliutil.ExecuteCLICommand(t, a, DeleteCmd(), []string{"--id=1", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	_, _, err = cliutil.ExecuteCLICommand(t, a, DeleteCmd(), []string{"--id=1"})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

	assert.Equal(t, 1, a.Store().Len(), "deleting a snapshot leaves the roster alone")
}
