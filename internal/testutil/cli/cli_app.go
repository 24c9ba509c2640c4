// Package cli runs cobra commands against a test app.
// It lives apart from testutil so that store and service tests can import
// testutil without pulling in the app container.
package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/app"
	rostercli "github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/config"
	"github.com/thenoetrevino/roster/internal/testutil"
)

// SetupCLITest returns an app whose roster and archive live in a temp directory
func SetupCLITest(t *testing.T) *app.App {
	t.Helper()
	dir := t.TempDir()

	cfg := config.Default()
	cfg.DataFile = filepath.Join(dir, "students.txt")
	cfg.ArchiveFile = filepath.Join(dir, "archive.db")

	appInstance := app.New(cfg, app.WithLogger(testutil.DiscardLogger()))
	t.Cleanup(func() {
		_ = appInstance.Close()
	})
	return appInstance
}

// ExecuteCLICommand executes a CLI command with a test app instance and
// returns what it wrote to stdout and stderr
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()
	return ExecuteCLICommandWithContext(t, context.Background(), testApp, cmd, args)
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context and test app
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	ctxWithApp := context.WithValue(ctx, rostercli.AppKey, testApp)
	err := cmd.ExecuteContext(ctxWithApp)

	return stdout.String(), stderr.String(), err
}
