// Package testutil holds helpers shared by package tests
package testutil

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thenoetrevino/roster/internal/roster"
)

// DiscardLogger returns a logger that drops every record
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// RosterPath returns a roster file path inside a fresh temp directory
func RosterPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), roster.DefaultFileName)
}

// WriteRoster writes raw lines to path, each terminated by a newline
func WriteRoster(t *testing.T, path string, lines ...string) {
	t.Helper()
	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write roster file: %v", err)
	}
}

// ReadRoster returns the contents of the roster file at path
func ReadRoster(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read roster file: %v", err)
	}
	return string(data)
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}
