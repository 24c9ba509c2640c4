package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/roster/internal/models"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockDataWithID struct {
	ID   int
	Name string
}

func (m mockDataWithID) GetID() int {
	return m.ID
}

type mockLines []string

func (m mockLines) QuietLines() []string {
	return m
}

func newFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

// ============================================================================
// Success Tests
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	f, out, _ := newFormatter(true, false)

	require.NoError(t, f.Success(models.Student{Name: "Alice", RollNumber: "1", Grade: "A"}))

	var result map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, true, result["success"])
	data := result["data"].(map[string]any)
	assert.Equal(t, "Alice", data["name"])
	assert.Equal(t, "1", data["roll_number"])
	assert.Equal(t, "A", data["grade"])
}

func TestOutputFormatter_Success_Human(t *testing.T) {
	f, out, _ := newFormatter(false, false)

	require.NoError(t, f.Success(models.Student{Name: "Alice", RollNumber: "1", Grade: "A"}))

	assert.Equal(t, "Name: Alice, Roll Number: 1, Grade: A\n", out.String())
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{"id getter", mockDataWithID{ID: 42}, "42\n"},
		{"roll number getter", models.Student{RollNumber: "R-7"}, "R-7\n"},
		{"quiet lines", mockLines{"1", "2"}, "1\n2\n"},
		{"no identifier", struct{ X int }{1}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, out, _ := newFormatter(false, true)
			require.NoError(t, f.Success(tt.data))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

// ============================================================================
// Error Tests
// ============================================================================

func TestOutputFormatter_Error_JSON(t *testing.T) {
	f, out, _ := newFormatter(true, false)

	require.NoError(t, f.ErrorWithSuggestion("STUDENT_NOT_FOUND", "Student not found.", "run roster list"))

	var result map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, false, result["success"])
	errData := result["error"].(map[string]any)
	assert.Equal(t, "STUDENT_NOT_FOUND", errData["code"])
	assert.Equal(t, "Student not found.", errData["message"])
	assert.Equal(t, "run roster list", errData["suggestion"])
}

func TestOutputFormatter_Error_HumanGoesToStderr(t *testing.T) {
	f, out, errOut := newFormatter(false, false)

	require.NoError(t, f.Error("VALIDATION_ERROR", "All fields must be filled out."))

	assert.Empty(t, out.String())
	assert.Equal(t, "Error: All fields must be filled out.\n", errOut.String())
}

func TestOutputFormatter_Failure_UsesCommandErrorKind(t *testing.T) {
	f, out, _ := newFormatter(true, false)

	err := NewCommandError(ExitNotFound, "STUDENT_NOT_FOUND", "Student not found.", nil)
	require.NoError(t, f.Failure(err))

	assert.Contains(t, out.String(), `"code":"STUDENT_NOT_FOUND"`)
}

func TestOutputFormatter_Failure_PrintsSuggestion(t *testing.T) {
	f, _, errOut := newFormatter(false, false)

	err := NewCommandError(ExitNotFound, "STUDENT_NOT_FOUND", "Student not found.", nil).
		WithSuggestion("Run 'roster list' to see every roll number")
	require.NoError(t, f.Failure(err))

	assert.Equal(t, "Error: Student not found.\nSuggestion: Run 'roster list' to see every roll number\n", errOut.String())
}

func TestOutputFormatter_Failure_PlainErrorHasNoSuggestion(t *testing.T) {
	f, _, errOut := newFormatter(false, false)

	require.NoError(t, f.Failure(errors.New("disk full")))

	assert.Equal(t, "Error: disk full\n", errOut.String())
}

// ============================================================================
// Exit Code Tests
// ============================================================================

func TestExitCode(t *testing.T) {
	sentinel := errors.New("boom")

	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(sentinel))
	assert.Equal(t, ExitValidation, ExitCode(NewCommandError(ExitValidation, "VALIDATION_ERROR", "", sentinel)))

	wrapped := NewCommandError(ExitNotFound, "", "", sentinel)
	assert.ErrorIs(t, wrapped, sentinel)
	assert.Equal(t, "boom", wrapped.Error())
}
