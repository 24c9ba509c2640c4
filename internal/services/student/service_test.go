package student

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/roster/internal/models"
	"github.com/thenoetrevino/roster/internal/roster"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func setupService(t *testing.T) (Service, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), roster.DefaultFileName)
	store := roster.Open(path, roster.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	return NewService(store), path
}

// ============================================================================
// TESTS
// ============================================================================

func TestAddStudent(t *testing.T) {
	svc, path := setupService(t)
	ctx := context.Background()

	st, err := svc.AddStudent(ctx, AddStudentRequest{Name: "Alice", RollNumber: "1", Grade: "A"})
	require.NoError(t, err)
	assert.Equal(t, models.Student{Name: "Alice", RollNumber: "1", Grade: "A"}, st)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Alice,1,A\n", string(data))
}

func TestAddStudent_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  AddStudentRequest
	}{
		{"empty name", AddStudentRequest{RollNumber: "1", Grade: "A"}},
		{"empty roll number", AddStudentRequest{Name: "Alice", Grade: "A"}},
		{"empty grade", AddStudentRequest{Name: "Alice", RollNumber: "1"}},
		{"all empty", AddStudentRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, path := setupService(t)

			_, err := svc.AddStudent(context.Background(), tt.req)

			assert.ErrorIs(t, err, ErrMissingFields)
			assert.Empty(t, svc.ListStudents(context.Background()))
			_, statErr := os.Stat(path)
			assert.True(t, os.IsNotExist(statErr), "rejected input must not touch the file")
		})
	}
}

func TestRemoveStudents(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	for _, req := range []AddStudentRequest{
		{Name: "A", RollNumber: "5", Grade: "x"},
		{Name: "B", RollNumber: "5", Grade: "y"},
		{Name: "C", RollNumber: "9", Grade: "z"},
	} {
		_, err := svc.AddStudent(ctx, req)
		require.NoError(t, err)
	}

	removed, err := svc.RemoveStudents(ctx, "5")

	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, []models.Student{{Name: "C", RollNumber: "9", Grade: "z"}}, svc.ListStudents(ctx))
}

func TestRemoveStudents_EmptyRollNumber(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.RemoveStudents(context.Background(), "")

	assert.ErrorIs(t, err, ErrMissingRollNumber)
}

func TestFindStudent(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	_, err := svc.AddStudent(ctx, AddStudentRequest{Name: "Alice", RollNumber: "1", Grade: "A"})
	require.NoError(t, err)

	st, ok := svc.FindStudent(ctx, "1")
	assert.True(t, ok)
	assert.Equal(t, "Alice", st.Name)

	_, ok = svc.FindStudent(ctx, "does-not-exist")
	assert.False(t, ok)
}

func TestFlush(t *testing.T) {
	svc, path := setupService(t)

	require.NoError(t, svc.Flush(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}
