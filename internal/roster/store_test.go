package roster

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/roster/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupStore opens a store on a fresh file in a temp dir, optionally seeded
func setupStore(t *testing.T, contents string) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if contents != "" {
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	}
	return Open(path, WithLogger(quietLogger())), path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// ============================================================================
// LOAD
// ============================================================================

func TestOpen_MissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.txt")

	s := Open(path, WithLogger(quietLogger()))

	assert.Equal(t, 0, s.Len())
	assert.NoError(t, s.Load())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "loading must not create the file")
}

func TestLoad_SkipsMalformedLines(t *testing.T) {
	s, _ := setupStore(t, "Alice,1\nBob,2,B\n")

	assert.Equal(t, []models.Student{{Name: "Bob", RollNumber: "2", Grade: "B"}}, s.All())
}

func TestLoad_PreservesFileOrder(t *testing.T) {
	s, _ := setupStore(t, "C,3,x\nA,1,y\r\nB,2,z")

	want := []models.Student{
		{Name: "C", RollNumber: "3", Grade: "x"},
		{Name: "A", RollNumber: "1", Grade: "y"},
		{Name: "B", RollNumber: "2", Grade: "z"},
	}
	if diff := cmp.Diff(want, s.All()); diff != "" {
		t.Errorf("roster mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_BlankAndJunkLines(t *testing.T) {
	s, _ := setupStore(t, "\n\nnot a record\nA,1,y\n,,\na,b,c,d\n")

	assert.Equal(t, 1, s.Len())
}

func TestLoad_ReplacesInMemoryRoster(t *testing.T) {
	s, path := setupStore(t, "A,1,y\n")
	require.NoError(t, os.WriteFile(path, []byte("B,2,z\n"), 0o644))

	require.NoError(t, s.Load())

	assert.Equal(t, []models.Student{{Name: "B", RollNumber: "2", Grade: "z"}}, s.All())
}

func TestLoad_UnreadablePathReturnsErrLoad(t *testing.T) {
	dir := t.TempDir()

	s := New(dir, WithLogger(quietLogger()))
	err := s.Load()

	assert.ErrorIs(t, err, ErrLoad)
	assert.Equal(t, 0, s.Len())
}

func TestOpen_UnreadablePathIsNotFatal(t *testing.T) {
	s := Open(t.TempDir(), WithLogger(quietLogger()))

	assert.Equal(t, 0, s.Len())
}

// ============================================================================
// SAVE
// ============================================================================

func TestSave_Format(t *testing.T) {
	s, path := setupStore(t, "")

	require.NoError(t, s.Add(models.Student{Name: "Alice", RollNumber: "1", Grade: "A"}))
	require.NoError(t, s.Add(models.Student{Name: "Bob", RollNumber: "2", Grade: "B"}))

	assert.Equal(t, "Alice,1,A\nBob,2,B\n", readFile(t, path))
}

func TestSave_EmptyRosterWritesEmptyFile(t *testing.T) {
	s, path := setupStore(t, "")

	require.NoError(t, s.Save())

	assert.Equal(t, "", readFile(t, path))
}

func TestSave_Idempotent(t *testing.T) {
	s, path := setupStore(t, "Alice,1,A\nBob,2,B\n")

	require.NoError(t, s.Save())
	first := readFile(t, path)
	require.NoError(t, s.Save())
	second := readFile(t, path)

	assert.Equal(t, first, second)
}

func TestSave_DropsMalformedLines(t *testing.T) {
	s, path := setupStore(t, "junk\nAlice,1,A\n")

	require.NoError(t, s.Save())

	assert.Equal(t, "Alice,1,A\n", readFile(t, path))
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	s, path := setupStore(t, "")
	require.NoError(t, s.Add(models.Student{Name: "Alice", RollNumber: "1", Grade: "A"}))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSave_FileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	s := Open(path, WithLogger(quietLogger()), WithFileMode(0o600))

	require.NoError(t, s.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSave_FailureLeavesExistingFile(t *testing.T) {
	// The longest name the filesystem allows: the file itself can exist but
	// the temp file beside it, which appends random digits, cannot.
	path := filepath.Join(t.TempDir(), strings.Repeat("r", 255))
	require.NoError(t, os.WriteFile(path, []byte("Alice,1,A\n"), 0o644))
	s := Open(path, WithLogger(quietLogger()))
	require.Equal(t, 1, s.Len())

	err := s.Add(models.Student{Name: "Bob", RollNumber: "2", Grade: "B"})

	assert.ErrorIs(t, err, ErrSave)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "Alice,1,A\n", readFile(t, path))
}

func TestRoundTrip(t *testing.T) {
	students := []models.Student{
		{Name: "Alice", RollNumber: "1", Grade: "A"},
		{Name: "Bob", RollNumber: "1", Grade: "B"},
		{Name: "Carol Smith", RollNumber: "CS-42", Grade: "A+"},
		{Name: "Dan", RollNumber: "", Grade: "C"},
	}
	path := filepath.Join(t.TempDir(), DefaultFileName)
	s := New(path, WithLogger(quietLogger()))
	require.NoError(t, s.Replace(students))

	reloaded := Open(path, WithLogger(quietLogger()))

	if diff := cmp.Diff(students, reloaded.All()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

// Trailing empty fields are dropped when a line is split, so such records
// are written but not read back.
func TestRoundTrip_TrailingEmptyFieldsAreLost(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	s := New(path, WithLogger(quietLogger()))
	require.NoError(t, s.Replace([]models.Student{
		{Name: "A", RollNumber: "1", Grade: ""},
		{Name: "B", RollNumber: "", Grade: ""},
		{Name: "C", RollNumber: "3", Grade: "c"},
	}))

	assert.Equal(t, "A,1,\nB,,\nC,3,c\n", readFile(t, path))

	reloaded := Open(path, WithLogger(quietLogger()))
	assert.Equal(t, []models.Student{{Name: "C", RollNumber: "3", Grade: "c"}}, reloaded.All())
}

// ============================================================================
// FLUSH
// ============================================================================

func TestFlush_WritesLoadedRoster(t *testing.T) {
	s, path := setupStore(t, "A,1,x\njunk\n")

	require.NoError(t, s.Flush())

	assert.Equal(t, "A,1,x\n", readFile(t, path))
}

func TestFlush_SkippedAfterFailedLoad(t *testing.T) {
	dir := t.TempDir()
	s := Open(dir, WithLogger(quietLogger()))

	require.NoError(t, s.Flush())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir(), "the unreadable path is left alone")
}

func TestFlush_SavesOnceRosterChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	s := New(path, WithLogger(quietLogger()))
	s.loadFailed = true

	require.NoError(t, s.Add(models.Student{Name: "A", RollNumber: "1", Grade: "x"}))
	require.NoError(t, os.Remove(path))
	require.NoError(t, s.Flush())

	assert.Equal(t, "A,1,x\n", readFile(t, path))
}

// ============================================================================
// MUTATIONS
// ============================================================================

func TestAddThenSearch(t *testing.T) {
	s, _ := setupStore(t, "")

	require.NoError(t, s.Add(models.Student{Name: "Alice", RollNumber: "1", Grade: "A"}))

	got, ok := s.Search("1")
	require.True(t, ok)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "A", got.Grade)
}

func TestAdd_AllowsDuplicates(t *testing.T) {
	s, path := setupStore(t, "")
	st := models.Student{Name: "Alice", RollNumber: "1", Grade: "A"}

	require.NoError(t, s.Add(st))
	require.NoError(t, s.Add(st))

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "Alice,1,A\nAlice,1,A\n", readFile(t, path))
}

func TestAdd_SaveFailureKeepsRecordInMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", DefaultFileName)
	s := Open(path, WithLogger(quietLogger()))

	err := s.Add(models.Student{Name: "Alice", RollNumber: "1", Grade: "A"})

	assert.ErrorIs(t, err, ErrSave)
	assert.Equal(t, 1, s.Len())
}

func TestRemove_AllMatches(t *testing.T) {
	s, path := setupStore(t, "A,5,x\nB,5,y\nC,9,z\n")

	removed, err := s.Remove("5")

	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, []models.Student{{Name: "C", RollNumber: "9", Grade: "z"}}, s.All())
	assert.Equal(t, "C,9,z\n", readFile(t, path))
}

func TestRemove_SaveFailureStillReportsCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", DefaultFileName)
	s := Open(path, WithLogger(quietLogger()))
	require.ErrorIs(t, s.Add(models.Student{Name: "A", RollNumber: "5", Grade: "x"}), ErrSave)
	require.ErrorIs(t, s.Add(models.Student{Name: "B", RollNumber: "5", Grade: "y"}), ErrSave)

	removed, err := s.Remove("5")

	assert.ErrorIs(t, err, ErrSave)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 0, s.Len())
}

func TestRemove_NoMatchIsNoop(t *testing.T) {
	s, path := setupStore(t, "A,1,x\n")

	removed, err := s.Remove("2")

	require.NoError(t, err)
	assert.Equal(t, 0, removed)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "A,1,x\n", readFile(t, path))
}

func TestRemove_IsCaseSensitive(t *testing.T) {
	s, _ := setupStore(t, "A,ab,x\n")

	removed, err := s.Remove("AB")

	require.NoError(t, err)
	assert.Equal(t, 0, removed)
}

func TestSearch_FirstMatchWins(t *testing.T) {
	s, _ := setupStore(t, "First,7,A\nSecond,7,B\n")

	got, ok := s.Search("7")

	require.True(t, ok)
	assert.Equal(t, "First", got.Name)
}

func TestSearch_Miss(t *testing.T) {
	s, _ := setupStore(t, "A,1,x\n")

	got, ok := s.Search("does-not-exist")

	assert.False(t, ok)
	assert.Equal(t, models.Student{}, got)
}

func TestAll_ReturnsCopy(t *testing.T) {
	s, _ := setupStore(t, "A,1,x\n")

	all := s.All()
	all[0].Name = "changed"

	got, _ := s.Search("1")
	assert.Equal(t, "A", got.Name)
}

func TestNew_DefaultPath(t *testing.T) {
	s := New("", WithLogger(quietLogger()))
	assert.Equal(t, DefaultFileName, s.Path())
}
