// Package roster owns the in-memory student roster and keeps it in sync
// with a line-delimited flat file.
package roster

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"sync"

	"github.com/kjk/common/atomicfile"
	"github.com/thenoetrevino/roster/internal/models"
)

// DefaultFileName is the roster file used when no path is configured
const DefaultFileName = "students.txt"

const defaultFileMode os.FileMode = 0o644

// Store holds the ordered roster and rewrites the persisted file after
// every mutation. Roll numbers are not unique: Search returns the first
// match and Remove deletes every match.
type Store struct {
	mu       sync.Mutex
	path     string
	students []models.Student
	logger   *slog.Logger
	fileMode os.FileMode

	// set when the last Load failed and nothing has changed since
	loadFailed bool
}

// Open creates a store backed by path and loads it. A load failure is logged
// and leaves the roster empty; it is never returned.
func Open(path string, opts ...Option) *Store {
	s := New(path, opts...)
	if err := s.Load(); err != nil {
		s.logger.Warn("starting with an empty roster", "path", path, "error", err)
	}
	return s
}

// New creates an empty store backed by path without touching the file
func New(path string, opts ...Option) *Store {
	if path == "" {
		path = DefaultFileName
	}
	s := &Store{
		path:     path,
		logger:   slog.Default(),
		fileMode: defaultFileMode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the persisted file location
func (s *Store) Path() string {
	return s.path
}

// Load replaces the roster with the contents of the persisted file.
// A missing file yields an empty roster and no error. Malformed lines are
// skipped. If reading fails midway the records parsed so far are kept.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.students = nil
	s.loadFailed = false

	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Info("roster file not found, starting empty", "path", s.path)
			return nil
		}
		s.logger.Error("error loading student data", "path", s.path, "error", err)
		s.loadFailed = true
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.Error("failed to close roster file", "path", s.path, "error", err)
		}
	}()

	students, skipped, err := readStudents(file)
	s.students = students
	if skipped > 0 {
		s.logger.Debug("skipped malformed roster lines", "path", s.path, "skipped", skipped)
	}
	if err != nil {
		s.logger.Error("error loading student data", "path", s.path, "error", err)
		s.loadFailed = true
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}

	s.logger.Debug("roster loaded", "path", s.path, "count", len(students))
	return nil
}

// readStudents parses every line of r, returning the records, the number of
// rejected lines and the first read error
func readStudents(r io.Reader) ([]models.Student, int, error) {
	var (
		students []models.Student
		skipped  int
	)
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			line = trimLineEnding(line)
			if student, ok := ParseLine(line); ok {
				students = append(students, student)
			} else {
				skipped++
			}
		}
		if err == io.EOF {
			return students, skipped, nil
		}
		if err != nil {
			return students, skipped, err
		}
	}
}

func trimLineEnding(line string) string {
	n := len(line)
	if n > 0 && line[n-1] == '\n' {
		n--
	}
	if n > 0 && line[n-1] == '\r' {
		n--
	}
	return line[:n]
}

// Save rewrites the persisted file with the current roster
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

// Flush is the shutdown save. It is skipped while the roster still reflects
// a failed Load, so an unreadable file is not replaced by an empty roster.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loadFailed {
		s.logger.Warn("skipping save of a roster that failed to load", "path", s.path)
		return nil
	}
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	s.loadFailed = false

	if err := writeRoster(s.path, s.students, s.fileMode); err != nil {
		s.logger.Error("error saving student data", "path", s.path, "error", err)
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	s.logger.Debug("roster saved", "path", s.path, "count", len(s.students))
	return nil
}

// writeRoster writes through an atomicfile, which renames its temp file over
// path only on a clean Close, so a failed write never truncates the existing
// roster. atomicfile creates the temp file 0600; mode is applied after the rename.
func writeRoster(path string, students []models.Student, mode os.FileMode) error {
	f, err := atomicfile.New(path)
	if err != nil {
		return err
	}
	defer f.RemoveIfNotClosed()

	w := bufio.NewWriter(f)
	for _, student := range students {
		if _, err := w.WriteString(FormatLine(student)); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Chmod(path, mode)
}

// Add appends a student and saves. The student stays in memory even when
// the save fails.
func (s *Store) Add(student models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.students = append(s.students, student)
	s.logger.Info("student added", "roll_number", student.RollNumber)
	return s.saveLocked()
}

// Remove deletes every student with the given roll number and saves,
// returning how many were removed. No match is not an error.
func (s *Store) Remove(rollNumber string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.students)
	s.students = slices.DeleteFunc(s.students, func(st models.Student) bool {
		return st.RollNumber == rollNumber
	})
	removed := before - len(s.students)
	s.logger.Info("students removed", "roll_number", rollNumber, "count", removed)
	return removed, s.saveLocked()
}

// Search returns the first student with the given roll number
func (s *Store) Search(rollNumber string) (models.Student, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, st := range s.students {
		if st.RollNumber == rollNumber {
			return st, true
		}
	}
	return models.Student{}, false
}

// All returns a copy of the roster in order
func (s *Store) All() []models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.students)
}

// Len returns the number of students
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.students)
}

// Replace swaps the whole roster and saves
func (s *Store) Replace(students []models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.students = slices.Clone(students)
	s.logger.Info("roster replaced", "count", len(students))
	return s.saveLocked()
}
