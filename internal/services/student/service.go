// Package student is the presentation boundary over the roster store: it
// validates user input before any command reaches the store
package student

import (
	"context"

	"github.com/thenoetrevino/roster/internal/models"
)

// Store is the subset of the roster store the service needs
type Store interface {
	Add(student models.Student) error
	Remove(rollNumber string) (int, error)
	Search(rollNumber string) (models.Student, bool)
	All() []models.Student
	Flush() error
}

// Service defines all student-related operations available to the CLI and TUI
type Service interface {
	// Read operations
	ListStudents(ctx context.Context) []models.Student
	FindStudent(ctx context.Context, rollNumber string) (models.Student, bool)

	// Write operations
	AddStudent(ctx context.Context, req AddStudentRequest) (models.Student, error)
	RemoveStudents(ctx context.Context, rollNumber string) (int, error)
	Flush(ctx context.Context) error
}

// AddStudentRequest encapsulates data for adding a student
type AddStudentRequest struct {
	Name       string
	RollNumber string
	Grade      string
}

// service implements Service interface
type service struct {
	store Store
}

// NewService creates a new student service
func NewService(store Store) Service {
	return &service{store: store}
}

// ListStudents returns the whole roster in order
func (s *service) ListStudents(ctx context.Context) []models.Student {
	return s.store.All()
}

// FindStudent returns the first student with the roll number
func (s *service) FindStudent(ctx context.Context, rollNumber string) (models.Student, bool) {
	return s.store.Search(rollNumber)
}

// AddStudent validates the request and appends the student.
// If validation passes but saving fails, the student is still in the roster
// and the save error is returned alongside it.
func (s *service) AddStudent(ctx context.Context, req AddStudentRequest) (models.Student, error) {
	st := models.Student{
		Name:       req.Name,
		RollNumber: req.RollNumber,
		Grade:      req.Grade,
	}
	if err := st.Validate(); err != nil {
		return models.Student{}, err
	}
	return st, s.store.Add(st)
}

// RemoveStudents deletes every student with the roll number
func (s *service) RemoveStudents(ctx context.Context, rollNumber string) (int, error) {
	if rollNumber == "" {
		return 0, ErrMissingRollNumber
	}
	return s.store.Remove(rollNumber)
}

// Flush writes the roster to disk, used on shutdown. A roster that failed to
// load is left unwritten.
func (s *service) Flush(ctx context.Context) error {
	return s.store.Flush()
}
