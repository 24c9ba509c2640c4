// Package snapshot archives copies of the roster and restores them
package snapshot

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/roster/internal/database"
	"github.com/thenoetrevino/roster/internal/models"
)

// Roster is the subset of the roster store used for snapshots
type Roster interface {
	All() []models.Student
	Replace(students []models.Student) error
}

// Service defines all snapshot operations
type Service interface {
	CreateSnapshot(ctx context.Context, note string) (*models.Snapshot, error)
	ListSnapshots(ctx context.Context) ([]*models.Snapshot, error)
	RestoreSnapshot(ctx context.Context, id int) (int, error)
	DeleteSnapshot(ctx context.Context, id int) error
}

type service struct {
	repo   database.SnapshotStore
	roster Roster
}

// NewService creates a new snapshot service
func NewService(repo database.SnapshotStore, roster Roster) Service {
	return &service{repo: repo, roster: roster}
}

// CreateSnapshot archives the current roster
func (s *service) CreateSnapshot(ctx context.Context, note string) (*models.Snapshot, error) {
	snap, err := s.repo.CreateSnapshot(ctx, note, s.roster.All())
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot: %w", err)
	}
	return snap, nil
}

// ListSnapshots returns all snapshots, newest first
func (s *service) ListSnapshots(ctx context.Context) ([]*models.Snapshot, error) {
	return s.repo.ListSnapshots(ctx)
}

// RestoreSnapshot replaces the roster with the snapshot's students and saves.
// Returns the number of restored students.
func (s *service) RestoreSnapshot(ctx context.Context, id int) (int, error) {
	if id <= 0 {
		return 0, ErrInvalidSnapshotID
	}
	students, err := s.repo.GetSnapshotStudents(ctx, id)
	if err != nil {
		return 0, err
	}
	if err := s.roster.Replace(students); err != nil {
		return len(students), err
	}
	return len(students), nil
}

// DeleteSnapshot removes a snapshot from the archive
func (s *service) DeleteSnapshot(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidSnapshotID
	}
	return s.repo.DeleteSnapshot(ctx, id)
}
