package database

import (
	"context"

	"github.com/thenoetrevino/roster/internal/models"
)

// SnapshotStore defines the archive operations used by the snapshot commands
type SnapshotStore interface {
	CreateSnapshot(ctx context.Context, note string, students []models.Student) (*models.Snapshot, error)
	ListSnapshots(ctx context.Context) ([]*models.Snapshot, error)
	GetSnapshotStudents(ctx context.Context, id int) ([]models.Student, error)
	DeleteSnapshot(ctx context.Context, id int) error
}
