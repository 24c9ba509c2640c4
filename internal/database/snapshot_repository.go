package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/roster/internal/models"
)

// SnapshotRepo handles all snapshot-related database operations.
type SnapshotRepo struct {
	db *sql.DB
}

// NewSnapshotRepo creates a snapshot repository over an initialized database
func NewSnapshotRepo(db *sql.DB) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

var _ SnapshotStore = (*SnapshotRepo)(nil)

// CreateSnapshot stores a copy of students, keeping their roster order
func (r *SnapshotRepo) CreateSnapshot(ctx context.Context, note string, students []models.Student) (*models.Snapshot, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction for snapshot creation: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	result, err := tx.ExecContext(ctx, `INSERT INTO snapshots (note) VALUES (?)`, note)
	if err != nil {
		return nil, fmt.Errorf("failed to insert snapshot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot ID after insert: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO snapshot_students (snapshot_id, position, name, roll_number, grade) VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare student insert: %w", err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			slog.Error("failed to close statement", "error", err)
		}
	}()

	for i, st := range students {
		if _, err := stmt.ExecContext(ctx, id, i, st.Name, st.RollNumber, st.Grade); err != nil {
			return nil, fmt.Errorf("failed to insert student %d of snapshot %d: %w", i, id, err)
		}
	}

	snapshot := &models.Snapshot{ID: int(id), Note: note, Count: len(students)}
	if err := tx.QueryRowContext(ctx,
		`SELECT created_at FROM snapshots WHERE id = ?`, id,
	).Scan(&snapshot.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to read snapshot %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit snapshot: %w", err)
	}

	return snapshot, nil
}

// ListSnapshots returns all snapshots, newest first
func (r *SnapshotRepo) ListSnapshots(ctx context.Context) ([]*models.Snapshot, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.id, s.note, s.created_at, COUNT(st.position)
		FROM snapshots s
		LEFT JOIN snapshot_students st ON st.snapshot_id = s.id
		GROUP BY s.id
		ORDER BY s.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	snapshots := make([]*models.Snapshot, 0, 10)
	for rows.Next() {
		snapshot := &models.Snapshot{}
		if err := rows.Scan(&snapshot.ID, &snapshot.Note, &snapshot.CreatedAt, &snapshot.Count); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, rows.Err()
}

// GetSnapshotStudents returns the students of a snapshot in their original order
func (r *SnapshotRepo) GetSnapshotStudents(ctx context.Context, id int) ([]models.Student, error) {
	if err := r.ensureSnapshot(ctx, id); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT name, roll_number, grade FROM snapshot_students WHERE snapshot_id = ? ORDER BY position`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query students of snapshot %d: %w", id, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	students := make([]models.Student, 0)
	for rows.Next() {
		var st models.Student
		if err := rows.Scan(&st.Name, &st.RollNumber, &st.Grade); err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, st)
	}
	return students, rows.Err()
}

// DeleteSnapshot removes a snapshot and its students
func (r *SnapshotRepo) DeleteSnapshot(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return ErrSnapshotNotFound
	}
	return nil
}

func (r *SnapshotRepo) ensureSnapshot(ctx context.Context, id int) error {
	var exists int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM snapshots WHERE id = ?`, id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrSnapshotNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to look up snapshot %d: %w", id, err)
	}
	return nil
}
