package snapshot

import (
	"errors"

	"github.com/thenoetrevino/roster/internal/database"
)

// Snapshot-related errors
var (
	ErrInvalidSnapshotID = errors.New("invalid snapshot ID")
	ErrSnapshotNotFound  = database.ErrSnapshotNotFound
)
