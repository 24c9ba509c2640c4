package database

import "errors"

// ErrSnapshotNotFound indicates that no snapshot has the requested ID
var ErrSnapshotNotFound = errors.New("snapshot not found")
