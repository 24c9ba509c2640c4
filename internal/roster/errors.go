package roster

import "errors"

// Persistence errors. Both are wrapped around the underlying I/O error and
// never leave the store in a partially updated state.
var (
	// ErrLoad indicates the persisted file exists but could not be read
	ErrLoad = errors.New("failed to load roster")

	// ErrSave indicates the persisted file could not be rewritten
	ErrSave = errors.New("failed to save roster")
)
