package roster

import (
	"log/slog"
	"os"
)

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for persistence diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithFileMode sets the permission bits of the written roster file
func WithFileMode(mode os.FileMode) Option {
	return func(s *Store) {
		s.fileMode = mode
	}
}
