package student

import "github.com/thenoetrevino/roster/internal/models"

// Student-related errors
var (
	// Validation errors
	ErrMissingFields     = models.ErrMissingFields
	ErrMissingRollNumber = models.ErrMissingRollNumber
)
