package models

import "errors"

// Input errors raised at the presentation boundary
var (
	// ErrMissingFields indicates that name, roll number or grade was left empty
	ErrMissingFields = errors.New("all fields must be filled out")

	// ErrMissingRollNumber indicates a remove request without a roll number
	ErrMissingRollNumber = errors.New("a roll number is required to remove a student")
)

// User-facing messages shown by the terminal UI and the CLI
const (
	MissingFieldsMessage     = "All fields must be filled out."
	MissingRollNumberMessage = "Enter a roll number to remove."
	NotFoundMessage          = "Student not found."
)
