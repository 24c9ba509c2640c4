package models

import "fmt"

// Student is one roster entry. All three fields are free-form text; the
// store never validates them.
type Student struct {
	Name       string `json:"name"`
	RollNumber string `json:"roll_number"`
	Grade      string `json:"grade"`
}

// String renders the canonical display line used by every presentation layer
func (s Student) String() string {
	return fmt.Sprintf("Name: %s, Roll Number: %s, Grade: %s", s.Name, s.RollNumber, s.Grade)
}

// Validate reports whether all fields were filled in.
// Only the presentation boundary calls this.
func (s Student) Validate() error {
	if s.Name == "" || s.RollNumber == "" || s.Grade == "" {
		return ErrMissingFields
	}
	return nil
}

// GetRollNumber implements the quiet-mode identifier interface of the cli package
func (s Student) GetRollNumber() string {
	return s.RollNumber
}
