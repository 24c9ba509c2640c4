// Package huhforms builds the interactive prompts used by the command line
package huhforms

import (
	"errors"

	"github.com/charmbracelet/huh"
)

var errRequired = errors.New("required")

func required(s string) error {
	if s == "" {
		return errRequired
	}
	return nil
}

// CreateStudentForm creates a huh form collecting the three student fields.
// Values already set are shown as the initial input.
func CreateStudentForm(name, rollNumber, grade *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Name").
			Placeholder("Enter student name...").
			Value(name).
			Validate(required),
		huh.NewInput().
			Key("roll_number").
			Title("Roll Number").
			Placeholder("Enter roll number...").
			Value(rollNumber).
			Validate(required),
		huh.NewInput().
			Key("grade").
			Title("Grade").
			Placeholder("Enter grade...").
			Value(grade).
			Validate(required),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}
