package roster

import (
	"strings"

	"github.com/thenoetrevino/roster/internal/models"
)

const (
	fieldSeparator = ","
	lineTerminator = "\n"
	fieldCount     = 3
)

// ParseLine decodes one persisted line into a Student.
// The line is split on every comma and trailing empty fields are dropped
// before counting, so "a,b," has two fields and "a,b,c," has three.
// Lines that do not yield exactly three fields are rejected.
func ParseLine(line string) (models.Student, bool) {
	fields := splitFields(line)
	if len(fields) != fieldCount {
		return models.Student{}, false
	}
	return models.Student{
		Name:       fields[0],
		RollNumber: fields[1],
		Grade:      fields[2],
	}, true
}

// FormatLine encodes a Student as a persisted line, terminator included.
// Embedded commas or newlines are written as-is and will not survive a reload.
func FormatLine(s models.Student) string {
	return s.Name + fieldSeparator + s.RollNumber + fieldSeparator + s.Grade + lineTerminator
}

func splitFields(line string) []string {
	fields := strings.Split(line, fieldSeparator)
	end := len(fields)
	for end > 0 && fields[end-1] == "" {
		end--
	}
	return fields[:end]
}
