package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and Err default to os.Stdout and os.Stderr
	Out io.Writer
	Err io.Writer
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		return f.quietPrint(data)
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	if _, err := fmt.Fprintf(f.errOut(), "Error: %s\n", message); err != nil {
		return err
	}
	if suggestion != "" {
		_, err := fmt.Fprintf(f.errOut(), "Suggestion: %s\n", suggestion)
		return err
	}
	return nil
}

// Failure reports an error returned by a command
func (f *OutputFormatter) Failure(err error) error {
	return f.ErrorWithSuggestion(errorKind(err), err.Error(), errorSuggestion(err))
}

// quietPrint prints identifiers only, one per line
func (f *OutputFormatter) quietPrint(data any) error {
	switch v := data.(type) {
	case interface{ GetID() int }:
		_, err := fmt.Fprintf(f.out(), "%d\n", v.GetID())
		return err
	case interface{ GetRollNumber() string }:
		_, err := fmt.Fprintln(f.out(), v.GetRollNumber())
		return err
	case interface{ QuietLines() []string }:
		for _, line := range v.QuietLines() {
			if _, err := fmt.Fprintln(f.out(), line); err != nil {
				return err
			}
		}
		return nil
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	if s, ok := data.(fmt.Stringer); ok {
		text := s.String()
		if text == "" {
			return nil
		}
		_, err := fmt.Fprintln(f.out(), text)
		return err
	}
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}
