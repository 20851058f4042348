package utils

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorWithSuggestion wraps an error with a helpful suggestion for the user
type ErrorWithSuggestion struct {
	Err        error
	Suggestion string
}

// Error implements the error interface
func (e *ErrorWithSuggestion) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v\n\nSuggestion: %s", e.Err, e.Suggestion)
	}
	return e.Err.Error()
}

// Unwrap allows errors.Is and errors.As to work
func (e *ErrorWithSuggestion) Unwrap() error {
	return e.Err
}

// ErrInvalidPayload creates an error when stdin does not hold a JSON object
func ErrInvalidPayload(err error) error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("invalid task JSON: %w", err),
		Suggestion: `Pipe a single JSON object, e.g. echo '{"due_date": "2025-01-31T00:00:00Z"}' | date-relative`,
	}
}

// ErrInvalidNow creates an error for an unparsable --now override
func ErrInvalidNow(value string) error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("invalid --now value %q", value),
		Suggestion: "Use RFC 3339 format (e.g., 2025-01-31T09:00:00Z)",
	}
}

// ErrInvalidMode creates an error for an unknown day counting mode
func ErrInvalidMode(mode string, validModes []string) error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("invalid mode: %s", mode),
		Suggestion: fmt.Sprintf("Valid modes: %s", strings.Join(validModes, ", ")),
	}
}

// WrapWithSuggestion wraps an existing error with a suggestion
func WrapWithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}
	return &ErrorWithSuggestion{
		Err:        err,
		Suggestion: suggestion,
	}
}

// ErrorMessage returns err's message without any suggestion, collapsed to one line.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	var suggestionErr *ErrorWithSuggestion
	if errors.As(err, &suggestionErr) {
		msg = suggestionErr.Err.Error()
	}

	return strings.Join(strings.Fields(msg), " ")
}

// SuggestionFor returns the first suggestion attached anywhere in err's chain.
func SuggestionFor(err error) string {
	var suggestionErr *ErrorWithSuggestion
	if errors.As(err, &suggestionErr) {
		return suggestionErr.Suggestion
	}
	return ""
}
