package utils

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorWithSuggestion_Error(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		suggestion     string
		wantContains   []string
		wantNotContain string
	}{
		{
			name:         "with suggestion",
			err:          errors.New("no date field found"),
			suggestion:   "Add a due_date to the task",
			wantContains: []string{"no date field found", "Suggestion:", "Add a due_date"},
		},
		{
			name:           "without suggestion",
			err:            errors.New("simple error"),
			suggestion:     "",
			wantContains:   []string{"simple error"},
			wantNotContain: "Suggestion:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &ErrorWithSuggestion{
				Err:        tt.err,
				Suggestion: tt.suggestion,
			}

			result := e.Error()

			for _, want := range tt.wantContains {
				if !strings.Contains(result, want) {
					t.Errorf("Error() = %q, want to contain %q", result, want)
				}
			}

			if tt.wantNotContain != "" && strings.Contains(result, tt.wantNotContain) {
				t.Errorf("Error() = %q, should not contain %q", result, tt.wantNotContain)
			}
		})
	}
}

func TestErrorWithSuggestion_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	wrapped := &ErrorWithSuggestion{
		Err:        originalErr,
		Suggestion: "do something",
	}

	unwrapped := wrapped.Unwrap()
	if unwrapped != originalErr {
		t.Errorf("Unwrap() returned %v, want %v", unwrapped, originalErr)
	}

	// Test with errors.Is
	if !errors.Is(wrapped, originalErr) {
		t.Error("errors.Is should work with wrapped error")
	}
}

func TestErrInvalidPayload(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := ErrInvalidPayload(cause)

	errStr := err.Error()
	if !strings.Contains(errStr, "invalid task JSON") {
		t.Errorf("Error should mention invalid JSON, got: %s", errStr)
	}
	if !strings.Contains(errStr, "unexpected end of JSON input") {
		t.Errorf("Error should contain the cause, got: %s", errStr)
	}
	if !strings.Contains(errStr, "date-relative") {
		t.Errorf("Error should suggest a sample invocation, got: %s", errStr)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
}

func TestErrInvalidNow(t *testing.T) {
	err := ErrInvalidNow("yesterday")

	errStr := err.Error()
	if !strings.Contains(errStr, "yesterday") {
		t.Errorf("Error should contain invalid value, got: %s", errStr)
	}
	if !strings.Contains(errStr, "RFC 3339") {
		t.Errorf("Error should suggest the expected format, got: %s", errStr)
	}
}

func TestErrInvalidMode(t *testing.T) {
	validModes := []string{"elapsed", "calendar"}
	err := ErrInvalidMode("weekly", validModes)

	errStr := err.Error()
	if !strings.Contains(errStr, "weekly") {
		t.Errorf("Error should contain invalid mode, got: %s", errStr)
	}
	for _, mode := range validModes {
		if !strings.Contains(errStr, mode) {
			t.Errorf("Error should list valid mode '%s', got: %s", mode, errStr)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			expected: "boom",
		},
		{
			name:     "suggestion stripped",
			err:      WrapWithSuggestion(errors.New("bad input"), "fix it"),
			expected: "bad input",
		},
		{
			name:     "wrapped suggestion stripped",
			err:      fmt.Errorf("decode: %w", WrapWithSuggestion(errors.New("bad input"), "fix it")),
			expected: "bad input",
		},
		{
			name:     "newlines collapsed",
			err:      errors.New("line one\nline two"),
			expected: "line one line two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorMessage(tt.err); got != tt.expected {
				t.Errorf("ErrorMessage() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSuggestionFor(t *testing.T) {
	err := fmt.Errorf("outer: %w", WrapWithSuggestion(errors.New("inner"), "do this"))
	if got := SuggestionFor(err); got != "do this" {
		t.Errorf("SuggestionFor() = %q, want %q", got, "do this")
	}

	if got := SuggestionFor(errors.New("plain")); got != "" {
		t.Errorf("SuggestionFor() = %q, want empty", got)
	}
}

func TestWrapWithSuggestion(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		suggestion string
		wantNil    bool
	}{
		{
			name:       "wrap error",
			err:        errors.New("original error"),
			suggestion: "try this instead",
			wantNil:    false,
		},
		{
			name:       "wrap nil",
			err:        nil,
			suggestion: "this should not appear",
			wantNil:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WrapWithSuggestion(tt.err, tt.suggestion)

			if tt.wantNil {
				if result != nil {
					t.Errorf("WrapWithSuggestion(nil, _) should return nil, got %v", result)
				}
				return
			}

			if result == nil {
				t.Fatal("WrapWithSuggestion() returned nil for non-nil error")
			}

			errStr := result.Error()
			if !strings.Contains(errStr, "original error") {
				t.Errorf("Wrapped error should contain original message, got: %s", errStr)
			}
			if !strings.Contains(errStr, tt.suggestion) {
				t.Errorf("Wrapped error should contain suggestion, got: %s", errStr)
			}
		})
	}
}
