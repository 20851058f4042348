package render

import (
	"io"
	"strings"
	"testing"

	"daterelative/internal/relative"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"no limit", "in 12 days", 0, "in 12 days"},
		{"negative limit", "in 12 days", -1, "in 12 days"},
		{"fits exactly", "Today", 5, "Today"},
		{"fits with room", "Today", 20, "Today"},
		{"ellipsis", "in 12 days", 5, "in..."},
		{"ellipsis longer", "365 days ago", 9, "365 da..."},
		{"too narrow for ellipsis", "Tomorrow", 3, "Tom"},
		{"wide runes", "明日明日", 5, "明..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.width); got != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
			}
		})
	}
}

func TestRenderer_Plain(t *testing.T) {
	r := NewRenderer(io.Discard, true)

	result := relative.Result{Label: "in 3 days", Days: 3, Parsed: true}
	if got := r.Render(result, 0, false); got != "in 3 days" {
		t.Errorf("Render() = %q, want %q", got, "in 3 days")
	}
	if got := r.Render(result, 5, false); got != "in..." {
		t.Errorf("Render() = %q, want %q", got, "in...")
	}
}

func TestRenderer_Color(t *testing.T) {
	r := NewRenderer(io.Discard, true)

	tests := []struct {
		name       string
		result     relative.Result
		wantPrefix string
	}{
		{"overdue is red", relative.Result{Label: "2 days ago", Days: -2, Parsed: true}, "\x1b[31m"},
		{"yesterday is red", relative.Result{Label: "Yesterday", Days: -1, Parsed: true}, "\x1b[31m"},
		{"today is yellow", relative.Result{Label: "Today", Days: 0, Parsed: true}, "\x1b[33m"},
		{"tomorrow is yellow", relative.Result{Label: "Tomorrow", Days: 1, Parsed: true}, "\x1b[33m"},
		{"future is gray", relative.Result{Label: "in 9 days", Days: 9, Parsed: true}, "\x1b[90m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Render(tt.result, 0, true)
			if !strings.HasPrefix(got, tt.wantPrefix) {
				t.Errorf("Render() = %q, want prefix %q", got, tt.wantPrefix)
			}
			if !strings.Contains(got, tt.result.Label) {
				t.Errorf("Render() = %q, want it to contain %q", got, tt.result.Label)
			}
		})
	}
}

func TestRenderer_NeverColorsFallbacks(t *testing.T) {
	r := NewRenderer(io.Discard, true)

	if got := r.Render(relative.Result{Label: "not-a-date"}, 0, true); got != "not-a-date" {
		t.Errorf("Render() = %q, want raw fallback", got)
	}
	if got := r.Render(relative.Result{}, 0, true); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
}

func TestRenderer_DetectedProfile(t *testing.T) {
	// io.Discard is not a terminal, so detection yields no color support
	t.Setenv("CLICOLOR_FORCE", "0")
	r := NewRenderer(io.Discard, false)

	result := relative.Result{Label: "Tomorrow", Days: 1, Parsed: true}
	if got := r.Render(result, 0, true); got != "Tomorrow" {
		t.Errorf("Render() = %q, want uncolored label", got)
	}
}
