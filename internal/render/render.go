package render

import (
	"io"

	"daterelative/internal/relative"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

const ellipsis = "..."

// Colors for relative labels, matching the host's due date palette
var (
	overdueColor = lipgloss.Color("1") // red
	soonColor    = lipgloss.Color("3") // yellow
	futureColor  = lipgloss.Color("8") // gray
)

// Renderer applies the host's presentation hints to a formatted label.
type Renderer struct {
	lg *lipgloss.Renderer
}

// NewRenderer creates a renderer writing to w.
// When w is a pipe to the host, detection would disable color, so pass
// forceANSI; on a terminal the profile is detected from w and the environment.
func NewRenderer(w io.Writer, forceANSI bool) *Renderer {
	lg := lipgloss.NewRenderer(w)
	if forceANSI {
		lg.SetColorProfile(termenv.ANSI)
	}
	return &Renderer{lg: lg}
}

// Render truncates the label to width display columns (0 = no limit) and,
// when color is set, colors it by how far the date is from now.
// Unparsed fallbacks and empty labels are never colored.
func (r *Renderer) Render(result relative.Result, width int, color bool) string {
	label := Truncate(result.Label, width)

	if !color || !result.Parsed || label == "" {
		return label
	}

	return r.lg.NewStyle().Foreground(colorFor(result.Days)).Render(label)
}

func colorFor(days int64) lipgloss.Color {
	switch {
	case days < 0:
		return overdueColor
	case days <= 1:
		return soonColor
	default:
		return futureColor
	}
}

// Truncate shortens s to at most width display columns, ending with "..."
// when there is room for it.
func Truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}

	if width > len(ellipsis) {
		return runewidth.Truncate(s, width, ellipsis)
	}
	return runewidth.Truncate(s, width, "")
}
