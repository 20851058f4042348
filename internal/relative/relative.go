package relative

import (
	"fmt"
	"time"

	"daterelative/internal/utils"
)

const secondsPerDay = 24 * 60 * 60

// Mode selects how the day difference between a date and now is counted.
type Mode string

const (
	// ModeElapsed counts whole elapsed days, floored toward negative infinity.
	ModeElapsed Mode = "elapsed"
	// ModeCalendar counts the difference between UTC calendar dates.
	ModeCalendar Mode = "calendar"
)

// Modes lists the supported day counting modes.
var Modes = []Mode{ModeElapsed, ModeCalendar}

// Result is the outcome of evaluating a date string against now.
type Result struct {
	// Label is the text to print: a relative label, the raw input or "".
	Label string
	// Days is the signed day difference. Only meaningful when Parsed is true.
	Days int64
	// Parsed reports whether the input was a valid timestamp.
	Parsed bool
}

// Formatter turns ISO-8601 date strings into relative day labels.
// The zero value uses ModeElapsed.
type Formatter struct {
	Mode Mode
}

// NewFormatter creates a formatter for the given mode
func NewFormatter(mode Mode) Formatter {
	return Formatter{Mode: mode}
}

// Format returns the relative day label for dateStr using elapsed-day counting.
func Format(dateStr string, now time.Time) string {
	return Formatter{}.Format(dateStr, now)
}

// Format returns the relative day label for dateStr as seen from now.
// Empty input yields "". Input that is not a timestamp is returned unchanged.
func (f Formatter) Format(dateStr string, now time.Time) string {
	return f.Evaluate(dateStr, now).Label
}

// Evaluate computes the label together with the day difference it was built from.
func (f Formatter) Evaluate(dateStr string, now time.Time) Result {
	if dateStr == "" {
		return Result{}
	}

	date, err := ParseISO(dateStr)
	if err != nil {
		utils.Debugf("Falling back to raw date value: %v", err)
		return Result{Label: dateStr}
	}

	var days int64
	switch f.Mode {
	case ModeCalendar:
		days = CalendarDays(date, now)
	default:
		days = Days(date, now)
	}

	return Result{Label: Label(days), Days: days, Parsed: true}
}

// Label renders a signed day difference.
func Label(days int64) string {
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0:
		return fmt.Sprintf("in %d days", days)
	default:
		return fmt.Sprintf("%d days ago", -days)
	}
}

// Days returns floor((date - now) / 24h).
// It works on Unix seconds so dates centuries apart do not saturate time.Duration.
func Days(date, now time.Time) int64 {
	secs := date.Unix() - now.Unix()
	if date.Nanosecond() < now.Nanosecond() {
		secs--
	}

	days := secs / secondsPerDay
	if secs%secondsPerDay < 0 {
		days--
	}
	return days
}

// CalendarDays returns the number of UTC calendar days from now's date to date's date.
func CalendarDays(date, now time.Time) int64 {
	return Days(startOfDay(date), startOfDay(now))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
