package relative

import (
	"fmt"
	"time"
)

// isoLayouts are tried in order. Fractional seconds are accepted after the
// seconds field by time.Parse even though the layouts do not spell them out.
// Z07:00 matches both "Z" and "+hh:mm"; Z0700 matches "Z" and "+hhmm".
var isoLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseISO parses an ISO-8601 date or date-time.
// A trailing "Z" means UTC, and values without an offset are taken as UTC.
// The date and time may be separated by "T" or a single space.
func ParseISO(value string) (time.Time, error) {
	normalized := value
	if len(normalized) > 10 && normalized[10] == ' ' {
		normalized = normalized[:10] + "T" + normalized[11:]
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid ISO-8601 date %q", value)
}
