package textfile

import (
	"strings"
	"time"
)

// On-disk date grammars. The current format is day-first; the legacy
// format is ISO and survives only in files written before the change.
const (
	DateFormat       = "02-01-2006"
	LegacyDateFormat = "2006-01-02"
)

// FormatDate formats a date for storage in the current day-first format
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// ParseDate parses a date in the current day-first storage format
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, strings.TrimSpace(s))
}

// ParseFlexibleDate parses a date in the current format, falling back to
// the legacy ISO format. Legacy records may carry either, since the file
// can span the format migration.
func ParseFlexibleDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateFormat, s); err == nil {
		return t, nil
	}
	return time.Parse(LegacyDateFormat, s)
}
