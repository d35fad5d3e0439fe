package harvest

import (
	"errors"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ErrEmptyDate is returned when a document carries no value in its date
// field.
var ErrEmptyDate = errors.New("empty date string")

// ParseUTC parses a free-form upstream timestamp and normalizes it to UTC.
// Timestamps without zone information are interpreted as UTC; zone-aware
// timestamps are converted. The feed mixes several textual formats, so this
// accepts anything dateparse can resolve.
func ParseUTC(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, ErrEmptyDate
	}
	parsed, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return parsed.UTC(), nil
}

// ReportDate reformats an upstream timestamp as DD/MM/YYYY for report rows.
// Absent or unparseable input yields an empty string, never an error.
func ReportDate(value string) string {
	parsed, err := ParseUTC(value)
	if err != nil {
		return ""
	}
	return parsed.Format("02/01/2006")
}
