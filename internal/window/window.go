// Package window computes the UTC date range that selects "current"
// documents for a report run. The window is computed once per run and shared
// read-only by every account so a merged report is filtered consistently.
package window

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotUTC is returned when a policy is given an instant that is not in
// UTC. Filtering against local times would silently shift the report
// boundaries, so this fails fast instead.
var ErrNotUTC = errors.New("instant must be in UTC")

// Window is an inclusive [Start, End] UTC range.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window, inclusive on both
// ends.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Policy computes a report window from the current instant.
type Policy interface {
	Compute(now time.Time) (Window, error)
}

// lastMicro is the last representable microsecond of a second, matching the
// upstream feed's microsecond timestamp precision.
const lastMicro = 999999 * int(time.Microsecond)

// RollingWeek selects the last seven days: start is seven days ago clamped
// to 14:00:00 UTC, end is today clamped to 13:59:59.999999 UTC. Used for
// short-cycle reports.
type RollingWeek struct{}

func (RollingWeek) Compute(now time.Time) (Window, error) {
	const op = "RollingWeek.Compute"

	if now.Location() != time.UTC {
		return Window{}, fmt.Errorf("%s: %w", op, ErrNotUTC)
	}

	start := now.AddDate(0, 0, -7)
	start = time.Date(start.Year(), start.Month(), start.Day(), 14, 0, 0, 0, time.UTC)
	end := time.Date(now.Year(), now.Month(), now.Day(), 13, 59, 59, lastMicro, time.UTC)

	return Window{Start: start, End: end}, nil
}

// FiscalToLastSunday selects everything from a fixed fiscal-year anchor up
// to the most recently completed Sunday at 23:59:59.999999 UTC. Used for
// year-to-date reports that only include whole weeks.
type FiscalToLastSunday struct {
	Anchor time.Time
}

func (p FiscalToLastSunday) Compute(now time.Time) (Window, error) {
	const op = "FiscalToLastSunday.Compute"

	if now.Location() != time.UTC {
		return Window{}, fmt.Errorf("%s: %w", op, ErrNotUTC)
	}
	if p.Anchor.IsZero() {
		return Window{}, fmt.Errorf("%s: fiscal year anchor is not set", op)
	}
	if p.Anchor.Location() != time.UTC {
		return Window{}, fmt.Errorf("%s: anchor: %w", op, ErrNotUTC)
	}

	// time.Weekday numbers Sunday as 0, so the weekday index is exactly the
	// number of days since the last completed Sunday.
	lastSunday := now.AddDate(0, 0, -int(now.Weekday()))
	end := time.Date(lastSunday.Year(), lastSunday.Month(), lastSunday.Day(), 23, 59, 59, lastMicro, time.UTC)

	return Window{Start: p.Anchor, End: end}, nil
}
