// Package timestamp normalizes heterogeneous textual representations of a
// point in time — raw epoch seconds, raw epoch milliseconds, or a
// fixed-format human-readable string — into one unambiguous UTC instant.
package timestamp

import (
	"strconv"
	"strings"
	"time"

	"github.com/cli-helpers/cli-helpers-go/errors"
)

// calendarLayout is the format produced by the `date` command under an
// en_US.UTF-8 locale, with the timezone as a numeric offset,
// e.g. "Fri Aug 25 08:47:09 AM +0200 2023". Only English weekday and
// month abbreviations are recognized.
const calendarLayout = "Mon Jan _2 03:04:05 PM -0700 2006"

// secondsToMillisCutoff is the magnitude at which a bare integer is read as
// epoch milliseconds instead of epoch seconds. The constant is part of the
// contract with existing callers and must not change.
const secondsToMillisCutoff = 1_000_000_000_000

// Timestamp represents one absolute instant, normalized to UTC.
// The zero value is the zero time; values are immutable once constructed.
type Timestamp struct {
	t time.Time
}

// FromTime wraps an already-known instant, normalizing it to UTC.
func FromTime(t time.Time) Timestamp {
	return Timestamp{t.UTC()}
}

// Time returns the instant as a standard UTC time.Time.
func (ts Timestamp) Time() time.Time { return ts.t }

// Unix returns the instant as whole seconds since the Unix epoch.
func (ts Timestamp) Unix() int64 { return ts.t.Unix() }

// UnixMilli returns the instant as milliseconds since the Unix epoch.
func (ts Timestamp) UnixMilli() int64 { return ts.t.UnixMilli() }

// String returns the instant formatted as RFC3339 with nanoseconds.
func (ts Timestamp) String() string { return ts.t.Format(time.RFC3339Nano) }

// Equal reports whether two Timestamps denote the same instant.
func (ts Timestamp) Equal(o Timestamp) bool { return ts.t.Equal(o.t) }

// Before reports whether ts denotes an instant before o.
func (ts Timestamp) Before(o Timestamp) bool { return ts.t.Before(o.t) }

// After reports whether ts denotes an instant after o.
func (ts Timestamp) After(o Timestamp) bool { return ts.t.After(o.t) }

// strategy attempts one way of decoding the input. It reports whether it
// succeeded; a false return means "try the next one".
type strategy func(s string) (time.Time, bool)

// strategies are attempted in order, first success wins. New decodings are
// appended here without disturbing existing ones.
var strategies = []strategy{
	parseEpochInteger,
	parseCalendarString,
}

// Parse decodes an arbitrary, possibly empty, possibly malformed string
// into a Timestamp. It never panics on malformed input; when every
// strategy fails it returns an invalid-timestamp error carrying the
// original, unmodified input.
func Parse(s string) (Timestamp, error) {
	for _, attempt := range strategies {
		if t, ok := attempt(s); ok {
			return FromTime(t), nil
		}
	}
	return Timestamp{}, errors.NewInvalidTimestamp(s)
}

// parseEpochInteger decodes the whole string as a signed integer and
// classifies it by magnitude: below the cutoff it is whole epoch seconds,
// at or above it is epoch milliseconds. A value the constructed instant
// cannot round-trip exactly is rejected so the caller falls through to the
// next strategy instead of carrying a silently-overflowed instant.
func parseEpochInteger(s string) (time.Time, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, false
	}

	if n > -secondsToMillisCutoff && n < secondsToMillisCutoff {
		t := time.Unix(n, 0)
		if t.Unix() != n {
			return time.Time{}, false
		}
		return t, true
	}

	t := time.UnixMilli(n)
	if t.UnixMilli() != n {
		return time.Time{}, false
	}
	return t, true
}

// parseCalendarString decodes the fixed en_US calendar format after
// rewriting the two recognized timezone abbreviations to their numeric
// offsets.
func parseCalendarString(s string) (time.Time, bool) {
	t, err := time.Parse(calendarLayout, tzNameToOffset(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// tzNameToOffset rewrites "CET" to "+0100" and "CEST" to "+0200". This is a
// blunt text substitution, not a timezone-aware lookup: every occurrence is
// rewritten, including ones that legitimately mean something else. That is
// an accepted limitation of supporting copy-paste from `date` without a
// timezone database.
func tzNameToOffset(input string) string {
	out := strings.ReplaceAll(input, "CET", "+0100")
	return strings.ReplaceAll(out, "CEST", "+0200")
}
