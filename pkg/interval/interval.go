// SPDX-License-Identifier: AGPL-3.0-only

// Package interval implements Allen's interval algebra over pairs of time
// intervals: the thirteen mutually exclusive basic relations plus the
// derived relations used by the land use change predicates.
package interval

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// DateFormat is the day-granularity timestamp layout used by classified
// land use series. Parse also accepts RFC 3339 timestamps.
const DateFormat = "2006-01-02"

// ErrInvalidInterval is returned when an argument is not a well-formed
// interval (a bound is missing or a timestamp cannot be parsed).
var ErrInvalidInterval = errors.New("invalid interval")

// Interval is an immutable pair of timestamps with start <= end. The zero
// value is not a valid interval; use New, MustNew or Parse.
type Interval struct {
	start time.Time
	end   time.Time
}

// New builds an interval from two timestamps, reordering them if needed so
// that start <= end. It fails if either bound is the zero time.
func New(a, b time.Time) (Interval, error) {
	if a.IsZero() || b.IsZero() {
		return Interval{}, errors.Wrap(ErrInvalidInterval, "missing bound")
	}
	if b.Before(a) {
		a, b = b, a
	}
	return Interval{start: a, end: b}, nil
}

// MustNew is like New but panics on error. Intended for tests and constants.
func MustNew(a, b time.Time) Interval {
	i, err := New(a, b)
	if err != nil {
		panic(err)
	}
	return i
}

// Parse builds an interval from two textual timestamps, day-granularity
// (YYYY-MM-DD) or RFC 3339.
func Parse(start, end string) (Interval, error) {
	s, err := parseTimestamp(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := parseTimestamp(end)
	if err != nil {
		return Interval{}, err
	}
	return New(s, e)
}

func parseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(DateFormat, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errors.Wrapf(ErrInvalidInterval, "cannot parse timestamp %q", value)
	}
	return t, nil
}

// Start returns the earlier bound.
func (i Interval) Start() time.Time { return i.start }

// End returns the later bound.
func (i Interval) End() time.Time { return i.end }

// Duration returns the length of the interval.
func (i Interval) Duration() time.Duration { return i.end.Sub(i.start) }

// IsZero reports whether the interval is the zero value.
func (i Interval) IsZero() bool { return i.start.IsZero() && i.end.IsZero() }

// Equal reports whether both bounds match. This is plain value equality,
// not the Equals relation (which validates and normalizes its arguments).
func (i Interval) Equal(other Interval) bool {
	return i.start.Equal(other.start) && i.end.Equal(other.end)
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s]", formatTimestamp(i.start), formatTimestamp(i.end))
}

func formatTimestamp(t time.Time) string {
	if h, m, s := t.Clock(); h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0 {
		return t.Format(DateFormat)
	}
	return t.Format(time.RFC3339)
}

func (i Interval) validate() error {
	if i.start.IsZero() || i.end.IsZero() {
		return errors.Wrap(ErrInvalidInterval, "missing bound")
	}
	return nil
}

// normalized reorders the interval's own bounds so start <= end. It never
// reorders one interval relative to another.
func (i Interval) normalized() Interval {
	if i.end.Before(i.start) {
		return Interval{start: i.end, end: i.start}
	}
	return i
}
