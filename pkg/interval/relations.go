// SPDX-License-Identifier: AGPL-3.0-only

package interval

import (
	"github.com/pkg/errors"
)

// The thirteen basic relations of Allen's interval algebra. Every public
// relation function validates both arguments and re-normalizes each
// argument's own bounds before comparing, so callers holding intervals
// built without the constructors still get correct answers. Validation
// failures surface as ErrInvalidInterval; no relation silently returns a
// default.

// Before reports whether first ends strictly before second starts.
func Before(first, second Interval) (bool, error) {
	first, second, err := normalizePair(first, second)
	if err != nil {
		return false, err
	}
	return before(first, second), nil
}

// After reports whether first starts strictly after second ends. This is
// the canonical Allen definition; see LegacyAfter for the historical
// comparison.
func After(first, second Interval) (bool, error) {
	first, second, err := normalizePair(first, second)
	if err != nil {
		return false, err
	}
	return after(first, second), nil
}

// LegacyAfter reproduces the historical comparison (first ends after second
// starts), which is weaker than the canonical After and overlaps with other
// relations. Kept only for compatibility with datasets classified under the
// old semantics; prefer After.
func LegacyAfter(first, second Interval) (bool, error) {
	first, second, err := normalizePair(first, second)
	if err != nil {
		return false, err
	}
	return legacyAfter(first, second), nil
}

// Meets reports whether first ends exactly where second starts.
func Meets(first, second Interval) (bool, error) {
	first, second, err := normalizePair(first, second)
	if err != nil {
		return false, err
	}
	return meets(first, second), nil
}

// MetBy reports whether second ends exactly where first starts.
func MetBy(first, second Interval) (bool, error) {
	first, second, err := normalizePair(first, second)
	if err != nil {
		return false, err
	}
	return metBy(first, second), nil
}

// Overlaps reports whether first starts before second and ends inside it.
func Overlaps(first, second Interval) (bool, error) {
	first, second, err := normalizePair(first, second)
	if err != nil {
		return false, err
	}
	return overlaps(first, second), nil
}

// OverlappedBy reports whether second starts before first and ends inside it.
func OverlappedBy(first, second Interval) (bool, error) {
	first, second, err := normalizePair(first, second)
	if err != nil {
		return false, err
	}
	return overlappedBy(first, second), nil
}

// Starts reports whether both start together and first ends earlier.
func Starts(first, second Interval) (bool, error) {
	first, second, err := normalizePair(first, second)
	if err != nil {
		return false, err
	}
	return starts(first, second), nil
}

// StartedBy reports whether both start together and first ends later.
func StartedBy(first, second Interval) (bool, error) {
	first, second, err := normalizePair(first, second)
	if err != nil {
		return false, err
	}
	return startedBy(first, second), nil
}

// During reports whether first lies strictly inside second.
func During(first, second Interval) (bool, error) {
	first, second, err := normalizePair(first, second)
	if err != nil {
		return false, err
	}
	return during(first, second), nil
}

// Contains reports whether second lies strictly inside first.
func Contains(first, second Interval) (bool, error) {
	first, second, err := normalizePair(first, second)
	if err != nil {
		return false, err
	}
	return contains(first, second), nil
}

// Finishes reports whether both end together and first starts later.
func Finishes(first, second Interval) (bool, error) {
	first, second, err := normalizePair(first, second)
	if err != nil {
		return false, err
	}
	return finishes(first, second), nil
}

// FinishedBy reports whether both end together and first starts earlier.
func FinishedBy(first, second Interval) (bool, error) {
	first, second, err := normalizePair(first, second)
	if err != nil {
		return false, err
	}
	return finishedBy(first, second), nil
}

// Equals reports whether both bounds match.
func Equals(first, second Interval) (bool, error) {
	first, second, err := normalizePair(first, second)
	if err != nil {
		return false, err
	}
	return equals(first, second), nil
}

// In reports whether first falls within second: during, starts or finishes.
func In(first, second Interval) (bool, error) {
	first, second, err := normalizePair(first, second)
	if err != nil {
		return false, err
	}
	return during(first, second) || starts(first, second) || finishes(first, second), nil
}

// Follows reports whether first comes earlier than second with no overlap:
// meets or before.
func Follows(first, second Interval) (bool, error) {
	first, second, err := normalizePair(first, second)
	if err != nil {
		return false, err
	}
	return meets(first, second) || before(first, second), nil
}

// Precedes reports whether second comes earlier than first with no overlap:
// met-by or after.
func Precedes(first, second Interval) (bool, error) {
	first, second, err := normalizePair(first, second)
	if err != nil {
		return false, err
	}
	return metBy(first, second) || after(first, second), nil
}

// Intersects reports whether the two intervals share at least one instant.
func Intersects(first, second Interval) (bool, error) {
	first, second, err := normalizePair(first, second)
	if err != nil {
		return false, err
	}
	return !first.end.Before(second.start) && !first.start.After(second.end), nil
}

func normalizePair(first, second Interval) (Interval, Interval, error) {
	if err := first.validate(); err != nil {
		return Interval{}, Interval{}, errors.Wrap(err, "first interval")
	}
	if err := second.validate(); err != nil {
		return Interval{}, Interval{}, errors.Wrap(err, "second interval")
	}
	return first.normalized(), second.normalized(), nil
}

// Comparison helpers. All assume normalized arguments.

func before(i, j Interval) bool { return i.end.Before(j.start) }

func after(i, j Interval) bool { return i.start.After(j.end) }

func legacyAfter(i, j Interval) bool { return i.end.After(j.start) }

func meets(i, j Interval) bool { return i.end.Equal(j.start) }

func metBy(i, j Interval) bool { return j.end.Equal(i.start) }

func overlaps(i, j Interval) bool {
	return i.start.Before(j.start) && i.end.After(j.start) && i.end.Before(j.end)
}

func overlappedBy(i, j Interval) bool {
	return i.start.After(j.start) && i.start.Before(j.end) && i.end.After(j.end)
}

func starts(i, j Interval) bool { return i.start.Equal(j.start) && i.end.Before(j.end) }

func startedBy(i, j Interval) bool { return i.start.Equal(j.start) && i.end.After(j.end) }

func during(i, j Interval) bool { return i.start.After(j.start) && i.end.Before(j.end) }

func contains(i, j Interval) bool { return i.start.Before(j.start) && i.end.After(j.end) }

func finishes(i, j Interval) bool { return i.start.After(j.start) && i.end.Equal(j.end) }

func finishedBy(i, j Interval) bool { return i.start.Before(j.start) && i.end.Equal(j.end) }

func equals(i, j Interval) bool { return i.start.Equal(j.start) && i.end.Equal(j.end) }
