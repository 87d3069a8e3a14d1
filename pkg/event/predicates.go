// SPDX-License-Identifier: AGPL-3.0-only

package event

import (
	"github.com/pkg/errors"

	"github.com/landsense/lucc/pkg/interval"
)

// Predicates over classified event series, composed from the interval
// relations. Each predicate returns the subset of events satisfying it.

// Holds returns the events carrying label whose interval falls within the
// query window (in the Allen sense: during, starts or finishes) or matches
// it exactly.
func Holds(s Series, label string, window interval.Interval) (Series, error) {
	var out Series
	for _, e := range s.WithLabel(label) {
		iv, err := e.Interval()
		if err != nil {
			return nil, err
		}

		ok, err := interval.In(iv, window)
		if err != nil {
			return nil, errors.Wrapf(err, "event %d", e.ID)
		}
		if !ok {
			ok, err = interval.Equals(iv, window)
			if err != nil {
				return nil, errors.Wrapf(err, "event %d", e.ID)
			}
		}
		if ok {
			out = append(out, e)
		}
	}
	return out, nil
}

// Recur returns the events at locations where label holds in both windows.
// The windows must be disjoint: the first must come entirely before the
// second.
func Recur(s Series, label string, first, second interval.Interval) (Series, error) {
	if err := requireOrderedWindows(first, second); err != nil {
		return nil, err
	}

	inFirst, err := Holds(s, label, first)
	if err != nil {
		return nil, err
	}
	inSecond, err := Holds(s, label, second)
	if err != nil {
		return nil, err
	}

	firstIDs := ids(inFirst)
	secondIDs := ids(inSecond)

	var out Series
	for _, e := range inFirst {
		if _, ok := secondIDs[e.ID]; ok {
			out = append(out, e)
		}
	}
	for _, e := range inSecond {
		if _, ok := firstIDs[e.ID]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

// Convert returns the events at locations where label from holds in the
// first window and is immediately replaced by label to in the second: the
// earlier event's interval meets the later one's.
func Convert(s Series, from, to string, first, second interval.Interval) (Series, error) {
	return transition(s, from, to, first, second, interval.Meets)
}

// Evolve is like Convert but allows a gap between the two occurrences: any
// event with label to holding in the second window qualifies.
func Evolve(s Series, from, to string, first, second interval.Interval) (Series, error) {
	return transition(s, from, to, first, second, nil)
}

func transition(s Series, from, to string, first, second interval.Interval, ordered func(interval.Interval, interval.Interval) (bool, error)) (Series, error) {
	if err := requireOrderedWindows(first, second); err != nil {
		return nil, err
	}

	fromEvents, err := Holds(s, from, first)
	if err != nil {
		return nil, err
	}
	toEvents, err := Holds(s, to, second)
	if err != nil {
		return nil, err
	}

	var out Series
	for _, fe := range fromEvents {
		for _, te := range toEvents {
			if fe.ID != te.ID {
				continue
			}
			if ordered != nil {
				feIv, err := fe.Interval()
				if err != nil {
					return nil, err
				}
				teIv, err := te.Interval()
				if err != nil {
					return nil, err
				}
				ok, err := ordered(feIv, teIv)
				if err != nil {
					return nil, err
				}
				if !ok {
					continue
				}
			}
			out = append(out, fe, te)
		}
	}
	return out, nil
}

func requireOrderedWindows(first, second interval.Interval) error {
	ok, err := interval.Follows(first, second)
	if err != nil {
		return errors.Wrap(err, "query windows")
	}
	if !ok {
		return errors.Errorf("query windows must be disjoint and ordered, got %s and %s", first, second)
	}
	return nil
}

func ids(s Series) map[int64]struct{} {
	out := make(map[int64]struct{}, len(s))
	for _, e := range s {
		out[e.ID] = struct{}{}
	}
	return out
}
