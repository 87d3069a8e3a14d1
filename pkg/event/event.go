// SPDX-License-Identifier: AGPL-3.0-only

// Package event models classified land use change events: per-location
// observations carrying a label over a time interval.
package event

import (
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/landsense/lucc/pkg/interval"
)

// Event is one classified observation: a location index, the assigned land
// use label and the time interval the classification covers.
type Event struct {
	ID    int64
	Label string
	Start time.Time
	End   time.Time
}

// Interval returns the event's time interval, validating the bounds.
func (e Event) Interval() (interval.Interval, error) {
	i, err := interval.New(e.Start, e.End)
	if err != nil {
		return interval.Interval{}, errors.Wrapf(err, "event %d", e.ID)
	}
	return i, nil
}

// Series is an ordered collection of events.
type Series []Event

// Filter returns the events for which keep is true.
func (s Series) Filter(keep func(Event) bool) Series {
	var out Series
	for _, e := range s {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// WithLabel returns the events carrying the given label.
func (s Series) WithLabel(label string) Series {
	return s.Filter(func(e Event) bool { return e.Label == label })
}

// Labels returns the distinct labels in the series, sorted.
func (s Series) Labels() []string {
	seen := map[string]struct{}{}
	var labels []string
	for _, e := range s {
		if _, ok := seen[e.Label]; ok {
			continue
		}
		seen[e.Label] = struct{}{}
		labels = append(labels, e.Label)
	}
	sort.Strings(labels)
	return labels
}

// Window returns the smallest interval enclosing every event in the series.
func (s Series) Window() (interval.Interval, error) {
	if len(s) == 0 {
		return interval.Interval{}, errors.New("empty series")
	}

	min, max := s[0].Start, s[0].End
	for _, e := range s[1:] {
		if e.Start.Before(min) {
			min = e.Start
		}
		if e.End.After(max) {
			max = e.End
		}
	}
	return interval.New(min, max)
}
