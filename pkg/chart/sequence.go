// SPDX-License-Identifier: AGPL-3.0-only

package chart

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/landsense/lucc/pkg/event"
	"github.com/landsense/lucc/pkg/interval"
)

// SequenceSegment is one colored bar on a location's timeline.
type SequenceSegment struct {
	ID       int64             `json:"id"`
	Label    string            `json:"label"`
	Color    string            `json:"color"`
	Interval interval.Interval `json:"interval"`
}

// SequenceData renders as one timeline per location, each holding the
// sequence of classified segments over the window.
type SequenceData struct {
	Window   interval.Interval `json:"window"`
	Segments []SequenceSegment `json:"segments"`
}

// BuildSequence reshapes the series into per-location timeline segments,
// ordered by location and start time.
func BuildSequence(s event.Series, opts Options) (*SequenceData, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	clipped, err := clipToWindow(s, opts.Window)
	if err != nil {
		return nil, err
	}
	if len(clipped) == 0 {
		return nil, errors.New("no events to plot")
	}

	colors, err := opts.Palette.colorMap(displayLabels(clipped, &opts.Palette))
	if err != nil {
		return nil, err
	}

	window := opts.Window
	if window.IsZero() {
		if window, err = clipped.Window(); err != nil {
			return nil, err
		}
	}

	segments := make([]SequenceSegment, 0, len(clipped))
	for _, e := range clipped {
		iv, err := e.Interval()
		if err != nil {
			return nil, err
		}
		label := opts.Palette.relabel(e.Label)
		segments = append(segments, SequenceSegment{
			ID:       e.ID,
			Label:    label,
			Color:    colors[label],
			Interval: iv,
		})
	}

	sort.Slice(segments, func(i, j int) bool {
		if segments[i].ID != segments[j].ID {
			return segments[i].ID < segments[j].ID
		}
		return segments[i].Interval.Start().Before(segments[j].Interval.Start())
	})

	return &SequenceData{Window: window, Segments: segments}, nil
}

// clipToWindow drops events not intersecting the window. A zero window
// keeps everything.
func clipToWindow(s event.Series, window interval.Interval) (event.Series, error) {
	if window.IsZero() {
		return s, nil
	}

	var out event.Series
	for _, e := range s {
		iv, err := e.Interval()
		if err != nil {
			return nil, err
		}
		ok, err := interval.Intersects(iv, window)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, e)
		}
	}
	return out, nil
}

// displayLabels returns the distinct labels after relabeling, sorted.
func displayLabels(s event.Series, palette *PaletteConfig) []string {
	seen := map[string]struct{}{}
	var labels []string
	for _, e := range s {
		label := palette.relabel(e.Label)
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
