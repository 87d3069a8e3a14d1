// SPDX-License-Identifier: AGPL-3.0-only

package chart

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/landsense/lucc/pkg/event"
)

// BarGroup is one bar: the number of events carrying a label in a calendar
// year, optionally converted to an area.
type BarGroup struct {
	Year   int     `json:"year"`
	Label  string  `json:"label"`
	Color  string  `json:"color"`
	Count  int     `json:"count"`
	AreaHa float64 `json:"area_ha,omitempty"`
}

// BarData renders as grouped or stacked bars, one group per year.
type BarData struct {
	Groups []BarGroup `json:"groups"`
}

// BuildBar groups the series by calendar year of the event start and by
// label, counting events per group.
func BuildBar(s event.Series, opts Options) (*BarData, error) {
	groups, err := aggregateByYear(s, opts)
	if err != nil {
		return nil, err
	}
	return &BarData{Groups: groups}, nil
}

type yearLabel struct {
	year  int
	label string
}

// aggregateByYear is the shared grouping behind the bar and frequency
// charts: events per (start year, display label), sorted by year then label.
func aggregateByYear(s event.Series, opts Options) ([]BarGroup, error) {
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

	counts := map[yearLabel]int{}
	for _, e := range clipped {
		if _, err := e.Interval(); err != nil {
			return nil, err
		}
		key := yearLabel{year: e.Start.Year(), label: opts.Palette.relabel(e.Label)}
		counts[key]++
	}

	pixelArea := opts.pixelAreaHa()
	groups := make([]BarGroup, 0, len(counts))
	for key, count := range counts {
		groups = append(groups, BarGroup{
			Year:   key.year,
			Label:  key.label,
			Color:  colors[key.label],
			Count:  count,
			AreaHa: float64(count) * pixelArea,
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Year != groups[j].Year {
			return groups[i].Year < groups[j].Year
		}
		return groups[i].Label < groups[j].Label
	})

	return groups, nil
}
