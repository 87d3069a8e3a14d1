// SPDX-License-Identifier: AGPL-3.0-only

package chart

import (
	"github.com/landsense/lucc/pkg/event"
)

// FrequencyPoint is one vertex of a frequency polygon: the event count for
// a label in a calendar year.
type FrequencyPoint struct {
	Year   int     `json:"year"`
	Label  string  `json:"label"`
	Color  string  `json:"color"`
	Count  int     `json:"count"`
	AreaHa float64 `json:"area_ha,omitempty"`
}

// FrequencyData renders as one polygon per label over the years.
type FrequencyData struct {
	Points []FrequencyPoint `json:"points"`
}

// BuildFrequency aggregates the series the same way as the bar chart but
// emits the groups as polygon vertices.
func BuildFrequency(s event.Series, opts Options) (*FrequencyData, error) {
	groups, err := aggregateByYear(s, opts)
	if err != nil {
		return nil, err
	}

	points := make([]FrequencyPoint, 0, len(groups))
	for _, g := range groups {
		points = append(points, FrequencyPoint(g))
	}
	return &FrequencyData{Points: points}, nil
}
