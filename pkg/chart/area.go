// SPDX-License-Identifier: AGPL-3.0-only

package chart

import (
	"sort"

	"github.com/landsense/lucc/pkg/event"
)

// AreaRow holds the per-label values for one year of a stacked area chart.
// Values are event counts, areas in hectares when a resolution is
// configured, or percentages when normalization is enabled.
type AreaRow struct {
	Year   int                `json:"year"`
	Values map[string]float64 `json:"values"`
}

// AreaData renders as a stacked (or percentage-stacked) area chart.
type AreaData struct {
	Labels     []string  `json:"labels"`
	Colors     []string  `json:"colors"`
	Rows       []AreaRow `json:"rows"`
	Percentage bool      `json:"percentage"`
}

// BuildArea aggregates the series per year and label into stacked rows.
// With Options.AreaPercentage each row is normalized to sum to 100; missing
// labels contribute zero.
func BuildArea(s event.Series, opts Options) (*AreaData, error) {
	groups, err := aggregateByYear(s, opts)
	if err != nil {
		return nil, err
	}

	labelSet := map[string]string{}
	byYear := map[int]map[string]float64{}
	for _, g := range groups {
		labelSet[g.Label] = g.Color

		value := float64(g.Count)
		if opts.ResolutionMeters > 0 {
			value = g.AreaHa
		}

		row, ok := byYear[g.Year]
		if !ok {
			row = map[string]float64{}
			byYear[g.Year] = row
		}
		row[g.Label] = value
	}

	labels := make([]string, 0, len(labelSet))
	for label := range labelSet {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	colors := make([]string, 0, len(labels))
	for _, label := range labels {
		colors = append(colors, labelSet[label])
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)

	rows := make([]AreaRow, 0, len(years))
	for _, year := range years {
		values := map[string]float64{}
		total := 0.0
		for _, label := range labels {
			values[label] = byYear[year][label]
			total += values[label]
		}

		if opts.AreaPercentage && total > 0 {
			for label, value := range values {
				values[label] = value / total * 100
			}
		}

		rows = append(rows, AreaRow{Year: year, Values: values})
	}

	return &AreaData{Labels: labels, Colors: colors, Rows: rows, Percentage: opts.AreaPercentage}, nil
}
