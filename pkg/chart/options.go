// SPDX-License-Identifier: AGPL-3.0-only

// Package chart reshapes classified event series into the datasets the
// external chart renderer consumes: sequence segments, yearly bars,
// frequency polygon points and stacked areas. It performs grouping,
// counting and unit conversion only; rendering is out of scope.
package chart

import (
	"flag"

	"github.com/grafana/dskit/flagext"
	"github.com/pkg/errors"

	"github.com/landsense/lucc/pkg/interval"
)

// defaultColors is the palette cycled over labels when no custom palette is
// configured.
var defaultColors = []string{
	"#1b9e77", "#d95f02", "#7570b3", "#e7298a",
	"#66a61e", "#e6ab02", "#a6761d", "#666666",
}

// PaletteConfig controls label colors and the optional legend relabeling.
type PaletteConfig struct {
	UseCustomPalette bool                   `yaml:"use_custom_palette"`
	Colors           flagext.StringSliceCSV `yaml:"colors"`
	Relabel          bool                   `yaml:"relabel"`
	OriginalLabels   flagext.StringSliceCSV `yaml:"original_labels"`
	NewLabels        flagext.StringSliceCSV `yaml:"new_labels"`
}

func (cfg *PaletteConfig) RegisterFlags(f *flag.FlagSet) {
	f.BoolVar(&cfg.UseCustomPalette, "chart.use-custom-palette", false, "Color labels with the palette given in -chart.colors instead of the built-in one.")
	f.Var(&cfg.Colors, "chart.colors", "Comma-separated list of colors used when -chart.use-custom-palette is set. Must have at least one color per distinct label.")
	f.BoolVar(&cfg.Relabel, "chart.relabel", false, "Rename labels in chart output, mapping -chart.original-labels onto -chart.new-labels.")
	f.Var(&cfg.OriginalLabels, "chart.original-labels", "Comma-separated list of labels to rename when -chart.relabel is set.")
	f.Var(&cfg.NewLabels, "chart.new-labels", "Comma-separated list of replacement labels, one per entry of -chart.original-labels.")
}

func (cfg *PaletteConfig) Validate() error {
	if cfg.UseCustomPalette && len(cfg.Colors) == 0 {
		return errors.New("custom palette enabled but no colors configured")
	}
	if cfg.Relabel && len(cfg.OriginalLabels) != len(cfg.NewLabels) {
		return errors.Errorf("relabel configured with %d original labels but %d new labels", len(cfg.OriginalLabels), len(cfg.NewLabels))
	}
	return nil
}

// relabel returns the display name for a label.
func (cfg *PaletteConfig) relabel(label string) string {
	if !cfg.Relabel {
		return label
	}
	for idx, original := range cfg.OriginalLabels {
		if original == label {
			return cfg.NewLabels[idx]
		}
	}
	return label
}

// colorMap assigns a color to every label, cycling the palette when there
// are more labels than colors. With a custom palette the configured colors
// must cover the label set.
func (cfg *PaletteConfig) colorMap(labels []string) (map[string]string, error) {
	colors := defaultColors
	if cfg.UseCustomPalette {
		colors = cfg.Colors
		if len(colors) < len(labels) {
			return nil, errors.Errorf("custom palette has %d colors but the series has %d labels", len(colors), len(labels))
		}
	}

	out := make(map[string]string, len(labels))
	for idx, label := range labels {
		out[label] = colors[idx%len(colors)]
	}
	return out, nil
}

// Options bundles the parameters shared by all chart builders.
type Options struct {
	Palette PaletteConfig

	// Window clips the series to events intersecting it. The zero value
	// keeps every event.
	Window interval.Interval

	// ResolutionMeters is the ground resolution of one classified pixel.
	// When set, aggregated counts are also reported as areas in hectares
	// (count * resolution² / 10⁴).
	ResolutionMeters float64

	// AreaPercentage normalizes stacked area rows to percentages.
	AreaPercentage bool
}

func (o *Options) Validate() error {
	if o.ResolutionMeters < 0 {
		return errors.New("resolution must not be negative")
	}
	return o.Palette.Validate()
}

// pixelAreaHa returns the area of one pixel in hectares, or zero when no
// resolution is configured.
func (o *Options) pixelAreaHa() float64 {
	return o.ResolutionMeters * o.ResolutionMeters / 1e4
}
