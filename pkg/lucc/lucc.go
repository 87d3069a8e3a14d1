// SPDX-License-Identifier: AGPL-3.0-only

// Package lucc wires the land use change calculus components into the
// application: batch chart generation and the HTTP API.
package lucc

import (
	"context"
	"flag"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/grafana/dskit/flagext"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"

	"github.com/landsense/lucc/pkg/api"
	"github.com/landsense/lucc/pkg/chart"
	"github.com/landsense/lucc/pkg/event"
	"github.com/landsense/lucc/pkg/ingest"
	"github.com/landsense/lucc/pkg/interval"
)

var chartTypes = []string{"sequence", "bar", "frequency", "area"}

type Config struct {
	ServerEnabled bool

	InputFile        string
	OutputDir        string
	Charts           flagext.StringSliceCSV
	WindowStart      string
	WindowEnd        string
	ResolutionMeters float64
	AreaPercentage   bool

	Relations interval.Config
	Palette   chart.PaletteConfig
	API       api.Config
}

func (cfg *Config) RegisterFlags(f *flag.FlagSet) {
	cfg.Charts = append([]string(nil), chartTypes...)

	f.BoolVar(&cfg.ServerEnabled, "server.enabled", false, "Run the HTTP API instead of batch chart generation.")
	f.StringVar(&cfg.InputFile, "input.file", "", "JSON file holding the classified time-series records.")
	f.StringVar(&cfg.OutputDir, "output.dir", "", "Directory where chart dataset artifacts are written.")
	f.Var(&cfg.Charts, "charts", "Comma-separated list of chart datasets to build: sequence, bar, frequency, area.")
	f.StringVar(&cfg.WindowStart, "chart.window.start", "", "Start date (YYYY-MM-DD) of the time window charts are clipped to. Requires -chart.window.end.")
	f.StringVar(&cfg.WindowEnd, "chart.window.end", "", "End date (YYYY-MM-DD) of the time window charts are clipped to. Requires -chart.window.start.")
	f.Float64Var(&cfg.ResolutionMeters, "chart.resolution-meters", 0, "Ground resolution of one classified pixel. When set, counts are also reported as areas in hectares.")
	f.BoolVar(&cfg.AreaPercentage, "chart.area-percentage", false, "Normalize stacked area rows to percentages.")

	cfg.Relations.RegisterFlags(f)
	cfg.Palette.RegisterFlags(f)
	cfg.API.RegisterFlags(f)
}

func (cfg *Config) Validate() error {
	if !cfg.ServerEnabled {
		if cfg.InputFile == "" {
			return errors.New("input.file is required")
		}
		if cfg.OutputDir == "" {
			return errors.New("output.dir is required")
		}
	}

	for _, name := range cfg.Charts {
		if !validChartType(name) {
			return errors.Errorf("unknown chart type %q, expected one of %s", name, strings.Join(chartTypes, ", "))
		}
	}

	if (cfg.WindowStart == "") != (cfg.WindowEnd == "") {
		return errors.New("chart.window.start and chart.window.end must be set together")
	}
	if cfg.WindowStart != "" {
		if _, err := interval.Parse(cfg.WindowStart, cfg.WindowEnd); err != nil {
			return errors.Wrap(err, "chart window")
		}
	}

	if cfg.ResolutionMeters < 0 {
		return errors.New("chart.resolution-meters must not be negative")
	}

	return cfg.Palette.Validate()
}

func validChartType(name string) bool {
	for _, t := range chartTypes {
		if t == name {
			return true
		}
	}
	return false
}

// App runs the configured mode: batch chart generation or the HTTP API.
type App struct {
	cfg        Config
	logger     log.Logger
	registerer prometheus.Registerer

	// Filesystem used for batch input and output, swappable in tests.
	fs afero.Fs
}

func New(cfg Config, logger log.Logger, registerer prometheus.Registerer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		registerer: registerer,
		fs:         afero.NewOsFs(),
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	if a.cfg.ServerEnabled {
		return a.runServer(ctx)
	}
	return a.runBatch()
}

func (a *App) runServer(ctx context.Context) error {
	evaluator := interval.NewEvaluator(a.cfg.Relations)
	server := api.New(a.cfg.API, evaluator, a.logger, a.registerer)

	if err := server.Start(); err != nil {
		return errors.Wrap(err, "starting API server")
	}

	<-ctx.Done()
	level.Info(a.logger).Log("msg", "shutting down")
	server.Stop()
	server.Await()
	return nil
}

func (a *App) runBatch() error {
	series, err := ingest.ReadFile(a.fs, a.cfg.InputFile)
	if err != nil {
		return err
	}
	level.Info(a.logger).Log("msg", "loaded classified series", "file", a.cfg.InputFile, "events", humanize.Comma(int64(len(series))), "labels", len(series.Labels()))

	opts, err := a.chartOptions()
	if err != nil {
		return err
	}

	if err := a.fs.MkdirAll(a.cfg.OutputDir, 0o755); err != nil {
		return errors.Wrapf(err, "creating output directory %s", a.cfg.OutputDir)
	}

	for _, name := range a.cfg.Charts {
		dataset, err := buildChart(name, series, opts)
		if err != nil {
			return errors.Wrapf(err, "building %s chart", name)
		}

		path := filepath.Join(a.cfg.OutputDir, name+".json")
		if err := chart.WriteJSON(a.fs, path, dataset); err != nil {
			return err
		}
		level.Info(a.logger).Log("msg", "wrote chart dataset", "chart", name, "path", path)
	}

	return nil
}

func (a *App) chartOptions() (chart.Options, error) {
	opts := chart.Options{
		Palette:          a.cfg.Palette,
		ResolutionMeters: a.cfg.ResolutionMeters,
		AreaPercentage:   a.cfg.AreaPercentage,
	}

	if a.cfg.WindowStart != "" {
		window, err := interval.Parse(a.cfg.WindowStart, a.cfg.WindowEnd)
		if err != nil {
			return chart.Options{}, errors.Wrap(err, "chart window")
		}
		opts.Window = window
	}

	return opts, nil
}

func buildChart(name string, series event.Series, opts chart.Options) (any, error) {
	switch name {
	case "sequence":
		return chart.BuildSequence(series, opts)
	case "bar":
		return chart.BuildBar(series, opts)
	case "frequency":
		return chart.BuildFrequency(series, opts)
	case "area":
		return chart.BuildArea(series, opts)
	}
	return nil, errors.Errorf("unknown chart type %q", name)
}
