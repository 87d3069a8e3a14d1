// SPDX-License-Identifier: AGPL-3.0-only

package api

import (
	"net/http"

	"github.com/go-kit/log/level"
	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/landsense/lucc/pkg/chart"
	"github.com/landsense/lucc/pkg/ingest"
	"github.com/landsense/lucc/pkg/interval"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type relationsResponse struct {
	Base    []string `json:"base"`
	Derived []string `json:"derived"`
}

type evalRequest struct {
	Relation string            `json:"relation"`
	First    interval.Interval `json:"first"`
	Second   interval.Interval `json:"second"`
}

type evalResponse struct {
	Relation string `json:"relation"`
	Result   bool   `json:"result"`
}

type chartRequest struct {
	Records []ingest.Record `json:"records"`
	Options chartOptions    `json:"options"`
}

type chartOptions struct {
	ResolutionMeters float64           `json:"resolution_meters"`
	Percentage       bool              `json:"percentage"`
	Window           interval.Interval `json:"window"`
	UseCustomPalette bool              `json:"use_custom_palette"`
	Colors           []string          `json:"colors"`
	Relabel          bool              `json:"relabel"`
	OriginalLabels   []string          `json:"original_labels"`
	NewLabels        []string          `json:"new_labels"`
}

func (o chartOptions) build() chart.Options {
	return chart.Options{
		Palette: chart.PaletteConfig{
			UseCustomPalette: o.UseCustomPalette,
			Colors:           o.Colors,
			Relabel:          o.Relabel,
			OriginalLabels:   o.OriginalLabels,
			NewLabels:        o.NewLabels,
		},
		Window:           o.Window,
		ResolutionMeters: o.ResolutionMeters,
		AreaPercentage:   o.Percentage,
	}
}

func (a *API) listRelations(w http.ResponseWriter, _ *http.Request) {
	a.writeJSON(w, relationsResponse{
		Base:    interval.BaseRelationNames(),
		Derived: interval.DerivedRelationNames(),
	})
}

func (a *API) evalRelation(w http.ResponseWriter, r *http.Request) {
	var req evalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, errors.Wrap(err, "decoding request").Error(), http.StatusBadRequest)
		return
	}

	result, err := a.evaluator.Eval(req.Relation, req.First, req.Second)
	if err != nil {
		a.metrics.evaluationsTotal.WithLabelValues(req.Relation, resultError).Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a.metrics.evaluationsTotal.WithLabelValues(req.Relation, resultSuccess).Inc()
	a.writeJSON(w, evalResponse{Relation: req.Relation, Result: result})
}

func (a *API) buildChart(w http.ResponseWriter, r *http.Request) {
	chartType := mux.Vars(r)["type"]

	var req chartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, errors.Wrap(err, "decoding request").Error(), http.StatusBadRequest)
		return
	}

	series, err := ingest.Events(req.Records)
	if err != nil {
		a.metrics.chartBuildsTotal.WithLabelValues(chartType, resultError).Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	opts := req.Options.build()

	var dataset any
	switch chartType {
	case "sequence":
		dataset, err = chart.BuildSequence(series, opts)
	case "bar":
		dataset, err = chart.BuildBar(series, opts)
	case "frequency":
		dataset, err = chart.BuildFrequency(series, opts)
	case "area":
		dataset, err = chart.BuildArea(series, opts)
	default:
		a.metrics.chartBuildsTotal.WithLabelValues(chartType, resultError).Inc()
		http.Error(w, errors.Errorf("unknown chart type %q", chartType).Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		a.metrics.chartBuildsTotal.WithLabelValues(chartType, resultError).Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a.metrics.chartBuildsTotal.WithLabelValues(chartType, resultSuccess).Inc()
	a.writeJSON(w, dataset)
}

func (a *API) writeJSON(w http.ResponseWriter, v any) {
	buf, err := json.Marshal(v)
	if err != nil {
		level.Error(a.logger).Log("msg", "failed to marshal response", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(buf); err != nil {
		level.Error(a.logger).Log("msg", "failed to write response", "err", err)
	}
}
