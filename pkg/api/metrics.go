// SPDX-License-Identifier: AGPL-3.0-only

package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "lucc"

const (
	resultSuccess = "success"
	resultError   = "error"
)

type Metrics struct {
	evaluationsTotal *prometheus.CounterVec
	chartBuildsTotal *prometheus.CounterVec
}

func NewMetrics(registerer prometheus.Registerer) *Metrics {
	return &Metrics{
		evaluationsTotal: promauto.With(registerer).NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "relation_evaluations_total",
			Help:      "Total number of relation evaluations served, by relation and result.",
		}, []string{"relation", "result"}),
		chartBuildsTotal: promauto.With(registerer).NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "chart_builds_total",
			Help:      "Total number of chart datasets built, by chart type and result.",
		}, []string{"type", "result"}),
	}
}
