// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Lookup outcomes.
const (
	OutcomeOK           = "ok"
	OutcomeInvalidInput = "invalid_input"
	OutcomeNotFound     = "not_found"
	OutcomeError        = "error"
)

type Metrics struct {
	registry *prometheus.Registry

	lookups      *prometheus.CounterVec
	translations *prometheus.CounterVec
}

// New builds a fresh registry so that tests and the server never share
// collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pokedex",
			Name:      "lookups_total",
			Help:      "Pokemon lookups by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		translations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pokedex",
			Name:      "translations_total",
			Help:      "Translation attempts by style and whether a translation was used.",
		}, []string{"style", "translated"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.lookups,
		m.translations,
	)

	return m
}

func (m *Metrics) ObserveLookup(endpoint, outcome string) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(endpoint, outcome).Inc()
}

func (m *Metrics) ObserveTranslation(style string, translated bool) {
	if m == nil {
		return
	}
	label := "false"
	if translated {
		label = "true"
	}
	m.translations.WithLabelValues(style, label).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
