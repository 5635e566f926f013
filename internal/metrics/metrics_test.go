package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveLookup(t *testing.T) {
	m := New()

	m.ObserveLookup("plain", OutcomeOK)
	m.ObserveLookup("plain", OutcomeOK)
	m.ObserveLookup("translated", OutcomeNotFound)

	assert.InDelta(t, 2, testutil.ToFloat64(m.lookups.WithLabelValues("plain", OutcomeOK)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.lookups.WithLabelValues("translated", OutcomeNotFound)), 0)
}

func TestObserveTranslation(t *testing.T) {
	m := New()

	m.ObserveTranslation("yoda", true)
	m.ObserveTranslation("shakespeare", false)

	assert.InDelta(t, 1, testutil.ToFloat64(m.translations.WithLabelValues("yoda", "true")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.translations.WithLabelValues("shakespeare", "false")), 0)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveLookup("plain", OutcomeOK)
		m.ObserveTranslation("yoda", true)
	})
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveLookup("plain", OutcomeOK)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `pokedex_lookups_total{endpoint="plain",outcome="ok"} 1`)
}
