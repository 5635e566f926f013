package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/FlagBrew/local-pokedex/internal/funtranslations"
	"github.com/FlagBrew/local-pokedex/internal/metrics"
	"github.com/FlagBrew/local-pokedex/internal/pokeapi"
	"github.com/FlagBrew/local-pokedex/internal/pokedex"
	"github.com/FlagBrew/local-pokedex/internal/utils"
	"github.com/apex/log"
	"github.com/go-chi/chi/v5"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPokeAPI      = "https://pokeapi.test/api/v2"
	testTranslations = "https://translations.test"
)

const zubatDocument = `{
  "id": 41,
  "name": "zubat",
  "is_legendary": false,
  "habitat": {"name": "cave"},
  "flavor_text_entries": [
    {"flavor_text": "くらい ばしょに むれで すむ", "language": {"name": "ja-Hrkt"}},
    {"flavor_text": "Forms colonies in\nperpetually dark\fplaces.", "language": {"name": "en"}}
  ]
}`

type testServer struct {
	router       chi.Router
	pokeapi      *httpmock.MockTransport
	translations *httpmock.MockTransport
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ts := &testServer{
		pokeapi:      httpmock.NewMockTransport(),
		translations: httpmock.NewMockTransport(),
	}

	m := metrics.New()
	s := pokedex.NewService(
		pokeapi.NewClient(testPokeAPI, &http.Client{Transport: ts.pokeapi}, 0),
		funtranslations.NewClient(testTranslations, &http.Client{Transport: ts.translations}, 0),
		m,
	)
	ts.router = newRouter(utils.NewLogger(log.InfoLevel, false, io.Discard), s, m, false)

	return ts
}

func (ts *testServer) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, http.NoBody))
	return rec
}

func TestRouter_Pokemon(t *testing.T) {
	ts := newTestServer(t)
	ts.pokeapi.RegisterResponder(http.MethodGet, testPokeAPI+"/pokemon-species/zubat",
		httpmock.NewStringResponder(http.StatusOK, zubatDocument))

	rec := ts.get(t, "/pokemon/zubat")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"id": 41,
		"name": "zubat",
		"description": "Forms colonies in perpetually dark places.",
		"habitat": "cave",
		"isLegendary": false
	}`, rec.Body.String())
	assert.Equal(t, 0, ts.translations.GetTotalCallCount())
}

func TestRouter_TranslatedPokemon(t *testing.T) {
	ts := newTestServer(t)
	ts.pokeapi.RegisterResponder(http.MethodGet, testPokeAPI+"/pokemon-species/zubat",
		httpmock.NewStringResponder(http.StatusOK, zubatDocument))
	ts.translations.RegisterResponder(http.MethodPost, testTranslations+"/translate/yoda.json",
		httpmock.NewStringResponder(http.StatusOK, `{"success": {"total": 1}, "contents": {"translated": "In perpetually dark places,  colonies forms.", "text": "x", "translation": "yoda"}}`))

	rec := ts.get(t, "/pokemon/translated/zubat")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"id": 41,
		"name": "zubat",
		"description": "In perpetually dark places,  colonies forms.",
		"habitat": "cave",
		"isLegendary": false
	}`, rec.Body.String())
	assert.Equal(t, 1, ts.translations.GetTotalCallCount())
}

func TestRouter_TranslationDownKeepsDescription(t *testing.T) {
	ts := newTestServer(t)
	ts.pokeapi.RegisterResponder(http.MethodGet, testPokeAPI+"/pokemon-species/zubat",
		httpmock.NewStringResponder(http.StatusOK, zubatDocument))
	ts.translations.RegisterResponder(http.MethodPost, testTranslations+"/translate/yoda.json",
		httpmock.NewStringResponder(http.StatusTooManyRequests, `{"error": {"code": 429}}`))

	rec := ts.get(t, "/pokemon/translated/zubat")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Forms colonies in perpetually dark places.", body["description"])
}

func TestRouter_NotFound(t *testing.T) {
	ts := newTestServer(t)
	ts.pokeapi.RegisterResponder(http.MethodGet, testPokeAPI+"/pokemon-species/nonexistent",
		httpmock.NewStringResponder(http.StatusNotFound, "Not Found"))

	rec := ts.get(t, "/pokemon/translated/nonexistent")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "pokemon not found: nonexistent"}`, rec.Body.String())
	assert.Equal(t, 0, ts.translations.GetTotalCallCount())
}

func TestRouter_BlankName(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.get(t, "/pokemon/%20%20")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, ts.pokeapi.GetTotalCallCount())
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	ts := newTestServer(t)
	ts.pokeapi.RegisterResponder(http.MethodGet, testPokeAPI+"/pokemon-species/zubat",
		httpmock.NewStringResponder(http.StatusOK, zubatDocument))

	rec := ts.get(t, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())

	require.Equal(t, http.StatusOK, ts.get(t, "/pokemon/zubat").Code)

	rec = ts.get(t, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `pokedex_lookups_total{endpoint="plain",outcome="ok"} 1`)
}
