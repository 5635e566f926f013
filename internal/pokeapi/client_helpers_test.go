package pokeapi

import (
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
)

const testBaseURL = "https://pokeapi.test/api/v2"

// newTestClient returns a client whose transport is a fresh httpmock
// transport, so tests never touch the network or each other.
func newTestClient(t *testing.T) (*Client, *httpmock.MockTransport) {
	t.Helper()

	transport := httpmock.NewMockTransport()
	client := NewClient(testBaseURL, &http.Client{Transport: transport}, 0)

	return client, transport
}

func speciesURL(name string) string {
	return testBaseURL + "/pokemon-species/" + name
}

// mewtwoDocument is a trimmed species document as returned by PokeAPI.
func mewtwoDocument() string {
	return `{
  "id": 150,
  "name": "mewtwo",
  "is_legendary": true,
  "habitat": {"name": "rare", "url": "https://pokeapi.co/api/v2/pokemon-habitat/5/"},
  "flavor_text_entries": [
    {"flavor_text": "遺伝子操作によって作られた", "language": {"name": "ja", "url": ""}, "version": {"name": "x"}},
    {"flavor_text": "It was created by\na scientist after\nyears of horrific\fgene splicing and\nDNA engineering\nexperiments.", "language": {"name": "en", "url": ""}, "version": {"name": "red"}},
    {"flavor_text": "Its DNA is almost\nthe same as MEW's.", "language": {"name": "en", "url": ""}, "version": {"name": "blue"}}
  ]
}`
}
