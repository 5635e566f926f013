// Package pokeapi resolves species documents from PokeAPI into
// models.Pokemon records.
package pokeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/apex/log"
)

const (
	DefaultBaseURL = "https://pokeapi.co/api/v2"
	speciesPath    = "/pokemon-species/"

	// Upper bound on a species document; the largest ones are well under 1MiB.
	maxBodySize = 4 << 20
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a species resolver against baseURL. A nil httpClient
// gets a client with the given timeout.
func NewClient(baseURL string, httpClient *http.Client, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Resolve fetches the species document for name and maps it into a record.
func (c *Client) Resolve(ctx context.Context, name string) (models.Pokemon, error) {
	lookup, err := models.NormalizeName(name)
	if err != nil {
		return models.Pokemon{}, err
	}

	// Errors carry the name as requested; only the URL uses the lower-cased form.
	name = strings.TrimSpace(name)
	logger := log.FromContext(ctx).WithField("pokemon", name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+speciesPath+url.PathEscape(lookup), http.NoBody)
	if err != nil {
		return models.Pokemon{}, &UpstreamError{Name: name, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "local-pokedex")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.WithError(err).Warn("species lookup failed")
		return models.Pokemon{}, &UpstreamError{Name: name, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return models.Pokemon{}, &models.NotFoundError{Name: name}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.WithField("status", resp.StatusCode).Warn("species lookup returned a non-OK response")
		return models.Pokemon{}, &UpstreamError{Name: name, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return models.Pokemon{}, &UpstreamError{Name: name, Err: err}
	}

	doc, err := decodeDocument(body)
	if err != nil {
		return models.Pokemon{}, &MappingError{Name: name, Err: err}
	}

	if len(doc) == 0 {
		return models.Pokemon{}, &models.NotFoundError{Name: name}
	}

	mon := mapSpecies(doc)
	logger.Debug("mapped species document")

	return mon, nil
}

// decodeDocument returns the species document as a generic object. An empty
// body or a JSON null both yield a nil map.
func decodeDocument(body []byte) (map[string]any, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding species document: %w", err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after species document")
	}

	if raw == nil {
		return nil, nil
	}

	doc, ok := raw.(map[string]any)
	if !ok {
		return nil, errors.New("species document is not a JSON object")
	}

	return doc, nil
}
