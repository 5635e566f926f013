// Package funtranslations rewrites text in a fictional voice using the fun
// translations API. Translation is cosmetic: every failure hands the input
// text back instead of an error.
package funtranslations

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/apex/log"
)

const (
	DefaultBaseURL = "https://api.funtranslations.com"
	maxBodySize    = 1 << 20
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type translateReply struct {
	Contents *struct {
		Translated *string `json:"translated"`
	} `json:"contents"`
}

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

// Translate asks for text in the given style. The bool reports whether a
// translation was obtained; when false the returned string is text itself.
func (c *Client) Translate(ctx context.Context, text string, style models.Style) (string, bool) {
	logger := log.FromContext(ctx).WithField("style", style)

	translated, err := c.translate(ctx, text, style)
	if err != nil {
		logger.WithError(err).Warn("translation failed, keeping original text")
		return text, false
	}

	if strings.TrimSpace(translated) == "" {
		logger.Debug("translation reply carried no text, keeping original text")
		return text, false
	}

	return translated, true
}

func (c *Client) translate(ctx context.Context, text string, style models.Style) (string, error) {
	endpoint := c.baseURL + "/translate/" + url.PathEscape(string(style)) + ".json"
	form := url.Values{"text": {text}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{StatusCode: resp.StatusCode}
	}

	var reply translateReply
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&reply); err != nil {
		return "", err
	}

	if reply.Contents == nil || reply.Contents.Translated == nil {
		return "", nil
	}

	return *reply.Contents.Translated, nil
}
