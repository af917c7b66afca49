// Package azsearch fetches index definitions from an Azure Cognitive Search service.
package azsearch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bfv/aztsgen/internal/config"
	"github.com/rs/zerolog/log"
)

// DefaultTimeout bounds a single metadata request.
const DefaultTimeout = 30 * time.Second

// maxErrorBody caps how much of an error response ends up in StatusError.
const maxErrorBody = 512

// Client talks to the search service REST API.
type Client struct {
	BaseURL    string
	APIKey     string
	APIVersion string
	HTTPClient *http.Client
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("search service returned %d: %s", e.StatusCode, e.Body)
}

// NewClient builds a client for the service named in cfg.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		BaseURL:    fmt.Sprintf("https://%s.search.windows.net", cfg.ServiceName),
		APIKey:     cfg.APIKey,
		APIVersion: cfg.APIVersion,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// FetchIndex downloads the raw JSON definition of the named index.
func (c *Client) FetchIndex(ctx context.Context, indexName string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/indexes/%s?api-version=%s",
		c.BaseURL, url.PathEscape(indexName), url.QueryEscape(c.APIVersion))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.APIKey != "" {
		req.Header.Set("api-key", c.APIKey)
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	log.Debug().Str("url", endpoint).Msg("fetching index definition")
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching index %q: %w", indexName, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading index %q: %w", indexName, err)
	}
	log.Debug().Int("bytes", len(data)).Msg("index definition fetched")
	return data, nil
}
