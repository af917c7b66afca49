package azsearch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bfv/aztsgen/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hotelsJSON = `{"name":"hotels","fields":[{"name":"HotelId","type":"Edm.String"}]}`

func TestFetchIndex(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/indexes/hotels", r.URL.Path)
		assert.Equal(t, "2020-06-30", r.URL.Query().Get("api-version"))
		assert.Equal(t, "secret", r.Header.Get("api-key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(hotelsJSON))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, APIKey: "secret", APIVersion: "2020-06-30", HTTPClient: srv.Client()}
	data, err := c.FetchIndex(context.Background(), "hotels")
	require.NoError(t, err)
	assert.JSONEq(t, hotelsJSON, string(data))
}

func TestFetchIndex_NoKeyNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["Api-Key"]
		assert.False(t, present)
		_, _ = w.Write([]byte(hotelsJSON))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, APIVersion: "2020-06-30"}
	_, err := c.FetchIndex(context.Background(), "hotels")
	require.NoError(t, err)
}

func TestFetchIndex_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"No index with the name 'nope' was found"}}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, APIVersion: "2020-06-30", HTTPClient: srv.Client()}
	_, err := c.FetchIndex(context.Background(), "nope")
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "No index with the name")
}

func TestFetchIndex_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(hotelsJSON))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &Client{BaseURL: srv.URL, APIVersion: "2020-06-30", HTTPClient: srv.Client()}
	_, err := c.FetchIndex(ctx, "hotels")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewClient(t *testing.T) {
	c := NewClient(&config.Config{ServiceName: "acme", APIVersion: "2023-11-01", APIKey: "k"})
	assert.Equal(t, "https://acme.search.windows.net", c.BaseURL)
	assert.Equal(t, "2023-11-01", c.APIVersion)
	assert.Equal(t, "k", c.APIKey)
	require.NotNil(t, c.HTTPClient)
	assert.Equal(t, DefaultTimeout, c.HTTPClient.Timeout)
}
