package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "results-bot/1.0", r.Header.Get("User-Agent"))
		w.Write([]byte("<html><h1>Daniel Smith</h1></html>"))
	}))
	defer srv.Close()

	c := NewClient(Options{Timeout: 5 * time.Second, UserAgent: "results-bot/1.0"})
	html, err := c.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, html, "Daniel Smith")
}

func TestClientFetchNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(Options{})
	_, err := c.Fetch(context.Background(), srv.URL)

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusForbidden, fe.StatusCode)
	assert.Contains(t, fe.Error(), "403")
}

func TestClientFetchNetworkError(t *testing.T) {
	c := NewClient(Options{Timeout: time.Second})
	_, err := c.Fetch(context.Background(), "http://127.0.0.1:1/never")

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Zero(t, fe.StatusCode)
	assert.NotNil(t, errors.Unwrap(fe))
}

func TestClientFetchRespectsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := NewClient(Options{Timeout: 10 * time.Second})
	_, err := c.Fetch(ctx, srv.URL)
	require.Error(t, err)
}

func TestNewSelectsFetcher(t *testing.T) {
	assert.IsType(t, &Client{}, New(Options{}))
	assert.IsType(t, &Renderer{}, New(Options{RenderJavaScript: true}))
}
