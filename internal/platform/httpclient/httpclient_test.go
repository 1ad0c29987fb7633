package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClient_Health(t *testing.T) {
	var healthy atomic.Bool
	healthy.Store(true)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			http.NotFound(w, r)
			return
		}
		if !healthy.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("unavailable"))
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL+"/", 0)
	require.NoError(t, err)
	require.NoError(t, c.Health(context.Background()))

	healthy.Store(false)
	err = c.Health(context.Background())
	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	require.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
	require.Equal(t, "unavailable", httpErr.Body)
}

func TestClient_Do_JSONAndQuery(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Query().Get("user_name") != "Alice Smith" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"adopcion":{"animal_name":"Rex","user_name":"Alice Smith"}}`))
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, 0)
	require.NoError(t, err)

	var out struct {
		Adopcion struct {
			AnimalName string `json:"animal_name"`
		} `json:"adopcion"`
	}
	err = c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "adopcion",
		Query:  url.Values{"user_name": {"Alice Smith"}, "animal_name": {"Rex"}},
	}, &out)
	require.NoError(t, err)
	require.Equal(t, "Rex", out.Adopcion.AnimalName)
}

func TestClient_Do_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"animal not available","error":"conflict"}`))
	}))
	defer ts.Close()

	c := New(0)
	err := c.Do(context.Background(), Request{Method: http.MethodPost, Path: ts.URL + "/adopcion"}, nil)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	require.Equal(t, "conflict", httpErr.Kind)
	require.Equal(t, "animal not available", httpErr.Detail)
}

func TestClient_RelativePathNeedsBaseURL(t *testing.T) {
	err := New(0).Do(context.Background(), Request{Path: "/health"}, nil)
	require.Error(t, err)

	_, err = NewWithBaseURL("::not a url", 0)
	require.Error(t, err)
}
