package sheet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NotConfigured(t *testing.T) {
	_, err := New("", "", time.Second)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestAppendRow(t *testing.T) {
	var got appendRequest
	var auth, contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		auth = r.Header.Get("Authorization")
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, err := New(srv.URL, "tok", time.Second)
	require.NoError(t, err)

	err = c.AppendRow(context.Background(), "Beta Signups", []any{"2026-01-02T03:04:05Z", "beta", "Ada", 42})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok", auth)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, "Beta Signups", got.Sheet)
	require.Len(t, got.Values, 1)
	// JSON numbers decode as float64
	assert.Equal(t, []any{"2026-01-02T03:04:05Z", "beta", "Ada", float64(42)}, got.Values[0])
}

func TestAppendRow_NoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c, err := New(srv.URL, "", time.Second)
	require.NoError(t, err)
	assert.NoError(t, c.AppendRow(context.Background(), "Contact", []any{"x"}))
}

func TestAppendRow_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, strings.Repeat("quota exceeded ", 100), http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c, err := New(srv.URL, "", time.Second)
	require.NoError(t, err)

	err = c.AppendRow(context.Background(), "Contact", []any{"x"})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.LessOrEqual(t, len(apiErr.Body), 512)
	assert.Contains(t, apiErr.Error(), "429")
}

func TestAppendRow_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c, err := New(srv.URL, "", 20*time.Millisecond)
	require.NoError(t, err)
	assert.Error(t, c.AppendRow(context.Background(), "Contact", []any{"x"}))
}
