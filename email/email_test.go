package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmailService_MissingConfig(t *testing.T) {
	_, err := newEmailService("", "from@example.com", "http://localhost", time.Second)
	assert.Error(t, err)

	_, err = newEmailService("key", "", "http://localhost", time.Second)
	assert.Error(t, err)
}

func TestSendEmail(t *testing.T) {
	var got Email
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	s, err := newEmailService("secret", "no-reply@example.com", srv.URL, time.Second)
	require.NoError(t, err)

	err = s.SendEmail(context.Background(), "team@example.com", "Hello", "<p>hi</p>")
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret", auth)
	assert.Equal(t, "Hello", got.Subject)
	assert.Equal(t, "no-reply@example.com", got.From.Email)
	require.Len(t, got.Personalizations, 1)
	assert.Equal(t, "team@example.com", got.Personalizations[0].To[0].Email)
	require.Len(t, got.Content, 1)
	assert.Equal(t, "text/html", got.Content[0].Type)
	assert.Equal(t, "<p>hi</p>", got.Content[0].Value)
}

func TestSendEmail_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":[{"message":"bad key"}]}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	s, err := newEmailService("secret", "no-reply@example.com", srv.URL, time.Second)
	require.NoError(t, err)

	err = s.SendEmail(context.Background(), "team@example.com", "Hello", "<p>hi</p>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "bad key")
}

func TestMockEmailService(t *testing.T) {
	m := NewMockEmailService()
	require.NoError(t, m.SendEmail(context.Background(), "a@example.com", "One", "body"))

	sent := m.GetSentEmails()
	require.Len(t, sent, 1)
	assert.Equal(t, "a@example.com", sent[0].To)
	assert.Equal(t, "One", sent[0].Subject)

	m.FailWith(errors.New("down"))
	assert.Error(t, m.SendEmail(context.Background(), "a@example.com", "Two", "body"))
	assert.Len(t, m.GetSentEmails(), 1)
}
