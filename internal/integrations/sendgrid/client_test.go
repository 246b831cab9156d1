package sendgrid

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

func TestSend(t *testing.T) {
	var captured mailRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/mail/send", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", "noreply@shop.com", 5*time.Second, &noopLogger{})

	err := client.Send(context.Background(), []string{"owner@shop.com", "client@example.com"},
		"Бронь подтверждена", "Бронь подтверждена: 2026-09-07 в 10:00.")
	require.NoError(t, err)

	assert.Equal(t, "noreply@shop.com", captured.From.Email)
	assert.Equal(t, "Бронь подтверждена", captured.Subject)
	require.Len(t, captured.Personalizations, 1)
	assert.Equal(t, []emailAddress{
		{Email: "owner@shop.com"},
		{Email: "client@example.com"},
	}, captured.Personalizations[0].To)
}

func TestSend_DeduplicatesRecipients(t *testing.T) {
	var captured mailRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", "noreply@shop.com", 5*time.Second, &noopLogger{})

	// Владелец бронирует сам у себя - адрес совпадает
	err := client.Send(context.Background(), []string{"owner@shop.com", "owner@shop.com"}, "s", "b")
	require.NoError(t, err)

	assert.Len(t, captured.Personalizations[0].To, 1)
}

func TestSend_RejectedByAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "bad-key", "noreply@shop.com", 5*time.Second, &noopLogger{})

	err := client.Send(context.Background(), []string{"client@example.com"}, "s", "b")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSendFailed)
}

func TestSend_NoRecipients(t *testing.T) {
	client := NewClient("http://unused", "k", "noreply@shop.com", 5*time.Second, &noopLogger{})

	err := client.Send(context.Background(), nil, "s", "b")
	assert.ErrorIs(t, err, ErrNoRecipients)

	err = client.Send(context.Background(), []string{""}, "s", "b")
	assert.ErrorIs(t, err, ErrNoRecipients)
}
