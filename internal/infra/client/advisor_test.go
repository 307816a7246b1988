package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/boddenberg/startup-bot-go/internal/domain"
	"github.com/boddenberg/startup-bot-go/internal/infra/client"
	"github.com/boddenberg/startup-bot-go/internal/infra/resilience"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testModel = "claude-sonnet-4-20250514"

func newClient(url, key string) *client.AdvisorClient {
	return client.NewAdvisorClient(http.DefaultClient, url, key, testModel, resilience.NewCircuitBreaker("test"))
}

func TestAdvisorClient_SendsContract(t *testing.T) {
	var got struct {
		Model     string `json:"model"`
		MaxTokens int    `json:"max_tokens"`
		Messages  []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
		assert.Equal(t, "application/json", r.Header.Get("content-type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[{"type":"text","text":"first"},{"type":"text","text":"second"}]}`))
	}))
	defer srv.Close()

	answer, err := newClient(srv.URL+"/", "secret").Ask(context.Background(), "How do I validate my idea?")

	require.NoError(t, err)
	assert.Equal(t, "first", answer)
	assert.Equal(t, testModel, got.Model)
	assert.Equal(t, 500, got.MaxTokens)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "As a startup advisor, answer this question concisely (max 400 words): How do I validate my idea?", got.Messages[0].Content)
}

func TestAdvisorClient_NoKeySkipsNetwork(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	_, err := newClient(srv.URL, "").Ask(context.Background(), "anything")

	var notConfigured *domain.ErrNotConfigured
	require.True(t, errors.As(err, &notConfigured))
	assert.Equal(t, int32(0), hits.Load())
}

func TestAdvisorClient_Configured(t *testing.T) {
	assert.False(t, newClient("http://127.0.0.1:1", "").Configured())
	assert.True(t, newClient("http://127.0.0.1:1", "key").Configured())
}

func TestAdvisorClient_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":{"message":"overloaded: internal detail"}}`))
	}))
	defer srv.Close()

	_, err := newClient(srv.URL, "secret").Ask(context.Background(), "q")

	var status *domain.ErrUpstreamStatus
	require.True(t, errors.As(err, &status))
	assert.Equal(t, http.StatusServiceUnavailable, status.Status)
	assert.NotContains(t, err.Error(), "internal detail")
}

func TestAdvisorClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newClient(url, "secret").Ask(context.Background(), "q")

	var ext *domain.ErrExternalService
	require.True(t, errors.As(err, &ext))
	assert.Equal(t, "anthropic", ext.Service)
}

func TestAdvisorClient_EmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":[]}`))
	}))
	defer srv.Close()

	_, err := newClient(srv.URL, "secret").Ask(context.Background(), "q")

	var ext *domain.ErrExternalService
	assert.True(t, errors.As(err, &ext))
}

func TestAdvisorClient_OpenBreakerFailsFast(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newClient(srv.URL, "secret")
	for i := 0; i < 5; i++ {
		_, _ = c.Ask(context.Background(), "q")
	}
	require.Equal(t, int32(5), hits.Load())

	_, err := c.Ask(context.Background(), "q")

	var open *domain.ErrCircuitOpen
	require.True(t, errors.As(err, &open))
	assert.Equal(t, int32(5), hits.Load())
}
