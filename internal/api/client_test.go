package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// staticCreds is a CredentialSource with a fixed token
type staticCreds string

func (s staticCreds) Credential() string { return string(s) }

func newTestClient(serverURL, token string) *Client {
	return New(serverURL, 5*time.Second, testLogger(), staticCreds(token))
}

func TestDoAuthenticated_NoCredential_NoNetworkCall(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")
	_, err := client.PendingRequests(context.Background())

	require.ErrorIs(t, err, ErrUnauthenticated)
	assert.Equal(t, int64(0), calls.Load(), "unauthenticated call must not reach the network")
}

func TestDoAuthenticated_NilSource_NoNetworkCall(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second, testLogger(), nil)
	_, err := client.MyUsage(context.Background())

	require.ErrorIs(t, err, ErrUnauthenticated)
	assert.Equal(t, int64(0), calls.Load())
}

func TestDoAuthenticated_InjectsBearerHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "tok-123")
	_, err := client.PendingRequests(context.Background())
	require.NoError(t, err)
}

func TestAPIError_CarriesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"not found"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "tok")
	_, err := client.PendingRequests(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "not found", apiErr.Message)
	assert.Equal(t, "not found", err.Error())
}

func TestAPIError_GenericFallbackWithoutMessageField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"boom"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "tok")
	_, err := client.PendingRequests(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "API call to /admin/requests failed", apiErr.Message)
}

func TestAPIError_NonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "tok")
	_, err := client.MyUsage(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "API call to /auth/me/usage failed", apiErr.Message)
}

func TestNetworkFailure_IsNotAnAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse all connections

	client := newTestClient(server.URL, "tok")
	_, err := client.PendingRequests(context.Background())

	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport failures must not masquerade as gateway errors")
}

func TestContextCancellation_AbortsCall(t *testing.T) {
	blocked := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer server.Close()
	defer close(blocked)

	client := newTestClient(server.URL, "tok")
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.PendingRequests(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
