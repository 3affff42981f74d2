package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitAccessRequest_StripsBlankTeammates(t *testing.T) {
	var received AccessRequestDraft
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/public/llm-request", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"), "submission is a public endpoint")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"request_id":"req-99"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")
	requestID, err := client.SubmitAccessRequest(context.Background(), AccessRequestDraft{
		RequesterContact: "dev@example.com",
		ModelID:          "gpt-4o",
		Purpose:          "prototype",
		Teammates:        []string{"a@x.com", "", "b@x.com", "   "},
	})

	require.NoError(t, err)
	assert.Equal(t, "req-99", requestID)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, received.Teammates)
	assert.Equal(t, "dev@example.com", received.RequesterContact)
	assert.Equal(t, "gpt-4o", received.ModelID)
}

func TestSubmitAccessRequest_TooManyTeammates(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	teammates := make([]string, MaxTeammates+1)
	for i := range teammates {
		teammates[i] = "member@example.com"
	}

	client := newTestClient(server.URL, "")
	_, err := client.SubmitAccessRequest(context.Background(), AccessRequestDraft{
		RequesterContact: "dev@example.com",
		ModelID:          "gpt-4o",
		Purpose:          "prototype",
		Teammates:        teammates,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum 10 teammates")
	assert.Equal(t, int64(0), calls.Load(), "invalid drafts must be rejected before transmission")
}

func TestSubmitAccessRequest_BlanksDoNotCountTowardLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"request_id":"req-1"}`))
	}))
	defer server.Close()

	// 10 real contacts plus blanks is still within the limit
	teammates := make([]string, MaxTeammates)
	for i := range teammates {
		teammates[i] = "member@example.com"
	}
	teammates = append(teammates, "", "  ")

	client := newTestClient(server.URL, "")
	_, err := client.SubmitAccessRequest(context.Background(), AccessRequestDraft{
		RequesterContact: "dev@example.com",
		ModelID:          "gpt-4o",
		Purpose:          "prototype",
		Teammates:        teammates,
	})
	require.NoError(t, err)
}

func TestSubmitAccessRequest_RequiredFields(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")

	tests := []struct {
		name  string
		draft AccessRequestDraft
	}{
		{"missing requester", AccessRequestDraft{ModelID: "gpt-4o", Purpose: "p"}},
		{"missing model", AccessRequestDraft{RequesterContact: "a@x.com", Purpose: "p"}},
		{"missing purpose", AccessRequestDraft{RequesterContact: "a@x.com", ModelID: "gpt-4o"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.SubmitAccessRequest(context.Background(), tt.draft)
			assert.Error(t, err)
		})
	}
	assert.Equal(t, int64(0), calls.Load())
}
