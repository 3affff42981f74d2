// Package api implements the JSON/HTTP client for the LLM Central gateway.
//
// The gateway owns all business logic (approval rules, cost computation,
// token accounting); this package only maps portal operations onto fixed
// paths and body shapes and surfaces gateway failures to the caller.
// There is no retry or backoff: every operation is a single attempt.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// CredentialSource supplies the bearer credential for authenticated calls.
// An empty string means no credential is held. Implemented by session.Store.
type CredentialSource interface {
	Credential() string
}

// Client talks to the LLM Central gateway at a fixed base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	creds      CredentialSource
}

// New creates a gateway client. baseURL must already include the /api
// prefix (e.g. https://gateway.example.com/api). creds may be nil when only
// unauthenticated operations are used.
func New(baseURL string, timeout time.Duration, logger *slog.Logger, creds CredentialSource) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// do executes an unauthenticated JSON call against the gateway.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	return c.send(ctx, method, path, "", body, out)
}

// doAuthenticated executes a JSON call with a bearer credential attached.
// If no credential is held it fails with ErrUnauthenticated before any
// network activity.
func (c *Client) doAuthenticated(ctx context.Context, method, path string, body, out any) error {
	if c.creds == nil {
		return ErrUnauthenticated
	}
	token := c.creds.Credential()
	if token == "" {
		return ErrUnauthenticated
	}
	return c.send(ctx, method, path, token, body, out)
}

func (c *Client) send(ctx context.Context, method, path, token string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s request: %w", method, path, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building %s %s request: %w", method, path, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Debug("gateway call failed",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
		)
		return &APIError{StatusCode: resp.StatusCode, Message: serverMessage(raw, path)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

// serverMessage extracts the gateway's message field from an error body,
// falling back to a generic message naming the path.
func serverMessage(raw []byte, path string) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return fmt.Sprintf("API call to %s failed", path)
}
