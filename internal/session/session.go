// Package session holds the portal's client-side authentication state:
// the persisted bearer credential and the identity derived from it.
//
// The credential is stored as a single file under the user's config
// directory and survives across invocations. The identity is never stored
// on its own; it is recomputed from the credential every time, so the two
// can never disagree. All mutation goes through Load, Login, Register and
// Logout; views only read.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/llm-central/llmctl/internal/api"
)

// Portal roles encoded in the credential.
const (
	RoleAdmin     = "llm_admin"
	RoleDeveloper = "developer"
)

// Identity is the user info decoded from the credential payload.
type Identity struct {
	ID       string
	Username string
	Role     string
}

// tokenClaims is the gateway's JWT payload shape.
type tokenClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Result is the outcome of a login or register attempt. Failures carry the
// gateway's message verbatim so the caller can show it to the user; they are
// never raised as errors past this boundary.
type Result struct {
	OK      bool
	Message string
}

// Store is the session/identity holder. It implements api.CredentialSource.
type Store struct {
	path   string
	logger *slog.Logger

	mu         sync.RWMutex
	credential string
	identity   *Identity
}

// NewStore creates a session store persisting its credential at path.
// Call Load before reading the session state.
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: path, logger: logger}
}

// Load rehydrates the session from the persisted credential. A missing file
// means anonymous. An undecodable credential is discarded (the file is
// removed) and the session stays anonymous; this is the only error the
// store recovers from on its own. Only unexpected I/O failures are returned.
func (s *Store) Load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading credential file: %w", err)
	}

	token := strings.TrimSpace(string(raw))
	identity, err := DecodeIdentity(token)
	if err != nil {
		s.logger.Warn("discarding undecodable credential", "path", s.path, "error", err)
		if rmErr := os.Remove(s.path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			return fmt.Errorf("removing bad credential file: %w", rmErr)
		}
		return nil
	}

	s.mu.Lock()
	s.credential = token
	s.identity = identity
	s.mu.Unlock()
	return nil
}

// Login authenticates against the gateway. On success the returned
// credential is persisted and the identity decoded from it. On failure the
// session is left untouched and the gateway's message is returned in the
// Result.
func (s *Store) Login(ctx context.Context, client *api.Client, username, password string) Result {
	resp, err := client.Login(ctx, username, password)
	if err != nil {
		return Result{OK: false, Message: err.Error()}
	}

	identity, err := DecodeIdentity(resp.Token)
	if err != nil {
		return Result{OK: false, Message: fmt.Sprintf("server returned an undecodable token: %v", err)}
	}

	if err := s.persist(resp.Token); err != nil {
		return Result{OK: false, Message: err.Error()}
	}

	s.mu.Lock()
	s.credential = resp.Token
	s.identity = identity
	s.mu.Unlock()

	message := resp.Message
	if message == "" {
		message = "Login successful"
	}
	return Result{OK: true, Message: message}
}

// Register creates a new portal account. Registration never logs the new
// user in, so the session state is not touched on either path.
func (s *Store) Register(ctx context.Context, client *api.Client, profile api.RegisterProfile) Result {
	resp, err := client.Register(ctx, profile)
	if err != nil {
		return Result{OK: false, Message: err.Error()}
	}
	return Result{OK: true, Message: resp.Message}
}

// Logout clears the in-memory session and removes the persisted credential.
// It involves no network call and succeeds regardless of prior state.
func (s *Store) Logout() error {
	s.mu.Lock()
	s.credential = ""
	s.identity = nil
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing credential file: %w", err)
	}
	return nil
}

// Credential returns the held bearer credential, or "" when anonymous.
func (s *Store) Credential() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential
}

// Identity returns a copy of the current identity, or nil when anonymous.
func (s *Store) Identity() *Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

// IsAuthenticated reports whether a decoded identity is held.
func (s *Store) IsAuthenticated() bool {
	return s.Identity() != nil
}

func (s *Store) persist(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating credential directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("writing credential file: %w", err)
	}
	return nil
}

// DecodeIdentity extracts the identity from a credential without verifying
// its signature. The payload segment is base64url-decoded and its user_id,
// username and role claims are read. This is informational only and never a
// trust boundary: the gateway re-verifies the credential on every
// authenticated call, and no authorization decision may rely on this decode.
func DecodeIdentity(token string) (*Identity, error) {
	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("decoding credential: %w", err)
	}

	return &Identity{
		ID:       claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}
