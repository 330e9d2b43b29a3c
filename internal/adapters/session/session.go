// Package session persists the ephemeral client-side state between command
// invocations: the bearer token and a short-lived listing cache. It is the
// terminal equivalent of the browser's local/session storage — a token cache
// and a lightweight TTL cache, not a structured store.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Store holds the signed-in credential on disk.
type Store struct {
	path string
}

type sessionFile struct {
	AccessToken string    `json:"access_token"`
	SavedAt     time.Time `json:"saved_at"`
}

// NewStore creates a token store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Token returns the cached credential, or empty when not signed in or the
// session file is unreadable. A broken session file behaves like a missing
// one: the user just has to sign in again.
func (s *Store) Token() string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	var f sessionFile
	if err := json.Unmarshal(data, &f); err != nil {
		return ""
	}
	return f.AccessToken
}

// SetToken stores a fresh credential with owner-only permissions.
func (s *Store) SetToken(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}
	data, err := json.Marshal(sessionFile{AccessToken: token, SavedAt: time.Now()})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Clear wipes the credential. A missing file is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// TokenClaims is the subset of JWT claims the client displays.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// InspectToken peeks at the token's claims without verifying the signature.
// The client has no verification key and does not need one — expiry here is
// advisory display only; the backend is the authority and answers 401 when
// the token is actually rejected.
func InspectToken(token string) (*TokenClaims, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	out := &TokenClaims{}
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}
