// Package session holds the auth token pair and the refresh flow. It is the
// explicit replacement for ambient token storage: the API client receives a
// Session at construction and never reads global state.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Storage key names for the token pair.
const (
	AccessTokenKey  = "access"
	RefreshTokenKey = "refresh"
)

// ErrUnauthenticated indicates there is no usable access token and the
// refresh attempt failed or was impossible. Callers redirect to login.
var ErrUnauthenticated = errors.New("session: not authenticated")

// TokenStore persists the token pair across runs.
type TokenStore interface {
	SaveToken(name, value string) error
	Token(name string) (string, error)
	ClearTokens() error
}

// RefreshFunc exchanges a refresh token for a new access token.
type RefreshFunc func(ctx context.Context, refreshToken string) (access string, err error)

// Session guards the token pair. State access takes mu; refreshes are
// serialized by refreshMu instead, which stays held across the network
// exchange while mu does not. The refresh callback may therefore read the
// session itself, and concurrent callers still trigger at most one exchange.
type Session struct {
	mu        sync.Mutex
	refreshMu sync.Mutex
	store     TokenStore
	access    string
	refresh   string
	now       func() time.Time
}

// New loads any persisted token pair from the store.
func New(store TokenStore) (*Session, error) {
	s := &Session{store: store, now: time.Now}
	var err error
	if s.access, err = store.Token(AccessTokenKey); err != nil {
		return nil, err
	}
	if s.refresh, err = store.Token(RefreshTokenKey); err != nil {
		return nil, err
	}
	return s, nil
}

// AccessToken returns the current access token, or "" when none is held.
// Absence is not an error here; the server enforces authorization.
func (s *Session) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access
}

// RefreshToken returns the current refresh token, or "".
func (s *Session) RefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refresh
}

// SetPair stores a new token pair, persisting both.
func (s *Session) SetPair(access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = access
	s.refresh = refresh
	if err := s.store.SaveToken(AccessTokenKey, access); err != nil {
		return err
	}
	return s.store.SaveToken(RefreshTokenKey, refresh)
}

// Clear drops both tokens, in memory and in the store. Used on logout; the
// local state is cleared unconditionally even if the server call failed.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = ""
	s.refresh = ""
	return s.store.ClearTokens()
}

// Authenticated reports whether a token pair is present at all.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access != "" || s.refresh != ""
}

// EnsureFresh checks the access token's expiry claim locally (no server
// round-trip) and, if expired, exchanges the refresh token synchronously
// before returning. The state mutex is not held during the exchange, so the
// callback is free to issue requests through a client that reads this
// session. A failed or impossible refresh clears the session and returns
// ErrUnauthenticated.
func (s *Session) EnsureFresh(ctx context.Context, refresh RefreshFunc) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	s.mu.Lock()
	access, refreshToken := s.access, s.refresh
	now := s.now()
	s.mu.Unlock()

	if access == "" && refreshToken == "" {
		return ErrUnauthenticated
	}
	// A caller that queued behind an in-flight refresh sees the fresh
	// token here and returns without a second exchange.
	if access != "" && !expired(access, now) {
		return nil
	}
	if refreshToken == "" {
		return ErrUnauthenticated
	}

	fresh, err := refresh(ctx, refreshToken)
	if err != nil {
		s.mu.Lock()
		s.access = ""
		s.refresh = ""
		s.mu.Unlock()
		_ = s.store.ClearTokens()
		return ErrUnauthenticated
	}

	s.mu.Lock()
	s.access = fresh
	s.mu.Unlock()
	return s.store.SaveToken(AccessTokenKey, fresh)
}

// expired decodes the token without verifying its signature; the client
// has no key material and only needs the exp claim. Tokens that cannot be
// decoded or carry no expiry are treated as expired.
func expired(token string, now time.Time) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return true
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.Before(now)
}
