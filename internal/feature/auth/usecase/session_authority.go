package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"contact_backend/internal/feature/auth/domain/entity"
)

// TokenCodec signs and verifies the opaque token handed to clients.
// The token carries only the session ID; tampering is detected before
// any store lookup.
type TokenCodec interface {
	// Encode wraps a session ID in a signed token expiring at expiresAt.
	Encode(sessionID string, expiresAt time.Time) (string, error)

	// Decode verifies the token and returns the embedded session ID.
	// Tampered, malformed, or expired tokens return an error.
	Decode(token string) (string, error)
}

// SessionState is the result of resolving a token. The zero value is
// an anonymous (unauthenticated) state.
type SessionState struct {
	Authenticated bool
	Fresh         bool
	AccountID     uint
}

// Anonymous is the state of any request without a valid session.
var Anonymous = SessionState{}

// SessionConfig holds the session lifetime policy.
type SessionConfig struct {
	// TTL is the lifetime of a non-remembered session.
	TTL time.Duration

	// RememberTTL is the lifetime of a remembered session.
	RememberTTL time.Duration

	// FreshTTL is how long after (re-)authentication a session counts
	// as fresh for sensitive operations.
	FreshTTL time.Duration
}

// LoadSessionConfig loads the session policy from environment variables,
// falling back to defaults for anything unset or unparsable.
func LoadSessionConfig() SessionConfig {
	cfg := SessionConfig{
		TTL:         24 * time.Hour,
		RememberTTL: 30 * 24 * time.Hour,
		FreshTTL:    10 * time.Minute,
	}
	if d, err := time.ParseDuration(os.Getenv("SESSION_TTL")); err == nil && d > 0 {
		cfg.TTL = d
	}
	if d, err := time.ParseDuration(os.Getenv("SESSION_REMEMBER_TTL")); err == nil && d > 0 {
		cfg.RememberTTL = d
	}
	if d, err := time.ParseDuration(os.Getenv("SESSION_FRESH_TTL")); err == nil && d > 0 {
		cfg.FreshTTL = d
	}
	return cfg
}

// SessionAuthority issues, resolves, and destroys login sessions.
// It is the single component that distinguishes a fully fresh session
// from a merely authenticated one.
type SessionAuthority struct {
	sessions SessionRepository
	codec    TokenCodec
	cfg      SessionConfig
}

// NewSessionAuthority creates a new SessionAuthority.
func NewSessionAuthority(sessions SessionRepository, codec TokenCodec, cfg SessionConfig) *SessionAuthority {
	return &SessionAuthority{
		sessions: sessions,
		codec:    codec,
		cfg:      cfg,
	}
}

// CreateSession issues a fresh session for the account and returns the
// signed token. Callers must have verified credentials beforehand.
func (a *SessionAuthority) CreateSession(ctx context.Context, accountID uint, remember bool) (string, error) {
	now := time.Now()
	ttl := a.cfg.TTL
	if remember {
		ttl = a.cfg.RememberTTL
	}
	session := &entity.Session{
		ID:         uuid.NewString(),
		AccountID:  accountID,
		Remember:   remember,
		FreshUntil: now.Add(a.cfg.FreshTTL),
		CreatedAt:  now,
		ExpiresAt:  now.Add(ttl),
	}
	if err := a.sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	token, err := a.codec.Encode(session.ID, session.ExpiresAt)
	if err != nil {
		return "", fmt.Errorf("failed to encode session token: %w", err)
	}
	return token, nil
}

// ResolveSession resolves a token to its session state. Any invalid,
// expired, tampered, or revoked token resolves to Anonymous; only store
// failures surface as errors. Resolution is read-only.
func (a *SessionAuthority) ResolveSession(ctx context.Context, token string) (SessionState, error) {
	session, err := a.lookup(ctx, token)
	if err != nil {
		return Anonymous, err
	}
	if session == nil || !session.IsValid() {
		return Anonymous, nil
	}
	return SessionState{
		Authenticated: true,
		Fresh:         session.IsFresh(),
		AccountID:     session.AccountID,
	}, nil
}

// DestroySession revokes the session behind the token. It is idempotent:
// unknown, expired, and already-revoked tokens are all no-ops.
func (a *SessionAuthority) DestroySession(ctx context.Context, token string) error {
	id, err := a.codec.Decode(token)
	if err != nil {
		return nil
	}
	if err := a.sessions.Revoke(ctx, id); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// RequireAuthenticated resolves the token and returns the account ID,
// or ErrNotAuthenticated for anything short of a valid session.
func (a *SessionAuthority) RequireAuthenticated(ctx context.Context, token string) (uint, error) {
	state, err := a.ResolveSession(ctx, token)
	if err != nil {
		return 0, err
	}
	if !state.Authenticated {
		return 0, ErrNotAuthenticated
	}
	return state.AccountID, nil
}

// RequireFresh resolves the token and returns the account ID only if the
// session is still fresh. An authenticated but stale session fails with
// ErrSessionNotFresh, directing the caller to re-authenticate.
func (a *SessionAuthority) RequireFresh(ctx context.Context, token string) (uint, error) {
	state, err := a.ResolveSession(ctx, token)
	if err != nil {
		return 0, err
	}
	if !state.Authenticated {
		return 0, ErrNotAuthenticated
	}
	if !state.Fresh {
		return 0, ErrSessionNotFresh
	}
	return state.AccountID, nil
}

// RefreshSession re-stamps the freshness window of the token's session.
// Credential verification is the caller's responsibility.
func (a *SessionAuthority) RefreshSession(ctx context.Context, token string) error {
	session, err := a.lookup(ctx, token)
	if err != nil {
		return err
	}
	if session == nil || !session.IsValid() {
		return ErrNotAuthenticated
	}
	if err := a.sessions.Refresh(ctx, session.ID, time.Now().Add(a.cfg.FreshTTL)); err != nil {
		return fmt.Errorf("failed to refresh session: %w", err)
	}
	return nil
}

// lookup decodes the token and loads the session record. A token that
// fails verification or points at no record yields (nil, nil): both mean
// Anonymous, and neither is a store failure.
func (a *SessionAuthority) lookup(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, nil
	}
	id, err := a.codec.Decode(token)
	if err != nil {
		return nil, nil
	}
	session, err := a.sessions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return session, nil
}
