package ports

import (
	"context"
	"time"

	"github.com/sokol-matija/medical-system-gateway/internal/core/domain"
)

// TokenVault is the single durable key-value slot per session holding the raw
// upstream bearer token. Absence of the slot means logged out.
type TokenVault interface {
	// Get returns the raw token for sessionID, or domain.ErrNoSession when
	// the slot is absent.
	Get(ctx context.Context, sessionID string) (string, error)
	Set(ctx context.Context, sessionID, token string, ttl time.Duration) error
	// Delete removes the slot. Deleting an absent slot is not an error.
	Delete(ctx context.Context, sessionID string) error
}

// LoginResult is returned by SessionService.Login.
type LoginResult struct {
	SessionID string
	State     domain.SessionState
}

// SessionService owns authenticated/Identity state for gateway sessions.
type SessionService interface {
	// Initialize resolves the state for an existing session ID. A missing,
	// malformed, or expired token yields an unauthenticated state without
	// error; the stale slot is discarded as a side effect.
	Initialize(ctx context.Context, sessionID string) domain.SessionState

	// Login stores token under a freshly minted session ID and returns the
	// authenticated state. A token that does not decode or is already
	// expired is rejected (domain.ErrMalformedToken / domain.ErrTokenExpired)
	// and nothing is persisted.
	Login(ctx context.Context, token string) (*LoginResult, error)

	// Logout discards the session slot. Idempotent.
	Logout(ctx context.Context, sessionID string) error
}
