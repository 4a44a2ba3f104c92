package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sokol-matija/medical-system-gateway/internal/core/domain"
	"github.com/sokol-matija/medical-system-gateway/internal/core/ports"
)

// SessionService is the single source of truth for session state. It owns no
// in-memory state of its own: every read re-derives Identity from the token
// in the vault, so there is exactly one writer target and one clearing path.
type SessionService struct {
	vault  ports.TokenVault
	maxTTL time.Duration
	logger zerolog.Logger
	now    func() time.Time
}

func NewSessionService(vault ports.TokenVault, maxTTL time.Duration, logger zerolog.Logger) *SessionService {
	if maxTTL <= 0 {
		maxTTL = 24 * time.Hour
	}
	return &SessionService{vault: vault, maxTTL: maxTTL, logger: logger, now: time.Now}
}

// Initialize resolves the state for an existing session. Missing, malformed,
// or expired tokens all collapse to an unauthenticated state without error;
// a stale slot is discarded on the way out.
func (s *SessionService) Initialize(ctx context.Context, sessionID string) domain.SessionState {
	if sessionID == "" {
		return domain.SessionState{}
	}

	token, err := s.vault.Get(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, domain.ErrNoSession) {
			s.logger.Warn().Err(err).Str("session_id", sessionID).Msg("token vault read failed")
		}
		return domain.SessionState{}
	}

	identity, expiresAt, err := DecodeIdentity(token, s.now())
	if err != nil {
		_ = s.vault.Delete(ctx, sessionID)
		s.logger.Debug().Err(err).Str("session_id", sessionID).Msg("discarded stale session token")
		return domain.SessionState{}
	}

	return domain.SessionState{Authenticated: true, Identity: identity, ExpiresAt: expiresAt}
}

// Login persists token under a fresh session ID and returns the derived
// state. The token is decoded before anything is written: an undecodable or
// expired token is rejected and nothing is persisted. The vault write
// happens-before the returned state, so a caller that reads back immediately
// observes a consistent token/Identity pair.
func (s *SessionService) Login(ctx context.Context, token string) (*ports.LoginResult, error) {
	identity, expiresAt, err := DecodeIdentity(token, s.now())
	if err != nil {
		return nil, err
	}

	ttl := expiresAt.Sub(s.now())
	if ttl > s.maxTTL {
		ttl = s.maxTTL
	}

	sessionID := uuid.NewString()
	if err := s.vault.Set(ctx, sessionID, token, ttl); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user", identity.Username).Str("role", identity.Role).Msg("session established")

	return &ports.LoginResult{
		SessionID: sessionID,
		State:     domain.SessionState{Authenticated: true, Identity: identity, ExpiresAt: expiresAt},
	}, nil
}

// Logout discards the session slot. Logging out an unknown or already
// cleared session succeeds.
func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.vault.Delete(ctx, sessionID)
}
