package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sokol-matija/medical-system-gateway/internal/core/domain"
)

// SessionVault stores the raw upstream token for each session in a single
// TTL'd key. Key format: session:<session_id>
type SessionVault struct {
	client *redis.Client
}

// NewSessionVault creates a SessionVault wrapping the given Redis client.
func NewSessionVault(client *redis.Client) *SessionVault {
	return &SessionVault{client: client}
}

func (v *SessionVault) Get(ctx context.Context, sessionID string) (string, error) {
	token, err := v.client.Get(ctx, v.key(sessionID)).Result()
	if err == redis.Nil {
		return "", domain.ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("session vault get: %w", err)
	}
	return token, nil
}

func (v *SessionVault) Set(ctx context.Context, sessionID, token string, ttl time.Duration) error {
	if err := v.client.Set(ctx, v.key(sessionID), token, ttl).Err(); err != nil {
		return fmt.Errorf("session vault set: %w", err)
	}
	return nil
}

// Delete removes the session slot. Absent keys are not an error, which makes
// Logout idempotent.
func (v *SessionVault) Delete(ctx context.Context, sessionID string) error {
	if err := v.client.Del(ctx, v.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("session vault delete: %w", err)
	}
	return nil
}

func (v *SessionVault) key(sessionID string) string {
	return "session:" + sessionID
}
