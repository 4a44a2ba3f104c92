package ports

import (
	"context"

	"github.com/sokol-matija/medical-system-gateway/internal/core/domain"
)

// AuthService implements the login/logout use cases on top of the records
// client and the session service.
type AuthService interface {
	// Login authenticates the credentials (locally when the bypass matches,
	// upstream otherwise) and establishes a session.
	Login(ctx context.Context, creds Credentials, requestID string) (*LoginResult, error)

	// Logout ends the session. Idempotent.
	Logout(ctx context.Context, sessionID string, identity domain.Identity, requestID string) error
}

// AuditService processes a single audit event; called from dispatcher workers.
type AuditService interface {
	Process(ctx context.Context, event domain.AuditEvent) error
}
