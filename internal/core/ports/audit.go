package ports

import (
	"context"

	"github.com/sokol-matija/medical-system-gateway/internal/core/domain"
)

// AuditRepository persists audit events to the audit_events collection.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditRecorder accepts audit events for asynchronous persistence. Record
// must not block the request path; ordering is preserved per actor.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}
