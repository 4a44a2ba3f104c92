package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sokol-matija/medical-system-gateway/internal/api/middleware"
	"github.com/sokol-matija/medical-system-gateway/internal/core/domain"
	"github.com/sokol-matija/medical-system-gateway/internal/core/ports"
)

// recordAudit emits an audit event for a completed mutating operation,
// attributed to the guard-injected identity.
func recordAudit(audit ports.AuditRecorder, c echo.Context, action, resource string) {
	identity, _ := c.Get(middleware.ContextIdentity).(domain.Identity)
	audit.Record(domain.AuditEvent{
		Actor:     identity.ID,
		Role:      identity.Role,
		Action:    action,
		Resource:  resource,
		RequestID: requestID(c),
		Timestamp: time.Now().UTC(),
	})
}
