package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/sokol-matija/medical-system-gateway/internal/core/domain"
	"github.com/sokol-matija/medical-system-gateway/internal/core/ports"
	"github.com/sokol-matija/medical-system-gateway/internal/upstream"
)

// Context keys set by Guard for downstream handlers.
const (
	ContextIdentity  = "identity"
	ContextSessionID = "session_id"
)

// Guard gates protected routes on session state. The session service
// re-derives the state on every request; a missing cookie, unknown session,
// or stale token all yield the same 401 — the requested destination is
// discarded, there is no return-to behavior.
func Guard(sessions ports.SessionService, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return domain.ErrNotAuthenticated
			}

			state := sessions.Initialize(c.Request().Context(), cookie.Value)
			if !state.Authenticated {
				return domain.ErrNotAuthenticated
			}

			c.Set(ContextIdentity, state.Identity)
			c.Set(ContextSessionID, cookie.Value)

			// The upstream transport resolves the bearer token from the
			// session carried in the request context.
			req := c.Request()
			c.SetRequest(req.WithContext(upstream.WithSession(req.Context(), cookie.Value)))

			return next(c)
		}
	}
}
