package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sokol-matija/medical-system-gateway/internal/api/middleware"
	"github.com/sokol-matija/medical-system-gateway/internal/core/domain"
)

// ctxIdentity extracts the identity and session ID injected by the Guard
// middleware. A missing identity means the route was wired without the guard;
// fail with 401 rather than proceed unattributed.
func ctxIdentity(c echo.Context) (domain.Identity, string, error) {
	identity, ok := c.Get(middleware.ContextIdentity).(domain.Identity)
	if !ok || identity.ID == "" {
		return domain.Identity{}, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	sessionID, _ := c.Get(middleware.ContextSessionID).(string)
	return identity, sessionID, nil
}

// requestID returns the request ID assigned by the RequestID middleware.
func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
