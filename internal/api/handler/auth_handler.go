package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sokol-matija/medical-system-gateway/internal/api/middleware"
	"github.com/sokol-matija/medical-system-gateway/internal/core/domain"
	"github.com/sokol-matija/medical-system-gateway/internal/core/ports"
)

// AuthHandler owns the login/logout/me endpoints and the session cookie.
type AuthHandler struct {
	auth         ports.AuthService
	cookieName   string
	cookieSecure bool
}

func NewAuthHandler(auth ports.AuthService, cookieName string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, cookieName: cookieName, cookieSecure: cookieSecure}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	User      domain.Identity `json:"user"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// Login authenticates credentials and sets the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := h.auth.Login(c.Request().Context(), ports.Credentials{
		Username: req.Username,
		Password: req.Password,
	}, requestID(c))
	if err != nil {
		// Bad credentials get a specific message; everything else is an
		// upstream problem the user cannot fix by retyping a password.
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		}
		if errors.Is(err, domain.ErrMalformedToken) || errors.Is(err, domain.ErrTokenExpired) {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": "login service returned an unusable token"})
		}
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "login service unavailable"})
	}

	c.SetCookie(h.sessionCookie(result.SessionID, result.State.ExpiresAt))

	return c.JSON(http.StatusOK, loginResponse{
		User:      result.State.Identity,
		ExpiresAt: result.State.ExpiresAt,
	})
}

// Logout ends the session. Idempotent: logging out without a session succeeds.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      204  "session ended"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var identity domain.Identity
	sessionID := ""
	if cookie, err := c.Cookie(h.cookieName); err == nil {
		sessionID = cookie.Value
	}
	if id, ok := c.Get(middleware.ContextIdentity).(domain.Identity); ok {
		identity = id
	}

	if sessionID != "" {
		if err := h.auth.Logout(c.Request().Context(), sessionID, identity, requestID(c)); err != nil {
			return err
		}
	}

	c.SetCookie(h.expiredCookie())
	return c.NoContent(http.StatusNoContent)
}

// Me returns the current identity.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  domain.Identity
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	identity, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identity)
}

func (h *AuthHandler) sessionCookie(sessionID string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    sessionID,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *AuthHandler) expiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
