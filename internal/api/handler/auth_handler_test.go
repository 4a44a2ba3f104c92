package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sokol-matija/medical-system-gateway/internal/api/middleware"
	"github.com/sokol-matija/medical-system-gateway/internal/core/domain"
	"github.com/sokol-matija/medical-system-gateway/internal/core/ports"
)

type stubAuth struct {
	loginFn   func(ctx context.Context, creds ports.Credentials, requestID string) (*ports.LoginResult, error)
	logoutFn  func(ctx context.Context, sessionID string, identity domain.Identity, requestID string) error
	logoutIDs []string
}

func (s *stubAuth) Login(ctx context.Context, creds ports.Credentials, requestID string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, creds, requestID)
}

func (s *stubAuth) Logout(ctx context.Context, sessionID string, identity domain.Identity, requestID string) error {
	s.logoutIDs = append(s.logoutIDs, sessionID)
	if s.logoutFn != nil {
		return s.logoutFn(ctx, sessionID, identity, requestID)
	}
	return nil
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func sessionCookieFrom(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour).UTC()
	auth := &stubAuth{loginFn: func(ctx context.Context, creds ports.Credentials, requestID string) (*ports.LoginResult, error) {
		if creds.Username != "ivan" || creds.Password != "pw" {
			t.Fatalf("unexpected creds: %+v", creds)
		}
		return &ports.LoginResult{
			SessionID: "sess-1",
			State: domain.SessionState{
				Authenticated: true,
				Identity:      domain.Identity{ID: "u-1", Username: "ivan", Role: "Doctor"},
				ExpiresAt:     expiresAt,
			},
		}, nil
	}}
	h := NewAuthHandler(auth, "mrs_session", false)

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"ivan","password":"pw"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	cookie := sessionCookieFrom(rec, "mrs_session")
	if cookie == nil || cookie.Value != "sess-1" {
		t.Fatalf("expected session cookie, got %+v", cookie)
	}
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}
	if !strings.Contains(rec.Body.String(), `"username":"ivan"`) {
		t.Fatalf("response missing identity: %s", rec.Body.String())
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &stubAuth{loginFn: func(ctx context.Context, creds ports.Credentials, requestID string) (*ports.LoginResult, error) {
		return nil, domain.ErrInvalidCredentials
	}}
	h := NewAuthHandler(auth, "mrs_session", false)

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"x","password":"bad"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid credentials") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if sessionCookieFrom(rec, "mrs_session") != nil {
		t.Fatalf("failed login must not set a cookie")
	}
}

func TestLogin_UnusableUpstreamToken(t *testing.T) {
	auth := &stubAuth{loginFn: func(ctx context.Context, creds ports.Credentials, requestID string) (*ports.LoginResult, error) {
		return nil, domain.ErrMalformedToken
	}}
	h := NewAuthHandler(auth, "mrs_session", false)

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"x","password":"y"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	auth := &stubAuth{loginFn: func(ctx context.Context, creds ports.Credentials, requestID string) (*ports.LoginResult, error) {
		t.Fatalf("auth service must not be called for an invalid payload")
		return nil, nil
	}}
	h := NewAuthHandler(auth, "mrs_session", false)

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"ivan"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLogout_ClearsCookie(t *testing.T) {
	auth := &stubAuth{}
	h := NewAuthHandler(auth, "mrs_session", false)

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "mrs_session", Value: "sess-1"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextIdentity, domain.Identity{ID: "u-1"})

	if err := h.Logout(c); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(auth.logoutIDs) != 1 || auth.logoutIDs[0] != "sess-1" {
		t.Fatalf("expected logout of sess-1, got %v", auth.logoutIDs)
	}

	cookie := sessionCookieFrom(rec, "mrs_session")
	if cookie == nil || cookie.MaxAge != -1 {
		t.Fatalf("expected expired cookie, got %+v", cookie)
	}
}

// Logout without a session is a no-op that still succeeds.
func TestLogout_NoSession(t *testing.T) {
	auth := &stubAuth{}
	h := NewAuthHandler(auth, "mrs_session", false)

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()

	if err := h.Logout(e.NewContext(req, rec)); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(auth.logoutIDs) != 0 {
		t.Fatalf("no session means no logout call, got %v", auth.logoutIDs)
	}
}

func TestMe_ReturnsIdentity(t *testing.T) {
	h := NewAuthHandler(&stubAuth{}, "mrs_session", false)

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextIdentity, domain.Identity{ID: "u-1", Username: "ivan", Role: "Doctor"})
	c.Set(middleware.ContextSessionID, "sess-1")

	if err := h.Me(c); err != nil {
		t.Fatalf("me: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"username":"ivan"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestMe_WithoutGuard(t *testing.T) {
	h := NewAuthHandler(&stubAuth{}, "mrs_session", false)

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()

	err := h.Me(e.NewContext(req, rec))
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
