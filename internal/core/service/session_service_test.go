package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/sokol-matija/medical-system-gateway/internal/core/domain"
)

// stubVault is an in-memory TokenVault for tests.
type stubVault struct {
	tokens  map[string]string
	getErr  error
	setErr  error
	deletes int
}

func newStubVault() *stubVault {
	return &stubVault{tokens: map[string]string{}}
}

func (v *stubVault) Get(ctx context.Context, sessionID string) (string, error) {
	if v.getErr != nil {
		return "", v.getErr
	}
	token, ok := v.tokens[sessionID]
	if !ok {
		return "", domain.ErrNoSession
	}
	return token, nil
}

func (v *stubVault) Set(ctx context.Context, sessionID, token string, ttl time.Duration) error {
	if v.setErr != nil {
		return v.setErr
	}
	v.tokens[sessionID] = token
	return nil
}

func (v *stubVault) Delete(ctx context.Context, sessionID string) error {
	v.deletes++
	delete(v.tokens, sessionID)
	return nil
}

func newTestSessions(vault *stubVault, now time.Time) *SessionService {
	s := NewSessionService(vault, 24*time.Hour, zerolog.Nop())
	s.now = func() time.Time { return now }
	return s
}

func TestInitialize_NoSession(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	sessions := newTestSessions(newStubVault(), now)

	state := sessions.Initialize(context.Background(), "unknown")
	if state.Authenticated {
		t.Fatalf("expected unauthenticated state")
	}
}

func TestInitialize_EmptySessionID(t *testing.T) {
	sessions := newTestSessions(newStubVault(), time.Now())
	if state := sessions.Initialize(context.Background(), ""); state.Authenticated {
		t.Fatalf("expected unauthenticated state")
	}
}

func TestInitialize_ValidToken(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	vault := newStubVault()
	vault.tokens["s1"] = signedToken(t, jwt.MapClaims{
		"sub":  "u-1",
		"name": "ivan",
		"role": "Administrator",
		"exp":  now.Add(time.Hour).Unix(),
	})
	sessions := newTestSessions(vault, now)

	state := sessions.Initialize(context.Background(), "s1")
	if !state.Authenticated {
		t.Fatalf("expected authenticated state")
	}
	want := domain.Identity{ID: "u-1", Username: "ivan", Role: "Administrator"}
	if state.Identity != want {
		t.Fatalf("identity mismatch: got %+v want %+v", state.Identity, want)
	}
}

// An expired token must collapse to unauthenticated without error and the
// stale slot must be discarded.
func TestInitialize_ExpiredTokenDiscarded(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	vault := newStubVault()
	vault.tokens["s1"] = signedToken(t, jwt.MapClaims{
		"sub": "u-1",
		"exp": now.Add(-time.Minute).Unix(),
	})
	sessions := newTestSessions(vault, now)

	state := sessions.Initialize(context.Background(), "s1")
	if state.Authenticated {
		t.Fatalf("expected unauthenticated state")
	}
	if _, ok := vault.tokens["s1"]; ok {
		t.Fatalf("expected stale slot to be discarded")
	}
}

func TestInitialize_MalformedTokenDiscarded(t *testing.T) {
	now := time.Now()
	vault := newStubVault()
	vault.tokens["s1"] = "garbage"
	sessions := newTestSessions(vault, now)

	state := sessions.Initialize(context.Background(), "s1")
	if state.Authenticated {
		t.Fatalf("expected unauthenticated state")
	}
	if vault.deletes != 1 {
		t.Fatalf("expected one delete, got %d", vault.deletes)
	}
}

func TestInitialize_VaultFailureIsUnauthenticated(t *testing.T) {
	vault := newStubVault()
	vault.getErr = errors.New("redis down")
	sessions := newTestSessions(vault, time.Now())

	if state := sessions.Initialize(context.Background(), "s1"); state.Authenticated {
		t.Fatalf("expected unauthenticated state on vault failure")
	}
}

// Login persists the token and an immediate read back through Initialize
// observes the same identity — no stale data from a previous session.
func TestLogin_ThenInitialize(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	vault := newStubVault()
	sessions := newTestSessions(vault, now)

	token := signedToken(t, jwt.MapClaims{
		"sub":  "u-2",
		"name": "marija",
		"role": "Doctor",
		"exp":  now.Add(2 * time.Hour).Unix(),
	})

	result, err := sessions.Login(context.Background(), token)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !result.State.Authenticated {
		t.Fatalf("expected authenticated state")
	}
	if vault.tokens[result.SessionID] != token {
		t.Fatalf("expected token persisted under session ID")
	}

	state := sessions.Initialize(context.Background(), result.SessionID)
	if !state.Authenticated || state.Identity != result.State.Identity {
		t.Fatalf("read-after-login mismatch: %+v vs %+v", state.Identity, result.State.Identity)
	}
}

// Login is fail-safe: an undecodable token is rejected with a clear error and
// nothing is persisted.
func TestLogin_MalformedTokenRejected(t *testing.T) {
	vault := newStubVault()
	sessions := newTestSessions(vault, time.Now())

	if _, err := sessions.Login(context.Background(), "garbage"); !errors.Is(err, domain.ErrMalformedToken) {
		t.Fatalf("expected ErrMalformedToken, got %v", err)
	}
	if len(vault.tokens) != 0 {
		t.Fatalf("expected nothing persisted")
	}
}

func TestLogin_ExpiredTokenRejected(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	vault := newStubVault()
	sessions := newTestSessions(vault, now)

	token := signedToken(t, jwt.MapClaims{
		"sub": "u-1",
		"exp": now.Add(-time.Second).Unix(),
	})
	if _, err := sessions.Login(context.Background(), token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
	if len(vault.tokens) != 0 {
		t.Fatalf("expected nothing persisted")
	}
}

func TestLogout_Idempotent(t *testing.T) {
	now := time.Now()
	vault := newStubVault()
	vault.tokens["s1"] = "token"
	sessions := newTestSessions(vault, now)

	if err := sessions.Logout(context.Background(), "s1"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := vault.tokens["s1"]; ok {
		t.Fatalf("expected slot removed")
	}

	// Second logout of the same session, and logout of a session that never
	// existed, both succeed.
	if err := sessions.Logout(context.Background(), "s1"); err != nil {
		t.Fatalf("repeat logout: %v", err)
	}
	if err := sessions.Logout(context.Background(), "never-existed"); err != nil {
		t.Fatalf("unknown logout: %v", err)
	}
	if err := sessions.Logout(context.Background(), ""); err != nil {
		t.Fatalf("empty logout: %v", err)
	}
}
