package upstream

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sokol-matija/medical-system-gateway/internal/core/domain"
)

type fakeVault struct {
	tokens map[string]string
}

func (v *fakeVault) Get(ctx context.Context, sessionID string) (string, error) {
	token, ok := v.tokens[sessionID]
	if !ok {
		return "", domain.ErrNoSession
	}
	return token, nil
}

func (v *fakeVault) Set(ctx context.Context, sessionID, token string, ttl time.Duration) error {
	v.tokens[sessionID] = token
	return nil
}

func (v *fakeVault) Delete(ctx context.Context, sessionID string) error {
	delete(v.tokens, sessionID)
	return nil
}

type fakeEnder struct {
	cleared []string
}

func (e *fakeEnder) Logout(ctx context.Context, sessionID string) error {
	e.cleared = append(e.cleared, sessionID)
	return nil
}

type fakeRecorder struct {
	events []domain.AuditEvent
}

func (r *fakeRecorder) Record(event domain.AuditEvent) { r.events = append(r.events, event) }

// roundTripFunc lets a test script the upstream response.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func respond(status int) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader("{}")),
		Header:     http.Header{},
	}
}

func TestTransport_AttachesBearerToken(t *testing.T) {
	vault := &fakeVault{tokens: map[string]string{"s1": "tok-123"}}
	var seen *http.Request
	base := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		seen = req
		return respond(http.StatusOK), nil
	})

	transport := NewTransport(base, vault, &fakeEnder{}, &fakeRecorder{}, zerolog.Nop())
	req, _ := http.NewRequestWithContext(WithSession(context.Background(), "s1"), http.MethodGet, "http://api/patients", nil)

	if _, err := transport.RoundTrip(req); err != nil {
		t.Fatalf("roundtrip: %v", err)
	}
	if got := seen.Header.Get("Authorization"); got != "Bearer tok-123" {
		t.Fatalf("expected bearer header, got %q", got)
	}
	// The original request is not mutated.
	if req.Header.Get("Authorization") != "" {
		t.Fatalf("original request was mutated")
	}
}

func TestTransport_NoSessionNoHeader(t *testing.T) {
	var seen *http.Request
	base := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		seen = req
		return respond(http.StatusOK), nil
	})

	transport := NewTransport(base, &fakeVault{tokens: map[string]string{}}, &fakeEnder{}, &fakeRecorder{}, zerolog.Nop())
	req, _ := http.NewRequest(http.MethodGet, "http://api/patients", nil)

	if _, err := transport.RoundTrip(req); err != nil {
		t.Fatalf("roundtrip: %v", err)
	}
	if seen.Header.Get("Authorization") != "" {
		t.Fatalf("expected no Authorization header")
	}
}

func TestTransport_JSONContentTypeOnMutations(t *testing.T) {
	var seen *http.Request
	base := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		seen = req
		return respond(http.StatusOK), nil
	})
	transport := NewTransport(base, &fakeVault{tokens: map[string]string{}}, &fakeEnder{}, &fakeRecorder{}, zerolog.Nop())

	post, _ := http.NewRequest(http.MethodPost, "http://api/patients", strings.NewReader("{}"))
	if _, err := transport.RoundTrip(post); err != nil {
		t.Fatalf("roundtrip: %v", err)
	}
	if seen.Header.Get("Content-Type") != "application/json" {
		t.Fatalf("expected JSON content type on POST, got %q", seen.Header.Get("Content-Type"))
	}

	get, _ := http.NewRequest(http.MethodGet, "http://api/patients", nil)
	if _, err := transport.RoundTrip(get); err != nil {
		t.Fatalf("roundtrip: %v", err)
	}
	if seen.Header.Get("Content-Type") != "" {
		t.Fatalf("GET must not get a content type")
	}
}

// A 401 from ANY upstream endpoint clears the session through the single
// logout path.
func TestTransport_ForcedLogoutOn401(t *testing.T) {
	vault := &fakeVault{tokens: map[string]string{"s1": "stale"}}
	ender := &fakeEnder{}
	audit := &fakeRecorder{}
	base := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return respond(http.StatusUnauthorized), nil
	})

	transport := NewTransport(base, vault, ender, audit, zerolog.Nop())
	req, _ := http.NewRequestWithContext(WithSession(context.Background(), "s1"), http.MethodGet, "http://api/examinations", nil)

	resp, err := transport.RoundTrip(req)
	if err != nil {
		t.Fatalf("roundtrip: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("response must pass through, got %d", resp.StatusCode)
	}
	if len(ender.cleared) != 1 || ender.cleared[0] != "s1" {
		t.Fatalf("expected session s1 cleared, got %v", ender.cleared)
	}
	if len(audit.events) != 1 || audit.events[0].Action != domain.AuditForcedLogout {
		t.Fatalf("expected a forced_logout audit event, got %+v", audit.events)
	}
}

func TestTransport_ForcedLogoutOn403(t *testing.T) {
	ender := &fakeEnder{}
	base := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return respond(http.StatusForbidden), nil
	})

	transport := NewTransport(base, &fakeVault{tokens: map[string]string{"s1": "t"}}, ender, &fakeRecorder{}, zerolog.Nop())
	req, _ := http.NewRequestWithContext(WithSession(context.Background(), "s1"), http.MethodDelete, "http://api/patients/9", nil)

	if _, err := transport.RoundTrip(req); err != nil {
		t.Fatalf("roundtrip: %v", err)
	}
	if len(ender.cleared) != 1 {
		t.Fatalf("expected forced logout on 403")
	}
}

func TestTransport_NoSessionNoForcedLogout(t *testing.T) {
	ender := &fakeEnder{}
	base := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return respond(http.StatusUnauthorized), nil
	})

	transport := NewTransport(base, &fakeVault{tokens: map[string]string{}}, ender, &fakeRecorder{}, zerolog.Nop())
	req, _ := http.NewRequest(http.MethodPost, "http://api/auth/login", strings.NewReader("{}"))

	if _, err := transport.RoundTrip(req); err != nil {
		t.Fatalf("roundtrip: %v", err)
	}
	if len(ender.cleared) != 0 {
		t.Fatalf("401 without a session must not trigger a logout")
	}
}

// Network-level failures pass through untouched and leave the session alone.
func TestTransport_NetworkErrorPassthrough(t *testing.T) {
	ender := &fakeEnder{}
	netErr := errors.New("connection refused")
	base := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return nil, netErr
	})

	transport := NewTransport(base, &fakeVault{tokens: map[string]string{"s1": "t"}}, ender, &fakeRecorder{}, zerolog.Nop())
	req, _ := http.NewRequestWithContext(WithSession(context.Background(), "s1"), http.MethodGet, "http://api/patients", nil)

	if _, err := transport.RoundTrip(req); !errors.Is(err, netErr) {
		t.Fatalf("expected network error passthrough, got %v", err)
	}
	if len(ender.cleared) != 0 {
		t.Fatalf("network error must not clear the session")
	}
}

func TestTransport_OtherStatusesLeaveSession(t *testing.T) {
	ender := &fakeEnder{}
	for _, status := range []int{http.StatusOK, http.StatusNotFound, http.StatusInternalServerError} {
		base := roundTripFunc(func(req *http.Request) (*http.Response, error) {
			return respond(status), nil
		})
		transport := NewTransport(base, &fakeVault{tokens: map[string]string{"s1": "t"}}, ender, &fakeRecorder{}, zerolog.Nop())
		req, _ := http.NewRequestWithContext(WithSession(context.Background(), "s1"), http.MethodGet, "http://api/patients", nil)
		if _, err := transport.RoundTrip(req); err != nil {
			t.Fatalf("status %d: %v", status, err)
		}
	}
	if len(ender.cleared) != 0 {
		t.Fatalf("only 401/403 may clear the session, cleared: %v", ender.cleared)
	}
}
