package upstream

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/sokol-matija/medical-system-gateway/internal/api/metrics"
	"github.com/sokol-matija/medical-system-gateway/internal/core/domain"
	"github.com/sokol-matija/medical-system-gateway/internal/core/ports"
)

// sessionEnder is the one session operation the transport needs. Clearing
// always goes through the session service's Logout so there is a single code
// path that removes a session.
type sessionEnder interface {
	Logout(ctx context.Context, sessionID string) error
}

// Transport authenticates every outgoing records API request and reacts to
// upstream rejection of the credential. It reads the raw token straight from
// the vault rather than from derived session state: the transport must work
// even when no state has been computed for the request yet.
type Transport struct {
	base     http.RoundTripper
	vault    ports.TokenVault
	sessions sessionEnder
	audit    ports.AuditRecorder
	logger   zerolog.Logger
}

func NewTransport(base http.RoundTripper, vault ports.TokenVault, sessions sessionEnder, audit ports.AuditRecorder, logger zerolog.Logger) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{base: base, vault: vault, sessions: sessions, audit: audit, logger: logger}
}

// RoundTrip attaches the session's bearer token when one exists, guarantees a
// JSON content type on mutating requests, and clears the session when the
// upstream answers 401 or 403 — whatever the endpoint. Network-level failures
// and all other responses pass through unchanged; no retries.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	sessionID := SessionFromContext(req.Context())
	if sessionID != "" {
		if token, err := t.vault.Get(req.Context(), sessionID); err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	if isMutating(req.Method) && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if sessionID != "" && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
		if err := t.sessions.Logout(req.Context(), sessionID); err != nil {
			t.logger.Error().Err(err).Str("session_id", sessionID).Msg("forced logout failed")
		} else {
			metrics.ForcedLogoutsTotal.Inc()
			t.audit.Record(domain.AuditEvent{
				Action:    domain.AuditForcedLogout,
				Resource:  req.URL.Path,
				Timestamp: time.Now().UTC(),
			})
			t.logger.Info().
				Str("session_id", sessionID).
				Int("status", resp.StatusCode).
				Str("path", req.URL.Path).
				Msg("session cleared after upstream auth rejection")
		}
	}

	return resp, nil
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
