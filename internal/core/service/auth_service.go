package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sokol-matija/medical-system-gateway/internal/api/metrics"
	"github.com/sokol-matija/medical-system-gateway/internal/core/domain"
	"github.com/sokol-matija/medical-system-gateway/internal/core/ports"
)

// BypassConfig controls the local login bypass: a development/offline path
// that mints a gateway-signed Administrator token without calling the records
// API. Off by default; the password is only ever held as a bcrypt hash.
type BypassConfig struct {
	Enabled      bool
	Username     string
	PasswordHash string
	TokenSecret  string
	TokenTTL     time.Duration
}

// AuthService implements login and logout on top of the records client and
// the session service.
type AuthService struct {
	records  ports.RecordsClient
	sessions ports.SessionService
	audit    ports.AuditRecorder
	bypass   BypassConfig
	logger   zerolog.Logger
	now      func() time.Time
}

func NewAuthService(records ports.RecordsClient, sessions ports.SessionService, audit ports.AuditRecorder, bypass BypassConfig, logger zerolog.Logger) *AuthService {
	if bypass.TokenTTL <= 0 {
		bypass.TokenTTL = 24 * time.Hour
	}
	return &AuthService{
		records:  records,
		sessions: sessions,
		audit:    audit,
		bypass:   bypass,
		logger:   logger,
		now:      time.Now,
	}
}

// Login authenticates creds and establishes a session. When the bypass is
// enabled and the credentials match, the token is minted locally and no
// upstream call is made; otherwise the credentials are exchanged at the
// upstream login endpoint. An upstream 401 surfaces as
// domain.ErrInvalidCredentials so the UI can distinguish bad credentials
// from other server errors.
func (s *AuthService) Login(ctx context.Context, creds ports.Credentials, requestID string) (*ports.LoginResult, error) {
	if creds.Username == "" || creds.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if s.bypassMatches(creds) {
		return s.loginBypass(ctx, creds.Username, requestID)
	}

	token, err := s.records.Login(ctx, creds)
	if err != nil {
		outcome := "error"
		if errors.Is(err, domain.ErrInvalidCredentials) {
			outcome = "invalid_credentials"
			s.audit.Record(domain.AuditEvent{
				Actor:     creds.Username,
				Action:    domain.AuditLoginFailed,
				RequestID: requestID,
				Timestamp: s.now().UTC(),
			})
		}
		metrics.LoginsTotal.WithLabelValues("upstream", outcome).Inc()
		return nil, err
	}

	result, err := s.sessions.Login(ctx, token)
	if err != nil {
		// Upstream issued a token the gateway cannot decode.
		metrics.LoginsTotal.WithLabelValues("upstream", "error").Inc()
		s.logger.Error().Err(err).Str("user", creds.Username).Msg("upstream token rejected")
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("upstream", "success").Inc()
	s.audit.Record(domain.AuditEvent{
		Actor:     result.State.Identity.ID,
		Role:      result.State.Identity.Role,
		Action:    domain.AuditLoginSucceeded,
		RequestID: requestID,
		Timestamp: s.now().UTC(),
	})

	return result, nil
}

// Logout discards the session. Always succeeds for absent sessions.
func (s *AuthService) Logout(ctx context.Context, sessionID string, identity domain.Identity, requestID string) error {
	if err := s.sessions.Logout(ctx, sessionID); err != nil {
		return err
	}

	s.audit.Record(domain.AuditEvent{
		Actor:     identity.ID,
		Role:      identity.Role,
		Action:    domain.AuditLogout,
		RequestID: requestID,
		Timestamp: s.now().UTC(),
	})

	return nil
}

func (s *AuthService) bypassMatches(creds ports.Credentials) bool {
	if !s.bypass.Enabled || creds.Username != s.bypass.Username {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(s.bypass.PasswordHash), []byte(creds.Password)) == nil
}

func (s *AuthService) loginBypass(ctx context.Context, username, requestID string) (*ports.LoginResult, error) {
	token, err := MintLocalToken(s.bypass.TokenSecret, username, domain.RoleAdministrator, s.bypass.TokenTTL, s.now())
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("bypass", "error").Inc()
		return nil, err
	}

	result, err := s.sessions.Login(ctx, token)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("bypass", "error").Inc()
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("bypass", "success").Inc()
	s.logger.Warn().Str("user", username).Msg("local login bypass used")
	s.audit.Record(domain.AuditEvent{
		Actor:     result.State.Identity.ID,
		Role:      result.State.Identity.Role,
		Action:    domain.AuditLoginBypass,
		RequestID: requestID,
		Timestamp: s.now().UTC(),
	})

	return result, nil
}
