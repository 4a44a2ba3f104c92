package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sokol-matija/medical-system-gateway/internal/core/domain"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestDecodeIdentity_Valid(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	token := signedToken(t, jwt.MapClaims{
		"sub":  "d-17",
		"name": "ana.horvat",
		"role": "Doctor",
		"exp":  now.Add(time.Hour).Unix(),
	})

	identity, expiresAt, err := DecodeIdentity(token, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.ID != "d-17" || identity.Username != "ana.horvat" || identity.Role != "Doctor" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
	if !expiresAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("unexpected expiry: %v", expiresAt)
	}
}

func TestDecodeIdentity_ExpiredInPast(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	token := signedToken(t, jwt.MapClaims{
		"sub": "d-17",
		"exp": now.Add(-time.Minute).Unix(),
	})

	if _, _, err := DecodeIdentity(token, now); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

// A token checked at exactly its expiry instant is already expired: validity
// requires exp strictly greater than now.
func TestDecodeIdentity_ExpiryIsStrict(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	token := signedToken(t, jwt.MapClaims{
		"sub": "d-17",
		"exp": now.Unix(),
	})

	if _, _, err := DecodeIdentity(token, now); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired at exp == now, got %v", err)
	}

	// One second of validity left is still authenticated.
	token = signedToken(t, jwt.MapClaims{
		"sub": "d-17",
		"exp": now.Add(time.Second).Unix(),
	})
	if _, _, err := DecodeIdentity(token, now); err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
}

func TestDecodeIdentity_Malformed(t *testing.T) {
	now := time.Now()
	for _, token := range []string{
		"",
		"not-a-token",
		"only.two",
		"a.b.c",
	} {
		if _, _, err := DecodeIdentity(token, now); !errors.Is(err, domain.ErrMalformedToken) {
			t.Fatalf("token %q: expected ErrMalformedToken, got %v", token, err)
		}
	}
}

func TestDecodeIdentity_MissingClaims(t *testing.T) {
	now := time.Now()

	noSub := signedToken(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()})
	if _, _, err := DecodeIdentity(noSub, now); !errors.Is(err, domain.ErrMalformedToken) {
		t.Fatalf("missing sub: expected ErrMalformedToken, got %v", err)
	}

	noExp := signedToken(t, jwt.MapClaims{"sub": "x"})
	if _, _, err := DecodeIdentity(noExp, now); !errors.Is(err, domain.ErrMalformedToken) {
		t.Fatalf("missing exp: expected ErrMalformedToken, got %v", err)
	}
}

func TestDecodeIdentity_NameFallsBackToSubject(t *testing.T) {
	now := time.Now()
	token := signedToken(t, jwt.MapClaims{
		"sub": "admin",
		"exp": now.Add(time.Hour).Unix(),
	})

	identity, _, err := DecodeIdentity(token, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.Username != "admin" {
		t.Fatalf("expected username fallback to sub, got %q", identity.Username)
	}
}

func TestMintLocalToken_RoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	token, err := MintLocalToken("secret", "admin", domain.RoleAdministrator, 24*time.Hour, now)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	identity, expiresAt, err := DecodeIdentity(token, now)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if identity.ID != "admin" || identity.Username != "admin" || identity.Role != domain.RoleAdministrator {
		t.Fatalf("unexpected identity: %+v", identity)
	}
	if !expiresAt.Equal(now.Add(24 * time.Hour)) {
		t.Fatalf("expected 24h expiry, got %v", expiresAt)
	}
}
