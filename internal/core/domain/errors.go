package domain

import "errors"

var (
	// ErrInvalidCredentials means the upstream login endpoint rejected the
	// username/password pair. Distinct from other upstream failures so the
	// UI can show a specific message.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMalformedToken means a token could not be decoded into an Identity.
	ErrMalformedToken = errors.New("malformed session token")

	// ErrTokenExpired means the token decoded but its expiry instant has passed.
	ErrTokenExpired = errors.New("session token expired")

	// ErrNoSession means no token slot exists for the session ID.
	ErrNoSession = errors.New("no session")

	// ErrSessionExpired is returned by the upstream client after a 401/403
	// response forced the session to be cleared.
	ErrSessionExpired = errors.New("session expired")

	// ErrNotAuthenticated is raised by the route guard for requests without
	// a valid session.
	ErrNotAuthenticated = errors.New("authentication required")

	// ErrForbidden means the caller's role does not permit the operation.
	ErrForbidden = errors.New("access forbidden")

	// ErrRecordNotFound maps an upstream 404 on a records resource.
	ErrRecordNotFound = errors.New("record not found")

	// ErrUpstream covers any other upstream failure (5xx, undecodable body).
	ErrUpstream = errors.New("upstream records API error")
)
