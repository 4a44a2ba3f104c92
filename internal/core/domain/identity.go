package domain

import "time"

// Role labels carried in the upstream token's role claim.
const (
	RoleAdministrator = "Administrator"
	RoleDoctor        = "Doctor"
	RoleNurse         = "Nurse"
)

// Identity is the decoded, user-facing representation of who is logged in.
// It is derived from the session token payload and never stored on its own:
// it exists if and only if the current token decodes and has not expired.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// SessionState is the composite owned by the session service: the
// authenticated flag plus the optional derived Identity. Readers (route
// guard, handlers) never mutate it.
type SessionState struct {
	Authenticated bool
	Identity      Identity
	// ExpiresAt is the token's expiry instant. Zero when unauthenticated.
	ExpiresAt time.Time
}
