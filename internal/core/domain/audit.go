package domain

import "time"

// Audit actions recorded by the gateway.
const (
	AuditLoginSucceeded = "login_succeeded"
	AuditLoginFailed    = "login_failed"
	AuditLoginBypass    = "login_bypass"
	AuditLogout         = "logout"
	AuditForcedLogout   = "forced_logout"
	AuditRecordCreated  = "record_created"
	AuditRecordUpdated  = "record_updated"
	AuditRecordDeleted  = "record_deleted"
)

// AuditEvent records a security-relevant action taken through the gateway.
// Actor is the identity's subject; for failed logins it is the submitted
// username so lockout investigations can correlate attempts.
type AuditEvent struct {
	Actor     string
	Role      string
	Action    string
	Resource  string // e.g. "patients/42"; empty for auth events
	RequestID string
	Timestamp time.Time
}
