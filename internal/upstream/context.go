package upstream

import "context"

type ctxKey struct{}

// WithSession returns a context carrying the gateway session ID. The
// transport reads it to resolve the bearer token for outgoing requests.
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, sessionID)
}

// SessionFromContext returns the session ID set by WithSession, or "".
func SessionFromContext(ctx context.Context) string {
	sessionID, _ := ctx.Value(ctxKey{}).(string)
	return sessionID
}
