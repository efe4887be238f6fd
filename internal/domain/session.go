package domain

import (
	"context"
	"time"
)

// Session is a portal login session. AccessToken is the upstream bearer token.
type Session struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	AccessToken string    `json:"-"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// SessionIssuer signs a portal session token.
type SessionIssuer interface {
	Issue(s Session, expiry time.Duration) (string, error)
}

// SessionVerifier validates a portal session token and returns its session.
type SessionVerifier interface {
	Verify(token string) (Session, error)
}

// Workspaces hands out the per-session cached stores and ends sessions.
type Workspaces interface {
	Events(ctx context.Context, s Session) EventService
	RSVPs(ctx context.Context, s Session) RSVPService
	// Terminate clears the session's caches and revokes it.
	Terminate(ctx context.Context, sessionID string)
	IsRevoked(ctx context.Context, sessionID string) bool
}

type sessionKey struct{}

// ContextWithSession returns a context whose authenticated remote calls run as s.
func ContextWithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the session stored by ContextWithSession.
func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}
