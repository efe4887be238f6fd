package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "rsvpportal/internal/delivery/http/helpers"
	"rsvpportal/internal/domain"
)

// RevocationChecker reports whether a session was ended.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, sessionID string) bool
}

// RequireAuth returns a wrapper that validates the portal Bearer token and
// stores its session in the request context. Missing, invalid, expired or
// revoked tokens are answered with 401 and next is not called.
func RequireAuth(verifier domain.SessionVerifier, revoked RevocationChecker, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing token")
				return
			}
			session, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "rejected session token", "err", err)
				h.WriteSessionExpired(w, "invalid or expired token")
				return
			}
			if revoked != nil && revoked.IsRevoked(r.Context(), session.ID) {
				h.WriteSessionExpired(w, "session has ended, please login again")
				return
			}
			r = r.WithContext(domain.ContextWithSession(r.Context(), session))
			next(w, r)
		}
	}
}
