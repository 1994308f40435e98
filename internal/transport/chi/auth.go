package chi

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	domuser "github.com/kailas-cloud/tripdex/internal/domain/user"
	"github.com/kailas-cloud/tripdex/internal/logger"
)

type userCtxKey struct{}

func contextWithUser(ctx context.Context, u domuser.User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, u)
}

// userFromContext returns the authenticated user set by RequireUser.
func userFromContext(ctx context.Context) (domuser.User, bool) {
	u, ok := ctx.Value(userCtxKey{}).(domuser.User)
	return u, ok
}

// RequireUser rejects requests without a valid bearer token (401) and
// stores the resolved user in the request context.
func (s *Server) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := bearerToken(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, CodeUnauthorized, "missing or malformed authorization header")
			return
		}
		u, err := s.auth.Authenticate(r.Context(), raw)
		if err != nil {
			s.handleDomainError(w, r, err)
			return
		}
		ctx := contextWithUser(r.Context(), u)
		ctx = logger.With(ctx, zap.String("user_id", u.ID()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin is RequireUser plus a role check (403 for non-admins).
func (s *Server) RequireAdmin(next http.Handler) http.Handler {
	return s.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if u, ok := userFromContext(r.Context()); !ok || !u.IsAdmin() {
			writeError(w, http.StatusForbidden, CodeForbidden, "admin role required")
			return
		}
		next.ServeHTTP(w, r)
	}))
}

func bearerToken(r *http.Request) (string, bool) {
	const bearerPrefix = "Bearer "
	h := r.Header.Get("Authorization")
	if len(h) <= len(bearerPrefix) || !strings.EqualFold(h[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	tok := strings.TrimSpace(h[len(bearerPrefix):])
	return tok, tok != ""
}
