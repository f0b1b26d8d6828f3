package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/ficmart-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
	"github.com/DanielPopoola/ficmart-checkout/internal/interfaces/rest"
)

type contextKey int

const identityKey contextKey = iota

// RequireSession guards protected routes. It resolves the session cookie
// against the store and attaches the bound identity to the request context.
// Any token the store does not hold, including a missing or malformed
// cookie, short-circuits with 401 before the handler runs.
func RequireSession(store application.SessionStore, cookieName string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				rest.WriteError(w, application.NewUnauthenticatedError())
				return
			}

			identity, ok, err := store.Get(r.Context(), cookie.Value)
			if err != nil {
				logger.Error("session lookup failed", "error", err)
				rest.WriteError(w, application.NewInternalError(err))
				return
			}
			if !ok {
				rest.WriteError(w, application.NewUnauthenticatedError())
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext returns the identity the gate attached, if any.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(domain.Identity)
	return identity, ok
}
