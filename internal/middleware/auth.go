package middleware

import (
	"context"
	"net/http"

	"expenses/internal/models"
	"expenses/internal/session"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// userKey is the context key for storing the authenticated user.
const userKey contextKey = "user"

// UserFromContext extracts the authenticated user from the context.
// Returns nil if the request was not authenticated.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}

// WithUser returns a context carrying the authenticated user.
// Exported for handler tests that bypass the middleware.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// RequireAuth returns middleware that resolves the session cookie to a
// user and adds it to the request context. Requests without a valid
// session are rejected with 401.
func RequireAuth(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				unauthorized(w)
				return
			}

			user, err := sessions.Validate(r.Context(), cookie.Value)
			if err != nil {
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// OptionalAuth returns middleware that resolves the session cookie if
// present but lets unauthenticated requests through. Used by the auth
// endpoints, where /me has different behavior for the two cases.
func OptionalAuth(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cookie, err := r.Cookie(session.CookieName); err == nil && cookie.Value != "" {
				// Ignore errors - optional auth
				if user, err := sessions.Validate(r.Context(), cookie.Value); err == nil {
					r = r.WithContext(WithUser(r.Context(), user))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"message":"You must be logged in"}`))
}
