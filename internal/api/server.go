// Package api exposes the expense tracker's REST surface. Handlers
// receive the authenticated identity through the request context set
// by the auth middleware; nothing reads ambient global state.
package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"expenses/internal/auth"
	"expenses/internal/middleware"
	"expenses/internal/session"
	"expenses/internal/storage"
)

// API holds the dependencies shared by all handlers.
type API struct {
	store         storage.Store
	authenticator auth.Authenticator
	sessions      *session.Manager
	secureCookie  bool
}

// New creates the API with its dependencies.
func New(store storage.Store, authenticator auth.Authenticator, sessions *session.Manager, secureCookie bool) *API {
	return &API{
		store:         store,
		authenticator: authenticator,
		sessions:      sessions,
		secureCookie:  secureCookie,
	}
}

// Handler builds the route table and wraps it with logging and metrics.
// Everything outside /api/auth requires a valid session.
func (a *API) Handler() http.Handler {
	mux := http.NewServeMux()

	requireAuth := middleware.RequireAuth(a.sessions)
	optionalAuth := middleware.OptionalAuth(a.sessions)

	mux.HandleFunc("POST /api/auth/register", a.handleRegister)
	mux.HandleFunc("POST /api/auth/login", a.handleLogin)
	mux.HandleFunc("POST /api/auth/logout", a.handleLogout)
	mux.Handle("GET /api/auth/me", optionalAuth(http.HandlerFunc(a.handleAuthMe)))

	mux.Handle("GET /api/users/me", requireAuth(http.HandlerFunc(a.handleGetProfile)))
	mux.Handle("PUT /api/users/me", requireAuth(http.HandlerFunc(a.handleUpdateProfile)))
	mux.Handle("DELETE /api/users/me", requireAuth(http.HandlerFunc(a.handleDeleteAccount)))

	mux.Handle("GET /api/categories", requireAuth(http.HandlerFunc(a.handleListCategories)))
	mux.Handle("GET /api/categories/{id}", requireAuth(http.HandlerFunc(a.handleGetCategory)))

	mux.Handle("GET /api/transactions", requireAuth(http.HandlerFunc(a.handleListTransactions)))
	mux.Handle("GET /api/transactions/{id}", requireAuth(http.HandlerFunc(a.handleGetTransaction)))
	mux.Handle("POST /api/transactions", requireAuth(http.HandlerFunc(a.handleCreateTransaction)))
	mux.Handle("PUT /api/transactions/{id}", requireAuth(http.HandlerFunc(a.handleUpdateTransaction)))
	mux.Handle("DELETE /api/transactions/{id}", requireAuth(http.HandlerFunc(a.handleDeleteTransaction)))

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	return middleware.Logging(middleware.Metrics(mux, mux))
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
