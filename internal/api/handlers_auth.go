package api

import (
	"errors"
	"log/slog"
	"net/http"

	"expenses/internal/auth"
	"expenses/internal/middleware"
	"expenses/internal/session"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userEnvelope wraps the public user fields with a confirmation
// message, matching the register/login/update response shape.
type userEnvelope struct {
	Message string `json:"message"`
	User    any    `json:"user"`
}

// handleRegister creates a new account.
func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	switch {
	case req.Name == "":
		writeMessage(w, http.StatusBadRequest, "Name is required")
		return
	case req.Email == "":
		writeMessage(w, http.StatusBadRequest, "Email is required")
		return
	case req.Password == "":
		writeMessage(w, http.StatusBadRequest, "Password is required")
		return
	}

	user, err := a.authenticator.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrEmailExists) {
			writeMessage(w, http.StatusBadRequest, "Email already exists")
			return
		}
		writeInternalError(w, "register", err)
		return
	}

	slog.Info("User registered", "user_id", user.ID, "email", user.Email)
	writeJSON(w, http.StatusOK, userEnvelope{
		Message: "Registration successful",
		User:    user.Public(),
	})
}

// handleLogin authenticates a user and binds a new session to the
// response cookie. Unknown email and wrong password fail identically.
func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := a.authenticator.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid email or password")
		return
	}

	token, err := a.sessions.Create(r.Context(), user.ID)
	if err != nil {
		writeInternalError(w, "login", err)
		return
	}

	a.setSessionCookie(w, token)
	slog.Info("User logged in", "user_id", user.ID)
	writeJSON(w, http.StatusOK, userEnvelope{
		Message: "Login successful",
		User:    user.Public(),
	})
}

// handleLogout invalidates the current session. A request without a
// session is still a successful logout.
func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		if err := a.sessions.Destroy(r.Context(), cookie.Value); err != nil {
			slog.Error("Failed to destroy session", "error", err)
		}
	}
	a.clearSessionCookie(w)
	writeMessage(w, http.StatusOK, "Logout successful")
}

// handleAuthMe returns the caller's public fields, or 401 when no
// valid session accompanies the request.
func (a *API) handleAuthMe(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeMessage(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	writeJSON(w, http.StatusOK, user.Public())
}

func (a *API) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(a.sessions.TTL().Seconds()),
		HttpOnly: true,
		Secure:   a.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (a *API) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   a.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
