package api

import (
	"log/slog"
	"net/http"
	"time"

	"expenses/internal/auth"
	"expenses/internal/middleware"
	"expenses/internal/session"
)

// updateProfileRequest carries optional fields; only non-nil ones are
// applied.
type updateProfileRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// handleGetProfile returns the caller's own public profile.
func (a *API) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	writeJSON(w, http.StatusOK, user.Public())
}

// handleUpdateProfile applies a partial profile update. All changes
// land in a single UPDATE, so a rejected email leaves the name and
// password untouched too.
func (a *API) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			writeMessage(w, http.StatusBadRequest, "Name cannot be empty")
			return
		}
		user.Name = *req.Name
	}

	if req.Email != nil {
		newEmail := auth.NormalizeEmail(*req.Email)
		if newEmail == "" {
			writeMessage(w, http.StatusBadRequest, "Email cannot be empty")
			return
		}
		// Re-using one's own email is allowed.
		if newEmail != user.Email {
			other, err := a.store.GetUserByEmail(r.Context(), newEmail)
			if err != nil {
				writeInternalError(w, "update profile", err)
				return
			}
			if other != nil {
				writeMessage(w, http.StatusBadRequest, "Email already in use")
				return
			}
		}
		user.Email = newEmail
	}

	if req.Password != nil {
		if *req.Password == "" {
			writeMessage(w, http.StatusBadRequest, "Password cannot be empty")
			return
		}
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			writeInternalError(w, "update profile", err)
			return
		}
		user.PasswordHash = hashed
	}

	user.UpdatedAt = time.Now().Unix()
	if err := a.store.UpdateUser(r.Context(), user); err != nil {
		writeInternalError(w, "update profile", err)
		return
	}

	slog.Info("Profile updated", "user_id", user.ID)
	writeJSON(w, http.StatusOK, userEnvelope{
		Message: "Profile updated successfully",
		User:    user.Public(),
	})
}

// handleDeleteAccount deletes the caller's account. Owned transactions
// and every session of the account go with it (cascade).
func (a *API) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	if err := a.store.DeleteUser(r.Context(), user.ID); err != nil {
		writeInternalError(w, "delete account", err)
		return
	}

	if cookie, err := r.Cookie(session.CookieName); err == nil {
		_ = a.sessions.Destroy(r.Context(), cookie.Value)
	}
	a.clearSessionCookie(w)

	slog.Info("Account deleted", "user_id", user.ID)
	writeMessage(w, http.StatusOK, "Account deleted successfully")
}
