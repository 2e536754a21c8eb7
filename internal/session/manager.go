// Package session implements server-side cookie sessions keyed by an
// opaque random token. Tokens carry no information themselves; the
// authenticated identity lives in the store, which is what lets logout
// actually invalidate a session.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"expenses/internal/models"
	"expenses/internal/storage"
)

// CookieName is the name of the session cookie.
const CookieName = "session"

// ErrInvalidSession is returned for missing, unknown, or expired tokens.
var ErrInvalidSession = errors.New("invalid or expired session")

// Manager issues and validates login sessions backed by the store.
type Manager struct {
	store storage.Store
	ttl   time.Duration
}

// NewManager creates a session manager with the given lifetime.
func NewManager(store storage.Store, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl}
}

// TTL returns the configured session lifetime, used for cookie Max-Age.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Create issues a new session for the user and returns the token.
func (m *Manager) Create(ctx context.Context, userID string) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}

	session := &models.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(m.ttl).Unix(),
	}
	if err := m.store.CreateSession(ctx, session); err != nil {
		return "", fmt.Errorf("failed to persist session: %w", err)
	}

	return token, nil
}

// Validate resolves a token to its user. Expired sessions are deleted
// on sight rather than by a background sweeper.
func (m *Manager) Validate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}

	session, err := m.store.GetSession(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}
	if session == nil {
		return nil, ErrInvalidSession
	}

	if time.Now().Unix() >= session.ExpiresAt {
		_ = m.store.DeleteSession(ctx, token)
		return nil, ErrInvalidSession
	}

	user, err := m.store.GetUserByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up session user: %w", err)
	}
	if user == nil {
		// Account deleted out from under the session.
		_ = m.store.DeleteSession(ctx, token)
		return nil, ErrInvalidSession
	}

	return user, nil
}

// Destroy invalidates a session. Unknown tokens are a no-op.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.DeleteSession(ctx, token)
}

// generateToken returns 32 bytes of crypto/rand entropy, hex encoded.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
