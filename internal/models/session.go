package models

// Session is server-side login state bound to a client via an opaque
// cookie token. Rows are removed on logout, on account deletion (via
// foreign key cascade), or lazily when an expired token is presented.
type Session struct {
	// Token is the opaque identifier stored in the session cookie.
	Token string

	// UserID is the authenticated user this session belongs to.
	UserID string

	// ExpiresAt is the Unix timestamp after which the session is invalid.
	ExpiresAt int64
}
