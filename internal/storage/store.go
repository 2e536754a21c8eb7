// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"expenses/internal/models"
)

// ErrNotFound is returned by mutations whose WHERE predicate matched
// no row. The row may not exist or may be owned by a different user;
// callers cannot tell which.
var ErrNotFound = errors.New("not found")

// Store defines the interface for persistence operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the handler layer.
//
// Lookup methods return (nil, nil) when no row matches. Mutations that
// target a specific row return ErrNotFound when nothing was affected.
type Store interface {
	// CreateUser persists a new user. Fails if the email is taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by lowercase email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// UpdateUser persists name, email, and password hash in a single
	// UPDATE so partial profile edits are atomic.
	UpdateUser(ctx context.Context, user *models.User) error

	// DeleteUser removes a user. Owned transactions and sessions are
	// removed by foreign key cascade.
	DeleteUser(ctx context.Context, id string) error

	// ListCategories returns all categories ordered by name.
	ListCategories(ctx context.Context) ([]models.Category, error)

	// GetCategory retrieves one category by ID.
	GetCategory(ctx context.Context, id string) (*models.Category, error)

	// CreateTransaction persists a new transaction.
	CreateTransaction(ctx context.Context, txn *models.Transaction) error

	// ListTransactions returns every transaction owned by userID,
	// newest transaction date first.
	ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error)

	// GetTransaction retrieves a transaction by ID and owner. The
	// owner is part of the query predicate, not an afterthought.
	GetTransaction(ctx context.Context, id, userID string) (*models.Transaction, error)

	// UpdateTransaction writes the mutable fields of txn, scoped to
	// txn.ID and txn.UserID in the same statement.
	UpdateTransaction(ctx context.Context, txn *models.Transaction) error

	// DeleteTransaction removes a transaction by ID and owner.
	DeleteTransaction(ctx context.Context, id, userID string) error

	// CreateSession persists a login session.
	CreateSession(ctx context.Context, session *models.Session) error

	// GetSession retrieves a session by token.
	GetSession(ctx context.Context, token string) (*models.Session, error)

	// DeleteSession removes a session by token. Deleting an unknown
	// token is not an error.
	DeleteSession(ctx context.Context, token string) error

	// Close releases any resources held by the store.
	Close() error
}
