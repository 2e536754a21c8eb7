package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingCategory    = errors.New("category is required")
	ErrMissingDescription = errors.New("description is required")
	ErrDescriptionTooLong = errors.New("description cannot exceed 255 characters")
)

// MaxDescriptionLen bounds transaction descriptions.
const MaxDescriptionLen = 255

// Transaction is a single income or expense entry owned by one user.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string

	// UserID is the owning user. It is assigned from the authenticated
	// caller on creation and never reassigned afterwards.
	UserID string

	// CategoryID references a Category. Mutable.
	CategoryID string

	// Amount is the strictly positive amount in cents.
	Amount Money

	// Description is a required, bounded free-text note.
	Description string

	// TransactionDate is the Unix timestamp the entry applies to.
	// Defaults to creation time when the client omits it.
	TransactionDate int64

	// CreatedAt is the Unix timestamp the row was inserted. Immutable.
	CreatedAt int64
}

// NewTransaction creates a transaction owned by userID with a fresh ID
// and timestamps. A zero transactionDate defaults to now.
func NewTransaction(userID, categoryID string, amount Money, description string, transactionDate int64) *Transaction {
	now := time.Now().Unix()
	if transactionDate == 0 {
		transactionDate = now
	}
	return &Transaction{
		ID:              uuid.New().String(),
		UserID:          userID,
		CategoryID:      categoryID,
		Amount:          amount,
		Description:     description,
		TransactionDate: transactionDate,
		CreatedAt:       now,
	}
}

// Validate checks the field-level invariants. Category existence is a
// store concern and checked separately.
func (t *Transaction) Validate() error {
	if t.CategoryID == "" {
		return ErrMissingCategory
	}
	if t.Amount <= 0 {
		return ErrInvalidAmount
	}
	if t.Description == "" {
		return ErrMissingDescription
	}
	if len(t.Description) > MaxDescriptionLen {
		return ErrDescriptionTooLong
	}
	return nil
}
