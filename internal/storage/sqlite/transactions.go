package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"expenses/internal/models"
	"expenses/internal/storage"
)

// CreateTransaction persists a new transaction.
func (s *SQLiteStore) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, category_id, amount_cents, description, transaction_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		txn.ID,
		txn.UserID,
		txn.CategoryID,
		int64(txn.Amount),
		txn.Description,
		txn.TransactionDate,
		txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// ListTransactions returns every transaction owned by userID, newest
// transaction date first (created_at breaks ties).
func (s *SQLiteStore) ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, category_id, amount_cents, description, transaction_date, created_at
		FROM transactions
		WHERE user_id = ?
		ORDER BY transaction_date DESC, created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.CategoryID,
			&t.Amount,
			&t.Description,
			&t.TransactionDate,
			&t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return txns, nil
}

// GetTransaction retrieves a transaction by ID and owner. A row owned
// by someone else looks exactly like a missing row.
func (s *SQLiteStore) GetTransaction(ctx context.Context, id, userID string) (*models.Transaction, error) {
	query := `
		SELECT id, user_id, category_id, amount_cents, description, transaction_date, created_at
		FROM transactions
		WHERE id = ? AND user_id = ?
	`

	t := &models.Transaction{}
	err := s.db.QueryRowContext(ctx, query, id, userID).Scan(
		&t.ID,
		&t.UserID,
		&t.CategoryID,
		&t.Amount,
		&t.Description,
		&t.TransactionDate,
		&t.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil // Transaction not found (or not owned)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return t, nil
}

// UpdateTransaction writes the mutable fields. The owner is part of
// the WHERE clause, so the ownership check and the write are a single
// statement and cannot race.
func (s *SQLiteStore) UpdateTransaction(ctx context.Context, txn *models.Transaction) error {
	query := `
		UPDATE transactions
		SET category_id = ?, amount_cents = ?, description = ?, transaction_date = ?
		WHERE id = ? AND user_id = ?
	`

	res, err := s.db.ExecContext(ctx, query,
		txn.CategoryID,
		int64(txn.Amount),
		txn.Description,
		txn.TransactionDate,
		txn.ID,
		txn.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// DeleteTransaction removes a transaction by ID and owner.
func (s *SQLiteStore) DeleteTransaction(ctx context.Context, id, userID string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM transactions WHERE id = ? AND user_id = ?",
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}
