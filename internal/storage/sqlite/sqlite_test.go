package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"expenses/internal/models"
	"expenses/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.NewUser("alice@example.com", "Alice", "hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	t.Run("GetUserByEmail", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got == nil || got.ID != user.ID {
			t.Fatalf("GetUserByEmail = %+v, want user %s", got, user.ID)
		}
	})

	t.Run("GetUserByEmail returns nil for unknown email", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "nobody@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got != nil {
			t.Errorf("Expected nil, got %+v", got)
		}
	})

	t.Run("duplicate email rejected by unique constraint", func(t *testing.T) {
		dup := models.NewUser("alice@example.com", "Other", "hash2")
		if err := store.CreateUser(ctx, dup); err == nil {
			t.Error("Expected unique constraint violation")
		}
	})

	t.Run("UpdateUser persists all fields", func(t *testing.T) {
		user.Name = "Alicia"
		user.Email = "alicia@example.com"
		user.PasswordHash = "newhash"
		if err := store.UpdateUser(ctx, user); err != nil {
			t.Fatalf("UpdateUser failed: %v", err)
		}

		got, err := store.GetUserByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetUserByID failed: %v", err)
		}
		if got.Name != "Alicia" || got.Email != "alicia@example.com" || got.PasswordHash != "newhash" {
			t.Errorf("UpdateUser did not persist: %+v", got)
		}
	})

	t.Run("UpdateUser on missing user returns ErrNotFound", func(t *testing.T) {
		ghost := models.NewUser("ghost@example.com", "Ghost", "hash")
		if err := store.UpdateUser(ctx, ghost); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("UpdateUser = %v, want ErrNotFound", err)
		}
	})
}

func TestCategoriesSeeded(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	categories, err := store.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if len(categories) == 0 {
		t.Fatal("Expected seeded categories")
	}

	groceries, err := store.GetCategory(ctx, "groceries")
	if err != nil {
		t.Fatalf("GetCategory failed: %v", err)
	}
	if groceries == nil || groceries.Type != "expense" {
		t.Errorf("GetCategory(groceries) = %+v, want expense type", groceries)
	}

	missing, err := store.GetCategory(ctx, "does-not-exist")
	if err != nil {
		t.Fatalf("GetCategory failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for unknown category, got %+v", missing)
	}
}

func TestTransactions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	owner := models.NewUser("owner@example.com", "Owner", "hash")
	other := models.NewUser("other@example.com", "Other", "hash")
	for _, u := range []*models.User{owner, other} {
		if err := store.CreateUser(ctx, u); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
	}

	txn := models.NewTransaction(owner.ID, "groceries", 1234, "weekly shop", 1000)
	if err := store.CreateTransaction(ctx, txn); err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}

	t.Run("GetTransaction round-trips fields", func(t *testing.T) {
		got, err := store.GetTransaction(ctx, txn.ID, owner.ID)
		if err != nil {
			t.Fatalf("GetTransaction failed: %v", err)
		}
		if got == nil {
			t.Fatal("Expected transaction")
		}
		if got.Amount != 1234 || got.Description != "weekly shop" || got.CategoryID != "groceries" || got.TransactionDate != 1000 {
			t.Errorf("Round-trip mismatch: %+v", got)
		}
	})

	t.Run("GetTransaction hides other users' rows", func(t *testing.T) {
		got, err := store.GetTransaction(ctx, txn.ID, other.ID)
		if err != nil {
			t.Fatalf("GetTransaction failed: %v", err)
		}
		if got != nil {
			t.Errorf("Expected nil for non-owner, got %+v", got)
		}
	})

	t.Run("UpdateTransaction scoped to owner", func(t *testing.T) {
		stolen := *txn
		stolen.UserID = other.ID
		stolen.Description = "hijacked"
		if err := store.UpdateTransaction(ctx, &stolen); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("UpdateTransaction = %v, want ErrNotFound", err)
		}

		// Row untouched.
		got, _ := store.GetTransaction(ctx, txn.ID, owner.ID)
		if got.Description != "weekly shop" {
			t.Errorf("Non-owner update mutated the row: %+v", got)
		}
	})

	t.Run("DeleteTransaction scoped to owner", func(t *testing.T) {
		if err := store.DeleteTransaction(ctx, txn.ID, other.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("DeleteTransaction = %v, want ErrNotFound", err)
		}
		got, _ := store.GetTransaction(ctx, txn.ID, owner.ID)
		if got == nil {
			t.Error("Non-owner delete removed the row")
		}
	})

	t.Run("ListTransactions orders by transaction date descending", func(t *testing.T) {
		newer := models.NewTransaction(owner.ID, "rent", 90000, "rent", 2000)
		oldest := models.NewTransaction(owner.ID, "transport", 250, "bus", 500)
		for _, x := range []*models.Transaction{newer, oldest} {
			if err := store.CreateTransaction(ctx, x); err != nil {
				t.Fatalf("CreateTransaction failed: %v", err)
			}
		}

		txns, err := store.ListTransactions(ctx, owner.ID)
		if err != nil {
			t.Fatalf("ListTransactions failed: %v", err)
		}
		if len(txns) != 3 {
			t.Fatalf("ListTransactions returned %d rows, want 3", len(txns))
		}
		for i := 1; i < len(txns); i++ {
			if txns[i-1].TransactionDate < txns[i].TransactionDate {
				t.Errorf("Rows out of order: %d before %d", txns[i-1].TransactionDate, txns[i].TransactionDate)
			}
		}
	})

	t.Run("ListTransactions excludes other users", func(t *testing.T) {
		txns, err := store.ListTransactions(ctx, other.ID)
		if err != nil {
			t.Fatalf("ListTransactions failed: %v", err)
		}
		if len(txns) != 0 {
			t.Errorf("Expected no rows for other user, got %d", len(txns))
		}
	})
}

func TestDeleteUserCascades(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.NewUser("doomed@example.com", "Doomed", "hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	txn := models.NewTransaction(user.ID, "other", 100, "something", 0)
	if err := store.CreateTransaction(ctx, txn); err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}
	sess := &models.Session{Token: "tok", UserID: user.ID, ExpiresAt: 1 << 40}
	if err := store.CreateSession(ctx, sess); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	if err := store.DeleteUser(ctx, user.ID); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}

	if got, _ := store.GetTransaction(ctx, txn.ID, user.ID); got != nil {
		t.Error("Transaction survived account deletion")
	}
	if got, _ := store.GetSession(ctx, "tok"); got != nil {
		t.Error("Session survived account deletion")
	}
}

func TestSessions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.NewUser("sess@example.com", "Sess", "hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	sess := &models.Session{Token: "abc123", UserID: user.ID, ExpiresAt: 1 << 40}
	if err := store.CreateSession(ctx, sess); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	got, err := store.GetSession(ctx, "abc123")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got == nil || got.UserID != user.ID {
		t.Fatalf("GetSession = %+v, want session for %s", got, user.ID)
	}

	if err := store.DeleteSession(ctx, "abc123"); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}
	if got, _ := store.GetSession(ctx, "abc123"); got != nil {
		t.Error("Session survived deletion")
	}

	// Unknown tokens are a no-op, not an error.
	if err := store.DeleteSession(ctx, "never-existed"); err != nil {
		t.Errorf("DeleteSession on unknown token failed: %v", err)
	}
}
