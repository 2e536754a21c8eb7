package api

import (
	"errors"
	"log/slog"
	"net/http"

	"expenses/internal/middleware"
	"expenses/internal/models"
	"expenses/internal/storage"
)

// createTransactionRequest is the create payload. Amount uses a
// pointer so "absent" and "invalid" stay distinguishable; invalid
// amounts already fail in Money's unmarshaler.
type createTransactionRequest struct {
	CategoryID  string        `json:"categoryId"`
	Amount      *models.Money `json:"amount"`
	Description string        `json:"description"`
	// TransactionDate is optional; defaults to now.
	TransactionDate *string `json:"transactionDate"`
}

// updateTransactionRequest carries optional fields; only non-nil ones
// are applied.
type updateTransactionRequest struct {
	CategoryID      *string       `json:"categoryId"`
	Amount          *models.Money `json:"amount"`
	Description     *string       `json:"description"`
	TransactionDate *string       `json:"transactionDate"`
}

// transactionResponse is the client-facing transaction shape.
type transactionResponse struct {
	ID              string       `json:"id"`
	UserID          string       `json:"userId"`
	CategoryID      string       `json:"categoryId"`
	Amount          models.Money `json:"amount"`
	Description     string       `json:"description"`
	TransactionDate string       `json:"transactionDate"`
	CreatedAt       string       `json:"createdAt"`
}

func toTransactionResponse(t *models.Transaction) transactionResponse {
	return transactionResponse{
		ID:              t.ID,
		UserID:          t.UserID,
		CategoryID:      t.CategoryID,
		Amount:          t.Amount,
		Description:     t.Description,
		TransactionDate: formatTime(t.TransactionDate),
		CreatedAt:       formatTime(t.CreatedAt),
	}
}

// handleListTransactions returns the caller's transactions, newest
// transaction date first.
func (a *API) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	txns, err := a.store.ListTransactions(r.Context(), user.ID)
	if err != nil {
		writeInternalError(w, "list transactions", err)
		return
	}

	out := make([]transactionResponse, 0, len(txns))
	for i := range txns {
		out = append(out, toTransactionResponse(&txns[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// handleGetTransaction returns one transaction looked up by id+owner.
// A transaction owned by someone else is indistinguishable from a
// missing one.
func (a *API) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	txn, err := a.store.GetTransaction(r.Context(), r.PathValue("id"), user.ID)
	if err != nil {
		writeInternalError(w, "get transaction", err)
		return
	}
	if txn == nil {
		writeMessage(w, http.StatusNotFound, "Transaction not found")
		return
	}
	writeJSON(w, http.StatusOK, toTransactionResponse(txn))
}

// handleCreateTransaction creates a transaction owned by the caller.
// The owner always comes from the session, never from the payload.
func (a *API) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	var req createTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Amount == nil {
		writeMessage(w, http.StatusBadRequest, "Amount is required")
		return
	}

	var transactionDate int64
	if req.TransactionDate != nil {
		var err error
		if transactionDate, err = parseTime(*req.TransactionDate); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid transaction date")
			return
		}
	}

	txn := models.NewTransaction(user.ID, req.CategoryID, *req.Amount, req.Description, transactionDate)
	if err := txn.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	if ok, err := a.categoryExists(r, txn.CategoryID); err != nil {
		writeInternalError(w, "create transaction", err)
		return
	} else if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid category")
		return
	}

	if err := a.store.CreateTransaction(r.Context(), txn); err != nil {
		writeInternalError(w, "create transaction", err)
		return
	}

	slog.Info("Transaction created", "transaction_id", txn.ID, "user_id", user.ID)
	writeJSON(w, http.StatusCreated, toTransactionResponse(txn))
}

// handleUpdateTransaction applies a partial update to a transaction
// the caller owns. Validation failures reject the whole update; the
// final write repeats the id+owner predicate so a row that changed
// hands mid-request cannot be touched.
func (a *API) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	var req updateTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	txn, err := a.store.GetTransaction(r.Context(), r.PathValue("id"), user.ID)
	if err != nil {
		writeInternalError(w, "update transaction", err)
		return
	}
	if txn == nil {
		writeMessage(w, http.StatusNotFound, "Transaction not found")
		return
	}

	if req.CategoryID != nil {
		if ok, err := a.categoryExists(r, *req.CategoryID); err != nil {
			writeInternalError(w, "update transaction", err)
			return
		} else if !ok {
			writeMessage(w, http.StatusBadRequest, "Invalid category")
			return
		}
		txn.CategoryID = *req.CategoryID
	}
	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.TransactionDate != nil {
		transactionDate, err := parseTime(*req.TransactionDate)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid transaction date")
			return
		}
		txn.TransactionDate = transactionDate
	}

	if err := txn.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	if err := a.store.UpdateTransaction(r.Context(), txn); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Transaction not found")
			return
		}
		writeInternalError(w, "update transaction", err)
		return
	}

	writeJSON(w, http.StatusOK, toTransactionResponse(txn))
}

// handleDeleteTransaction deletes a transaction the caller owns.
func (a *API) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	if err := a.store.DeleteTransaction(r.Context(), r.PathValue("id"), user.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Transaction not found")
			return
		}
		writeInternalError(w, "delete transaction", err)
		return
	}

	slog.Info("Transaction deleted", "transaction_id", r.PathValue("id"), "user_id", user.ID)
	writeMessage(w, http.StatusOK, "Transaction deleted successfully")
}

func (a *API) categoryExists(r *http.Request, id string) (bool, error) {
	if id == "" {
		return false, nil
	}
	category, err := a.store.GetCategory(r.Context(), id)
	if err != nil {
		return false, err
	}
	return category != nil, nil
}

// validationMessage maps model validation errors to client messages.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrMissingCategory):
		return "Invalid category"
	case errors.Is(err, models.ErrInvalidAmount):
		return "Amount must be a positive decimal"
	case errors.Is(err, models.ErrMissingDescription):
		return "Description is required"
	case errors.Is(err, models.ErrDescriptionTooLong):
		return "Description cannot exceed 255 characters"
	default:
		return "Invalid transaction"
	}
}
