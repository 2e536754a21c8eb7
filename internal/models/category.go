package models

// Category labels a transaction as a kind of income or expense.
// Categories are shared across all users and seeded by migrations;
// the API never writes them.
type Category struct {
	// ID is a stable slug (e.g. "groceries").
	ID string `json:"id"`

	// Name is the display name (e.g. "Groceries").
	Name string `json:"name"`

	// Type is a free-form label, by convention "income" or "expense".
	// Sign conventions ride on the type, not on the amount.
	Type string `json:"type"`
}
