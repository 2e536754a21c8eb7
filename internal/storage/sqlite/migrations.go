package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database.
// These run on startup to ensure tables exist.
// IMPORTANT: users and categories must be created BEFORE transactions
// due to foreign key constraints.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS categories (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    type TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    category_id TEXT NOT NULL,
    amount_cents INTEGER NOT NULL,
    description TEXT NOT NULL,
    transaction_date INTEGER NOT NULL,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
    FOREIGN KEY (category_id) REFERENCES categories(id)
);

CREATE TABLE IF NOT EXISTS sessions (
    token TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    expires_at INTEGER NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_transactions_user_id ON transactions(user_id);
CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON sessions(user_id);
`

// seedCategories inserts the fixed category set. INSERT OR IGNORE
// keeps restarts idempotent; the API never writes categories.
const seedCategories = `
INSERT OR IGNORE INTO categories (id, name, type) VALUES
    ('salary', 'Salary', 'income'),
    ('freelance', 'Freelance', 'income'),
    ('investments', 'Investments', 'income'),
    ('groceries', 'Groceries', 'expense'),
    ('rent', 'Rent', 'expense'),
    ('transport', 'Transport', 'expense'),
    ('entertainment', 'Entertainment', 'expense'),
    ('utilities', 'Utilities', 'expense'),
    ('health', 'Health', 'expense'),
    ('other', 'Other', 'expense');
`

// runMigrations executes the schema setup and category seed.
func runMigrations(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return err
	}
	_, err := db.Exec(seedCategories)
	return err
}
