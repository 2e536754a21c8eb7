// Package models defines the core domain models for the expense tracker.
//
// # Models
//
//   - User: a registered account; owns transactions
//   - Category: a shared transaction label (e.g. Groceries, Salary)
//   - Transaction: a single income or expense entry owned by one user
//   - Session: server-side login state bound to an opaque cookie token
//   - Money: a cent-precise amount with decimal JSON encoding
//
// # Design Principles
//
// 1. **Ownership lives in the data**: every Transaction carries the
// owning user's ID, and stores filter on it in their SQL predicates
// rather than trusting the caller.
//
// 2. **No secrets in output**: PasswordHash never appears in JSON; the
// API serializes PublicUser instead.
package models
