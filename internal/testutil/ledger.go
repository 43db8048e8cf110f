// Package testutil provides test fixtures for the ledger tables.
package testutil

import (
	"testing"

	"github.com/jdalisay/pitaka/internal/schema"
	"github.com/jdalisay/pitaka/internal/storage"
)

// SeedLedger creates an in-memory store with the standard tables, a few
// sample rows, and counters seeded high enough to not collide with the
// sample ids.
func SeedLedger(t *testing.T) (*storage.MemoryStore, schema.Tables) {
	t.Helper()

	store := storage.NewMemoryStore()
	tables := schema.DefaultTables()

	store.SeedTable(tables.Transactions, schema.Transactions().Headers(), [][]any{
		{"TR-1000", "2026-01-05", "Income", "Salary", 50000.0, "January salary", "Bank Transfer", "", ""},
		{"TR-1001", "2026-01-08", "Expense", "Groceries", 3500.0, "Weekly groceries", "Cash", "", ""},
	})
	store.SeedTable(tables.Cards, schema.CreditCards().Headers(), [][]any{
		{"CARD-2000", "Visa Platinum", 100000.0, 1000.0, 0.0, "", 24.0},
		{"CARD-2001", "Mastercard Gold", 50000.0, 0.0, 0.0, "", 30.0},
	})
	store.SeedTable(tables.Goals, schema.Goals().Headers(), [][]any{
		{"GOAL-3000", "Emergency Fund", 1000.0, 800.0, "High", "2026-12-31"},
	})
	store.SeedTable(tables.Reminders, schema.Reminders().Headers(), [][]any{
		{"REM-4000", "Electricity bill", "Utilities", 2500.0, "2026-01-31", "Yes", "GCash", "Pending", 26.0},
		{"REM-4001", "Internet", "Utilities", 1800.0, "2026-02-10", "No", "Bank Transfer", "Pending", 36.0},
	})
	store.SeedTable(tables.Config, schema.Config().Headers(), [][]any{
		{"NEXT_TRANSACTION_ID", 1002.0},
		{"NEXT_CARD_ID", 2002.0},
		{"NEXT_GOAL_ID", 3001.0},
		{"NEXT_REMINDER_ID", 4002.0},
	})

	return store, tables
}
