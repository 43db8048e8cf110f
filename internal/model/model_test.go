package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreditCardUsage(t *testing.T) {
	assert.Equal(t, 0.25, CreditCard{Limit: 100000, Balance: 25000}.Usage())
	assert.Equal(t, 0.0, CreditCard{Limit: 0, Balance: 5000}.Usage())
	assert.Equal(t, 0.0, CreditCard{Limit: -1, Balance: 5000}.Usage())
}

func TestGoalProgress(t *testing.T) {
	assert.Equal(t, 0.8, Goal{TargetAmount: 1000, SavedAmount: 800}.Progress())
	assert.Equal(t, 0.0, Goal{TargetAmount: 0, SavedAmount: 800}.Progress())

	// Over-saving is not clamped.
	assert.Equal(t, 1.5, Goal{TargetAmount: 1000, SavedAmount: 1500}.Progress())
}

func TestTransactionFromRecord(t *testing.T) {
	txn := TransactionFromRecord(map[string]any{
		"ID":            "TR-55",
		"DATE":          "2026-02-14",
		"TYPE":          TypeExpense,
		"CATEGORY":      "Dining",
		"AMOUNT":        850.0,
		"DESCRIPTION":   "Dinner out",
		"PAYMENTMETHOD": PaymentMethodCreditCard,
		"ACCOUNT":       "CARD-2000",
		"RELATEDID":     nil,
	})

	assert.Equal(t, "TR-55", txn.ID)
	assert.Equal(t, 850.0, txn.Amount)
	assert.Equal(t, "CARD-2000", txn.Account)
	assert.Equal(t, "", txn.RelatedID)
}

func TestReminderFromRecord(t *testing.T) {
	rem := ReminderFromRecord(map[string]any{
		"ID":       "REM-9",
		"AMOUNT":   2500.0,
		"DUEDATE":  "2026-01-31",
		"STATUS":   StatusPending,
		"DAYSLEFT": 26.0,
	})

	assert.Equal(t, "REM-9", rem.ID)
	assert.Equal(t, StatusPending, rem.Status)
	assert.Equal(t, 26.0, rem.DaysLeft)
}
