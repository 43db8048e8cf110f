// Package model defines the core domain types persisted in the tabular store.
package model

// Transaction types.
const (
	TypeIncome  = "Income"
	TypeExpense = "Expense"
)

// Special category and payment-method values recognized by the update protocol.
const (
	CategorySavingsDeposit    = "Savings Deposit"
	CategoryCreditCardPayment = "Credit Card Payment"
	CategoryBillPayment       = "Bill Payment"
	PaymentMethodCreditCard   = "Credit Card"
)

// Id prefixes, one per entity table.
const (
	PrefixTransaction = "TR"
	PrefixCard        = "CARD"
	PrefixGoal        = "GOAL"
	PrefixReminder    = "REM"
)

// Transaction represents a single ledger entry. Amount is a non-negative
// magnitude; the sign is implied by Type and Category. Transactions are
// immutable once created.
type Transaction struct {
	ID            string
	Date          string // YYYY-MM-DD as stored
	Type          string
	Category      string
	Description   string
	PaymentMethod string
	Account       string // optional credit card reference
	RelatedID     string // optional goal or reminder reference
	Amount        float64
}

// TransactionFromRecord builds a Transaction from a decoded row.
func TransactionFromRecord(r map[string]any) Transaction {
	return Transaction{
		ID:            fieldStr(r, "ID"),
		Date:          fieldStr(r, "DATE"),
		Type:          fieldStr(r, "TYPE"),
		Category:      fieldStr(r, "CATEGORY"),
		Amount:        fieldNum(r, "AMOUNT"),
		Description:   fieldStr(r, "DESCRIPTION"),
		PaymentMethod: fieldStr(r, "PAYMENTMETHOD"),
		Account:       fieldStr(r, "ACCOUNT"),
		RelatedID:     fieldStr(r, "RELATEDID"),
	}
}
