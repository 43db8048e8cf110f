package schema

import (
	"fmt"

	"github.com/jdalisay/pitaka/internal/common"
	"github.com/jdalisay/pitaka/internal/model"
)

// FieldType is the semantic type of a column.
type FieldType int

// Field types.
const (
	TypeString FieldType = iota
	TypeNumber
	TypeDate
)

// Column describes one table column: its canonical key, semantic type, and
// the header cell it is stored under.
type Column struct {
	Key    string
	Header string
	Type   FieldType
}

// TableSchema is the ordered column descriptor list for one table,
// validated once before use instead of matched ad hoc per cell.
type TableSchema struct {
	Name     string
	IDPrefix string
	Columns  []Column
}

// Headers returns the storage header row in column order.
func (s *TableSchema) Headers() []string {
	headers := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		headers[i] = c.Header
	}
	return headers
}

// Validate checks that every schema column is present in the given header
// row, comparing canonical forms.
func (s *TableSchema) Validate(header []string) error {
	present := make(map[string]struct{}, len(header))
	for _, h := range header {
		present[Canonical(h)] = struct{}{}
	}
	for _, c := range s.Columns {
		if _, ok := present[c.Key]; !ok {
			return fmt.Errorf("%w: %s in table %s", common.ErrMissingColumn, c.Key, s.Name)
		}
	}
	return nil
}

// Transactions is the transaction log schema.
func Transactions() *TableSchema {
	return &TableSchema{
		Name:     "Transactions",
		IDPrefix: model.PrefixTransaction,
		Columns: []Column{
			{Key: "ID", Header: "ID", Type: TypeString},
			{Key: "DATE", Header: "Date", Type: TypeDate},
			{Key: "TYPE", Header: "Type", Type: TypeString},
			{Key: "CATEGORY", Header: "Category", Type: TypeString},
			{Key: "AMOUNT", Header: "Amount (₱)", Type: TypeNumber},
			{Key: "DESCRIPTION", Header: "Description", Type: TypeString},
			{Key: "PAYMENTMETHOD", Header: "Payment Method", Type: TypeString},
			{Key: "ACCOUNT", Header: "Account", Type: TypeString},
			{Key: "RELATEDID", Header: "Related ID", Type: TypeString},
		},
	}
}

// CreditCards is the credit card account schema.
func CreditCards() *TableSchema {
	return &TableSchema{
		Name:     "Credit Cards",
		IDPrefix: model.PrefixCard,
		Columns: []Column{
			{Key: "ID", Header: "ID", Type: TypeString},
			{Key: "NAME", Header: "Name", Type: TypeString},
			{Key: "LIMIT", Header: "Limit (₱)", Type: TypeNumber},
			{Key: "BALANCE", Header: "Balance (₱)", Type: TypeNumber},
			{Key: "LASTPAYMENT", Header: "Last Payment (₱)", Type: TypeNumber},
			{Key: "LASTPAYMENTDATE", Header: "Last Payment Date", Type: TypeDate},
			{Key: "APR", Header: "APR (%)", Type: TypeNumber},
		},
	}
}

// Goals is the savings goal schema.
func Goals() *TableSchema {
	return &TableSchema{
		Name:     "Savings Goals",
		IDPrefix: model.PrefixGoal,
		Columns: []Column{
			{Key: "ID", Header: "ID", Type: TypeString},
			{Key: "NAME", Header: "Name", Type: TypeString},
			{Key: "TARGETAMOUNT", Header: "Target Amount (₱)", Type: TypeNumber},
			{Key: "SAVEDAMOUNT", Header: "Saved Amount (₱)", Type: TypeNumber},
			{Key: "PRIORITYLEVEL", Header: "Priority Level", Type: TypeString},
			{Key: "TARGETDATE", Header: "Target Date", Type: TypeDate},
		},
	}
}

// Reminders is the bill reminder schema.
func Reminders() *TableSchema {
	return &TableSchema{
		Name:     "Bill Reminders",
		IDPrefix: model.PrefixReminder,
		Columns: []Column{
			{Key: "ID", Header: "ID", Type: TypeString},
			{Key: "DESCRIPTION", Header: "Description", Type: TypeString},
			{Key: "CATEGORY", Header: "Category", Type: TypeString},
			{Key: "AMOUNT", Header: "Amount (₱)", Type: TypeNumber},
			{Key: "DUEDATE", Header: "Due Date", Type: TypeDate},
			{Key: "RECURRING", Header: "Recurring", Type: TypeString},
			{Key: "PAYMENTCHANNEL", Header: "Payment Channel", Type: TypeString},
			{Key: "STATUS", Header: "Status", Type: TypeString},
			{Key: "DAYSLEFT", Header: "Days Left", Type: TypeNumber},
		},
	}
}

// Config is the key/value table holding the next-id counters.
func Config() *TableSchema {
	return &TableSchema{
		Name: "Config",
		Columns: []Column{
			{Key: "KEY", Header: "Key", Type: TypeString},
			{Key: "VALUE", Header: "Value", Type: TypeString},
		},
	}
}

// Tables binds the configured table names to their schema descriptors.
type Tables struct {
	Transactions string
	Cards        string
	Goals        string
	Reminders    string
	Config       string
}

// DefaultTables returns the standard table names.
func DefaultTables() Tables {
	return Tables{
		Transactions: "Transactions",
		Cards:        "Credit Cards",
		Goals:        "Savings Goals",
		Reminders:    "Bill Reminders",
		Config:       "Config",
	}
}

// SchemaFor returns the descriptor for a configured table name, or nil for
// tables the application has no declared schema for.
func (t Tables) SchemaFor(name string) *TableSchema {
	switch name {
	case t.Transactions:
		return Transactions()
	case t.Cards:
		return CreditCards()
	case t.Goals:
		return Goals()
	case t.Reminders:
		return Reminders()
	case t.Config:
		return Config()
	default:
		return nil
	}
}
