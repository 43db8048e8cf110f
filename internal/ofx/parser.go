// Package ofx parses OFX/QFX bank statements into transaction form input.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/jdalisay/pitaka/internal/model"
)

// Entry is one statement line ready to feed through the transaction
// protocol. Amount is a non-negative magnitude; Type carries the ledger
// direction derived from the statement sign.
type Entry struct {
	Date        string // YYYY-MM-DD
	Type        string // Income or Expense
	Description string
	Amount      float64
}

// Form renders the entry as transaction form input. Card statement
// entries carry the card id as the account and "Credit Card" as the
// payment method so the balance side effect fires on import.
func (e Entry) Form(cardID string) map[string]string {
	form := map[string]string{
		"DATE":        e.Date,
		"TYPE":        e.Type,
		"CATEGORY":    "Imported",
		"AMOUNT":      fmt.Sprintf("%.2f", e.Amount),
		"DESCRIPTION": e.Description,
	}
	if cardID != "" {
		form["ACCOUNT"] = cardID
		form["PAYMENTMETHOD"] = model.PaymentMethodCreditCard
	}
	return form
}

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// preprocess fixes common formatting issues in OFX files before handing
// them to ofxgo: leading whitespace, mixed-case SEVERITY values, and
// SGML-style tags missing their closing bracket.
func (p *Parser) preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	severityRegex := regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	tagFixRegex := regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	content = tagFixRegex.ReplaceAllString(content, "$1>")

	return content
}

// ParseFile parses an OFX/QFX statement and returns its entries.
func (p *Parser) ParseFile(_ context.Context, reader io.Reader) ([]Entry, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var entries []Entry
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			bankStmts++
			for _, tx := range stmt.BankTranList.Transactions {
				entries = append(entries, p.convert(tx))
			}
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			ccStmts++
			for _, tx := range stmt.BankTranList.Transactions {
				entries = append(entries, p.convert(tx))
			}
		}
	}

	slog.Info("Parsed OFX file",
		"entries", len(entries),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return entries, nil
}

// convert maps one OFX transaction onto a ledger entry. OFX amounts are
// negative for debits; the sign becomes the ledger type and the magnitude
// the amount.
func (p *Parser) convert(tx ofxgo.Transaction) Entry {
	amount, _ := tx.TrnAmt.Float64()
	entryType := model.TypeIncome
	if amount < 0 {
		amount = -amount
		entryType = model.TypeExpense
	}

	return Entry{
		Date:        tx.DtPosted.Time.Format("2006-01-02"),
		Type:        entryType,
		Amount:      amount,
		Description: p.description(tx),
	}
}

// description prefers the payee name, falling back to NAME and then MEMO.
func (p *Parser) description(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}
	name := strings.TrimSpace(string(tx.Name))
	if name == "" {
		name = strings.TrimSpace(string(tx.Memo))
	}
	return name
}
