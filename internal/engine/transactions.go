package engine

import (
	"context"
	"fmt"

	"github.com/jdalisay/pitaka/internal/model"
	"github.com/jdalisay/pitaka/internal/schema"
	"github.com/jdalisay/pitaka/internal/service"
)

// AddTransaction creates a transaction from form input and applies its
// side effects: a "Credit Card" payment method adjusts the referenced
// card's balance, and a "Savings Deposit" category advances the referenced
// goal. Both effects are independent and may fire for the same
// transaction. All writes commit together; a failure anywhere leaves the
// store unchanged and surfaces as an error result.
func (e *Engine) AddTransaction(ctx context.Context, form map[string]string) service.Result {
	batch := newWriteBatch()
	id, err := e.stageTransaction(ctx, batch, form)
	if err != nil {
		e.logger.Error("failed to add transaction", "error", err)
		return service.Errorf(err)
	}
	if err := e.commit(ctx, batch); err != nil {
		e.logger.Error("failed to commit transaction", "id", id, "error", err)
		return service.Errorf(err)
	}
	e.logger.Info("transaction added", "id", id)
	return service.OK(fmt.Sprintf("Transaction %s added successfully", id))
}

// stageTransaction allocates an id, stages the transaction row and any
// side-effect updates into the batch, and returns the new id. Shared by
// AddTransaction and reminder settlement.
func (e *Engine) stageTransaction(ctx context.Context, batch *writeBatch, form map[string]string) (string, error) {
	t, err := e.store.ReadTable(ctx, e.tables.Transactions)
	if err != nil {
		return "", fmt.Errorf("failed to read transactions: %w", err)
	}
	if err := schema.Transactions().Validate(t.Header); err != nil {
		return "", err
	}

	id, err := e.alloc.Next(ctx, model.PrefixTransaction)
	if err != nil {
		return "", fmt.Errorf("failed to allocate transaction id: %w", err)
	}

	date := form["DATE"]
	if date == "" {
		date = e.now().Format("2006-01-02")
	}
	amount := schema.ParseNumber(form["AMOUNT"])
	relatedID := form["RELATED_ID"]
	if relatedID == "" {
		relatedID = form["RELATEDID"]
	}

	rec := map[string]any{
		"ID":            id,
		"DATE":          date,
		"TYPE":          form["TYPE"],
		"CATEGORY":      form["CATEGORY"],
		"AMOUNT":        amount,
		"DESCRIPTION":   form["DESCRIPTION"],
		"PAYMENTMETHOD": form["PAYMENTMETHOD"],
		"ACCOUNT":       form["ACCOUNT"],
		"RELATEDID":     relatedID,
	}
	// Encode against the live header so a reordered transactions table
	// still gets its cells in the right columns.
	batch.appendRow(e.tables.Transactions, schema.EncodeByHeader(t.Header, rec))

	if form["PAYMENTMETHOD"] == model.PaymentMethodCreditCard && form["ACCOUNT"] != "" {
		if err := e.stageCardEffect(ctx, batch, form["ACCOUNT"], amount, form["TYPE"], form["CATEGORY"]); err != nil {
			return "", err
		}
	}
	if form["CATEGORY"] == model.CategorySavingsDeposit && relatedID != "" {
		if err := e.stageGoalEffect(ctx, batch, relatedID, amount); err != nil {
			return "", err
		}
	}
	return id, nil
}

// stageCardEffect adjusts the referenced card: an Expense grows the
// balance, an Income shrinks it, and a "Credit Card Payment" also records
// the payment amount and date. A card id that does not resolve is a
// silent no-op.
func (e *Engine) stageCardEffect(ctx context.Context, batch *writeBatch, cardID string, amount float64, txType, category string) error {
	v, err := e.viewTable(ctx, e.tables.Cards)
	if err != nil {
		return fmt.Errorf("failed to load credit cards: %w", err)
	}
	row, idx, ok := v.rowByID(cardID)
	if !ok {
		e.logger.Debug("card side effect skipped, id not found", "card_id", cardID)
		return nil
	}

	balance := schema.ParseNumber(v.cell(row, "BALANCE"))
	switch txType {
	case model.TypeExpense:
		balance += amount
	case model.TypeIncome:
		balance -= amount
	}
	if err := v.setCell(row, "BALANCE", balance); err != nil {
		return err
	}

	if category == model.CategoryCreditCardPayment {
		if err := v.setCell(row, "LASTPAYMENT", amount); err != nil {
			return err
		}
		if err := v.setCell(row, "LASTPAYMENTDATE", e.now().Format("2006-01-02")); err != nil {
			return err
		}
	}

	batch.updateRow(e.tables.Cards, idx, row)
	return nil
}

// stageGoalEffect adds the deposit amount to the referenced goal's saved
// total. A goal id that does not resolve is a silent no-op.
func (e *Engine) stageGoalEffect(ctx context.Context, batch *writeBatch, goalID string, amount float64) error {
	v, err := e.viewTable(ctx, e.tables.Goals)
	if err != nil {
		return fmt.Errorf("failed to load savings goals: %w", err)
	}
	row, idx, ok := v.rowByID(goalID)
	if !ok {
		e.logger.Debug("goal side effect skipped, id not found", "goal_id", goalID)
		return nil
	}

	saved := schema.ParseNumber(v.cell(row, "SAVEDAMOUNT")) + amount
	if err := v.setCell(row, "SAVEDAMOUNT", saved); err != nil {
		return err
	}

	batch.updateRow(e.tables.Goals, idx, row)
	return nil
}
