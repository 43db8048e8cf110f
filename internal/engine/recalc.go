package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/jdalisay/pitaka/internal/common"
	"github.com/jdalisay/pitaka/internal/model"
	"github.com/jdalisay/pitaka/internal/schema"
)

// cardCalc accumulates the recomputed state for one card during a
// recalculation scan.
type cardCalc struct {
	lastPaymentDate time.Time
	balance         float64
	lastPayment     float64
	hasPayment      bool
}

// Recalculate rebuilds every credit card's derived fields from the full
// transaction log, reconciling any drift left by the incremental side
// effects. The card table must carry BALANCE, LASTPAYMENT and
// LASTPAYMENTDATE columns or the job fails before writing anything; on
// success every card row is rewritten in one bulk write.
func (e *Engine) Recalculate(ctx context.Context) error {
	cards, err := e.viewTable(ctx, e.tables.Cards)
	if err != nil {
		return fmt.Errorf("failed to load credit cards: %w", err)
	}
	for _, required := range []string{"BALANCE", "LASTPAYMENT", "LASTPAYMENTDATE"} {
		if _, ok := cards.cols[required]; !ok {
			return fmt.Errorf("%w: %s in table %s", common.ErrMissingColumn, required, e.tables.Cards)
		}
	}

	calcs := make(map[string]*cardCalc, len(cards.table.Rows))
	for id := range cards.index {
		calcs[id] = &cardCalc{}
	}

	txnTable, err := e.store.ReadTable(ctx, e.tables.Transactions)
	if err != nil {
		return fmt.Errorf("failed to read transactions: %w", err)
	}
	records := schema.DecodeTable(txnTable)

	bar := progressbar.DefaultSilent(int64(len(records)))
	if e.showProgress {
		bar = progressbar.Default(int64(len(records)), "recalculating balances")
	}
	for _, rec := range records {
		_ = bar.Add(1)
		txn := model.TransactionFromRecord(rec)
		calc, ok := calcs[txn.Account]
		if !ok {
			continue
		}
		if txn.Type == model.TypeExpense {
			calc.balance += txn.Amount
		}
		if txn.Category == model.CategoryCreditCardPayment {
			calc.balance -= txn.Amount
			// Strictly more recent wins; a tie keeps the first seen.
			if date, err := parseDate(txn.Date); err == nil {
				if !calc.hasPayment || date.After(calc.lastPaymentDate) {
					calc.lastPayment = txn.Amount
					calc.lastPaymentDate = date
					calc.hasPayment = true
				}
			} else if !calc.hasPayment {
				calc.lastPayment = txn.Amount
				calc.hasPayment = true
			}
		}
	}
	_ = bar.Finish()

	rows := make([][]any, len(cards.table.Rows))
	for i := range cards.table.Rows {
		row := cards.rowCopy(i)
		id, _ := row[cards.cols["ID"]].(string)
		calc, ok := calcs[id]
		if !ok {
			calc = &cardCalc{}
		}
		row[cards.cols["BALANCE"]] = calc.balance
		row[cards.cols["LASTPAYMENT"]] = calc.lastPayment
		if calc.hasPayment && !calc.lastPaymentDate.IsZero() {
			row[cards.cols["LASTPAYMENTDATE"]] = calc.lastPaymentDate.Format("1/2/2006")
		} else {
			row[cards.cols["LASTPAYMENTDATE"]] = ""
		}
		rows[i] = row
	}

	if err := e.store.UpdateRows(ctx, e.tables.Cards, 0, rows); err != nil {
		return fmt.Errorf("failed to write recalculated balances: %w", err)
	}
	e.logger.Info("recalculation complete", "cards", len(rows), "transactions", len(records))
	return nil
}
