package engine

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jdalisay/pitaka/internal/common"
	"github.com/jdalisay/pitaka/internal/model"
	"github.com/jdalisay/pitaka/internal/schema"
	"github.com/jdalisay/pitaka/internal/service"
)

// MarkReminderPaid settles a bill reminder: it creates an Expense
// transaction from the reminder's fields (running the full transaction
// protocol, side effects included), marks the reminder Paid, and advances
// a recurring reminder's due date by one calendar month. Form values, when
// present, override the synthesized AMOUNT, DATE and PAYMENTMETHOD. All
// writes commit together.
func (e *Engine) MarkReminderPaid(ctx context.Context, reminderID string, form map[string]string) service.Result {
	v, err := e.viewTable(ctx, e.tables.Reminders)
	if err != nil {
		e.logger.Error("failed to load reminders", "error", err)
		return service.Errorf(err)
	}
	row, idx, ok := v.rowByID(reminderID)
	if !ok {
		err := fmt.Errorf("%w: reminder %s", common.ErrNotFound, reminderID)
		e.logger.Warn("reminder not found", "reminder_id", reminderID)
		return service.Errorf(err)
	}

	amount := schema.ParseNumber(v.cell(row, "AMOUNT"))
	category, _ := v.cell(row, "CATEGORY").(string)
	description, _ := v.cell(row, "DESCRIPTION").(string)
	channel, _ := v.cell(row, "PAYMENTCHANNEL").(string)
	recurring, _ := v.cell(row, "RECURRING").(string)

	txForm := map[string]string{
		"TYPE":          model.TypeExpense,
		"CATEGORY":      category,
		"AMOUNT":        strconv.FormatFloat(amount, 'f', -1, 64),
		"DESCRIPTION":   description,
		"PAYMENTMETHOD": channel,
		"RELATED_ID":    reminderID,
	}
	for _, key := range []string{"AMOUNT", "DATE", "PAYMENTMETHOD"} {
		if val := form[key]; val != "" {
			txForm[key] = val
		}
	}

	batch := newWriteBatch()
	txID, err := e.stageTransaction(ctx, batch, txForm)
	if err != nil {
		e.logger.Error("failed to create payment transaction", "reminder_id", reminderID, "error", err)
		return service.Errorf(err)
	}

	if err := v.setCell(row, "STATUS", model.StatusPaid); err != nil {
		return service.Errorf(err)
	}
	if recurring == model.RecurringYes {
		due := schema.DecodeCell("DUEDATE", v.cell(row, "DUEDATE"))
		dueStr, _ := due.(string)
		if next, ok := nextDueDate(dueStr); ok {
			if err := v.setCell(row, "DUEDATE", next); err != nil {
				return service.Errorf(err)
			}
		} else {
			e.logger.Warn("could not advance due date", "reminder_id", reminderID, "due_date", dueStr)
		}
	}
	batch.updateRow(e.tables.Reminders, idx, row)

	if err := e.commit(ctx, batch); err != nil {
		e.logger.Error("failed to commit reminder payment", "reminder_id", reminderID, "error", err)
		return service.Errorf(err)
	}
	e.logger.Info("reminder paid", "reminder_id", reminderID, "transaction_id", txID)
	return service.OK(fmt.Sprintf("Reminder %s marked as paid", reminderID))
}

// nextDueDate advances a due date by exactly one calendar month, with
// standard calendar rollover for month-end overflow.
func nextDueDate(due string) (string, bool) {
	d, err := parseDate(due)
	if err != nil {
		return "", false
	}
	return d.AddDate(0, 1, 0).Format("2006-01-02"), true
}

// parseDate accepts the ISO form the decoder emits plus the locale form
// the recalculation job writes.
func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "1/2/2006"} {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date: %q", s)
}
