package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jdalisay/pitaka/internal/common"
	"github.com/jdalisay/pitaka/internal/model"
	"github.com/jdalisay/pitaka/internal/schema"
	"github.com/jdalisay/pitaka/internal/service"
)

// AddRecord appends a row with a freshly allocated id to any entity table.
// Writes to the transaction table delegate to the full transaction
// protocol so side effects still fire.
func (e *Engine) AddRecord(ctx context.Context, tableName string, form map[string]string, prefix string) service.Result {
	if tableName == e.tables.Transactions {
		return e.AddTransaction(ctx, form)
	}

	t, err := e.store.ReadTable(ctx, tableName)
	if err != nil {
		e.logger.Error("failed to read table", "table", tableName, "error", err)
		return service.Errorf(err)
	}
	if s := e.tables.SchemaFor(tableName); s != nil {
		if err := s.Validate(t.Header); err != nil {
			return service.Errorf(err)
		}
	}

	id, err := e.alloc.Next(ctx, prefix)
	if err != nil {
		e.logger.Error("failed to allocate id", "prefix", prefix, "error", err)
		return service.Errorf(err)
	}

	rec := make(map[string]any, len(form)+2)
	for k, v := range form {
		rec[schema.Canonical(k)] = v
	}
	rec["ID"] = id
	if tableName == e.tables.Reminders {
		e.fillReminderDefaults(rec)
	}

	if err := e.store.AppendRow(ctx, tableName, schema.EncodeByHeader(t.Header, rec)); err != nil {
		e.logger.Error("failed to append record", "table", tableName, "id", id, "error", err)
		return service.Errorf(err)
	}
	e.logger.Info("record added", "table", tableName, "id", id)
	return service.OK(fmt.Sprintf("Record %s added successfully", id))
}

// fillReminderDefaults derives the creation-time-only reminder fields:
// Pending status and the days-left count from the due date. Neither is
// ever recomputed after creation.
func (e *Engine) fillReminderDefaults(rec map[string]any) {
	if _, ok := rec["STATUS"]; !ok {
		rec["STATUS"] = model.StatusPending
	}
	if _, ok := rec["DAYSLEFT"]; ok {
		return
	}
	dueStr, _ := rec["DUEDATE"].(string)
	due, err := parseDate(dueStr)
	if err != nil {
		return
	}
	now := e.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	rec["DAYSLEFT"] = math.Round(due.Sub(today).Hours() / 24)
}

// UpdateRecordByID rewrites the columns of partial onto the row holding
// the given id, re-parsing numeric fields. It reports false when the id
// does not resolve.
func (e *Engine) UpdateRecordByID(ctx context.Context, tableName, id string, partial map[string]string) (bool, error) {
	v, err := e.viewTable(ctx, tableName)
	if err != nil {
		if errors.Is(err, common.ErrTableNotFound) {
			return false, err
		}
		return false, fmt.Errorf("failed to read table %s: %w", tableName, err)
	}

	row, idx, ok := v.rowByID(id)
	if !ok {
		return false, nil
	}

	for key, val := range partial {
		canonical := schema.Canonical(key)
		col, known := v.cols[canonical]
		if !known {
			continue
		}
		if schema.IsNumericKey(canonical) {
			row[col] = schema.ParseNumber(val)
		} else {
			row[col] = val
		}
	}

	if err := e.store.UpdateRow(ctx, tableName, idx, row); err != nil {
		return false, fmt.Errorf("failed to update %s in %s: %w", id, tableName, err)
	}
	e.logger.Info("record updated", "table", tableName, "id", id)
	return true, nil
}
