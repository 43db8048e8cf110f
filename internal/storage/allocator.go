package storage

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jdalisay/pitaka/internal/common"
	"github.com/jdalisay/pitaka/internal/model"
	"github.com/jdalisay/pitaka/internal/schema"
	"github.com/jdalisay/pitaka/internal/service"
)

// counterKeys maps an id prefix to its Config-table counter key.
var counterKeys = map[string]string{
	model.PrefixTransaction: "NEXT_TRANSACTION_ID",
	model.PrefixCard:        "NEXT_CARD_ID",
	model.PrefixGoal:        "NEXT_GOAL_ID",
	model.PrefixReminder:    "NEXT_REMINDER_ID",
}

// CounterAllocator issues prefix-scoped ids backed by counters in the
// Config table. Each call advances the counter exactly once; a consumed
// number is never reused, even when the caller fails afterwards. The
// counter read-then-write is not isolated against concurrent allocators.
type CounterAllocator struct {
	store       service.TabularStore
	configTable string
}

// NewCounterAllocator creates an allocator over the given Config table.
func NewCounterAllocator(store service.TabularStore, configTable string) *CounterAllocator {
	return &CounterAllocator{store: store, configTable: configTable}
}

// Next implements the Allocator interface.
func (a *CounterAllocator) Next(ctx context.Context, prefix string) (string, error) {
	counterKey, ok := counterKeys[prefix]
	if !ok {
		return "", fmt.Errorf("%w: %s", common.ErrUnknownPrefix, prefix)
	}

	t, err := a.store.ReadTable(ctx, a.configTable)
	if err != nil {
		return "", fmt.Errorf("failed to read config table: %w", err)
	}

	keyCol, valueCol := -1, -1
	for i, h := range t.Header {
		switch schema.Canonical(h) {
		case "KEY":
			keyCol = i
		case "VALUE":
			valueCol = i
		}
	}
	if keyCol < 0 || valueCol < 0 {
		return "", fmt.Errorf("%w: KEY/VALUE in table %s", common.ErrMissingColumn, a.configTable)
	}

	for i, row := range t.Rows {
		if keyCol >= len(row) {
			continue
		}
		if key, _ := row[keyCol].(string); key != counterKey {
			continue
		}
		n, err := counterValue(cellAt(row, valueCol))
		if err != nil {
			return "", fmt.Errorf("%w: counter %s: %v", common.ErrInvalidConfig, counterKey, err)
		}
		if n <= 0 {
			n = 1
		}
		updated := append([]any(nil), row...)
		for len(updated) <= valueCol {
			updated = append(updated, "")
		}
		updated[valueCol] = float64(n + 1)
		if err := a.store.UpdateRow(ctx, a.configTable, i, updated); err != nil {
			return "", fmt.Errorf("failed to advance counter %s: %w", counterKey, err)
		}
		return fmt.Sprintf("%s-%d", prefix, n), nil
	}

	// First allocation for this prefix: seed the counter row.
	row := make([]any, len(t.Header))
	for i := range row {
		row[i] = ""
	}
	row[keyCol] = counterKey
	row[valueCol] = float64(2)
	if err := a.store.AppendRow(ctx, a.configTable, row); err != nil {
		return "", fmt.Errorf("failed to seed counter %s: %w", counterKey, err)
	}
	return fmt.Sprintf("%s-1", prefix), nil
}

// counterValue reads a counter cell. An empty cell is an unset counter;
// anything non-numeric is an error rather than a silent restart, since a
// restarted sequence would collide with existing row ids.
func counterValue(raw any) (int, error) {
	switch v := raw.(type) {
	case nil:
		return 0, nil
	case float64:
		return int(v), nil
	case int:
		return v, nil
	case string:
		cleaned := strings.TrimSpace(strings.ReplaceAll(v, ",", ""))
		if cleaned == "" {
			return 0, nil
		}
		n, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", v)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("unsupported cell type %T", raw)
	}
}

func cellAt(row []any, i int) any {
	if i < 0 || i >= len(row) {
		return nil
	}
	return row[i]
}
