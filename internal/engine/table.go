package engine

import (
	"context"
	"fmt"

	"github.com/jdalisay/pitaka/internal/schema"
	"github.com/jdalisay/pitaka/internal/service"
)

// tableView is a table read with its column positions and id index built
// once, replacing the per-lookup linear id scan.
type tableView struct {
	table *service.Table
	cols  map[string]int // canonical key -> column position
	index map[string]int // id -> data row index
}

func (e *Engine) viewTable(ctx context.Context, name string) (*tableView, error) {
	t, err := e.store.ReadTable(ctx, name)
	if err != nil {
		return nil, err
	}

	cols := make(map[string]int, len(t.Header))
	for i, h := range t.Header {
		key := schema.Canonical(h)
		if key == "" {
			continue
		}
		if _, ok := cols[key]; !ok {
			cols[key] = i
		}
	}

	v := &tableView{table: t, cols: cols, index: make(map[string]int)}
	if idCol, ok := cols["ID"]; ok {
		for i, row := range t.Rows {
			if idCol >= len(row) {
				continue
			}
			id, _ := row[idCol].(string)
			if id == "" {
				continue
			}
			if _, seen := v.index[id]; !seen {
				v.index[id] = i
			}
		}
	}
	return v, nil
}

// rowByID returns a copy of the row holding the given id.
func (v *tableView) rowByID(id string) ([]any, int, bool) {
	i, ok := v.index[id]
	if !ok {
		return nil, 0, false
	}
	return v.rowCopy(i), i, true
}

// rowCopy returns a copy of the row padded out to the header width, so
// cells can be addressed by column position.
func (v *tableView) rowCopy(i int) []any {
	row := append([]any(nil), v.table.Rows[i]...)
	for len(row) < len(v.table.Header) {
		row = append(row, "")
	}
	return row
}

// cell returns the raw value at the column with the given canonical key.
func (v *tableView) cell(row []any, key string) any {
	col, ok := v.cols[key]
	if !ok || col >= len(row) {
		return nil
	}
	return row[col]
}

// setCell writes a value into the column with the given canonical key.
func (v *tableView) setCell(row []any, key string, value any) error {
	col, ok := v.cols[key]
	if !ok {
		return fmt.Errorf("no %s column in table %s", key, v.table.Name)
	}
	row[col] = value
	return nil
}
