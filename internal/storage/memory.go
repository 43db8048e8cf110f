// Package storage provides TabularStore implementations: a SQLite-backed
// local store and an in-memory fake for tests.
package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/jdalisay/pitaka/internal/common"
	"github.com/jdalisay/pitaka/internal/service"
)

type memTable struct {
	header []string
	rows   [][]any
}

// MemoryStore is an in-memory TabularStore used for tests and dry runs.
type MemoryStore struct {
	tables map[string]*memTable
	mu     sync.RWMutex
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tables: make(map[string]*memTable)}
}

// SeedTable creates or replaces a table with the given header and rows.
func (m *MemoryStore) SeedTable(name string, header []string, rows [][]any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make([][]any, len(rows))
	for i, row := range rows {
		copied[i] = append([]any(nil), row...)
	}
	m.tables[name] = &memTable{
		header: append([]string(nil), header...),
		rows:   copied,
	}
}

// ReadTable implements the TabularStore interface.
func (m *MemoryStore) ReadTable(_ context.Context, name string) (*service.Table, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", common.ErrTableNotFound, name)
	}

	rows := make([][]any, len(t.rows))
	for i, row := range t.rows {
		rows[i] = append([]any(nil), row...)
	}
	return &service.Table{
		Name:   name,
		Header: append([]string(nil), t.header...),
		Rows:   rows,
	}, nil
}

// AppendRow implements the TabularStore interface.
func (m *MemoryStore) AppendRow(_ context.Context, name string, row []any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tables[name]
	if !ok {
		return fmt.Errorf("%w: %s", common.ErrTableNotFound, name)
	}
	t.rows = append(t.rows, append([]any(nil), row...))
	return nil
}

// UpdateRow implements the TabularStore interface.
func (m *MemoryStore) UpdateRow(_ context.Context, name string, rowIndex int, row []any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tables[name]
	if !ok {
		return fmt.Errorf("%w: %s", common.ErrTableNotFound, name)
	}
	if rowIndex < 0 || rowIndex >= len(t.rows) {
		return fmt.Errorf("row %d out of range for table %s", rowIndex, name)
	}
	t.rows[rowIndex] = append([]any(nil), row...)
	return nil
}

// UpdateRows implements the TabularStore interface.
func (m *MemoryStore) UpdateRows(_ context.Context, name string, startRow int, rows [][]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tables[name]
	if !ok {
		return fmt.Errorf("%w: %s", common.ErrTableNotFound, name)
	}
	if startRow < 0 || startRow+len(rows) > len(t.rows) {
		return fmt.Errorf("rows %d..%d out of range for table %s", startRow, startRow+len(rows)-1, name)
	}
	for i, row := range rows {
		t.rows[startRow+i] = append([]any(nil), row...)
	}
	return nil
}

// Close implements the TabularStore interface.
func (m *MemoryStore) Close() error {
	return nil
}
