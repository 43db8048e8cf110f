// Package engine implements the cross-entity update protocol: transaction
// creation with its credit-card and savings-goal side effects, reminder
// settlement, generic record writes, and the batch balance recalculation.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jdalisay/pitaka/internal/schema"
	"github.com/jdalisay/pitaka/internal/service"
)

// Engine orchestrates multi-step relational updates against the store.
type Engine struct {
	store        service.TabularStore
	alloc        service.Allocator
	logger       *slog.Logger
	now          func() time.Time
	tables       schema.Tables
	showProgress bool
}

// New creates an engine over the given store and id allocator.
func New(store service.TabularStore, alloc service.Allocator, tables schema.Tables, logger *slog.Logger) *Engine {
	return &Engine{
		store:  store,
		alloc:  alloc,
		tables: tables,
		logger: logger,
		now:    time.Now,
	}
}

// WithProgress enables terminal progress bars during long-running jobs.
func (e *Engine) WithProgress() *Engine {
	e.showProgress = true
	return e
}

// storeOp is one queued store write.
type storeOp struct {
	table    string
	row      []any
	rowIndex int
	isUpdate bool
}

// writeBatch queues store writes so a multi-step update commits all of its
// effects together. A failure while staging leaves the store untouched;
// only id counters, which advance at allocation time, are spent.
type writeBatch struct {
	ops []storeOp
}

func newWriteBatch() *writeBatch {
	return &writeBatch{}
}

func (b *writeBatch) appendRow(table string, row []any) {
	b.ops = append(b.ops, storeOp{table: table, row: row, rowIndex: -1})
}

func (b *writeBatch) updateRow(table string, rowIndex int, row []any) {
	b.ops = append(b.ops, storeOp{table: table, row: row, rowIndex: rowIndex, isUpdate: true})
}

// commit replays the queued writes in order. Updates address pre-batch row
// indexes, and appends only ever extend a table, so replay order cannot
// shift a queued target.
func (e *Engine) commit(ctx context.Context, b *writeBatch) error {
	for _, op := range b.ops {
		var err error
		if op.isUpdate {
			err = e.store.UpdateRow(ctx, op.table, op.rowIndex, op.row)
		} else {
			err = e.store.AppendRow(ctx, op.table, op.row)
		}
		if err != nil {
			return fmt.Errorf("failed to commit write to %s: %w", op.table, err)
		}
	}
	return nil
}
