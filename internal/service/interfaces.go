// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"
)

// Table is a named, header-described, row-oriented dataset read from the
// tabular store. Rows hold raw cell values: string, float64, bool, or
// time.Time for date-formatted cells.
type Table struct {
	Name   string
	Header []string
	Rows   [][]any
}

// TabularStore defines the contract for the spreadsheet-style persistence
// layer. Implementations are injected, never captured from ambient state.
// Row indexes are zero-based over data rows (the header is not counted).
type TabularStore interface {
	ReadTable(ctx context.Context, name string) (*Table, error)
	AppendRow(ctx context.Context, name string, row []any) error
	UpdateRow(ctx context.Context, name string, rowIndex int, row []any) error
	UpdateRows(ctx context.Context, name string, startRow int, rows [][]any) error
	Close() error
}

// Allocator issues monotonically increasing, prefix-scoped unique ids.
// Counters advance exactly once per call and are never reused, even when
// the caller fails after allocation.
type Allocator interface {
	Next(ctx context.Context, prefix string) (string, error)
}

// Result is the outcome of a write entry point, returned across the call
// boundary instead of an error.
type Result struct {
	Status  string
	Message string
}

// Result statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// OK builds a success result.
func OK(message string) Result {
	return Result{Status: StatusSuccess, Message: message}
}

// Errorf builds an error result from a failure.
func Errorf(err error) Result {
	return Result{Status: StatusError, Message: err.Error()}
}

// RetryOptions configures retry behavior for store operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
