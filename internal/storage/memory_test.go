package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdalisay/pitaka/internal/common"
)

func TestMemoryStoreReadIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.SeedTable("Cards", []string{"ID", "Balance (₱)"}, [][]any{
		{"CARD-1", 100.0},
	})

	got, err := store.ReadTable(ctx, "Cards")
	require.NoError(t, err)

	// Mutating the returned snapshot must not leak into the store.
	got.Rows[0][1] = 999.0
	got.Header[0] = "mutated"

	again, err := store.ReadTable(ctx, "Cards")
	require.NoError(t, err)
	assert.Equal(t, 100.0, again.Rows[0][1])
	assert.Equal(t, "ID", again.Header[0])
}

func TestMemoryStoreAppendAndUpdate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.SeedTable("Goals", []string{"ID", "Saved Amount (₱)"}, nil)

	require.NoError(t, store.AppendRow(ctx, "Goals", []any{"GOAL-1", 500.0}))
	require.NoError(t, store.AppendRow(ctx, "Goals", []any{"GOAL-2", 0.0}))
	require.NoError(t, store.UpdateRow(ctx, "Goals", 1, []any{"GOAL-2", 250.0}))

	got, err := store.ReadTable(ctx, "Goals")
	require.NoError(t, err)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, 250.0, got.Rows[1][1])
}

func TestMemoryStoreUpdateRows(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.SeedTable("Cards", []string{"ID", "Balance (₱)"}, [][]any{
		{"CARD-1", 1.0},
		{"CARD-2", 2.0},
		{"CARD-3", 3.0},
	})

	err := store.UpdateRows(ctx, "Cards", 1, [][]any{
		{"CARD-2", 20.0},
		{"CARD-3", 30.0},
	})
	require.NoError(t, err)

	got, err := store.ReadTable(ctx, "Cards")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.Rows[0][1])
	assert.Equal(t, 20.0, got.Rows[1][1])
	assert.Equal(t, 30.0, got.Rows[2][1])

	// A block running past the end is rejected whole.
	err = store.UpdateRows(ctx, "Cards", 2, [][]any{{"CARD-3", 0.0}, {"CARD-4", 0.0}})
	assert.Error(t, err)
}

func TestMemoryStoreErrors(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.ReadTable(ctx, "Nope")
	assert.ErrorIs(t, err, common.ErrTableNotFound)

	assert.ErrorIs(t, store.AppendRow(ctx, "Nope", []any{"x"}), common.ErrTableNotFound)

	store.SeedTable("T", []string{"ID"}, [][]any{{"a"}})
	assert.Error(t, store.UpdateRow(ctx, "T", 5, []any{"b"}))
	assert.Error(t, store.UpdateRow(ctx, "T", -1, []any{"b"}))
}
