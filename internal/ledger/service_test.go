package ledger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdalisay/pitaka/internal/model"
	"github.com/jdalisay/pitaka/internal/schema"
	"github.com/jdalisay/pitaka/internal/storage"
	"github.com/jdalisay/pitaka/internal/testutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDashboardFromStore(t *testing.T) {
	ctx := context.Background()
	store, tables := testutil.SeedLedger(t)
	svc := NewService(store, tables, testLogger())

	d := svc.Dashboard(ctx)
	require.NotNil(t, d)
	assert.Empty(t, d.Notice)

	assert.Equal(t, 50000.0, d.TotalIncome)
	assert.Equal(t, 3500.0, d.TotalExpenses)
	assert.Equal(t, 46500.0, d.NetIncome)
	assert.Equal(t, msgAhead, d.MotivationalMessage)

	// No seeded transaction references a card, so stored balances stand.
	require.Len(t, d.Cards, 2)
	assert.Equal(t, 1000.0, d.TotalCardBalance)
	assert.Equal(t, 150000.0, d.TotalCreditLimit)

	require.Len(t, d.Goals, 1)
	assert.Equal(t, 0.8, d.Goals[0].ProgressRatio)
}

func TestDashboardUnavailable(t *testing.T) {
	ctx := context.Background()
	svc := NewService(storage.NewMemoryStore(), schema.DefaultTables(), testLogger())

	d := svc.Dashboard(ctx)
	require.NotNil(t, d)
	assert.NotEmpty(t, d.Notice)

	// Structurally complete zero dashboard, never a nil or an error.
	assert.Equal(t, 0.0, d.TotalIncome)
	assert.Equal(t, 0.0, d.NetIncome)
	assert.Empty(t, d.Cards)
	assert.NotEmpty(t, d.MotivationalMessage)
}

func TestCardsLiveSubstitution(t *testing.T) {
	ctx := context.Background()
	store, tables := testutil.SeedLedger(t)
	svc := NewService(store, tables, testLogger())

	// A card purchase and a payment recorded against CARD-2001.
	require.NoError(t, store.AppendRow(ctx, tables.Transactions, []any{
		"TR-1002", "2026-01-10", "Expense", "Shopping", 800.0, "Online order", "Credit Card", "CARD-2001", "",
	}))
	require.NoError(t, store.AppendRow(ctx, tables.Transactions, []any{
		"TR-1003", "2026-01-12", "Income", "Credit Card Payment", 300.0, "Partial payment", "Bank Transfer", "CARD-2001", "",
	}))

	cards, err := svc.Cards(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 2)

	assert.Equal(t, "CARD-2000", cards[0].ID)
	assert.Equal(t, 1000.0, cards[0].Balance)

	assert.Equal(t, "CARD-2001", cards[1].ID)
	assert.Equal(t, 500.0, cards[1].Balance)
}

func TestTransactionsDecoding(t *testing.T) {
	ctx := context.Background()
	store, tables := testutil.SeedLedger(t)
	svc := NewService(store, tables, testLogger())

	txns, err := svc.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "TR-1000", txns[0].ID)
	assert.Equal(t, model.TypeIncome, txns[0].Type)
	assert.Equal(t, 50000.0, txns[0].Amount)
}

func TestRemindersDecoding(t *testing.T) {
	ctx := context.Background()
	store, tables := testutil.SeedLedger(t)
	svc := NewService(store, tables, testLogger())

	reminders, err := svc.Reminders(ctx)
	require.NoError(t, err)
	require.Len(t, reminders, 2)
	assert.Equal(t, model.StatusPending, reminders[0].Status)
	assert.Equal(t, model.RecurringYes, reminders[0].Recurring)
	assert.Equal(t, 2500.0, reminders[0].Amount)
}
