package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdalisay/pitaka/internal/model"
)

func TestLiveBalances(t *testing.T) {
	txns := []model.Transaction{
		{Type: model.TypeExpense, Account: "CARD-1", Amount: 700},
		{Type: model.TypeExpense, Account: "CARD-1", Amount: 300},
		{Category: model.CategoryCreditCardPayment, Account: "CARD-1", Amount: 400},
		{Type: model.TypeExpense, Account: "CARD-2", Amount: 50},
		// Non-card accounts never participate.
		{Type: model.TypeExpense, Account: "BANK-1", Amount: 9999},
		{Type: model.TypeExpense, Account: "", Amount: 9999},
		// Income without a payment category leaves the balance alone.
		{Type: model.TypeIncome, Account: "CARD-2", Amount: 9999},
	}

	live := LiveBalances(txns)
	assert.Equal(t, map[string]float64{"CARD-1": 600, "CARD-2": 50}, live)
}

func TestLiveBalancesPaymentWins(t *testing.T) {
	// A transaction that is both an Expense and a payment only subtracts:
	// the payment branch takes precedence over the expense branch.
	txns := []model.Transaction{
		{Type: model.TypeExpense, Category: model.CategoryCreditCardPayment, Account: "CARD-1", Amount: 250},
	}
	assert.Equal(t, map[string]float64{"CARD-1": -250}, LiveBalances(txns))
}

func TestApplyLiveBalances(t *testing.T) {
	cards := []model.CreditCard{
		{ID: "CARD-1", Balance: 1000},
		{ID: "CARD-2", Balance: 1000},
	}
	live := map[string]float64{"CARD-1": 600}

	out := ApplyLiveBalances(cards, live)
	require.Len(t, out, 2)
	assert.Equal(t, 600.0, out[0].Balance)

	// A card with no matching transactions keeps its stored balance.
	assert.Equal(t, 1000.0, out[1].Balance)

	// The input slice is never mutated.
	assert.Equal(t, 1000.0, cards[0].Balance)
}

func TestBuildDashboardTotals(t *testing.T) {
	txns := []model.Transaction{
		{Type: model.TypeIncome, Amount: 50000},
		{Type: model.TypeIncome, Amount: 10000},
		{Type: model.TypeExpense, Amount: 3500},
		{Type: model.TypeExpense, Category: model.CategorySavingsDeposit, Amount: 2000},
	}

	d := BuildDashboard(txns, nil, nil)
	assert.Equal(t, 60000.0, d.TotalIncome)
	assert.Equal(t, 5500.0, d.TotalExpenses)
	assert.Equal(t, 54500.0, d.NetIncome)
	assert.Equal(t, d.TotalIncome-d.TotalExpenses, d.NetIncome)
	assert.Equal(t, 2000.0, d.TotalSavingsDeposits)
	assert.InDelta(t, 2000.0/60000.0, d.SavingsRate, 1e-9)
	assert.Equal(t, msgAhead, d.MotivationalMessage)
}

func TestBuildDashboardMessage(t *testing.T) {
	behind := BuildDashboard([]model.Transaction{
		{Type: model.TypeExpense, Amount: 100},
	}, nil, nil)
	assert.Equal(t, msgBehind, behind.MotivationalMessage)

	// Breaking even still counts as ahead.
	even := BuildDashboard(nil, nil, nil)
	assert.Equal(t, msgAhead, even.MotivationalMessage)
}

func TestBuildDashboardZeroIncome(t *testing.T) {
	d := BuildDashboard([]model.Transaction{
		{Type: model.TypeExpense, Category: model.CategorySavingsDeposit, Amount: 500},
	}, nil, nil)
	assert.Equal(t, 0.0, d.SavingsRate)
}

func TestBuildDashboardCredit(t *testing.T) {
	cards := []model.CreditCard{
		{ID: "CARD-1", Limit: 100000, Balance: 1000},
		{ID: "CARD-2", Limit: 50000, Balance: 0},
	}
	txns := []model.Transaction{
		{Type: model.TypeExpense, Account: "CARD-2", Amount: 800},
	}

	d := BuildDashboard(txns, cards, nil)
	require.Len(t, d.Cards, 2)

	// CARD-1 has no transactions, so its stored balance stands; CARD-2
	// shows the live total.
	assert.Equal(t, 1000.0, d.Cards[0].Balance)
	assert.Equal(t, 800.0, d.Cards[1].Balance)
	assert.Equal(t, 0.01, d.Cards[0].UsageRatio)

	assert.Equal(t, 150000.0, d.TotalCreditLimit)
	assert.Equal(t, 1800.0, d.TotalCardBalance)
	assert.InDelta(t, 1800.0/150000.0, d.CreditUsage, 1e-9)
	assert.Equal(t, 148200.0, d.AvailableCredit)
}

func TestBuildDashboardGoals(t *testing.T) {
	goals := []model.Goal{
		{ID: "GOAL-1", TargetAmount: 1000, SavedAmount: 800},
		{ID: "GOAL-2", TargetAmount: 0, SavedAmount: 100},
	}

	d := BuildDashboard(nil, nil, goals)
	require.Len(t, d.Goals, 2)
	assert.Equal(t, 0.8, d.Goals[0].ProgressRatio)
	assert.Equal(t, 0.0, d.Goals[1].ProgressRatio)
}
