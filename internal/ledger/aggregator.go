// Package ledger derives credit-card balances and dashboard metrics from
// the transaction log.
package ledger

import (
	"strings"

	"github.com/jdalisay/pitaka/internal/model"
)

// Motivational messages, selected by the sign of net income.
const (
	msgAhead  = "Great job! You're earning more than you spend. Keep building those savings!"
	msgBehind = "Heads up! Your expenses exceed your income. Time to review your spending."
)

// CardView is a credit card prepared for display: live balance substituted
// for the stored one, with its usage ratio.
type CardView struct {
	model.CreditCard
	UsageRatio float64
}

// GoalView is a savings goal prepared for display.
type GoalView struct {
	model.Goal
	ProgressRatio float64
}

// Dashboard is the aggregate KPI view model.
type Dashboard struct {
	MotivationalMessage  string
	Notice               string // set when the dashboard could not be computed
	Cards                []CardView
	Goals                []GoalView
	TotalIncome          float64
	TotalExpenses        float64
	NetIncome            float64
	TotalSavingsDeposits float64
	SavingsRate          float64
	TotalCreditLimit     float64
	TotalCardBalance     float64
	CreditUsage          float64
	AvailableCredit      float64
}

// LiveBalances recomputes per-card balances from the transaction log.
// Only transactions whose account carries the card id prefix participate:
// a "Credit Card Payment" subtracts its amount, an Expense adds it, and
// everything else leaves the balance alone. Cards absent from the result
// keep their stored balance.
func LiveBalances(txns []model.Transaction) map[string]float64 {
	totals := make(map[string]float64)
	for _, t := range txns {
		if !strings.HasPrefix(t.Account, model.PrefixCard+"-") {
			continue
		}
		switch {
		case t.Category == model.CategoryCreditCardPayment:
			totals[t.Account] -= t.Amount
		case t.Type == model.TypeExpense:
			totals[t.Account] += t.Amount
		}
	}
	return totals
}

// ApplyLiveBalances substitutes live balances into the given cards for
// display reads. The stored balance is never written back here; only the
// recalculation job persists balances.
func ApplyLiveBalances(cards []model.CreditCard, live map[string]float64) []model.CreditCard {
	out := make([]model.CreditCard, len(cards))
	for i, c := range cards {
		if balance, ok := live[c.ID]; ok {
			c.Balance = balance
		}
		out[i] = c
	}
	return out
}

// BuildDashboard computes the full KPI view model in one pass over the
// transactions plus one pass over cards and goals. Card balances are the
// live values.
func BuildDashboard(txns []model.Transaction, cards []model.CreditCard, goals []model.Goal) *Dashboard {
	d := &Dashboard{}

	for _, t := range txns {
		switch t.Type {
		case model.TypeIncome:
			d.TotalIncome += t.Amount
		case model.TypeExpense:
			d.TotalExpenses += t.Amount
		}
		// Tracked independently; may double-count against expenses.
		if t.Category == model.CategorySavingsDeposit {
			d.TotalSavingsDeposits += t.Amount
		}
	}

	d.NetIncome = d.TotalIncome - d.TotalExpenses
	if d.TotalIncome > 0 {
		d.SavingsRate = d.TotalSavingsDeposits / d.TotalIncome
	}

	live := LiveBalances(txns)
	for _, c := range ApplyLiveBalances(cards, live) {
		d.TotalCreditLimit += c.Limit
		d.TotalCardBalance += c.Balance
		d.Cards = append(d.Cards, CardView{CreditCard: c, UsageRatio: c.Usage()})
	}
	if d.TotalCreditLimit > 0 {
		d.CreditUsage = d.TotalCardBalance / d.TotalCreditLimit
	}
	d.AvailableCredit = d.TotalCreditLimit - d.TotalCardBalance

	for _, g := range goals {
		d.Goals = append(d.Goals, GoalView{Goal: g, ProgressRatio: g.Progress()})
	}

	if d.NetIncome >= 0 {
		d.MotivationalMessage = msgAhead
	} else {
		d.MotivationalMessage = msgBehind
	}

	return d
}
