package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jdalisay/pitaka/internal/model"
	"github.com/jdalisay/pitaka/internal/schema"
	"github.com/jdalisay/pitaka/internal/service"
)

// Service reads entity tables and serves the derived views.
type Service struct {
	store  service.TabularStore
	logger *slog.Logger
	tables schema.Tables
}

// NewService creates a ledger service over the given store.
func NewService(store service.TabularStore, tables schema.Tables, logger *slog.Logger) *Service {
	return &Service{store: store, tables: tables, logger: logger}
}

// Dashboard returns the KPI view model. It never fails outward: any
// internal error produces a structurally complete zero-valued dashboard
// carrying an explanatory notice.
func (s *Service) Dashboard(ctx context.Context) *Dashboard {
	txns, err := s.Transactions(ctx)
	if err != nil {
		return s.unavailable(err)
	}
	cards, err := s.storedCards(ctx)
	if err != nil {
		return s.unavailable(err)
	}
	goals, err := s.Goals(ctx)
	if err != nil {
		return s.unavailable(err)
	}
	return BuildDashboard(txns, cards, goals)
}

func (s *Service) unavailable(err error) *Dashboard {
	s.logger.Error("dashboard computation failed", "error", err)
	d := BuildDashboard(nil, nil, nil)
	d.Notice = fmt.Sprintf("dashboard temporarily unavailable: %v", err)
	return d
}

// Transactions returns the decoded transaction log.
func (s *Service) Transactions(ctx context.Context) ([]model.Transaction, error) {
	t, err := s.store.ReadTable(ctx, s.tables.Transactions)
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}
	records := schema.DecodeTable(t)
	txns := make([]model.Transaction, len(records))
	for i, r := range records {
		txns[i] = model.TransactionFromRecord(r)
	}
	return txns, nil
}

// Cards returns the credit cards with live balances substituted in, the
// form every display read uses.
func (s *Service) Cards(ctx context.Context) ([]model.CreditCard, error) {
	cards, err := s.storedCards(ctx)
	if err != nil {
		return nil, err
	}
	txns, err := s.Transactions(ctx)
	if err != nil {
		return nil, err
	}
	return ApplyLiveBalances(cards, LiveBalances(txns)), nil
}

func (s *Service) storedCards(ctx context.Context) ([]model.CreditCard, error) {
	t, err := s.store.ReadTable(ctx, s.tables.Cards)
	if err != nil {
		return nil, fmt.Errorf("failed to read credit cards: %w", err)
	}
	records := schema.DecodeTable(t)
	cards := make([]model.CreditCard, len(records))
	for i, r := range records {
		cards[i] = model.CreditCardFromRecord(r)
	}
	return cards, nil
}

// Goals returns the decoded savings goals.
func (s *Service) Goals(ctx context.Context) ([]model.Goal, error) {
	t, err := s.store.ReadTable(ctx, s.tables.Goals)
	if err != nil {
		return nil, fmt.Errorf("failed to read savings goals: %w", err)
	}
	records := schema.DecodeTable(t)
	goals := make([]model.Goal, len(records))
	for i, r := range records {
		goals[i] = model.GoalFromRecord(r)
	}
	return goals, nil
}

// Reminders returns the decoded bill reminders.
func (s *Service) Reminders(ctx context.Context) ([]model.Reminder, error) {
	t, err := s.store.ReadTable(ctx, s.tables.Reminders)
	if err != nil {
		return nil, fmt.Errorf("failed to read bill reminders: %w", err)
	}
	records := schema.DecodeTable(t)
	reminders := make([]model.Reminder, len(records))
	for i, r := range records {
		reminders[i] = model.ReminderFromRecord(r)
	}
	return reminders, nil
}
