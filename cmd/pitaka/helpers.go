package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jdalisay/pitaka/internal/config"
	"github.com/jdalisay/pitaka/internal/engine"
	"github.com/jdalisay/pitaka/internal/ledger"
	"github.com/jdalisay/pitaka/internal/service"
	"github.com/jdalisay/pitaka/internal/sheets"
	"github.com/jdalisay/pitaka/internal/storage"
)

// app bundles the wired services for a single command invocation.
type app struct {
	settings *config.Settings
	store    service.TabularStore
	engine   *engine.Engine
	ledger   *ledger.Service
}

// buildApp loads settings and wires the store, allocator, engine and
// ledger service together.
func buildApp(ctx context.Context) (*app, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	store, err := buildStore(ctx, settings)
	if err != nil {
		return nil, err
	}

	logger := slog.Default()
	alloc := storage.NewCounterAllocator(store, settings.Tables.Config)

	return &app{
		settings: settings,
		store:    store,
		engine:   engine.New(store, alloc, settings.Tables, logger).WithProgress(),
		ledger:   ledger.NewService(store, settings.Tables, logger),
	}, nil
}

func buildStore(ctx context.Context, settings *config.Settings) (service.TabularStore, error) {
	switch settings.StoreBackend {
	case "sheets":
		store, err := sheets.NewStore(ctx, settings.Sheets, slog.Default())
		if err != nil {
			return nil, fmt.Errorf("failed to open sheets store: %w", err)
		}
		return store, nil
	default:
		store, err := storage.NewSQLiteStore(settings.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open local store: %w", err)
		}
		return store, nil
	}
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		slog.Warn("failed to close store", "error", err)
	}
}

// parseFieldArgs turns repeated KEY=VALUE flags into form input.
func parseFieldArgs(fields []string) (map[string]string, error) {
	form := make(map[string]string, len(fields))
	for _, f := range fields {
		key, value, found := strings.Cut(f, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid field %q, expected KEY=VALUE", f)
		}
		form[strings.ToUpper(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}
	return form, nil
}
