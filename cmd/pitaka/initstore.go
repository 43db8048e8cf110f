package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdalisay/pitaka/internal/cli"
	"github.com/jdalisay/pitaka/internal/config"
	"github.com/jdalisay/pitaka/internal/schema"
	"github.com/jdalisay/pitaka/internal/storage"
)

func initStoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the ledger tables in the local store",
		Long: `Creates the transaction, credit card, savings goal, bill reminder, and
config tables with their standard headers in the local SQLite store.
Existing tables of the same name are replaced. The sheets backend is
expected to be provisioned in the spreadsheet itself.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if settings.StoreBackend != "sqlite" {
				return fmt.Errorf("init only supports the sqlite backend, configured backend is %q", settings.StoreBackend)
			}

			store, err := storage.NewSQLiteStore(settings.SQLitePath)
			if err != nil {
				return fmt.Errorf("failed to open local store: %w", err)
			}
			defer func() { _ = store.Close() }()

			ctx := cmd.Context()
			for name, s := range map[string]*schema.TableSchema{
				settings.Tables.Transactions: schema.Transactions(),
				settings.Tables.Cards:        schema.CreditCards(),
				settings.Tables.Goals:        schema.Goals(),
				settings.Tables.Reminders:    schema.Reminders(),
				settings.Tables.Config:       schema.Config(),
			} {
				if err := store.CreateTable(ctx, name, s.Headers()); err != nil {
					return fmt.Errorf("failed to create table %s: %w", name, err)
				}
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("ledger initialized at %s", settings.SQLitePath)))
			return nil
		},
	}
}
