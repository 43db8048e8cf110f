package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdalisay/pitaka/internal/cli"
)

func recalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recalc",
		Short: "Rebuild all credit card balances from the transaction log",
		Long: `Recomputes every credit card's balance, last payment, and last payment
date from scratch by scanning the full transaction log, then rewrites the
card table in one pass. Use it to reconcile drift between stored balances
and the ledger.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.engine.Recalculate(cmd.Context()); err != nil {
				fmt.Println(cli.FormatError(err.Error()))
				return err
			}
			fmt.Println(cli.FormatSuccess("card balances recalculated"))
			return nil
		},
	}
}
