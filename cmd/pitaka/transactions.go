package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdalisay/pitaka/internal/cli"
	"github.com/jdalisay/pitaka/internal/service"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Work with transactions",
	}
	cmd.AddCommand(txAddCmd())
	cmd.AddCommand(txListCmd())
	return cmd
}

func txAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		RunE:  runTxAdd,
	}
	cmd.Flags().String("date", "", "transaction date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().String("type", "Expense", "transaction type (Income or Expense)")
	cmd.Flags().String("category", "", "category (e.g. Groceries, Savings Deposit)")
	cmd.Flags().String("amount", "", "amount")
	cmd.Flags().String("description", "", "description")
	cmd.Flags().String("payment-method", "", "payment method (e.g. Cash, Credit Card)")
	cmd.Flags().String("account", "", "credit card id when paying by card")
	cmd.Flags().String("related-id", "", "related goal or reminder id")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func runTxAdd(cmd *cobra.Command, _ []string) error {
	a, err := buildApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	form := map[string]string{}
	for flag, key := range map[string]string{
		"date":           "DATE",
		"type":           "TYPE",
		"category":       "CATEGORY",
		"amount":         "AMOUNT",
		"description":    "DESCRIPTION",
		"payment-method": "PAYMENTMETHOD",
		"account":        "ACCOUNT",
		"related-id":     "RELATED_ID",
	} {
		if v, _ := cmd.Flags().GetString(flag); v != "" {
			form[key] = v
		}
	}

	result := a.engine.AddTransaction(cmd.Context(), form)
	if result.Status != service.StatusSuccess {
		fmt.Println(cli.FormatError(result.Message))
		return errors.New(result.Message)
	}
	fmt.Println(cli.FormatSuccess(result.Message))
	return nil
}

func txListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			txns, err := a.ledger.Transactions(cmd.Context())
			if err != nil {
				return err
			}
			for _, t := range txns {
				fmt.Printf("%s  %s  %-7s  %-20s  %12s  %s\n",
					t.ID, t.Date, t.Type, t.Category, cli.Peso(t.Amount), t.Description)
			}
			fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("%d transactions", len(txns))))
			return nil
		},
	}
}
