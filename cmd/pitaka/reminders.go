package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdalisay/pitaka/internal/cli"
	"github.com/jdalisay/pitaka/internal/model"
	"github.com/jdalisay/pitaka/internal/service"
)

func remindersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reminders",
		Short: "Work with bill reminders",
	}
	cmd.AddCommand(remindersAddCmd())
	cmd.AddCommand(remindersListCmd())
	cmd.AddCommand(remindersPayCmd())
	return cmd
}

func remindersAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a bill reminder",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fields, _ := cmd.Flags().GetStringArray("field")
			return runAddRecord(cmd, fields, func(a *app) (string, string) {
				return a.settings.Tables.Reminders, model.PrefixReminder
			})
		},
	}
	cmd.Flags().StringArray("field", nil, "column value as KEY=VALUE (e.g. DESCRIPTION=Electricity DUEDATE=2026-09-15)")
	return cmd
}

func remindersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bill reminders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			reminders, err := a.ledger.Reminders(cmd.Context())
			if err != nil {
				return err
			}
			for _, r := range reminders {
				status := r.Status
				if status == model.StatusPaid {
					status = cli.SuccessStyle.Render(status)
				}
				fmt.Printf("%s  %-25s  due %s  %12s  %s\n",
					r.ID, r.Description, r.DueDate, cli.Peso(r.Amount), status)
			}
			return nil
		},
	}
}

func remindersPayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pay <reminder-id>",
		Short: "Settle a reminder, recording the payment transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			form := map[string]string{}
			for flag, key := range map[string]string{
				"date":           "DATE",
				"amount":         "AMOUNT",
				"payment-method": "PAYMENTMETHOD",
			} {
				if v, _ := cmd.Flags().GetString(flag); v != "" {
					form[key] = v
				}
			}

			result := a.engine.MarkReminderPaid(cmd.Context(), args[0], form)
			if result.Status != service.StatusSuccess {
				fmt.Println(cli.FormatError(result.Message))
				return errors.New(result.Message)
			}
			fmt.Println(cli.FormatSuccess(result.Message))
			return nil
		},
	}
	cmd.Flags().String("date", "", "payment date override (YYYY-MM-DD)")
	cmd.Flags().String("amount", "", "amount override when the bill differs from the reminder")
	cmd.Flags().String("payment-method", "", "payment method override")
	return cmd
}
