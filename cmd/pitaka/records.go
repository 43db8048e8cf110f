package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdalisay/pitaka/internal/cli"
	"github.com/jdalisay/pitaka/internal/model"
	"github.com/jdalisay/pitaka/internal/service"
)

func cardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Work with credit cards",
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Add a credit card",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fields, _ := cmd.Flags().GetStringArray("field")
			return runAddRecord(cmd, fields, func(a *app) (string, string) {
				return a.settings.Tables.Cards, model.PrefixCard
			})
		},
	}
	add.Flags().StringArray("field", nil, "column value as KEY=VALUE (e.g. NAME=Visa LIMIT=50000)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List credit cards with live balances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			cards, err := a.ledger.Cards(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range cards {
				fmt.Printf("%s  %-20s  balance %12s  limit %12s\n",
					c.ID, c.Name, cli.Peso(c.Balance), cli.Peso(c.Limit))
			}
			return nil
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}

func goalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Work with savings goals",
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Add a savings goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fields, _ := cmd.Flags().GetStringArray("field")
			return runAddRecord(cmd, fields, func(a *app) (string, string) {
				return a.settings.Tables.Goals, model.PrefixGoal
			})
		},
	}
	add.Flags().StringArray("field", nil, "column value as KEY=VALUE (e.g. NAME=Emergency TARGETAMOUNT=100000)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List savings goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			goals, err := a.ledger.Goals(cmd.Context())
			if err != nil {
				return err
			}
			for _, g := range goals {
				fmt.Printf("%s  %-20s  %s of %s (%.1f%%)\n",
					g.ID, g.Name, cli.Peso(g.SavedAmount), cli.Peso(g.TargetAmount), g.Progress()*100)
			}
			return nil
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}

func runAddRecord(cmd *cobra.Command, fields []string, target func(*app) (table, prefix string)) error {
	a, err := buildApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	form, err := parseFieldArgs(fields)
	if err != nil {
		return err
	}

	table, prefix := target(a)
	result := a.engine.AddRecord(cmd.Context(), table, form, prefix)
	if result.Status != service.StatusSuccess {
		fmt.Println(cli.FormatError(result.Message))
		return errors.New(result.Message)
	}
	fmt.Println(cli.FormatSuccess(result.Message))
	return nil
}

func updateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <table> <id>",
		Short: "Update columns of a record by id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			fields, _ := cmd.Flags().GetStringArray("set")
			partial, err := parseFieldArgs(fields)
			if err != nil {
				return err
			}

			ok, err := a.engine.UpdateRecordByID(cmd.Context(), args[0], args[1], partial)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println(cli.FormatError(fmt.Sprintf("no record %s in %s", args[1], args[0])))
				return fmt.Errorf("record not found")
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("updated %s", args[1])))
			return nil
		},
	}
	cmd.Flags().StringArray("set", nil, "column value as KEY=VALUE")
	return cmd
}
