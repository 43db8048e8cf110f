package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdalisay/pitaka/internal/cli"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the financial dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			d := a.ledger.Dashboard(cmd.Context())

			greeting := "Your finances at a glance"
			if a.settings.DisplayName != "" {
				greeting = fmt.Sprintf("%s's finances at a glance", a.settings.DisplayName)
			}
			fmt.Println(cli.TitleStyle.Render(cli.ChartIcon + " " + greeting))

			if d.Notice != "" {
				fmt.Println(cli.FormatWarning(d.Notice))
			}

			fmt.Println(cli.LabelStyle.Render("Total Income:"), cli.Peso(d.TotalIncome))
			fmt.Println(cli.LabelStyle.Render("Total Expenses:"), cli.Peso(d.TotalExpenses))
			fmt.Println(cli.LabelStyle.Render("Net Income:"), cli.Peso(d.NetIncome))
			fmt.Println(cli.LabelStyle.Render("Savings Deposits:"), cli.Peso(d.TotalSavingsDeposits))
			fmt.Printf("%s %.1f%%\n", cli.LabelStyle.Render("Savings Rate:"), d.SavingsRate*100)
			fmt.Println()

			fmt.Println(cli.LabelStyle.Render("Credit Limit:"), cli.Peso(d.TotalCreditLimit))
			fmt.Println(cli.LabelStyle.Render("Card Balances:"), cli.Peso(d.TotalCardBalance))
			fmt.Printf("%s %.1f%%\n", cli.LabelStyle.Render("Credit Usage:"), d.CreditUsage*100)
			fmt.Println(cli.LabelStyle.Render("Available Credit:"), cli.Peso(d.AvailableCredit))

			if len(d.Cards) > 0 {
				fmt.Println()
				fmt.Println(cli.TitleStyle.Render("Credit Cards"))
				for _, c := range d.Cards {
					fmt.Printf("  %s  %s  %s of %s (%.1f%%)\n",
						c.ID, c.Name, cli.Peso(c.Balance), cli.Peso(c.Limit), c.UsageRatio*100)
				}
			}

			if len(d.Goals) > 0 {
				fmt.Println()
				fmt.Println(cli.TitleStyle.Render("Savings Goals"))
				for _, g := range d.Goals {
					fmt.Printf("  %s  %s  %s of %s (%.1f%%)\n",
						g.ID, g.Name, cli.Peso(g.SavedAmount), cli.Peso(g.TargetAmount), g.ProgressRatio*100)
				}
			}

			fmt.Println()
			fmt.Println(cli.SubtleStyle.Render(d.MotivationalMessage))
			return nil
		},
	}
}
