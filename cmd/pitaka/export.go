package main

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jdalisay/pitaka/internal/cli"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <table>",
		Short: "Export a table as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			encoded, err := a.engine.ExportCSV(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if raw, _ := cmd.Flags().GetBool("base64"); raw {
				fmt.Println(encoded)
				return nil
			}

			csv, err := base64.StdEncoding.DecodeString(encoded)
			if err != nil {
				return fmt.Errorf("failed to decode export payload: %w", err)
			}

			out, _ := cmd.Flags().GetString("output")
			if out == "" {
				fmt.Print(string(csv))
				return nil
			}
			if err := os.WriteFile(out, csv, 0600); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("exported %s to %s", args[0], out)))
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "write CSV to a file instead of stdout")
	cmd.Flags().Bool("base64", false, "print the base64 transport encoding instead of raw CSV")
	return cmd
}
