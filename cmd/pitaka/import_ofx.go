package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jdalisay/pitaka/internal/cli"
	"github.com/jdalisay/pitaka/internal/ofx"
	"github.com/jdalisay/pitaka/internal/service"
)

func importOFXCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import transactions from OFX or QFX (Quicken) files exported from your
bank. Each statement line runs through the full transaction protocol, so
card imports adjust the card's balance like hand-entered transactions.

Examples:
  # Import a bank statement
  pitaka import-ofx ~/Downloads/bpi_jan.ofx

  # Import a card statement against a known card
  pitaka import-ofx --card CARD-2001 ~/Downloads/visa_*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImportOFX,
	}
	cmd.Flags().String("card", "", "credit card id to book entries against")
	cmd.Flags().BoolP("dry-run", "d", false, "preview import without saving")
	return cmd
}

func runImportOFX(cmd *cobra.Command, args []string) error {
	cardID, _ := cmd.Flags().GetString("card")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	// Expand globs and collect all files
	var allFiles []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err == nil {
				allFiles = append(allFiles, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			allFiles = append(allFiles, matches...)
		}
	}
	if len(allFiles) == 0 {
		return fmt.Errorf("no files found to import")
	}

	a, err := buildApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	parser := ofx.NewParser()
	imported, failed := 0, 0

	for _, filePath := range allFiles {
		slog.Info("Processing file", "file", filepath.Base(filePath))

		f, err := os.Open(filePath)
		if err != nil {
			slog.Error("Failed to open file", "file", filePath, "error", err)
			failed++
			continue
		}

		entries, err := parser.ParseFile(cmd.Context(), f)
		_ = f.Close()
		if err != nil {
			slog.Error("Failed to parse file", "file", filePath, "error", err)
			failed++
			continue
		}

		for _, entry := range entries {
			if dryRun {
				fmt.Printf("%s  %-7s  %12s  %s\n", entry.Date, entry.Type, cli.Peso(entry.Amount), entry.Description)
				imported++
				continue
			}
			result := a.engine.AddTransaction(cmd.Context(), entry.Form(cardID))
			if result.Status != service.StatusSuccess {
				slog.Error("Failed to import entry", "description", entry.Description, "error", result.Message)
				failed++
				continue
			}
			imported++
		}
	}

	if dryRun {
		fmt.Println(cli.FormatWarning(fmt.Sprintf("dry run: %d entries would be imported", imported)))
		return nil
	}
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("imported %d entries (%d failed)", imported, failed)))
	return nil
}
