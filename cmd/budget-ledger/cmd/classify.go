package cmd

import (
	"fmt"
	"path/filepath"

	"budget-ledger/internal/ledger"
	"budget-ledger/internal/services"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <ledger.xlsx>",
	Short: "Split a ledger into business and research rows",
	Long: `Classify reads the ledger and prints how many rows fall into the center
business track, the research track and neither.

Example:
  budget-ledger classify ledger.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, tax, err := setup()
	if err != nil {
		return err
	}

	table, err := ledger.NewLoader(cfg.Ledger.SheetName).LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read ledger: %w", err)
	}

	service, err := services.BuildReportService(cfg, tax, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to build report pipeline: %w", err)
	}

	result, err := service.Classify(table)
	if err != nil {
		return fmt.Errorf("failed to classify ledger: %w", err)
	}

	printStats(cmd.OutOrStdout(), filepath.Base(args[0]), result.Stats)
	return nil
}
