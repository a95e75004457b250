package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"budget-ledger/internal/ledger"
	"budget-ledger/internal/models"
	"budget-ledger/internal/services"
	"budget-ledger/internal/workbook"

	"github.com/spf13/cobra"
)

const defaultOutput = "출력_연구비_집행관리.xlsx"

var (
	outputPath string
	jsonOutput bool
)

var reportCmd = &cobra.Command{
	Use:   "report <ledger.xlsx>",
	Short: "Build the budget execution workbook for a ledger",
	Long: `Report classifies the ledger, aggregates both tracks against the budget
taxonomy and writes the six-sheet execution workbook. With --json the report
is printed to stdout instead.

Each run is recorded in the run history database unless --no-history is set.

Example:
  budget-ledger report ledger.xlsx -o 출력_연구비_집행관리.xlsx
  budget-ledger report ledger.xlsx --json`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&outputPath, "output", "o", defaultOutput, "workbook to write")
	reportCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the report as JSON instead of writing a workbook")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, tax, err := setup()
	if err != nil {
		return err
	}

	db, runRepo := openHistory(cfg)
	defer closeHistory(db)

	service, err := services.BuildReportService(cfg, tax, runRepo, nil)
	if err != nil {
		return fmt.Errorf("failed to build report pipeline: %w", err)
	}

	source := filepath.Base(args[0])
	start := time.Now()

	report, genErr := generate(cmd, service, cfg.Ledger.SheetName, args[0])
	if _, err := service.RecordRun(source, models.ReportRunSourceCLI, report, genErr, time.Since(start)); err != nil {
		slog.Warn("failed to record report run", "source", source, "error", err)
	}
	if genErr != nil {
		return fmt.Errorf("failed to generate report: %w", genErr)
	}

	if jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return nil
	}

	if err := writeWorkbook(service, report, outputPath); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	printDashboard(cmd.OutOrStdout(), report)
	slog.Info("workbook written", "path", outputPath, "report_id", report.ID)
	return nil
}

func generate(cmd *cobra.Command, service services.ReportServiceInterface, sheet, path string) (*models.Report, error) {
	table, err := ledger.NewLoader(sheet).LoadFile(path)
	if err != nil {
		return nil, err
	}
	return service.Generate(cmd.Context(), filepath.Base(path), table)
}

func writeWorkbook(service services.ReportServiceInterface, report *models.Report, path string) error {
	writer, err := workbook.New()
	if err != nil {
		return err
	}
	defer writer.Close()

	if err := service.Publish(report, writer); err != nil {
		return err
	}
	return writer.SaveAs(path)
}
