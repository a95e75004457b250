package cmd

import (
	"fmt"

	"budget-ledger/internal/server"
	"budget-ledger/internal/services"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the ledger HTTP API",
	Long: `Serve starts the HTTP API for ledger uploads, report exports and run
history. It stops gracefully on SIGINT or SIGTERM.

Example:
  SERVER_PORT=8080 budget-ledger serve`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, tax, err := setup()
	if err != nil {
		return err
	}

	db, runRepo := openHistory(cfg)
	defer closeHistory(db)

	metrics := services.NewPrometheusMetrics()
	reports, err := services.BuildReportService(cfg, tax, runRepo, metrics)
	if err != nil {
		return fmt.Errorf("failed to build report pipeline: %w", err)
	}

	deps := server.Dependencies{
		Reports:   reports,
		Yearly:    services.NewYearlyBudgetService(tax),
		Generator: services.NewLedgerGenerator(cfg, tax, 0),
		Metrics:   metrics,
	}
	if db != nil {
		deps.DB = db.DB
	}

	return server.New(cfg, deps).Run(cmd.Context())
}
