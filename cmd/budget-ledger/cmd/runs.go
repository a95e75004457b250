package cmd

import (
	"fmt"
	"time"

	"budget-ledger/internal/services"

	"github.com/spf13/cobra"
)

const defaultRetention = 90 * 24 * time.Hour

var olderThan time.Duration

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Maintain the report run history",
}

var runsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete report runs older than the retention period",
	Long: `Prune removes run history records created before now minus --older-than.
Only run metadata is stored, so no report output is affected.

Example:
  budget-ledger runs prune --older-than 720h`,
	Args: cobra.NoArgs,
	RunE: runPrune,
}

func init() {
	runsPruneCmd.Flags().DurationVar(&olderThan, "older-than", defaultRetention, "retention period")
	runsCmd.AddCommand(runsPruneCmd)
}

func runPrune(cmd *cobra.Command, args []string) error {
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

	deleted, err := service.PruneRuns(olderThan)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d report run(s) older than %s\n", deleted, olderThan)
	return nil
}
