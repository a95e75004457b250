// Package cmd provides the budget-ledger commands.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"budget-ledger/internal/config"
	"budget-ledger/internal/database"
	"budget-ledger/internal/repositories"
	"budget-ledger/internal/taxonomy"

	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	debug     bool
	noHistory bool
)

var rootCmd = &cobra.Command{
	Use:   "budget-ledger",
	Short: "Classify expense ledgers and build budget execution reports",
	Long: `budget-ledger reads an exported expense ledger (.xlsx), splits it into the
center business track and the research track by memo prefix, and rolls each
track up against the budget taxonomy.

Example:
  budget-ledger classify ledger.xlsx
  budget-ledger report ledger.xlsx -o 출력_연구비_집행관리.xlsx
  budget-ledger serve
  budget-ledger budgets
  budget-ledger sample -o sample.xlsx --rows 500
  budget-ledger runs prune --older-than 2160h`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
}

// Execute runs the root command. It is called once by main.main().
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "env file (default is .env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "do not open the run history database")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(budgetsCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(runsCmd)
}

func loadConfig() (*config.Config, error) {
	if err := config.LoadEnvFile(cfgFile); err != nil {
		return nil, err
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadTaxonomy(cfg *config.Config) (*taxonomy.Taxonomy, error) {
	slog.Debug("loading taxonomy", "path", cfg.Budget.TaxonomyPath)
	tax, err := taxonomy.Load(cfg.Budget.TaxonomyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load budget taxonomy: %w", err)
	}
	return tax, nil
}

// setup loads the configuration and the budget taxonomy every command starts from
func setup() (*config.Config, *taxonomy.Taxonomy, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	tax, err := loadTaxonomy(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, tax, nil
}

// openHistory returns a nil repository when history is off or the database is unreachable
func openHistory(cfg *config.Config) (*database.DB, repositories.ReportRunRepositoryInterface) {
	if noHistory {
		return nil, nil
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Warn("run history disabled", "driver", cfg.Database.Driver, "error", err)
		return nil, nil
	}
	return db, repositories.NewReportRunRepository(db.DB)
}

func closeHistory(db *database.DB) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		slog.Warn("failed to close database", "error", err)
	}
}
