package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"budget-ledger/internal/config"
	"budget-ledger/internal/models"
	"budget-ledger/internal/repositories"
	"budget-ledger/internal/taxonomy"

	"github.com/google/uuid"
)

var ErrRunHistoryDisabled = errors.New("report run history is not configured")

const (
	stageBusinessSummary = "business_summary"
	stageResearchSummary = "research_summary"
	stageTotals          = "totals"
)

type reportService struct {
	classifier ClassifierServiceInterface
	aggregator BudgetAggregatorInterface
	research   ResearchSummaryServiceInterface
	totals     TotalsServiceInterface
	sheets     ExecutionSheetServiceInterface
	yearly     YearlyBudgetServiceInterface
	runRepo    repositories.ReportRunRepositoryInterface
	breaker    CircuitBreakerInterface
	metrics    MetricsRecorderInterface
	fiscalYear string
}

// NewReportService assembles the report pipeline. runRepo may be nil, in which case runs are not stored.
// Writes to runRepo go through a circuit breaker with DefaultCircuitBreakerConfig.
func NewReportService(
	classifier ClassifierServiceInterface,
	aggregator BudgetAggregatorInterface,
	research ResearchSummaryServiceInterface,
	totals TotalsServiceInterface,
	sheets ExecutionSheetServiceInterface,
	yearly YearlyBudgetServiceInterface,
	runRepo repositories.ReportRunRepositoryInterface,
	metrics MetricsRecorderInterface,
	fiscalYear string,
) ReportServiceInterface {
	return &reportService{
		classifier: classifier,
		aggregator: aggregator,
		research:   research,
		totals:     totals,
		sheets:     sheets,
		yearly:     yearly,
		runRepo:    runRepo,
		breaker:    NewCircuitBreaker(DefaultCircuitBreakerConfig()),
		metrics:    metrics,
		fiscalYear: fiscalYear,
	}
}

// BuildReportService wires the default pipeline from configuration and a loaded taxonomy.
func BuildReportService(cfg *config.Config, tax *taxonomy.Taxonomy, runRepo repositories.ReportRunRepositoryInterface, metrics MetricsRecorderInterface) (ReportServiceInterface, error) {
	book, err := tax.Budget(cfg.Budget.FiscalYear)
	if err != nil {
		return nil, err
	}

	extractor := NewTextExtractor(cfg.Classification.ResearchPrefix, cfg.Ledger.MemoField)
	aggregator := NewBudgetAggregator(tax, book, &cfg.Ledger)

	return NewReportService(
		NewClassifierService(&cfg.Classification, &cfg.Ledger, metrics),
		aggregator,
		NewResearchSummaryService(aggregator, extractor, tax, &cfg.Ledger),
		NewTotalsService(tax, book, &cfg.Ledger),
		NewExecutionSheetService(&cfg.Ledger, extractor),
		NewYearlyBudgetService(tax),
		runRepo,
		metrics,
		cfg.Budget.FiscalYear,
	), nil
}

func (s *reportService) Classify(table models.LedgerTable) (*models.ClassificationResult, error) {
	return s.classifier.Classify(table)
}

// Generate runs classification, both track summaries, the totals merge and the
// supporting sheets. Degraded aggregations become warnings on the report.
func (s *reportService) Generate(ctx context.Context, source string, table models.LedgerTable) (*models.Report, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	classification, err := s.classifier.Classify(table)
	if err != nil {
		s.incrementCounter("report_generated", map[string]string{"status": models.ReportRunStatusFailed})
		return nil, err
	}

	report := &models.Report{
		ID:             uuid.New(),
		SourceName:     source,
		FiscalYear:     s.fiscalYear,
		GeneratedAt:    time.Now(),
		Classification: classification,
	}

	business, err := s.aggregator.Aggregate(classification.Business)
	if err := s.degrade(report, stageBusinessSummary, err); err != nil {
		return nil, err
	}
	report.BusinessSummary = business

	research, err := s.research.Build(classification.Research)
	if err := s.degrade(report, stageResearchSummary, err); err != nil {
		return nil, err
	}
	report.ResearchSummary = research

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	totals, err := s.totals.Merge(classification.Business, classification.Research)
	if err := s.degrade(report, stageTotals, err); err != nil {
		return nil, err
	}
	report.Totals = totals

	report.BusinessSheet = s.sheets.BusinessSheet(classification.Business)
	report.ResearchSheet = s.sheets.ResearchSheet(classification.Research)
	report.YearlyBudgets = s.yearly.Comparison()
	report.Dashboard = dashboard(s.fiscalYear, totals, classification.Stats)

	status := models.ReportRunStatusCompleted
	if report.Degraded() {
		status = models.ReportRunStatusDegraded
	}
	s.incrementCounter("report_generated", map[string]string{"status": status})
	s.recordProcessingTime("report_generation", time.Since(start))

	slog.Info("report generated",
		"report_id", report.ID,
		"source", source,
		"fiscal_year", s.fiscalYear,
		"status", status,
		"research_pairs", len(research.Pairs),
		"duration", time.Since(start))

	return report, nil
}

// degrade turns an ErrAggregationDegraded into a report warning and passes any other error through.
func (s *reportService) degrade(report *models.Report, stage string, err error) error {
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrAggregationDegraded) {
		return fmt.Errorf("failed to build %s: %w", stage, err)
	}

	slog.Warn("report stage degraded", "stage", stage, "error", err)
	report.AddWarning(stage, err.Error())
	s.incrementCounter("aggregation_degraded", map[string]string{"stage": stage})
	return nil
}

// Publish hands every table to the sink in workbook order.
func (s *reportService) Publish(report *models.Report, sink ReportSink) error {
	if report == nil {
		return errors.New("report cannot be nil")
	}

	if err := sink.WriteTotals(report.Totals); err != nil {
		return fmt.Errorf("failed to write totals: %w", err)
	}
	if err := sink.WriteSummaries(report.BusinessSummary, report.ResearchSummary); err != nil {
		return fmt.Errorf("failed to write summaries: %w", err)
	}
	if err := sink.WriteClassified(report.BusinessSheet, report.ResearchSheet); err != nil {
		return fmt.Errorf("failed to write classified rows: %w", err)
	}
	if err := sink.WriteYearlyBudgets(report.YearlyBudgets); err != nil {
		return fmt.Errorf("failed to write yearly budgets: %w", err)
	}
	return nil
}

// RecordRun stores the metadata of one generation attempt. report is nil when generation failed.
func (s *reportService) RecordRun(source, origin string, report *models.Report, runErr error, duration time.Duration) (*models.ReportRun, error) {
	run := &models.ReportRun{
		SourceName:     source,
		Origin:         origin,
		FiscalYear:     s.fiscalYear,
		Status:         models.ReportRunStatusCompleted,
		DurationMillis: duration.Milliseconds(),
	}

	switch {
	case runErr != nil || report == nil:
		run.Status = models.ReportRunStatusFailed
		if runErr != nil {
			run.ErrorMessage = runErr.Error()
		}
	default:
		if report.Degraded() {
			run.Status = models.ReportRunStatusDegraded
		}
		if report.Classification != nil {
			stats := report.Classification.Stats
			run.TotalRows = stats.Total
			run.BusinessRows = stats.BusinessCount
			run.ResearchRows = stats.ResearchCount
			run.UnclassifiedRows = stats.UnclassifiedCount
		}
		run.ResearchPairs = len(report.ResearchSummary.Pairs)
		for stage, message := range report.Warnings {
			run.AddWarning(stage, message)
		}
	}

	if s.runRepo == nil {
		return run, nil
	}

	if s.breaker.IsOpen() {
		s.incrementCounter("run_history_skipped", nil)
		return nil, ErrRunHistoryUnavailable
	}

	if err := s.runRepo.Create(run); err != nil {
		s.breaker.RecordFailure()
		if s.breaker.State() == StateOpen {
			slog.Warn("run history circuit opened", "error", err)
		}
		return nil, fmt.Errorf("failed to record report run: %w", err)
	}
	s.breaker.RecordSuccess()
	return run, nil
}

func (s *reportService) ListRuns(filters models.ReportRunFilters, offset, limit int) ([]models.ReportRun, int64, error) {
	if s.runRepo == nil {
		return nil, 0, ErrRunHistoryDisabled
	}
	return s.runRepo.List(filters, offset, limit)
}

func (s *reportService) GetRun(id uuid.UUID) (*models.ReportRun, error) {
	if s.runRepo == nil {
		return nil, ErrRunHistoryDisabled
	}
	return s.runRepo.GetByID(id)
}

func (s *reportService) RunStatusCounts() (map[string]int64, error) {
	if s.runRepo == nil {
		return nil, ErrRunHistoryDisabled
	}
	return s.runRepo.CountByStatus()
}

// PruneRuns deletes runs created more than olderThan ago.
func (s *reportService) PruneRuns(olderThan time.Duration) (int64, error) {
	if s.runRepo == nil {
		return 0, ErrRunHistoryDisabled
	}
	if olderThan <= 0 {
		return 0, fmt.Errorf("retention must be positive, got %s", olderThan)
	}

	deleted, err := s.runRepo.DeleteOlderThan(olderThan)
	if err != nil {
		return 0, fmt.Errorf("failed to prune report runs: %w", err)
	}
	if deleted > 0 {
		slog.Info("pruned report runs", "deleted", deleted, "older_than", olderThan)
	}
	return deleted, nil
}

func (s *reportService) incrementCounter(name string, tags map[string]string) {
	if s.metrics != nil {
		s.metrics.IncrementCounter(name, tags)
	}
}

func (s *reportService) recordProcessingTime(name string, d time.Duration) {
	if s.metrics != nil {
		s.metrics.RecordProcessingTime(name, d)
	}
}

// dashboard derives the headline KPIs from the totals TOTAL row.
func dashboard(fiscalYear string, totals models.TotalsTable, stats models.ClassificationStats) models.DashboardKPI {
	kpi := models.DashboardKPI{FiscalYear: fiscalYear, Stats: stats}

	total, ok := totals.Total()
	if !ok {
		return kpi
	}

	kpi.Budget = total.Budget
	kpi.CenterSpent = total.Center
	kpi.ResearchSpent = total.Research
	kpi.TotalSpent = total.Center.Add(total.Research)
	kpi.Remainder = total.Remainder
	kpi.ExecutionRate = total.ExecutionRate
	return kpi
}
