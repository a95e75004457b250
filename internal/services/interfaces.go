package services

import (
	"context"
	"time"

	"budget-ledger/internal/models"

	"github.com/google/uuid"
)

// ClassifierServiceInterface partitions a ledger into the business, research and unclassified tracks
type ClassifierServiceInterface interface {
	Classify(table models.LedgerTable) (*models.ClassificationResult, error)
}

// TextExtractorInterface pulls researcher and topic out of research memos
type TextExtractorInterface interface {
	ResearcherName(memo string) string
	ResearchTopic(memo string) string
	PairOf(row models.LedgerRow) (models.ResearchPair, bool)
	Pairs(table models.LedgerTable) []models.ResearchPair
}

// BudgetAggregatorInterface rolls a track's rows up against the budget taxonomy
type BudgetAggregatorInterface interface {
	// Aggregate returns one row per taxonomy line item plus a trailing TOTAL row.
	// When the required columns are missing it returns an empty table and an
	// error wrapping ErrAggregationDegraded.
	Aggregate(table models.LedgerTable) (models.SummaryTable, error)
}

// ResearchSummaryServiceInterface builds the composite research-track layout
type ResearchSummaryServiceInterface interface {
	Build(table models.LedgerTable) (models.ResearchSummary, error)
}

// TotalsServiceInterface merges both tracks into the center/research totals table
type TotalsServiceInterface interface {
	Merge(business, research models.LedgerTable) (models.TotalsTable, error)
}

// ExecutionSheetServiceInterface projects classified rows onto the execution-management columns
type ExecutionSheetServiceInterface interface {
	BusinessSheet(table models.LedgerTable) models.ExecutionSheet
	ResearchSheet(table models.LedgerTable) models.ExecutionSheet
}

// YearlyBudgetServiceInterface exposes the per-year default budgets
type YearlyBudgetServiceInterface interface {
	Comparison() models.YearlyBudgetComparison
}

// ReportServiceInterface runs the whole report pipeline and keeps run history
type ReportServiceInterface interface {
	Classify(table models.LedgerTable) (*models.ClassificationResult, error)
	Generate(ctx context.Context, source string, table models.LedgerTable) (*models.Report, error)
	Publish(report *models.Report, sink ReportSink) error
	RecordRun(source, origin string, report *models.Report, runErr error, duration time.Duration) (*models.ReportRun, error)
	ListRuns(filters models.ReportRunFilters, offset, limit int) ([]models.ReportRun, int64, error)
	GetRun(id uuid.UUID) (*models.ReportRun, error)
	RunStatusCounts() (map[string]int64, error)
	PruneRuns(olderThan time.Duration) (int64, error)
}

// ReportSink receives the finished tables. Implementations own all rendering concerns.
type ReportSink interface {
	WriteTotals(totals models.TotalsTable) error
	WriteSummaries(business models.SummaryTable, research models.ResearchSummary) error
	WriteClassified(business, research models.ExecutionSheet) error
	WriteYearlyBudgets(comparison models.YearlyBudgetComparison) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// CircuitBreakerInterface guards run history writes
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	State() BreakerState
}

// LedgerGeneratorInterface produces synthetic ledgers
type LedgerGeneratorInterface interface {
	Generate(rows int) models.LedgerTable
}
