package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExecutionSheet is a classified row-set projected onto the output columns.
type ExecutionSheet struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// YearlyBudgetRow is one long-form (year, item, amount) record.
type YearlyBudgetRow struct {
	Year   string          `json:"year"`
	Item   string          `json:"item"`
	Amount decimal.Decimal `json:"amount"`
}

// YearlyBudgetComparison is the cross-year budget view.
type YearlyBudgetComparison struct {
	Rows   []YearlyBudgetRow          `json:"rows"`
	Items  []string                   `json:"items"`
	Totals map[string]decimal.Decimal `json:"totals"`
	Years  []string                   `json:"years"`
}

// DashboardKPI carries the headline figures of a report.
type DashboardKPI struct {
	FiscalYear    string              `json:"fiscal_year"`
	Budget        decimal.Decimal     `json:"budget"`
	CenterSpent   decimal.Decimal     `json:"center_spent"`
	ResearchSpent decimal.Decimal     `json:"research_spent"`
	TotalSpent    decimal.Decimal     `json:"total_spent"`
	Remainder     decimal.Decimal     `json:"remainder"`
	ExecutionRate ExecutionRate       `json:"execution_rate"`
	Stats         ClassificationStats `json:"classification"`
}

// Report bundles every output of one generation run. It is built fresh per run.
type Report struct {
	ID              uuid.UUID              `json:"id"`
	SourceName      string                 `json:"source_name"`
	FiscalYear      string                 `json:"fiscal_year"`
	GeneratedAt     time.Time              `json:"generated_at"`
	Classification  *ClassificationResult  `json:"-"`
	BusinessSummary SummaryTable           `json:"business_summary"`
	ResearchSummary ResearchSummary        `json:"research_summary"`
	Totals          TotalsTable            `json:"totals"`
	BusinessSheet   ExecutionSheet         `json:"business_sheet"`
	ResearchSheet   ExecutionSheet         `json:"research_sheet"`
	YearlyBudgets   YearlyBudgetComparison `json:"yearly_budgets"`
	Dashboard       DashboardKPI           `json:"dashboard"`
	Warnings        map[string]string      `json:"warnings,omitempty"`
}

// Degraded reports whether any part of the report fell back to an empty result.
func (r *Report) Degraded() bool {
	return len(r.Warnings) > 0
}

// AddWarning records a non-fatal problem against a report stage.
func (r *Report) AddWarning(stage, message string) {
	if r.Warnings == nil {
		r.Warnings = make(map[string]string)
	}
	r.Warnings[stage] = message
}
