package dto

import (
	"time"

	"budget-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger Request DTOs

// PreviewRequest controls how many rows of each track a classification returns
type PreviewRequest struct {
	Limit int `query:"limit" validate:"omitempty,gte=1,lte=10000"`
}

// ListRunsRequest holds the run history query parameters
type ListRunsRequest struct {
	Status     string `query:"status" validate:"omitempty,run_status"`
	Origin     string `query:"origin" validate:"omitempty,run_origin"`
	FiscalYear string `query:"fiscal_year" validate:"omitempty,fiscal_year"`
	Offset     int    `query:"offset" validate:"gte=0"`
	Limit      int    `query:"limit" validate:"omitempty,gte=1,lte=100"`
}

// Filters converts the query into repository filters
func (r ListRunsRequest) Filters() models.ReportRunFilters {
	return models.ReportRunFilters{
		Status:     r.Status,
		Origin:     r.Origin,
		FiscalYear: r.FiscalYear,
	}
}

// Ledger Response DTOs

// TrackPreview is the head of one classified row-set
type TrackPreview struct {
	Total   int                 `json:"total"`
	Columns []string            `json:"columns"`
	Rows    []map[string]string `json:"rows"`
}

// NewTrackPreview takes the first limit rows of a track
func NewTrackPreview(table models.LedgerTable, limit int) TrackPreview {
	head := table.Head(limit)
	rows := make([]map[string]string, 0, head.Len())
	for _, row := range head.Rows {
		rows = append(rows, row.Values)
	}

	return TrackPreview{
		Total:   table.Len(),
		Columns: table.Columns,
		Rows:    rows,
	}
}

// ClassifyResponse is returned by the classification endpoint
type ClassifyResponse struct {
	SourceName   string                     `json:"source_name"`
	Stats        models.ClassificationStats `json:"stats"`
	Columns      []string                   `json:"columns"`
	Business     TrackPreview               `json:"business"`
	Research     TrackPreview               `json:"research"`
	Unclassified TrackPreview               `json:"unclassified"`
}

// ReportMeta describes the run a generated report was recorded under
type ReportMeta struct {
	RunID    *uuid.UUID        `json:"run_id,omitempty"`
	Status   string            `json:"status"`
	Warnings map[string]string `json:"warnings,omitempty"`
}

// ListRunsResponse is a page of report run history
type ListRunsResponse struct {
	Runs   []models.ReportRun `json:"runs"`
	Total  int64              `json:"total"`
	Offset int                `json:"offset"`
	Limit  int                `json:"limit"`
	// across all runs, not just this page
	StatusCounts map[string]int64 `json:"status_counts"`
}

// YearlyBudgetsResponse carries the cross-year budget comparison
type YearlyBudgetsResponse struct {
	Years  []string                   `json:"years"`
	Items  []string                   `json:"items"`
	Totals map[string]decimal.Decimal `json:"totals"`
	Rows   []models.YearlyBudgetRow   `json:"rows"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status   string    `json:"status"`
	Database string    `json:"database"`
	Time     time.Time `json:"time"`
}

// SampleLedgerRequest sizes a generated sample ledger
type SampleLedgerRequest struct {
	Rows int `query:"rows" validate:"omitempty,gte=1,lte=5000"`
}
