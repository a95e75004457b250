package services

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"budget-ledger/internal/config"
	"budget-ledger/internal/models"

	"github.com/xuri/excelize/v2"
)

const (
	ResearcherColumn = "연구자"
	ReflectedColumn  = "반영일"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"2006/01/02 15:04:05",
	"2006.01.02",
	"2006. 1. 2.",
	"20060102",
}

// maxExcelSerial is the serial number of 9999-12-31.
const maxExcelSerial = 2958465

type executionSheetService struct {
	columns   []string
	dateField string
	memoField string
	extractor TextExtractorInterface
}

// NewExecutionSheetService creates the projector for the 집행관리 sheets.
func NewExecutionSheetService(fields *config.LedgerConfig, extractor TextExtractorInterface) ExecutionSheetServiceInterface {
	columns := make([]string, len(fields.OutputColumns))
	copy(columns, fields.OutputColumns)

	return &executionSheetService{
		columns:   columns,
		dateField: fields.DateField,
		memoField: fields.MemoField,
		extractor: extractor,
	}
}

func (s *executionSheetService) BusinessSheet(table models.LedgerTable) models.ExecutionSheet {
	return s.project(table, nil)
}

// ResearchSheet appends the extracted researcher and an empty 반영일 column.
func (s *executionSheetService) ResearchSheet(table models.LedgerTable) models.ExecutionSheet {
	return s.project(table, func(row models.LedgerRow) []string {
		return []string{s.extractor.ResearcherName(row.Get(s.memoField)), ""}
	}, ResearcherColumn, ReflectedColumn)
}

func (s *executionSheetService) project(table models.LedgerTable, extra func(models.LedgerRow) []string, extraColumns ...string) models.ExecutionSheet {
	columns := append(append([]string{}, s.columns...), extraColumns...)
	sheet := models.ExecutionSheet{Columns: columns, Rows: make([][]string, 0, table.Len())}

	for _, col := range s.columns {
		if !table.HasColumn(col) {
			slog.Warn("output column missing from ledger, filled with blanks", "column", col)
		}
	}

	for _, row := range table.Rows {
		cells := make([]string, 0, len(columns))
		for _, col := range s.columns {
			value := row.Get(col)
			if col == s.dateField {
				value = formatDate(value)
			}
			cells = append(cells, value)
		}
		if extra != nil {
			cells = append(cells, extra(row)...)
		}
		sheet.Rows = append(sheet.Rows, cells)
	}

	return sheet
}

// formatDate renders a ledger date as YYYY-MM-DD. Excel serial numbers are
// accepted and anything unparsable becomes "".
func formatDate(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02")
		}
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil && serial > 0 && serial <= maxExcelSerial {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t.Format("2006-01-02")
		}
	}

	return ""
}
