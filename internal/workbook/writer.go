package workbook

import (
	"fmt"
	"io"
	"log/slog"

	"budget-ledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	SheetTotals            = "총액"
	SheetBusinessSummary   = "사업비"
	SheetResearchSummary   = "연구비"
	SheetBusinessExecution = "집행관리(사업비)"
	SheetResearchExecution = "집행관리(연구비)"
	SheetYearlyBudgets     = "연도별예산데이터"
)

// SheetOrder is the fixed sheet order of every exported workbook.
var SheetOrder = []string{
	SheetTotals,
	SheetBusinessSummary,
	SheetResearchSummary,
	SheetBusinessExecution,
	SheetResearchExecution,
	SheetYearlyBudgets,
}

var (
	summaryHeader = []string{"예산목", "세목", "예산과목", "예산금액", "지출액", "예산잔액", "집행률"}
	totalsHeader  = []string{"예산목", "세목", "예산과목", "예산금액", "센터", "심층연구", "예산잔액", "집행률"}
	yearlyHeader  = []string{"연도", "예산과목", "예산금액"}
)

var columnWidths = map[string]float64{
	"예산목":  15,
	"세목":   20,
	"예산과목": 25,
	"예산금액": 15,
	"지출액":  15,
	"센터":   15,
	"심층연구": 15,
	"예산잔액": 15,
	"집행률":  12,
	"결의서":  12,
	"발의일자": 15,
	"번호":   10,
	"적요":   50,
	"작성자":  12,
	"총지급액": 15,
	"연구자":  15,
	"반영일":  15,
	"연도":   10,
}

const defaultColumnWidth = 12

// Writer renders a report into an xlsx workbook. It satisfies services.ReportSink.
type Writer struct {
	file   *excelize.File
	styles styles
}

// New creates a workbook with every sheet present in SheetOrder.
func New() (*Writer, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), SheetOrder[0]); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet %s: %w", SheetOrder[0], err)
	}
	for _, name := range SheetOrder[1:] {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	st, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	f.SetActiveSheet(0)
	return &Writer{file: f, styles: st}, nil
}

func (w *Writer) WriteTotals(table models.TotalsTable) error {
	if err := w.writeHeader(SheetTotals, totalsHeader); err != nil {
		return err
	}

	for i, row := range table.Rows {
		r := i + 2
		text, number, rate := w.styles.rowStyles(row.Kind)
		values := []interface{}{
			row.Category, row.Subcategory, row.LineItem,
			amount(row.Budget), amount(row.Center), amount(row.Research), amount(row.Remainder),
			rateValue(row.ExecutionRate),
		}
		if err := w.setRow(SheetTotals, r, values); err != nil {
			return err
		}
		if err := w.styleRow(SheetTotals, r, []int{text, text, text, number, number, number, number, rate}); err != nil {
			return err
		}
	}

	spans := labelSpans(len(table.Rows), func(i int) (models.RowKind, string, string) {
		row := table.Rows[i]
		return row.Kind, row.Category, row.Subcategory
	})
	return w.mergeSpans(SheetTotals, spans)
}

func (w *Writer) WriteSummaries(business models.SummaryTable, research models.ResearchSummary) error {
	if err := w.writeSummary(SheetBusinessSummary, business.Rows); err != nil {
		return err
	}
	return w.writeSummary(SheetResearchSummary, research.Rows())
}

func (w *Writer) WriteClassified(business, research models.ExecutionSheet) error {
	if err := w.writeExecution(SheetBusinessExecution, business); err != nil {
		return err
	}
	return w.writeExecution(SheetResearchExecution, research)
}

func (w *Writer) WriteYearlyBudgets(comparison models.YearlyBudgetComparison) error {
	if err := w.writeHeader(SheetYearlyBudgets, yearlyHeader); err != nil {
		return err
	}

	for i, row := range comparison.Rows {
		r := i + 2
		if err := w.setRow(SheetYearlyBudgets, r, []interface{}{row.Year, row.Item, amount(row.Amount)}); err != nil {
			return err
		}
		if err := w.styleRow(SheetYearlyBudgets, r, []int{w.styles.text, w.styles.text, w.styles.number}); err != nil {
			return err
		}
	}
	return nil
}

// WriteTo streams the workbook as xlsx.
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	return w.file.WriteTo(out)
}

func (w *Writer) SaveAs(path string) error {
	if err := w.file.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	slog.Info("workbook saved", "path", path)
	return nil
}

func (w *Writer) Close() error {
	return w.file.Close()
}

func (w *Writer) writeSummary(sheet string, rows []models.SummaryRow) error {
	if err := w.writeHeader(sheet, summaryHeader); err != nil {
		return err
	}

	for i, row := range rows {
		r := i + 2
		switch row.Kind {
		case models.RowKindBlank:
			continue
		case models.RowKindTitle:
			if err := w.setRow(sheet, r, []interface{}{row.Category, row.Subcategory}); err != nil {
				return err
			}
			if err := w.styleRange(sheet, r, 1, 1, len(summaryHeader), w.styles.title); err != nil {
				return err
			}
			continue
		}

		text, number, rate := w.styles.rowStyles(row.Kind)
		values := []interface{}{
			row.Category, row.Subcategory, row.LineItem,
			amount(row.Budget), amount(row.Spent), amount(row.Remainder),
			rateValue(row.ExecutionRate),
		}
		if err := w.setRow(sheet, r, values); err != nil {
			return err
		}
		if err := w.styleRow(sheet, r, []int{text, text, text, number, number, number, rate}); err != nil {
			return err
		}
	}

	spans := labelSpans(len(rows), func(i int) (models.RowKind, string, string) {
		return rows[i].Kind, rows[i].Category, rows[i].Subcategory
	})
	return w.mergeSpans(sheet, spans)
}

func (w *Writer) writeExecution(sheet string, data models.ExecutionSheet) error {
	if err := w.writeHeader(sheet, data.Columns); err != nil {
		return err
	}

	for i, record := range data.Rows {
		values := make([]interface{}, len(record))
		for j, cell := range record {
			values[j] = cell
		}
		if err := w.setRow(sheet, i+2, values); err != nil {
			return err
		}
	}

	if len(data.Rows) > 0 && len(data.Columns) > 0 {
		return w.styleRange(sheet, 2, len(data.Rows), 1, len(data.Columns), w.styles.text)
	}
	return nil
}

func (w *Writer) writeHeader(sheet string, header []string) error {
	values := make([]interface{}, len(header))
	for i, h := range header {
		values[i] = h
	}
	if err := w.setRow(sheet, 1, values); err != nil {
		return err
	}

	for i, h := range header {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		width, ok := columnWidths[h]
		if !ok {
			width = defaultColumnWidth
		}
		if err := w.file.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("failed to size column %s on %s: %w", col, sheet, err)
		}
	}

	if len(header) == 0 {
		return nil
	}
	return w.styleRange(sheet, 1, 1, 1, len(header), w.styles.header)
}

func (w *Writer) setRow(sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := w.file.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d on %s: %w", row, sheet, err)
	}
	return nil
}

// styleRow applies one style per column, starting at column A.
func (w *Writer) styleRow(sheet string, row int, styleIDs []int) error {
	for i, id := range styleIDs {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := w.file.SetCellStyle(sheet, cell, cell, id); err != nil {
			return fmt.Errorf("failed to style %s on %s: %w", cell, sheet, err)
		}
	}
	return nil
}

// styleRange styles columns first..last over height rows starting at row.
func (w *Writer) styleRange(sheet string, row, height, first, last, styleID int) error {
	from, err := excelize.CoordinatesToCellName(first, row)
	if err != nil {
		return err
	}
	to, err := excelize.CoordinatesToCellName(last, row+height-1)
	if err != nil {
		return err
	}
	if err := w.file.SetCellStyle(sheet, from, to, styleID); err != nil {
		return fmt.Errorf("failed to style %s:%s on %s: %w", from, to, sheet, err)
	}
	return nil
}

func (w *Writer) mergeSpans(sheet string, spans []span) error {
	for _, sp := range spans {
		from, err := excelize.CoordinatesToCellName(sp.column, sp.start+2)
		if err != nil {
			return err
		}
		to, err := excelize.CoordinatesToCellName(sp.column, sp.end+2)
		if err != nil {
			return err
		}
		if err := w.file.MergeCell(sheet, from, to); err != nil {
			return fmt.Errorf("failed to merge %s:%s on %s: %w", from, to, sheet, err)
		}
		if err := w.file.SetCellStyle(sheet, from, to, w.styles.merged); err != nil {
			return err
		}
	}
	return nil
}

// span is an inclusive run of row indexes sharing one label in a column.
type span struct {
	column     int
	start, end int
}

// labelSpans finds runs of line-item rows under a first-row-only category (column A)
// or subcategory (column B) label. Runs of a single row are not returned.
func labelSpans(n int, at func(i int) (models.RowKind, string, string)) []span {
	var spans []span
	for _, col := range []int{1, 2} {
		start := -1
		flush := func(end int) {
			if start >= 0 && end > start {
				spans = append(spans, span{column: col, start: start, end: end})
			}
			start = -1
		}

		for i := 0; i < n; i++ {
			kind, category, subcategory := at(i)
			label := category
			if col == 2 {
				label = subcategory
			}

			switch {
			case kind != models.RowKindLineItem:
				flush(i - 1)
			case label != "":
				flush(i - 1)
				start = i
			}
		}
		flush(n - 1)
	}
	return spans
}

// amount renders whole amounts as integers so Excel keeps full precision.
func amount(d decimal.Decimal) interface{} {
	if d.IsInteger() {
		return d.IntPart()
	}
	return d.InexactFloat64()
}

func rateValue(rate models.ExecutionRate) interface{} {
	if rate.IsSentinel() {
		return rate.String()
	}
	return rate.Percent
}
