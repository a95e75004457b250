package services

import (
	"log/slog"
	"strings"

	"budget-ledger/internal/config"
	"budget-ledger/internal/models"
	"budget-ledger/internal/taxonomy"

	"github.com/shopspring/decimal"
)

const separatorRows = 2

type researchSummaryService struct {
	aggregator    BudgetAggregatorInterface
	extractor     TextExtractorInterface
	synthetic     []taxonomy.SyntheticRow
	memoField     string
	lineItemField string
	amountField   string
}

// NewResearchSummaryService creates the builder for the research-track report layout.
func NewResearchSummaryService(aggregator BudgetAggregatorInterface, extractor TextExtractorInterface, tax *taxonomy.Taxonomy, fields *config.LedgerConfig) ResearchSummaryServiceInterface {
	return &researchSummaryService{
		aggregator:    aggregator,
		extractor:     extractor,
		synthetic:     tax.SyntheticRows(),
		memoField:     fields.MemoField,
		lineItemField: fields.LineItemField,
		amountField:   fields.AmountField,
	}
}

// Build returns the grand-total table followed by one table per (topic, researcher) pair.
func (s *researchSummaryService) Build(table models.LedgerTable) (models.ResearchSummary, error) {
	if table.IsEmpty() {
		slog.Warn("research track is empty, skipping research summary")
		return models.ResearchSummary{Pairs: []models.PairSummary{}}, nil
	}

	base, err := s.aggregator.Aggregate(table)
	if err != nil {
		return models.ResearchSummary{Pairs: []models.PairSummary{}}, err
	}

	summary := models.ResearchSummary{
		GrandTotal: s.grandTotal(base, table),
		Pairs:      make([]models.PairSummary, 0),
	}

	for _, pair := range s.extractor.Pairs(table) {
		subset := table.Filter(func(row models.LedgerRow) bool {
			p, ok := s.extractor.PairOf(row)
			return ok && p == pair
		})
		if subset.IsEmpty() {
			slog.Warn("no research rows for pair", "topic", pair.Topic, "researcher", pair.Researcher)
			continue
		}

		pairTable, err := s.pairTable(pair, subset)
		if err != nil {
			return summary, err
		}
		summary.Pairs = append(summary.Pairs, models.PairSummary{Pair: pair, Table: pairTable})
	}

	slog.Info("research summary built", "pairs", len(summary.Pairs), "rows", len(summary.Rows()))
	return summary, nil
}

// grandTotal lays out: title, line items, synthetic rows, recomputed TOTAL, separators.
func (s *researchSummaryService) grandTotal(base models.SummaryTable, table models.LedgerTable) models.SummaryTable {
	body := append(base.Body(), s.syntheticRows(table)...)

	rows := make([]models.SummaryRow, 0, len(body)+2+separatorRows)
	rows = append(rows, titleRow(models.GrandTotalLabel, ""))
	rows = append(rows, body...)
	// budget is the column sum of line-item budgets, so the rate is numeric, not a sentinel
	rows = append(rows, columnTotal(body))
	rows = append(rows, blankRows(separatorRows)...)
	return models.SummaryTable{Rows: rows}
}

// pairTable lays out: separators, title, line items, synthetic rows, separators. It has no TOTAL row.
func (s *researchSummaryService) pairTable(pair models.ResearchPair, subset models.LedgerTable) (models.SummaryTable, error) {
	base, err := s.aggregator.Aggregate(subset)
	if err != nil {
		return models.SummaryTable{}, err
	}

	body := append(base.Body(), s.syntheticRows(subset)...)

	rows := make([]models.SummaryRow, 0, len(body)+1+2*separatorRows)
	rows = append(rows, blankRows(separatorRows)...)
	rows = append(rows, titleRow(pair.Topic, pair.Researcher))
	rows = append(rows, body...)
	rows = append(rows, blankRows(separatorRows)...)
	return models.SummaryTable{Rows: rows}, nil
}

func (s *researchSummaryService) syntheticRows(table models.LedgerTable) []models.SummaryRow {
	rows := make([]models.SummaryRow, 0, len(s.synthetic))
	for _, def := range s.synthetic {
		spent := s.keywordExpense(table, def.Keywords)
		rows = append(rows, models.SummaryRow{
			Kind:          models.RowKindSynthetic,
			Category:      def.Category,
			Subcategory:   def.Subcategory,
			LineItem:      def.LineItem,
			Budget:        decimal.Zero,
			Spent:         spent,
			Remainder:     spent.Neg(),
			ExecutionRate: models.UnbudgetedRate(spent),
		})
	}
	return rows
}

// keywordExpense sums amounts of rows whose line item or memo contains any keyword.
// Each row counts at most once per keyword set.
func (s *researchSummaryService) keywordExpense(table models.LedgerTable, keywords []string) decimal.Decimal {
	if !table.HasColumn(s.amountField) {
		slog.Warn("research rows have no amount column", "field", s.amountField)
		return decimal.Zero
	}

	total := decimal.Zero
	for _, row := range table.Rows {
		lineItem := row.Get(s.lineItemField)
		memo := row.Get(s.memoField)
		for _, keyword := range keywords {
			if strings.Contains(lineItem, keyword) || strings.Contains(memo, keyword) {
				total = total.Add(parseAmount(row.Get(s.amountField)))
				break
			}
		}
	}
	return total
}

// columnTotal sums every numeric column and derives the rate from the sums.
func columnTotal(rows []models.SummaryRow) models.SummaryRow {
	budget, spent, remainder := decimal.Zero, decimal.Zero, decimal.Zero
	for _, row := range rows {
		if !row.IsNumeric() {
			continue
		}
		budget = budget.Add(row.Budget)
		spent = spent.Add(row.Spent)
		remainder = remainder.Add(row.Remainder)
	}

	return models.SummaryRow{
		Kind:          models.RowKindTotal,
		Category:      models.TotalLabel,
		Budget:        budget,
		Spent:         spent,
		Remainder:     remainder,
		ExecutionRate: executionRate(spent, budget),
	}
}

func titleRow(category, subcategory string) models.SummaryRow {
	return models.SummaryRow{Kind: models.RowKindTitle, Category: category, Subcategory: subcategory}
}

func blankRows(n int) []models.SummaryRow {
	rows := make([]models.SummaryRow, n)
	for i := range rows {
		rows[i] = models.SummaryRow{Kind: models.RowKindBlank}
	}
	return rows
}
