package services

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"budget-ledger/internal/config"
	"budget-ledger/internal/models"
	"budget-ledger/internal/taxonomy"

	"github.com/shopspring/decimal"
)

// ErrAggregationDegraded marks a track that could not be aggregated. It is non-fatal.
var ErrAggregationDegraded = errors.New("aggregation degraded")

var hundred = decimal.NewFromInt(100)

type budgetAggregator struct {
	taxonomy      *taxonomy.Taxonomy
	budgets       *taxonomy.BudgetBook
	lineItemField string
	amountField   string
}

// NewBudgetAggregator creates an aggregator bound to one fiscal year's budget book.
func NewBudgetAggregator(tax *taxonomy.Taxonomy, budgets *taxonomy.BudgetBook, fields *config.LedgerConfig) BudgetAggregatorInterface {
	return newBudgetAggregator(tax, budgets, fields)
}

func newBudgetAggregator(tax *taxonomy.Taxonomy, budgets *taxonomy.BudgetBook, fields *config.LedgerConfig) *budgetAggregator {
	return &budgetAggregator{
		taxonomy:      tax,
		budgets:       budgets,
		lineItemField: fields.LineItemField,
		amountField:   fields.AmountField,
	}
}

func (a *budgetAggregator) Aggregate(table models.LedgerTable) (models.SummaryTable, error) {
	body, err := a.aggregateBody(table)
	if err != nil {
		return models.SummaryTable{Rows: []models.SummaryRow{}}, err
	}

	spent := decimal.Zero
	for _, row := range body {
		spent = spent.Add(row.Spent)
	}

	budget := a.budgets.Total()
	total := models.SummaryRow{
		Kind:          models.RowKindTotal,
		Category:      models.TotalLabel,
		Budget:        budget,
		Spent:         spent,
		Remainder:     budget.Sub(spent),
		ExecutionRate: executionRate(spent, budget),
	}

	return models.SummaryTable{Rows: append(body, total)}, nil
}

// aggregateBody walks the taxonomy and emits one row per line item, without a TOTAL row.
func (a *budgetAggregator) aggregateBody(table models.LedgerTable) ([]models.SummaryRow, error) {
	if err := requireColumns(table, a.lineItemField, a.amountField); err != nil {
		return nil, err
	}

	working := groupSpending(table, a.lineItemField, a.amountField)

	entries := a.taxonomy.Entries()
	rows := make([]models.SummaryRow, 0, len(entries))
	for _, entry := range entries {
		spent, ok := working.matchExact(entry.LineItem)
		if !ok {
			spent, _ = working.matchSubstring(entry.LineItem)
		}

		budget := a.budgets.Lookup(entry.LineItem)
		rows = append(rows, models.SummaryRow{
			Kind:          models.RowKindLineItem,
			Category:      firstOnly(entry.Category, entry.FirstInCategory),
			Subcategory:   firstOnly(entry.Subcategory, entry.FirstInSubcategory),
			LineItem:      entry.LineItem,
			Budget:        budget,
			Spent:         spent,
			Remainder:     budget.Sub(spent),
			ExecutionRate: executionRate(spent, budget),
		})
	}

	if len(working) > 0 {
		slog.Debug("line item labels left unmatched", "labels", working.labels())
	}

	return rows, nil
}

// spendingByLabel is the working {raw label: spent} mapping. Matches consume their labels.
type spendingByLabel map[string]decimal.Decimal

// groupSpending sums amounts per raw line-item label. Blank labels become "미분류".
func groupSpending(table models.LedgerTable, lineItemField, amountField string) spendingByLabel {
	spending := make(spendingByLabel)
	for _, row := range table.Rows {
		label := row.Get(lineItemField)
		if strings.TrimSpace(label) == "" {
			label = models.UnclassifiedLineItem
		}
		spending[label] = spending[label].Add(parseAmount(row.Get(amountField)))
	}
	return spending
}

// matchExact takes the amount recorded under exactly item.
func (s spendingByLabel) matchExact(item string) (decimal.Decimal, bool) {
	amount, ok := s[item]
	if !ok {
		return decimal.Zero, false
	}
	delete(s, item)
	return amount, true
}

// matchSubstring sums every label containing item, case-insensitively.
func (s spendingByLabel) matchSubstring(item string) (decimal.Decimal, bool) {
	if item == "" {
		return decimal.Zero, false
	}

	pattern := regexp.MustCompile("(?i)" + regexp.QuoteMeta(item))
	total := decimal.Zero
	matched := false
	for _, label := range s.labels() {
		if pattern.MatchString(label) {
			total = total.Add(s[label])
			delete(s, label)
			matched = true
		}
	}
	return total, matched
}

func (s spendingByLabel) labels() []string {
	labels := make([]string, 0, len(s))
	for label := range s {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

func requireColumns(table models.LedgerTable, columns ...string) error {
	var missing []string
	for _, col := range columns {
		if !table.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	slog.Error("required columns missing for aggregation", "missing", missing, "available", table.Columns)
	return fmt.Errorf("%w: missing columns %s", ErrAggregationDegraded, strings.Join(missing, ", "))
}

// parseAmount reads a paid amount. Thousands separators are accepted and anything else non-numeric counts as zero.
func parseAmount(raw string) decimal.Decimal {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		slog.Debug("non-numeric amount treated as zero", "value", raw)
		return decimal.Zero
	}
	return amount
}

// executionRate is round(spent/budget*100), or 0 when there is no budget.
func executionRate(spent, budget decimal.Decimal) models.ExecutionRate {
	if !budget.IsPositive() {
		return models.PercentRate(0)
	}
	return models.PercentRate(spent.Mul(hundred).Div(budget).RoundBank(0).IntPart())
}

func firstOnly(label string, first bool) string {
	if first {
		return label
	}
	return ""
}
