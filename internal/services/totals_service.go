package services

import (
	"errors"
	"log/slog"

	"budget-ledger/internal/config"
	"budget-ledger/internal/models"
	"budget-ledger/internal/taxonomy"

	"github.com/shopspring/decimal"
)

type totalsService struct {
	taxonomy      *taxonomy.Taxonomy
	budgets       *taxonomy.BudgetBook
	lineItemField string
	amountField   string
}

// NewTotalsService creates the merger of center (business) and research spending.
func NewTotalsService(tax *taxonomy.Taxonomy, budgets *taxonomy.BudgetBook, fields *config.LedgerConfig) TotalsServiceInterface {
	return &totalsService{
		taxonomy:      tax,
		budgets:       budgets,
		lineItemField: fields.LineItemField,
		amountField:   fields.AmountField,
	}
}

// Merge always returns the full taxonomy skeleton. A track that cannot be
// grouped contributes zeros and is reported through ErrAggregationDegraded.
func (s *totalsService) Merge(business, research models.LedgerTable) (models.TotalsTable, error) {
	center, centerErr := s.trackSpending(business)
	researchSpent, researchErr := s.trackSpending(research)

	entries := s.taxonomy.Entries()
	rows := make([]models.TotalsRow, 0, len(entries)+1)
	for _, entry := range entries {
		budget := s.budgets.LookupExact(entry.LineItem)
		c := center[entry.LineItem]
		r := researchSpent[entry.LineItem]

		rows = append(rows, models.TotalsRow{
			Kind:          models.RowKindLineItem,
			Category:      firstOnly(entry.Category, entry.FirstInCategory),
			Subcategory:   firstOnly(entry.Subcategory, entry.FirstInSubcategory),
			LineItem:      entry.LineItem,
			Budget:        budget,
			Center:        c,
			Research:      r,
			Remainder:     budget.Sub(c).Sub(r),
			ExecutionRate: executionRate(c.Add(r), budget),
		})
	}
	rows = append(rows, totalsColumnSum(rows))

	return models.TotalsTable{Rows: rows}, errors.Join(centerErr, researchErr)
}

// trackSpending groups a track by raw label. Lookups against it are exact only.
func (s *totalsService) trackSpending(table models.LedgerTable) (spendingByLabel, error) {
	if err := requireColumns(table, s.lineItemField, s.amountField); err != nil {
		slog.Warn("track excluded from totals", "error", err)
		return spendingByLabel{}, err
	}
	return groupSpending(table, s.lineItemField, s.amountField), nil
}

func totalsColumnSum(rows []models.TotalsRow) models.TotalsRow {
	total := models.TotalsRow{
		Kind:      models.RowKindTotal,
		Category:  models.TotalLabel,
		Budget:    decimal.Zero,
		Center:    decimal.Zero,
		Research:  decimal.Zero,
		Remainder: decimal.Zero,
	}
	for _, row := range rows {
		total.Budget = total.Budget.Add(row.Budget)
		total.Center = total.Center.Add(row.Center)
		total.Research = total.Research.Add(row.Research)
		total.Remainder = total.Remainder.Add(row.Remainder)
	}
	total.ExecutionRate = executionRate(total.Center.Add(total.Research), total.Budget)
	return total
}
