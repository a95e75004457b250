package services

import (
	"budget-ledger/internal/models"
	"budget-ledger/internal/taxonomy"

	"github.com/shopspring/decimal"
)

type yearlyBudgetService struct {
	taxonomy *taxonomy.Taxonomy
}

func NewYearlyBudgetService(tax *taxonomy.Taxonomy) YearlyBudgetServiceInterface {
	return &yearlyBudgetService{taxonomy: tax}
}

// Comparison lists every (year, item, amount) in year order then budget-file order,
// with the sorted union of items and each year's total.
func (s *yearlyBudgetService) Comparison() models.YearlyBudgetComparison {
	comparison := models.YearlyBudgetComparison{
		Rows:   make([]models.YearlyBudgetRow, 0),
		Items:  s.taxonomy.AllBudgetItems(),
		Totals: make(map[string]decimal.Decimal),
		Years:  s.taxonomy.Years(),
	}

	for _, book := range s.taxonomy.BudgetBooks() {
		for _, entry := range book.Entries() {
			comparison.Rows = append(comparison.Rows, models.YearlyBudgetRow{
				Year:   book.Year(),
				Item:   entry.Item,
				Amount: entry.Amount,
			})
		}
		comparison.Totals[book.Year()] = book.Total()
	}

	return comparison
}
