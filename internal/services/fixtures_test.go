package services

import (
	"testing"

	"budget-ledger/internal/config"
	"budget-ledger/internal/models"
	"budget-ledger/internal/taxonomy"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const (
	testBusinessPrefix = "25 차세대"
	testResearchPrefix = "25 심층연구"
)

var testColumns = []string{"결의서", "발의일자", "번호", "적요", "작성자", "총지급액", "예산과목"}

func testLedgerConfig() *config.LedgerConfig {
	return &config.LedgerConfig{
		MemoField:     "적요",
		LineItemField: "예산과목",
		AmountField:   "총지급액",
		DateField:     "발의일자",
		OutputColumns: append([]string{}, testColumns...),
	}
}

func testClassificationConfig() *config.ClassificationConfig {
	return &config.ClassificationConfig{
		BusinessPrefix:        testBusinessPrefix,
		ResearchPrefix:        testResearchPrefix,
		UnclassifiedThreshold: 0.7,
	}
}

func defaultTaxonomy(t *testing.T) (*taxonomy.Taxonomy, *taxonomy.BudgetBook) {
	t.Helper()
	tax, err := taxonomy.Default()
	require.NoError(t, err)
	book, err := tax.Budget("2025")
	require.NoError(t, err)
	return tax, book
}

// ledgerRecord builds a full positional record in testColumns order.
func ledgerRecord(memo, lineItem, amount string) []string {
	return []string{
		gofakeit.Numerify("결의-####"),
		"2025-03-04",
		gofakeit.Numerify("###"),
		memo,
		gofakeit.Name(),
		amount,
		lineItem,
	}
}

func ledgerTable(records ...[]string) models.LedgerTable {
	return models.NewLedgerTable(testColumns, records)
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func findRow(rows []models.SummaryRow, lineItem string) (models.SummaryRow, bool) {
	for _, r := range rows {
		if r.LineItem == lineItem {
			return r, true
		}
	}
	return models.SummaryRow{}, false
}
