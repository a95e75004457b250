package cmd

import (
	"bytes"
	"strings"
	"testing"

	"budget-ledger/internal/models"
	"budget-ledger/internal/services"
	"budget-ledger/internal/taxonomy"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer

	printStats(&buf, "ledger.xlsx", models.ClassificationStats{
		Total:                  10,
		BusinessCount:          1,
		ResearchCount:          1,
		UnclassifiedCount:      8,
		BusinessPercentage:     10,
		ResearchPercentage:     10,
		UnclassifiedPercentage: 80,
		HighUnclassified:       true,
	})

	out := buf.String()
	assert.Contains(t, out, "Classification: ledger.xlsx")
	assert.Contains(t, out, "80.0%")
	assert.Contains(t, out, "Warning:")
}

func TestPrintStats_NoWarning(t *testing.T) {
	var buf bytes.Buffer

	printStats(&buf, "ledger.xlsx", models.ClassificationStats{Total: 2, BusinessCount: 2, BusinessPercentage: 100})

	assert.NotContains(t, buf.String(), "Warning:")
}

func TestPrintDashboard(t *testing.T) {
	var buf bytes.Buffer
	report := &models.Report{
		Dashboard: models.DashboardKPI{
			FiscalYear:    "2025",
			Budget:        decimal.NewFromInt(2810000000),
			CenterSpent:   decimal.NewFromInt(10000),
			ResearchSpent: decimal.NewFromInt(30000),
			Remainder:     decimal.NewFromInt(2809960000),
			ExecutionRate: models.PercentRate(0),
		},
	}
	report.AddWarning("business_summary", "missing column")

	printDashboard(&buf, report)

	out := buf.String()
	assert.Contains(t, out, "Budget execution 2025")
	assert.Contains(t, out, "2810000000")
	assert.Contains(t, out, "Warning [business_summary]: missing column")
}

func TestPrintComparison(t *testing.T) {
	tax, err := taxonomy.Default()
	require.NoError(t, err)
	comparison := services.NewYearlyBudgetService(tax).Comparison()

	var buf bytes.Buffer
	printComparison(&buf, comparison)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(comparison.Items)+2)
	assert.True(t, strings.HasPrefix(lines[0], "예산과목"))
	assert.Contains(t, lines[0], "2022")
	assert.Contains(t, lines[0], "2025")
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "합계"))
	assert.Contains(t, lines[len(lines)-1], comparison.Totals["2025"].StringFixed(0))
}
