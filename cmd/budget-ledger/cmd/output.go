package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"budget-ledger/internal/models"
)

func printStats(w io.Writer, source string, stats models.ClassificationStats) {
	fmt.Fprintf(w, "\n=== Classification: %s ===\n", source)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total rows:\t%d\n", stats.Total)
	fmt.Fprintf(tw, "Business (center):\t%d\t%.1f%%\n", stats.BusinessCount, stats.BusinessPercentage)
	fmt.Fprintf(tw, "Research:\t%d\t%.1f%%\n", stats.ResearchCount, stats.ResearchPercentage)
	fmt.Fprintf(tw, "Unclassified:\t%d\t%.1f%%\n", stats.UnclassifiedCount, stats.UnclassifiedPercentage)
	tw.Flush()

	if stats.HighUnclassified {
		fmt.Fprintln(w, "Warning: most rows match neither prefix, check the memo column")
	}
	fmt.Fprintln(w)
}

func printDashboard(w io.Writer, report *models.Report) {
	kpi := report.Dashboard
	fmt.Fprintf(w, "\n=== Budget execution %s ===\n", kpi.FiscalYear)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Budget:\t%s\t\n", kpi.Budget.StringFixed(0))
	fmt.Fprintf(tw, "Center spent:\t%s\t\n", kpi.CenterSpent.StringFixed(0))
	fmt.Fprintf(tw, "Research spent:\t%s\t\n", kpi.ResearchSpent.StringFixed(0))
	fmt.Fprintf(tw, "Remainder:\t%s\t\n", kpi.Remainder.StringFixed(0))
	fmt.Fprintf(tw, "Execution rate:\t%s\t\n", kpi.ExecutionRate)
	tw.Flush()

	for stage, message := range report.Warnings {
		fmt.Fprintf(w, "Warning [%s]: %s\n", stage, message)
	}
	fmt.Fprintln(w)
}

func printComparison(w io.Writer, comparison models.YearlyBudgetComparison) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprint(tw, "예산과목")
	for _, year := range comparison.Years {
		fmt.Fprintf(tw, "\t%s", year)
	}
	fmt.Fprintln(tw)

	amounts := make(map[string]map[string]string, len(comparison.Items))
	for _, row := range comparison.Rows {
		if amounts[row.Item] == nil {
			amounts[row.Item] = make(map[string]string)
		}
		amounts[row.Item][row.Year] = row.Amount.StringFixed(0)
	}

	for _, item := range comparison.Items {
		fmt.Fprint(tw, item)
		for _, year := range comparison.Years {
			amount, ok := amounts[item][year]
			if !ok {
				amount = "-"
			}
			fmt.Fprintf(tw, "\t%s", amount)
		}
		fmt.Fprintln(tw)
	}

	fmt.Fprint(tw, "합계")
	for _, year := range comparison.Years {
		fmt.Fprintf(tw, "\t%s", comparison.Totals[year].StringFixed(0))
	}
	fmt.Fprintln(tw)
	tw.Flush()
}
