package cmd

import (
	"budget-ledger/internal/services"

	"github.com/spf13/cobra"
)

var budgetsCmd = &cobra.Command{
	Use:   "budgets",
	Short: "Print the yearly budget comparison",
	Args:  cobra.NoArgs,
	RunE:  runBudgets,
}

func runBudgets(cmd *cobra.Command, args []string) error {
	_, tax, err := setup()
	if err != nil {
		return err
	}

	printComparison(cmd.OutOrStdout(), services.NewYearlyBudgetService(tax).Comparison())
	return nil
}
