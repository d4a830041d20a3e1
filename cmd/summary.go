package cmd

import (
	"fmt"

	"bettero/internal/cli"
	"bettero/internal/interval"

	"github.com/spf13/cobra"
)

var flagIntervalType string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Financial summary with recent interval expenses",
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().StringVarP(&flagIntervalType, "interval", "i", "", "Interval type: month, biWeek, or week")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	ctx := cmd.Context()
	if err := requireAuth(ctx, env); err != nil {
		return err
	}

	summary, err := env.client.FinancialSummary(ctx)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("FINANCIAL SUMMARY"))
	fmt.Println()
	fmt.Print(cli.RenderKeyValues([][2]string{
		{"Total Balance", cli.FormatMoney(summary.TotalBalance)},
		{"Amount Due", cli.FormatMoney(summary.TotalAmountDue)},
		{"Income", cli.FormatMoney(summary.TotalIncome)},
		{"Expense", cli.FormatMoney(summary.TotalExpense)},
	}))

	intervalType := interval.Type(flagIntervalType)
	if intervalType == "" {
		intervalType = interval.Type(env.cfg.General.DefaultIntervalType)
	}

	buckets, err := env.client.FullSummary(ctx)
	if err != nil {
		return err
	}

	spans := interval.Latest(buckets, intervalType)
	if len(spans) == 0 {
		fmt.Printf("\n  No %s intervals yet.\n", intervalType)
		return nil
	}

	expenses := interval.LatestExpense(buckets, intervalType)
	rows := make([][]string, 0, len(spans))
	for _, span := range spans {
		rows = append(rows, []string{
			span.FirstDate + " → " + span.LastDate,
			cli.FormatMoney(expenses[span.FirstDate]),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Expense by %s", intervalType),
		Headers: []string{"Interval", "Total Expense"},
		Rows:    rows,
	}))

	return nil
}
