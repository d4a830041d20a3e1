package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"bettero/internal/cli"
	"bettero/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagBudgetInterval string
	flagBudgetIncome   float64
	flagBudgetExpense  float64
	flagBudgetPortions []string
	flagBudgetUpdate   bool
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Show budget plans and their progress",
	RunE:  runBudgetShow,
}

var budgetSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update the budget plan for an interval type",
	Long: `Create or update a budget plan. Category portions are given as
repeated --portion Category=N flags and must add up to exactly 100.`,
	RunE: runBudgetSet,
}

var budgetRmCmd = &cobra.Command{
	Use:   "rm <intervalType>",
	Short: "Delete the budget plan for an interval type",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetRm,
}

func init() {
	budgetSetCmd.Flags().StringVarP(&flagBudgetInterval, "interval", "i", "month", "Interval type: month, biWeek, or week")
	budgetSetCmd.Flags().Float64Var(&flagBudgetIncome, "income", 0, "Recurring income per interval")
	budgetSetCmd.Flags().Float64Var(&flagBudgetExpense, "expense-portion", 0, "Percent of income allotted to expense")
	budgetSetCmd.Flags().StringArrayVar(&flagBudgetPortions, "portion", nil, "Category portion, e.g. Housing=20")
	budgetSetCmd.Flags().BoolVar(&flagBudgetUpdate, "update", false, "Update the existing plan instead of creating one")

	budgetCmd.AddCommand(budgetSetCmd)
	budgetCmd.AddCommand(budgetRmCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudgetShow(cmd *cobra.Command, _ []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	ctx := cmd.Context()
	if err := requireAuth(ctx, env); err != nil {
		return err
	}

	plans, err := env.client.BudgetPlans(ctx)
	if err != nil {
		return err
	}
	if len(plans) == 0 {
		fmt.Println("\n  No budget plans yet. Create one with `bettero budget set`.")
		return nil
	}

	for _, plan := range plans {
		fmt.Println()
		fmt.Print(cli.RenderKeyValues([][2]string{
			{"Interval", plan.IntervalType},
			{"Income", cli.FormatMoney(plan.RecurringIncome)},
			{"For expense", cli.FormatPercent(plan.PortionForExpense)},
		}))

		rows := make([][]string, 0, len(model.ExpenseCategories))
		for _, category := range model.ExpenseCategories {
			row := []string{category, cli.FormatPercent(plan.CategoryPortion[category])}
			if progress, ok := plan.Progress[category]; ok {
				row = append(row,
					cli.FormatMoney(progress.Current)+" / "+cli.FormatMoney(progress.Budget),
					cli.FormatPercent(progress.Percentage),
				)
			}
			rows = append(rows, row)
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Category", "Portion", "Spent / Budget", "Used"},
			Rows:    rows,
		}))
	}
	return nil
}

// parsePortions turns repeated Category=N flags into the portion map.
func parsePortions(args []string) (map[string]float64, error) {
	portions := make(map[string]float64, len(args))
	for _, arg := range args {
		name, value, found := strings.Cut(arg, "=")
		if !found {
			return nil, fmt.Errorf("portion %q is not Category=N", arg)
		}
		if !model.ValidCategory(name) {
			return nil, fmt.Errorf("unknown category %q", name)
		}
		pct, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("portion %q: %w", arg, err)
		}
		portions[name] = pct
	}
	return portions, nil
}

func runBudgetSet(cmd *cobra.Command, _ []string) error {
	portions, err := parsePortions(flagBudgetPortions)
	if err != nil {
		return err
	}

	plan := model.BudgetPlan{
		IntervalType:      flagBudgetInterval,
		RecurringIncome:   flagBudgetIncome,
		PortionForExpense: flagBudgetExpense,
		CategoryPortion:   portions,
	}

	// Reject locally before any network call.
	if err := plan.Validate(); err != nil {
		return err
	}

	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	ctx := cmd.Context()
	if err := requireAuth(ctx, env); err != nil {
		return err
	}

	if flagBudgetUpdate {
		_, err = env.client.UpdateBudgetPlan(ctx, plan)
	} else {
		_, err = env.client.CreateBudgetPlan(ctx, plan)
	}
	if err != nil {
		return err
	}
	fmt.Printf("  Budget plan for %s saved.\n", plan.IntervalType)
	return nil
}

func runBudgetRm(cmd *cobra.Command, args []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	ctx := cmd.Context()
	if err := requireAuth(ctx, env); err != nil {
		return err
	}

	if err := env.client.DeleteBudgetPlan(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("  Budget plan for %s deleted.\n", args[0])
	return nil
}
