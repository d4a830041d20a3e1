package cmd

import (
	"fmt"
	"strconv"

	"bettero/internal/cli"
	"bettero/internal/interval"
	"bettero/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagAccountName        string
	flagAccountInstitution string
	flagAccountNumber      int64
	flagAccountBalance     float64
	flagAccountCreditLimit float64
	flagAccountDueDate     string
	flagAccountInterval    string
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List your accounts",
	RunE:  runAccountsList,
}

var accountsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an account's details",
	Long: "Update an account. Only the given flags change; the account type " +
		"is fixed at creation.",
	Args: cobra.ExactArgs(1),
	RunE: runAccountsUpdate,
}

var accountsSummaryCmd = &cobra.Command{
	Use:   "summary <id>",
	Short: "Interval expense summary for one account",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountsSummary,
}

var accountsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an account",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountsRm,
}

func init() {
	accountsUpdateCmd.Flags().StringVar(&flagAccountName, "name", "", "Account name")
	accountsUpdateCmd.Flags().StringVar(&flagAccountInstitution, "institution", "", "Institution name")
	accountsUpdateCmd.Flags().Int64Var(&flagAccountNumber, "number", 0, "Account number")
	accountsUpdateCmd.Flags().Float64Var(&flagAccountBalance, "balance", 0, "Current balance")
	accountsUpdateCmd.Flags().Float64Var(&flagAccountCreditLimit, "credit-limit", 0, "Credit limit (credit accounts)")
	accountsUpdateCmd.Flags().StringVar(&flagAccountDueDate, "due-date", "", "Payment due date (credit accounts)")

	accountsSummaryCmd.Flags().StringVarP(&flagAccountInterval, "interval", "i", "", "Interval type: month, biWeek, or week")

	accountsCmd.AddCommand(accountsUpdateCmd)
	accountsCmd.AddCommand(accountsSummaryCmd)
	accountsCmd.AddCommand(accountsRmCmd)
	rootCmd.AddCommand(accountsCmd)
}

func runAccountsList(cmd *cobra.Command, _ []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	ctx := cmd.Context()
	if err := requireAuth(ctx, env); err != nil {
		return err
	}

	accounts, err := env.client.Accounts(ctx)
	if err != nil {
		return err
	}
	if len(accounts) == 0 {
		fmt.Println("\n  No accounts yet. Add one in the TUI: bettero tui")
		return nil
	}

	rows := make([][]string, 0, len(accounts))
	for _, a := range accounts {
		limit := ""
		if a.AccountType == model.AccountCredit && a.CreditLimit != nil {
			limit = cli.FormatMoney(*a.CreditLimit)
		}
		rows = append(rows, []string{
			strconv.Itoa(a.ID),
			a.Name,
			a.Institution,
			string(a.AccountType),
			cli.FormatMoney(a.Balance),
			limit,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Name", "Institution", "Type", "Balance", "Credit Limit"},
		Rows:    rows,
	}))
	return nil
}

func runAccountsUpdate(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid account id %q", args[0])
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

	accounts, err := env.client.Accounts(ctx)
	if err != nil {
		return err
	}
	var account model.Account
	found := false
	for _, a := range accounts {
		if a.ID == id {
			account = a
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("no account with id %d", id)
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		account.Name = flagAccountName
	}
	if flags.Changed("institution") {
		account.Institution = flagAccountInstitution
	}
	if flags.Changed("number") {
		account.AccountNumber = flagAccountNumber
	}
	if flags.Changed("balance") {
		account.Balance = flagAccountBalance
	}
	if flags.Changed("credit-limit") {
		limit := flagAccountCreditLimit
		account.CreditLimit = &limit
	}
	if flags.Changed("due-date") {
		due := flagAccountDueDate
		account.DueDate = &due
	}

	saved, err := env.client.UpdateAccount(ctx, id, account)
	if err != nil {
		return err
	}
	fmt.Printf("  Account %s updated.\n", saved.Name)
	return nil
}

func runAccountsSummary(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid account id %q", args[0])
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

	intervalType := interval.Type(flagAccountInterval)
	if intervalType == "" {
		intervalType = interval.Type(env.cfg.General.DefaultIntervalType)
	}

	buckets, err := env.client.AccountSummary(ctx, id)
	if err != nil {
		return err
	}

	spans := interval.Latest(buckets, intervalType)
	if len(spans) == 0 {
		fmt.Printf("\n  No %s intervals for account %d yet.\n", intervalType, id)
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
		Title:   fmt.Sprintf("Account %d expense by %s", id, intervalType),
		Headers: []string{"Interval", "Total Expense"},
		Rows:    rows,
	}))
	return nil
}

func runAccountsRm(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid account id %q", args[0])
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

	if err := env.client.DeleteAccount(ctx, id); err != nil {
		return err
	}
	fmt.Printf("  Account %d deleted.\n", id)
	return nil
}
