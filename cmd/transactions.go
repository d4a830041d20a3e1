package cmd

import (
	"fmt"

	"bettero/internal/api"
	"bettero/internal/cli"
	"bettero/internal/model"
	"bettero/internal/paging"

	"github.com/spf13/cobra"
)

var (
	flagCategory  string
	flagFirstDate string
	flagLastDate  string
	flagAccountID int

	flagTxDescription string
	flagTxCategory    string
	flagTxAmount      float64
	flagTxDate        string
	flagTxAccount     string
)

var transactionsCmd = &cobra.Command{
	Use:     "transactions",
	Aliases: []string{"tx"},
	Short:   "List transactions, filtered by category and/or interval",
	RunE:    runTransactionsList,
}

var transactionsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new transaction",
	RunE:  runTransactionsAdd,
}

func init() {
	transactionsCmd.Flags().StringVarP(&flagCategory, "category", "c", "", "Filter to one category")
	transactionsCmd.Flags().StringVar(&flagFirstDate, "first-date", "", "Interval start (YYYY-MM-DD)")
	transactionsCmd.Flags().StringVar(&flagLastDate, "last-date", "", "Interval end (YYYY-MM-DD)")
	transactionsCmd.Flags().IntVar(&flagAccountID, "account", 0, "Scope to one account id")

	transactionsAddCmd.Flags().StringVar(&flagTxDescription, "description", "", "What the money was for")
	transactionsAddCmd.Flags().StringVar(&flagTxCategory, "category", "", "One of the known categories")
	transactionsAddCmd.Flags().Float64Var(&flagTxAmount, "amount", 0, "Positive amount")
	transactionsAddCmd.Flags().StringVar(&flagTxDate, "date", "", "Occurrence date (YYYY-MM-DD)")
	transactionsAddCmd.Flags().StringVar(&flagTxAccount, "account", "", "Account name")

	transactionsCmd.AddCommand(transactionsAddCmd)
	rootCmd.AddCommand(transactionsCmd)
}

// queryFromFlags maps the filter flags onto one of the four query intents.
func queryFromFlags() api.Query {
	q := api.Query{Intent: api.IntentLatest, Page: flagPage}
	hasInterval := flagFirstDate != "" && flagLastDate != ""

	switch {
	case flagCategory != "" && hasInterval:
		q.Intent = api.IntentBoth
	case flagCategory != "":
		q.Intent = api.IntentCategory
	case hasInterval:
		q.Intent = api.IntentInterval
	}
	q.Category = flagCategory
	q.FirstDate = flagFirstDate
	q.LastDate = flagLastDate
	return q
}

func runTransactionsList(cmd *cobra.Command, _ []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	ctx := cmd.Context()
	if err := requireAuth(ctx, env); err != nil {
		return err
	}

	q := queryFromFlags()
	var page api.TransactionPage
	if flagAccountID > 0 {
		page, err = env.client.AccountTransactions(ctx, flagAccountID, q)
	} else {
		page, err = env.client.Transactions(ctx, q)
	}
	if err != nil {
		return err
	}

	if page.TransactionCount == 0 {
		fmt.Println("\n  There are no transactions.")
		return nil
	}

	rows := make([][]string, 0, len(page.TransactionList))
	for _, t := range page.TransactionList {
		rows = append(rows, []string{
			t.OccurDate,
			cli.Truncate(t.Description, 40),
			t.Category,
			t.AccountName,
			cli.FormatSigned(t.Amount, t.Inflow()),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Transactions (%d)", page.TransactionCount),
		Headers: []string{"Date", "Description", "Category", "Account", "Amount"},
		Rows:    rows,
	}))

	pager := paging.New(page.TransactionCount, env.cfg.Paging.PageSize, env.cfg.Paging.WindowSize, nil)
	pager.Sync(page.TransactionCount, page.Page)
	if pager.Enabled() {
		fmt.Printf("\n  Page %d of %d  (use --page)\n", page.Page, pager.TotalPages())
	}
	return nil
}

func runTransactionsAdd(cmd *cobra.Command, _ []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	ctx := cmd.Context()
	if err := requireAuth(ctx, env); err != nil {
		return err
	}

	tx := model.Transaction{
		Description: flagTxDescription,
		Category:    flagTxCategory,
		Amount:      flagTxAmount,
		OccurDate:   flagTxDate,
		AccountName: flagTxAccount,
	}

	page, err := env.client.CreateTransaction(ctx, tx)
	if err != nil {
		return err
	}
	fmt.Printf("  Recorded. %d transactions on file.\n", page.TransactionCount)
	return nil
}
